// Package date implements the date matcher: it finds 4-8 digit and
// separator-delimited date-shaped substrings, resolves each to a
// plausible (day, month, year) triple, and keeps the candidate nearest
// the reference year.
package date

import (
	"regexp"
	"strconv"

	"github.com/go-passcheck/passcheck/internal/matching"
	"github.com/go-passcheck/passcheck/internal/numerics"
)

const (
	minYear       = 1000
	maxYear       = 2050
	referenceYear = 2017
	minYearSpace  = 10
)

var (
	noSeparator   = regexp.MustCompile(`^\d{4,8}$`)
	withSeparator = regexp.MustCompile(`^(\d{1,4})([\s/\\_.-])(\d{1,2})\2(\d{1,4})$`)
)

// split is one (k, l) boundary pair for the no-separator branch: fields
// are s[0:k], s[k:l], s[l:].
type split struct{ k, l int }

// splitsByLength is the fixed partition table keyed by substring length.
var splitsByLength = map[int][]split{
	4: {{1, 2}, {2, 3}},
	5: {{1, 3}, {2, 3}},
	6: {{1, 2}, {2, 4}, {4, 5}},
	7: {{1, 3}, {2, 3}, {4, 5}, {4, 6}},
	8: {{2, 4}, {4, 6}},
}

// candidate is one resolved (day, month, year) triple, as returned by
// [mapToDMY].
type candidate struct {
	day, month, year int
}

// Matcher finds date-shaped substrings.
type Matcher struct{}

// NewMatcher builds a date Matcher.
func NewMatcher() *Matcher {
	return &Matcher{}
}

// Match implements both date branches and then prunes any match strictly
// contained inside another.
func (m *Matcher) Match(password string) []matching.Match {
	if m == nil {
		return nil
	}
	runes := []rune(password)
	n := len(runes)

	var out []matching.Match
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			length := j - i + 1
			if length < 4 || length > 10 {
				continue
			}
			token := string(runes[i : j+1])

			if length <= 8 && noSeparator.MatchString(token) {
				if c, ok := bestNoSeparatorCandidate(token); ok {
					out = append(out, dateMatch(i, j, token, c, ""))
				}
			}
			if length >= 6 && length <= 10 {
				if sub := withSeparator.FindStringSubmatch(token); sub != nil {
					a, _ := strconv.Atoi(sub[1])
					sep := sub[2]
					b, _ := strconv.Atoi(sub[3])
					c, _ := strconv.Atoi(sub[4])
					if cand, ok := mapToDMY(a, b, c); ok {
						out = append(out, dateMatch(i, j, token, cand, sep))
					}
				}
			}
		}
	}
	return pruneContained(out)
}

// bestNoSeparatorCandidate tries every split for len(token) and keeps the
// candidate whose year is nearest referenceYear.
func bestNoSeparatorCandidate(token string) (candidate, bool) {
	splits, ok := splitsByLength[len(token)]
	if !ok {
		return candidate{}, false
	}

	var best candidate
	haveBest := false
	for _, s := range splits {
		a, erra := strconv.Atoi(token[0:s.k])
		b, errb := strconv.Atoi(token[s.k:s.l])
		c, errc := strconv.Atoi(token[s.l:])
		if erra != nil || errb != nil || errc != nil {
			continue
		}
		cand, ok := mapToDMY(a, b, c)
		if !ok {
			continue
		}
		if !haveBest || abs(cand.year-referenceYear) < abs(best.year-referenceYear) {
			best = cand
			haveBest = true
		}
	}
	return best, haveBest
}

// mapToDMY resolves three integer fields (a, b, c) to a (day, month,
// year) triple, per the fixed validation and disambiguation rules: the
// middle field b must lie in 1..31 or the whole triple is rejected; year
// may be either a or c, in either 4-digit or 2-digit form, and the two
// remaining fields are read as day and month in either order.
func mapToDMY(a, b, c int) (candidate, bool) {
	for _, v := range []int{a, b, c} {
		if (v > 99 && v < minYear) || v > maxYear {
			return candidate{}, false
		}
	}

	if b > 31 || b <= 0 {
		return candidate{}, false
	}

	over31 := 0
	over12 := 0
	nonPositive := 0
	for _, v := range []int{a, b, c} {
		if v > 31 {
			over31++
		}
		if v > 12 {
			over12++
		}
		if v <= 0 {
			nonPositive++
		}
	}
	if over31 >= 2 || over12 == 3 || nonPositive >= 2 {
		return candidate{}, false
	}

	// Try year = c (4-digit), then year = a (4-digit), then each with a
	// 2-digit year expansion.
	for _, attempt := range []struct {
		year     int
		dm       [2]int
		twoDigit bool
	}{
		{c, [2]int{a, b}, false},
		{a, [2]int{b, c}, false},
		{expandTwoDigitYear(c), [2]int{a, b}, true},
		{expandTwoDigitYear(a), [2]int{b, c}, true},
	} {
		if attempt.year < minYear || attempt.year > maxYear {
			continue
		}
		if cand, ok := resolveDayMonth(attempt.year, attempt.dm[0], attempt.dm[1]); ok {
			return cand, true
		}
	}
	return candidate{}, false
}

// resolveDayMonth accepts (year, x, y) if either (day=x, month=y) or
// (day=y, month=x) is a plausible calendar date.
func resolveDayMonth(year, x, y int) (candidate, bool) {
	if x >= 1 && x <= 31 && y >= 1 && y <= 12 {
		return candidate{day: x, month: y, year: year}, true
	}
	if y >= 1 && y <= 31 && x >= 1 && x <= 12 {
		return candidate{day: y, month: x, year: year}, true
	}
	return candidate{}, false
}

// expandTwoDigitYear maps a 2-digit value to its likely century: values
// above 50 are assumed 1900s, others 2000s.
func expandTwoDigitYear(v int) int {
	if v > 50 {
		return 1900 + v
	}
	return 2000 + v
}

func dateMatch(i, j int, token string, c candidate, separator string) matching.Match {
	entropy := numerics.Log2(float64(maxInt(abs(c.year-referenceYear), minYearSpace))*365)
	if separator != "" {
		entropy += 2
	}
	return matching.Match{
		Pattern:   matching.KindDate,
		I:         i,
		J:         j,
		Token:     token,
		Year:      c.year,
		Month:     c.month,
		Day:       c.day,
		Separator: separator,
		Entropy:   entropy,
	}
}

// pruneContained removes any match whose span is strictly narrower than
// another match's span; of several matches with the same span, only the
// first is kept.
func pruneContained(matches []matching.Match) []matching.Match {
	var out []matching.Match
	for a, m := range matches {
		contained := false
		for b, other := range matches {
			if a == b {
				continue
			}
			if other.I <= m.I && other.J >= m.J && (other.I != m.I || other.J != m.J) {
				contained = true
				break
			}
			// Equal spans: keep only the first occurrence.
			if a != b && other.I == m.I && other.J == m.J && b < a {
				contained = true
				break
			}
		}
		if !contained {
			out = append(out, m)
		}
	}
	return out
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
