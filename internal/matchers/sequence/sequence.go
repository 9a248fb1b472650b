// Package sequence implements the sequence matcher: it finds ascending
// or descending runs of consecutive code points drawn from the lower,
// upper, or digit alphabets.
package sequence

import (
	"github.com/go-passcheck/passcheck/internal/matching"
	"github.com/go-passcheck/passcheck/internal/numerics"
)

// alphabet is one named run-eligible character class.
type alphabet struct {
	name  string
	runes []rune
}

var alphabets = []alphabet{
	{matching.SequenceLower, []rune("abcdefghijklmnopqrstuvwxyz")},
	{matching.SequenceUpper, []rune("ABCDEFGHIJKLMNOPQRSTUVWXYZ")},
	{matching.SequenceDigits, []rune("0123456789")},
}

// minRunLength is the shortest run emitted as a match (spec requires
// length strictly greater than 2).
const minRunLength = 3

// Matcher finds sequence runs.
type Matcher struct{}

// NewMatcher builds a sequence Matcher.
func NewMatcher() *Matcher {
	return &Matcher{}
}

// Match walks password once; at each position it looks for the alphabet
// (and direction) whose next character continues from the current one,
// extends the run as far as it goes, and advances past it.
func (m *Matcher) Match(password string) []matching.Match {
	if m == nil {
		return nil
	}
	runes := []rune(password)
	n := len(runes)

	var out []matching.Match
	i := 0
	for i < n-1 {
		name, ascending, ok := direction(runes[i], runes[i+1])
		if !ok {
			i++
			continue
		}

		j := i + 1
		for j < n-1 {
			nextName, nextAsc, nextOK := direction(runes[j], runes[j+1])
			if !nextOK || nextAsc != ascending || nextName != name {
				break
			}
			j++
		}

		length := j - i + 1
		if length >= minRunLength {
			token := string(runes[i : j+1])
			out = append(out, matching.Match{
				Pattern:      matching.KindSequence,
				I:            i,
				J:            j,
				Token:        token,
				SequenceName: name,
				SequenceSize: length,
				Ascending:    ascending,
				Entropy:      sequenceEntropy(token, ascending),
			})
			i = j + 1
			continue
		}
		i++
	}
	return out
}

// direction reports which named alphabet a and b both belong to and
// whether b immediately follows (ascending) or precedes (descending) a
// in that alphabet, or ok=false if no alphabet has a and b adjacent.
func direction(a, b rune) (name string, ascending bool, ok bool) {
	for _, alpha := range alphabets {
		ia := indexOf(alpha.runes, a)
		ib := indexOf(alpha.runes, b)
		if ia < 0 || ib < 0 {
			continue
		}
		if ib == ia+1 {
			return alpha.name, true, true
		}
		if ib == ia-1 {
			return alpha.name, false, true
		}
	}
	return "", false, false
}

func indexOf(runes []rune, r rune) int {
	for i, x := range runes {
		if x == r {
			return i
		}
	}
	return -1
}

// sequenceEntropy implements the base-plus-direction-plus-length formula:
// base 1 for a run starting at 'a' or '1', log2(10) for another digit
// start, log2(26) for another lowercase start, log2(26)+1 otherwise
// (uppercase or any other start); +1 if descending; + log2(length).
func sequenceEntropy(token string, ascending bool) float64 {
	runes := []rune(token)
	first := runes[0]

	var base float64
	switch {
	case first == 'a' || first == '1':
		base = 1
	case first >= '0' && first <= '9':
		base = numerics.Log2(10)
	case first >= 'a' && first <= 'z':
		base = numerics.Log2(26)
	default:
		base = numerics.Log2(26) + 1
	}

	if !ascending {
		base++
	}
	return base + numerics.Log2(float64(len(runes)))
}
