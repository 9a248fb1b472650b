// Package repeat implements the repeat matcher: it finds maximal runs of
// a repeating unit (e.g. "aaaa", "abcabcabc") in a password.
package repeat

import (
	"regexp"

	"github.com/go-passcheck/passcheck/internal/matching"
	"github.com/go-passcheck/passcheck/internal/numerics"
)

var (
	greedy = regexp.MustCompile(`(.+)\1+`)
	lazy   = regexp.MustCompile(`(.+?)\1+`)
	// lazyAnchored recovers the minimal repeating unit of a string matched
	// in full by a greedy scan, by re-running the lazy pattern anchored at
	// the start of that string.
	lazyAnchored = regexp.MustCompile(`^(.+?)\1+$`)
)

// Matcher finds runs of a repeating unit.
type Matcher struct{}

// NewMatcher builds a repeat Matcher.
func NewMatcher() *Matcher {
	return &Matcher{}
}

// Match scans password left to right; at each unexamined index it tries
// both a greedy and a lazy repeating-run regex and keeps whichever run is
// longer, emits one Repeat match for it, and continues scanning from the
// run's end.
func (m *Matcher) Match(password string) []matching.Match {
	if m == nil {
		return nil
	}
	runes := []rune(password)
	n := len(runes)

	var out []matching.Match
	i := 0
	for i < n {
		rest := string(runes[i:])

		greedyLoc := greedy.FindStringSubmatchIndex(rest)
		lazyLoc := lazy.FindStringSubmatchIndex(rest)
		if greedyLoc == nil && lazyLoc == nil {
			i++
			continue
		}

		var matchStart, matchEnd int
		var base string
		switch {
		case greedyLoc == nil:
			matchStart, matchEnd = lazyLoc[0], lazyLoc[1]
			base = rest[lazyLoc[2]:lazyLoc[3]]
		case lazyLoc == nil:
			matchStart, matchEnd = greedyLoc[0], greedyLoc[1]
			base = recoverBase(rest[greedyLoc[0]:greedyLoc[1]])
		case greedyLoc[1]-greedyLoc[0] >= lazyLoc[1]-lazyLoc[0]:
			matchStart, matchEnd = greedyLoc[0], greedyLoc[1]
			base = recoverBase(rest[greedyLoc[0]:greedyLoc[1]])
		default:
			matchStart, matchEnd = lazyLoc[0], lazyLoc[1]
			base = rest[lazyLoc[2]:lazyLoc[3]]
		}

		// greedy/lazy are unanchored: the leftmost match can start past
		// rest[0], so the token must be sliced from the real match start,
		// not from the scan cursor.
		token := rest[matchStart:matchEnd]
		baseLen := len([]rune(base))
		if baseLen == 0 {
			i++
			continue
		}
		tokenLen := len([]rune(token))
		repeatCount := tokenLen / baseLen

		entropy := numerics.Log2(float64(numerics.Cardinality(base)) * float64(repeatCount))

		runeOffset := len([]rune(rest[:matchStart]))
		start := i + runeOffset

		out = append(out, matching.Match{
			Pattern:     matching.KindRepeat,
			I:           start,
			J:           start + tokenLen - 1,
			Token:       token,
			BaseToken:   base,
			RepeatCount: repeatCount,
			Entropy:     entropy,
		})

		i = start + tokenLen
	}
	return out
}

// recoverBase applies the anchored lazy pattern to a string already known
// to be a full greedy repeat-run, returning its minimal repeating unit.
func recoverBase(token string) string {
	loc := lazyAnchored.FindStringSubmatchIndex(token)
	if loc == nil {
		return token
	}
	return token[loc[2]:loc[3]]
}
