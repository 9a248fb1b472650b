// Package regexmatch implements a generic regex-driven matcher,
// instantiated by the matcher factory for the digits and year patterns.
package regexmatch

import (
	"regexp"

	"github.com/go-passcheck/passcheck/internal/matching"
	"github.com/go-passcheck/passcheck/internal/numerics"
)

// PerCharacter and PerMatch select how a Matcher's cardinality feeds into
// its entropy formula: PerCharacter raises cardinality to the power of
// the match length; PerMatch takes log2(cardinality) once per hit.
const (
	PerCharacter = "per_character"
	PerMatch     = "per_match"
)

// Matcher finds every non-overlapping occurrence of a fixed regular
// expression and scores it with a fixed cardinality under a fixed mode.
type Matcher struct {
	Pattern     *regexp.Regexp
	Cardinality int
	Mode        string
}

// Digits matches runs of three or more digits.
func Digits() *Matcher {
	return &Matcher{Pattern: regexp.MustCompile(`\d{3,}`), Cardinality: 10, Mode: PerCharacter}
}

// Year matches a bare four-digit year in 1900-2019, the fixed range
// frozen by the source regex.
func Year() *Matcher {
	return &Matcher{Pattern: regexp.MustCompile(`19\d\d|200\d|201\d`), Cardinality: 119, Mode: PerMatch}
}

// Match returns one Regex match per occurrence of m.Pattern in password.
func (m *Matcher) Match(password string) []matching.Match {
	if m == nil || m.Pattern == nil {
		return nil
	}
	runes := []rune(password)
	locs := m.Pattern.FindAllStringIndex(password, -1)

	var out []matching.Match
	for _, loc := range locs {
		i := len([]rune(password[:loc[0]]))
		j := i + len([]rune(password[loc[0]:loc[1]])) - 1
		token := string(runes[i : j+1])

		var entropy float64
		switch m.Mode {
		case PerCharacter:
			entropy = numerics.Log2(pow(float64(m.Cardinality), len(runes[i:j+1])))
		default:
			entropy = numerics.Log2(float64(m.Cardinality))
		}

		out = append(out, matching.Match{
			Pattern: matching.KindRegex,
			I:       i,
			J:       j,
			Token:   token,
			Entropy: entropy,
		})
	}
	return out
}

func pow(base float64, exp int) float64 {
	result := 1.0
	for i := 0; i < exp; i++ {
		result *= base
	}
	return result
}
