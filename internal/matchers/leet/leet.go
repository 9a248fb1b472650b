// Package leet implements the leetspeak matcher: it enumerates every
// plausible leet-substitution mapping for a password, runs the
// dictionary matchers over each translated variant, and re-scores the
// resulting hits against the original glyphs.
//
// This is the most combinatorially expensive matcher in the engine: a
// password using several ambiguous leet glyphs (e.g. '1' could stand for
// either 'i' or 'l') produces one translated variant per distinct
// mapping, and every variant is run through every dictionary. The
// mapping enumeration below is deliberately iterative rather than
// recursive so the intermediate mapping count is visible and bounded by
// the number of distinct leet glyphs actually present in the password,
// not by password length.
package leet

import (
	"sort"
	"strings"

	"github.com/go-passcheck/passcheck/internal/matchers/dictionary"
	"github.com/go-passcheck/passcheck/internal/matching"
	"github.com/go-passcheck/passcheck/internal/numerics"
)

// substitution is one (base, leetGlyphs) entry of the fixed table.
type substitution struct {
	base  rune
	leets string
}

// DefaultTable is the fixed leetspeak substitution table. Order matters:
// it fixes the enumeration order of [EnumerateMappings], which in turn
// fixes which distinct mappings are produced first (and therefore which
// duplicate spans are discarded by the matcher's consecutive-dedup rule).
var DefaultTable = []struct {
	Base  rune
	Leets string
}{
	{'a', "4@"},
	{'b', "86"},
	{'c', "({[<"},
	{'e', "3"},
	{'g', "69"},
	{'i', "1!|"},
	{'l', "1|7"},
	{'o', "0"},
	{'q', "9"},
	{'s', "$5"},
	{'t', "+7"},
	{'x', "%"},
	{'z', "2"},
}

// EnumerateMappings returns every distinct mapping from a leet glyph
// present in password back to a single base character, derived from
// table. Starting from the empty mapping, each (base, leet) pair whose
// leet glyph occurs in password either extends every existing mapping in
// place (if that mapping has no entry yet for leet) or forks a duplicate
// mapping carrying the new assignment (if it does) — so a glyph that can
// stand for more than one base character, like '1' for 'i' or 'l',
// produces one branch per choice.
func EnumerateMappings(password string, table []struct {
	Base  rune
	Leets string
}) []map[rune]rune {
	mappings := []map[rune]rune{{}}

	for _, sub := range table {
		for _, l := range sub.Leets {
			if !strings.ContainsRune(password, l) {
				continue
			}
			var next []map[rune]rune
			for _, m := range mappings {
				if _, exists := m[l]; !exists {
					m[l] = sub.Base
					next = append(next, m)
				} else {
					dup := make(map[rune]rune, len(m)+1)
					for k, v := range m {
						dup[k] = v
					}
					dup[l] = sub.Base
					next = append(next, m, dup)
				}
			}
			mappings = next
		}
	}
	return mappings
}

// translate returns password with every rune present in m replaced by
// its mapped base character; runes absent from m are left untouched.
func translate(password string, m map[rune]rune) string {
	runes := []rune(password)
	for i, r := range runes {
		if repl, ok := m[r]; ok {
			runes[i] = repl
		}
	}
	return string(runes)
}

// Matcher runs the leetspeak matcher over one or more dictionary
// matchers, scoped to the set of dictionaries the caller wants leet
// variants checked against (typically every built-in dictionary plus,
// per request, the caller-supplied user-inputs dictionary).
type Matcher struct {
	Dictionaries []*dictionary.Matcher
	Table        []struct {
		Base  rune
		Leets string
	}
}

// NewMatcher builds a leet Matcher over dicts using [DefaultTable].
func NewMatcher(dicts ...*dictionary.Matcher) *Matcher {
	return &Matcher{Dictionaries: dicts, Table: DefaultTable}
}

// Match implements the leetspeak matcher contract: for every generated
// substitution mapping, translate password and run every dictionary
// matcher against the translation; for each hit, recover the original
// glyphs, compute the substitutions actually used within that span, and
// emit a Leet match unless no substitution was used or it duplicates the
// immediately preceding emission.
func (m *Matcher) Match(password string) []matching.Match {
	if m == nil || len(m.Dictionaries) == 0 {
		return nil
	}

	mappings := EnumerateMappings(password, m.Table)
	runes := []rune(password)

	var out []matching.Match
	var lastI, lastJ = -1, -1
	var lastToken string
	haveLast := false

	for _, mapping := range mappings {
		translated := translate(password, mapping)
		for _, dm := range m.Dictionaries {
			for _, hit := range dm.Match(translated) {
				token := string(runes[hit.I : hit.J+1])

				used := usedSubs(mapping, token)
				if len(used) == 0 {
					continue
				}
				if haveLast && hit.I == lastI && hit.J == lastJ && token == lastToken {
					continue
				}

				entropy, l33tEntropy, newUpper := leetEntropy(used, token, hit)

				out = append(out, matching.Match{
					Pattern:          matching.KindLeet,
					I:                hit.I,
					J:                hit.J,
					Token:            token,
					MatchedWord:      hit.MatchedWord,
					Rank:             hit.Rank,
					DictionaryName:   hit.DictionaryName,
					BaseEntropy:      hit.BaseEntropy,
					UppercaseEntropy: newUpper,
					Subs:             used,
					L33tEntropy:      l33tEntropy,
					Entropy:          entropy,
				})

				lastI, lastJ, lastToken, haveLast = hit.I, hit.J, token, true
			}
		}
	}
	return out
}

// usedSubs returns the subset of mapping whose leet key actually occurs
// within token.
func usedSubs(mapping map[rune]rune, token string) map[rune]rune {
	var used map[rune]rune
	for leet, base := range mapping {
		if strings.ContainsRune(token, leet) {
			if used == nil {
				used = make(map[rune]rune)
			}
			used[leet] = base
		}
	}
	return used
}

// leetEntropy computes the final entropy for a leet match, reproducing
// the source's running-total accumulation of subbed/unsubbed character
// counts across substitution pairs (later pairs see the combined counts
// of every pair processed so far — preserved intentionally, not a fix;
// see DESIGN.md).
func leetEntropy(used map[rune]rune, token string, base matching.Match) (entropy, l33tEntropy, newUpper float64) {
	leets := make([]rune, 0, len(used))
	for l := range used {
		leets = append(leets, l)
	}
	sort.Slice(leets, func(i, j int) bool { return leets[i] < leets[j] })

	possibilities := 0.0
	subbedRunning, unsubbedRunning := 0, 0
	for _, l := range leets {
		b := used[l]
		subbedRunning += strings.Count(token, string(l))
		unsubbedRunning += strings.Count(token, string(b))

		limit := subbedRunning
		if unsubbedRunning < limit {
			limit = unsubbedRunning
		}
		for i := 0; i <= limit+1; i++ {
			possibilities += numerics.Binomial(subbedRunning+unsubbedRunning, i)
		}
	}

	l33tEntropy = 1
	if possibilities > 1 {
		l33tEntropy = numerics.Log2(possibilities)
		if l33tEntropy < 1 {
			l33tEntropy = 1
		}
	}

	newUpper = numerics.UppercaseEntropy(token)
	entropy = base.BaseEntropy + newUpper + l33tEntropy
	return entropy, l33tEntropy, newUpper
}
