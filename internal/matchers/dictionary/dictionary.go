// Package dictionary implements the dictionary matcher (one matcher
// instance per named word list): it finds every substring of a password
// that exactly equals a word in a ranked dictionary.
package dictionary

import (
	"strings"

	"github.com/go-passcheck/passcheck/internal/matching"
	"github.com/go-passcheck/passcheck/internal/numerics"
)

// RankedDictionary maps a lowercase word to its rank (1 = most common).
// Ranks are derived from insertion order; duplicate words keep the rank
// of their first occurrence.
type RankedDictionary struct {
	Name string
	rank map[string]int
}

// New builds a RankedDictionary named name from words, which must already
// be ordered from most to least common. Words are lowercased; the first
// occurrence of a duplicate wins its rank.
func New(name string, words []string) *RankedDictionary {
	rd := &RankedDictionary{Name: name, rank: make(map[string]int, len(words))}
	next := 1
	for _, w := range words {
		w = strings.ToLower(strings.TrimSpace(w))
		if w == "" {
			continue
		}
		if _, exists := rd.rank[w]; exists {
			continue
		}
		rd.rank[w] = next
		next++
	}
	return rd
}

// Rank returns the rank of word (already lowercase) and whether it is
// present in the dictionary.
func (rd *RankedDictionary) Rank(word string) (int, bool) {
	r, ok := rd.rank[word]
	return r, ok
}

// Len reports how many distinct words the dictionary holds.
func (rd *RankedDictionary) Len() int {
	return len(rd.rank)
}

// Matcher finds every substring of a password present in its dictionary.
type Matcher struct {
	Dict *RankedDictionary
}

// NewMatcher wraps dict in a Matcher ready to run against passwords.
func NewMatcher(dict *RankedDictionary) *Matcher {
	return &Matcher{Dict: dict}
}

// Match returns one matching.Match per (i, j) substring of password whose
// lowercase form is present in the dictionary. This is exhaustive over
// all O(n^2) substrings, as the matching contract requires.
func (m *Matcher) Match(password string) []matching.Match {
	if m == nil || m.Dict == nil {
		return nil
	}
	runes := []rune(password)
	n := len(runes)

	var out []matching.Match
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			token := string(runes[i : j+1])
			lower := strings.ToLower(token)
			rank, ok := m.Dict.Rank(lower)
			if !ok {
				continue
			}
			base := numerics.Log2(float64(rank))
			upper := numerics.UppercaseEntropy(token)
			out = append(out, matching.Match{
				Pattern:          matching.KindDictionary,
				I:                i,
				J:                j,
				Token:            token,
				MatchedWord:      lower,
				Rank:             rank,
				DictionaryName:   m.Dict.Name,
				BaseEntropy:      base,
				UppercaseEntropy: upper,
				Entropy:          base + upper,
			})
		}
	}
	return out
}
