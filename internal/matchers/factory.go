// Package matchers assembles the full set of pattern matchers the
// search engine runs a password against: the long-lived, engine-wide
// matchers built once at construction, plus the per-request user-inputs
// dictionary and its leet companion.
package matchers

import (
	"fmt"
	"strings"

	"github.com/go-passcheck/passcheck/internal/dictsource"
	"github.com/go-passcheck/passcheck/internal/matchers/date"
	"github.com/go-passcheck/passcheck/internal/matchers/dictionary"
	"github.com/go-passcheck/passcheck/internal/matchers/leet"
	"github.com/go-passcheck/passcheck/internal/matchers/regexmatch"
	"github.com/go-passcheck/passcheck/internal/matchers/repeat"
	"github.com/go-passcheck/passcheck/internal/matchers/sequence"
	"github.com/go-passcheck/passcheck/internal/matchers/spatial"
	"github.com/go-passcheck/passcheck/internal/matching"
)

// Matcher is the contract every pattern matcher implements.
type Matcher interface {
	Match(password string) []matching.Match
}

// dictionaryNames are the built-in lists loaded at construction, in the
// order the factory queries the DictionarySource.
var dictionaryNames = []string{
	dictsource.NamePasswords,
	dictsource.NameEnglish,
	dictsource.NameMaleNames,
	dictsource.NameFemaleNames,
	dictsource.NameSurnames,
	dictsource.NameTVFilm,
}

// Factory holds the engine's long-lived matchers: built once from a
// DictionarySource at construction, reused across every Evaluate call.
type Factory struct {
	dictionaryMatchers []*dictionary.Matcher
	fixed              []Matcher
}

// New builds a Factory by loading every built-in dictionary from src and
// constructing the fixed (non-dictionary) matchers. It fails if any
// named dictionary cannot be loaded.
func New(src dictsource.Source) (*Factory, error) {
	f := &Factory{}

	for _, name := range dictionaryNames {
		words, err := src.Load(name)
		if err != nil {
			return nil, fmt.Errorf("matchers: loading dictionary %q: %w", name, err)
		}
		dm := dictionary.NewMatcher(dictionary.New(name, words))
		f.dictionaryMatchers = append(f.dictionaryMatchers, dm)
	}

	f.fixed = []Matcher{
		leet.NewMatcher(f.dictionaryMatchers...),
		spatial.NewMatcher(),
		repeat.NewMatcher(),
		sequence.NewMatcher(),
		regexmatch.Digits(),
		regexmatch.Year(),
		date.NewMatcher(),
	}
	for _, dm := range f.dictionaryMatchers {
		f.fixed = append(f.fixed, dm)
	}

	return f, nil
}

// Create returns the engine's matcher list for one Evaluate call. If
// userInputs is non-empty, it is expanded (email addresses and
// separator-joined terms are split into their component words) into a
// per-request "user_inputs" dictionary matcher, plus a leet matcher
// scoped to that single dictionary; both are appended to the fixed list.
// An empty userInputs omits both.
func (f *Factory) Create(userInputs []string) []Matcher {
	out := make([]Matcher, len(f.fixed))
	copy(out, f.fixed)

	words := expandUserInputs(userInputs)
	if len(words) == 0 {
		return out
	}

	rd := dictionary.New(matching.DictUserInputs, words)
	dm := dictionary.NewMatcher(rd)
	out = append(out, dm, leet.NewMatcher(dm))
	return out
}

// expandUserInputs normalizes each caller-supplied term and breaks it
// into the sub-words a user is likely to have reused in their password:
// email addresses are split into local-part and domain components, and
// any term is further split on '.', '-', '_', and ' '. Terms (and
// sub-words) shorter than 3 characters are dropped to avoid noisy
// single-letter dictionary hits.
func expandUserInputs(userInputs []string) []string {
	seen := make(map[string]bool)
	var words []string
	add := func(w string) {
		w = strings.TrimSpace(strings.ToLower(w))
		if len(w) < 3 || seen[w] {
			return
		}
		seen[w] = true
		words = append(words, w)
	}

	for _, raw := range userInputs {
		term := strings.TrimSpace(strings.ToLower(raw))
		if term == "" {
			continue
		}
		add(term)
		if strings.Contains(term, "@") {
			for _, part := range emailParts(term) {
				add(part)
			}
			continue
		}
		for _, part := range splitOnSeparators(term) {
			add(part)
		}
	}
	return words
}

// emailParts splits an address into its local part, each dot-separated
// domain label, and any hyphen/underscore-separated sub-parts of those
// labels.
func emailParts(email string) []string {
	at := strings.SplitN(email, "@", 2)
	if len(at) != 2 {
		return []string{email}
	}
	var parts []string
	parts = append(parts, splitOnSeparators(at[0])...)
	for _, label := range strings.Split(at[1], ".") {
		parts = append(parts, label)
		parts = append(parts, splitOnSeparators(label)...)
	}
	return parts
}

// splitOnSeparators splits term on '.', '-', '_', and ' ' (other
// whitespace characters are not separators).
func splitOnSeparators(term string) []string {
	return strings.FieldsFunc(term, func(r rune) bool {
		return r == '.' || r == '-' || r == '_' || r == ' '
	})
}
