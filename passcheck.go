// Package passcheck estimates how hard a password would be to guess.
//
// Unlike a rule checklist (minimum length, one uppercase letter, one
// digit, ...), this package models an attacker: it decomposes the
// password into the patterns a guessing attack would try first
// (dictionary words, leetspeak variants, keyboard walks, repeats,
// sequences, dates, years) and picks the cheapest explanation, then
// reports the resulting entropy, estimated crack times at several
// attacker speeds, a 0-4 score, and human-readable feedback.
//
// # Usage
//
//	engine, err := passcheck.DefaultEngine()
//	if err != nil {
//		log.Fatal(err)
//	}
//	result := engine.Evaluate("correcthorsebatterystaple", nil)
//	fmt.Println(result.Score)       // 4
//	fmt.Println(result.ScoreText)   // "Very unguessable: ..."
//	fmt.Println(result.WarningText) // "" (no warning at this score)
//
// [MatchPassword] is a convenience for one-off checks that do not need a
// reusable [Engine]:
//
//	result := passcheck.MatchPassword("hunter2")
//
// # User-specific context
//
// Pass usernames, email addresses, or other account-specific terms as
// userInputs; they are matched (and their leetspeak variants) the same
// way built-in dictionary words are, so a password built from a user's
// own name or email scores appropriately low.
//
// # Locale
//
// Engine.SetLocale selects the language warnings and suggestions are
// translated into via the [localize.Localizer] supplied at construction; English
// is the canonical fallback for any phrase the localizer cannot
// translate.
//
// # Security considerations
//
// Passwords are Go strings, which are immutable and garbage-collected;
// this package cannot zero them from memory after use. [Engine.EvaluateBytes]
// accepts a mutable byte slice and zeros it immediately after the string
// conversion, reducing the window during which plaintext resides in
// memory. [Result.Destroy] best-effort overwrites the token-bearing
// fields of a result's match sequence for the same reason.
//
// This package never logs, prints, or persists passwords. A maximum
// input length of [MaxPasswordLength] runes is enforced to bound the
// cost of the dictionary and leet matchers, which are quadratic and
// combinatorial respectively; inputs beyond this limit are truncated
// before analysis.
package passcheck

import (
	"fmt"

	"github.com/go-passcheck/passcheck/internal/dictsource"
	"github.com/go-passcheck/passcheck/internal/localize"
	"github.com/go-passcheck/passcheck/internal/matchers"
	"github.com/go-passcheck/passcheck/internal/matching"
	"github.com/go-passcheck/passcheck/internal/safemem"
	"github.com/go-passcheck/passcheck/internal/search"
	"golang.org/x/text/language"
)

// MaxPasswordLength is the maximum number of runes analyzed. Inputs
// longer than this are truncated to bound the cost of the quadratic
// dictionary scan and the combinatorial leet-mapping enumeration.
const MaxPasswordLength = 1024

// Result is the outcome of evaluating one password.
type Result = search.Result

// Engine is a reusable password-strength evaluator. Its dictionaries,
// spatial-keyboard graphs, and fixed substitution/split tables are built
// once at construction and never mutated afterward, so an Engine is safe
// to share across concurrent callers. Per-call state (user inputs, the
// returned Result) does not touch the Engine.
type Engine struct {
	factory *matchers.Factory
	loc     localize.Localizer
	locale  string
}

// NewEngine builds an Engine that loads its built-in dictionaries from
// src and translates feedback via loc (pass nil for English-only
// output). It fails if src cannot supply a required dictionary.
func NewEngine(src dictsource.Source, loc localize.Localizer) (*Engine, error) {
	return NewEngineWithConfig(src, loc, DefaultConfig())
}

// NewEngineWithConfig builds an Engine as [NewEngine] does, additionally
// validating cfg and applying its initial locale.
func NewEngineWithConfig(src dictsource.Source, loc localize.Localizer, cfg Config) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	factory, err := matchers.New(src)
	if err != nil {
		return nil, fmt.Errorf("passcheck: %w", err)
	}
	return &Engine{factory: factory, loc: loc, locale: cfg.Locale}, nil
}

// DefaultEngine builds an Engine backed by the embedded built-in
// dictionaries and the default English/French/German catalog. This
// never returns an error in practice (the embedded dictionaries always
// load) but still reports the construction-error contract any
// [dictsource.Source] is subject to.
func DefaultEngine() (*Engine, error) {
	return NewEngine(dictsource.Embedded{}, localize.Default())
}

// SetLocale changes the locale used to translate future Evaluate calls'
// warnings and suggestions (e.g. "fr-CA", "de-DE"). An invalid BCP-47
// tag is rejected; the Engine's locale is left unchanged.
func (e *Engine) SetLocale(localeTag string) error {
	if localeTag != "" {
		if _, err := language.Parse(localeTag); err != nil {
			return fmt.Errorf("passcheck: SetLocale: %w", err)
		}
	}
	e.locale = localeTag
	return nil
}

// Evaluate estimates the strength of password, treating userInputs
// (e.g. username, email, full name) as additional dictionary entries so
// that a password built from the user's own context scores
// appropriately low. userInputs may be nil.
//
// Passwords longer than [MaxPasswordLength] runes are truncated before
// analysis.
func (e *Engine) Evaluate(password string, userInputs []string) Result {
	pw := truncate(password)

	var candidates []matching.Match
	for _, m := range e.factory.Create(userInputs) {
		candidates = append(candidates, m.Match(pw)...)
	}

	return search.Evaluate(pw, candidates, e.locale, e.loc)
}

// EvaluateBytes evaluates password strength from a mutable byte slice.
// After converting the input to a string for analysis, the original
// byte slice is zeroed to minimize the time plaintext resides in
// process memory. The caller must not reuse the slice afterward.
func (e *Engine) EvaluateBytes(password []byte, userInputs []string) Result {
	s := string(password)
	safemem.Zero(password)
	return e.Evaluate(s, userInputs)
}

// MatchPassword is a convenience for one-off checks that do not need a
// reusable [Engine]: it builds a [DefaultEngine] and evaluates password
// against it. Prefer constructing an Engine directly and reusing it
// across calls when checking more than a handful of passwords, since
// this constructs the full dictionary set on every call. Panics if
// DefaultEngine fails, which it does not in practice since it is backed
// by the embedded built-in dictionaries.
func MatchPassword(password string, userInputs ...string) Result {
	engine, err := DefaultEngine()
	if err != nil {
		panic(err)
	}
	return engine.Evaluate(password, userInputs)
}

// truncate returns password unchanged if it is within
// [MaxPasswordLength] runes, or the first MaxPasswordLength runes
// otherwise.
func truncate(password string) string {
	runes := []rune(password)
	if len(runes) <= MaxPasswordLength {
		return password
	}
	return string(runes[:MaxPasswordLength])
}
