// Package matching defines the tagged Match type shared by every pattern
// matcher and consumed by the search/scoring engine.
//
// The source this engine is modeled on represents matches as a class
// hierarchy with runtime type tests. Go has no inheritance, so a Match is
// instead one struct with a Pattern tag and a set of variant-specific
// fields that are only populated for their own Pattern — the "tagged sum"
// shape recommended for re-architecting that hierarchy.
package matching

import "github.com/go-passcheck/passcheck/internal/localize"

// Kind identifies which matcher produced a Match.
type Kind string

// The matcher tags. These are also used as the stable wire/debug values
// for Match.Pattern.
const (
	KindDictionary        Kind = "dictionary"
	KindReverseDictionary Kind = "reverse_dictionary"
	KindLeet              Kind = "l33t"
	KindSpatial           Kind = "spatial"
	KindRepeat            Kind = "repeat"
	KindSequence          Kind = "sequence"
	KindRegex             Kind = "regex"
	KindDate              Kind = "date"
	KindBruteforce        Kind = "bruteforce"
)

// Match is the common representation emitted by every matcher and
// consumed by the search engine. I and J are inclusive rune indices into
// the password (0 ≤ I ≤ J), so Token == password[I..J].
//
// Only the fields relevant to Pattern are meaningful; the rest are left
// at their zero value. This mirrors the per-variant "extension" fields
// described for each matcher.
type Match struct {
	Pattern Kind
	I, J    int
	Token   string
	Entropy float64

	// Dictionary / Leet (Leet extends these).
	MatchedWord      string
	Rank             int
	DictionaryName   string
	BaseEntropy      float64
	UppercaseEntropy float64

	// Leet-only.
	Subs        map[rune]rune // leet rune -> base rune actually used
	L33tEntropy float64

	// Spatial.
	Graph        string
	Turns        int
	ShiftedCount int

	// Repeat.
	BaseToken   string
	RepeatCount int

	// Sequence.
	SequenceName string // "lower" | "upper" | "digits"
	SequenceSize int
	Ascending    bool

	// Date.
	Year, Month, Day int
	Separator        string
}

// Clone returns a deep copy of m (the Subs map, if any, is copied so
// mutating the clone's map never affects m's).
func (m Match) Clone() Match {
	out := m
	if m.Subs != nil {
		out.Subs = make(map[rune]rune, len(m.Subs))
		for k, v := range m.Subs {
			out.Subs[k] = v
		}
	}
	return out
}

// Wipe overwrites the token-bearing fields of m so that cleartext does
// not outlive a discarded match. This is a best-effort contract, not an
// operational guarantee — see internal/safemem for the caveats that apply
// to any Go string.
func (m *Match) Wipe() {
	m.Token = ""
	m.MatchedWord = ""
	m.BaseToken = ""
	m.Subs = nil
}

// Canonical English phrases. These are the fixed vocabulary a Localizer
// implementation may translate; see internal/localize.
const (
	WarnTop10Common           = "This is a top-10 common password"
	WarnTop100Common          = "This is a top-100 common password"
	WarnVeryCommonPassword    = "This is a very common password"
	WarnSimilarToCommon       = "This is similar to a commonly used password"
	WarnWordByItself          = "A word by itself is easy to guess"
	WarnNamesSurnames         = "Names and surnames by themselves are easy to guess"
	WarnCommonNamesSurnames   = "Common names and surnames are easy to guess"
	WarnStraightRow           = "Straight rows of keys are easy to guess"
	WarnShortKeyboardPatterns = "Short keyboard patterns are easy to guess"
	WarnRepeatsAaa            = `Repeats like "aaa" are easy to guess`
	WarnRepeatsAbcAbcAbc      = `Repeats like "abcabcabc" are only slightly harder to guess than "abc"`
	WarnSequences             = "Sequences like abc or 6543 are easy to guess"
	WarnRecentYears           = "Recent years are easy to guess"
	WarnDates                 = "Dates are often easy to guess"
	WarnThisIsUsedFrequently  = "This is similar to a commonly used password"
)

const (
	SuggestUseFewWords             = "Use a few words, avoid common phrases"
	SuggestNoNeedSymbols           = "No need for symbols, digits, or uppercase letters"
	SuggestAddAnotherWord          = "Add another word or two. Uncommon words are better."
	SuggestLongerKeyboardPattern   = "Use a longer keyboard pattern with more turns"
	SuggestAvoidRepeats            = "Avoid repeated words and characters"
	SuggestAvoidSequences          = "Avoid sequences"
	SuggestAvoidRecentYears        = "Avoid recent years"
	SuggestAvoidDatesYears         = "Avoid dates and years that are associated with you"
	SuggestCapsDontHelp            = "Capitalization doesn't help very much"
	SuggestAllCapsEasy             = "All-uppercase is almost as easy to guess as all-lowercase"
	SuggestPredictableSubstitution = "Predictable substitutions like '@' instead of 'a' don't help very much"
)

// Duration units, used by the search package's crack-time display.
const (
	DurationInstant   = "instant"
	DurationMinutes   = "minutes"
	DurationHours     = "hours"
	DurationDays      = "days"
	DurationMonths    = "months"
	DurationYears     = "years"
	DurationCenturies = "centuries"
)

// Score texts, one per integer score 0-4.
var ScoreTexts = [5]string{
	"Too guessable: risky password.",
	"Very guessable: protection from throttled online attacks.",
	"Somewhat guessable: protection from unthrottled online attacks.",
	"Safely unguessable: moderate protection from offline slow-hash scenario.",
	"Very unguessable: strong protection from offline slow-hash scenario.",
}

// Sequence alphabet names, used both by the sequence matcher and Match.SequenceName.
const (
	SequenceLower  = "lower"
	SequenceUpper  = "upper"
	SequenceDigits = "digits"
)

// dictionary name constants, used both by the dictionary matcher and by
// Feedback to choose a category-appropriate warning.
const (
	DictPasswords  = "passwords"
	DictEnglish    = "english_wikipedia"
	DictMaleNames  = "male_names"
	DictFemaleNames = "female_names"
	DictSurnames   = "surnames"
	DictTVFilm     = "us_tv_and_film"
	DictUserInputs = "user_inputs"
)

// Feedback returns the localized warning (may be empty) and suggestions
// for m, following the default feedback catalog for m.Pattern. isSole
// indicates this match is the only element of the chosen decomposition
// (sequence length 1); some variants phrase their warning differently in
// that case.
func (m Match) Feedback(isSole bool, score int, locale string, loc localize.Localizer) (warning string, suggestions []string) {
	w, s := m.feedbackCanonical(isSole, score)
	if loc == nil {
		return w, s
	}
	if w != "" {
		w = loc.Translate(w, locale)
	}
	translated := make([]string, len(s))
	for i, phrase := range s {
		translated[i] = loc.Translate(phrase, locale)
	}
	return w, translated
}

func (m Match) feedbackCanonical(isSole bool, score int) (string, []string) {
	switch m.Pattern {
	case KindDictionary:
		return dictionaryFeedback(m, isSole, false, score)
	case KindLeet:
		warning, suggestions := dictionaryFeedback(m, isSole, true, score)
		suggestions = append(suggestions, SuggestPredictableSubstitution)
		return warning, suggestions
	case KindSpatial:
		if m.Turns <= 1 {
			return WarnStraightRow, []string{SuggestLongerKeyboardPattern}
		}
		return WarnShortKeyboardPatterns, []string{SuggestLongerKeyboardPattern}
	case KindRepeat:
		if len([]rune(m.BaseToken)) == 1 {
			return WarnRepeatsAaa, []string{SuggestAvoidRepeats}
		}
		return WarnRepeatsAbcAbcAbc, []string{SuggestAvoidRepeats}
	case KindSequence:
		return WarnSequences, []string{SuggestAvoidSequences}
	case KindDate:
		return WarnDates, []string{SuggestAvoidDatesYears}
	case KindRegex:
		return WarnRecentYears, []string{SuggestAvoidRecentYears}
	default:
		return "", nil
	}
}

func dictionaryFeedback(m Match, isSole, isLeet bool, score int) (string, []string) {
	switch m.DictionaryName {
	case DictPasswords:
		if isSole && !isLeet {
			switch {
			case m.Rank <= 10:
				return WarnTop10Common, []string{SuggestAddAnotherWord}
			case m.Rank <= 100:
				return WarnTop100Common, []string{SuggestAddAnotherWord}
			default:
				return WarnVeryCommonPassword, []string{SuggestAddAnotherWord}
			}
		}
		if score <= 1 {
			return WarnSimilarToCommon, []string{SuggestAddAnotherWord}
		}
		return "", []string{SuggestAddAnotherWord}
	case DictEnglish:
		if isSole {
			return WarnWordByItself, []string{SuggestAddAnotherWord}
		}
		return "", []string{SuggestAddAnotherWord}
	case DictMaleNames, DictFemaleNames, DictSurnames:
		if isSole {
			return WarnNamesSurnames, []string{SuggestAddAnotherWord}
		}
		return WarnCommonNamesSurnames, []string{SuggestAddAnotherWord}
	default:
		return "", []string{SuggestAddAnotherWord}
	}
}

// CapitalizationAdvice reports whether token's capitalization pattern
// warrants the "caps don't help" or "all-caps is easy" suggestion,
// independent of which matcher produced it.
func CapitalizationAdvice(token string) (suggestion string, ok bool) {
	runes := []rune(token)
	if len(runes) == 0 {
		return "", false
	}

	hasUpper, hasLower := false, false
	for _, r := range runes {
		switch {
		case r >= 'A' && r <= 'Z':
			hasUpper = true
		case r >= 'a' && r <= 'z':
			hasLower = true
		}
	}
	if !hasUpper {
		return "", false
	}
	if !hasLower {
		return SuggestAllCapsEasy, true
	}
	if (runes[0] >= 'A' && runes[0] <= 'Z') || (runes[len(runes)-1] >= 'A' && runes[len(runes)-1] <= 'Z') {
		return SuggestCapsDontHelp, true
	}
	return "", false
}
