// Package search implements the dynamic-programming decomposition that
// selects the lowest-entropy way to explain a password as a sequence of
// matches, fills any gaps with synthetic brute-force matches, and
// derives crack-time estimates, score, and feedback from the result.
package search

import (
	"math"
	"strconv"

	"github.com/go-passcheck/passcheck/internal/localize"
	"github.com/go-passcheck/passcheck/internal/matching"
	"github.com/go-passcheck/passcheck/internal/numerics"
)

// Attacker guess speeds, guesses per second, per spec: throttled online
// (100/hour), unthrottled online (100/sec), slow offline hash (10^4/sec),
// fast offline hash (10^10/sec).
const (
	guessesPerSecondOnlineThrottled   = 100.0 / (60 * 60)
	guessesPerSecondOnlineUnthrottled = 100.0
	guessesPerSecondOfflineSlowHash   = 1e4
	guessesPerSecondOfflineFastHash   = 1e10
)

const (
	secondsPerMinute  = 60
	secondsPerHour    = 60 * secondsPerMinute
	secondsPerDay     = 24 * secondsPerHour
	secondsPerYear    = 365.2425 * secondsPerDay
	secondsPerMonth   = secondsPerYear / 12
	secondsPerCentury = 100 * secondsPerYear
)

// Result is the outcome of evaluating one password.
type Result struct {
	Password     string
	Entropy      float64
	Guesses      float64
	GuessesLog10 float64

	CrackTimeSecondsOnlineThrottled   float64
	CrackTimeSecondsOnlineUnthrottled float64
	CrackTimeSecondsOfflineSlowHash   float64
	CrackTimeSecondsOfflineFastHash   float64

	CrackTimeDisplayOnlineThrottled   string
	CrackTimeDisplayOnlineUnthrottled string
	CrackTimeDisplayOfflineSlowHash   string
	CrackTimeDisplayOfflineFastHash   string

	Score           int
	ScoreText       string
	MatchSequence   []matching.Match
	WarningText     string
	SuggestionsText []string
}

// Destroy overwrites the token-bearing fields of r's matches and its
// password, per the best-effort memory-hygiene contract; see
// internal/safemem for the caveats that apply to any Go string.
func (r *Result) Destroy() {
	for i := range r.MatchSequence {
		r.MatchSequence[i].Wipe()
	}
	r.Password = ""
}

// Evaluate runs the DP lowest-entropy decomposition of password over
// candidates, fills any gaps with brute-force matches, and derives the
// full Result, including feedback translated via loc for locale.
func Evaluate(password string, candidates []matching.Match, locale string, loc localize.Localizer) Result {
	runes := []rune(password)
	n := len(runes)

	if n == 0 {
		return Result{
			Password:  password,
			Entropy:   0,
			Guesses:   0.5,
			Score:     0,
			ScoreText: matching.ScoreTexts[0],
		}
	}

	sequence := decompose(runes, candidates)
	sequence = fillGaps(runes, sequence)

	entropy := 0.0
	for _, m := range sequence {
		entropy += m.Entropy
	}

	return buildResult(password, entropy, sequence, locale, loc)
}

// decompose runs the DP search described in spec.md §4.11: for each
// position k, minEntropy[k] is the lowest total entropy of any
// explanation of password[0..=k], considering both the running
// brute-force upper bound and every candidate match ending at k.
func decompose(runes []rune, candidates []matching.Match) []matching.Match {
	n := len(runes)
	bf := float64(numerics.Cardinality(string(runes)))
	bfLog := numerics.Log2(bf)

	byEnd := make(map[int][]matching.Match, n)
	for _, m := range candidates {
		byEnd[m.J] = append(byEnd[m.J], m)
	}

	minEntropy := make([]float64, n)
	bestMatch := make([]*matching.Match, n)

	minEntropy[0] = bfLog
	for _, m := range byEnd[0] {
		if m.I > 0 {
			continue
		}
		if m.Entropy < minEntropy[0] {
			minEntropy[0] = m.Entropy
			mm := m
			bestMatch[0] = &mm
		}
	}

	for k := 1; k < n; k++ {
		minEntropy[k] = minEntropy[k-1] + bfLog
		for _, m := range byEnd[k] {
			var candidate float64
			if m.I <= 0 {
				candidate = m.Entropy
			} else {
				candidate = minEntropy[m.I-1] + m.Entropy
			}
			if candidate < minEntropy[k] {
				minEntropy[k] = candidate
				mm := m
				bestMatch[k] = &mm
			}
		}
	}

	var reversed []matching.Match
	k := n - 1
	for k >= 0 {
		if bestMatch[k] != nil {
			m := *bestMatch[k]
			reversed = append(reversed, m)
			if m.I == 0 {
				break
			}
			k = m.I - 1
		} else {
			k--
		}
	}

	out := make([]matching.Match, len(reversed))
	for i, m := range reversed {
		out[len(reversed)-1-i] = m
	}
	return out
}

// fillGaps inserts a synthetic brute-force match for every stretch of
// runes not covered by sequence, including the case where sequence is
// empty (the whole password becomes one brute-force match).
func fillGaps(runes []rune, sequence []matching.Match) []matching.Match {
	n := len(runes)
	bf := float64(numerics.Cardinality(string(runes)))

	if len(sequence) == 0 {
		return []matching.Match{bruteForceMatch(runes, 0, n-1, bf)}
	}

	var out []matching.Match
	cursor := 0
	for _, m := range sequence {
		if m.I > cursor {
			out = append(out, bruteForceMatch(runes, cursor, m.I-1, bf))
		}
		out = append(out, m)
		cursor = m.J + 1
	}
	if cursor < n {
		out = append(out, bruteForceMatch(runes, cursor, n-1, bf))
	}
	return out
}

func bruteForceMatch(runes []rune, i, j int, cardinality float64) matching.Match {
	length := j - i + 1
	entropy := bruteForceEntropy(cardinality, length)
	return matching.Match{
		Pattern: matching.KindBruteforce,
		I:       i,
		J:       j,
		Token:   string(runes[i : j+1]),
		Entropy: entropy,
	}
}

// bruteForceEntropy computes log2(cardinality^length), collapsing to
// +Inf if the exponentiation overflows float64 range.
func bruteForceEntropy(cardinality float64, length int) float64 {
	if cardinality <= 1 {
		return 0
	}
	power := math.Pow(cardinality, float64(length))
	if math.IsInf(power, 1) {
		return math.Inf(1)
	}
	return numerics.Log2(power)
}

func buildResult(password string, entropy float64, sequence []matching.Match, locale string, loc localize.Localizer) Result {
	guesses := 0.5 * math.Pow(2, entropy)
	if math.IsInf(entropy, 1) {
		guesses = math.Inf(1)
	}

	score := numerics.EntropyToScore(entropy)

	r := Result{
		Password:      password,
		Entropy:       entropy,
		Guesses:       guesses,
		GuessesLog10:  log10(guesses),
		Score:         score,
		ScoreText:     matching.ScoreTexts[score],
		MatchSequence: sequence,
	}

	r.CrackTimeSecondsOnlineThrottled = guesses / guessesPerSecondOnlineThrottled
	r.CrackTimeSecondsOnlineUnthrottled = guesses / guessesPerSecondOnlineUnthrottled
	r.CrackTimeSecondsOfflineSlowHash = guesses / guessesPerSecondOfflineSlowHash
	r.CrackTimeSecondsOfflineFastHash = guesses / guessesPerSecondOfflineFastHash

	r.CrackTimeDisplayOnlineThrottled = displayCrackTime(r.CrackTimeSecondsOnlineThrottled, locale, loc)
	r.CrackTimeDisplayOnlineUnthrottled = displayCrackTime(r.CrackTimeSecondsOnlineUnthrottled, locale, loc)
	r.CrackTimeDisplayOfflineSlowHash = displayCrackTime(r.CrackTimeSecondsOfflineSlowHash, locale, loc)
	r.CrackTimeDisplayOfflineFastHash = displayCrackTime(r.CrackTimeSecondsOfflineFastHash, locale, loc)

	r.WarningText, r.SuggestionsText = feedback(sequence, score, locale, loc)
	return r
}

// displayCrackTime maps a number of seconds to a human display string,
// per the fixed thresholds and unit choices in spec.md §4.11.
func displayCrackTime(seconds float64, locale string, loc localize.Localizer) string {
	translate := func(canonical string) string {
		if loc == nil {
			return canonical
		}
		return loc.Translate(canonical, locale)
	}

	switch {
	case seconds < secondsPerMinute:
		return translate(matching.DurationInstant)
	case seconds < secondsPerHour:
		return unitDisplay(math.Ceil(seconds/secondsPerMinute)+1, matching.DurationMinutes, locale, loc)
	case seconds < secondsPerDay:
		return unitDisplay(math.Ceil(seconds/secondsPerHour)+1, matching.DurationHours, locale, loc)
	case seconds < secondsPerMonth:
		return unitDisplay(math.Ceil(seconds/secondsPerDay)+1, matching.DurationDays, locale, loc)
	case seconds < secondsPerYear:
		return unitDisplay(math.Ceil(seconds/secondsPerMonth)+1, matching.DurationMonths, locale, loc)
	case seconds < secondsPerCentury:
		return unitDisplay(math.Ceil(seconds/secondsPerYear)+1, matching.DurationYears, locale, loc)
	default:
		return translate(matching.DurationCenturies)
	}
}

func unitDisplay(count float64, unit, locale string, loc localize.Localizer) string {
	label := unit
	if loc != nil {
		label = loc.Translate(unit, locale)
	}
	return formatCount(count) + " " + label
}

// formatCount renders a display count as an integer when it has no
// fractional part (the common case, since every caller feeds it a
// math.Ceil result), falling back to a trimmed decimal otherwise.
func formatCount(f float64) string {
	if i := int64(f); float64(i) == f {
		return strconv.FormatInt(i, 10)
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}

func log10(x float64) float64 {
	if x <= 0 {
		return 0
	}
	return math.Log10(x)
}

// feedback implements the selection rule from spec.md §4.11: if score
// is 2 or below, pick the longest match in sequence (ties broken by
// earliest i) and ask its variant for feedback.
func feedback(sequence []matching.Match, score int, locale string, loc localize.Localizer) (string, []string) {
	if score > 2 || len(sequence) == 0 {
		return "", nil
	}

	best := sequence[0]
	bestLen := best.J - best.I
	for _, m := range sequence[1:] {
		l := m.J - m.I
		if l > bestLen {
			best = m
			bestLen = l
		}
	}

	isSole := len(sequence) == 1
	warning, suggestions := best.Feedback(isSole, score, locale, loc)

	if advice, ok := matching.CapitalizationAdvice(best.Token); ok {
		suggestions = append(suggestions, advice)
	}
	return warning, suggestions
}
