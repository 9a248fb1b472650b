package outfmt

import (
	"fmt"
	"io"

	"github.com/go-passcheck/passcheck"
)

// ANSI escape codes for terminal colors.
const (
	ansiReset  = "\033[0m"
	ansiBold   = "\033[1m"
	ansiRed    = "\033[31m"
	ansiYellow = "\033[33m"
	ansiGreen  = "\033[32m"
)

// meterSegments is the number of blocks in the score bar; passcheck
// scores range 0-4, so one segment per possible score.
const meterSegments = 5

// TextFormatter formats a result as colored, human-readable text.
type TextFormatter struct {
	writer  io.Writer
	verbose bool
	colors  bool
}

// NewTextFormatter creates a new text formatter.
func NewTextFormatter(writer io.Writer, verbose, colors bool) *TextFormatter {
	return &TextFormatter{writer: writer, verbose: verbose, colors: colors}
}

// FormatResult writes a human-readable rendering of result to the
// formatter's writer.
func (f *TextFormatter) FormatResult(result passcheck.Result, breach BreachInfo) error {
	fmt.Fprintf(f.writer, "Score:      %s\n", f.scoreMeter(result.Score))
	fmt.Fprintf(f.writer, "Assessment: %s\n", f.colorize(result.ScoreText, f.scoreColor(result.Score)))

	if f.verbose {
		fmt.Fprintf(f.writer, "Entropy:    %.2f bits\n", result.Entropy)
		fmt.Fprintf(f.writer, "Guesses:    %.0f (10^%.2f)\n", result.Guesses, result.GuessesLog10)
		fmt.Fprintln(f.writer, "\nEstimated crack time:")
		fmt.Fprintf(f.writer, "  online, throttled:    %s\n", result.CrackTimeDisplayOnlineThrottled)
		fmt.Fprintf(f.writer, "  online, unthrottled:  %s\n", result.CrackTimeDisplayOnlineUnthrottled)
		fmt.Fprintf(f.writer, "  offline, slow hash:   %s\n", result.CrackTimeDisplayOfflineSlowHash)
		fmt.Fprintf(f.writer, "  offline, fast hash:   %s\n", result.CrackTimeDisplayOfflineFastHash)
	} else {
		fmt.Fprintf(f.writer, "Crack time: %s (offline, slow hash)\n", result.CrackTimeDisplayOfflineSlowHash)
	}

	if result.WarningText != "" {
		fmt.Fprintf(f.writer, "\nWarning: %s\n", f.colorize(result.WarningText, ansiYellow))
	}

	if len(result.SuggestionsText) > 0 {
		fmt.Fprintln(f.writer, "\nSuggestions:")
		for _, s := range result.SuggestionsText {
			marker := "  - "
			if f.colors {
				marker = "  " + f.colorize("-", ansiYellow) + " "
			}
			fmt.Fprintf(f.writer, "%s%s\n", marker, s)
		}
	}

	if breach.Checked {
		fmt.Fprintln(f.writer)
		if breach.Breached {
			fmt.Fprintf(f.writer, "Breach:     %s (%d times in known breaches)\n",
				f.colorize("FOUND", ansiRed+ansiBold), breach.Count)
		} else {
			fmt.Fprintf(f.writer, "Breach:     %s\n", f.colorize("not found", ansiGreen))
		}
	}

	if f.verbose && len(result.MatchSequence) > 0 {
		fmt.Fprintln(f.writer, "\nMatch sequence:")
		for _, m := range result.MatchSequence {
			fmt.Fprintf(f.writer, "  [%d:%d] %-10s %q\n", m.I, m.J, m.Pattern, m.Token)
		}
	}

	return nil
}

// colorize wraps s with an ANSI color code and a reset suffix, or
// returns s unchanged if colors are disabled.
func (f *TextFormatter) colorize(s, code string) string {
	if !f.colors || code == "" {
		return s
	}
	return code + s + ansiReset
}

// scoreColor returns the ANSI color code for a 0-4 score.
func (f *TextFormatter) scoreColor(score int) string {
	switch score {
	case 0:
		return ansiRed + ansiBold
	case 1:
		return ansiRed
	case 2:
		return ansiYellow
	case 3:
		return ansiGreen
	default:
		return ansiGreen + ansiBold
	}
}

// scoreMeter builds a visual score bar with meterSegments blocks, score+1
// of them filled (so a score of 0 still shows one block), e.g. "[■■■■□] 3/4".
func (f *TextFormatter) scoreMeter(score int) string {
	filled := score + 1
	if filled > meterSegments {
		filled = meterSegments
	}
	if filled < 0 {
		filled = 0
	}
	empty := meterSegments - filled

	var bar string
	for i := 0; i < filled; i++ {
		bar += "■"
	}
	for i := 0; i < empty; i++ {
		bar += "□"
	}

	if f.colors {
		return f.colorize("["+bar+"]", f.scoreColor(score)) + fmt.Sprintf(" %d/4", score)
	}
	return fmt.Sprintf("[%s] %d/4", bar, score)
}
