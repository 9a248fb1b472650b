package outfmt

import (
	"bytes"
	"strings"
	"testing"

	"github.com/go-passcheck/passcheck"
)

func TestTextFormatterFormatResult(t *testing.T) {
	var buf bytes.Buffer
	f := NewTextFormatter(&buf, false, false)

	result := passcheck.Result{
		Password:                        "hunter2",
		Score:                           1,
		ScoreText:                       "Weak",
		CrackTimeDisplayOfflineSlowHash: "3 hours",
		WarningText:                     "This is a top-10 common password.",
		SuggestionsText:                 []string{"Add another word or two."},
	}

	if err := f.FormatResult(result, BreachInfo{}); err != nil {
		t.Fatalf("FormatResult: %v", err)
	}

	out := buf.String()
	for _, want := range []string{"1/4", "Weak", "3 hours", "top-10 common password", "Add another word"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q, got:\n%s", want, out)
		}
	}
}

func TestTextFormatterNoColorsOmitsEscapeCodes(t *testing.T) {
	var buf bytes.Buffer
	f := NewTextFormatter(&buf, false, false)

	if err := f.FormatResult(passcheck.Result{Score: 4, ScoreText: "Very unguessable"}, BreachInfo{}); err != nil {
		t.Fatalf("FormatResult: %v", err)
	}

	if strings.Contains(buf.String(), "\033[") {
		t.Error("expected no ANSI escape codes when colors disabled")
	}
}

func TestTextFormatterColorsIncludeEscapeCodes(t *testing.T) {
	var buf bytes.Buffer
	f := NewTextFormatter(&buf, false, true)

	if err := f.FormatResult(passcheck.Result{Score: 0, ScoreText: "Very guessable"}, BreachInfo{}); err != nil {
		t.Fatalf("FormatResult: %v", err)
	}

	if !strings.Contains(buf.String(), "\033[") {
		t.Error("expected ANSI escape codes when colors enabled")
	}
}

func TestTextFormatterVerboseShowsCrackTimesAndMatchSequence(t *testing.T) {
	var buf bytes.Buffer
	f := NewTextFormatter(&buf, true, false)

	result := passcheck.Result{
		Score:                             2,
		ScoreText:                         "Okay",
		CrackTimeDisplayOnlineThrottled:   "centuries",
		CrackTimeDisplayOnlineUnthrottled: "3 days",
		CrackTimeDisplayOfflineSlowHash:   "2 hours",
		CrackTimeDisplayOfflineFastHash:   "1 second",
	}

	if err := f.FormatResult(result, BreachInfo{}); err != nil {
		t.Fatalf("FormatResult: %v", err)
	}

	out := buf.String()
	for _, want := range []string{"centuries", "3 days", "2 hours", "1 second", "Guesses:"} {
		if !strings.Contains(out, want) {
			t.Errorf("verbose output missing %q, got:\n%s", want, out)
		}
	}
}

func TestTextFormatterBreachInfo(t *testing.T) {
	var buf bytes.Buffer
	f := NewTextFormatter(&buf, false, false)

	if err := f.FormatResult(passcheck.Result{Score: 1, ScoreText: "Weak"},
		BreachInfo{Checked: true, Breached: true, Count: 42}); err != nil {
		t.Fatalf("FormatResult: %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, "FOUND") || !strings.Contains(out, "42") {
		t.Errorf("expected breach line with count, got:\n%s", out)
	}
}

func TestTextFormatterNotBreached(t *testing.T) {
	var buf bytes.Buffer
	f := NewTextFormatter(&buf, false, false)

	if err := f.FormatResult(passcheck.Result{Score: 4, ScoreText: "Very unguessable"},
		BreachInfo{Checked: true, Breached: false}); err != nil {
		t.Fatalf("FormatResult: %v", err)
	}

	if !strings.Contains(buf.String(), "not found") {
		t.Errorf("expected 'not found' breach line, got:\n%s", buf.String())
	}
}

func TestScoreMeterFilledBlocksMatchScore(t *testing.T) {
	tests := []struct {
		score      int
		wantFilled int
	}{
		{0, 1}, {1, 2}, {2, 3}, {3, 4}, {4, 5},
	}

	f := NewTextFormatter(&bytes.Buffer{}, false, false)
	for _, tt := range tests {
		meter := f.scoreMeter(tt.score)
		if got := strings.Count(meter, "■"); got != tt.wantFilled {
			t.Errorf("score %d: got %d filled blocks, want %d (%s)", tt.score, got, tt.wantFilled, meter)
		}
	}
}
