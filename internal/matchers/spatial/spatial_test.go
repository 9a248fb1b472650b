package spatial

import (
	"math"
	"testing"

	"github.com/go-passcheck/passcheck/internal/numerics"
)

func TestMatcherQwertyRowIsOneMatch(t *testing.T) {
	m := NewMatcher()
	matches := m.Match("qwerty")

	found := false
	for _, match := range matches {
		if match.Graph != "qwerty" {
			continue
		}
		found = true
		if match.I != 0 || match.J != 5 {
			t.Errorf("match span = [%d,%d], want [0,5] (whole token)", match.I, match.J)
		}
		if match.Turns != 1 {
			t.Errorf("Turns = %d, want 1", match.Turns)
		}
		if match.ShiftedCount != 0 {
			t.Errorf("ShiftedCount = %d, want 0", match.ShiftedCount)
		}
	}
	if !found {
		t.Fatalf("expected a qwerty-graph match, got %+v", matches)
	}
}

func TestMatcherIgnoresShortRuns(t *testing.T) {
	m := NewMatcher()
	matches := m.Match("qw")
	for _, match := range matches {
		t.Errorf("expected no matches for a 2-character token, got %+v", match)
	}
}

func TestMatcherDetectsTurn(t *testing.T) {
	// "qaz" walks down-then-down on qwerty (q -> a -> z), a single
	// direction the whole way, so this exercises the SE-direction slots
	// rather than the same-row case covered above.
	m := NewMatcher()
	found := false
	for _, match := range m.Match("qazwsx") {
		if match.Graph == "qwerty" && match.I == 0 {
			found = true
			if match.Turns < 1 {
				t.Errorf("Turns = %d, want >= 1", match.Turns)
			}
		}
	}
	if !found {
		t.Fatalf("expected a qwerty match starting at index 0 for 'qazwsx'")
	}
}

func TestMatcherDetectsShiftedRun(t *testing.T) {
	// "!@#$" is the shifted row above "1234" on qwerty: every character
	// requires holding shift, so ShiftedCount should cover the whole run.
	m := NewMatcher()
	found := false
	for _, match := range m.Match("!@#$") {
		if match.Graph != "qwerty" {
			continue
		}
		found = true
		if match.ShiftedCount != 4 {
			t.Errorf("ShiftedCount = %d, want 4", match.ShiftedCount)
		}
	}
	if !found {
		t.Fatalf("expected a qwerty match for the shifted row '!@#$'")
	}
}

func TestRunEntropyShiftedTermIncludesLimitPlusOne(t *testing.T) {
	// Mirrors the leet matcher's leetEntropy substitution sum:
	// the loop runs i = 0..limit+1 inclusive, not just 0..limit.
	const length, turns, shiftedCount = 4, 1, 2
	unshiftedCount := length - shiftedCount
	limit := shiftedCount
	if unshiftedCount < limit {
		limit = unshiftedCount
	}

	var withoutPlusOne, withPlusOne float64
	for i := 0; i <= limit; i++ {
		withoutPlusOne += numerics.Binomial(shiftedCount+unshiftedCount, i)
	}
	for i := 0; i <= limit+1; i++ {
		withPlusOne += numerics.Binomial(shiftedCount+unshiftedCount, i)
	}
	if withPlusOne <= withoutPlusOne {
		t.Fatalf("test setup: expected the limit+1 term to add possibilities, got %v <= %v", withPlusOne, withoutPlusOne)
	}

	got := runEntropy(Graphs["qwerty"], length, turns, shiftedCount)
	want := numerics.Log2(withPlusOne) + (runEntropy(Graphs["qwerty"], length, turns, 0))
	if math.Abs(got-want) > 1e-9 {
		t.Errorf("runEntropy = %v, want %v (shifted term must include the limit+1 binomial)", got, want)
	}
}

func TestGraphFinalizeComputesDegree(t *testing.T) {
	g := Graphs["qwerty"]
	if g.StartingPositions == 0 {
		t.Fatal("expected nonzero StartingPositions")
	}
	if g.AverageDegree <= 0 {
		t.Fatal("expected positive AverageDegree")
	}
}
