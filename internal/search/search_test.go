package search

import (
	"math"
	"testing"

	"github.com/go-passcheck/passcheck/internal/matching"
)

func TestEvaluateEmptyPassword(t *testing.T) {
	r := Evaluate("", nil, "en", nil)
	if r.Score != 0 {
		t.Errorf("Score = %d, want 0", r.Score)
	}
	if r.Entropy != 0 {
		t.Errorf("Entropy = %v, want 0", r.Entropy)
	}
	if len(r.MatchSequence) != 0 {
		t.Errorf("MatchSequence = %v, want empty", r.MatchSequence)
	}
}

func TestEvaluateNoCandidatesFillsBruteForce(t *testing.T) {
	r := Evaluate("xk2p", nil, "en", nil)
	if len(r.MatchSequence) != 1 {
		t.Fatalf("expected 1 brute-force match, got %d: %+v", len(r.MatchSequence), r.MatchSequence)
	}
	m := r.MatchSequence[0]
	if m.Pattern != matching.KindBruteforce || m.I != 0 || m.J != 3 {
		t.Errorf("got %+v, want a single bruteforce match covering [0,3]", m)
	}
}

func TestEvaluateCoversWholePassword(t *testing.T) {
	candidates := []matching.Match{
		{Pattern: matching.KindDictionary, I: 0, J: 5, Token: "hunter", Entropy: 4},
	}
	r := Evaluate("hunter2", candidates, "en", nil)

	if len(r.MatchSequence) == 0 {
		t.Fatal("expected a non-empty match sequence")
	}
	if r.MatchSequence[0].I != 0 {
		t.Errorf("first match I = %d, want 0", r.MatchSequence[0].I)
	}
	last := r.MatchSequence[len(r.MatchSequence)-1]
	if last.J != 6 {
		t.Errorf("last match J = %d, want 6", last.J)
	}
	for i := 1; i < len(r.MatchSequence); i++ {
		if r.MatchSequence[i].I != r.MatchSequence[i-1].J+1 {
			t.Errorf("match sequence has a gap/overlap between %+v and %+v", r.MatchSequence[i-1], r.MatchSequence[i])
		}
	}
}

func TestEvaluateEntropySumsMatchSequence(t *testing.T) {
	candidates := []matching.Match{
		{Pattern: matching.KindDictionary, I: 0, J: 5, Token: "hunter", Entropy: 4},
	}
	r := Evaluate("hunter2", candidates, "en", nil)

	var sum float64
	for _, m := range r.MatchSequence {
		sum += m.Entropy
	}
	if math.Abs(sum-r.Entropy) > 1e-9 {
		t.Errorf("sum of match entropies = %v, want %v", sum, r.Entropy)
	}
}

func TestEvaluateGuessesFormula(t *testing.T) {
	r := Evaluate("hunter2", nil, "en", nil)
	want := 0.5 * math.Pow(2, r.Entropy)
	if math.Abs(r.Guesses-want) > 1e-6 {
		t.Errorf("Guesses = %v, want %v", r.Guesses, want)
	}
}

func TestEvaluatePrefersLowerEntropyDecomposition(t *testing.T) {
	// A low-entropy dictionary match covering the whole password should
	// win over treating it as brute force.
	candidates := []matching.Match{
		{Pattern: matching.KindDictionary, I: 0, J: 6, Token: "hunter2", Entropy: 2},
	}
	r := Evaluate("hunter2", candidates, "en", nil)
	if len(r.MatchSequence) != 1 || r.MatchSequence[0].Pattern != matching.KindDictionary {
		t.Fatalf("expected the whole-token dictionary match to win, got %+v", r.MatchSequence)
	}
}

func TestDisplayCrackTimeThresholds(t *testing.T) {
	cases := []struct {
		seconds float64
		want    string
	}{
		{30, "instant"},
	}
	for _, c := range cases {
		got := displayCrackTime(c.seconds, "en", nil)
		if got != c.want {
			t.Errorf("displayCrackTime(%v) = %q, want %q", c.seconds, got, c.want)
		}
	}
}
