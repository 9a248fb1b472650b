package numerics

import (
	"math"
	"testing"
)

func TestCardinality(t *testing.T) {
	cases := []struct {
		name     string
		password string
		want     int
	}{
		{"empty", "", 0},
		{"lower only", "abc", PoolLower},
		{"lower+digit", "abc123", PoolLower + PoolDigit},
		{"all ascii classes", "aB3!", PoolLower + PoolUpper + PoolDigit + PoolSymbol},
		{"unicode", "héllo", PoolLower + PoolUnicode},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := Cardinality(c.password); got != c.want {
				t.Errorf("Cardinality(%q) = %d, want %d", c.password, got, c.want)
			}
		})
	}
}

func TestBinomial(t *testing.T) {
	cases := []struct {
		n, k int
		want float64
	}{
		{5, 0, 1},
		{5, 6, 0},
		{5, 2, 10},
		{10, 3, 120},
		{4, 4, 1},
	}
	for _, c := range cases {
		if got := Binomial(c.n, c.k); got != c.want {
			t.Errorf("Binomial(%d, %d) = %v, want %v", c.n, c.k, got, c.want)
		}
	}
}

func TestUppercaseEntropy(t *testing.T) {
	cases := []struct {
		name string
		word string
		want float64
	}{
		{"all lower", "password", 0},
		{"all upper", "PASSWORD", 1},
		{"start upper", "Password", 1},
		{"end upper", "passworD", 1},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := UppercaseEntropy(c.word); got != c.want {
				t.Errorf("UppercaseEntropy(%q) = %v, want %v", c.word, got, c.want)
			}
		})
	}

	// Mixed capitalization should be strictly more than the 1-bit shortcuts.
	if got := UppercaseEntropy("PaSsWoRd"); got <= 1 {
		t.Errorf("UppercaseEntropy(mixed) = %v, want > 1", got)
	}
}

func TestEntropyToScore(t *testing.T) {
	cases := []struct {
		entropy float64
		want    int
	}{
		{0, 0},
		{math.Log2(2e4 / 0.5), 1},
		{math.Log2(2e7 / 0.5), 2},
		{math.Log2(2e9 / 0.5), 3},
		{math.Log2(2e11 / 0.5), 4},
	}
	for _, c := range cases {
		if got := EntropyToScore(c.entropy); got != c.want {
			t.Errorf("EntropyToScore(%v) = %d, want %d", c.entropy, got, c.want)
		}
	}
}
