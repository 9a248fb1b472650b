package leet

import (
	"testing"

	"github.com/go-passcheck/passcheck/internal/matchers/dictionary"
)

func TestEnumerateMappingsBranchesOnAmbiguousGlyph(t *testing.T) {
	// '1' can stand for 'i' or 'l' — exactly one of those table rows
	// should fork the mapping set.
	table := []struct {
		Base  rune
		Leets string
	}{
		{'i', "1"},
		{'l', "1"},
	}
	mappings := EnumerateMappings("p4ss1", table)
	if len(mappings) != 2 {
		t.Fatalf("EnumerateMappings: got %d mappings, want 2", len(mappings))
	}
	seen := map[rune]bool{}
	for _, m := range mappings {
		seen[m['1']] = true
	}
	if !seen['i'] || !seen['l'] {
		t.Fatalf("expected mappings for both i and l, got %v", mappings)
	}
}

func TestEnumerateMappingsIgnoresAbsentGlyphs(t *testing.T) {
	table := []struct {
		Base  rune
		Leets string
	}{
		{'a', "4@"},
	}
	mappings := EnumerateMappings("password", table)
	if len(mappings) != 1 || len(mappings[0]) != 0 {
		t.Fatalf("expected a single empty mapping when no leet glyphs present, got %v", mappings)
	}
}

func TestMatcherFindsLeetVariant(t *testing.T) {
	rd := dictionary.New("passwords", []string{"password"})
	dm := dictionary.NewMatcher(rd)
	m := NewMatcher(dm)

	matches := m.Match("p@ssw0rd")
	if len(matches) == 0 {
		t.Fatal("expected at least one leet match for p@ssw0rd")
	}
	found := false
	for _, match := range matches {
		if match.Token == "p@ssw0rd" && match.MatchedWord == "password" {
			found = true
			if len(match.Subs) == 0 {
				t.Error("expected non-empty Subs for a leet match")
			}
			if match.L33tEntropy < 1 {
				t.Errorf("L33tEntropy = %v, want >= 1", match.L33tEntropy)
			}
		}
	}
	if !found {
		t.Errorf("expected a match covering the whole token, got %+v", matches)
	}
}

func TestMatcherSkipsEmptySubs(t *testing.T) {
	// A dictionary hit on the *untranslated* password (no leet glyphs
	// involved in the matched span) must not be emitted as a leet match.
	rd := dictionary.New("passwords", []string{"hunter"})
	dm := dictionary.NewMatcher(rd)
	m := NewMatcher(dm)

	matches := m.Match("hunter2")
	for _, match := range matches {
		if match.Token == "hunter" {
			t.Errorf("plain dictionary hit with no leet glyphs should not be emitted by the leet matcher: %+v", match)
		}
	}
}
