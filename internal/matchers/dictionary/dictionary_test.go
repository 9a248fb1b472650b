package dictionary

import "testing"

func TestRankedDictionaryFirstInsertionWins(t *testing.T) {
	rd := New("passwords", []string{"hunter", "Hunter", "dragon"})
	r, ok := rd.Rank("hunter")
	if !ok || r != 1 {
		t.Fatalf("Rank(hunter) = %d, %v; want 1, true", r, ok)
	}
	r, ok = rd.Rank("dragon")
	if !ok || r != 2 {
		t.Fatalf("Rank(dragon) = %d, %v; want 2, true", r, ok)
	}
	if rd.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", rd.Len())
	}
}

func TestMatcherFindsAllSubstrings(t *testing.T) {
	rd := New("passwords", []string{"hunter", "hunt"})
	m := NewMatcher(rd)

	matches := m.Match("hunter2")
	found := map[string]bool{}
	for _, match := range matches {
		if match.I != 0 || match.J >= len(match.Token) {
			// token boundaries must be contiguous with I/J
		}
		found[match.Token] = true
	}
	if !found["hunter"] || !found["hunt"] {
		t.Fatalf("expected matches for both 'hunter' and 'hunt', got %v", found)
	}
}

func TestMatcherCaseInsensitive(t *testing.T) {
	rd := New("passwords", []string{"password"})
	m := NewMatcher(rd)
	matches := m.Match("PaSsWoRd")
	if len(matches) != 1 {
		t.Fatalf("expected 1 match, got %d", len(matches))
	}
	if matches[0].Token != "PaSsWoRd" {
		t.Errorf("Token = %q, want original casing preserved", matches[0].Token)
	}
	if matches[0].MatchedWord != "password" {
		t.Errorf("MatchedWord = %q, want lowercase", matches[0].MatchedWord)
	}
	if matches[0].UppercaseEntropy <= 1 {
		t.Errorf("UppercaseEntropy = %v, want > 1 for mixed case", matches[0].UppercaseEntropy)
	}
}
