package matching

import "testing"

func TestDictionaryFeedbackPasswordsScoreGate(t *testing.T) {
	m := Match{Pattern: KindDictionary, DictionaryName: DictPasswords, Rank: 500}

	tests := []struct {
		name        string
		score       int
		wantWarning string
	}{
		{"score 0 warns similar to common", 0, WarnSimilarToCommon},
		{"score 1 warns similar to common", 1, WarnSimilarToCommon},
		{"score 2 has no warning", 2, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// isSole=false: the "top-10/top-100/very common" branch only
			// applies when this is the whole password.
			warning, _ := m.Feedback(false, tt.score, "", nil)
			if warning != tt.wantWarning {
				t.Errorf("warning = %q, want %q", warning, tt.wantWarning)
			}
		})
	}
}

func TestDictionaryFeedbackSolePasswordIgnoresScoreGate(t *testing.T) {
	m := Match{Pattern: KindDictionary, DictionaryName: DictPasswords, Rank: 5}
	warning, _ := m.Feedback(true, 2, "", nil)
	if warning != WarnTop10Common {
		t.Errorf("warning = %q, want %q", warning, WarnTop10Common)
	}
}
