package matchers

import (
	"errors"
	"testing"
)

type stubSource map[string][]string

func (s stubSource) Load(name string) ([]string, error) {
	words, ok := s[name]
	if !ok {
		return nil, errors.New("unknown dictionary")
	}
	return words, nil
}

func testSource() stubSource {
	return stubSource{
		"passwords":         {"password", "hunter2"},
		"english_wikipedia": {"the", "battery", "staple", "correct", "horse"},
		"male_names":        {"john"},
		"female_names":      {"jane"},
		"surnames":          {"smith"},
		"us_tv_and_film":    {"seinfeld"},
	}
}

func TestNewLoadsAllDictionaries(t *testing.T) {
	f, err := New(testSource())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if len(f.dictionaryMatchers) != len(dictionaryNames) {
		t.Fatalf("got %d dictionary matchers, want %d", len(f.dictionaryMatchers), len(dictionaryNames))
	}
}

func TestNewFailsOnMissingDictionary(t *testing.T) {
	_, err := New(stubSource{"passwords": {"x"}})
	if err == nil {
		t.Fatal("expected an error when a required dictionary is missing")
	}
}

func TestCreateOmitsUserInputsWhenEmpty(t *testing.T) {
	f, _ := New(testSource())
	before := len(f.Create(nil))
	after := len(f.Create([]string{}))
	if before != after {
		t.Fatalf("expected nil and empty userInputs to produce the same matcher count")
	}
}

func TestCreateAddsUserInputsDictionaryAndLeet(t *testing.T) {
	f, _ := New(testSource())
	base := len(f.Create(nil))
	withInputs := len(f.Create([]string{"jdoe@example.com"}))
	if withInputs != base+2 {
		t.Fatalf("got %d matchers with user inputs, want %d (base %d + dictionary + leet)", withInputs, base+2, base)
	}
}

func TestExpandUserInputsSplitsEmail(t *testing.T) {
	words := expandUserInputs([]string{"jane.doe@acme-corp.com"})
	want := []string{"jane.doe@acme-corp.com", "jane", "doe", "acme-corp", "acme", "corp", "com"}
	for _, w := range want {
		found := false
		for _, got := range words {
			if got == w {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("expandUserInputs: missing expected word %q in %v", w, words)
		}
	}
}

func TestExpandUserInputsDropsShortWords(t *testing.T) {
	words := expandUserInputs([]string{"ab"})
	if len(words) != 0 {
		t.Fatalf("expected short terms to be dropped, got %v", words)
	}
}
