package evaluate

import "testing"

func TestExactMatchAlwaysEnabled(t *testing.T) {
	tests := []struct {
		user     string
		expected string
		correct  bool
	}{
		{"Connecticut", "Connecticut", true},
		{"connecticut", "Connecticut", true},
		{"  CONNECTICUT  ", "connecticut", true},
		{"Connecticut.", "Connecticut", true},
		{"Hartford", "Connecticut", false},
		{"", "Connecticut", false},
		{"   ", "Connecticut", false},
	}

	for _, tt := range tests {
		got := Evaluate(tt.user, tt.expected, nil, Strict())
		if got.Correct != tt.correct {
			t.Errorf("Evaluate(%q, %q) correct = %v, want %v", tt.user, tt.expected, got.Correct, tt.correct)
		}
		if tt.correct && got.Score != 1.0 {
			t.Errorf("Evaluate(%q, %q) score = %v, want 1.0", tt.user, tt.expected, got.Score)
		}
		if tt.correct && got.Partial {
			t.Errorf("Evaluate(%q, %q) exact match flagged partial", tt.user, tt.expected)
		}
	}
}

func TestAccommodationGating(t *testing.T) {
	// With everything off, "dad" does not match "father" even when listed.
	got := Evaluate("dad", "father", []string{"dad"}, Strict())
	if got.Correct {
		t.Fatal("alternatives matched with MatchAcceptableAlternatives disabled")
	}

	// Enabling just alternatives flips the verdict.
	s := Settings{MatchAcceptableAlternatives: true}
	got = Evaluate("dad", "father", []string{"dad"}, s)
	if !got.Correct || got.Score != 1.0 {
		t.Fatalf("alternatives: got %+v, want correct with score 1.0", got)
	}
	if got.Partial {
		t.Error("alternative match should not be partial")
	}
}

func TestFirstNameOnly(t *testing.T) {
	s := Settings{MatchFirstNameOnly: true}

	got := Evaluate("Barbara", "Barbara Smith", nil, s)
	if !got.Correct || !got.Partial || got.Score != 0.9 {
		t.Fatalf("first name: got %+v, want correct partial 0.9", got)
	}

	// Single-word expected answers never trigger the strategy.
	got = Evaluate("Barb", "Barbara", nil, s)
	if got.Correct {
		t.Errorf("first-name strategy applied to single-word answer: %+v", got)
	}

	// Last name alone is not the first name.
	got = Evaluate("Smith", "Barbara Smith", nil, s)
	if got.Correct {
		t.Errorf("last name accepted as first name: %+v", got)
	}
}

func TestSubstringContainment(t *testing.T) {
	s := Settings{MatchPartialSubstring: true}

	tests := []struct {
		user, expected string
		correct        bool
	}{
		{"I live in Connecticut", "Connecticut", true}, // expected inside answer
		{"Barbara", "Barbara Smith", true},             // answer inside expected
		{"Hartford", "Connecticut", false},
	}

	for _, tt := range tests {
		got := Evaluate(tt.user, tt.expected, nil, s)
		if got.Correct != tt.correct {
			t.Errorf("Evaluate(%q, %q) correct = %v, want %v", tt.user, tt.expected, got.Correct, tt.correct)
		}
		if tt.correct && (got.Score != 0.8 || !got.Partial) {
			t.Errorf("Evaluate(%q, %q) = %+v, want partial 0.8", tt.user, tt.expected, got)
		}
	}
}

func TestWordOverlap(t *testing.T) {
	s := Settings{MatchWordOverlap: true}

	got := Evaluate("Barbara Smith Jones", "Barbara Smith", nil, s)
	if !got.Correct || !got.Partial {
		t.Fatalf("overlap: got %+v, want correct partial", got)
	}
	// 2 shared / 3 larger-set words.
	if got.Score < 0.66 || got.Score > 0.67 {
		t.Errorf("overlap score = %v, want 2/3", got.Score)
	}

	got = Evaluate("Jones Williams Brown Davis", "Barbara Smith", nil, s)
	if got.Correct {
		t.Errorf("no shared words accepted: %+v", got)
	}
}

func TestStopWordFilteredOverlap(t *testing.T) {
	s := Settings{MatchStopWordFiltering: true}

	// Carrier phrase around the right answer.
	got := Evaluate("I think we live in Connecticut", "Connecticut", nil, s)
	if !got.Correct || !got.Partial {
		t.Fatalf("stop-word filtering: got %+v, want correct partial", got)
	}
	if got.Score < 0.7 {
		t.Errorf("score = %v, want >= 0.7", got.Score)
	}

	// All filler, no content.
	got = Evaluate("I think it is um", "Connecticut", nil, s)
	if got.Correct {
		t.Errorf("filler-only answer accepted: %+v", got)
	}
}

func TestSynonymGroups(t *testing.T) {
	s := Settings{MatchSynonyms: true}

	got := Evaluate("nice", "kind", nil, s)
	if !got.Correct || !got.Partial || got.Score != 0.7 {
		t.Fatalf("synonym: got %+v, want correct partial 0.7", got)
	}

	// Synonyms inside longer utterances still count.
	got = Evaluate("she is very sweet", "a kind person", nil, s)
	if !got.Correct {
		t.Errorf("embedded synonym missed: %+v", got)
	}

	// Unrelated words share no group.
	got = Evaluate("tall", "kind", nil, s)
	if got.Correct {
		t.Errorf("non-synonyms accepted: %+v", got)
	}
}

func TestStrategyOrderShortCircuits(t *testing.T) {
	// Exact beats every accommodation even when all are on.
	got := Evaluate("kind", "kind", nil, DefaultSettings())
	if got.Score != 1.0 || got.Partial {
		t.Errorf("exact with all flags: got %+v, want non-partial 1.0", got)
	}

	// Substring (0.8) fires before word overlap for contained answers.
	got = Evaluate("the kind one", "kind", nil, DefaultSettings())
	if got.Score != 0.8 {
		t.Errorf("containment score = %v, want 0.8", got.Score)
	}
}

func TestDeterminism(t *testing.T) {
	first := Evaluate("I think we live in Connecticut", "Connecticut", []string{"CT"}, DefaultSettings())
	for i := 0; i < 50; i++ {
		got := Evaluate("I think we live in Connecticut", "Connecticut", []string{"CT"}, DefaultSettings())
		if got != first {
			t.Fatalf("run %d: got %+v, want %+v", i, got, first)
		}
	}
}
