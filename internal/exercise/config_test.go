package exercise

import "testing"

func TestConfigFor_Defaults(t *testing.T) {
	for _, typ := range All() {
		cfg := ConfigFor(typ)
		if cfg.Type != typ {
			t.Errorf("%s: Type = %q", typ, cfg.Type)
		}
		if cfg.LadderLen < 2 {
			t.Errorf("%s: LadderLen = %d, want >= 2", typ, cfg.LadderLen)
		}
		if cfg.Window() != DefaultAnswerWindow {
			t.Errorf("%s: Window = %v, want %v", typ, cfg.Window(), DefaultAnswerWindow)
		}
	}
}

func TestConfigFor_TimerPolicies(t *testing.T) {
	if got := ConfigFor(WordFinding).TimerPolicy; got != TimerImmediate {
		t.Errorf("word finding timer policy = %d, want TimerImmediate", got)
	}
	if got := ConfigFor(ListRecall).TimerPolicy; got != TimerAfterPresentation {
		t.Errorf("list recall timer policy = %d, want TimerAfterPresentation", got)
	}
	if !ConfigFor(ListRecall).TeachFirst {
		t.Error("list recall should teach before the answer window")
	}
	if ConfigFor(WordFinding).TeachFirst {
		t.Error("word finding has no teach phase")
	}
}

func TestParseType(t *testing.T) {
	tests := []struct {
		in   string
		want Type
		ok   bool
	}{
		{"word_finding", WordFinding, true},
		{"word-finding", WordFinding, true},
		{"List_Recall", ListRecall, true},
		{" person_questions ", PersonQuestions, true},
		{"spelling", "", false},
		{"", "", false},
	}
	for _, tt := range tests {
		got, ok := ParseType(tt.in)
		if got != tt.want || ok != tt.ok {
			t.Errorf("ParseType(%q) = %q, %v; want %q, %v", tt.in, got, ok, tt.want, tt.ok)
		}
	}
}
