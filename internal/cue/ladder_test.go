package cue

import (
	"strings"
	"testing"

	"github.com/fweiner/parrotsoftware-treatment-sub000/internal/exercise"
)

func lifeWordsItem() exercise.Item {
	return exercise.Item{
		ID:             "contact-1",
		ExpectedAnswer: "Barbara Smith",
		Cues: exercise.CueMaterial{
			Relationship: "sister",
			Description:  "she taught you how to drive",
			Interests:    "gardening",
			Personality:  "kind and patient",
			Location:     "at Sunday dinners",
		},
	}
}

func TestEveryLevelNonEmpty(t *testing.T) {
	for _, typ := range exercise.All() {
		cfg := exercise.ConfigFor(typ)
		ladder := NewLadder(cfg)

		// An item with no cue material at all forces every fallback path.
		bare := exercise.Item{ID: "x", ExpectedAnswer: "Scissors"}

		for level := 1; level <= ladder.Len(); level++ {
			text, ok := ladder.Cue(bare, level)
			if !ok {
				t.Errorf("%s level %d: unexpected exhaustion", typ, level)
			}
			if strings.TrimSpace(text) == "" {
				t.Errorf("%s level %d: empty cue", typ, level)
			}
		}
	}
}

func TestFinalLevelRevealsAnswer(t *testing.T) {
	for _, typ := range exercise.All() {
		ladder := NewLadder(exercise.ConfigFor(typ))
		item := lifeWordsItem()

		text, ok := ladder.Cue(item, ladder.Len())
		if !ok {
			t.Fatalf("%s: final level exhausted", typ)
		}
		if !strings.Contains(text, item.ExpectedAnswer) {
			t.Errorf("%s final cue %q does not restate %q", typ, text, item.ExpectedAnswer)
		}
	}
}

func TestExhaustionBeyondLadder(t *testing.T) {
	ladder := NewLadder(exercise.ConfigFor(exercise.LifeWords))
	item := lifeWordsItem()

	if _, ok := ladder.Cue(item, ladder.Len()+1); ok {
		t.Error("level beyond ladder length should signal exhaustion")
	}
	if _, ok := ladder.Cue(item, 0); ok {
		t.Error("level 0 should signal exhaustion")
	}
}

func TestLifeWordsLadderProgression(t *testing.T) {
	ladder := NewLadder(exercise.ConfigFor(exercise.LifeWords))
	item := lifeWordsItem()

	wantFragments := map[int]string{
		1: "sister",
		2: "taught you how to drive",
		3: "gardening",
		4: "kind and patient",
		5: "Sunday dinners",
		6: "letter B",
		7: `"Bar"`,
		8: "Barbara Smith",
	}
	for level, frag := range wantFragments {
		text, ok := ladder.Cue(item, level)
		if !ok {
			t.Fatalf("level %d exhausted", level)
		}
		if !strings.Contains(text, frag) {
			t.Errorf("level %d = %q, want fragment %q", level, text, frag)
		}
	}
}

func TestFactHintTypes(t *testing.T) {
	ladder := NewLadder(exercise.ConfigFor(exercise.PersonalFacts))

	phone := exercise.Item{
		ID:             "fact-phone",
		ExpectedAnswer: "555-0192",
		Cues:           exercise.CueMaterial{HintType: exercise.HintFirstDigit},
	}
	text, ok := ladder.Cue(phone, 1)
	if !ok || !strings.Contains(text, "number 5") {
		t.Errorf("digit hint = %q, want first digit 5", text)
	}

	month := exercise.Item{
		ID:             "fact-birthmonth",
		ExpectedAnswer: "March",
		Cues:           exercise.CueMaterial{HintType: exercise.HintFirstLetter},
	}
	text, ok = ladder.Cue(month, 1)
	if !ok || !strings.Contains(text, "letter M") {
		t.Errorf("letter hint = %q, want first letter M", text)
	}
}

func TestWordShapeCue(t *testing.T) {
	ladder := NewLadder(exercise.ConfigFor(exercise.WordFinding))
	item := exercise.Item{ID: "w", ExpectedAnswer: "Scissors"}

	text, ok := ladder.Cue(item, 6)
	if !ok {
		t.Fatal("level 6 exhausted")
	}
	if !strings.Contains(text, "8 letters") || !strings.Contains(text, "S") {
		t.Errorf("word shape cue = %q, want letter count and first letter", text)
	}
}
