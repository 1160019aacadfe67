package practice

import (
	"errors"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/fweiner/parrotsoftware-treatment-sub000/internal/exercise"
	"github.com/fweiner/parrotsoftware-treatment-sub000/internal/items"
	"github.com/fweiner/parrotsoftware-treatment-sub000/internal/progress"
	"github.com/fweiner/parrotsoftware-treatment-sub000/internal/screen"
)

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func testPracticeScreen(t exercise.Type) *PracticeScreen {
	return New(Options{
		Exercise: t,
		Source:   items.NewSeededSource(&items.Roster{}, 1),
	})
}

func presentedItem() exercise.Item {
	return exercise.Item{
		ID:             "wf:kettle",
		ExpectedAnswer: "kettle",
		Presentation: exercise.Payload{
			Prompt:   "What is this called?",
			ImageURL: "stimuli/kettle.png",
		},
	}
}

func TestPracticeScreen_Title(t *testing.T) {
	p := testPracticeScreen(exercise.WordFinding)
	if p.Title() != "Word Finding" {
		t.Errorf("Title = %q, want %q", p.Title(), "Word Finding")
	}
}

func TestPracticeScreen_View_Loading(t *testing.T) {
	p := testPracticeScreen(exercise.WordFinding)
	view := p.View(80, 24)
	if !strings.Contains(view, "Preparing") {
		t.Errorf("expected loading view, got:\n%s", view)
	}
}

func TestPracticeScreen_View_Error(t *testing.T) {
	p := testPracticeScreen(exercise.LifeWords)
	var scr screen.Screen = p
	scr, _ = scr.Update(sessionReadyMsg{Err: errors.New("life words needs at least 5 people or belongings, roster has 0")})
	view := scr.View(80, 24)
	if !strings.Contains(view, "go back") {
		t.Errorf("expected error view, got:\n%s", view)
	}
}

func TestPracticeScreen_ItemPresented(t *testing.T) {
	p := testPracticeScreen(exercise.WordFinding)
	var scr screen.Screen = p
	scr, cmd := scr.Update(itemPresentedMsg{Item: presentedItem(), Index: 0, Total: 10})
	if cmd == nil {
		t.Error("expected presentation + wait commands")
	}
	ps := scr.(*PracticeScreen)
	if ps.mode != modeItem {
		t.Errorf("mode = %d, want modeItem", ps.mode)
	}
	if ps.Status() != "Item 1 of 10" {
		t.Errorf("Status = %q, want %q", ps.Status(), "Item 1 of 10")
	}
	view := ps.View(80, 24)
	if !strings.Contains(view, "What is this called?") {
		t.Errorf("expected prompt in view, got:\n%s", view)
	}
}

func TestPracticeScreen_ListRecallTeachesFirst(t *testing.T) {
	p := testPracticeScreen(exercise.ListRecall)
	item := exercise.Item{
		ID:             "list:groceries",
		ExpectedAnswer: "milk bread apples",
		Presentation: exercise.Payload{
			Prompt:     "What were the 3 words you just heard?",
			Teach:      "Listen carefully. I will read you a short list of words.",
			SpokenList: []string{"milk", "bread", "apples"},
		},
	}
	var scr screen.Screen = p
	scr, _ = scr.Update(itemPresentedMsg{Item: item, Index: 0, Total: 1})
	ps := scr.(*PracticeScreen)
	if ps.mode != modeTeach {
		t.Fatalf("mode = %d, want modeTeach", ps.mode)
	}
	view := ps.View(80, 24)
	for _, word := range item.Presentation.SpokenList {
		if !strings.Contains(view, word) {
			t.Errorf("teach view missing %q", word)
		}
	}

	// The list leaves the screen once the answer window opens.
	scr, _ = ps.Update(presentationDoneMsg{})
	ps = scr.(*PracticeScreen)
	if ps.mode != modeItem {
		t.Fatalf("mode after presentation = %d, want modeItem", ps.mode)
	}
	if strings.Contains(ps.View(80, 24), "bread") {
		t.Error("list words still visible during answer window")
	}
}

func TestPracticeScreen_CueShown(t *testing.T) {
	p := testPracticeScreen(exercise.WordFinding)
	var scr screen.Screen = p
	scr, _ = scr.Update(itemPresentedMsg{Item: presentedItem(), Index: 0, Total: 10})
	scr, _ = scr.Update(cueIssuedMsg{Text: "It starts with \"k\"."})
	view := scr.View(80, 24)
	if !strings.Contains(view, "Hint 1") {
		t.Errorf("expected cue in view, got:\n%s", view)
	}
}

func TestPracticeScreen_RevealView(t *testing.T) {
	p := testPracticeScreen(exercise.WordFinding)
	var scr screen.Screen = p
	scr, _ = scr.Update(itemPresentedMsg{Item: presentedItem(), Index: 0, Total: 10})
	scr, _ = scr.Update(itemRevealedMsg{Text: "This is a kettle."})
	scr, _ = scr.Update(itemFinalizedMsg{Resp: progress.Response{
		ItemID: "wf:kettle", Answer: "pot", Correct: false,
	}})
	ps := scr.(*PracticeScreen)
	if ps.mode != modeReveal {
		t.Fatalf("mode = %d, want modeReveal", ps.mode)
	}
	view := ps.View(80, 24)
	if !strings.Contains(view, "This is a kettle.") {
		t.Errorf("expected reveal text, got:\n%s", view)
	}
	if !strings.Contains(view, "Not quite") {
		t.Errorf("expected verdict, got:\n%s", view)
	}
}

func TestPracticeScreen_QuitConfirm(t *testing.T) {
	p := testPracticeScreen(exercise.WordFinding)
	var scr screen.Screen = p
	scr, _ = scr.Update(itemPresentedMsg{Item: presentedItem(), Index: 0, Total: 10})

	scr, _ = scr.Update(specialKey(tea.KeyEscape))
	ps := scr.(*PracticeScreen)
	if !ps.quitConfirm {
		t.Fatal("expected quit confirmation dialog")
	}
	if !strings.Contains(ps.View(80, 24), "End session early?") {
		t.Error("expected quit dialog in view")
	}

	scr, _ = ps.Update(keyPress('n'))
	ps = scr.(*PracticeScreen)
	if ps.quitConfirm {
		t.Error("expected quit confirmation to be dismissed")
	}
}

func TestPracticeScreen_ErrorKeyPops(t *testing.T) {
	p := testPracticeScreen(exercise.LifeWords)
	var scr screen.Screen = p
	scr, _ = scr.Update(sessionReadyMsg{Err: errors.New("life words needs at least 5 people or belongings, roster has 0")})
	_, cmd := scr.Update(keyPress(' '))
	if cmd == nil {
		t.Error("expected pop command from error view")
	}
}

func TestPracticeScreen_KeyHints(t *testing.T) {
	p := testPracticeScreen(exercise.WordFinding)
	hints := p.KeyHints()
	if len(hints) == 0 {
		t.Error("expected non-empty key hints")
	}
	p.quitConfirm = true
	hints = p.KeyHints()
	if len(hints) != 2 {
		t.Errorf("quit-confirm hints = %d, want 2", len(hints))
	}
}
