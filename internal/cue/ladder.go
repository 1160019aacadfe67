// Package cue synthesizes the progressive hint ladder for a recall item.
// Levels run 1..N from least to most revealing; the final level always
// restates the answer outright, which is what lets the session engine treat
// "top of the ladder" as the reveal. All functions are pure; speaking or
// rendering a cue is the caller's job.
package cue

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/fweiner/parrotsoftware-treatment-sub000/internal/exercise"
)

// Ladder maps (item, level) to cue text for one exercise configuration.
type Ladder struct {
	cfg exercise.Config
}

// NewLadder builds the ladder for an exercise configuration.
func NewLadder(cfg exercise.Config) Ladder {
	return Ladder{cfg: cfg}
}

// Len is the number of levels, including the final reveal.
func (l Ladder) Len() int {
	return l.cfg.LadderLen
}

// Cue returns the hint text for a level in 1..Len. ok is false when the
// level is outside the ladder: exhaustion, not an error. The caller must
// treat it as "reveal now". The text is never empty for an in-range level:
// absent cue material falls back to a generic hint.
func (l Ladder) Cue(item exercise.Item, level int) (text string, ok bool) {
	if level < 1 || level > l.Len() {
		return "", false
	}
	if level == l.Len() {
		return l.reveal(item), true
	}

	switch l.cfg.Type {
	case exercise.WordFinding:
		return wordFindingCue(item, level), true
	case exercise.LifeWords:
		return lifeWordsCue(item, level), true
	case exercise.PersonQuestions:
		return personQuestionCue(item, level), true
	case exercise.PersonalFacts, exercise.ListRecall:
		return partialValueCue(item), true
	}
	return partialValueCue(item), true
}

// reveal is the unambiguous final restatement of the answer.
func (l Ladder) reveal(item exercise.Item) string {
	switch l.cfg.Type {
	case exercise.LifeWords, exercise.PersonQuestions:
		return fmt.Sprintf("This is %s.", item.ExpectedAnswer)
	default:
		return fmt.Sprintf("The answer is %s.", item.ExpectedAnswer)
	}
}

// wordFindingCue covers levels 1-6 of the object-naming ladder.
func wordFindingCue(item exercise.Item, level int) string {
	m := item.Cues
	switch level {
	case 1:
		if m.Category != "" {
			return fmt.Sprintf("It's something you'd find in the %s.", m.Category)
		}
		return "It's an everyday object you've used many times."
	case 2:
		if m.Description != "" {
			return fmt.Sprintf("You use it %s.", m.Description)
		}
		return "Think about what you would do with it."
	case 3:
		if m.Location != "" {
			return fmt.Sprintf("You usually keep it %s.", m.Location)
		}
		return "Picture the room where you last saw one."
	case 4:
		switch {
		case m.Features != "":
			return fmt.Sprintf("It %s.", m.Features)
		case m.Color != "":
			return fmt.Sprintf("It's usually %s.", m.Color)
		default:
			return "Picture its shape and size in your hands."
		}
	case 5:
		return firstLetterCue(item)
	default: // 6
		return wordShapeCue(item)
	}
}

// lifeWordsCue covers levels 1-7 of the person/possession ladder.
func lifeWordsCue(item exercise.Item, level int) string {
	m := item.Cues
	switch level {
	case 1:
		if m.Relationship != "" && m.Relationship != "item" {
			return fmt.Sprintf("This is your %s.", m.Relationship)
		}
		return "This is someone or something special to you."
	case 2:
		if m.Description != "" {
			return capSentence(m.Description)
		}
		return "Take another good look at the photo."
	case 3:
		if m.Interests != "" {
			return fmt.Sprintf("They love %s.", m.Interests)
		}
		return "Think about what you've done together."
	case 4:
		if m.Personality != "" {
			return fmt.Sprintf("People would describe them as %s.", m.Personality)
		}
		return "Think about how they make you feel."
	case 5:
		switch {
		case m.Location != "":
			return fmt.Sprintf("You usually see them %s.", m.Location)
		case m.Association != "":
			return fmt.Sprintf("You know them through %s.", m.Association)
		default:
			return "Think about where you usually are when you're together."
		}
	case 6:
		return firstLetterCue(item)
	default: // 7
		return prefixCue(item)
	}
}

// personQuestionCue covers levels 1-4 of the "who is your..." ladder.
// The material fallback chain (interests, description, personality) is the
// same one the question text itself is built from.
func personQuestionCue(item exercise.Item, level int) string {
	m := item.Cues
	switch level {
	case 1:
		if m.Relationship != "" {
			return fmt.Sprintf("Think of your %s.", m.Relationship)
		}
		return "Think of the people closest to you."
	case 2:
		switch {
		case m.Interests != "":
			return fmt.Sprintf("This person loves %s.", m.Interests)
		case m.Description != "":
			return capSentence(m.Description)
		case m.Personality != "":
			return fmt.Sprintf("This person is %s.", m.Personality)
		default:
			return "This person is special to you."
		}
	case 3:
		if m.Location != "" {
			return fmt.Sprintf("You usually see them %s.", m.Location)
		}
		return "Picture their face."
	default: // 4
		return firstLetterCue(item)
	}
}

// partialValueCue is the single pre-reveal hint for fact and list items:
// the first letter, or the first digit for numeric facts.
func partialValueCue(item exercise.Item) string {
	if item.Cues.HintType == exercise.HintFirstDigit {
		for _, r := range item.ExpectedAnswer {
			if unicode.IsDigit(r) {
				return fmt.Sprintf("It starts with the number %c.", r)
			}
		}
	}
	return firstLetterCue(item)
}

func firstLetterCue(item exercise.Item) string {
	for _, r := range item.ExpectedAnswer {
		if unicode.IsLetter(r) {
			return fmt.Sprintf("It starts with the letter %c.", unicode.ToUpper(r))
		}
	}
	// Answers with no letters at all (e.g. a numeric fact): hint the length.
	return fmt.Sprintf("It has %d characters.", len([]rune(strings.TrimSpace(item.ExpectedAnswer))))
}

// wordShapeCue gives the letter count together with the first letter.
func wordShapeCue(item exercise.Item) string {
	word := strings.TrimSpace(item.ExpectedAnswer)
	runes := []rune(word)
	if len(runes) == 0 {
		return firstLetterCue(item)
	}
	return fmt.Sprintf("It has %d letters and starts with %c.", len(runes), unicode.ToUpper(runes[0]))
}

// prefixCue reveals the first few letters of a name.
func prefixCue(item exercise.Item) string {
	name := strings.TrimSpace(item.ExpectedAnswer)
	runes := []rune(name)
	n := 3
	if len(runes) < n {
		n = len(runes)
	}
	return fmt.Sprintf("The name starts with %q.", string(runes[:n]))
}

// capSentence upper-cases the first rune and ensures a trailing period.
func capSentence(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return s
	}
	runes := []rune(s)
	runes[0] = unicode.ToUpper(runes[0])
	out := string(runes)
	if !strings.HasSuffix(out, ".") && !strings.HasSuffix(out, "!") && !strings.HasSuffix(out, "?") {
		out += "."
	}
	return out
}
