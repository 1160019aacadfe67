package exercise

import "strings"

// Type identifies one of the five recall exercises.
type Type string

const (
	// WordFinding shows a picture of an everyday object to name.
	WordFinding Type = "word_finding"

	// LifeWords shows a photo of a personally known person or possession.
	LifeWords Type = "life_words"

	// PersonalFacts asks for a personal fact (birthday, phone number, address).
	PersonalFacts Type = "personal_facts"

	// PersonQuestions asks "Who is your {relationship} who {hint}?" questions.
	PersonQuestions Type = "person_questions"

	// ListRecall reads a short list aloud and asks for the items back.
	ListRecall Type = "list_recall"
)

// All lists every exercise type in menu order.
func All() []Type {
	return []Type{WordFinding, LifeWords, PersonalFacts, PersonQuestions, ListRecall}
}

// DisplayName returns the user-facing name for an exercise type.
func (t Type) DisplayName() string {
	switch t {
	case WordFinding:
		return "Word Finding"
	case LifeWords:
		return "Life Words"
	case PersonalFacts:
		return "Personal Facts"
	case PersonQuestions:
		return "Person Questions"
	case ListRecall:
		return "List Recall"
	}
	return string(t)
}

// ParseType resolves a command-line exercise name. It accepts the canonical
// snake_case identifier as well as hyphenated spellings.
func ParseType(s string) (Type, bool) {
	normalized := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), "-", "_")
	for _, t := range All() {
		if normalized == string(t) {
			return t, true
		}
	}
	return "", false
}

// HintType selects how a partial-value hint is rendered for an item.
type HintType string

const (
	HintFirstLetter HintType = "first_letter"
	HintFirstDigit  HintType = "first_digit"
)

// CueMaterial holds the optional item fields the cue ladder draws from.
// All fields may be empty; the ladder substitutes fallbacks for absent ones.
type CueMaterial struct {
	Relationship string // "sister", "neighbor", "item"
	Description  string
	Interests    string
	Personality  string
	Location     string // where the person/thing is usually found
	Association  string // who or what it is associated with
	Category     string // semantic category ("kitchen", "clothing")
	Features     string // distinguishing physical features
	Color        string
	HintType     HintType // partial-value hint style, defaults to first letter
}

// Payload is the content shown or spoken before answering. The engine never
// interprets it; screens and the speech synthesizer do.
type Payload struct {
	Prompt     string   // question text spoken/shown to the user
	ImageURL   string   // photo or line drawing reference
	Teach      string   // teach sentence spoken before the answer window opens
	SpokenList []string // list-recall items, read aloud in order
}

// Item is one stimulus within a session. Immutable once created.
type Item struct {
	ID             string
	ExpectedAnswer string
	Alternatives   []string
	Cues           CueMaterial
	Presentation   Payload
}

// Valid reports whether the item satisfies the engine's contract.
func (it Item) Valid() bool {
	return it.ExpectedAnswer != ""
}
