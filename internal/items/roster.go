// Package items builds the per-exercise Item lists from the user's roster:
// the people, belongings, facts and practice lists entered by the user and
// their caregivers. The engine treats items as opaque, read-only input;
// everything exercise-specific about their construction lives here.
package items

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/fweiner/parrotsoftware-treatment-sub000/internal/exercise"
)

// MinRosterEntries is the minimum number of people + belongings required
// before a life-words session can be built.
const MinRosterEntries = 5

// Person is one personally known contact.
type Person struct {
	Name         string `json:"name"`
	Nickname     string `json:"nickname,omitempty"`
	Relationship string `json:"relationship"`
	PhotoURL     string `json:"photo_url,omitempty"`
	Description  string `json:"description,omitempty"`
	Interests    string `json:"interests,omitempty"`
	Personality  string `json:"personality,omitempty"`
	Location     string `json:"location_context,omitempty"`
	Association  string `json:"association,omitempty"`
}

// Belonging is one personal possession ("my stuff").
type Belonging struct {
	Name     string `json:"name"`
	Category string `json:"category,omitempty"`
	Purpose  string `json:"purpose,omitempty"`
	Location string `json:"location,omitempty"`
	Features string `json:"features,omitempty"`
	Color    string `json:"color,omitempty"`
	PhotoURL string `json:"photo_url,omitempty"`
}

// Fact is one personal fact with its practice question.
type Fact struct {
	Label    string `json:"label"` // e.g. "birthday_month", "phone_number"
	Question string `json:"question"`
	Answer   string `json:"answer"`
	HintType string `json:"hint_type,omitempty"` // first_letter | first_digit
}

// RecallList is one short practice list for list-recall sessions.
type RecallList struct {
	Name  string   `json:"name"`
	Items []string `json:"items"`
}

// Roster is the full practice material for one user.
type Roster struct {
	People     []Person     `json:"people"`
	Belongings []Belonging  `json:"belongings"`
	Facts      []Fact       `json:"facts"`
	Lists      []RecallList `json:"lists"`
}

// DefaultRosterPath returns the roster location: REKINDLE_ROSTER env var,
// then $XDG_CONFIG_HOME/rekindle/roster.json, then ~/.config/rekindle/roster.json.
func DefaultRosterPath() (string, error) {
	if p := os.Getenv("REKINDLE_ROSTER"); p != "" {
		return p, nil
	}
	configDir := os.Getenv("XDG_CONFIG_HOME")
	if configDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		configDir = filepath.Join(home, ".config")
	}
	return filepath.Join(configDir, "rekindle", "roster.json"), nil
}

// LoadRoster reads and validates a roster JSON file. Schema validation runs
// before unmarshalling so a malformed file fails with a field-level message
// instead of silently producing empty sessions.
func LoadRoster(path string) (*Roster, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read roster: %w", err)
	}
	return ParseRoster(data)
}

// ParseRoster validates and decodes roster JSON.
func ParseRoster(data []byte) (*Roster, error) {
	if err := validateRoster(data); err != nil {
		return nil, err
	}
	var r Roster
	if err := json.Unmarshal(data, &r); err != nil {
		return nil, fmt.Errorf("decode roster: %w", err)
	}
	return &r, nil
}

// factHintTypes maps well-known fact labels to their hint style, the way
// the fact catalog defines them. Numeric facts hint with a first digit,
// everything else with a first letter.
var factHintTypes = map[string]exercise.HintType{
	"birthday_month": exercise.HintFirstLetter,
	"birthday_day":   exercise.HintFirstDigit,
	"birth_year":     exercise.HintFirstDigit,
	"phone_number":   exercise.HintFirstDigit,
	"street_address": exercise.HintFirstDigit,
	"city":           exercise.HintFirstLetter,
	"state":          exercise.HintFirstLetter,
	"zip_code":       exercise.HintFirstDigit,
	"mother_name":    exercise.HintFirstLetter,
	"father_name":    exercise.HintFirstLetter,
	"hometown":       exercise.HintFirstLetter,
	"occupation":     exercise.HintFirstLetter,
}

// hintType resolves a fact's hint style: explicit value first, then the
// label table, then first letter.
func (f Fact) hintType() exercise.HintType {
	switch f.HintType {
	case string(exercise.HintFirstLetter):
		return exercise.HintFirstLetter
	case string(exercise.HintFirstDigit):
		return exercise.HintFirstDigit
	}
	if ht, ok := factHintTypes[f.Label]; ok {
		return ht
	}
	return exercise.HintFirstLetter
}
