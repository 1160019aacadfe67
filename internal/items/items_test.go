package items

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fweiner/parrotsoftware-treatment-sub000/internal/exercise"
)

func testRoster() *Roster {
	return &Roster{
		People: []Person{
			{Name: "Barbara Smith", Nickname: "Barb", Relationship: "sister", Interests: "gardening and crosswords", Personality: "kind", Location: "at Sunday dinners"},
			{Name: "Tom Smith", Relationship: "son", Description: "He drives the red pickup truck"},
			{Name: "Rosa Delgado", Relationship: "neighbor", Personality: "cheerful"},
			{Name: "Frank Miller", Relationship: "friend", Interests: "fishing"},
			{Name: "Alice Chen", Relationship: "doctor"},
		},
		Belongings: []Belonging{
			{Name: "reading chair", Category: "living room", Purpose: "to read in the afternoon", Color: "green"},
		},
		Facts: []Fact{
			{Label: "birthday_month", Question: "What month were you born in?", Answer: "March"},
			{Label: "phone_number", Question: "What is your phone number?", Answer: "555-0192"},
		},
		Lists: []RecallList{
			{Name: "groceries", Items: []string{"milk", "bread", "apples"}},
		},
	}
}

func TestWordFindingItems(t *testing.T) {
	src := NewSeededSource(&Roster{}, 1)
	items, err := src.Items(exercise.WordFinding)
	require.NoError(t, err)
	require.Len(t, items, WordFindingCount)

	seen := map[string]bool{}
	for _, it := range items {
		assert.True(t, it.Valid(), "item %s", it.ID)
		assert.NotEmpty(t, it.Presentation.ImageURL)
		assert.Equal(t, "What is this called?", it.Presentation.Prompt)
		assert.False(t, seen[it.ID], "duplicate stimulus %s", it.ID)
		seen[it.ID] = true
	}
}

func TestWordFindingDeterministicForSeed(t *testing.T) {
	a, err := NewSeededSource(&Roster{}, 7).Items(exercise.WordFinding)
	require.NoError(t, err)
	b, err := NewSeededSource(&Roster{}, 7).Items(exercise.WordFinding)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestLifeWordsItems(t *testing.T) {
	src := NewSeededSource(testRoster(), 1)
	items, err := src.Items(exercise.LifeWords)
	require.NoError(t, err)
	require.Len(t, items, 6)

	byID := map[string]exercise.Item{}
	for _, it := range items {
		byID[it.ID] = it
	}

	barb, ok := byID["person:Barbara Smith"]
	require.True(t, ok)
	assert.Equal(t, "Barbara Smith", barb.ExpectedAnswer)
	assert.Equal(t, "sister", barb.Cues.Relationship)
	assert.Contains(t, barb.Alternatives, "Barb")
	assert.Contains(t, barb.Alternatives, "Barbara")

	chair, ok := byID["belonging:reading chair"]
	require.True(t, ok)
	assert.Equal(t, "item", chair.Cues.Relationship, "belongings carry the item sentinel")
	assert.Equal(t, "to read in the afternoon", chair.Cues.Description)
}

func TestLifeWordsRequiresMinimumRoster(t *testing.T) {
	r := testRoster()
	r.People = r.People[:3]
	r.Belongings = nil
	_, err := NewSeededSource(r, 1).Items(exercise.LifeWords)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "at least 5")
}

func TestPersonalFactItems(t *testing.T) {
	items, err := NewSeededSource(testRoster(), 1).Items(exercise.PersonalFacts)
	require.NoError(t, err)
	require.Len(t, items, 2)

	hints := map[string]exercise.HintType{}
	for _, it := range items {
		hints[it.ID] = it.Cues.HintType
	}
	assert.Equal(t, exercise.HintFirstLetter, hints["fact:birthday_month"])
	assert.Equal(t, exercise.HintFirstDigit, hints["fact:phone_number"])
}

func TestPersonQuestionPhrasing(t *testing.T) {
	tests := []struct {
		name   string
		person Person
		want   string
	}{
		{
			name:   "interests win",
			person: Person{Name: "Barbara", Relationship: "sister", Interests: "gardening", Description: "lives next door", Personality: "kind"},
			want:   "Who is your sister who loves gardening?",
		},
		{
			name:   "description next",
			person: Person{Name: "Tom", Relationship: "son", Description: "drives the red pickup truck."},
			want:   "Who is your son who drives the red pickup truck?",
		},
		{
			name:   "personality next",
			person: Person{Name: "Rosa", Relationship: "neighbor", Personality: "cheerful"},
			want:   "Who is your neighbor who is cheerful?",
		},
		{
			name:   "bare entry falls back",
			person: Person{Name: "Alice", Relationship: "doctor"},
			want:   "Who is your doctor who is special to you?",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, personQuestion(tt.person))
		})
	}
}

func TestPersonQuestionsRequireEnoughPeople(t *testing.T) {
	r := testRoster()
	r.People = r.People[:2]
	_, err := NewSeededSource(r, 1).Items(exercise.PersonQuestions)
	require.Error(t, err)
}

func TestListRecallItems(t *testing.T) {
	items, err := NewSeededSource(testRoster(), 1).Items(exercise.ListRecall)
	require.NoError(t, err)
	require.Len(t, items, 1)

	it := items[0]
	assert.Equal(t, "milk bread apples", it.ExpectedAnswer)
	assert.Equal(t, []string{"milk", "bread", "apples"}, it.Presentation.SpokenList)
	assert.NotEmpty(t, it.Presentation.Teach)
	assert.True(t, strings.Contains(it.Presentation.Prompt, "3 words"))
}

func TestEmptyRosterErrors(t *testing.T) {
	src := NewSeededSource(&Roster{}, 1)
	for _, typ := range []exercise.Type{exercise.LifeWords, exercise.PersonalFacts, exercise.PersonQuestions, exercise.ListRecall} {
		_, err := src.Items(typ)
		assert.Error(t, err, "type %s", typ)
	}
}

func TestParseRosterValidates(t *testing.T) {
	_, err := ParseRoster([]byte(`{"people":[{"nickname":"Barb"}]}`))
	require.Error(t, err)

	r, err := ParseRoster([]byte(`{"people":[{"name":"Barbara Smith","relationship":"sister"}]}`))
	require.NoError(t, err)
	require.Len(t, r.People, 1)
	assert.Equal(t, "Barbara Smith", r.People[0].Name)
}
