package items

import (
	"fmt"
	"math/rand/v2"
	"strings"

	"github.com/fweiner/parrotsoftware-treatment-sub000/internal/exercise"
)

// Source builds item lists for a roster. The rng only affects selection and
// ordering; item content is deterministic for a given roster.
type Source struct {
	roster *Roster
	rng    *rand.Rand
}

// NewSource wraps a roster with a fresh random source.
func NewSource(r *Roster) *Source {
	return &Source{roster: r, rng: rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))}
}

// NewSeededSource wraps a roster with a deterministic random source.
func NewSeededSource(r *Roster, seed uint64) *Source {
	return &Source{roster: r, rng: rand.New(rand.NewPCG(seed, seed))}
}

// Items builds the item list for one exercise type. The returned error
// describes missing roster material, not a transient failure; the caller
// should surface it to the user as "add more entries first".
func (s *Source) Items(t exercise.Type) ([]exercise.Item, error) {
	switch t {
	case exercise.WordFinding:
		return s.wordFindingItems(), nil
	case exercise.LifeWords:
		return s.lifeWordsItems()
	case exercise.PersonalFacts:
		return s.personalFactItems()
	case exercise.PersonQuestions:
		return s.personQuestionItems()
	case exercise.ListRecall:
		return s.listRecallItems()
	}
	return nil, fmt.Errorf("unknown exercise type %q", t)
}

// wordFindingItems samples from the built-in stimulus bank. The bank needs
// no roster material, so word finding is always available.
func (s *Source) wordFindingItems() []exercise.Item {
	picks := s.rng.Perm(len(wordFindingBank))
	n := WordFindingCount
	if n > len(picks) {
		n = len(picks)
	}
	items := make([]exercise.Item, 0, n)
	for _, i := range picks[:n] {
		st := wordFindingBank[i]
		items = append(items, exercise.Item{
			ID:             "wf:" + st.name,
			ExpectedAnswer: st.name,
			Alternatives:   st.alts,
			Cues: exercise.CueMaterial{
				Category:    st.category,
				Description: st.use,
				Location:    st.location,
				Features:    st.features,
				Color:       st.color,
			},
			Presentation: exercise.Payload{
				Prompt:   "What is this called?",
				ImageURL: st.image,
			},
		})
	}
	return items
}

// lifeWordsItems builds naming items from people and belongings, shuffled
// together. Belongings carry the sentinel relationship "item" so the cue
// ladder skips the "This is your ..." phrasing for them.
func (s *Source) lifeWordsItems() ([]exercise.Item, error) {
	total := len(s.roster.People) + len(s.roster.Belongings)
	if total < MinRosterEntries {
		return nil, fmt.Errorf("life words needs at least %d people or belongings, roster has %d", MinRosterEntries, total)
	}
	items := make([]exercise.Item, 0, total)
	for _, p := range s.roster.People {
		items = append(items, exercise.Item{
			ID:             "person:" + p.Name,
			ExpectedAnswer: p.Name,
			Alternatives:   nameAlternatives(p),
			Cues: exercise.CueMaterial{
				Relationship: p.Relationship,
				Description:  p.Description,
				Interests:    p.Interests,
				Personality:  p.Personality,
				Location:     p.Location,
				Association:  p.Association,
			},
			Presentation: exercise.Payload{
				Prompt:   "Who is this?",
				ImageURL: p.PhotoURL,
			},
		})
	}
	for _, b := range s.roster.Belongings {
		items = append(items, exercise.Item{
			ID:             "belonging:" + b.Name,
			ExpectedAnswer: b.Name,
			Cues: exercise.CueMaterial{
				Relationship: "item",
				Description:  b.Purpose,
				Location:     b.Location,
				Category:     b.Category,
				Features:     b.Features,
				Color:        b.Color,
			},
			Presentation: exercise.Payload{
				Prompt:   "What is this?",
				ImageURL: b.PhotoURL,
			},
		})
	}
	s.rng.Shuffle(len(items), func(i, j int) { items[i], items[j] = items[j], items[i] })
	return items, nil
}

// personalFactItems asks each fact's stored question verbatim.
func (s *Source) personalFactItems() ([]exercise.Item, error) {
	if len(s.roster.Facts) == 0 {
		return nil, fmt.Errorf("no personal facts in roster")
	}
	items := make([]exercise.Item, 0, len(s.roster.Facts))
	for _, f := range s.roster.Facts {
		items = append(items, exercise.Item{
			ID:             "fact:" + f.Label,
			ExpectedAnswer: f.Answer,
			Cues:           exercise.CueMaterial{HintType: f.hintType()},
			Presentation:   exercise.Payload{Prompt: f.Question},
		})
	}
	s.rng.Shuffle(len(items), func(i, j int) { items[i], items[j] = items[j], items[i] })
	return items, nil
}

// personQuestionItems turns each person into a "Who is your ... who ...?"
// question. The hint clause prefers interests, then description, then
// personality, and falls back to "is special to you" when the roster entry
// has none of them.
func (s *Source) personQuestionItems() ([]exercise.Item, error) {
	if len(s.roster.People) < MinRosterEntries {
		return nil, fmt.Errorf("person questions need at least %d people, roster has %d", MinRosterEntries, len(s.roster.People))
	}
	items := make([]exercise.Item, 0, len(s.roster.People))
	for _, p := range s.roster.People {
		items = append(items, exercise.Item{
			ID:             "whois:" + p.Name,
			ExpectedAnswer: p.Name,
			Alternatives:   nameAlternatives(p),
			Cues: exercise.CueMaterial{
				Relationship: p.Relationship,
				Description:  p.Description,
				Interests:    p.Interests,
				Personality:  p.Personality,
				Location:     p.Location,
			},
			Presentation: exercise.Payload{
				Prompt: personQuestion(p),
			},
		})
	}
	s.rng.Shuffle(len(items), func(i, j int) { items[i], items[j] = items[j], items[i] })
	return items, nil
}

// listRecallItems builds one item per practice list. The list is spoken as
// the teach phase; the answer window opens only after it finishes.
func (s *Source) listRecallItems() ([]exercise.Item, error) {
	if len(s.roster.Lists) == 0 {
		return nil, fmt.Errorf("no recall lists in roster")
	}
	items := make([]exercise.Item, 0, len(s.roster.Lists))
	for _, l := range s.roster.Lists {
		items = append(items, exercise.Item{
			ID:             "list:" + l.Name,
			ExpectedAnswer: strings.Join(l.Items, " "),
			Presentation: exercise.Payload{
				Prompt:     fmt.Sprintf("What were the %d words you just heard?", len(l.Items)),
				Teach:      "Listen carefully. I will read you a short list of words.",
				SpokenList: append([]string(nil), l.Items...),
			},
		})
	}
	return items, nil
}

// personQuestion phrases the identification question for one person.
func personQuestion(p Person) string {
	rel := p.Relationship
	if rel == "" {
		rel = "person"
	}
	hint := "is special to you"
	switch {
	case p.Interests != "":
		hint = "loves " + p.Interests
	case p.Description != "":
		hint = strings.TrimSuffix(strings.TrimSpace(p.Description), ".")
	case p.Personality != "":
		hint = "is " + p.Personality
	}
	return fmt.Sprintf("Who is your %s who %s?", rel, hint)
}

// nameAlternatives accepts a person's nickname and, for multi-word names,
// the first name on its own.
func nameAlternatives(p Person) []string {
	var alts []string
	if p.Nickname != "" && !strings.EqualFold(p.Nickname, p.Name) {
		alts = append(alts, p.Nickname)
	}
	if first, _, ok := strings.Cut(strings.TrimSpace(p.Name), " "); ok && first != "" {
		alts = append(alts, first)
	}
	return alts
}
