package evaluate

// Settings are the per-user accommodation flags controlling which matching
// strategies Evaluate may use. The base normalization (trim + case fold) is
// never optional. Owned by the caller's profile; passed by value.
type Settings struct {
	// MatchAcceptableAlternatives accepts an exact match against any of the
	// item's listed alternatives ("dad" for "father" when listed).
	MatchAcceptableAlternatives bool

	// MatchFirstNameOnly accepts just the first name when the expected
	// answer is a full name.
	MatchFirstNameOnly bool

	// MatchPartialSubstring accepts substring containment in either
	// direction ("Connecticut" inside "we live in Connecticut").
	MatchPartialSubstring bool

	// MatchWordOverlap accepts answers sharing at least half their words
	// with the expected answer.
	MatchWordOverlap bool

	// MatchStopWordFiltering accepts answers that share significant words
	// once filler words are stripped.
	MatchStopWordFiltering bool

	// MatchSynonyms accepts answers from the same curated synonym group
	// ("nice" for "kind").
	MatchSynonyms bool
}

// DefaultSettings enables every accommodation. Clinicians tighten scoring by
// turning flags off as recall improves.
func DefaultSettings() Settings {
	return Settings{
		MatchAcceptableAlternatives: true,
		MatchFirstNameOnly:          true,
		MatchPartialSubstring:       true,
		MatchWordOverlap:            true,
		MatchStopWordFiltering:      true,
		MatchSynonyms:               true,
	}
}

// Strict disables every optional strategy, leaving case-insensitive exact
// match only.
func Strict() Settings {
	return Settings{}
}
