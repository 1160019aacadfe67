package evaluate

// synonymGroups are the curated equivalence sets used by the synonym
// strategy. These are domain tables (relationships, personality traits,
// locations, everyday objects), not a dictionary; matching any other word
// pair stays the evaluator's job via the lexical strategies.
var synonymGroups = [][]string{
	// Relationships.
	{"father", "dad", "daddy", "papa", "pa"},
	{"mother", "mom", "mommy", "mama", "ma"},
	{"grandmother", "grandma", "granny", "nana", "gran"},
	{"grandfather", "grandpa", "granddad", "gramps", "papaw"},
	{"wife", "spouse", "partner"},
	{"husband", "hubby"},
	{"child", "kid", "kiddo"},
	{"friend", "buddy", "pal"},
	{"colleague", "coworker", "workmate"},

	// Personality traits.
	{"kind", "nice", "sweet", "caring", "gentle", "warm"},
	{"funny", "humorous", "silly", "witty"},
	{"smart", "intelligent", "clever", "bright"},
	{"happy", "cheerful", "joyful", "upbeat"},
	{"quiet", "shy", "reserved"},
	{"outgoing", "social", "friendly", "sociable"},

	// Locations.
	{"home", "house", "apartment"},
	{"work", "office", "job"},
	{"school", "college", "university"},
	{"hospital", "clinic"},
	{"church", "chapel"},
	{"store", "shop", "market"},

	// Everyday objects (word-finding stimuli).
	{"glasses", "spectacles", "eyeglasses"},
	{"phone", "cellphone", "telephone", "mobile"},
	{"wallet", "purse", "billfold"},
	{"couch", "sofa", "settee"},
	{"television", "tv", "telly"},
	{"car", "automobile", "vehicle"},
	{"cup", "mug"},
	{"pants", "trousers", "slacks"},
}

// synonymIndex maps each word to the index of its group.
var synonymIndex = buildSynonymIndex()

func buildSynonymIndex() map[string]int {
	idx := make(map[string]int)
	for i, group := range synonymGroups {
		for _, w := range group {
			idx[w] = i
		}
	}
	return idx
}

// sharedSynonymGroup reports whether the two token sets each contain at
// least one word from the same synonym group.
func sharedSynonymGroup(a, b map[string]bool) bool {
	groupsA := make(map[int]bool)
	for t := range a {
		if g, ok := synonymIndex[t]; ok {
			groupsA[g] = true
		}
	}
	if len(groupsA) == 0 {
		return false
	}
	for t := range b {
		if g, ok := synonymIndex[t]; ok && groupsA[g] {
			return true
		}
	}
	return false
}
