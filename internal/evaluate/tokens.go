package evaluate

import "strings"

// normalize applies the unconditional base normalization: trim surrounding
// whitespace, fold case, and strip trailing sentence punctuation.
func normalize(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	return strings.TrimRight(s, ".!?,")
}

// tokenize splits a normalized answer into word tokens, dropping
// punctuation stuck to word edges.
func tokenize(s string) []string {
	fields := strings.Fields(s)
	tokens := make([]string, 0, len(fields))
	for _, f := range fields {
		f = strings.Trim(f, ".,!?;:'\"()")
		if f != "" {
			tokens = append(tokens, f)
		}
	}
	return tokens
}

// tokenSet returns the unique tokens of a normalized answer.
func tokenSet(s string) map[string]bool {
	set := make(map[string]bool)
	for _, t := range tokenize(s) {
		set[t] = true
	}
	return set
}

// overlapRatio is shared tokens divided by the larger set size.
// Returns 0 when either set is empty.
func overlapRatio(a, b map[string]bool) float64 {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}
	shared := 0
	for t := range a {
		if b[t] {
			shared++
		}
	}
	larger := len(a)
	if len(b) > larger {
		larger = len(b)
	}
	return float64(shared) / float64(larger)
}

// stopWords are filler words ignored by the stop-word-filtered strategy.
// Curated for the spoken-answer domain, not a general list: users with
// expressive-language impairment wrap answers in carrier phrases like
// "I think it is" or "we live in".
var stopWords = map[string]bool{
	"a": true, "an": true, "the": true,
	"i": true, "we": true, "my": true, "our": true, "me": true,
	"is": true, "am": true, "are": true, "was": true, "were": true,
	"it": true, "its": true, "it's": true, "that": true, "this": true,
	"in": true, "on": true, "at": true, "of": true, "to": true, "for": true,
	"think": true, "maybe": true, "probably": true, "guess": true,
	"like": true, "um": true, "uh": true, "well": true, "so": true,
	"said": true, "say": true, "called": true, "name": true, "named": true,
	"live": true, "lives": true, "lived": true,
	"and": true, "or": true, "but": true,
	"he": true, "she": true, "they": true, "his": true, "her": true,
	"yes": true, "no": true, "not": true,
}

// significantTokens returns the token set with stop words removed.
func significantTokens(s string) map[string]bool {
	set := make(map[string]bool)
	for _, t := range tokenize(s) {
		if !stopWords[t] {
			set[t] = true
		}
	}
	return set
}
