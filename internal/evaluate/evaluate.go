package evaluate

import "strings"

// Result is the verdict for one answer attempt. Produced fresh per call,
// never mutated.
type Result struct {
	Correct bool
	Partial bool    // correct via an accommodation, not an exact match
	Score   float64 // 0..1
}

// Evaluate compares a user's answer against the expected answer using an
// ordered chain of matching strategies. Each strategy runs only if enabled
// by settings; the first match wins. A deterministic pure function: the same
// inputs always yield the same Result.
//
// Strategy order and scores:
//
//	1. exact match to expected            1.0
//	2. exact match to an alternative      1.0
//	3. first name of a full-name answer   0.9 (partial)
//	4. substring either direction         0.8 (partial)
//	5. word overlap >= 0.5                ratio (partial)
//	6. significant-word overlap           max(0.7, ratio) (partial)
//	7. shared synonym group               0.7 (partial)
func Evaluate(userAnswer, expected string, alternatives []string, s Settings) Result {
	user := normalize(userAnswer)
	want := normalize(expected)

	// Empty or whitespace-only input is a defined incorrect outcome, not an
	// error: "no answer" must still produce a deterministic verdict.
	if user == "" || want == "" {
		return Result{}
	}

	// 1. Case-insensitive exact match. Always enabled.
	if user == want {
		return Result{Correct: true, Score: 1.0}
	}

	// 2. Exact match against the acceptable alternatives.
	if s.MatchAcceptableAlternatives {
		for _, alt := range alternatives {
			if user == normalize(alt) {
				return Result{Correct: true, Score: 1.0}
			}
		}
	}

	// 3. First-name-only: only applies to multi-word expected answers.
	if s.MatchFirstNameOnly {
		if first, _, ok := strings.Cut(want, " "); ok && user == first {
			return Result{Correct: true, Partial: true, Score: 0.9}
		}
	}

	// 4. Substring containment, either direction.
	if s.MatchPartialSubstring {
		if strings.Contains(user, want) || strings.Contains(want, user) {
			return Result{Correct: true, Partial: true, Score: 0.8}
		}
	}

	userTokens := tokenSet(user)
	wantTokens := tokenSet(want)

	// 5. Word overlap: shared tokens over the larger token-set size.
	if s.MatchWordOverlap {
		if ratio := overlapRatio(userTokens, wantTokens); ratio >= 0.5 {
			return Result{Correct: true, Partial: true, Score: ratio}
		}
	}

	// 6. Stop-word-filtered overlap: one shared significant word, or a
	// filtered ratio of at least 0.3, counts.
	if s.MatchStopWordFiltering {
		userSig := significantTokens(user)
		wantSig := significantTokens(want)
		shared := 0
		for t := range userSig {
			if wantSig[t] {
				shared++
			}
		}
		ratio := overlapRatio(userSig, wantSig)
		if shared >= 1 || ratio >= 0.3 {
			score := ratio
			if score < 0.7 {
				score = 0.7
			}
			return Result{Correct: true, Partial: true, Score: score}
		}
	}

	// 7. Synonym groups: both answers mention a word from the same set.
	if s.MatchSynonyms {
		if sharedSynonymGroup(userTokens, wantTokens) {
			return Result{Correct: true, Partial: true, Score: 0.7}
		}
	}

	return Result{}
}
