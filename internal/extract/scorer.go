package extract

import "strings"

// Score assigns a relevance score to a cleaned text candidate. It is a
// weighted linear heuristic: every term's contribution is independently
// inspectable, which is the point — there is no labeled training data to
// fit anything better, and the result must be reproducible.
//
// The returned value is an unnormalized sum and can be negative.
func Score(text string) float64 {
	var score float64
	lower := strings.ToLower(text)

	// Keyword density: 5 points per occurrence of each vocabulary term.
	for _, term := range vocabTerms {
		score += 5 * float64(strings.Count(lower, term))
	}

	// Length banding.
	n := len([]rune(text))
	switch {
	case n >= 500 && n <= 5000:
		score += 30
	case n > 5000 && n <= 10000:
		score += 10
	case n > 10000:
		score -= 20
	default:
		score -= 10
	}

	// Structural markers: bullets, hyphen lists, numbered lists.
	if strings.ContainsRune(text, '•') ||
		hyphenLineRe.MatchString(text) ||
		numberedListRe.MatchString(text) {
		score += 10
	}
	if strings.Count(text, "\n\n") > 3 {
		score += 5
	}

	// Experience and degree mentions.
	if strings.Contains(lower, "years of experience") ||
		strings.Contains(lower, "years experience") ||
		experienceRe.MatchString(text) {
		score += 10
	}
	if degreeRe.MatchString(text) {
		score += 5
	}

	// Tech-stack density: 2 points per distinct technology.
	for _, re := range techTermRes {
		if re.MatchString(text) {
			score += 2
		}
	}

	return score
}

// containsVocabTerm reports whether the text mentions any job-posting
// vocabulary term. Used by the keyword-paragraph fallback.
func containsVocabTerm(text string) bool {
	lower := strings.ToLower(text)
	for _, term := range vocabTerms {
		if strings.Contains(lower, term) {
			return true
		}
	}
	return false
}
