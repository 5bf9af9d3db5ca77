package usecase

import "strings"

// MatchScore returns the fraction of the user's declared skills found as
// case-insensitive substrings of the posting text, scaled to 0-100. No
// weighting, no stemming, no partial credit.
func MatchScore(text string, skills []string) float64 {
	if len(skills) == 0 {
		return 0
	}

	haystack := strings.ToLower(text)
	matches := 0
	for _, skill := range skills {
		skill = strings.TrimSpace(skill)
		if skill == "" {
			continue
		}
		if strings.Contains(haystack, strings.ToLower(skill)) {
			matches++
		}
	}

	score := 100 * float64(matches) / float64(len(skills))
	if score > 100 {
		score = 100
	}
	return score
}
