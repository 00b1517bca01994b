package argsh

import (
	"github.com/texttheater/golang-levenshtein/levenshtein"
)

// Suggest finds the candidate closest to word by Levenshtein distance.
// A match is only offered when the distance is within max(2, len(word)/3),
// so short typos suggest aggressively while long garbage stays unmatched.
func Suggest(word string, candidates []string) (string, bool) {
	threshold := len(word) / 3
	if threshold < 2 {
		threshold = 2
	}

	best := ""
	bestDist := threshold + 1
	for _, cand := range candidates {
		if cand == "" {
			continue
		}
		dist := levenshtein.DistanceForStrings([]rune(word), []rune(cand), levenshtein.DefaultOptions)
		if dist < bestDist {
			best = cand
			bestDist = dist
		}
	}
	return best, best != ""
}
