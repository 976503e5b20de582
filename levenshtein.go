package slicepager

import (
	"math"
	"slices"
)

// levenshtein returns the edit distance between a and b.
func levenshtein(a, b []rune) int {
	if len(a) == 0 {
		return len(b)
	}
	if len(b) == 0 {
		return len(a)
	}

	prev := make([]int, len(b)+1)
	curr := make([]int, len(b)+1)
	for j := range prev {
		prev[j] = j
	}

	for i := 1; i <= len(a); i++ {
		curr[0] = i
		for j := 1; j <= len(b); j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			curr[j] = min(prev[j]+1, curr[j-1]+1, prev[j-1]+cost)
		}
		prev, curr = curr, prev
	}

	return prev[len(b)]
}

// closest returns the candidate with the smallest edit distance to input.
// Candidates are scanned in sorted order, so ties resolve deterministically.
func closest(input string, candidates []string) string {
	sorted := slices.Sorted(slices.Values(candidates))
	minDist := math.MaxInt
	ret := ""

	for _, candidate := range sorted {
		dist := levenshtein([]rune(candidate), []rune(input))
		if dist < minDist {
			minDist = dist
			ret = candidate
		}
	}

	return ret
}
