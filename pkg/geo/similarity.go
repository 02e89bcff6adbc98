package geo

import "strings"

// Normalize prepares a place name for index lookups and comparisons.
// Multilingual aliases are stored verbatim, so this is only trim + lowercase;
// no diacritic stripping.
func Normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// EditDistance computes the Levenshtein distance between two strings.
func EditDistance(a, b string) int {
	ra := []rune(a)
	rb := []rune(b)
	if len(ra) == 0 {
		return len(rb)
	}
	if len(rb) == 0 {
		return len(ra)
	}

	prev := make([]int, len(rb)+1)
	curr := make([]int, len(rb)+1)
	for j := 0; j <= len(rb); j++ {
		prev[j] = j
	}

	for i := 1; i <= len(ra); i++ {
		curr[0] = i
		for j := 1; j <= len(rb); j++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}
			curr[j] = min3(curr[j-1]+1, prev[j]+1, prev[j-1]+cost)
		}
		prev, curr = curr, prev
	}
	return prev[len(rb)]
}

func min3(a, b, c int) int {
	if b < a {
		a = b
	}
	if c < a {
		a = c
	}
	return a
}

// Similarity scores how well two names match, in [0,1].
// Exact match is 1.0, containment in either direction scores high,
// everything else degrades with edit distance.
func Similarity(a, b string) float64 {
	na := Normalize(a)
	nb := Normalize(b)
	if na == "" || nb == "" {
		return 0
	}
	if na == nb {
		return 1.0
	}
	if strings.Contains(na, nb) || strings.Contains(nb, na) {
		shorter := len([]rune(na))
		longer := len([]rune(nb))
		if shorter > longer {
			shorter, longer = longer, shorter
		}
		return 0.7 + 0.2*float64(shorter)/float64(longer)
	}

	dist := EditDistance(na, nb)
	longest := len([]rune(na))
	if l := len([]rune(nb)); l > longest {
		longest = l
	}
	score := 1.0 - float64(dist)/float64(longest)
	if score < 0 {
		return 0
	}
	return score
}
