package match

import (
	"cmp"
	"slices"
)

// DefaultMinScore is the minimum similarity for a name to be suggested.
const DefaultMinScore = 0.6

// Candidate is a known name scored against an input.
type Candidate struct {
	Name  string
	Score float64
}

// Rank scores every name against input, best first. Equal scores keep
// alphabetical order.
func Rank(input string, names []string) []Candidate {
	normalized := Normalize(input)

	candidates := make([]Candidate, len(names))
	for i, name := range names {
		candidates[i] = Candidate{Name: name, Score: Similarity(normalized, Normalize(name))}
	}

	slices.SortFunc(candidates, func(a, b Candidate) int {
		if c := cmp.Compare(b.Score, a.Score); c != 0 {
			return c
		}

		return cmp.Compare(a.Name, b.Name)
	})

	return candidates
}

// Suggest returns the best matching name when it scores at least minScore.
func Suggest(input string, names []string, minScore float64) (string, bool) {
	candidates := Rank(input, names)
	if len(candidates) == 0 || candidates[0].Score < minScore {
		return "", false
	}

	return candidates[0].Name, true
}
