package match

// Distance returns the edit distance between a and b: the number of single
// byte insertions, deletions and substitutions turning one into the other.
func Distance(a, b string) int {
	if len(a) < len(b) {
		a, b = b, a
	}

	// row[j] is the distance between the current prefix of a and b[:j]
	row := make([]int, len(b)+1)
	for j := range row {
		row[j] = j
	}

	for i := 1; i <= len(a); i++ {
		diagonal := row[0]
		row[0] = i

		for j := 1; j <= len(b); j++ {
			above := row[j]

			substitution := diagonal
			if a[i-1] != b[j-1] {
				substitution++
			}

			row[j] = min(above+1, row[j-1]+1, substitution)
			diagonal = above
		}
	}

	return row[len(b)]
}

// Similarity scores a against b in [0, 1], 1 meaning equal.
func Similarity(a, b string) float64 {
	longest := max(len(a), len(b))
	if longest == 0 {
		return 1
	}

	return 1 - float64(Distance(a, b))/float64(longest)
}
