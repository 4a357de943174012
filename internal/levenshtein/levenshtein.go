// Package levenshtein computes edit distances between dynstr values.
package levenshtein

import "github.com/msto63/dynstr/pkg/dynstr"

// Distance returns the Levenshtein distance between a and b using the
// two-row dynamic programming table.
func Distance(a, b dynstr.String) int {
	x, y := a.Bytes(), b.Bytes()
	if len(x) < len(y) {
		x, y = y, x
	}
	if len(y) == 0 {
		return len(x)
	}

	prev := make([]int, len(y)+1)
	curr := make([]int, len(y)+1)
	for j := range prev {
		prev[j] = j
	}

	for i := 1; i <= len(x); i++ {
		curr[0] = i
		for j := 1; j <= len(y); j++ {
			cost := 1
			if x[i-1] == y[j-1] {
				cost = 0
			}
			curr[j] = min(prev[j]+1, curr[j-1]+1, prev[j-1]+cost)
		}
		prev, curr = curr, prev
	}
	return prev[len(y)]
}

// Recursive computes the same distance by plain recursion over prefixes.
// Its cost is exponential; use it for short inputs only.
func Recursive(a, b dynstr.String) int {
	return recurse(a.Bytes(), b.Bytes(), a.Len(), b.Len())
}

func recurse(x, y []byte, i, j int) int {
	if i == 0 {
		return j
	}
	if j == 0 {
		return i
	}
	if x[i-1] == y[j-1] {
		return recurse(x, y, i-1, j-1)
	}
	return 1 + min(
		recurse(x, y, i-1, j-1),
		recurse(x, y, i, j-1),
		recurse(x, y, i-1, j),
	)
}
