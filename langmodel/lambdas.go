package langmodel

import "github.com/purepos-go/purepos/contexttrie"

// Lambdas computes the deleted-interpolation smoothing weights for trie.
// The returned slice has length trie.MaxDepth+2; Lambdas[0] is always zero
// (there is no "depth -1" context to smooth with), Lambdas[1] weights the
// apriori (root) estimate, Lambdas[2] the one-tag-of-context estimate, and
// so on up to Lambdas[trie.MaxDepth+1]. The weights sum to 1, except
// when no depth ever wins a vote, in which case every weight is zero.
func Lambdas[E comparable](trie *contexttrie.Trie[E]) []float64 {
	lambdaFreqs := make([]float64, trie.MaxDepth+2)

	trie.WalkLeaves(func(path []int) {
		leaf := path[len(path)-1]
		for word, count := range trie.Words(leaf) {
			bestDepth := -1
			bestValue := -1.0

			for depth, nodeIdx := range path {
				value := -1.0
				num := trie.Num(nodeIdx)
				c := trie.Count(nodeIdx, word)
				if c > 1 && num > 1 {
					value = float64(c-1) / float64(num-1)
				}

				if value > bestValue {
					bestValue = value
					bestDepth = depth
				}
			}

			if bestValue != -1.0 {
				lambdaFreqs[bestDepth+1] += float64(count)
			}
		}
	})

	var sum float64
	for _, f := range lambdaFreqs {
		sum += f
	}

	if sum == 0 {
		return lambdaFreqs
	}

	for i := range lambdaFreqs {
		lambdaFreqs[i] /= sum
	}

	return lambdaFreqs
}
