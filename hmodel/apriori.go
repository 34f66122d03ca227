package hmodel

import "math"

// AprioriLogProb returns log(TagApriori[tag]), or unk if tag is unknown to
// TagApriori or its apriori probability is not strictly positive. The
// decoder subtracts this from a guesser's raw log-probability to turn a
// suffix-guesser estimate into something comparable with the lexicon-based
// emission probabilities (both then live on the same log-odds scale).
func (m *Model) AprioriLogProb(tag int, unk float64) float64 {
	p, ok := m.TagApriori[tag]
	if !ok || p <= 0 {
		return unk
	}
	return math.Log(p)
}
