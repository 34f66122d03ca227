package combiner

import "github.com/purepos-go/purepos/lemmatransform"

// Candidate pairs a lemma-transformation with the log-probability the
// suffix-trie guesser assigned it.
type Candidate struct {
	Transformation lemmatransform.Transformation
	LogProb        float64
}

// BatchConvert applies every transformation in probs to word, keeping for
// each resulting lemma string only the highest-scoring transformation that
// produced it.
func BatchConvert(probs map[lemmatransform.Transformation]float64, word string) map[string]Candidate {
	result := make(map[string]Candidate, len(probs))

	for tr, logProb := range probs {
		lemma := tr.Apply(word)

		if existing, ok := result[lemma]; !ok || logProb > existing.LogProb {
			result[lemma] = Candidate{Transformation: tr, LogProb: logProb}
		}
	}

	return result
}
