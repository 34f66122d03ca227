package combiner

import (
	"bytes"
	"encoding/gob"

	"github.com/purepos-go/purepos/logprob"
)

var _ gob.GobEncoder = &LemmaUnigramModel{}
var _ gob.GobDecoder = &LemmaUnigramModel{}

// LemmaUnigramModel is a maximum-likelihood unigram model over lemma
// strings, used as one half of the Bi-Combiner's blended lemma score.
type LemmaUnigramModel struct {
	counts map[string]int
	total  int
}

// NewLemmaUnigramModel constructs an empty LemmaUnigramModel.
func NewLemmaUnigramModel() *LemmaUnigramModel {
	return &LemmaUnigramModel{counts: make(map[string]int)}
}

type encodedLemmaUnigramModel struct {
	Counts map[string]int
	Total  int
}

// GobEncode encodes a LemmaUnigramModel as a gob.
func (m *LemmaUnigramModel) GobEncode() ([]byte, error) {
	var buf bytes.Buffer
	enc := encodedLemmaUnigramModel{Counts: m.counts, Total: m.total}
	err := gob.NewEncoder(&buf).Encode(enc)
	return buf.Bytes(), err
}

// GobDecode decodes a LemmaUnigramModel from a gob.
func (m *LemmaUnigramModel) GobDecode(data []byte) error {
	var enc encodedLemmaUnigramModel
	if err := gob.NewDecoder(bytes.NewBuffer(data)).Decode(&enc); err != nil {
		return err
	}

	m.counts = enc.Counts
	m.total = enc.Total
	return nil
}

// Increment records one more occurrence of lemma.
func (m *LemmaUnigramModel) Increment(lemma string) {
	m.counts[lemma]++
	m.total++
}

// Count returns the number of times lemma was recorded.
func (m *LemmaUnigramModel) Count(lemma string) int {
	return m.counts[lemma]
}

// LogProb returns log(count(lemma) / total), or logprob.UnknownValue if
// lemma was never seen or the model is empty.
func (m *LemmaUnigramModel) LogProb(lemma string) float64 {
	if m.total == 0 {
		return logprob.UnknownValue
	}
	return logprob.Safe(float64(m.counts[lemma]) / float64(m.total))
}
