package langmodel

import (
	"bytes"
	"encoding/gob"

	"github.com/purepos-go/purepos/contexttrie"
	"github.com/purepos-go/purepos/logprob"
	"github.com/purepos-go/purepos/vocabulary"
)

type smoothedNode[E comparable] struct {
	Children map[int]int
	Probs    map[E]float64
}

// A Model is a trie isomorphic in shape to a contexttrie.Trie, except that
// each node's multiset holds smoothed probabilities instead of raw counts.
// It is built once, at compile time, from a Lambdas vector and the raw
// trie; the raw trie can then be discarded.
type Model[E comparable] struct {
	Nodes    []smoothedNode[E]
	MaxDepth int
	Mapper   *vocabulary.TagMapper
}

// Build constructs a Model from trie using the given deleted-interpolation
// weights (as returned by Lambdas).
func Build[E comparable](trie *contexttrie.Trie[E], lambdas []float64) *Model[E] {
	m := &Model[E]{MaxDepth: trie.MaxDepth}

	running := make(map[E]float64)
	for word := range trie.Words(contexttrie.RootIndex) {
		running[word] = 0
	}

	m.buildNode(trie, contexttrie.RootIndex, lambdas, 0, running)

	return m
}

// AttachMapper configures the tag mapper used to rewrite context tags that
// were introduced after training.
func (m *Model[E]) AttachMapper(mapper *vocabulary.TagMapper) {
	m.Mapper = mapper
}

type encodedModel[E comparable] struct {
	Nodes    []smoothedNode[E]
	MaxDepth int
}

// GobEncode encodes a Model as a gob. Mapper is intentionally not part of
// the encoding: a TagMapper holds a pointer to the vocabulary it maps
// against, and the three langmodel.Model instances in a compiled
// hmodel.Model all share one such vocabulary. hmodel.Model's own
// GobDecode reattaches the mapper to each after decoding, rather than
// have each duplicate it independently.
func (m *Model[E]) GobEncode() ([]byte, error) {
	var buf bytes.Buffer
	enc := encodedModel[E]{Nodes: m.Nodes, MaxDepth: m.MaxDepth}
	err := gob.NewEncoder(&buf).Encode(enc)
	return buf.Bytes(), err
}

// GobDecode decodes a Model from a gob, leaving Mapper nil.
func (m *Model[E]) GobDecode(data []byte) error {
	var enc encodedModel[E]
	if err := gob.NewDecoder(bytes.NewBuffer(data)).Decode(&enc); err != nil {
		return err
	}

	m.Nodes = enc.Nodes
	m.MaxDepth = enc.MaxDepth
	return nil
}

func (m *Model[E]) buildNode(trie *contexttrie.Trie[E], trieNode int, lambdas []float64,
	depth int, running map[E]float64) int {

	num := trie.Num(trieNode)
	updated := make(map[E]float64, len(running))
	for word, acc := range running {
		var relFreq float64
		if num > 0 {
			relFreq = float64(trie.Count(trieNode, word)) / float64(num)
		}
		updated[word] = acc + lambdas[depth+1]*relFreq
	}

	n := smoothedNode[E]{Children: make(map[int]int), Probs: updated}
	m.Nodes = append(m.Nodes, n)
	myIdx := len(m.Nodes) - 1

	for tag, childTrieNode := range trie.Children(trieNode) {
		childIdx := m.buildNode(trie, childTrieNode, lambdas, depth+1, updated)
		m.Nodes[myIdx].Children[tag] = childIdx
	}

	return myIdx
}

// LogProb returns log P(element | context), descending the smoothed trie
// as far as the context and the presence of element both allow. context is
// ordered oldest to most recent, matching contexttrie.Trie.Add. If the tag
// mapper is configured, each context tag is mapped before being used to
// descend. Returns logprob.UnknownValue if element was never observed.
func (m *Model[E]) LogProb(context []int, element E) float64 {
	return m.LogProbOr(context, element, logprob.UnknownValue)
}

// LogProbOr behaves like LogProb, except it returns unk instead of
// logprob.UnknownValue when element was never observed. The decoder uses
// this to substitute a case-specific default (spec.md's UNK_TAG_TRANS,
// which is 0.0 rather than -99.0 for a single-candidate token).
func (m *Model[E]) LogProbOr(context []int, element E, unk float64) float64 {
	cur := contexttrie.RootIndex
	prob, ok := m.Nodes[cur].Probs[element]
	if !ok {
		return unk
	}

	depth := 0
	for i := len(context) - 1; i >= 0 && depth < m.MaxDepth; i-- {
		tag := context[i]
		if m.Mapper != nil {
			tag = m.Mapper.Map(tag)
		}

		child, ok := m.Nodes[cur].Children[tag]
		if !ok {
			break
		}

		childProb, ok := m.Nodes[child].Probs[element]
		if !ok {
			break
		}

		cur = child
		prob = childProb
		depth++
	}

	return logprob.Safe(prob)
}
