package suffixguesser

import (
	"bytes"
	"encoding/gob"
	"math"
	"sort"
	"strings"

	"github.com/purepos-go/purepos/logprob"
)

type bucket[E comparable] struct {
	Counts map[E]int
	Total  int
}

// A SuffixGuesser counts, for every suffix up to MaxLen runes long, the
// elements (tag ids, or lemma transformations) observed on words ending in
// that suffix. At inference it reconstructs a distribution for an unseen
// word by climbing from the longest matching suffix down to the empty
// suffix, applying Brants' successive-abstraction recurrence at each step.
//
// The same structure backs both the word-tag guesser and the
// lemma-transformation guesser; only the element type and the training
// population (rare words vs. rare lemma stems) differ.
type SuffixGuesser[E comparable] struct {
	Freq map[string]*bucket[E]
	// MaxLen bounds how many trailing runes of a word are indexed.
	MaxLen int
	// MinLen bounds how few; normally 0 (the empty suffix, used as the
	// unconditional backoff).
	MinLen int
	// SkipCut, when non-nil, is consulted before indexing a suffix of a
	// given length; returning true skips that (word, length) pair. Used
	// by the lemma-transformation guesser to avoid transformations that
	// would leave a trailing hyphen in the cut prefix.
	SkipCut func(word string, suffixLen int) bool
}

// New constructs an empty SuffixGuesser indexing suffixes up to maxLen
// runes long.
func New[E comparable](maxLen int) *SuffixGuesser[E] {
	return &SuffixGuesser[E]{
		Freq:   make(map[string]*bucket[E]),
		MaxLen: maxLen,
	}
}

type encodedSuffixGuesser[E comparable] struct {
	Freq   map[string]*bucket[E]
	MaxLen int
	MinLen int
}

// GobEncode encodes a SuffixGuesser as a gob. SkipCut is a function value
// and cannot be serialized; the caller is expected to reattach it after
// decoding (hmodel.Model does this for the lemma-transformation guesser,
// the only one that sets it).
func (g *SuffixGuesser[E]) GobEncode() ([]byte, error) {
	var buf bytes.Buffer
	enc := encodedSuffixGuesser[E]{Freq: g.Freq, MaxLen: g.MaxLen, MinLen: g.MinLen}
	err := gob.NewEncoder(&buf).Encode(enc)
	return buf.Bytes(), err
}

// GobDecode decodes a SuffixGuesser from a gob, leaving SkipCut nil.
func (g *SuffixGuesser[E]) GobDecode(data []byte) error {
	var enc encodedSuffixGuesser[E]
	if err := gob.NewDecoder(bytes.NewBuffer(data)).Decode(&enc); err != nil {
		return err
	}

	g.Freq = enc.Freq
	g.MaxLen = enc.MaxLen
	g.MinLen = enc.MinLen
	return nil
}

// AddWord indexes word under every suffix length in [MinLen,
// min(len(word), MaxLen)], crediting each element in counts.
func (g *SuffixGuesser[E]) AddWord(word string, counts map[E]int) {
	g.addWord(word, counts, g.MinLen)
}

// AddWordWithMinLen behaves like AddWord for a single element, except the
// minimum suffix length indexed is max(g.MinLen, minLen) rather than just
// g.MinLen. The lemma-transformation guesser uses this to avoid indexing a
// transformation at suffix lengths shorter than its own MinCutLength,
// where it could never correctly apply anyway.
func (g *SuffixGuesser[E]) AddWordWithMinLen(word string, element E, count int, minLen int) {
	start := g.MinLen
	if minLen > start {
		start = minLen
	}
	g.addWord(word, map[E]int{element: count}, start)
}

func (g *SuffixGuesser[E]) addWord(word string, counts map[E]int, minLen int) {
	runes := []rune(word)

	maxI := len(runes)
	if maxI > g.MaxLen {
		maxI = g.MaxLen
	}

	for i := minLen; i <= maxI; i++ {
		if g.SkipCut != nil && g.SkipCut(word, i) {
			continue
		}

		suffix := suffixOf(runes, i)
		b, ok := g.Freq[suffix]
		if !ok {
			b = &bucket[E]{Counts: make(map[E]int)}
			g.Freq[suffix] = b
		}

		for element, count := range counts {
			b.Counts[element] += count
			b.Total += count
		}
	}
}

func suffixOf(runes []rune, length int) string {
	if length == 0 {
		return ""
	}
	return string(runes[len(runes)-length:])
}

// TagLogProbabilities estimates log P(element | word), applying Brants'
// recurrence
//
//	P_i(e) = (P_{i-1}(e) + theta * relFreq_i(e)) / (1 + theta)
//
// starting from the longest matching suffix (i = min(len(word), MaxLen))
// and backing off to the empty suffix (i = 0). Only elements observed in
// at least one visited suffix bucket appear in the result, matching the
// reference implementation: an element absent from a given suffix's
// bucket is left untouched at that step rather than decayed toward zero.
func (g *SuffixGuesser[E]) TagLogProbabilities(word string, theta float64) map[E]float64 {
	acc := make(map[E]float64)

	runes := []rune(word)
	maxI := len(runes)
	if maxI > g.MaxLen {
		maxI = g.MaxLen
	}

	for i := maxI; i >= 0; i-- {
		b, ok := g.Freq[suffixOf(runes, i)]
		if !ok || b.Total == 0 {
			continue
		}

		for element, count := range b.Counts {
			relFreq := float64(count) / float64(b.Total)
			acc[element] = (acc[element] + theta*relFreq) / (theta + 1)
		}
	}

	result := make(map[E]float64, len(acc))
	for element, p := range acc {
		result[element] = logprob.Safe(p)
	}

	return result
}

// TagLogProbability returns the log-probability TagLogProbabilities(word)
// assigns element, or logprob.UnknownValue if element was not observed in
// any suffix bucket visited for word.
func (g *SuffixGuesser[E]) TagLogProbability(word string, element E, theta float64) float64 {
	probs := g.TagLogProbabilities(word, theta)
	if p, ok := probs[element]; ok {
		return p
	}
	return logprob.UnknownValue
}

type scored[E any] struct {
	element E
	logProb float64
}

// TagLogProbabilitiesWMax computes TagLogProbabilities, then prunes it to
// at most maxGuessed entries, discarding any entry more than sufTheta below
// the best-scoring one.
func (g *SuffixGuesser[E]) TagLogProbabilitiesWMax(word string, theta float64,
	maxGuessed int, sufTheta float64) map[E]float64 {

	full := g.TagLogProbabilities(word, theta)

	scoredList := make([]scored[E], 0, len(full))
	maxLogProb := logprob.UnknownValue
	for element, lp := range full {
		scoredList = append(scoredList, scored[E]{element, lp})
		if lp > maxLogProb {
			maxLogProb = lp
		}
	}

	sort.Slice(scoredList, func(i, j int) bool {
		return scoredList[i].logProb > scoredList[j].logProb
	})

	pruned := make(map[E]float64, maxGuessed)
	for _, s := range scoredList {
		if len(pruned) >= maxGuessed {
			break
		}
		if s.logProb < maxLogProb-sufTheta {
			continue
		}
		pruned[s.element] = s.logProb
	}

	return pruned
}

// CalculateTheta derives the Brants smoothing constant from a tag's
// apriori (root) relative-frequency distribution:
//
//	theta = sqrt(sum(p * (p - sum(p^2))^2 for p in aprioriProbs))
//
// where the inner sum(p^2) is the distribution's collision probability.
func CalculateTheta(aprioriProbs map[int]float64) float64 {
	var collisionProb float64
	for _, p := range aprioriProbs {
		collisionProb += p * p
	}

	var variance float64
	for _, p := range aprioriProbs {
		diff := p - collisionProb
		variance += p * diff * diff
	}

	return math.Sqrt(variance)
}

// HasHyphenatedCut reports whether cutting the first suffixLen runes off
// the tail of word leaves a prefix ending in a hyphen. It is the canonical
// SkipCut predicate for lemma-transformation suffix guessers.
func HasHyphenatedCut(word string, suffixLen int) bool {
	runes := []rune(word)
	cut := len(runes) - suffixLen
	if cut <= 0 {
		return false
	}
	return strings.HasSuffix(string(runes[:cut]), "-")
}
