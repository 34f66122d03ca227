package useranalysis

import (
	"github.com/purepos-go/purepos/corpus"
	"github.com/purepos-go/purepos/vocabulary"
)

// OneWordLexicalModel is the per-position emission model a user-supplied
// pre-analysis produces: a small set of (tag -> log-prob) entries for one
// specific word form, consulted by the decoder in place of the trained
// word-probability model.
type OneWordLexicalModel struct {
	word             string
	probs            map[int]float64
	anals            []corpus.Token
	useProbabilities bool

	ContextMapper *vocabulary.TagMapper
}

// LogProb returns the stored log-probability for word under the last tag
// of context, or unk if the word does not match or the tag was not one of
// the analysis's candidates.
func (m *OneWordLexicalModel) LogProb(context []int, word string, unk float64) float64 {
	tag := context[len(context)-1]
	if m.ContextMapper != nil {
		tag = m.ContextMapper.Map(tag)
	}

	if word != m.word {
		return unk
	}

	if p, ok := m.probs[tag]; ok {
		return p
	}

	return unk
}

// WordTags returns the tag ids this analysis admits.
func (m *OneWordLexicalModel) WordTags() []int {
	tags := make([]int, 0, len(m.probs))
	for t := range m.probs {
		tags = append(tags, t)
	}
	return tags
}

// WordAnals returns the (word, lemma, tag) candidates the user supplied.
func (m *OneWordLexicalModel) WordAnals() []corpus.Token {
	return m.anals
}

// UseProbabilities reports whether at least one candidate carried an
// explicit probability.
func (m *OneWordLexicalModel) UseProbabilities() bool {
	return m.useProbabilities
}
