package lemma

import (
	"strings"

	"github.com/purepos-go/purepos/combiner"
	"github.com/purepos-go/purepos/corpus"
	"github.com/purepos-go/purepos/hmodel"
	"github.com/purepos-go/purepos/lemmatransform"
	"github.com/purepos-go/purepos/useranalysis"
)

// An Analyser supplies morphological (lemma, tag) candidates for a word,
// independent of the decoder.Analyser interface (which only needs tag
// strings): the lemma selector needs the stem each analysis carries too.
type Analyser interface {
	Analyse(word string) []corpus.Token
}

// A Selector picks the most likely lemma for a (word, chosen-tag) pair
// once the decoder has committed to a tag, blending whatever morphological
// evidence is available with the trained lemma-suffix-trie guesser via the
// model's Bi-Combiner.
type Selector struct {
	Model    *hmodel.Model
	Analyser Analyser
}

// New constructs a Selector over a compiled model.
func New(model *hmodel.Model, analyser Analyser) *Selector {
	return &Selector{Model: model, Analyser: analyser}
}

type candidate struct {
	token corpus.Token
	tr    lemmatransform.Transformation
	hasTr bool
}

// FindBestLemma returns the chosen lemma for word, given the tag id the
// decoder picked for it and, optionally, a user-supplied pre-analysis for
// this position.
func (s *Selector) FindBestLemma(word string, tag int, userAnal *useranalysis.OneWordLexicalModel) corpus.Token {
	m := s.Model

	tagStr, _ := m.TagVocabulary.Tag(tag)

	var anals []corpus.Token
	switch {
	case userAnal != nil:
		for _, a := range userAnal.WordAnals() {
			anals = append(anals, corpus.Token{Word: a.Word, Lemma: m.LemmaMapper.Map(a.Lemma), Tag: a.Tag})
		}
	case s.Analyser != nil:
		anals = s.Analyser.Analyse(word)
	}

	rawProbs := m.LemmaSuffixGuesser.TagLogProbabilities(word, m.Theta)
	suffixProbs := combiner.BatchConvert(rawProbs, word)

	guessed := false
	if len(anals) == 0 {
		guessed = true
		for lemma := range suffixProbs {
			anals = append(anals, corpus.Token{Word: word, Lemma: lemma, Tag: tagStr})
		}
	}

	filtered := anals[:0:0]
	for _, a := range anals {
		if a.Tag == tagStr {
			filtered = append(filtered, a)
		}
	}

	if len(filtered) == 0 {
		return corpus.Token{Word: word, Lemma: word, Tag: tagStr}
	}

	if len(filtered) == 1 && word == strings.ToLower(word) {
		return filtered[0]
	}

	candidates := make([]candidate, 0, len(filtered))
	for _, a := range filtered {
		if cand, ok := suffixProbs[a.Lemma]; ok {
			candidates = append(candidates, candidate{token: a, tr: cand.Transformation, hasTr: true})
		} else {
			candidates = append(candidates, candidate{token: a, tr: lemmatransform.New(word, a.Lemma, tag)})
		}
	}

	if guessed {
		extra := make([]candidate, 0, len(candidates))
		for _, c := range candidates {
			lower := strings.ToLower(c.token.Lemma)
			if lower == c.token.Lemma {
				continue
			}
			loweredTok := c.token
			loweredTok.Lemma = lower
			extra = append(extra, candidate{token: loweredTok, tr: c.tr, hasTr: c.hasTr})
		}
		candidates = append(candidates, extra...)
	}

	best := candidates[0]
	bestScore := m.Combiner.Combine(word, best.token.Lemma, best.tr, m.LemmaUnigram, m.LemmaSuffixGuesser, m.Theta)

	for _, c := range candidates[1:] {
		score := m.Combiner.Combine(word, c.token.Lemma, c.tr, m.LemmaUnigram, m.LemmaSuffixGuesser, m.Theta)
		if score > bestScore {
			best = c
			bestScore = score
		}
	}

	lemma := best.token.Lemma
	if guessed && m.GuessedLemmaMarker != "" {
		lemma = m.GuessedLemmaMarker + lemma
	}

	return corpus.Token{Word: word, Lemma: lemma, Tag: tagStr}
}
