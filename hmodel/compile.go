package hmodel

import (
	"strings"

	"github.com/purepos-go/purepos/combiner"
	"github.com/purepos-go/purepos/langmodel"
	"github.com/purepos-go/purepos/suffixguesser"
	"github.com/purepos-go/purepos/vocabulary"
)

// Compile freezes the tag vocabulary, derives the tag-apriori distribution
// and the suffix-guesser smoothing constant theta from it, populates the
// rare-word suffix guessers from the standard lexicon, learns the
// lemma-combiner weights from the accumulated training types, and replaces
// every raw context trie with its smoothed langmodel.Model counterpart.
// tagMappingRules builds the TagMapper that is attached afterward to the
// three smoothed context models, and through which the decoder maps a
// candidate tag before a transition or word-shape suffix-guesser lookup, so
// a morphological analyser's finer-grained tagset can still resolve
// trained probabilities at inference time.
func (m *Model) Compile(tagMappingRules []vocabulary.Rule) {
	m.TagVocabulary.Freeze()

	mapper := vocabulary.NewTagMapper(m.TagVocabulary, tagMappingRules)
	m.TagMapper = mapper

	m.TagApriori = make(map[int]float64, m.TagVocabulary.Size())
	for id := 0; id < m.TagVocabulary.Size(); id++ {
		m.TagApriori[id] = m.TagTransitionTrie.Prior(id)
	}
	m.Theta = suffixguesser.CalculateTheta(m.TagApriori)

	m.populateWordSuffixGuessers()

	m.trainingTypes = m.trainingTypes[:0]
	for key, count := range m.lemmaCounts {
		m.trainingTypes = append(m.trainingTypes, combiner.TrainingType{
			Word:  key.word,
			Lemma: key.lemma,
			Tag:   key.tag,
			Count: count,
		})
	}
	m.Combiner.Learn(m.trainingTypes, m.LemmaUnigram, m.LemmaSuffixGuesser, m.Theta)

	tagLambdas := langmodel.Lambdas(m.TagTransitionTrie)
	m.TagTransitionModel = langmodel.Build(m.TagTransitionTrie, tagLambdas)
	m.TagTransitionModel.AttachMapper(mapper)

	wordLambdas := langmodel.Lambdas(m.WordEmissionTrie)
	m.WordEmissionModel = langmodel.Build(m.WordEmissionTrie, wordLambdas)
	m.WordEmissionModel.AttachMapper(mapper)

	specLambdas := langmodel.Lambdas(m.SpecEmissionTrie)
	m.SpecEmissionModel = langmodel.Build(m.SpecEmissionTrie, specLambdas)
	m.SpecEmissionModel.AttachMapper(mapper)

	m.TagTransitionTrie = nil
	m.WordEmissionTrie = nil
	m.SpecEmissionTrie = nil

	m.compiled = true
}

// populateWordSuffixGuessers routes every rare standard-lexicon word (a
// word whose total count does not exceed RareFreq) into the lower- or
// upper-case suffix guesser, keyed by its lowercased form, skipping any
// tag listed in ClosedClassTags.
func (m *Model) populateWordSuffixGuessers() {
	for _, word := range m.StandardLexicon.Words() {
		if m.StandardLexicon.WordCount(word) > m.RareFreq {
			continue
		}

		lower := strings.ToLower(word)
		guesser := m.LowerSuffixGuesser
		isUpper := lower != word
		if isUpper {
			guesser = m.UpperSuffixGuesser
		}

		for _, tag := range m.StandardLexicon.Tags(word) {
			if m.ClosedClassTags != nil && m.ClosedClassTags[tag] {
				continue
			}

			freq := m.StandardLexicon.Count(word, tag)
			guesser.AddWord(lower, map[int]int{tag: freq})

			if isUpper {
				m.Stats.UpperGuesserItems += freq
			} else {
				m.Stats.LowerGuesserItems += freq
			}
		}
	}
}
