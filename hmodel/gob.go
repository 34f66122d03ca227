package hmodel

import (
	"bytes"
	"encoding/gob"

	"github.com/purepos-go/purepos/combiner"
	"github.com/purepos-go/purepos/langmodel"
	"github.com/purepos-go/purepos/lemmatransform"
	"github.com/purepos-go/purepos/lexicon"
	"github.com/purepos-go/purepos/suffixguesser"
	"github.com/purepos-go/purepos/vocabulary"
)

var _ gob.GobEncoder = &Model{}
var _ gob.GobDecoder = &Model{}

// encodedModel mirrors the compiled fields of Model for serialization.
// The raw training tries are never persisted: Compile discards them, and
// a partially trained (uncompiled) Model is not a supported save point.
// The tag-mapper and lemma-mapper fields are flattened to their rule
// lists rather than the mapper objects themselves, since the tag mapper's
// vocabulary pointer must be rebound to the one decoded TagVocabulary and
// the one mapper shared by the three langmodel instances rather than
// duplicated three times over.
type encodedModel struct {
	TagOrder      int
	EmissionOrder int
	SuffixLength  int
	RareFreq      int

	TagVocabulary *vocabulary.Vocabulary

	StandardLexicon *lexicon.Lexicon
	SpecLexicon     *lexicon.Lexicon

	LowerSuffixGuesser *suffixguesser.SuffixGuesser[int]
	UpperSuffixGuesser *suffixguesser.SuffixGuesser[int]
	LemmaSuffixGuesser *suffixguesser.SuffixGuesser[lemmatransform.Transformation]

	LemmaUnigram *combiner.LemmaUnigramModel
	Combiner     *combiner.BiCombiner

	TagTransitionModel *langmodel.Model[int]
	WordEmissionModel  *langmodel.Model[string]
	SpecEmissionModel  *langmodel.Model[string]

	TagMapperRules   []vocabulary.Rule
	LemmaMapperRules []vocabulary.Rule

	TagApriori map[int]float64
	Theta      float64

	GuessedLemmaMarker string
	ClosedClassTags    map[int]bool
}

// GobEncode encodes a compiled Model as a gob.
func (m *Model) GobEncode() ([]byte, error) {
	enc := encodedModel{
		TagOrder:      m.TagOrder,
		EmissionOrder: m.EmissionOrder,
		SuffixLength:  m.SuffixLength,
		RareFreq:      m.RareFreq,

		TagVocabulary: m.TagVocabulary,

		StandardLexicon: m.StandardLexicon,
		SpecLexicon:     m.SpecLexicon,

		LowerSuffixGuesser: m.LowerSuffixGuesser,
		UpperSuffixGuesser: m.UpperSuffixGuesser,
		LemmaSuffixGuesser: m.LemmaSuffixGuesser,

		LemmaUnigram: m.LemmaUnigram,
		Combiner:     m.Combiner,

		TagTransitionModel: m.TagTransitionModel,
		WordEmissionModel:  m.WordEmissionModel,
		SpecEmissionModel:  m.SpecEmissionModel,

		TagMapperRules:   m.TagMapper.Rules(),
		LemmaMapperRules: m.LemmaMapper.Rules(),

		TagApriori: m.TagApriori,
		Theta:      m.Theta,

		GuessedLemmaMarker: m.GuessedLemmaMarker,
		ClosedClassTags:    m.ClosedClassTags,
	}

	var buf bytes.Buffer
	err := gob.NewEncoder(&buf).Encode(enc)
	return buf.Bytes(), err
}

// GobDecode decodes a compiled Model from a gob, rebuilding the tag and
// lemma mappers over the decoded vocabulary and reattaching each
// langmodel.Model's mapper and the lemma guesser's hyphenation skip rule,
// none of which gob itself can carry.
func (m *Model) GobDecode(data []byte) error {
	var enc encodedModel
	if err := gob.NewDecoder(bytes.NewBuffer(data)).Decode(&enc); err != nil {
		return err
	}

	m.TagOrder = enc.TagOrder
	m.EmissionOrder = enc.EmissionOrder
	m.SuffixLength = enc.SuffixLength
	m.RareFreq = enc.RareFreq

	m.TagVocabulary = enc.TagVocabulary

	m.StandardLexicon = enc.StandardLexicon
	m.SpecLexicon = enc.SpecLexicon

	m.LowerSuffixGuesser = enc.LowerSuffixGuesser
	m.UpperSuffixGuesser = enc.UpperSuffixGuesser
	m.LemmaSuffixGuesser = enc.LemmaSuffixGuesser
	if m.LemmaSuffixGuesser != nil {
		m.LemmaSuffixGuesser.SkipCut = suffixguesser.HasHyphenatedCut
	}

	m.LemmaUnigram = enc.LemmaUnigram
	m.Combiner = enc.Combiner

	m.TagMapper = vocabulary.NewTagMapper(m.TagVocabulary, enc.TagMapperRules)
	m.LemmaMapper = vocabulary.NewStringMapper(enc.LemmaMapperRules)

	m.TagTransitionModel = enc.TagTransitionModel
	m.WordEmissionModel = enc.WordEmissionModel
	m.SpecEmissionModel = enc.SpecEmissionModel
	if m.TagTransitionModel != nil {
		m.TagTransitionModel.AttachMapper(m.TagMapper)
	}
	if m.WordEmissionModel != nil {
		m.WordEmissionModel.AttachMapper(m.TagMapper)
	}
	if m.SpecEmissionModel != nil {
		m.SpecEmissionModel.AttachMapper(m.TagMapper)
	}

	m.TagApriori = enc.TagApriori
	m.Theta = enc.Theta

	m.GuessedLemmaMarker = enc.GuessedLemmaMarker
	m.ClosedClassTags = enc.ClosedClassTags

	m.compiled = true
	m.lemmaCounts = make(map[lemmaKey]int)

	return nil
}
