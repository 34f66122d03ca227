package hmodel

import (
	"github.com/purepos-go/purepos/combiner"
	"github.com/purepos-go/purepos/contexttrie"
	"github.com/purepos-go/purepos/langmodel"
	"github.com/purepos-go/purepos/lemmatransform"
	"github.com/purepos-go/purepos/lexicon"
	"github.com/purepos-go/purepos/suffixguesser"
	"github.com/purepos-go/purepos/vocabulary"
)

// Model is the mutable, trainable form of the model container: during
// training every field below accumulates raw counts; Compile freezes it
// into the smoothed probability models the decoder and lemma selector use.
type Model struct {
	TagOrder      int
	EmissionOrder int
	SuffixLength  int
	RareFreq      int

	TagVocabulary *vocabulary.Vocabulary

	StandardLexicon *lexicon.Lexicon
	SpecLexicon     *lexicon.Lexicon

	TagTransitionTrie *contexttrie.Trie[int]
	WordEmissionTrie  *contexttrie.Trie[string]
	SpecEmissionTrie  *contexttrie.Trie[string]

	LowerSuffixGuesser *suffixguesser.SuffixGuesser[int]
	UpperSuffixGuesser *suffixguesser.SuffixGuesser[int]
	LemmaSuffixGuesser *suffixguesser.SuffixGuesser[lemmatransform.Transformation]

	LemmaUnigram *combiner.LemmaUnigramModel
	Combiner     *combiner.BiCombiner

	TagTransitionModel *langmodel.Model[int]
	WordEmissionModel  *langmodel.Model[string]
	SpecEmissionModel  *langmodel.Model[string]

	TagMapper   *vocabulary.TagMapper
	LemmaMapper *vocabulary.StringMapper

	// TagApriori holds the root relative frequency of every known tag,
	// computed at Compile time.
	TagApriori map[int]float64
	// Theta is the suffix-guesser smoothing constant derived from
	// TagApriori at Compile time.
	Theta float64

	// GuessedLemmaMarker, if non-empty, is prepended to a lemma the
	// lemma selector had to guess rather than find via morphology.
	GuessedLemmaMarker string

	// ClosedClassTags, when non-nil, excludes these tag ids from word
	// suffix-guesser training (spec.md's closed-class supplement).
	ClosedClassTags map[int]bool

	Stats *Statistics

	compiled bool

	trainingTypes []combiner.TrainingType
	lemmaCounts   map[lemmaKey]int
}

type lemmaKey struct {
	word  string
	lemma string
	tag   int
}

// New constructs an empty, trainable Model with the given hyperparameters.
func New(tagOrder, emissionOrder, suffixLength, rareFreq int) *Model {
	lemmaGuesser := suffixguesser.New[lemmatransform.Transformation](100)
	lemmaGuesser.SkipCut = suffixguesser.HasHyphenatedCut

	return &Model{
		TagOrder:      tagOrder,
		EmissionOrder: emissionOrder,
		SuffixLength:  suffixLength,
		RareFreq:      rareFreq,

		TagVocabulary: vocabulary.New(),

		StandardLexicon: lexicon.New(),
		SpecLexicon:     lexicon.New(),

		TagTransitionTrie: contexttrie.New[int](tagOrder + 1),
		WordEmissionTrie:  contexttrie.New[string](emissionOrder + 1),
		SpecEmissionTrie:  contexttrie.New[string](2),

		LowerSuffixGuesser: suffixguesser.New[int](suffixLength),
		UpperSuffixGuesser: suffixguesser.New[int](suffixLength),
		LemmaSuffixGuesser: lemmaGuesser,

		LemmaUnigram: combiner.NewLemmaUnigramModel(),
		Combiner:     combiner.NewBiCombiner(),

		Stats: NewStatistics(),

		lemmaCounts: make(map[lemmaKey]int),
	}
}

// Compiled reports whether Compile has run.
func (m *Model) Compiled() bool {
	return m.compiled
}
