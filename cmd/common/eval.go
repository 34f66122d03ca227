package common

import (
	"fmt"

	"github.com/purepos-go/purepos/corpus"
	"github.com/purepos-go/purepos/decoder"
	"github.com/purepos-go/purepos/hmodel"
	"github.com/purepos-go/purepos/lemma"
)

// Evaluator keeps counts of correctly/incorrectly tagged known/unknown
// tokens, and correctly/incorrectly lemmatized tokens, across one or more
// sentences.
type Evaluator struct {
	decoder *decoder.Decoder
	lemmas  *lemma.Selector
	model   *hmodel.Model

	knownCorrect     uint
	knownIncorrect   uint
	unknownCorrect   uint
	unknownIncorrect uint

	lemmaCorrect   uint
	lemmaIncorrect uint
}

// NewEvaluator creates an Evaluator that tags with dec and lemmatizes with
// lem, both built over model. The model is also used to distinguish known
// from unknown tokens via its standard lexicon.
func NewEvaluator(dec *decoder.Decoder, lem *lemma.Selector, model *hmodel.Model) *Evaluator {
	return &Evaluator{decoder: dec, lemmas: lem, model: model}
}

// Process tags and lemmatizes sent and accumulates accuracy counts against
// its gold tags and lemmas.
func (e *Evaluator) Process(sent []corpus.Token) error {
	words := make([]string, len(sent))
	for i, tok := range sent {
		words[i] = tok.Word
	}

	results := e.decoder.Decode(words, nil, 1)
	if len(results) == 0 {
		return fmt.Errorf("decoder returned no results for a %d word sentence", len(words))
	}

	tags := results[0].Tags
	if len(tags) != len(sent) {
		return fmt.Errorf("decoder returned %d tags for %d words", len(tags), len(words))
	}

	for i, tok := range sent {
		predictedTagID := tags[i]
		predictedTag, _ := e.model.TagVocabulary.Tag(predictedTagID)

		known := len(e.model.StandardLexicon.Tags(tok.Word)) > 0

		if predictedTag == tok.Tag {
			if known {
				e.knownCorrect++
			} else {
				e.unknownCorrect++
			}
		} else {
			if known {
				e.knownIncorrect++
			} else {
				e.unknownIncorrect++
			}
		}

		if e.lemmas != nil {
			predicted := e.lemmas.FindBestLemma(tok.Word, predictedTagID, nil)
			if predicted.Lemma == tok.Lemma {
				e.lemmaCorrect++
			} else {
				e.lemmaIncorrect++
			}
		}
	}

	return nil
}

// KnownCorrect returns the number of correctly tagged known words.
func (e *Evaluator) KnownCorrect() uint { return e.knownCorrect }

// KnownIncorrect returns the number of incorrectly tagged known words.
func (e *Evaluator) KnownIncorrect() uint { return e.knownIncorrect }

// UnknownCorrect returns the number of correctly tagged unknown words.
func (e *Evaluator) UnknownCorrect() uint { return e.unknownCorrect }

// UnknownIncorrect returns the number of incorrectly tagged unknown words.
func (e *Evaluator) UnknownIncorrect() uint { return e.unknownIncorrect }

// OverallCorrect returns the number of correctly tagged words.
func (e *Evaluator) OverallCorrect() uint { return e.knownCorrect + e.unknownCorrect }

// OverallIncorrect returns the number of incorrectly tagged words.
func (e *Evaluator) OverallIncorrect() uint { return e.knownIncorrect + e.unknownIncorrect }

// KnownAccuracy returns the tagging accuracy of known words.
func (e *Evaluator) KnownAccuracy() float64 {
	return float64(e.KnownCorrect()) / float64(e.KnownCorrect()+e.KnownIncorrect())
}

// UnknownAccuracy returns the tagging accuracy of unknown words.
func (e *Evaluator) UnknownAccuracy() float64 {
	return float64(e.UnknownCorrect()) / float64(e.UnknownCorrect()+e.UnknownIncorrect())
}

// Accuracy returns the overall tagging accuracy.
func (e *Evaluator) Accuracy() float64 {
	return float64(e.OverallCorrect()) / float64(e.OverallCorrect()+e.OverallIncorrect())
}

// LemmaAccuracy returns the lemmatization accuracy, or NaN if no lemma
// selector was configured.
func (e *Evaluator) LemmaAccuracy() float64 {
	return float64(e.lemmaCorrect) / float64(e.lemmaCorrect+e.lemmaIncorrect)
}
