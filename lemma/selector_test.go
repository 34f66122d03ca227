package lemma

import (
	"testing"

	"github.com/purepos-go/purepos/corpus"
	"github.com/purepos-go/purepos/hmodel"
)

func trainedModel(t *testing.T) *hmodel.Model {
	t.Helper()

	m := hmodel.New(2, 2, 6, 2)

	sentences := [][]corpus.Token{
		{
			{Word: "the", Lemma: "the", Tag: "DET"},
			{Word: "dogs", Lemma: "dog", Tag: "NOUN"},
			{Word: "run", Lemma: "run", Tag: "VERB"},
		},
		{
			{Word: "the", Lemma: "the", Tag: "DET"},
			{Word: "cats", Lemma: "cat", Tag: "NOUN"},
			{Word: "sleep", Lemma: "sleep", Tag: "VERB"},
		},
	}

	for _, s := range sentences {
		m.AddSentence(s)
	}

	m.Compile(nil)

	return m
}

func TestFindBestLemmaWithoutAnalyserFallsBackToSuffixGuesser(t *testing.T) {
	m := trainedModel(t)
	sel := New(m, nil)

	nounID, ok := m.TagVocabulary.ID("NOUN")
	if !ok {
		t.Fatal("NOUN tag not in vocabulary")
	}

	tok := sel.FindBestLemma("birds", nounID, nil)
	if tok.Word != "birds" {
		t.Errorf("Word = %q, want %q", tok.Word, "birds")
	}
	if tok.Lemma == "" {
		t.Error("Lemma is empty, want a guessed stem")
	}
}

type stubAnalyser struct {
	anals map[string][]corpus.Token
}

func (a *stubAnalyser) Analyse(word string) []corpus.Token {
	return a.anals[word]
}

func TestFindBestLemmaUsesMorphologyWhenAvailable(t *testing.T) {
	m := trainedModel(t)

	analyser := &stubAnalyser{anals: map[string][]corpus.Token{
		"dogs": {{Word: "dogs", Lemma: "dog", Tag: "NOUN"}},
	}}
	sel := New(m, analyser)

	nounID, _ := m.TagVocabulary.ID("NOUN")

	tok := sel.FindBestLemma("dogs", nounID, nil)
	if tok.Lemma != "dog" {
		t.Errorf("Lemma = %q, want %q", tok.Lemma, "dog")
	}
}

func TestFindBestLemmaNoMatchingTagReturnsWordAsLemma(t *testing.T) {
	m := trainedModel(t)

	analyser := &stubAnalyser{anals: map[string][]corpus.Token{
		"dogs": {{Word: "dogs", Lemma: "dog", Tag: "VERB"}},
	}}
	sel := New(m, analyser)

	nounID, _ := m.TagVocabulary.ID("NOUN")

	tok := sel.FindBestLemma("dogs", nounID, nil)
	if tok.Lemma != "dogs" {
		t.Errorf("Lemma = %q, want %q (no candidate matched the chosen tag)", tok.Lemma, "dogs")
	}
}
