package hmodel

import (
	"bytes"
	"encoding/gob"
	"testing"

	"github.com/purepos-go/purepos/corpus"
)

func TestGobRoundTripPreservesDecodingBehavior(t *testing.T) {
	m := New(2, 2, 6, 2)

	sentences := [][]corpus.Token{
		{
			{Word: "the", Lemma: "the", Tag: "DET"},
			{Word: "dog", Lemma: "dog", Tag: "NOUN"},
			{Word: "runs", Lemma: "run", Tag: "VERB"},
		},
		{
			{Word: "the", Lemma: "the", Tag: "DET"},
			{Word: "cat", Lemma: "cat", Tag: "NOUN"},
			{Word: "sleeps", Lemma: "sleep", Tag: "VERB"},
		},
	}
	for _, s := range sentences {
		m.AddSentence(s)
	}
	m.Compile(nil)

	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(m); err != nil {
		t.Fatalf("Encode: %v", err)
	}

	var decoded Model
	if err := gob.NewDecoder(&buf).Decode(&decoded); err != nil {
		t.Fatalf("Decode: %v", err)
	}

	if !decoded.Compiled() {
		t.Error("decoded model reports Compiled() = false")
	}

	detID, ok := decoded.TagVocabulary.ID("DET")
	if !ok {
		t.Fatal("decoded vocabulary lost the DET tag")
	}
	nounID, _ := decoded.TagVocabulary.ID("NOUN")

	wantCtx := []int{detID}
	originalCtx := []int{}
	detIDOrig, _ := m.TagVocabulary.ID("DET")
	originalCtx = append(originalCtx, detIDOrig)

	got := decoded.TagTransitionModel.LogProb(wantCtx, nounID)
	want := m.TagTransitionModel.LogProb(originalCtx, func() int {
		id, _ := m.TagVocabulary.ID("NOUN")
		return id
	}())

	if got != want {
		t.Errorf("decoded transition log-prob = %v, want %v", got, want)
	}

	if decoded.LemmaSuffixGuesser.SkipCut == nil {
		t.Error("decoded lemma suffix guesser lost its SkipCut rule")
	}
}
