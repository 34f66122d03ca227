package decoder

import (
	"testing"

	"github.com/purepos-go/purepos/corpus"
	"github.com/purepos-go/purepos/hmodel"
	"github.com/purepos-go/purepos/vocabulary"
)

func trainedModel(t *testing.T) *hmodel.Model {
	t.Helper()

	m := hmodel.New(2, 2, 6, 2)

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
		{
			{Word: "a", Lemma: "a", Tag: "DET"},
			{Word: "dog", Lemma: "dog", Tag: "NOUN"},
			{Word: "sleeps", Lemma: "sleep", Tag: "VERB"},
		},
	}

	for _, s := range sentences {
		m.AddSentence(s)
	}

	m.Compile(nil)

	return m
}

func TestDecodeSeenSentence(t *testing.T) {
	m := trainedModel(t)
	d := New(m, nil)

	results := d.Decode([]string{"the", "dog", "runs"}, nil, 1)

	if len(results) != 1 {
		t.Fatalf("got %d results, want 1", len(results))
	}

	if len(results[0].Tags) != 3 {
		t.Fatalf("got %d tags, want 3", len(results[0].Tags))
	}

	det, _ := m.TagVocabulary.ID("DET")
	noun, _ := m.TagVocabulary.ID("NOUN")
	verb, _ := m.TagVocabulary.ID("VERB")

	want := []int{det, noun, verb}
	for i, tag := range results[0].Tags {
		if tag != want[i] {
			t.Errorf("tag[%d] = %d, want %d", i, tag, want[i])
		}
	}
}

func TestDecodeUnknownWordFallsBackToGuesser(t *testing.T) {
	m := trainedModel(t)
	d := New(m, nil)

	results := d.Decode([]string{"a", "fox", "jumps"}, nil, 1)

	if len(results) != 1 {
		t.Fatalf("got %d results, want 1", len(results))
	}
	if len(results[0].Tags) != 3 {
		t.Fatalf("got %d tags, want 3", len(results[0].Tags))
	}
}

func TestDecodeEmptySentence(t *testing.T) {
	m := trainedModel(t)
	d := New(m, nil)

	results := d.Decode(nil, nil, 1)
	if results != nil {
		t.Errorf("Decode(nil) = %v, want nil", results)
	}
}

func TestDecodeFixedBeamProducesResults(t *testing.T) {
	m := trainedModel(t)
	d := New(m, nil)
	d.FixedBeam = true
	d.BeamSize = 3

	results := d.Decode([]string{"the", "cat", "sleeps"}, nil, 2)
	if len(results) == 0 {
		t.Fatal("got no results with fixed beam pruning")
	}
}

func TestNewStateKeyTruncatesToTagOrder(t *testing.T) {
	tags := []int{vocabulary.BOSID, vocabulary.BOSID, 5, 7, 9}
	k := newStateKey(tags, 2)
	want := newStateKey([]int{7, 9}, 2)
	if k != want {
		t.Errorf("newStateKey did not truncate to the last 2 tags")
	}
}

// stubAnalyser is a fixed word -> tag-strings map satisfying Analyser.
type stubAnalyser map[string][]string

func (s stubAnalyser) Tags(word string) []string {
	return s[word]
}

func TestClassifySeenWordFiltersByMorphology(t *testing.T) {
	m := hmodel.New(2, 2, 6, 2)

	sentences := [][]corpus.Token{
		{
			{Word: "the", Lemma: "the", Tag: "DET"},
			{Word: "bear", Lemma: "bear", Tag: "NOUN"},
			{Word: "sleeps", Lemma: "sleep", Tag: "VERB"},
		},
		{
			{Word: "they", Lemma: "they", Tag: "PRON"},
			{Word: "bear", Lemma: "bear", Tag: "VERB"},
			{Word: "it", Lemma: "it", Tag: "PRON"},
		},
	}
	for _, s := range sentences {
		m.AddSentence(s)
	}
	m.Compile(nil)

	noun, _ := m.TagVocabulary.ID("NOUN")

	d := New(m, stubAnalyser{"bear": {"NOUN"}})

	tags, _, _ := d.classify("bear", 1, nil)

	if len(tags) != 1 || tags[0] != noun {
		t.Errorf("classify(%q) tags = %v, want [%d] (NOUN only, narrowed by morphology)", "bear", tags, noun)
	}
}

func TestClassifyUnseenWordUsesPureMorphology(t *testing.T) {
	m := trainedModel(t)

	verb, _ := m.TagVocabulary.ID("VERB")

	d := New(m, stubAnalyser{"zibber": {"VERB"}})

	tags, _, _ := d.classify("zibber", 1, nil)

	if len(tags) != 1 || tags[0] != verb {
		t.Errorf("classify(%q) tags = %v, want [%d] (pure morphology for an unseen word)", "zibber", tags, verb)
	}
}
