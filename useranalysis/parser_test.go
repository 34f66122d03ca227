package useranalysis

import (
	"testing"

	"github.com/purepos-go/purepos/vocabulary"
)

func TestParseWithoutProbabilities(t *testing.T) {
	p := NewParser()
	voc := vocabulary.New()

	model, err := p.Parse("flux{{fluxus[N]||fluere[V]}}", voc)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	if model.UseProbabilities() {
		t.Errorf("UseProbabilities() = true, want false")
	}
	if len(model.WordAnals()) != 2 {
		t.Fatalf("got %d anals, want 2", len(model.WordAnals()))
	}
}

func TestParseWithProbabilitiesPicksHigherLogProb(t *testing.T) {
	p := NewParser()
	voc := vocabulary.New()

	model, err := p.Parse("flux{{fluxus[N]$$0.7||fluere[V]$$0.3}}", voc)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	if !model.UseProbabilities() {
		t.Fatalf("UseProbabilities() = false, want true")
	}

	nID, _ := voc.ID("N")
	vID, _ := voc.ID("V")

	nProb := model.LogProb([]int{nID}, "flux", -999)
	vProb := model.LogProb([]int{vID}, "flux", -999)

	if nProb <= vProb {
		t.Errorf("log P(N) = %v should exceed log P(V) = %v", nProb, vProb)
	}
}

func TestParseRejectsProbabilitiesNotSummingToOne(t *testing.T) {
	p := NewParser()
	voc := vocabulary.New()

	_, err := p.Parse("flux{{fluxus[N]$$0.7||fluere[V]$$0.7}}", voc)
	if _, ok := err.(*UserProbSumNotOne); !ok {
		t.Fatalf("Parse err = %v (%T), want *UserProbSumNotOne", err, err)
	}
}

func TestLogProbReturnsUnkForOtherWords(t *testing.T) {
	p := NewParser()
	voc := vocabulary.New()

	model, err := p.Parse("flux{{fluxus[N]}}", voc)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	nID, _ := voc.ID("N")
	if got := model.LogProb([]int{nID}, "other", -999); got != -999 {
		t.Errorf("LogProb for a different word = %v, want unk (-999)", got)
	}
}

func TestIsPreAnalysedAndClean(t *testing.T) {
	p := NewParser()

	if !p.IsPreAnalysed("flux{{fluxus[N]}}") {
		t.Errorf("IsPreAnalysed() = false, want true")
	}
	if p.IsPreAnalysed("flux") {
		t.Errorf("IsPreAnalysed() = true for a plain word, want false")
	}
	if got := p.Clean("flux{{fluxus[N]}}"); got != "flux" {
		t.Errorf("Clean() = %q, want %q", got, "flux")
	}
}
