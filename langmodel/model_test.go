package langmodel

import (
	"math"
	"testing"

	"github.com/purepos-go/purepos/contexttrie"
	"github.com/purepos-go/purepos/logprob"
)

func TestLambdasSumToOne(t *testing.T) {
	tr := contexttrie.New[int](2)
	// t1 t2 t3 style contexts, enough repetition to make deleted
	// interpolation pick a mix of depths.
	tr.Add([]int{10, 11}, 12, 5)
	tr.Add([]int{10, 11}, 12, 1)
	tr.Add([]int{11, 12}, 13, 3)
	tr.Add(nil, 14, 2)

	lambdas := Lambdas(tr)

	var sum float64
	for _, l := range lambdas {
		sum += l
	}

	if diff := sum - 1.0; diff > 1e-9 || diff < -1e-9 {
		t.Errorf("sum(lambdas) = %v, want 1 +- 1e-9", sum)
	}
	if lambdas[0] != 0 {
		t.Errorf("lambdas[0] = %v, want 0", lambdas[0])
	}
}

func TestLogProbFallsBackToRoot(t *testing.T) {
	tr := contexttrie.New[int](2)
	tr.Add([]int{1, 2}, 3, 4)
	tr.Add([]int{1, 2}, 3, 4)
	tr.Add([]int{5, 6}, 3, 1)

	lambdas := Lambdas(tr)
	model := Build(tr, lambdas)

	// An unseen context should still fall back to the root-level estimate
	// rather than failing outright.
	got := model.LogProb([]int{99, 98}, 3)
	if got == logprob.UnknownValue {
		t.Errorf("LogProb with unseen context returned UnknownValue, want a root-level fallback")
	}
	if got > 0 || math.IsNaN(got) {
		t.Errorf("LogProb = %v, want a valid negative log probability", got)
	}
}

func TestLogProbUnknownElement(t *testing.T) {
	tr := contexttrie.New[int](1)
	tr.Add([]int{1}, 2, 3)

	model := Build(tr, Lambdas(tr))

	if got := model.LogProb([]int{1}, 999); got != logprob.UnknownValue {
		t.Errorf("LogProb(never seen) = %v, want UnknownValue", got)
	}
}
