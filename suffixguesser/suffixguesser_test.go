package suffixguesser

import "testing"

func TestBucketTotalsMatchCounts(t *testing.T) {
	g := New[int](3)
	g.AddWord("cars", map[int]int{1: 2, 2: 1})
	g.AddWord("bars", map[int]int{1: 1})

	for suffix, b := range g.Freq {
		sum := 0
		for _, c := range b.Counts {
			sum += c
		}
		if sum != b.Total {
			t.Errorf("suffix %q: total = %d, want sum of counts %d", suffix, b.Total, sum)
		}
	}
}

func TestDegeneratesToUnigramPriorAtZeroLength(t *testing.T) {
	g := New[int](0)
	g.AddWord("cars", map[int]int{1: 3, 2: 1})
	g.AddWord("bars", map[int]int{1: 1})

	probs := g.TagLogProbabilities("unseen", 1.0)

	if probs[1] <= probs[2] {
		t.Errorf("with MaxLen=0 expected tag 1 (more frequent overall) to score higher: got %v", probs)
	}
}

func TestTagLogProbabilitiesWMaxPrunesToLimit(t *testing.T) {
	g := New[int](2)
	g.AddWord("foo", map[int]int{1: 5})
	g.AddWord("boo", map[int]int{2: 4})
	g.AddWord("zoo", map[int]int{3: 1})

	pruned := g.TagLogProbabilitiesWMax("coo", 1.0, 1, 1000)

	if len(pruned) != 1 {
		t.Errorf("len(pruned) = %d, want 1", len(pruned))
	}
}

func TestHasHyphenatedCut(t *testing.T) {
	if !HasHyphenatedCut("air-plane", 5) {
		t.Error("expected a hyphenated cut at suffix length 5 of 'air-plane' (cuts at 'air-')")
	}
	if HasHyphenatedCut("airplane", 5) {
		t.Error("unexpected hyphenated cut for a word with no hyphen")
	}
}
