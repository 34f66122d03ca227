package contexttrie

import "testing"

func sumWords[E comparable](words map[E]int) int {
	total := 0
	for _, c := range words {
		total += c
	}
	return total
}

func TestNumEqualsSumOfWords(t *testing.T) {
	tr := New[int](2)
	tr.Add([]int{5, 6}, 7, 1)
	tr.Add([]int{5, 6}, 8, 1)
	tr.Add([]int{5, 9}, 7, 1)

	for idx := 0; idx < tr.NodeCount(); idx++ {
		if got, want := tr.Num(idx), sumWords(tr.Words(idx)); got != want {
			t.Errorf("node %d: Num() = %d, want sum of Words() = %d", idx, got, want)
		}
	}
}

func TestAddDescendsInReverseContextOrder(t *testing.T) {
	tr := New[string](2)
	// context (t1=5, t2=6): most recent tag (6) must be the immediate
	// child of the root, with 5 one level deeper.
	tr.Add([]int{5, 6}, "word", 3)

	child6, ok := tr.Child(RootIndex, 6)
	if !ok {
		t.Fatal("expected an edge from root for the most recent tag (6)")
	}
	if tr.Count(child6, "word") != 3 {
		t.Errorf("Count(child(6), word) = %d, want 3", tr.Count(child6, "word"))
	}

	child5, ok := tr.Child(child6, 5)
	if !ok {
		t.Fatal("expected an edge from child(6) for the older tag (5)")
	}
	if tr.Count(child5, "word") != 3 {
		t.Errorf("Count(child(6,5), word) = %d, want 3", tr.Count(child5, "word"))
	}
}

func TestMaxDepthBoundsDescent(t *testing.T) {
	tr := New[string](1)
	tr.Add([]int{1, 2, 3}, "word", 1)

	// Only one level below root should exist.
	child, ok := tr.Child(RootIndex, 3)
	if !ok {
		t.Fatal("expected an edge for the most recent tag")
	}
	if _, ok := tr.Child(child, 2); ok {
		t.Error("descended past MaxDepth")
	}
}

func TestPriorSumsToOne(t *testing.T) {
	tr := New[int](1)
	tr.Add(nil, 1, 3)
	tr.Add(nil, 2, 7)

	sum := tr.Prior(1) + tr.Prior(2)
	if diff := sum - 1.0; diff > 1e-9 || diff < -1e-9 {
		t.Errorf("sum of priors = %v, want 1 +- 1e-9", sum)
	}
}
