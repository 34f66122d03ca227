package decoder

import (
	"strconv"
	"strings"
)

// A Node is one beam entry: the full tag history of the best path that
// reaches it (used as trie context for the next position's probability
// lookups), the accumulated log-weight of that path, and the previous
// node on it. Prev is nil at the sentence-initial state.
type Node struct {
	Tags   []int
	Weight float64
	Prev   *Node
}

// stateKey identifies a beam state by its last tagOrder tags, matching the
// reference NGram's equality/hash rule: older history is kept on the Node
// for context lookups but ignored for state identity, so two paths that
// agree on their most recent tagOrder tags compete for the same beam slot.
type stateKey string

func newStateKey(tags []int, tagOrder int) stateKey {
	start := len(tags) - tagOrder
	if start < 0 {
		start = 0
	}

	var b strings.Builder
	for _, t := range tags[start:] {
		b.WriteString(strconv.Itoa(t))
		b.WriteByte(0)
	}

	return stateKey(b.String())
}
