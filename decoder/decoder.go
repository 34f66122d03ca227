package decoder

import (
	"math"
	"sort"

	"github.com/purepos-go/purepos/hmodel"
	"github.com/purepos-go/purepos/logprob"
	"github.com/purepos-go/purepos/useranalysis"
	"github.com/purepos-go/purepos/vocabulary"
)

// A Result is one decoded tag sequence with its total log-weight, in the
// shape spec.md's k-top extraction returns: one entry per input word, the
// trailing EOS already stripped.
type Result struct {
	Tags   []int
	Weight float64
}

// A Decoder runs the beamed Viterbi search over one compiled model. It
// holds no per-sentence state itself; Decode allocates a fresh beam for
// every call, so one Decoder is safe to reuse (though not concurrently,
// since it may register new tag ids with the model's vocabulary).
type Decoder struct {
	Model    *hmodel.Model
	Analyser Analyser

	// FixedBeam selects the fixed-size pruning strategy (keep the top
	// BeamSize states) over the default threshold strategy (keep states
	// within LogBeamTheta of the best).
	FixedBeam bool
	BeamSize  int
	// LogBeamTheta is log(beam_theta); the caller is expected to have
	// already applied math.Log, mirroring citar's HMMTagger beamFactor.
	LogBeamTheta float64

	// MaxGuessed and SufTheta bound the OOV guesser's pruned candidate
	// set (spec.md §4.3's tag_log_probabilities_w_max).
	MaxGuessed int
	SufTheta   float64
}

// New constructs a Decoder with spec.md §6's documented CLI defaults:
// threshold pruning at beam-theta 1000, at most 10 guessed tags.
func New(model *hmodel.Model, analyser Analyser) *Decoder {
	return &Decoder{
		Model:        model,
		Analyser:     analyser,
		LogBeamTheta: math.Log(1000),
		MaxGuessed:   10,
		SufTheta:     1000,
	}
}

// Decode tags one sentence, returning up to resultsNum candidate tag
// sequences sorted by descending weight. userAnals, if non-nil, must have
// the same length as words; a nil entry means no pre-analysis for that
// position.
func (d *Decoder) Decode(words []string, userAnals []*useranalysis.OneWordLexicalModel, resultsNum int) []Result {
	if len(words) == 0 {
		return nil
	}

	tagOrder := d.Model.TagOrder

	initTags := make([]int, tagOrder)
	for i := range initTags {
		initTags[i] = vocabulary.BOSID
	}

	beam := map[stateKey]*Node{
		newStateKey(initTags, tagOrder): {Tags: initTags, Weight: 0.0, Prev: nil},
	}

	positions := len(words) + 1 // one extra step for the EOS sentinel

	for pos := 0; pos < positions; pos++ {
		var tags []int
		var unkTagTrans float64
		var emit func(tag int, prevTags []int) float64

		if pos == len(words) {
			tags = []int{vocabulary.EOSID}
			unkTagTrans = logprob.SingleEmissionProb
			emit = func(int, []int) float64 { return logprob.SingleEmissionProb }
		} else {
			var userAnal *useranalysis.OneWordLexicalModel
			if userAnals != nil {
				userAnal = userAnals[pos]
			}
			tags, unkTagTrans, emit = d.classify(words[pos], pos, userAnal)
		}

		newBeam := make(map[stateKey]*Node, len(beam)*len(tags))

		for _, node := range beam {
			transProb := d.Model.TagTransitionModel
			for _, tag := range tags {
				trans := transProb.LogProbOr(node.Tags, d.Model.TagMapper.Map(tag), unkTagTrans)
				obs := emit(tag, node.Tags)
				weight := node.Weight + trans + obs

				newTags := append(append([]int{}, node.Tags...), tag)
				key := newStateKey(newTags, tagOrder)

				if existing, ok := newBeam[key]; !ok || weight > existing.Weight {
					newBeam[key] = &Node{Tags: newTags, Weight: weight, Prev: node}
				}
			}
		}

		beam = d.prune(newBeam)
	}

	return d.extract(beam, resultsNum)
}

func (d *Decoder) prune(beam map[stateKey]*Node) map[stateKey]*Node {
	if d.FixedBeam && d.BeamSize > 0 {
		return pruneFixed(beam, d.BeamSize)
	}
	return pruneThreshold(beam, d.LogBeamTheta)
}

func pruneFixed(beam map[stateKey]*Node, beamSize int) map[stateKey]*Node {
	type entry struct {
		key  stateKey
		node *Node
	}

	entries := make([]entry, 0, len(beam))
	for k, n := range beam {
		entries = append(entries, entry{k, n})
	}

	sort.Slice(entries, func(i, j int) bool { return entries[i].node.Weight > entries[j].node.Weight })

	if len(entries) > beamSize {
		entries = entries[:beamSize]
	}

	pruned := make(map[stateKey]*Node, len(entries))
	for _, e := range entries {
		pruned[e.key] = e.node
	}

	return pruned
}

func pruneThreshold(beam map[stateKey]*Node, logTheta float64) map[stateKey]*Node {
	maxWeight := math.Inf(-1)
	for _, n := range beam {
		if n.Weight > maxWeight {
			maxWeight = n.Weight
		}
	}

	pruned := make(map[stateKey]*Node, len(beam))
	for k, n := range beam {
		if n.Weight >= maxWeight-logTheta {
			pruned[k] = n
		}
	}

	return pruned
}

func (d *Decoder) extract(beam map[stateKey]*Node, resultsNum int) []Result {
	nodes := make([]*Node, 0, len(beam))
	for _, n := range beam {
		nodes = append(nodes, n)
	}

	sort.Slice(nodes, func(i, j int) bool { return nodes[i].Weight > nodes[j].Weight })

	if len(nodes) > resultsNum {
		nodes = nodes[:resultsNum]
	}

	results := make([]Result, 0, len(nodes))
	for _, n := range nodes {
		seq := n.Tags[d.Model.TagOrder:]
		// Strip the trailing EOS tag.
		if len(seq) > 0 {
			seq = seq[:len(seq)-1]
		}
		results = append(results, Result{Tags: seq, Weight: n.Weight})
	}

	return results
}
