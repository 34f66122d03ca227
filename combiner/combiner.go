package combiner

import (
	"github.com/purepos-go/purepos/lemmatransform"
	"github.com/purepos-go/purepos/logprob"
	"github.com/purepos-go/purepos/suffixguesser"
)

// TrainingType is one unique (word, lemma, tag) training-corpus entry with
// its occurrence count, the unit the Bi-Combiner's lambda-learning pass
// iterates over.
type TrainingType struct {
	Word  string
	Lemma string
	Tag   int
	Count int
}

// BiCombiner log-linearly blends a lemma-unigram model and a
// lemma-suffix-trie guesser. LambdaU and LambdaS are either learned by
// Learn or, at inference time, overridden wholesale by OverrideWeight.
type BiCombiner struct {
	LambdaU float64
	LambdaS float64

	// OverrideWeight, if non-nil, replaces the learned weights with
	// (1 - *OverrideWeight, *OverrideWeight) at Combine time. None of the
	// cmd binaries sets it: purepos-tag applies the linguistic
	// configuration's suffix_model_weight to the model's Theta instead.
	OverrideWeight *float64
}

// NewBiCombiner constructs a BiCombiner with the neutral pre-Learn
// weights (equivalent to an unweighted average until Learn runs).
func NewBiCombiner() *BiCombiner {
	return &BiCombiner{LambdaU: 0.5, LambdaS: 0.5}
}

// Learn fits LambdaU/LambdaS from the training types, following the same
// per-type disagreement-weighted update regardless of types' order.
func (c *BiCombiner) Learn(types []TrainingType, unigram *LemmaUnigramModel,
	suffixTrie *suffixguesser.SuffixGuesser[lemmatransform.Transformation], theta float64) {

	lambdaU := 1.0
	lambdaS := 1.0

	for _, t := range types {
		rawProbs := suffixTrie.TagLogProbabilities(t.Word, theta)
		suffixProbs := BatchConvert(rawProbs, t.Word)

		uniMax := logprob.UnknownValue
		suffMax := logprob.UnknownValue
		for lemma, cand := range suffixProbs {
			if uniScore := unigram.LogProb(lemma); uniScore > uniMax {
				uniMax = uniScore
			}
			if cand.LogProb > suffMax {
				suffMax = cand.LogProb
			}
		}

		actUni := unigram.LogProb(t.Lemma)
		actSuff := logprob.UnknownValue
		if cand, ok := suffixProbs[t.Lemma]; ok {
			actSuff = cand.LogProb
		}

		deltaU := actUni - uniMax
		deltaS := actSuff - suffMax

		if deltaU > deltaS {
			lambdaU += (deltaU - deltaS) * float64(t.Count)
		} else if deltaS > deltaU {
			lambdaS += (deltaS - deltaU) * float64(t.Count)
		}
	}

	sum := lambdaU + lambdaS
	c.LambdaU = lambdaU / sum
	c.LambdaS = lambdaS / sum
}

// Weights returns the (lambdaU, lambdaS) pair Combine will use, honoring
// OverrideWeight if set.
func (c *BiCombiner) Weights() (lambdaU, lambdaS float64) {
	if c.OverrideWeight != nil {
		return 1 - *c.OverrideWeight, *c.OverrideWeight
	}
	return c.LambdaU, c.LambdaS
}

// Combine scores a (lemma, transformation) candidate for word: a blend of
// the lemma's unigram log-probability and the suffix-trie's log-probability
// for that specific transformation on word.
func (c *BiCombiner) Combine(word, lemma string, tr lemmatransform.Transformation, unigram *LemmaUnigramModel,
	suffixTrie *suffixguesser.SuffixGuesser[lemmatransform.Transformation], theta float64) float64 {

	uniScore := unigram.LogProb(lemma)
	suffixScore := suffixTrie.TagLogProbability(word, tr, theta)

	lambdaU, lambdaS := c.Weights()
	return uniScore*lambdaU + suffixScore*lambdaS
}
