package decoder

import (
	"strings"

	"github.com/purepos-go/purepos/logprob"
	"github.com/purepos-go/purepos/spectoken"
	"github.com/purepos-go/purepos/useranalysis"
)

// classify determines the candidate tag set for one token and the
// transition/emission probability functions that apply to it, mirroring
// the reference decoder's next_probs dispatch: a seen token (a standard
// lexicon hit, a sentence-initial word whose lowercased form is a lexicon
// hit, or a
// matched special-token class with a non-empty lexicon) scores candidates
// from the trained emission models; everything else falls through to the
// suffix guesser, optionally narrowed by an external analyser's
// morphological tags.
//
// userAnal, when non-nil, always overrides the candidate tag set. It only
// marks the token seen if it also carries explicit probabilities: a bare
// pre-analysis without probabilities still defers to whatever the lexicon
// lookup already decided about seenness, exactly as the reference does.
func (d *Decoder) classify(word string, pos int, userAnal *useranalysis.OneWordLexicalModel) (tags []int, unkTagTrans float64, emit func(tag int, prevTags []int) float64) {
	m := d.Model

	seen := false
	lookupWord := word

	lexTags := m.StandardLexicon.Tags(word)
	if len(lexTags) > 0 {
		seen = true
	} else if pos == 0 {
		if lower := strings.ToLower(word); lower != word {
			if lt := m.StandardLexicon.Tags(lower); len(lt) > 0 {
				lexTags = lt
				lookupWord = lower
				seen = true
			}
		}
	}

	specName := spectoken.Match(word)
	specTags := m.SpecLexicon.Tags(specName)
	if specName != "" && len(specTags) > 0 {
		lexTags = append(lexTags, specTags...)
		seen = true
	}

	var morphTags []int
	if d.Analyser != nil {
		for _, tagStr := range d.Analyser.Tags(word) {
			morphTags = append(morphTags, m.TagVocabulary.Add(tagStr))
		}
	}

	tags = lexTags

	if userAnal != nil {
		tags = userAnal.WordTags()
		if userAnal.UseProbabilities() {
			seen = true
		}
	} else if seen && len(morphTags) > 0 {
		admissible := make(map[int]bool, len(lexTags))
		for _, t := range lexTags {
			admissible[t] = true
		}
		if common := m.TagMapper.Filter(morphTags, admissible); len(common) > 0 {
			tags = common
		}
	} else if !seen && len(morphTags) > 0 {
		tags = morphTags
	}

	switch {
	case seen:
		unkTagTrans = logprob.UnknownTagTransition
		emit = func(tag int, prevTags []int) float64 {
			ctx := fullContext(prevTags, tag)
			if userAnal != nil {
				if p := userAnal.LogProb(ctx, word, logprob.UnknownValue); p != logprob.UnknownValue {
					return p
				}
			}
			if specName != "" {
				if p := m.SpecEmissionModel.LogProbOr(ctx, specName, logprob.UnknownValue); p != logprob.UnknownValue {
					return p
				}
			}
			return m.WordEmissionModel.LogProbOr(ctx, lookupWord, logprob.UnknownValue)
		}
		return tags, unkTagTrans, emit

	case len(tags) == 1:
		unkTagTrans = logprob.SingleEmissionProb
		emit = func(tag int, prevTags []int) float64 {
			return logprob.SingleEmissionProb
		}
		return tags, unkTagTrans, emit

	case len(morphTags) > 0:
		unkTagTrans = logprob.UnknownTagTransition
		guesser := d.wordGuesser(word)
		emit = func(tag int, prevTags []int) float64 {
			return guesser.TagLogProbability(strings.ToLower(word), m.TagMapper.Map(tag), m.Theta) - m.AprioriLogProb(tag, 0.0)
		}
		return tags, unkTagTrans, emit

	default:
		unkTagTrans = logprob.UnknownTagTransition
		guesser := d.wordGuesser(word)
		guessed := guesser.TagLogProbabilitiesWMax(strings.ToLower(word), m.Theta, d.MaxGuessed, d.SufTheta)

		tags = make([]int, 0, len(guessed))
		for tag := range guessed {
			tags = append(tags, tag)
		}

		emit = func(tag int, prevTags []int) float64 {
			p, ok := guessed[tag]
			if !ok {
				return logprob.UnknownValue
			}
			return p - m.AprioriLogProb(tag, 0.0)
		}
		return tags, unkTagTrans, emit
	}
}

// fullContext returns a freshly allocated copy of prevTags with tag
// appended, safe to hand to a langmodel lookup without risking aliasing
// into the beam node's own tag-history slice.
func fullContext(prevTags []int, tag int) []int {
	ctx := make([]int, len(prevTags)+1)
	copy(ctx, prevTags)
	ctx[len(prevTags)] = tag
	return ctx
}

func (d *Decoder) wordGuesser(word string) interface {
	TagLogProbability(word string, element int, theta float64) float64
	TagLogProbabilitiesWMax(word string, theta float64, maxGuessed int, sufTheta float64) map[int]float64
} {
	if strings.ToLower(word) != word {
		return d.Model.UpperSuffixGuesser
	}
	return d.Model.LowerSuffixGuesser
}
