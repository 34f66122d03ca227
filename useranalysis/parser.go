package useranalysis

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/purepos-go/purepos/corpus"
	"github.com/purepos-go/purepos/logprob"
	"github.com/purepos-go/purepos/vocabulary"
)

// Brackets holds the four configurable bracket tokens plus the two
// separators the pre-analysis syntax uses: word{{lemma1[tag1]$$0.3||lemma2[tag2]$$0.7}}.
type Brackets struct {
	Open     string
	Close    string
	AltSep   string
	TagOpen  string
	TagClose string
	ProbSep  string
}

// DefaultBrackets are the syntax's default bracket and separator tokens.
func DefaultBrackets() Brackets {
	return Brackets{
		Open:     "{{",
		Close:    "}}",
		AltSep:   "||",
		TagOpen:  "[",
		TagClose: "]",
		ProbSep:  "$$",
	}
}

// UserProbSumNotOne reports that a pre-analysis's explicit probabilities
// did not sum to 1.0.
type UserProbSumNotOne struct {
	Token string
	Sum   float64
}

func (e *UserProbSumNotOne) Error() string {
	return fmt.Sprintf("sum of probs is %g (want 1.0) at token %q", e.Sum, e.Token)
}

// Parser parses tagging-input tokens that carry an inline pre-analysis.
type Parser struct {
	Brackets Brackets
}

// NewParser constructs a Parser using the default bracket tokens.
func NewParser() *Parser {
	return &Parser{Brackets: DefaultBrackets()}
}

// IsPreAnalysed reports whether token carries a pre-analysis bracket
// suffix: an opening bracket after the first character and a closing
// bracket after it. The bracket contents are not checked here.
func (p *Parser) IsPreAnalysed(token string) bool {
	openIdx := strings.Index(token, p.Brackets.Open)
	closeIdx := strings.LastIndex(token, p.Brackets.Close)
	return openIdx > 0 && closeIdx > openIdx
}

// Clean strips the bracket suffix, returning the bare word form.
func (p *Parser) Clean(token string) string {
	openIdx := strings.Index(token, p.Brackets.Open)
	if openIdx < 0 {
		return token
	}
	return token[:openIdx]
}

// Parse parses a pre-analysed token into a OneWordLexicalModel, registering
// every analysis tag in tagVoc. Returns a *UserProbSumNotOne if at least one
// probability was given and they do not sum to 1.0.
func (p *Parser) Parse(token string, tagVoc *vocabulary.Vocabulary) (*OneWordLexicalModel, error) {
	b := p.Brackets

	openIdx := strings.Index(token, b.Open)
	closeIdx := strings.LastIndex(token, b.Close)
	word := token[:openIdx]
	body := token[openIdx+len(b.Open) : closeIdx]

	probs := make(map[int]float64)
	var anals []corpus.Token
	sumProbs := 0.0
	useProb := false

	for _, anal := range strings.Split(body, b.AltSep) {
		prob := logprob.SingleEmissionProb

		if sepIdx := strings.Index(anal, b.ProbSep); sepIdx > -1 {
			useProb = true
			rawProb := anal[sepIdx+len(b.ProbSep):]
			val, err := strconv.ParseFloat(rawProb, 64)
			if err != nil {
				return nil, fmt.Errorf("malformed probability %q in token %q: %w", rawProb, token, err)
			}

			sumProbs += val
			if val > 0.0 {
				prob = math.Log(val)
			} else {
				prob = logprob.UnknownValue
			}

			anal = anal[:sepIdx]
		}

		tagOpenIdx := strings.Index(anal, b.TagOpen)
		tagCloseIdx := strings.Index(anal, b.TagClose)
		if tagOpenIdx < 0 || tagCloseIdx < tagOpenIdx {
			return nil, fmt.Errorf("malformed analysis %q in token %q", anal, token)
		}

		lemma := anal[:tagOpenIdx]
		tagStr := anal[tagOpenIdx+len(b.TagOpen) : tagCloseIdx]
		tagID := tagVoc.Add(tagStr)

		probs[tagID] = prob
		anals = append(anals, corpus.Token{Word: word, Lemma: lemma, Tag: tagStr})
	}

	if useProb && (sumProbs < 1.0-1e-9 || sumProbs > 1.0+1e-9) {
		return nil, &UserProbSumNotOne{Token: token, Sum: sumProbs}
	}

	return &OneWordLexicalModel{
		word:             word,
		probs:            probs,
		anals:            anals,
		useProbabilities: useProb,
	}, nil
}
