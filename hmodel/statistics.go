package hmodel

import "fmt"

// Statistics accumulates the counters training reports: how many
// sentences and tokens were processed, how many word forms were routed
// through each case-split suffix guesser, and how many sentences were
// dropped by a per-sentence parsing error.
type Statistics struct {
	Sentences         int
	Tokens            int
	LowerGuesserItems int
	UpperGuesserItems int
	ParseErrors       int
}

// NewStatistics constructs a zeroed Statistics.
func NewStatistics() *Statistics {
	return &Statistics{}
}

func (s *Statistics) String() string {
	return fmt.Sprintf(
		"sentences: %d, tokens: %d, lower-guesser items: %d, upper-guesser items: %d, parse errors: %d",
		s.Sentences, s.Tokens, s.LowerGuesserItems, s.UpperGuesserItems, s.ParseErrors)
}
