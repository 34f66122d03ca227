package decoder

// An Analyser is the external morphological analyser collaborator named
// in spec.md's scope: given a word, it returns the tag strings it
// considers grammatically possible. A nil Analyser is treated as one that
// never has an opinion.
type Analyser interface {
	Tags(word string) []string
}
