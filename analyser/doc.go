// Package analyser provides a table-backed morphological analyser: a
// flat word -> (lemma, tag) mapping loaded from a text file, usable
// wherever spec.md's decoder.Analyser or lemma.Analyser interfaces are
// expected. A real morphological analyser is an external collaborator
// (spec.md's Non-goals); this package exists so --analyzer <path> has
// something concrete to load at the CLI layer.
package analyser
