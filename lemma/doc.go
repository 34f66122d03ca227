// Ported from PurePos-Python3's purepos/tagger.py (find_best_lemma) and
// purepos/model/combiner.py. Copyright (c) 2015 Móréh Tamás. Licensed
// under the GNU Lesser General Public License v3; see
// http://www.gnu.org/licenses/.

// Package lemma implements the per-token lemma selector (C11): given a
// word and the tag the decoder chose for it, it picks the most likely
// stem from whichever analysis evidence is available — a user-supplied
// pre-analysis, an external morphological analyser, or, failing both, the
// lemma-suffix-trie guesser — scoring candidates with a
// combiner.BiCombiner.
package lemma
