// Ported from PurePos-Python3's purepos/model/combiner.py and
// purepos/model/lemmaunigrammodel.py. Copyright (c) 2015 Móréh Tamás.
// Licensed under the GNU Lesser General Public License v3; see
// http://www.gnu.org/licenses/.

// Package combiner blends a lemma-unigram model and a lemma-suffix-trie
// guesser into a single candidate score, learning the blend weights from
// the training corpus the way a log-linear mixture model's weights are
// fit from held-out disagreement between its components.
package combiner
