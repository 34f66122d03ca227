package hmodel

import (
	"github.com/purepos-go/purepos/corpus"
	"github.com/purepos-go/purepos/lemmatransform"
	"github.com/purepos-go/purepos/spectoken"
	"github.com/purepos-go/purepos/vocabulary"
)

// AddSentence folds one training sentence into the model's raw counts: the
// tag-transition trie, the two emission tries, the standard and
// special-token lexicons, the lemma-transformation suffix trie and the
// lemma unigram model. It never returns an error for a non-empty,
// already-parsed sentence; ParsingError is the corpus reader's concern.
func (m *Model) AddSentence(tokens []corpus.Token) {
	if len(tokens) == 0 {
		return
	}

	m.Stats.Sentences++

	tagIDs := make([]int, 0, len(tokens)+1)
	tagIDs = append(tagIDs, vocabulary.BOSID)
	for _, tok := range tokens {
		tagIDs = append(tagIDs, m.TagVocabulary.Add(tok.Tag))
	}

	m.TagTransitionTrie.Add(tagIDs, vocabulary.EOSID, 1)

	for i := 1; i < len(tagIDs); i++ {
		tok := tokens[i-1]
		tag := tagIDs[i]
		prevTags := tagIDs[:i]
		fullContext := tagIDs[:i+1]

		m.Stats.Tokens++

		m.LemmaUnigram.Increment(tok.Lemma)

		tr := lemmatransform.New(tok.Word, tok.Lemma, tag)
		m.LemmaSuffixGuesser.AddWordWithMinLen(tok.Word, tr, 1, tr.MinCutLength())

		m.TagTransitionTrie.Add(prevTags, tag, 1)
		m.StandardLexicon.Add(tok.Word, tag, 1)
		m.WordEmissionTrie.Add(fullContext, tok.Word, 1)

		if specName := spectoken.Match(tok.Word); specName != "" {
			m.SpecEmissionTrie.Add(fullContext, specName, 1)
			m.SpecLexicon.Add(specName, tag, 1)
		}

		key := lemmaKey{word: tok.Word, lemma: tok.Lemma, tag: tag}
		m.lemmaCounts[key]++
	}
}
