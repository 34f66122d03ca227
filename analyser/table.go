package analyser

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/purepos-go/purepos/corpus"
)

// Table is a word -> (lemma, tag) analyser loaded from a flat text file,
// one word per line: `word<TAB>lemma1/tag1<TAB>lemma2/tag2...`. It
// implements both decoder.Analyser (Tags) and lemma.Analyser (Analyse).
type Table struct {
	entries map[string][]corpus.Token
}

// Load reads a Table from the file at path.
func Load(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	t := &Table{entries: make(map[string][]corpus.Token)}

	scanner := bufio.NewScanner(f)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		fields := strings.Split(line, "\t")
		if len(fields) < 2 {
			return nil, fmt.Errorf("line %d: expected at least 2 tab-separated fields, got %d", lineNo, len(fields))
		}

		word := fields[0]
		anals := make([]corpus.Token, 0, len(fields)-1)
		for _, pair := range fields[1:] {
			slashIdx := strings.LastIndex(pair, "/")
			if slashIdx < 0 {
				return nil, fmt.Errorf("line %d: malformed lemma/tag pair %q", lineNo, pair)
			}
			anals = append(anals, corpus.Token{
				Word:  word,
				Lemma: pair[:slashIdx],
				Tag:   pair[slashIdx+1:],
			})
		}

		t.entries[word] = anals
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return t, nil
}

// Tags returns the distinct tags the table lists for word, satisfying
// decoder.Analyser.
func (t *Table) Tags(word string) []string {
	anals, ok := t.entries[word]
	if !ok {
		return nil
	}

	seen := make(map[string]bool, len(anals))
	tags := make([]string, 0, len(anals))
	for _, a := range anals {
		if !seen[a.Tag] {
			seen[a.Tag] = true
			tags = append(tags, a.Tag)
		}
	}
	return tags
}

// Analyse returns the (lemma, tag) candidates the table lists for word,
// satisfying lemma.Analyser.
func (t *Table) Analyse(word string) []corpus.Token {
	return t.entries[word]
}
