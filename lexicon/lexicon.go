package lexicon

// A Lexicon counts, for each entry string (a wordform or a special-token
// class name), how often each tag id was observed with it. It backs both
// the standard-token lexicon and the special-token lexicon described in
// the data model: the two are independent instances of this same type.
type Lexicon struct {
	Entries map[string]map[int]int
}

// New constructs an empty Lexicon.
func New() *Lexicon {
	return &Lexicon{Entries: make(map[string]map[int]int)}
}

// Add increments the count of (entry, tag) by count.
func (l *Lexicon) Add(entry string, tag int, count int) {
	tagFreqs, ok := l.Entries[entry]
	if !ok {
		tagFreqs = make(map[int]int)
		l.Entries[entry] = tagFreqs
	}

	tagFreqs[tag] += count
}

// Tags returns the set of tag ids entry was observed with, or nil if entry
// is unknown.
func (l *Lexicon) Tags(entry string) []int {
	tagFreqs, ok := l.Entries[entry]
	if !ok {
		return nil
	}

	tags := make([]int, 0, len(tagFreqs))
	for tag := range tagFreqs {
		tags = append(tags, tag)
	}

	return tags
}

// WordCount returns the total count across all tags for entry.
func (l *Lexicon) WordCount(entry string) int {
	total := 0
	for _, count := range l.Entries[entry] {
		total += count
	}

	return total
}

// Count returns the count of (entry, tag).
func (l *Lexicon) Count(entry string, tag int) int {
	return l.Entries[entry][tag]
}

// Words returns every entry string known to the lexicon.
func (l *Lexicon) Words() []string {
	words := make([]string, 0, len(l.Entries))
	for word := range l.Entries {
		words = append(words, word)
	}

	return words
}
