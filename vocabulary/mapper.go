package vocabulary

import (
	"bytes"
	"encoding/gob"
	"regexp"
)

var _ gob.GobEncoder = Rule{}
var _ gob.GobDecoder = &Rule{}

// A Rule rewrites a tag string matching Pattern to Replacement, in the
// syntax accepted by (*regexp.Regexp).ReplaceAllString.
type Rule struct {
	Pattern     *regexp.Regexp
	Replacement string
}

type encodedRule struct {
	Pattern     string
	Replacement string
}

// GobEncode encodes a Rule as a gob, storing the regexp's source pattern
// rather than the unexported compiled form.
func (r Rule) GobEncode() ([]byte, error) {
	var buf bytes.Buffer
	err := gob.NewEncoder(&buf).Encode(encodedRule{Pattern: r.Pattern.String(), Replacement: r.Replacement})
	return buf.Bytes(), err
}

// GobDecode decodes a Rule from a gob, recompiling its pattern.
func (r *Rule) GobDecode(data []byte) error {
	var er encodedRule
	if err := gob.NewDecoder(bytes.NewBuffer(data)).Decode(&er); err != nil {
		return err
	}

	pattern, err := regexp.Compile(er.Pattern)
	if err != nil {
		return err
	}

	r.Pattern = pattern
	r.Replacement = er.Replacement
	return nil
}

// A TagMapper rewrites tag ids that were introduced after training back
// onto ids the vocabulary knew about at training time. This lets a
// morphological analyser use its own, finer-grained tagset at inference
// time while still letting trained probabilities apply to it.
type TagMapper struct {
	vocab *Vocabulary
	rules []Rule
}

// NewTagMapper constructs a TagMapper over vocab using the given ordered
// rewrite rules.
func NewTagMapper(vocab *Vocabulary, rules []Rule) *TagMapper {
	return &TagMapper{vocab: vocab, rules: rules}
}

// Rules returns the ordered rewrite rules this TagMapper applies. The
// model's gob encoding persists these rules directly rather than the
// mapper itself, since a mapper's vocabulary pointer must be rebound to
// the decoded model's own vocabulary rather than duplicated.
func (m *TagMapper) Rules() []Rule {
	if m == nil {
		return nil
	}
	return m.rules
}

// Map rewrites id. If id was already known at training time (id is not
// greater than the vocabulary's MaxKnownIndex), id is returned unchanged.
// Otherwise the first rule whose pattern matches the tag string is
// applied; if the rewritten string resolves to a known id, that id is
// returned, otherwise the original id is returned unchanged.
func (m *TagMapper) Map(id int) int {
	if m == nil || !m.vocab.IsUnseen(id) {
		return id
	}

	tag, ok := m.vocab.Tag(id)
	if !ok {
		return id
	}

	for _, rule := range m.rules {
		if !rule.Pattern.MatchString(tag) {
			continue
		}

		rewritten := rule.Pattern.ReplaceAllString(tag, rule.Replacement)
		if mappedID, ok := m.vocab.ID(rewritten); ok {
			return mappedID
		}

		break
	}

	return id
}

// Filter returns the subset of analysisTags whose mapped form is a member
// of admissible.
func (m *TagMapper) Filter(analysisTags []int, admissible map[int]bool) []int {
	filtered := make([]int, 0, len(analysisTags))

	for _, tag := range analysisTags {
		if admissible[m.Map(tag)] {
			filtered = append(filtered, tag)
		}
	}

	return filtered
}
