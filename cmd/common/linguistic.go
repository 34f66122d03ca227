package common

import (
	"encoding/xml"
	"fmt"
	"io"
	"os"
	"regexp"

	"github.com/purepos-go/purepos/vocabulary"
)

// LinguisticConfig holds the language-specific knobs spec.md's external
// interfaces describe separately from the CLI-defaults TOML file: tag and
// lemma rewrite rules, the guessed-lemma marker and the suffix guesser's
// weight relative to the lexicon models. It is read from XML rather than
// TOML because its shape (ordered pattern/replacement rules) maps onto
// attributed elements more naturally than TOML's table model; no XML
// library appears anywhere in the retrieved examples, so this is read
// with the standard library.
type LinguisticConfig struct {
	XMLName           xml.Name  `xml:"purepos-config"`
	TagMapping        []XMLRule `xml:"tag_mapping"`
	LemmaMapping      []XMLRule `xml:"lemma_mapping"`
	GuessedMarker     string    `xml:"guessed_marker"`
	SuffixModelWeight float64   `xml:"suffix_model_weight"`
}

// XMLRule is one <tag_mapping pattern="..." to=".../> or <lemma_mapping>
// element.
type XMLRule struct {
	Pattern string `xml:"pattern,attr"`
	To      string `xml:"to,attr"`
}

// MustParseLinguisticConfig reads and parses the linguistic configuration
// file at filename, exiting the process on any failure. A missing filename
// (empty string) returns a configuration with no rewrite rules, no guessed
// lemma marker and a SuffixModelWeight of 1.
func MustParseLinguisticConfig(filename string) *LinguisticConfig {
	if filename == "" {
		return &LinguisticConfig{SuffixModelWeight: 1}
	}

	f, err := os.Open(filename)
	ExitIfError("cannot open linguistic configuration file", err)
	defer f.Close()

	config, err := ParseLinguisticConfig(f)
	ExitIfError("cannot parse linguistic configuration file", err)

	return config
}

// ParseLinguisticConfig parses a linguistic configuration document from
// reader.
func ParseLinguisticConfig(reader io.Reader) (*LinguisticConfig, error) {
	config := &LinguisticConfig{SuffixModelWeight: 1}
	if err := xml.NewDecoder(reader).Decode(config); err != nil {
		return nil, err
	}
	return config, nil
}

// TagMappingRules compiles TagMapping into vocabulary.Rule values.
func (c *LinguisticConfig) TagMappingRules() ([]vocabulary.Rule, error) {
	return compileRules(c.TagMapping)
}

// LemmaMappingRules compiles LemmaMapping into vocabulary.Rule values.
func (c *LinguisticConfig) LemmaMappingRules() ([]vocabulary.Rule, error) {
	return compileRules(c.LemmaMapping)
}

func compileRules(rs []XMLRule) ([]vocabulary.Rule, error) {
	compiled := make([]vocabulary.Rule, 0, len(rs))
	for _, r := range rs {
		pattern, err := regexp.Compile(r.Pattern)
		if err != nil {
			return nil, fmt.Errorf("invalid rewrite pattern %q: %w", r.Pattern, err)
		}
		compiled = append(compiled, vocabulary.Rule{Pattern: pattern, Replacement: r.To})
	}
	return compiled, nil
}
