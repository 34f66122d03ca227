package corpus

import (
	"fmt"
	"io"
	"strings"
)

// TaggedSentence is one candidate tag sequence the decoder produced for a
// sentence, along with its total log-weight.
type TaggedSentence struct {
	Tokens    []Token
	LogWeight float64
}

// Writer writes tagging output, one line per input sentence. A sentence
// with a single candidate is written plainly; with more than one
// candidate, alternatives are TAB-separated and each is suffixed with
// its log-weight between a pair of '$$' markers.
type Writer struct {
	TokenSep string
	FieldSep string
}

// NewWriter constructs a Writer with the default separators.
func NewWriter() *Writer {
	return &Writer{TokenSep: " ", FieldSep: "#"}
}

// WriteSentence writes the alternatives for a single input sentence,
// followed by a newline.
func (w *Writer) WriteSentence(dst io.Writer, alternatives []TaggedSentence) error {
	rendered := make([]string, len(alternatives))
	for i, alt := range alternatives {
		rendered[i] = w.renderAlternative(alt, len(alternatives) > 1)
	}

	_, err := fmt.Fprintln(dst, strings.Join(rendered, "\t"))
	return err
}

func (w *Writer) renderAlternative(alt TaggedSentence, withScore bool) string {
	parts := make([]string, len(alt.Tokens))
	for i, tok := range alt.Tokens {
		lemma := strings.ReplaceAll(tok.Lemma, " ", "_")
		parts[i] = tok.Word + w.FieldSep + lemma + w.FieldSep + tok.Tag
	}

	line := strings.Join(parts, w.TokenSep)
	if withScore {
		line += fmt.Sprintf("$$%g$$", alt.LogWeight)
	}

	return line
}
