package tokenizer

import (
	"intent-lab/domain"
	"regexp"
	"strings"
	"unicode"

	"github.com/samber/lo"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var separators = regexp.MustCompile(`[\s,.!?;:(\[\]'"¡¿)/]+`)

// Tokenizer turns an utterance into a presence bag of lower-cased tokens
// without diacritics.
type Tokenizer struct {
	separators *regexp.Regexp
}

func New() Tokenizer {
	return Tokenizer{separators: separators}
}

// Normalize decomposes text, drops the combining marks and lower-cases it:
// "Été" becomes "ete".
func (t Tokenizer) Normalize(text string) string {
	stripper := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)))
	stripped, _, err := transform.String(stripper, text)
	if err != nil {
		stripped = text
	}
	return strings.ToLower(stripped)
}

// Tokenize splits the normalized text on blanks and punctuation.
func (t Tokenizer) Tokenize(text string) []string {
	return lo.Compact(t.separators.Split(t.Normalize(text), -1))
}

// Bag returns the tokens of text, each weighing 1, in first-occurrence order.
func (t Tokenizer) Bag(text string) domain.Bag {
	return domain.NewBag(t.Tokenize(text)...)
}
