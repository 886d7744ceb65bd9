package tokenizer

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTokenizer_Tokenize(t *testing.T) {
	tok := New()
	tests := []struct {
		name     string
		input    string
		expected []string
	}{
		{"Simple sentence", "Hello there", []string{"hello", "there"}},
		{"Punctuation and spacing", "  Who are you?! (really)  ", []string{"who", "are", "you", "really"}},
		{"Diacritics are stripped", "¿Qué tal, señor Müller?", []string{"que", "tal", "senor", "muller"}},
		{"Quotes and slashes", `it's "fine"/ok`, []string{"it", "s", "fine", "ok"}},
		{"Brackets", "[one] two", []string{"one", "two"}},
		{"Only separators", " ,.!? ", []string{}},
		{"Empty string", "", []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.expected, tok.Tokenize(tt.input))
		})
	}
}

func TestTokenizer_Normalize(t *testing.T) {
	req := require.New(t)
	tok := New()

	req.Equal("un ete avec un badger", tok.Normalize("Un Été avec un BADGER"))
	req.Equal("ca va", tok.Normalize("ça va"))
}

func TestTokenizer_Bag(t *testing.T) {
	req := require.New(t)

	bag := New().Bag("Hello hello WORLD")

	req.Equal([]string{"hello", "world"}, bag.Keys())
	weight, ok := bag.Get("hello")
	req.True(ok)
	req.Equal(1.0, weight)
}
