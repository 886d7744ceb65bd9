package corpus

import (
	stderrors "errors"
	"intent-lab/domain"
	"intent-lab/errors"
	"intent-lab/tokenizer"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

const validCorpus = `{
  "name": "smalltalk",
  "locale": "en-US",
  "data": [
    {"intent": "greet", "utterances": ["Hello there", "Hi!"], "tests": ["hello"]},
    {"intent": "farewell", "utterances": ["Bye bye"], "tests": ["bye now", "see you"]}
  ]
}`

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad_Valid_Corpus(t *testing.T) {
	req := require.New(t)
	path := writeFile(t, "corpus-en.json", validCorpus)

	c, err := Load(path)
	req.NoError(err)

	req.Equal("smalltalk", c.Name)
	req.Equal("en-US", c.Locale)
	req.Equal([]string{"greet", "farewell"}, c.Intents())

	examples := c.Examples(tokenizer.New())
	req.Len(examples, 3)
	req.Equal([]string{"hello", "there"}, examples[0].Input.Keys())
	req.Equal([]string{"greet"}, examples[0].Output.Keys())
	req.Equal([]string{"hi"}, examples[1].Input.Keys())
	req.Equal([]string{"bye"}, examples[2].Input.Keys())
	req.Equal([]string{"farewell"}, examples[2].Output.Keys())

	req.Equal([]domain.TestCase{
		{Utterance: "hello", Intent: "greet"},
		{Utterance: "bye now", Intent: "farewell"},
		{Utterance: "see you", Intent: "farewell"},
	}, c.TestCases())
}

func TestLoad_Rejects_Non_JSON_File(t *testing.T) {
	req := require.New(t)
	path := writeFile(t, "corpus.txt", "greet: hello there\nfarewell: bye\n")

	_, err := Load(path)

	req.True(stderrors.Is(err, errors.ErrInvalidCorpus), "err=%v", err)
}

func TestLoad_Missing_File(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)
}

func TestParse_Invalid_Corpus(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"Broken JSON", `{"data": [`},
		{"No intent", `{"data": []}`},
		{"Missing intent name", `{"data": [{"utterances": ["hi"]}]}`},
		{"No utterance", `{"data": [{"intent": "greet", "utterances": []}]}`},
		{"Blank utterance", `{"data": [{"intent": "greet", "utterances": [""]}]}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.raw))
			require.True(t, stderrors.Is(err, errors.ErrInvalidCorpus), "err=%v", err)
		})
	}
}
