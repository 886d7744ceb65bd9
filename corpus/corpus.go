package corpus

import (
	"encoding/json"
	"fmt"
	"intent-lab/domain"
	"intent-lab/errors"
	"intent-lab/tokenizer"
	"os"

	"github.com/gabriel-vasile/mimetype"
	"github.com/go-playground/validator/v10"
	"github.com/samber/lo"
)

var validate = validator.New()

const jsonMime = "application/json"

type Intent struct {
	Intent     string   `json:"intent" validate:"required"`
	Utterances []string `json:"utterances" validate:"required,min=1,dive,required"`
	Tests      []string `json:"tests" validate:"dive,required"`
}

// Corpus is the on-disk training set: intents with their training
// utterances and the held-out utterances used to evaluate them.
type Corpus struct {
	Name   string   `json:"name"`
	Locale string   `json:"locale"`
	Data   []Intent `json:"data" validate:"required,min=1,dive"`
}

// Load reads and validates a JSON corpus file.
func Load(path string) (Corpus, error) {
	mtype, err := mimetype.DetectFile(path)
	if err != nil {
		return Corpus{}, fmt.Errorf("corpus %s: %w", path, err)
	}
	if !mtype.Is(jsonMime) {
		return Corpus{}, fmt.Errorf("%w: %s is %s, expected %s", errors.ErrInvalidCorpus, path, mtype.String(), jsonMime)
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return Corpus{}, fmt.Errorf("corpus %s: %w", path, err)
	}
	return Parse(raw)
}

func Parse(raw []byte) (Corpus, error) {
	var c Corpus
	if err := json.Unmarshal(raw, &c); err != nil {
		return Corpus{}, fmt.Errorf("%w: %v", errors.ErrInvalidCorpus, err)
	}
	if err := validate.Struct(c); err != nil {
		return Corpus{}, fmt.Errorf("%w: %v", errors.ErrInvalidCorpus, err)
	}
	return c, nil
}

// Examples tokenizes every training utterance, intent after intent.
func (c Corpus) Examples(tok tokenizer.Tokenizer) []domain.Example {
	return lo.FlatMap(c.Data, func(intent Intent, _ int) []domain.Example {
		return lo.Map(intent.Utterances, func(utterance string, _ int) domain.Example {
			return domain.Example{Input: tok.Bag(utterance), Output: domain.NewBag(intent.Intent)}
		})
	})
}

// TestCases lists the held-out utterances with their expected intent.
func (c Corpus) TestCases() []domain.TestCase {
	return lo.FlatMap(c.Data, func(intent Intent, _ int) []domain.TestCase {
		return lo.Map(intent.Tests, func(utterance string, _ int) domain.TestCase {
			return domain.TestCase{Utterance: utterance, Intent: intent.Intent}
		})
	})
}

func (c Corpus) Intents() []string {
	return lo.Map(c.Data, func(intent Intent, _ int) string { return intent.Intent })
}
