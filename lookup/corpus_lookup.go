package lookup

import (
	"intent-lab/domain"

	"github.com/samber/lo"
)

// CorpusLookup encodes examples with one vocabulary for the input tokens and
// another one for the output labels.
type CorpusLookup struct {
	inputLookup  *Lookup
	outputLookup *Lookup
	numInputs    int
	numOutputs   int
}

// NewCorpusLookup seeds both vocabularies when features and intents are
// given. With either one missing the lookup stays empty until Build.
func NewCorpusLookup(features, intents []string) *CorpusLookup {
	c := &CorpusLookup{}
	if features == nil || intents == nil {
		return c
	}
	c.inputLookup = NewLookup()
	c.outputLookup = NewLookup()
	for _, feature := range features {
		c.inputLookup.Add(feature)
	}
	for _, intent := range intents {
		c.outputLookup.Add(intent)
	}
	c.numInputs = c.inputLookup.Len()
	c.numOutputs = c.outputLookup.Len()
	return c
}

// Build replaces both vocabularies with the ones of corpus and returns the
// encoded examples in corpus order.
func (c *CorpusLookup) Build(corpus []domain.Example) []domain.EncodedExample {
	c.inputLookup = NewLookupFromData(corpus, InputSide)
	c.outputLookup = NewLookupFromData(corpus, OutputSide)
	c.numInputs = c.inputLookup.Len()
	c.numOutputs = c.outputLookup.Len()
	return lo.Map(corpus, func(example domain.Example, _ int) domain.EncodedExample {
		return domain.EncodedExample{
			Input:  c.inputLookup.Prepare(example.Input),
			Output: c.outputLookup.Prepare(example.Output),
		}
	})
}

// TransformInput encodes an inference input with the built input vocabulary.
// It reports false when nothing has been built yet.
func (c *CorpusLookup) TransformInput(input domain.Bag) (domain.SparseVector, bool) {
	if c.inputLookup == nil {
		return domain.SparseVector{}, false
	}
	return c.inputLookup.Prepare(input), true
}

func (c *CorpusLookup) NumInputs() int {
	return c.numInputs
}

func (c *CorpusLookup) NumOutputs() int {
	return c.numOutputs
}

// Features returns the input vocabulary indexed by id, nil before Build.
func (c *CorpusLookup) Features() []string {
	if c.inputLookup == nil {
		return nil
	}
	return c.inputLookup.Items()
}

// Labels returns the output vocabulary indexed by id, nil before Build.
func (c *CorpusLookup) Labels() []string {
	if c.outputLookup == nil {
		return nil
	}
	return c.outputLookup.Items()
}
