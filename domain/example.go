package domain

// Example is one raw training pair: the tokens of an utterance and the
// labels it should score.
type Example struct {
	Input  Bag
	Output Bag
}

// EncodedExample is an Example after both sides went through a vocabulary.
type EncodedExample struct {
	Input  SparseVector
	Output SparseVector
}

// Clone deep copies both bags.
func (e Example) Clone() Example {
	return Example{Input: e.Input.Clone(), Output: e.Output.Clone()}
}

// TestCase pairs an utterance with the intent it is expected to classify as.
type TestCase struct {
	Utterance string
	Intent    string
}
