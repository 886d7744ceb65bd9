package network

import "intent-lab/domain"

// NoneIntentEpsilon is the target given to every real label on the catch-all
// example. It is not 0 so the example still produces a gradient.
const NoneIntentEpsilon = 0.0000001

// AugmentNoneIntent returns corpus with its last example completed when that
// example's input holds sentinel: every label seen in the other examples gets
// at least NoneIntentEpsilon as target. Only the last example is inspected
// and corpus itself is left unchanged.
func AugmentNoneIntent(corpus []domain.Example, sentinel string) []domain.Example {
	if sentinel == "" || len(corpus) == 0 {
		return corpus
	}
	last := len(corpus) - 1
	if !corpus[last].Input.Has(sentinel) {
		return corpus
	}

	var intents []string
	seen := make(map[string]struct{})
	for _, example := range corpus[:last] {
		for label := range example.Output.All() {
			if _, ok := seen[label]; ok {
				continue
			}
			seen[label] = struct{}{}
			intents = append(intents, label)
		}
	}

	out := make([]domain.Example, len(corpus))
	copy(out, corpus)
	current := corpus[last].Clone()
	for _, intent := range intents {
		if weight, ok := current.Output.Get(intent); ok && weight >= NoneIntentEpsilon {
			continue
		}
		current.Output.Set(intent, NoneIntentEpsilon)
	}
	out[last] = current
	return out
}
