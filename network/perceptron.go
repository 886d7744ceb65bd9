package network

import (
	"intent-lab/domain"
	"slices"
)

// Perceptron scores a single label. Weights and Changes are indexed by input
// feature id and sized once, when the network is initialized.
type Perceptron struct {
	Name    string
	ID      int
	Weights []float32
	Changes []float32
	Bias    float64
}

func newPerceptron(name string, id, numInputs int) *Perceptron {
	return &Perceptron{
		Name:    name,
		ID:      id,
		Weights: make([]float32, numInputs),
		Changes: make([]float32, numInputs),
	}
}

// activate sums the bias and the weighted present features. A non-positive
// sum yields 0, a positive one is scaled by alpha.
func (p *Perceptron) activate(input domain.SparseVector, alpha float64) float64 {
	sum := p.Bias
	for id, weight := range input.All() {
		sum += weight * float64(p.Weights[id])
	}
	if sum <= 0 {
		return 0
	}
	return alpha * sum
}

// train runs one pass over data and returns the summed squared error.
// Examples already scored exactly right leave weights, bias and momentum
// untouched.
func (p *Perceptron) train(data []domain.EncodedExample, learningRate, alpha, momentum float64) float64 {
	var sumSquares float64
	for _, example := range data {
		actual := p.activate(example.Input, alpha)
		expected := example.Output.Weight(p.ID)
		currentError := expected - actual
		if currentError == 0 {
			continue
		}
		sumSquares += currentError * currentError
		slope := alpha
		if actual > 0 {
			slope = 1
		}
		delta := slope * currentError * learningRate
		for id, weight := range example.Input.All() {
			change := delta*weight + momentum*float64(p.Changes[id])
			p.Changes[id] = float32(change)
			p.Weights[id] = float32(float64(p.Weights[id]) + change)
		}
		p.Bias += delta
	}
	return sumSquares
}

func (p *Perceptron) clone() Perceptron {
	return Perceptron{
		Name:    p.Name,
		ID:      p.ID,
		Weights: slices.Clone(p.Weights),
		Changes: slices.Clone(p.Changes),
		Bias:    p.Bias,
	}
}
