package network

import (
	"intent-lab/domain"
	"intent-lab/lookup"
	"testing"

	"github.com/stretchr/testify/require"
)

func vector(pairs map[int]float64, order ...int) domain.SparseVector {
	v := domain.NewSparseVector(len(order))
	for _, id := range order {
		v.Set(id, pairs[id])
	}
	return v
}

func TestPerceptron_Activate(t *testing.T) {
	alpha := 0.07
	tests := []struct {
		name     string
		weights  []float32
		bias     float64
		input    domain.SparseVector
		expected float64
	}{
		{"Positive sum is scaled by alpha", []float32{1, 2}, 0.5, vector(map[int]float64{0: 1, 1: 1}, 0, 1), alpha * 3.5},
		{"Zero sum is clamped", []float32{1, -1}, 0, vector(map[int]float64{0: 1, 1: 1}, 0, 1), 0},
		{"Negative sum is clamped", []float32{-2, 0}, 0.5, vector(map[int]float64{0: 1}, 0), 0},
		{"Absent features are skipped", []float32{1, 100}, 0, vector(map[int]float64{0: 2}, 0), alpha * 2},
		{"Bias only", []float32{1, 1}, 0.25, domain.SparseVector{}, alpha * 0.25},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := newPerceptron("greet", 0, len(tt.weights))
			copy(p.Weights, tt.weights)
			p.Bias = tt.bias
			require.Equal(t, tt.expected, p.activate(tt.input, alpha))
		})
	}
}

func TestPerceptron_Zero_Error_Leaves_State_Untouched(t *testing.T) {
	req := require.New(t)
	corpusLookup := lookup.NewCorpusLookup(nil, nil)
	data := corpusLookup.Build(helloByeCorpus())

	// Given the farewell perceptron, which scores 0 and expects 0 on "hello"
	p := newPerceptron("farewell", 1, corpusLookup.NumInputs())
	p.Changes[0] = 0.25

	// When it is trained on the "hello" example only
	sumSquares := p.train(data[:1], 0.6, 0.07, 0.5)

	// Then nothing moved, stale momentum included
	req.Zero(sumSquares)
	req.Equal(float32(0), p.Weights[0])
	req.Equal(float32(0.25), p.Changes[0])
	req.Zero(p.Bias)
}

func TestPerceptron_Train_Update_Rule(t *testing.T) {
	req := require.New(t)
	learningRate, alpha, momentum := 0.6, 0.07, 0.5
	corpusLookup := lookup.NewCorpusLookup(nil, nil)
	data := corpusLookup.Build(helloByeCorpus())
	p := newPerceptron("greet", 0, corpusLookup.NumInputs())
	p.Changes[0] = 0.5

	// When the untrained perceptron meets its own example
	sumSquares := p.train(data[:1], learningRate, alpha, momentum)

	// Then the inactive slope alpha is used
	delta := alpha * 1 * learningRate
	change := delta*1 + momentum*0.5
	req.Equal(1.0, sumSquares)
	req.Equal(float32(change), p.Changes[0])
	req.Equal(float32(change), p.Weights[0])
	req.Equal(delta, p.Bias)
	// And the absent feature was not visited
	req.Equal(float32(0), p.Weights[1])
	req.Equal(float32(0), p.Changes[1])
}
