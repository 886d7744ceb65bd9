package network

import (
	"context"
	"fmt"
	"intent-lab/domain"
	"intent-lab/errors"
	"intent-lab/lookup"
	"log/slog"
	"math"
	"slices"
	"time"
)

// Network is a one-vs-rest layer of perceptrons, one per output label.
// It is not safe for concurrent use.
type Network struct {
	cfg     Config
	log     *slog.Logger
	onEpoch ProgressFunc

	lookup       *lookup.CorpusLookup
	initialized  bool
	numInputs    int
	perceptrons  []*Perceptron
	byName       map[string]*Perceptron
	status       Status
	hasStatus    bool
	learningRate float64
}

func New(log *slog.Logger, cfg Config, opts ...Option) (*Network, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("network config: %w", err)
	}
	n := &Network{
		cfg:          cfg,
		log:          log,
		learningRate: cfg.LearningRate,
	}
	for _, opt := range opts {
		opt(n)
	}
	return n, nil
}

// Train fits the network on corpus until one of the stopping conditions of
// the config holds. The status survives between calls: training again
// resumes where the previous call stopped. The context is checked between
// epochs only; on cancellation the completed epochs are kept.
//
// Once initialized, the vocabularies are frozen. A corpus producing other
// features or labels fails with errors.ErrVocabularyResized and leaves the
// network as it was.
func (n *Network) Train(ctx context.Context, corpus []domain.Example) (Status, error) {
	if len(corpus) == 0 {
		n.log.Debug("Empty corpus, nothing to train")
		return Status{}, nil
	}

	corpus = AugmentNoneIntent(corpus, n.cfg.NoneFeature)
	corpusLookup := lookup.NewCorpusLookup(nil, nil)
	data := corpusLookup.Build(corpus)
	if err := n.verifyVocabulary(corpusLookup); err != nil {
		return n.status, err
	}
	n.lookup = corpusLookup

	if !n.hasStatus {
		n.status = initialStatus()
		n.hasStatus = true
	}
	n.verifyIsInitialized()
	if len(n.perceptrons) == 0 {
		n.log.Warn("Corpus has no output label, nothing to train")
		return n.status, nil
	}

	n.log.Info("Training started",
		"examples", len(data),
		"inputs", n.numInputs,
		"labels", len(n.perceptrons),
		"iterations", n.status.Iterations)
	start := time.Now()
	for n.status.running(n.cfg) {
		if err := ctx.Err(); err != nil {
			n.log.Warn("Training interrupted", "iterations", n.status.Iterations, "error", n.status.Error)
			return n.status, err
		}
		epochStart := time.Now()
		n.status = n.epoch(data)
		n.reportProgress(time.Since(epochStart))
	}
	n.log.Info("Training stopped",
		"iterations", n.status.Iterations,
		"error", n.status.Error,
		"delta_error", n.status.DeltaError,
		"duration", time.Since(start))
	return n.status, nil
}

// epoch trains every perceptron once over data and returns the next status.
func (n *Network) epoch(data []domain.EncodedExample) Status {
	iterations := n.status.Iterations + 1
	n.learningRate = n.cfg.LearningRate / (1 + 0.001*float64(iterations))
	var sum float64
	for _, p := range n.perceptrons {
		sum += p.train(data, n.learningRate, n.cfg.Alpha, n.cfg.Momentum)
	}
	epochError := sum / float64(len(n.perceptrons)*len(data))
	return Status{
		Error:      epochError,
		DeltaError: math.Abs(epochError - n.status.Error),
		Iterations: iterations,
	}
}

func (n *Network) reportProgress(elapsed time.Duration) {
	if n.cfg.Log {
		n.log.Info("Epoch",
			"iterations", n.status.Iterations,
			"loss", n.status.Error,
			"time_ms", elapsed.Milliseconds())
	}
	if n.onEpoch != nil {
		n.onEpoch(n.status, elapsed)
	}
}

// verifyIsInitialized sizes the perceptrons against the current lookup the
// first time only.
func (n *Network) verifyIsInitialized() {
	if n.initialized || n.lookup == nil {
		return
	}
	n.initialize(n.lookup.NumInputs(), n.lookup.Labels())
}

func (n *Network) initialize(numInputs int, labels []string) {
	n.numInputs = numInputs
	n.perceptrons = make([]*Perceptron, 0, len(labels))
	n.byName = make(map[string]*Perceptron, len(labels))
	for id, label := range labels {
		p := newPerceptron(label, id, numInputs)
		n.perceptrons = append(n.perceptrons, p)
		n.byName[label] = p
	}
	n.initialized = true
}

func (n *Network) verifyVocabulary(next *lookup.CorpusLookup) error {
	if !n.initialized {
		return nil
	}
	if next.NumInputs() != n.numInputs {
		return fmt.Errorf("%w: %d input features, network sized for %d",
			errors.ErrVocabularyResized, next.NumInputs(), n.numInputs)
	}
	if !slices.Equal(next.Features(), n.lookup.Features()) {
		return fmt.Errorf("%w: input features differ from the initial ones", errors.ErrVocabularyResized)
	}
	if !slices.Equal(next.Labels(), n.Labels()) {
		return fmt.Errorf("%w: labels %v, network built for %v",
			errors.ErrVocabularyResized, next.Labels(), n.Labels())
	}
	return nil
}

// Run scores every label for input. It reports false while no vocabulary
// has been built. Tokens unknown to the vocabulary are ignored, so an input
// made only of them scores like an empty one.
func (n *Network) Run(input domain.Bag) (map[string]float64, bool) {
	if n.lookup == nil {
		return nil, false
	}
	vector, ok := n.lookup.TransformInput(input)
	if !ok {
		return nil, false
	}
	outputs := make(map[string]float64, len(n.perceptrons))
	for _, p := range n.perceptrons {
		outputs[p.Name] = p.activate(vector, n.cfg.Alpha)
	}
	return outputs, true
}

// IsRunnable reports whether the network has at least one perceptron.
func (n *Network) IsRunnable() bool {
	return len(n.perceptrons) > 0
}

func (n *Network) Status() Status {
	return n.status
}

// Labels returns the label names in perceptron id order.
func (n *Network) Labels() []string {
	labels := make([]string, len(n.perceptrons))
	for i, p := range n.perceptrons {
		labels[i] = p.Name
	}
	return labels
}

// Perceptron returns a copy of the perceptron scoring label.
func (n *Network) Perceptron(label string) (Perceptron, bool) {
	p, ok := n.byName[label]
	if !ok {
		return Perceptron{}, false
	}
	return p.clone(), true
}

// Perceptrons returns a copy of every perceptron in id order.
func (n *Network) Perceptrons() []Perceptron {
	out := make([]Perceptron, len(n.perceptrons))
	for i, p := range n.perceptrons {
		out[i] = p.clone()
	}
	return out
}

// LearningRate returns the decayed rate used by the last epoch.
func (n *Network) LearningRate() float64 {
	return n.learningRate
}
