package services

import (
	"context"
	"intent-lab/domain"
	"intent-lab/errors"
	"intent-lab/network"
	"intent-lab/repositories"
	"intent-lab/tokenizer"
	"log/slog"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/abadojack/whatlanggo"
	"github.com/samber/lo"
)

type IClassifierService interface {
	Train(ctx context.Context) (network.Status, error)
	TrainExamples(ctx context.Context, examples []domain.Example) (network.Status, error)
	Classify(ctx context.Context, utterance string) (domain.Prediction, error)
	TestCases() ([]domain.TestCase, error)
}

// ClassifierService puts the tokenizer in front of the network and ranks
// its scores. Training takes the write lock, classification the read lock.
type ClassifierService struct {
	mu         sync.RWMutex
	log        *slog.Logger
	repository repositories.IUtteranceRepository
	network    *network.Network
	tokenizer  tokenizer.Tokenizer
}

func NewClassifierService(log *slog.Logger, repository repositories.IUtteranceRepository, net *network.Network) *ClassifierService {
	return &ClassifierService{
		log:        log,
		repository: repository,
		network:    net,
		tokenizer:  tokenizer.New(),
	}
}

// Train fits the network on every stored training utterance.
func (s *ClassifierService) Train(ctx context.Context) (network.Status, error) {
	utterances, err := s.repository.GetUtterances(repositories.Train)
	if err != nil {
		return network.Status{}, err
	}
	if len(utterances) == 0 {
		s.log.Warn("No training utterance stored")
	}
	examples := lo.Map(utterances, func(u repositories.DiskUtterance, _ int) domain.Example {
		return domain.Example{Input: s.tokenizer.Bag(u.Text), Output: domain.NewBag(u.Intent)}
	})
	return s.TrainExamples(ctx, examples)
}

func (s *ClassifierService) TrainExamples(ctx context.Context, examples []domain.Example) (network.Status, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.network.Train(ctx, examples)
}

// Classify ranks every known intent for utterance.
func (s *ClassifierService) Classify(ctx context.Context, utterance string) (domain.Prediction, error) {
	if strings.TrimSpace(utterance) == "" {
		return domain.Prediction{}, errors.ErrEmptyUtterance
	}
	if err := ctx.Err(); err != nil {
		return domain.Prediction{}, err
	}

	s.mu.RLock()
	scores, ok := s.network.Run(s.tokenizer.Bag(utterance))
	runnable := s.network.IsRunnable()
	s.mu.RUnlock()
	if !ok || !runnable {
		return domain.Prediction{}, errors.ErrNetworkNotReady
	}

	classifications := Rank(scores)
	return domain.Prediction{
		Utterance:       utterance,
		Language:        whatlanggo.Detect(utterance).Lang.Iso6391(),
		Intent:          classifications[0].Label,
		Classifications: classifications,
		At:              time.Now().UTC(),
	}, nil
}

// TestCases lists the stored held-out utterances.
func (s *ClassifierService) TestCases() ([]domain.TestCase, error) {
	utterances, err := s.repository.GetUtterances(repositories.Test)
	if err != nil {
		return nil, err
	}
	return lo.Map(utterances, func(u repositories.DiskUtterance, _ int) domain.TestCase {
		return domain.TestCase{Utterance: u.Text, Intent: u.Intent}
	}), nil
}

// Rank sorts scores by decreasing value, ties broken by label.
func Rank(scores map[string]float64) []domain.Classification {
	classifications := lo.MapToSlice(scores, func(label string, score float64) domain.Classification {
		return domain.Classification{Label: label, Score: score}
	})
	sort.Slice(classifications, func(i, j int) bool {
		if classifications[i].Score != classifications[j].Score {
			return classifications[i].Score > classifications[j].Score
		}
		return classifications[i].Label < classifications[j].Label
	})
	return classifications
}
