//go:generate go run go.uber.org/mock/mockgen -source=utterance.go -destination=../mocks/mock_utterance_repository.go -package=mocks
package repositories

import (
	"fmt"
	"intent-lab/errors"
	"log/slog"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
	"github.com/samber/lo"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/structpb"
)

type Kind string

const (
	Train Kind = "train"
	Test  Kind = "test"
)

func ParseKind(s string) (Kind, error) {
	switch Kind(s) {
	case Train, Test:
		return Kind(s), nil
	default:
		return "", fmt.Errorf("%w: %q", errors.ErrUnknownUtteranceKind, s)
	}
}

type IUtteranceRepository interface {
	StoreUtterances(utterances []DiskUtterance) error
	GetUtterances(kind Kind) ([]DiskUtterance, error)
	CountUtterances(kind Kind) (int, error)
}

type UtteranceRepository struct {
	db  *badger.DB
	log *slog.Logger
}

func NewUtteranceRepository(db *badger.DB, log *slog.Logger) UtteranceRepository {
	return UtteranceRepository{db: db, log: log}
}

type DiskUtterance struct {
	ID     uuid.UUID
	Kind   Kind
	Intent string
	Text   string
	At     time.Time
}

func prefix(kind Kind) string {
	return fmt.Sprintf("utt:%s:", kind)
}

// key is "utt:{kind}:{at_padded}:{uuid}". The 19-digit padding keeps keys in
// chronological order, which is also the order vocabularies are built in.
func key(u DiskUtterance) []byte {
	return []byte(fmt.Sprintf("%s%019d:%s", prefix(u.Kind), u.At.UnixNano(), u.ID))
}

// StoreUtterances persists utterances in a single write batch.
func (r UtteranceRepository) StoreUtterances(utterances []DiskUtterance) error {
	wb := r.db.NewWriteBatch()
	defer wb.Cancel()
	for _, u := range utterances {
		if _, err := ParseKind(string(u.Kind)); err != nil {
			return err
		}
		value, err := fromDiskUtterance(u)
		if err != nil {
			return err
		}
		bytes, err := proto.Marshal(value)
		if err != nil {
			return err
		}
		if err = wb.Set(key(u), bytes); err != nil {
			return err
		}
	}
	if err := wb.Flush(); err != nil {
		return err
	}
	r.log.Debug("Utterances stored", "count", len(utterances))
	return nil
}

// GetUtterances returns every utterance of kind in insertion order.
func (r UtteranceRepository) GetUtterances(kind Kind) ([]DiskUtterance, error) {
	if _, err := ParseKind(string(kind)); err != nil {
		return nil, err
	}
	var utterances []DiskUtterance
	err := r.db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()

		p := []byte(prefix(kind))
		for it.Seek(p); it.ValidForPrefix(p); it.Next() {
			err := it.Item().Value(func(value []byte) error {
				u, err := DecodeUtterance(value)
				if err != nil {
					return err
				}
				utterances = append(utterances, u)
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	return utterances, err
}

// CountUtterances counts keys only, values are not read.
func (r UtteranceRepository) CountUtterances(kind Kind) (int, error) {
	if _, err := ParseKind(string(kind)); err != nil {
		return 0, err
	}
	count := 0
	err := r.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false
		it := txn.NewIterator(opts)
		defer it.Close()

		p := []byte(prefix(kind))
		for it.Seek(p); it.ValidForPrefix(p); it.Next() {
			count++
		}
		return nil
	})
	return count, err
}

// DecodeUtterance reads a stored value back, for tools walking the keys themselves.
func DecodeUtterance(value []byte) (DiskUtterance, error) {
	var s structpb.Struct
	if err := proto.Unmarshal(value, &s); err != nil {
		return DiskUtterance{}, err
	}
	return toDiskUtterance(&s)
}

func fromDiskUtterance(u DiskUtterance) (*structpb.Struct, error) {
	return structpb.NewStruct(map[string]any{
		"id":     u.ID.String(),
		"kind":   string(u.Kind),
		"intent": u.Intent,
		"text":   u.Text,
		"at":     u.At.UTC().Format(time.RFC3339Nano),
	})
}

func toDiskUtterance(s *structpb.Struct) (DiskUtterance, error) {
	fields := s.GetFields()
	str := func(name string) string { return fields[name].GetStringValue() }

	id, err := uuid.Parse(str("id"))
	if err != nil {
		return DiskUtterance{}, err
	}
	kind, err := ParseKind(str("kind"))
	if err != nil {
		return DiskUtterance{}, err
	}
	at, err := time.Parse(time.RFC3339Nano, str("at"))
	if err != nil {
		return DiskUtterance{}, err
	}
	return DiskUtterance{
		ID:     id,
		Kind:   kind,
		Intent: str("intent"),
		Text:   str("text"),
		At:     at.UTC(),
	}, nil
}

// NewDiskUtterances stamps texts of one intent with increasing times from
// start, so they read back in the given order.
func NewDiskUtterances(kind Kind, intent string, texts []string, start time.Time) []DiskUtterance {
	return lo.Map(texts, func(text string, i int) DiskUtterance {
		return DiskUtterance{
			ID:     uuid.New(),
			Kind:   kind,
			Intent: intent,
			Text:   text,
			At:     start.Add(time.Duration(i)),
		}
	})
}
