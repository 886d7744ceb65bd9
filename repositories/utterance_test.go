package repositories

import (
	stderrors "errors"
	"intent-lab/errors"
	"log/slog"
	"testing"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func openDB(t *testing.T) *badger.DB {
	t.Helper()
	db, err := badger.Open(badger.DefaultOptions(t.TempDir()).WithLoggingLevel(badger.ERROR))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func Test_Store_And_Get_Utterances_In_Order(t *testing.T) {
	req := require.New(t)
	repository := NewUtteranceRepository(openDB(t), slog.Default())
	at := time.Now().UTC()

	// Given utterances stored out of chronological order
	utterances := []DiskUtterance{
		{uuid.New(), Train, "farewell", "bye bye", at.Add(2 * time.Minute)},
		{uuid.New(), Train, "greet", "hello there", at},
		{uuid.New(), Test, "greet", "hi", at.Add(time.Minute)},
		{uuid.New(), Train, "greet", "good morning", at.Add(time.Minute)},
	}
	req.NoError(repository.StoreUtterances(utterances))

	// When the training utterances are fetched
	train, err := repository.GetUtterances(Train)
	req.NoError(err)

	// Then they come back sorted by time, test ones excluded
	req.Equal([]DiskUtterance{utterances[1], utterances[3], utterances[0]}, train)

	test, err := repository.GetUtterances(Test)
	req.NoError(err)
	req.Equal([]DiskUtterance{utterances[2]}, test)

	count, err := repository.CountUtterances(Train)
	req.NoError(err)
	req.Equal(3, count)
}

func Test_Get_Utterances_Empty_Store(t *testing.T) {
	req := require.New(t)
	repository := NewUtteranceRepository(openDB(t), slog.Default())

	utterances, err := repository.GetUtterances(Train)
	req.NoError(err)
	req.Empty(utterances)

	count, err := repository.CountUtterances(Test)
	req.NoError(err)
	req.Zero(count)
}

func Test_Unknown_Kind(t *testing.T) {
	req := require.New(t)
	repository := NewUtteranceRepository(openDB(t), slog.Default())

	err := repository.StoreUtterances([]DiskUtterance{{uuid.New(), Kind("draft"), "greet", "hi", time.Now()}})
	req.True(stderrors.Is(err, errors.ErrUnknownUtteranceKind))

	_, err = repository.GetUtterances(Kind("draft"))
	req.True(stderrors.Is(err, errors.ErrUnknownUtteranceKind))

	_, err = ParseKind("TRAIN")
	req.Error(err)
	kind, err := ParseKind("test")
	req.NoError(err)
	req.Equal(Test, kind)
}

func Test_NewDiskUtterances_Keeps_Order(t *testing.T) {
	req := require.New(t)
	repository := NewUtteranceRepository(openDB(t), slog.Default())
	start := time.Now().UTC()

	utterances := NewDiskUtterances(Train, "greet", []string{"c", "a", "b"}, start)
	req.NoError(repository.StoreUtterances(utterances))

	fetched, err := repository.GetUtterances(Train)
	req.NoError(err)
	req.Len(fetched, 3)
	req.Equal("c", fetched[0].Text)
	req.Equal("a", fetched[1].Text)
	req.Equal("b", fetched[2].Text)
	req.Equal("greet", fetched[2].Intent)
}
