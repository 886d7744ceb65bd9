package internal

import "github.com/dgraph-io/badger/v4"

// OpenBadger opens the utterance store, in memory when the config asks for it.
func OpenBadger(config Config) (*badger.DB, error) {
	options := badger.DefaultOptions(config.BadgerFilepath)
	if config.InMemory {
		options = badger.DefaultOptions("").WithInMemory(true)
	}
	return badger.Open(options.WithLoggingLevel(badger.WARNING))
}
