package errors

import "fmt"

var (
	ErrVocabularyResized    = fmt.Errorf("vocabulary resized after initialization")
	ErrNetworkNotReady      = fmt.Errorf("network is not trained yet")
	ErrEmptyUtterance       = fmt.Errorf("utterance is empty")
	ErrInvalidCorpus        = fmt.Errorf("invalid corpus")
	ErrUnknownUtteranceKind = fmt.Errorf("unknown utterance kind")
)
