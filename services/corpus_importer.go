package services

import (
	"intent-lab/corpus"
	"intent-lab/repositories"
	"time"
)

// ImportCorpus stores the training and test utterances of c. Timestamps
// start at start and grow by one nanosecond per utterance so the store keeps
// the corpus order. It returns the number of stored utterances.
func ImportCorpus(repository repositories.IUtteranceRepository, c corpus.Corpus, start time.Time) (int, error) {
	var utterances []repositories.DiskUtterance
	offset := 0
	for _, intent := range c.Data {
		at := start.Add(time.Duration(offset))
		utterances = append(utterances, repositories.NewDiskUtterances(repositories.Train, intent.Intent, intent.Utterances, at)...)
		utterances = append(utterances, repositories.NewDiskUtterances(repositories.Test, intent.Intent, intent.Tests, at)...)
		offset += max(len(intent.Utterances), len(intent.Tests))
	}
	if err := repository.StoreUtterances(utterances); err != nil {
		return 0, err
	}
	return len(utterances), nil
}
