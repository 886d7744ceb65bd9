package domain

import "time"

type Classification struct {
	Label string
	Score float64
}

// Prediction is the ranked answer for one utterance. Classifications are
// sorted by decreasing score and Intent is the label of the first one.
type Prediction struct {
	Utterance       string
	Language        string
	Intent          string
	Classifications []Classification
	At              time.Time
}
