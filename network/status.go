package network

import "math"

// Status describes the last completed epoch. Error is the mean squared error
// over every unit and example of that epoch, DeltaError its absolute change
// from the epoch before.
type Status struct {
	Error      float64
	DeltaError float64
	Iterations int
}

func initialStatus() Status {
	return Status{Error: math.Inf(1), DeltaError: math.Inf(1), Iterations: 0}
}

// running reports whether another epoch is due under cfg.
func (s Status) running(cfg Config) bool {
	return s.Iterations < cfg.Iterations &&
		s.Error > cfg.ErrorThresh &&
		s.DeltaError > cfg.DeltaErrorThresh
}
