package network

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/kelseyhightower/envconfig"
)

var validate = validator.New()

// DefaultNoneFeature is the sentinel token marking the catch-all example.
const DefaultNoneFeature = "nonefeature"

// Config drives the training loop. Every field has its own default, see
// DefaultConfig.
type Config struct {
	// Iterations caps the number of epochs.
	Iterations       int     `envconfig:"ITERATIONS" default:"20000" validate:"gte=0"`
	ErrorThresh      float64 `envconfig:"ERROR_THRESH" default:"0.00005" validate:"gte=0"`
	DeltaErrorThresh float64 `envconfig:"DELTA_ERROR_THRESH" default:"0.000001" validate:"gte=0"`
	LearningRate     float64 `envconfig:"LEARNING_RATE" default:"0.6" validate:"gt=0"`
	Momentum         float64 `envconfig:"MOMENTUM" default:"0.5" validate:"gte=0"`
	// Alpha scales the positive branch of the activation.
	Alpha float64 `envconfig:"ALPHA" default:"0.07" validate:"gt=0"`
	// Log prints every epoch at Info level.
	Log bool `envconfig:"LOG" default:"false"`
	// NoneFeature enables the none-intent augmentation when not empty.
	NoneFeature string `envconfig:"NONE_FEATURE" default:"nonefeature"`
}

func DefaultConfig() Config {
	return Config{
		Iterations:       20000,
		ErrorThresh:      0.00005,
		DeltaErrorThresh: 0.000001,
		LearningRate:     0.6,
		Momentum:         0.5,
		Alpha:            0.07,
		NoneFeature:      DefaultNoneFeature,
	}
}

// LoadConfig reads the configuration from the environment, e.g.
// NETWORK_ITERATIONS with prefix "NETWORK". Unset variables keep their default.
func LoadConfig(prefix string) (Config, error) {
	var cfg Config
	if err := envconfig.Process(prefix, &cfg); err != nil {
		return Config{}, err
	}
	return cfg, cfg.Validate()
}

func (c Config) Validate() error {
	return validate.Struct(c)
}

// ProgressFunc is called after every epoch with the new status and the time
// the epoch took.
type ProgressFunc func(status Status, elapsed time.Duration)

type Option func(n *Network)

// WithProgress registers a per-epoch callback.
func WithProgress(fn ProgressFunc) Option {
	return func(n *Network) {
		n.onEpoch = fn
	}
}
