package e2e

import (
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	// CLASSIFIER_ADDR points at a running cmd/classifier, the suite is skipped when empty
	ClassifierAddr string `envconfig:"CLASSIFIER_ADDR"`
	// E2E_DEBUG_JSON dumps full gRPC request/response bodies as JSON
	DebugJSON bool `envconfig:"E2E_DEBUG_JSON" default:"false"`
	Colours   bool `envconfig:"E2E_COLOURS" default:"true"`
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	return cfg, err
}
