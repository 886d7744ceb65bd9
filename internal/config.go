package internal

import (
	"fmt"

	"github.com/Netflix/go-env"
	"github.com/joho/godotenv"
)

type Config struct {
	LogLevel       string `env:"LOG_LEVEL,default=INFO"`
	Host           string `env:"HOST,default=localhost"`
	Port           int    `env:"PORT,default=8090"`
	BadgerFilepath string `env:"BADGER_FILEPATH,default=./data/intent-lab"`
	InMemory       bool   `env:"IN_MEMORY,default=false"`
	CorpusPath     string `env:"CORPUS_PATH"`
	BenchmarkRuns  int    `env:"BENCHMARK_RUNS,default=1000"`
}

// LoadConfig reads an optional .env file then the environment.
func LoadConfig() (Config, error) {
	_ = godotenv.Load()
	var config Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return Config{}, fmt.Errorf("config error: %w", err)
	}
	if config.Port <= 0 {
		return Config{}, fmt.Errorf("PORT must be positive, got %d", config.Port)
	}
	return config, nil
}

func (c Config) Address() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}
