package main

import (
	"flag"
	"fmt"
	"intent-lab/corpus"
	"intent-lab/internal"
	"intent-lab/repositories"
	"intent-lab/services"
	"os"
	"time"

	"github.com/mama165/sdk-go/logs"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Fatal error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	config, err := internal.LoadConfig()
	if err != nil {
		return err
	}
	path := flag.String("corpus", config.CorpusPath, "Path to the JSON corpus")
	flag.Parse()
	if *path == "" {
		return fmt.Errorf("no corpus given, use -corpus or CORPUS_PATH")
	}
	log := logs.GetLoggerFromString(config.LogLevel)

	c, err := corpus.Load(*path)
	if err != nil {
		return err
	}

	db, err := internal.OpenBadger(config)
	if err != nil {
		return fmt.Errorf("database opening failed: %w", err)
	}
	defer db.Close()

	repository := repositories.NewUtteranceRepository(db, log)
	count, err := services.ImportCorpus(repository, c, time.Now().UTC())
	if err != nil {
		return err
	}
	log.Info("Corpus imported",
		"name", c.Name,
		"locale", c.Locale,
		"intents", len(c.Data),
		"utterances", count,
		"db", config.BadgerFilepath)
	return nil
}
