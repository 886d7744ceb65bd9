package main

import (
	"context"
	"fmt"
	"intent-lab/benchmark"
	"intent-lab/corpus"
	"intent-lab/internal"
	"intent-lab/network"
	"intent-lab/repositories"
	"intent-lab/services"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/dustin/go-humanize"
	"github.com/gookit/color"
	"github.com/mama165/sdk-go/logs"
	"github.com/olekukonko/tablewriter"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Fatal error: %v\n", err)
		os.Exit(1)
	}
}

// run trains on CORPUS_PATH in an in-memory store, then classifies the test
// utterances BENCHMARK_RUNS times and prints accuracy and throughput.
func run() error {
	config, err := internal.LoadConfig()
	if err != nil {
		return err
	}
	if config.CorpusPath == "" {
		return fmt.Errorf("CORPUS_PATH is required")
	}
	log := logs.GetLoggerFromString(config.LogLevel)
	networkConfig, err := network.LoadConfig("NETWORK")
	if err != nil {
		return fmt.Errorf("network config error: %w", err)
	}

	c, err := corpus.Load(config.CorpusPath)
	if err != nil {
		return err
	}

	db, err := badger.Open(badger.DefaultOptions("").WithInMemory(true).WithLoggingLevel(badger.ERROR))
	if err != nil {
		return fmt.Errorf("database opening failed: %w", err)
	}
	defer db.Close()
	repository := repositories.NewUtteranceRepository(db, log)
	if _, err = services.ImportCorpus(repository, c, time.Now().UTC()); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	classifier, err := network.New(log, networkConfig)
	if err != nil {
		return err
	}
	service := services.NewClassifierService(log, repository, classifier)
	trainStart := time.Now()
	status, err := service.Train(ctx)
	if err != nil {
		return fmt.Errorf("training failed: %w", err)
	}
	trainElapsed := time.Since(trainStart)

	cases, err := service.TestCases()
	if err != nil {
		return err
	}
	report, err := benchmark.Run(ctx, service, cases, config.BenchmarkRuns)
	if err != nil {
		return err
	}

	headline := fmt.Sprintf("%d good of a total of %d (%.2f%%)",
		report.Good/report.Runs, report.Total/report.Runs, report.Accuracy*100)
	if report.Accuracy >= 0.9 {
		color.Green.Println(headline)
	} else {
		color.Yellow.Println(headline)
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Metric", "Value"})
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetBorder(false)
	table.AppendBulk([][]string{
		{"Corpus", fmt.Sprintf("%s (%s)", c.Name, c.Locale)},
		{"Intents", strconv.Itoa(len(c.Data))},
		{"Training epochs", strconv.Itoa(status.Iterations)},
		{"Training error", strconv.FormatFloat(status.Error, 'g', 6, 64)},
		{"Training time", trainElapsed.String()},
		{"Total runs", strconv.Itoa(report.Runs)},
		{"Classified", fmt.Sprintf("%d good of %d", report.Good, report.Total)},
		{"Time per utterance", report.PerUtterance.String()},
		{"Utterances per second", strconv.FormatFloat(report.UtterancesPerSec, 'f', 0, 64)},
		{"Resident memory", humanize.Bytes(report.MemoryRSS)},
	})
	table.Render()
	return nil
}
