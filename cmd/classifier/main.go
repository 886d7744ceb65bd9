package main

import (
	"context"
	"fmt"
	"intent-lab/corpus"
	grpcserver "intent-lab/grpc/server"
	"intent-lab/internal"
	"intent-lab/network"
	"intent-lab/repositories"
	"intent-lab/services"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/mama165/sdk-go/logs"
	"google.golang.org/grpc"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Fatal error: %v\n", err)
		os.Exit(1)
	}
}

// run wires the store, trains the network and serves classifications until
// SIGINT or SIGTERM. Returning instead of exiting lets the defers close badger.
func run() error {
	// 1. Configuration & Logger
	config, err := internal.LoadConfig()
	if err != nil {
		return err
	}
	log := logs.GetLoggerFromString(config.LogLevel)
	networkConfig, err := network.LoadConfig("NETWORK")
	if err != nil {
		return fmt.Errorf("network config error: %w", err)
	}

	// 2. Database (BadgerDB)
	db, err := internal.OpenBadger(config)
	if err != nil {
		return fmt.Errorf("database opening failed: %w", err)
	}
	defer func() {
		log.Info("Closing BadgerDB...")
		_ = db.Close()
	}()
	repository := repositories.NewUtteranceRepository(db, log)

	// 3. Seed the store from the corpus file when it is empty
	count, err := repository.CountUtterances(repositories.Train)
	if err != nil {
		return err
	}
	if count == 0 && config.CorpusPath != "" {
		c, err := corpus.Load(config.CorpusPath)
		if err != nil {
			return err
		}
		imported, err := services.ImportCorpus(repository, c, time.Now().UTC())
		if err != nil {
			return fmt.Errorf("corpus import failed: %w", err)
		}
		log.Info("Corpus imported", "path", config.CorpusPath, "utterances", imported)
	}

	// 4. Context & Signals
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 5. Training
	classifier, err := network.New(log, networkConfig)
	if err != nil {
		return err
	}
	service := services.NewClassifierService(log, repository, classifier)
	status, err := service.Train(ctx)
	if err != nil {
		return fmt.Errorf("training failed: %w", err)
	}
	log.Info("Network trained", "iterations", status.Iterations, "error", status.Error, "labels", classifier.Labels())

	// 6. gRPC Server Setup
	address := config.Address()
	listener, err := net.Listen("tcp", address)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", address, err)
	}
	s := grpc.NewServer()
	grpcserver.RegisterClassifierServiceServer(s, grpcserver.NewClassifierServer(log, service))

	errChan := make(chan error, 1)
	go func() {
		log.Info("Starting gRPC server", "address", address, "at", time.Now().UTC())
		if err := s.Serve(listener); err != nil && err != grpc.ErrServerStopped {
			errChan <- fmt.Errorf("gRPC server error: %w", err)
		}
	}()

	// 7. Wait for Stop or Error
	select {
	case <-ctx.Done():
		log.Info("Shutting down gracefully...")
	case err := <-errChan:
		return err
	}

	s.GracefulStop()
	log.Info("Program stopped cleanly")
	return nil
}
