package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/haukened/domcheck/internal/dns/common/clock"
	"github.com/haukened/domcheck/internal/dns/common/log"
	"github.com/haukened/domcheck/internal/dns/config"
	"github.com/haukened/domcheck/internal/dns/repos/blocklist"
	"github.com/haukened/domcheck/internal/dns/repos/blocklist/bloom"
	"github.com/haukened/domcheck/internal/dns/repos/blocklist/lru"
	"github.com/haukened/domcheck/internal/dns/services/checker"
)

const (
	// Version information
	version = "0.1.0-dev"
	appName = "domcheck"
)

// Application holds all the components of a batch run.
type Application struct {
	config  *config.AppConfig
	checker *checker.Checker
}

func main() {
	// Load configuration from environment
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(1)
	}

	// Configure global logging
	err = log.Configure(cfg.Env, cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Logging configuration error: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	log.Info(map[string]any{
		"app":           appName,
		"version":       version,
		"env":           cfg.Env,
		"log_level":     cfg.LogLevel,
		"cache_size":    cfg.CacheSize,
		"bloom_fp_rate": cfg.BloomFPRate,
		"disable_bloom": cfg.DisableBloom,
	}, "Starting domcheck")

	app := buildApplication(cfg)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := app.Run(ctx, os.Stdin, os.Stdout); err != nil {
		log.Fatal(map[string]any{"error": err.Error()}, "Batch failed")
	}
}

// buildApplication wires the checker service to the configured repository pipeline.
func buildApplication(cfg *config.AppConfig) *Application {
	svc := checker.NewChecker(checker.Options{
		Clock:   clock.RealClock{},
		Logger:  log.GetLogger(),
		NewRepo: repositoryFactory(cfg),
	})
	return &Application{config: cfg, checker: svc}
}

// repositoryFactory returns a factory building bloom → cache → index
// repositories according to cfg.
func repositoryFactory(cfg *config.AppConfig) checker.RepositoryFactory {
	return func(idx *blocklist.Index) (checker.Blocklist, error) {
		cache, err := lru.New(cfg.CacheSize)
		if err != nil {
			return nil, fmt.Errorf("failed to create decision cache: %w", err)
		}

		var factory blocklist.BloomFactory
		if !cfg.DisableBloom {
			factory = bloom.NewFactory()
		}

		log.Debug(map[string]any{
			"cache_size": cfg.CacheSize,
			"bloom":      factory != nil,
			"roots":      idx.Len(),
		}, "Blocklist repository configured")

		return blocklist.NewRepository(idx, cache, factory, cfg.BloomFPRate), nil
	}
}

// Run classifies the batch read from in and writes verdicts to out.
func (app *Application) Run(ctx context.Context, in io.Reader, out io.Writer) error {
	_, err := app.checker.Run(ctx, in, out)
	return err
}
