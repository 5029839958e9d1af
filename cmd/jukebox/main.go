package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/gartstein/jukebox/internal/jukebox/config"
	"github.com/gartstein/jukebox/internal/jukebox/db"
	"github.com/gartstein/jukebox/internal/jukebox/handlers"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:   "jukebox",
	Short: "Backend of the jukebox marketing site",
	Long: `Serves leads, locations, product features, business solutions,
content pages and newsletter subscriptions as RPC procedures over HTTP.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to a YAML config file")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// setup loads and validates the configuration and builds the logger.
func setup() (*config.Config, *zap.Logger, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, nil, fmt.Errorf("invalid config: %w", err)
	}
	logger, err := initLogger(cfg.Log.Development)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return cfg, logger, nil
}

// initLogger initializes a Zap production logger, or a development one.
func initLogger(development bool) (*zap.Logger, error) {
	if development {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

func syncLogger(logger *zap.Logger) {
	// Sync fails on unbuffered stderr; nothing useful can be done about it.
	_ = logger.Sync()
}

// openRepository connects to the database, retrying with exponential
// backoff while it is not yet reachable.
func openRepository(ctx context.Context, cfg config.DatabaseConfig, logger *zap.Logger) (*db.Repository, error) {
	dbConf := &db.Config{
		Driver:       cfg.Driver,
		DSN:          cfg.DSN,
		MaxOpenConns: cfg.MaxOpenConns,
		MaxIdleConns: cfg.MaxIdleConns,
		LogQueries:   cfg.LogQueries,
	}

	policy := backoff.NewExponentialBackOff()
	policy.MaxElapsedTime = 2 * time.Minute

	var repo *db.Repository
	err := backoff.RetryNotify(func() error {
		var err error
		repo, err = db.NewRepository(dbConf)
		return err
	}, backoff.WithContext(backoff.WithMaxRetries(policy, uint64(cfg.ConnectRetries)), ctx),
		func(err error, wait time.Duration) {
			logger.Warn("Database not reachable, retrying",
				zap.String("driver", cfg.Driver),
				zap.Duration("wait", wait),
				zap.Error(err),
			)
		})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}
	return repo, nil
}

// waitForShutdown blocks until an interrupt or SIGTERM is received, then shuts down servers.
func waitForShutdown(server *handlers.Server, errCh <-chan error, logger *zap.Logger) error {
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(stop)

	select {
	case sig := <-stop:
		logger.Info("Shutdown signal received", zap.String("signal", sig.String()))
	case err := <-errCh:
		if err != nil {
			return err
		}
	}

	server.Stop()
	logger.Info("Servers stopped properly")
	return nil
}
