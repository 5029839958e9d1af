package main

import (
	"github.com/gartstein/jukebox/internal/jukebox/controller"
	"github.com/gartstein/jukebox/internal/jukebox/events"
	"github.com/gartstein/jukebox/internal/jukebox/handlers"
	"github.com/gartstein/jukebox/internal/jukebox/middleware"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"google.golang.org/grpc"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP and gRPC servers",
	RunE:  runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, logger, err := setup()
	if err != nil {
		return err
	}
	defer syncLogger(logger)

	ctx := cmd.Context()

	repo, err := openRepository(ctx, cfg.Database, logger)
	if err != nil {
		return err
	}
	defer func() {
		if err := repo.Close(); err != nil {
			logger.Error("failed to close database", zap.Error(err))
		}
	}()

	if cfg.Database.AutoMigrate {
		if err := repo.Migrate(ctx); err != nil {
			return err
		}
		logger.Info("Database schema migrated")
	}

	var producer controller.EventProducer = events.NopProducer{}
	if len(cfg.Kafka.Brokers) > 0 {
		p, err := events.NewProducer(cfg.Kafka.Brokers, logger, cfg.Kafka.Topic)
		if err != nil {
			return err
		}
		defer p.Close()
		producer = p
		logger.Info("Publishing domain events", zap.Strings("brokers", cfg.Kafka.Brokers), zap.String("topic", cfg.Kafka.Topic))
	}

	siteSvc := controller.NewSiteService(repo, producer, logger)

	rpc, err := handlers.NewRPCHandler(siteSvc, logger)
	if err != nil {
		return err
	}

	server := handlers.NewServer(
		cfg.Server.GRPCPort,
		cfg.Server.HTTPPort,
		logger,
		grpc.UnaryInterceptor(middleware.UnaryLogging(logger)),
	)
	server.RegisterHTTPHandler(handlers.NewRouter(rpc, cfg.Server.CORSOrigins, logger))

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.Start()
	}()

	return waitForShutdown(server, errCh, logger)
}
