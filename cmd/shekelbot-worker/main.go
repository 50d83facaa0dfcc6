package main

import (
	"context"
	"errors"
	"os"
	"time"

	"golang.org/x/sync/errgroup"

	"shekelbot/internal/amqp"
	"shekelbot/internal/cli"
	applog "shekelbot/internal/log"
	"shekelbot/internal/worker"
)

func main() {
	// Load .env file for local development (ignore errors in production/docker)
	cli.LoadEnvFile()

	logger := cli.SetupLogger().WithComponent(applog.ComponentWorker)

	logger.Info("Starting shekelbot-worker")

	cfg := cli.LoadAndValidateConfig(logger)

	if cfg.AMQPURL == "" {
		logger.Error("AMQP_URL is required for the worker")
		os.Exit(1)
	}

	amqpClient, err := amqp.NewClient(cfg.AMQPURL, cfg.AMQPExchange, cfg.AMQPQueue)
	if err != nil {
		logger.Error("Failed to initialize AMQP client", "error", err)
		os.Exit(1)
	}
	defer amqpClient.Close()

	audit, err := worker.NewAuditWriter(cfg.AuditLogPath, logger)
	if err != nil {
		logger.Error("Failed to open audit log", "error", err, "path", cfg.AuditLogPath)
		os.Exit(1)
	}
	defer audit.Close()

	ctx, _ := cli.GracefulShutdown(logger, 10*time.Second, nil)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return amqpClient.ConsumeEvents(ctx, audit.HandleEvent)
	})

	logger.Info("Worker started",
		"queue", cfg.AMQPQueue,
		"audit_log", cfg.AuditLogPath)

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		logger.Error("Worker stopped with error", "error", err)
		os.Exit(1)
	}

	logger.Info("Worker stopped")
}
