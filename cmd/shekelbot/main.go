package main

import (
	"net/http"
	"os"
	"time"

	"shekelbot/internal/amqp"
	"shekelbot/internal/bot"
	"shekelbot/internal/classify"
	"shekelbot/internal/cli"
	apphttp "shekelbot/internal/http"
	applog "shekelbot/internal/log"
)

func main() {
	// Load .env file for local development (ignore errors in production/docker)
	cli.LoadEnvFile()

	// Setup structured logging
	logger := cli.SetupLogger()

	cfg := cli.LoadAndValidateConfig(logger)

	repo := cli.InitSQLite(logger, cfg.SQLiteDBPath)
	defer repo.Close()

	classifier := classify.NewHuggingFaceClient(classify.Config{
		BaseURL: cfg.HFAPIURL,
		Model:   cfg.HFModel,
		Token:   cfg.HFAPIToken,
		Timeout: cfg.HFTimeout,
	})
	logger.Info("Classifier initialized", "model", cfg.HFModel)

	// Event publishing is optional; the bot runs fine without a broker.
	var events bot.EventPublisher
	if cfg.AMQPURL != "" {
		amqpClient, err := amqp.NewClient(cfg.AMQPURL, cfg.AMQPExchange, cfg.AMQPQueue)
		if err != nil {
			logger.Warn("Failed to initialize AMQP client, continuing without events", "error", err)
		} else {
			defer amqpClient.Close()
			events = amqpClient
			logger.Info("Initialized AMQP client",
				"exchange", cfg.AMQPExchange,
				"queue", cfg.AMQPQueue)
		}
	}

	handler := bot.NewHandler(repo, classifier, events)
	srv := apphttp.NewServer(":"+cfg.Port, handler, logger.WithComponent(applog.ComponentHTTP))

	// Configure server timeouts and limits. The write timeout must leave
	// room for a slow classification call, which blocks the whole request.
	srv.ReadTimeout = 10 * time.Second
	srv.WriteTimeout = cfg.HFTimeout + 30*time.Second
	srv.IdleTimeout = 60 * time.Second
	srv.MaxHeaderBytes = 1 << 16 // 64KB

	_, done := cli.GracefulShutdown(logger, 30*time.Second, srv.Shutdown)

	logger.Info("Starting shekelbot server", "port", cfg.Port)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Error("Server error", "error", err, "port", cfg.Port)
		os.Exit(1)
	}

	<-done
	logger.Info("Server stopped gracefully")
}
