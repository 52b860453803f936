package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"codementor/internal/config"
	"codementor/internal/llm"
	"codementor/internal/llmclient"
	"codementor/internal/mentor"
	"codementor/internal/server"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger, err := newLogger(cfg.LogLevel)
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}
	defer logger.Sync()

	ctx := context.Background()
	gemini, err := llmclient.NewGemini(ctx, cfg)
	if err != nil {
		logger.Fatal("Failed to construct Gemini client", zap.Error(err))
	}

	client := llm.Wrap(gemini,
		llm.WithLogging(logger),
		llm.Retry(llm.RetryConfig{
			Attempts: cfg.RetryAttempts,
			Delay:    cfg.RetryDelay,
			MaxDelay: cfg.RetryMaxDelay,
		}),
		llm.Cache(cfg.CacheSize),
	)
	defer client.Close()

	svc := mentor.NewService(client, logger, cfg.MaxPromptBytes)

	srv := &http.Server{
		Addr:    cfg.ServerAddr,
		Handler: server.NewRouter(svc, logger),
	}

	go func() {
		logger.Info("Server listening", zap.String("addr", cfg.ServerAddr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("Server error", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Fatal("Server forced to shutdown", zap.Error(err))
	}

	logger.Info("Server exiting")
}

func newLogger(level string) (*zap.Logger, error) {
	lvl, err := zap.ParseAtomicLevel(level)
	if err != nil {
		return nil, err
	}
	cfg := zap.NewProductionConfig()
	cfg.Level = lvl
	return cfg.Build()
}
