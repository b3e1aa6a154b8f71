package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/traderx-tools/traderx-convert/internal/config"
	"github.com/traderx-tools/traderx-convert/internal/convert"
	"github.com/traderx-tools/traderx-convert/internal/logger"
	"github.com/traderx-tools/traderx-convert/internal/server"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.Error("Configuration failed", "error", err)
		os.Exit(1)
	}

	initLogger(cfg)

	convertService, err := convert.NewService(convert.Config{
		OutputRoot:      cfg.OutputRoot,
		DefaultCurrency: cfg.DefaultCurrency,
		CacheSize:       cfg.CacheSize,
	})
	if err != nil {
		logger.Error("Failed to create conversion service", "error", err)
		os.Exit(1)
	}

	srv := server.NewServer(cfg.Port, nil, convertService)

	errCh := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		logger.Error("Server failed", "error", err)
		os.Exit(1)
	case sig := <-stop:
		logger.Info("Shutting down", "signal", sig.String())
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Stop(ctx); err != nil {
		logger.Error("Graceful shutdown failed", "error", err)
		os.Exit(1)
	}
}
