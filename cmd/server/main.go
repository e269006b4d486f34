package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/mamadbah2/dairyfarm/internal/app"
	"github.com/mamadbah2/dairyfarm/internal/config"
	"github.com/mamadbah2/dairyfarm/pkg/logger"
)

func main() {
	cfg, err := config.Load("")
	if err != nil {
		panic(err)
	}

	baseLogger := logger.Must(logger.New(cfg.Log.Level))
	defer func() { _ = baseLogger.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	application, err := app.New(ctx, cfg, baseLogger)
	if err != nil {
		baseLogger.Fatal("failed to init application", zap.Error(err))
	}
	defer application.Close(context.Background())

	if err := application.Run(ctx); err != nil {
		baseLogger.Error("server stopped with error", zap.Error(err))
	}
}
