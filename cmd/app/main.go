package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/NastyaGoryachaya/crypto-price-history/internal/app"
	"github.com/NastyaGoryachaya/crypto-price-history/internal/config"
	"github.com/NastyaGoryachaya/crypto-price-history/internal/infra/db"
	"github.com/NastyaGoryachaya/crypto-price-history/pkg/logger"
	"github.com/labstack/gommon/log"
)

func main() {

	// context + signals
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// config + logger
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Error("config load failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
	lg := logger.New(&cfg.Logger)

	// postgres pool
	pool, err := db.NewPool(&cfg.Postgres)
	if err != nil {
		lg.Error("postgres init failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// build application
	application, err := app.NewApp(*cfg, lg, pool)
	if err != nil {
		lg.Error("app init failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// run application
	if err := application.Run(ctx); err != nil {
		lg.Error("application stopped with error", slog.String("error", err.Error()))
	}

	lg.Info("crypto-price-history stopped")
}
