package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
	_ "time/tzdata"

	"github.com/joho/godotenv"

	"stock_forecast/internal/app/config"
	"stock_forecast/internal/app/di"
	"stock_forecast/internal/app/router"
	"stock_forecast/internal/feature/prediction/domain/entity"
	"stock_forecast/internal/platform/clock"
	"stock_forecast/internal/platform/externalapi/kma"
	"stock_forecast/internal/platform/http/handler"
	"stock_forecast/internal/platform/logger"
	"stock_forecast/internal/platform/metrics"
)

const shutdownTimeout = 10 * time.Second

func main() {
	// .envを読み込む
	if err := godotenv.Load(".env"); err != nil {
		slog.Info(".env not found; using system environment variables")
	}

	if err := run(); err != nil {
		slog.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

func run() error {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	log := logger.Init(logger.LoadConfig())

	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}
	kmaCfg, err := kma.LoadConfig()
	if err != nil {
		return err
	}
	loc, err := clock.LoadLocation(cfg.Location)
	if err != nil {
		return err
	}
	now := clock.In(loc)

	// モデルは起動時に一度だけロードし、全リクエストで共有する
	model, err := di.NewModel(cfg.ModelPath)
	if err != nil {
		return err
	}

	m := metrics.New()
	weather := di.NewWeather(kmaCfg, now, m)
	prediction, err := di.NewPredictionHandlers(model, weather, entity.Vocabulary(), now, m)
	if err != nil {
		return err
	}

	r := router.NewRouter(router.Options{Logger: log, CORSOrigins: cfg.CORSOrigins},
		prediction, handler.NewHealthHandler(model), m)

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("starting server", "addr", srv.Addr, "location", loc.String())
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case <-ctx.Done():
		log.Info("shutdown signal received")
	case err := <-errCh:
		return fmt.Errorf("listen: %w", err)
	}

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancelShutdown()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	log.Info("server stopped")
	return nil
}
