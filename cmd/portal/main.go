// Command portal runs the shipping portal gateway: the HTTP front-end the
// browser talks to, itself a client of the remote shipments API.
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/envialo/shipping-portal/internal/api"
	"github.com/envialo/shipping-portal/internal/infrastructure/config"
	sessionredis "github.com/envialo/shipping-portal/internal/infrastructure/session/redis"
	"github.com/envialo/shipping-portal/pkg/logger"
)

// @title        Shipping Portal API
// @version      1.0
// @description  Portal gateway for shipment creation and tracking.
// @BasePath     /
func main() {
	cfg := config.Load()
	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	rdb, err := sessionredis.Connect(ctx, sessionredis.Config{
		Addr: cfg.Redis.Addr,
		DB:   cfg.Redis.DB,
	})
	cancel()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to redis")
	}

	e := api.NewRouter(cfg, rdb, log)

	go func() {
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped")
		}
	}()
	log.Info().Str("port", cfg.Port).Str("upstream", cfg.Upstream.BaseURL).Msg("portal started")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
	if err := rdb.Close(); err != nil {
		log.Error().Err(err).Msg("closing redis failed")
	}
	log.Info().Msg("portal stopped")
}
