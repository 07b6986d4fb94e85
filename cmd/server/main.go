package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/prana-g/livestock-api/docs"
	"github.com/prana-g/livestock-api/internal/api"
	"github.com/prana-g/livestock-api/internal/core/ports"
	"github.com/prana-g/livestock-api/internal/infrastructure/db/memory"
	mongoinfra "github.com/prana-g/livestock-api/internal/infrastructure/db/mongo"
	redisinfra "github.com/prana-g/livestock-api/internal/infrastructure/db/redis"
	"github.com/prana-g/livestock-api/internal/pkg/config"
	"github.com/prana-g/livestock-api/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

// @title           PRANA-G Livestock API
// @version         1.0
// @description     Livestock health monitoring API: phone/OTP auth, cattle registry, AI scan records, health alerts and farmer profiles.
// @BasePath        /v1
// @securityDefinitions.apikey BearerAuth
// @in              header
// @name            Authorization
func main() {
	cfg := config.Load()
	log := logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Pretty:  cfg.Env == "development",
		Service: "livestock-api",
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Redis is always required: the sign-in rate limiter and alert dedup run
	// on it even when the key-value store uses another backend.
	rdb, err := redisinfra.Connect(ctx, redisinfra.Config{
		Addr: cfg.Redis.Addr,
		DB:   cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to redis")
	}
	defer func() { _ = rdb.Close() }()

	var store ports.Store
	switch cfg.StoreBackend {
	case "redis":
		store = redisinfra.NewKVStore(rdb)
	case "memory":
		log.Warn().Msg("using in-memory store, data will not survive restarts")
		store = memory.New()
	case "mongo":
		client, db, err := mongoinfra.Connect(ctx, mongoinfra.Config{
			URI:      cfg.Mongo.URI,
			Database: cfg.Mongo.Database,
		})
		if err != nil {
			log.Fatal().Err(err).Msg("failed to connect to mongodb")
		}
		defer func() { _ = client.Disconnect(context.Background()) }()
		store = mongoinfra.NewKVStore(db)
	default:
		log.Fatal().Str("backend", cfg.StoreBackend).Msg("unknown store backend")
	}

	e, dispatcher := api.NewRouter(cfg, store, rdb, log)
	dispatcher.Start(ctx)

	go func() {
		if err := e.Start(":" + cfg.Port); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server error")
		}
	}()
	log.Info().
		Str("port", cfg.Port).
		Str("store", cfg.StoreBackend).
		Str("env", cfg.Env).
		Msg("server started")

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
	log.Info().Msg("server stopped")
}
