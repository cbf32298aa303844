package main

import (
	"context"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/artisio/marketplace-api/docs"
	"github.com/artisio/marketplace-api/internal/api"
	"github.com/artisio/marketplace-api/internal/core/service"
	"github.com/artisio/marketplace-api/internal/infrastructure/config"
	mongostore "github.com/artisio/marketplace-api/internal/infrastructure/db/mongo"
	redisstore "github.com/artisio/marketplace-api/internal/infrastructure/db/redis"
	"github.com/artisio/marketplace-api/internal/infrastructure/queue"
	"github.com/artisio/marketplace-api/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx)
	if err != nil {
		// The logger is not configured yet, so build a bare one to report
		// the startup failure before exiting.
		bootLog := logger.New(logger.Options{})
		bootLog.Fatal().Err(err).Msg("configuration invalid")
	}

	log := logger.New(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: !cfg.Production(),
	})

	mongoClient, db, err := mongostore.Connect(ctx, mongostore.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongodb connection failed")
	}
	defer func() {
		if err := mongoClient.Disconnect(context.Background()); err != nil {
			log.Error().Err(err).Msg("mongodb disconnect failed")
		}
	}()

	rdb, err := redisstore.Connect(ctx, redisstore.Config{
		Addr: cfg.Redis.Addr,
		DB:   cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("redis connection failed")
	}
	defer func() {
		if err := rdb.Close(); err != nil {
			log.Error().Err(err).Msg("redis close failed")
		}
	}()

	userRepo := mongostore.NewUserRepository(db)
	artworkRepo := mongostore.NewArtworkRepository(db)
	orderRepo := mongostore.NewOrderRepository(db)

	for _, idx := range []interface {
		EnsureIndexes(context.Context) error
	}{userRepo, artworkRepo, orderRepo} {
		if err := idx.EnsureIndexes(ctx); err != nil {
			log.Fatal().Err(err).Msg("index creation failed")
		}
	}

	// View counter pipeline: sharded dispatcher feeding redis-deduped
	// mongo increments.
	dedup := redisstore.NewViewDeduper(rdb)
	viewService := service.NewViewService(artworkRepo, userRepo, dedup, log)
	dispatcher := queue.NewDispatcher(0, viewService, log)
	dispatcher.Start(ctx)

	e := api.NewRouter(cfg, db, rdb, dispatcher, log)

	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("marketplace api listening")
		if err := e.Start(":" + cfg.Port); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server stopped unexpectedly")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}
