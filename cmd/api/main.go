package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/personal-diary/diary-api/internal/api"
	"github.com/personal-diary/diary-api/internal/core/service"
	"github.com/personal-diary/diary-api/internal/infrastructure/config"
	mongodb "github.com/personal-diary/diary-api/internal/infrastructure/db/mongo"
	redisdb "github.com/personal-diary/diary-api/internal/infrastructure/db/redis"
	"github.com/personal-diary/diary-api/internal/infrastructure/queue"
	"github.com/personal-diary/diary-api/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx)
	if err != nil {
		// Logger is not up yet.
		panic(err)
	}

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	client, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongodb connection failed")
	}
	defer func() { _ = client.Disconnect(context.Background()) }()

	rdb, err := redisdb.Connect(ctx, redisdb.Config{
		Addr: cfg.Redis.Addr,
		DB:   cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("redis connection failed")
	}
	defer func() { _ = rdb.Close() }()

	userRepo := mongodb.NewUserRepository(db)
	if err := userRepo.EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("user index creation failed")
	}
	entryRepo := mongodb.NewEntryRepository(db)
	if err := entryRepo.EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("entry index creation failed")
	}

	auditService := service.NewAuditService(mongodb.NewAuditRepository(db), log)
	dispatcher := queue.NewDispatcher(0, auditService, log)
	dispatcher.Start(ctx)

	e := api.NewRouter(db, rdb, api.Options{
		JWTSecret:        cfg.Auth.JWTSecret,
		TokenTTL:         cfg.Auth.TokenTTL(),
		LoginMaxAttempts: cfg.Auth.LoginMaxAttempts,
		LoginWindow:      cfg.Auth.LoginWindow(),
		AuditDispatcher:  dispatcher,
	})

	go func() {
		if err := e.Start(":" + cfg.Port); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server stopped")
		}
	}()

	log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("diary api started")

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("shutdown failed")
	}
}
