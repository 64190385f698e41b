package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/Maleklabbaci/DARI-WEBSITE-sub000/internal/api"
	"github.com/Maleklabbaci/DARI-WEBSITE-sub000/internal/core/service"
	"github.com/Maleklabbaci/DARI-WEBSITE-sub000/internal/infrastructure/config"
	"github.com/Maleklabbaci/DARI-WEBSITE-sub000/internal/infrastructure/db/mongo"
	"github.com/Maleklabbaci/DARI-WEBSITE-sub000/internal/infrastructure/db/redis"
	"github.com/Maleklabbaci/DARI-WEBSITE-sub000/internal/infrastructure/generator"
	"github.com/Maleklabbaci/DARI-WEBSITE-sub000/internal/infrastructure/queue"
	"github.com/Maleklabbaci/DARI-WEBSITE-sub000/pkg/logger"
)

const (
	tokenTTL        = 24 * time.Hour
	shutdownTimeout = 10 * time.Second
)

// @title        DARI Marketplace API
// @version      1.0
// @description  Real-estate marketplace API: listings, wallet, boosts and messaging.
//
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	mongoClient, db, err := mongo.Connect(ctx, mongo.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongo connection failed")
	}
	defer func() {
		_ = mongoClient.Disconnect(context.Background())
	}()

	rdb, err := redis.Connect(ctx, redis.Config{
		Addr: cfg.Redis.Addr,
		DB:   cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("redis connection failed")
	}
	defer func() {
		_ = rdb.Close()
	}()

	accountRepo := mongo.NewAccountRepository(db)
	listingRepo := mongo.NewListingRepository(db)
	boostRepo := mongo.NewBoostRepository(db)
	threadRepo := mongo.NewThreadRepository(db)

	for _, ensure := range []func(context.Context) error{
		accountRepo.EnsureIndexes,
		listingRepo.EnsureIndexes,
		boostRepo.EnsureIndexes,
		threadRepo.EnsureIndexes,
	} {
		if err := ensure(ctx); err != nil {
			log.Fatal().Err(err).Msg("index creation failed")
		}
	}

	if err := mongo.SeedListings(ctx, listingRepo, log); err != nil {
		log.Warn().Err(err).Msg("demo catalogue seed failed")
	}

	sessionStore := redis.NewSessionStore(rdb)
	notificationStore := redis.NewNotificationStore(rdb)

	delay := service.TxDelay(cfg.SimLatency)

	walletSvc := service.NewWalletService(accountRepo, sessionStore, delay, cfg.AllowNegativeBalance, log)
	authSvc := service.NewAuthService(accountRepo, sessionStore, delay, cfg.JWTSecret, tokenTTL)

	alertSvc := service.NewAlertService(accountRepo, notificationStore, log)
	dispatcher := queue.NewDispatcher(cfg.PublishWorkers, alertSvc, log)
	dispatcher.Start(ctx)

	genClient := generator.NewClient(cfg.Generator.URL, cfg.Generator.APIKey, cfg.Generator.RPS)

	listingSvc := service.NewListingService(listingRepo, walletSvc, genClient, dispatcher, log)
	boostSvc := service.NewBoostService(boostRepo, listingRepo, walletSvc, delay, log)
	messagingSvc := service.NewMessagingService(threadRepo, listingRepo, log)

	e := api.NewRouter(api.Dependencies{
		Auth:          authSvc,
		Wallet:        walletSvc,
		Listings:      listingSvc,
		Boosts:        boostSvc,
		Messaging:     messagingSvc,
		Sessions:      sessionStore,
		Notifications: notificationStore,
		Mongo:         db,
		Redis:         rdb,
		JWTSecret:     cfg.JWTSecret,
		DefaultLocale: cfg.DefaultLocale,
		Logger:        log,
	})

	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("server starting")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped")
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
