package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"trivia-backend/internal/config"
	"trivia-backend/internal/database"
	"trivia-backend/internal/logger"
	"trivia-backend/internal/router"
	"trivia-backend/internal/ws"

	"github.com/gin-gonic/gin"
)

// @title           Trivia API
// @version         1.0
// @description     Question bank, category listing, search and quiz play for the trivia game
// @host            localhost:8080
// @BasePath        /

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger, err := logger.New(logger.Options{
		Level:  cfg.Logger.Level,
		File:   cfg.Logger.File,
		Pretty: cfg.Logger.Pretty,
	})
	if err != nil {
		log.Fatalf("create logger: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	db, err := database.Connect(cfg.Database, logger)
	if err != nil {
		logger.Fatal().Err(err).Msg("connect to database")
	}
	defer func() {
		if err := database.Close(db); err != nil {
			logger.Error().Err(err).Msg("close database")
		}
	}()

	if cfg.Database.AutoMigrate {
		if err := database.AutoMigrate(db); err != nil {
			logger.Fatal().Err(err).Msg("migrate database")
		}
		logger.Info().Msg("database migrated")
	}

	if cfg.Database.SeedCategories {
		inserted, err := database.SeedCategories(ctx, db)
		if err != nil {
			logger.Fatal().Err(err).Msg("seed categories")
		}
		if inserted > 0 {
			logger.Info().Int("categories", inserted).Msg("categories seeded")
		}
	}

	gin.SetMode(cfg.Server.GinMode)

	r := router.New(router.Dependencies{
		DB:     db,
		Logger: logger,
		Hub:    ws.NewHub(logger),
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info().Str("addr", srv.Addr).Msg("server starting")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal().Err(err).Msg("start server")
		}
	}()

	<-ctx.Done()
	logger.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("shutdown server")
	}
}
