package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"skill-swap-service/api"
	"skill-swap-service/internal/config"
	"skill-swap-service/internal/database"
	"skill-swap-service/internal/handler"
	"skill-swap-service/internal/repository"
	"skill-swap-service/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/sirupsen/logrus"
)

func main() {
	// Логгер
	logger := logrus.New()
	logger.SetLevel(logrus.InfoLevel)
	logger.SetFormatter(&logrus.JSONFormatter{})

	// Конфиг
	cfg, err := config.LoadConfig()
	switch {
	case errors.Is(err, config.ErrInvalidPolicy):
		logger.Fatalf("Policy load failed: %v", err)
	case err != nil:
		logger.Warnf("config loaded with warnings: %v", err)
	}

	if level, err := logrus.ParseLevel(cfg.LogLevel); err == nil {
		logger.SetLevel(level)
	} else {
		logger.Warnf("unknown LOG_LEVEL %q, using info", cfg.LogLevel)
	}

	if cfg.JWTSecret == "" {
		logger.Warnf("JWT_SECRET is empty: actor is taken from %s header", handler.ActorHeader)
	}

	// База данных (database/sql)
	db, err := database.NewPostgresDB(cfg)
	if err != nil {
		logger.Fatalf("Database connection failed: %v", err)
	}
	defer db.Close()
	logger.Info("Database connected")

	// SQLC queries
	queries := database.New(db)

	// Репозитории
	userRepo := repository.NewUserRepository(db, queries)
	skillRepo := repository.NewSkillRepository(queries)
	swapRepo := repository.NewSwapRepository(db, queries)
	feedbackRepo := repository.NewFeedbackRepository(db, queries)
	statsRepo := repository.NewStatsRepository(queries)

	// Use Cases
	var clock usecase.Clock
	matchPolicy := cfg.Policy.MatchPolicy()
	feedbackUC := usecase.NewFeedbackUseCase(feedbackRepo, swapRepo, userRepo, matchPolicy, clock, logger)
	swapUC := usecase.NewSwapUseCase(swapRepo, userRepo, skillRepo, feedbackUC, cfg.Policy.ResponseWindow, matchPolicy, clock, logger)
	matchUC := usecase.NewMatchUseCase(skillRepo, userRepo, matchPolicy)
	skillUC := usecase.NewSkillUseCase(skillRepo, userRepo, clock)
	userUC := usecase.NewUserUseCase(userRepo, matchPolicy)
	statsUC := usecase.NewStatsUseCase(statsRepo)

	// Echo + Handlers
	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())
	e.Use(handler.AuthMiddleware(cfg.JWTSecret, logger))
	e.Use(handler.LoggingMiddleware(logger))

	// Handlers
	apiHandler := handler.NewAPIHandler(userUC, skillUC, swapUC, matchUC, feedbackUC, statsUC, logger)
	api.RegisterHandlers(e, apiHandler)

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	// Запуск сервера
	go func() {
		if err := e.Start(":" + cfg.ServerPort); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Errorf("Server stopped: %v", err)
		}
	}()

	// Graceful shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	logger.Info("Shutting down...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		logger.Fatalf("Shutdown failed: %v", err)
	}

	logger.Info("Server exited")
}
