package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/iamasit07/connect4-engine/internal/config"
	"github.com/iamasit07/connect4-engine/internal/service/bot"
	"github.com/iamasit07/connect4-engine/internal/service/game"
	transportHttp "github.com/iamasit07/connect4-engine/internal/transport/http"
	"github.com/iamasit07/connect4-engine/internal/transport/websocket"
	"github.com/iamasit07/connect4-engine/pkg/logging"
)

func main() {
	config.LoadEnv()
	cfg := config.LoadConfig()

	logger := logging.New(os.Stdout, cfg.LogLevel, cfg.LogPretty)
	log.Logger = logger
	gin.SetMode(gin.ReleaseMode)

	// 1. Search engine
	engine := bot.NewEngine(
		bot.WithDepth(cfg.SearchDepth),
		bot.WithMaxNodes(cfg.MaxTreeNodes),
		bot.WithParallel(cfg.ParallelSearch),
		bot.WithLogger(logger),
	)

	// 2. Services
	analysisService := game.NewService(engine, cfg.MaxSearchDepth, logger)

	// 3. Handlers
	analysisHandler := transportHttp.NewAnalysisHandler(analysisService)
	wsHandler := websocket.NewHandler(analysisService, logger)

	if cfg.JWTSecret == "" {
		logger.Warn().Msg("JWT_SECRET not set, analysis endpoints are unauthenticated")
	}

	router := transportHttp.NewRouter(transportHttp.RouterConfig{
		Analysis:       analysisHandler,
		Stream:         wsHandler.HandleWebSocket,
		AllowedOrigins: cfg.AllowedOrigins,
		JWTSecret:      cfg.JWTSecret,
		Logger:         logger,
	})

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		logger.Info().
			Str("port", cfg.Port).
			Int("depth", cfg.SearchDepth).
			Int("max_depth", cfg.MaxSearchDepth).
			Bool("parallel", cfg.ParallelSearch).
			Msg("Server starting")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal().Err(err).Msg("Server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	logger.Info().Msg("Server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Fatal().Err(err).Msg("Server forced to shutdown")
	}

	logger.Info().Msg("Server exited gracefully")
}
