package http

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/iamasit07/connect4-engine/internal/transport/http/middleware"
)

type RouterConfig struct {
	Analysis       *AnalysisHandler
	Stream         gin.HandlerFunc
	AllowedOrigins []string
	JWTSecret      string
	Logger         zerolog.Logger
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggerMiddleware(cfg.Logger))
	router.Use(middleware.CORSMiddleware(cfg.AllowedOrigins, cfg.Logger))

	// Public Routes
	router.GET("/healthz", Health)
	router.GET("/api/rules", cfg.Analysis.Rules)

	// Protected Routes
	protected := router.Group("/")
	protected.Use(middleware.AuthMiddleware(cfg.JWTSecret))
	{
		protected.POST("/api/analyze", cfg.Analysis.Analyze)
		if cfg.Stream != nil {
			protected.GET("/ws/analyze", cfg.Stream)
		}
	}

	return router
}
