package game

import (
	"github.com/rs/zerolog"

	"github.com/iamasit07/connect4-engine/internal/service/bot"
)

// Service is the entry point for position analysis (facade)
type Service struct {
	Engine   *bot.Engine
	MaxDepth int
	logger   zerolog.Logger
}

func NewService(engine *bot.Engine, maxDepth int, logger zerolog.Logger) *Service {
	return &Service{
		Engine:   engine,
		MaxDepth: maxDepth,
		logger:   logger.With().Str("component", "analysis").Logger(),
	}
}
