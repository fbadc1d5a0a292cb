package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/iamasit07/connect4-engine/internal/domain"
	"github.com/iamasit07/connect4-engine/internal/service/bot"
	"github.com/iamasit07/connect4-engine/internal/service/game"
)

type AnalysisHandler struct {
	Service *game.Service
}

func NewAnalysisHandler(s *game.Service) *AnalysisHandler {
	return &AnalysisHandler{Service: s}
}

type rulesResponse struct {
	Rows           int `json:"rows"`
	Columns        int `json:"columns"`
	ToWin          int `json:"toWin"`
	DefaultDepth   int `json:"defaultDepth"`
	MaxSearchDepth int `json:"maxSearchDepth"`
	WinScore       int `json:"winScore"`
}

// Rules returns the fixed grid constants and search limits
func (h *AnalysisHandler) Rules(c *gin.Context) {
	c.JSON(http.StatusOK, rulesResponse{
		Rows:           domain.Rows,
		Columns:        domain.Columns,
		ToWin:          domain.ToWin,
		DefaultDepth:   h.Service.Engine.Depth(),
		MaxSearchDepth: h.Service.MaxDepth,
		WinScore:       bot.WinScore,
	})
}

// Analyze replays the posted moves and returns the position with the best move
func (h *AnalysisHandler) Analyze(c *gin.Context) {
	var req game.Request
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	result, err := h.Service.Analyze(req, nil)
	if err != nil {
		c.JSON(StatusFor(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, result)
}

func Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// StatusFor maps analysis errors to HTTP status codes.
func StatusFor(err error) int {
	switch {
	case errors.Is(err, game.ErrInvalidDepth):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrColumnOutOfRange),
		errors.Is(err, domain.ErrColumnFull),
		errors.Is(err, domain.ErrGameOver):
		return http.StatusUnprocessableEntity
	case errors.Is(err, bot.ErrTreeTooLarge):
		return http.StatusServiceUnavailable
	}
	return http.StatusInternalServerError
}
