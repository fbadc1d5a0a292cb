package websocket

import (
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"

	"github.com/iamasit07/connect4-engine/internal/service/bot"
	"github.com/iamasit07/connect4-engine/internal/service/game"
	"github.com/iamasit07/connect4-engine/pkg/uid"
)

const (
	defaultPongWait = 60 * time.Second
	writeWait       = 10 * time.Second
)

// ClientMessage asks for one position to be analyzed. Every message stands
// alone: the server keeps no game between messages.
type ClientMessage struct {
	Type  string `json:"type"`
	ID    string `json:"id,omitempty"`
	Moves []int  `json:"moves"`
	Depth *int   `json:"depth,omitempty"`
}

type ServerMessage struct {
	Type     string         `json:"type"`
	ID       string         `json:"id,omitempty"`
	Position *game.Position `json:"position,omitempty"`
	Column   *int           `json:"column,omitempty"`
	Score    *int           `json:"score,omitempty"`
	Depth    *int           `json:"depth,omitempty"`
	Message  string         `json:"message,omitempty"`
}

// Handler streams analysis results over a WebSocket
type Handler struct {
	Service  *game.Service
	Upgrader websocket.Upgrader
	// PongWait is how long a silent client is kept; pings go out at half of it.
	PongWait time.Duration
	logger   zerolog.Logger
}

func NewHandler(s *game.Service, logger zerolog.Logger) *Handler {
	return &Handler{
		Service: s,
		Upgrader: websocket.Upgrader{
			// origins are checked by the CORS middleware in front of this route
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		},
		PongWait: defaultPongWait,
		logger: logger.With().Str("component", "ws").Logger(),
	}
}

// HandleWebSocket upgrades the connection and serves it until the client leaves
func (h *Handler) HandleWebSocket(c *gin.Context) {
	conn, err := h.Upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.logger.Warn().Err(err).Msg("Upgrade error")
		return
	}

	h.handleConnection(newConnection(conn))
}

// connection serializes writes: gorilla allows one concurrent writer only.
type connection struct {
	conn    *websocket.Conn
	writeMu sync.Mutex
}

func newConnection(conn *websocket.Conn) *connection {
	return &connection{conn: conn}
}

func (c *connection) send(msg ServerMessage) error {
	c.writeMu.Lock()
	defer c.writeMu.Unlock()

	c.conn.SetWriteDeadline(time.Now().Add(writeWait))
	return c.conn.WriteJSON(msg)
}

func (h *Handler) handleConnection(c *connection) {
	defer c.conn.Close()

	c.conn.SetReadDeadline(time.Now().Add(h.PongWait))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(h.PongWait))
		return nil
	})

	// Keep-alive pinger
	done := make(chan struct{})
	defer close(done)
	go func() {
		ticker := time.NewTicker(h.PongWait / 2)
		defer ticker.Stop()
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				if err := c.conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(writeWait)); err != nil {
					return
				}
			}
		}
	}()

	for {
		_, data, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				h.logger.Warn().Err(err).Msg("Read error")
			}
			return
		}
		c.conn.SetReadDeadline(time.Now().Add(h.PongWait))

		var msg ClientMessage
		if err := json.Unmarshal(data, &msg); err != nil {
			if c.send(ServerMessage{Type: "error", Message: "invalid JSON"}) != nil {
				return
			}
			continue
		}

		if err := h.handleMessage(c, msg); err != nil {
			h.logger.Warn().Err(err).Str("request_id", msg.ID).Msg("Write error")
			return
		}
	}
}

// handleMessage answers one request. Only write failures are returned;
// analysis failures are reported to the client as error frames.
func (h *Handler) handleMessage(c *connection, msg ClientMessage) error {
	if msg.ID == "" {
		msg.ID = uid.NewRequestID()
	}

	if msg.Type != "analyze" {
		return c.send(ServerMessage{Type: "error", ID: msg.ID, Message: "unknown message type: " + msg.Type})
	}

	g, pos, err := h.Service.Inspect(msg.Moves)
	if err != nil {
		return c.send(ServerMessage{Type: "error", ID: msg.ID, Message: err.Error()})
	}
	if err := c.send(ServerMessage{Type: "position", ID: msg.ID, Position: &pos}); err != nil {
		return err
	}

	var writeErr error
	result, err := h.Service.Evaluate(g, pos, msg.Depth, func(cs bot.ColumnScore) {
		if writeErr != nil {
			return
		}
		writeErr = c.send(ServerMessage{Type: "column_score", ID: msg.ID, Column: &cs.Column, Score: &cs.Score})
	})
	// a long search must not count against the pong window
	c.conn.SetReadDeadline(time.Now().Add(h.PongWait))
	if writeErr != nil {
		return writeErr
	}
	if err != nil {
		return c.send(ServerMessage{Type: "error", ID: msg.ID, Message: err.Error()})
	}

	if result.Best == nil {
		return c.send(ServerMessage{Type: "game_over", ID: msg.ID, Position: &result.Position})
	}
	return c.send(ServerMessage{
		Type:   "best_move",
		ID:     msg.ID,
		Column: &result.Best.Column,
		Score:  &result.Best.Score,
		Depth:  &result.Depth,
	})
}
