package server

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

// Hub tracks which connections belong to which session and fans
// snapshots out to all of a session's participants.
type Hub struct {
	mu           sync.RWMutex
	sessionConns map[string][]*Connection
	writeTimeout time.Duration
	logger       *zap.Logger
}

// NewHub creates an empty hub.
func NewHub(writeTimeout time.Duration, logger *zap.Logger) *Hub {
	if logger == nil {
		logger = zap.NewNop()
	}
	if writeTimeout <= 0 {
		writeTimeout = 10 * time.Second
	}
	return &Hub{
		sessionConns: make(map[string][]*Connection),
		writeTimeout: writeTimeout,
		logger:       logger,
	}
}

// JoinSession attaches a connection to a session's broadcast group.
func (h *Hub) JoinSession(c *Connection, sessionID string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	c.SessionID = sessionID
	h.sessionConns[sessionID] = append(h.sessionConns[sessionID], c)
}

// Leave detaches a connection from its session group.
func (h *Hub) Leave(c *Connection) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if c.SessionID == "" {
		return
	}
	conns := h.sessionConns[c.SessionID]
	for i, conn := range conns {
		if conn == c {
			h.sessionConns[c.SessionID] = append(conns[:i], conns[i+1:]...)
			break
		}
	}
	if len(h.sessionConns[c.SessionID]) == 0 {
		delete(h.sessionConns, c.SessionID)
	}
}

// Broadcast sends a message to every connection in a session.
func (h *Hub) Broadcast(sessionID string, msg any) {
	data, err := json.Marshal(msg)
	if err != nil {
		h.logger.Error("broadcast marshal failed", zap.Error(err))
		return
	}

	h.mu.RLock()
	conns := append([]*Connection(nil), h.sessionConns[sessionID]...)
	h.mu.RUnlock()

	for _, c := range conns {
		c.writeMu.Lock()
		c.ws.SetWriteDeadline(time.Now().Add(h.writeTimeout))
		err := c.ws.WriteMessage(websocket.TextMessage, data)
		c.writeMu.Unlock()
		if err != nil {
			h.logger.Debug("broadcast write failed",
				zap.String("session_id", sessionID),
				zap.Error(err),
			)
		}
	}
}
