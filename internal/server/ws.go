// Package server is the WebSocket transport boundary: it accepts
// connections, decodes client intents, hands them to the game engine and
// broadcasts the resulting snapshots to every participant of a session.
package server

import (
	"net/http"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/tartapies/tartapies-server-go/internal/config"
	"github.com/tartapies/tartapies-server-go/internal/game"
	"github.com/tartapies/tartapies-server-go/internal/session"
)

// StartWebSocketServer runs the WebSocket listener. Blocks until the
// listener fails.
func StartWebSocketServer(cfg config.WebSocketConfig, sessions *session.Manager, engine *game.Engine, store SnapshotSaver, logger *zap.Logger) error {
	hub := NewHub(cfg.WriteTimeout, logger)

	upgrader := websocket.Upgrader{
		CheckOrigin: originChecker(cfg.AllowedOrigins),
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/ws", func(w http.ResponseWriter, r *http.Request) {
		ws, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			logger.Debug("websocket upgrade failed", zap.Error(err))
			return
		}
		conn := newConnection(ws, hub, sessions, engine, store, logger)
		go conn.readLoop()
	})
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	logger.Info("websocket server listening", zap.String("address", cfg.Address))
	return http.ListenAndServe(cfg.Address, mux)
}

func originChecker(allowed []string) func(*http.Request) bool {
	for _, o := range allowed {
		if o == "*" {
			return func(*http.Request) bool { return true }
		}
	}
	set := make(map[string]bool, len(allowed))
	for _, o := range allowed {
		set[o] = true
	}
	return func(r *http.Request) bool {
		return set[r.Header.Get("Origin")]
	}
}
