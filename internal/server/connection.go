package server

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/tartapies/tartapies-server-go/internal/game"
	"github.com/tartapies/tartapies-server-go/internal/session"
)

// Intent is one inbound client message. Unused fields stay empty; the
// type discriminates.
type Intent struct {
	Type        string `json:"type"`
	SessionID   string `json:"session_id,omitempty"`
	DisplayName string `json:"display_name,omitempty"`
	JoinCode    string `json:"join_code,omitempty"`
	InstanceID  string `json:"instance_id,omitempty"`
	TargetID    string `json:"target_id,omitempty"`
	Method      string `json:"method,omitempty"`
	Ability     string `json:"ability,omitempty"`
}

// ServerMessage is one outbound message: a full-state snapshot, the
// join acknowledgement carrying the caller's player id, or a transport
// error (game-level rejections are silent by design).
type ServerMessage struct {
	Type     string            `json:"type"`
	PlayerID string            `json:"player_id,omitempty"`
	State    *game.SessionView `json:"state,omitempty"`
	Message  string            `json:"message,omitempty"`
}

// Connection is one client's WebSocket attachment.
type Connection struct {
	ws        *websocket.Conn
	writeMu   sync.Mutex
	id        string
	SessionID string
	playerID  string

	hub      *Hub
	sessions *session.Manager
	engine   *game.Engine
	store    SnapshotSaver
	logger   *zap.Logger
}

// SnapshotSaver persists the latest snapshot of a session. Saves are
// best-effort: a failing store never affects the game.
type SnapshotSaver interface {
	Save(ctx context.Context, sessionID string, view *game.SessionView) error
}

func newConnection(ws *websocket.Conn, hub *Hub, sessions *session.Manager, engine *game.Engine, store SnapshotSaver, logger *zap.Logger) *Connection {
	return &Connection{
		ws:       ws,
		id:       uuid.NewString(),
		hub:      hub,
		sessions: sessions,
		engine:   engine,
		store:    store,
		logger:   logger,
	}
}

// readLoop decodes intents in arrival order and routes them to the
// engine. It exits, unregistering the connection, on the first read
// error.
func (c *Connection) readLoop() {
	defer func() {
		c.hub.Leave(c)
		c.ws.Close()
	}()

	for {
		_, raw, err := c.ws.ReadMessage()
		if err != nil {
			return
		}
		var intent Intent
		if err := json.Unmarshal(raw, &intent); err != nil {
			c.logger.Debug("malformed intent", zap.Error(err))
			continue
		}
		c.handle(intent)
	}
}

func (c *Connection) handle(intent Intent) {
	if intent.Type == "join" {
		c.handleJoin(intent)
		return
	}

	if c.SessionID == "" || c.playerID == "" {
		return
	}
	sess, ok := c.sessions.Get(c.SessionID)
	if !ok {
		return
	}

	var (
		view    *game.SessionView
		mutated bool
	)
	switch intent.Type {
	case "play_card":
		view, mutated = c.engine.PlayCard(sess, c.playerID, intent.InstanceID, intent.TargetID)
	case "draw_card":
		view, mutated = c.engine.DrawCard(sess, c.playerID)
	case "end_turn":
		view, mutated = c.engine.EndTurn(sess, c.playerID)
	case "respond_to_stack":
		view, mutated = c.engine.RespondToStack(sess, c.playerID, intent.InstanceID, intent.TargetID)
	case "resolve_stack":
		view, mutated = c.engine.ResolveStack(sess, c.playerID)
	case "pass_action":
		view, mutated = c.engine.PassAction(sess, c.playerID)
	case "activate_potion":
		view, mutated = c.engine.ActivateCard(sess, c.playerID, intent.InstanceID, intent.Method)
	case "use_hero_ability":
		view, mutated = c.engine.UseHeroAbility(sess, c.playerID, intent.Ability)
	case "snapshot":
		c.send(ServerMessage{Type: "state", State: c.engine.Snapshot(sess)})
		return
	default:
		c.logger.Debug("unknown intent type", zap.String("type", intent.Type))
		return
	}

	// Rejected intents mutate nothing and broadcast nothing: the sender
	// observes the failure only by the action not happening.
	if !mutated {
		return
	}
	c.sessions.Touch(c.SessionID)
	c.hub.Broadcast(c.SessionID, ServerMessage{Type: "state", State: view})
	c.persist(view)
}

func (c *Connection) handleJoin(intent Intent) {
	if intent.SessionID == "" || intent.DisplayName == "" {
		c.send(ServerMessage{Type: "error", Message: "session_id and display_name are required"})
		return
	}

	_, player, view, err := c.sessions.CreateOrJoin(intent.SessionID, intent.DisplayName, c.id, intent.JoinCode)
	if err != nil {
		c.send(ServerMessage{Type: "error", Message: err.Error()})
		return
	}

	c.playerID = player.ID
	c.hub.JoinSession(c, intent.SessionID)
	c.send(ServerMessage{Type: "joined", PlayerID: player.ID, State: view})
	c.hub.Broadcast(intent.SessionID, ServerMessage{Type: "state", State: view})
	c.persist(view)
}

func (c *Connection) persist(view *game.SessionView) {
	if c.store == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := c.store.Save(ctx, c.SessionID, view); err != nil {
		c.logger.Warn("snapshot save failed",
			zap.String("session_id", c.SessionID),
			zap.Error(err),
		)
	}
}

func (c *Connection) send(msg ServerMessage) {
	data, err := json.Marshal(msg)
	if err != nil {
		return
	}
	c.writeMu.Lock()
	defer c.writeMu.Unlock()
	c.ws.SetWriteDeadline(time.Now().Add(c.hub.writeTimeout))
	if err := c.ws.WriteMessage(websocket.TextMessage, data); err != nil {
		c.logger.Debug("write failed", zap.Error(err))
	}
}
