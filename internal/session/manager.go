// Package session owns the registry of live game sessions: creation on
// first join, lookup, removal and the idle janitor. The engine never
// sees the registry; it operates on one session at a time.
package session

import (
	"context"
	"errors"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/tartapies/tartapies-server-go/internal/game"
)

var (
	// ErrSessionFull is returned when a third distinct display name
	// tries to join.
	ErrSessionFull = errors.New("session already has two players")
	// ErrBadJoinCode is returned when a private session's join code
	// does not match.
	ErrBadJoinCode = errors.New("invalid join code")
	// ErrTooManySessions is returned when the registry is at capacity.
	ErrTooManySessions = errors.New("session limit reached")
)

type entry struct {
	sess         *game.Session
	joinCodeHash []byte
	lastActivity time.Time
}

// Manager is the mutex-guarded registry of live sessions.
type Manager struct {
	mu          sync.RWMutex
	engine      *game.Engine
	sessions    map[string]*entry
	maxSessions int
	idleTimeout time.Duration
	logger      *zap.Logger
}

// NewManager creates the registry. idleTimeout of zero disables the
// janitor.
func NewManager(engine *game.Engine, maxSessions int, idleTimeout time.Duration, logger *zap.Logger) *Manager {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Manager{
		engine:      engine,
		sessions:    make(map[string]*entry),
		maxSessions: maxSessions,
		idleTimeout: idleTimeout,
		logger:      logger,
	}
}

// CreateOrJoin creates the session on first use and admits the caller.
// A rejoining display name reattaches and simply gets the session back.
// The join code is only enforced when the creator set one; it is stored
// as a bcrypt hash, never in the clear.
func (m *Manager) CreateOrJoin(sessionID, displayName, connectionID, joinCode string) (*game.Session, *game.Player, *game.SessionView, error) {
	m.mu.Lock()
	ent, ok := m.sessions[sessionID]
	if !ok {
		if m.maxSessions > 0 && len(m.sessions) >= m.maxSessions {
			m.mu.Unlock()
			return nil, nil, nil, ErrTooManySessions
		}
		ent = &entry{sess: m.engine.NewSession(sessionID), lastActivity: time.Now()}
		if joinCode != "" {
			hash, err := bcrypt.GenerateFromPassword([]byte(joinCode), bcrypt.DefaultCost)
			if err != nil {
				m.mu.Unlock()
				return nil, nil, nil, err
			}
			ent.joinCodeHash = hash
		}
		m.sessions[sessionID] = ent
		m.logger.Info("session created",
			zap.String("session_id", sessionID),
			zap.Bool("private", ent.joinCodeHash != nil),
		)
	}
	ent.lastActivity = time.Now()
	m.mu.Unlock()

	if ent.joinCodeHash != nil {
		if bcrypt.CompareHashAndPassword(ent.joinCodeHash, []byte(joinCode)) != nil {
			return nil, nil, nil, ErrBadJoinCode
		}
	}

	player, view, ok := m.engine.Join(ent.sess, displayName, connectionID)
	if !ok {
		return nil, nil, nil, ErrSessionFull
	}
	return ent.sess, player, view, nil
}

// Get returns a live session.
func (m *Manager) Get(sessionID string) (*game.Session, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	ent, ok := m.sessions[sessionID]
	if !ok {
		return nil, false
	}
	return ent.sess, true
}

// Touch records activity on a session for the idle janitor.
func (m *Manager) Touch(sessionID string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if ent, ok := m.sessions[sessionID]; ok {
		ent.lastActivity = time.Now()
	}
}

// Remove drops a session from the registry.
func (m *Manager) Remove(sessionID string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.sessions[sessionID]; ok {
		delete(m.sessions, sessionID)
		m.logger.Info("session removed", zap.String("session_id", sessionID))
	}
}

// Count returns the number of live sessions.
func (m *Manager) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}

// RunJanitor periodically evicts sessions idle beyond the timeout. No
// in-game timeout exists: an unresponsive player pauses their session
// indefinitely, and this is the process-level backstop.
func (m *Manager) RunJanitor(ctx context.Context) {
	if m.idleTimeout <= 0 {
		return
	}
	ticker := time.NewTicker(m.idleTimeout / 2)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			m.evictIdle()
		}
	}
}

func (m *Manager) evictIdle() {
	cutoff := time.Now().Add(-m.idleTimeout)
	m.mu.Lock()
	defer m.mu.Unlock()
	for id, ent := range m.sessions {
		if ent.lastActivity.Before(cutoff) {
			delete(m.sessions, id)
			m.logger.Info("idle session evicted", zap.String("session_id", id))
		}
	}
}
