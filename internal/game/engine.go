package game

import (
	"go.uber.org/zap"
)

// Engine is the intent boundary of the core. Every method locks the
// session, applies one intent as a discrete step and returns the fresh
// snapshot together with whether the session mutated. Rejected intents
// mutate nothing and return ok=false; no error ever crosses this
// boundary for an illegal intent (fail-closed, fail-quiet).
type Engine struct {
	rng    Randomizer
	logger *zap.Logger
}

// NewEngine creates the engine. A nil randomizer gets the time-seeded
// default; tests inject deterministic sequences.
func NewEngine(logger *zap.Logger, rng Randomizer) *Engine {
	if logger == nil {
		logger = zap.NewNop()
	}
	if rng == nil {
		rng = NewRandomizer()
	}
	return &Engine{rng: rng, logger: logger}
}

// NewSession creates an empty session owned by this engine.
func (e *Engine) NewSession(id string) *Session {
	return NewSession(id, e.rng, e.logger)
}

// Join admits a participant (or reattaches a rejoining display name) and
// returns the player record plus the snapshot. A third distinct name is
// ignored: nil player, ok=false.
func (e *Engine) Join(s *Session, displayName, connectionID string) (*Player, *SessionView, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p := s.join(displayName, connectionID)
	if p == nil {
		e.logger.Debug("join ignored, session full",
			zap.String("session_id", s.ID),
			zap.String("display_name", displayName),
		)
		return nil, nil, false
	}
	return p, s.view(), true
}

// Snapshot returns the current full-state view, e.g. for re-sending to a
// reconnected client.
func (e *Engine) Snapshot(s *Session) *SessionView {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.view()
}

// PlayCard plays a card from the acting player's hand.
func (e *Engine) PlayCard(s *Session, playerID, instanceID, targetInstanceID string) (*SessionView, bool) {
	return e.apply(s, "play_card", playerID, func() bool {
		return s.playCard(playerID, instanceID, targetInstanceID)
	})
}

// DrawCard performs the active player's start-of-turn draw.
func (e *Engine) DrawCard(s *Session, playerID string) (*SessionView, bool) {
	return e.apply(s, "draw_card", playerID, func() bool {
		return s.drawCard(playerID)
	})
}

// EndTurn passes the turn to the other player.
func (e *Engine) EndTurn(s *Session, playerID string) (*SessionView, bool) {
	return e.apply(s, "end_turn", playerID, func() bool {
		return s.endTurn(playerID)
	})
}

// RespondToStack plays a Defense card onto the open action stack.
func (e *Engine) RespondToStack(s *Session, playerID, instanceID, targetInstanceID string) (*SessionView, bool) {
	return e.apply(s, "respond_to_stack", playerID, func() bool {
		return s.respondToStack(playerID, instanceID, targetInstanceID)
	})
}

// ResolveStack unwinds the action stack at the active player's request.
func (e *Engine) ResolveStack(s *Session, playerID string) (*SessionView, bool) {
	return e.apply(s, "resolve_stack", playerID, func() bool {
		return s.resolveStack(playerID)
	})
}

// PassAction declines to respond, implicitly resolving the stack.
func (e *Engine) PassAction(s *Session, playerID string) (*SessionView, bool) {
	return e.apply(s, "pass_action", playerID, func() bool {
		return s.passAction(playerID)
	})
}

// ActivateCard flips a face-down potion or super item.
func (e *Engine) ActivateCard(s *Session, playerID, instanceID, method string) (*SessionView, bool) {
	return e.apply(s, "activate_card", playerID, func() bool {
		return s.activateCard(playerID, instanceID, method)
	})
}

// UseHeroAbility resolves a hero talent or mastery.
func (e *Engine) UseHeroAbility(s *Session, playerID, ability string) (*SessionView, bool) {
	return e.apply(s, "use_hero_ability", playerID, func() bool {
		return s.useHeroAbility(playerID, ability)
	})
}

// apply runs one intent under the session lock.
func (e *Engine) apply(s *Session, intent, playerID string, fn func() bool) (*SessionView, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !fn() {
		e.logger.Debug("intent rejected",
			zap.String("session_id", s.ID),
			zap.String("intent", intent),
			zap.String("player_id", playerID),
		)
		return nil, false
	}
	return s.view(), true
}
