package game

import (
	"fmt"
	"sync"

	"go.uber.org/zap"
)

// Phase is the session's top-level state machine position.
type Phase string

const (
	// PhaseLobby waits for the second participant.
	PhaseLobby Phase = "LOBBY"
	// PhaseDraw is the start-of-turn draw window of the active player.
	PhaseDraw Phase = "DRAW"
	// PhaseAction is the active player's main window.
	PhaseAction Phase = "ACTION"
	// PhaseEnded is terminal; no mutating intent is accepted.
	PhaseEnded Phase = "ENDED"
)

// StackEntry is one played Attack/Defense card awaiting resolution.
type StackEntry struct {
	Card             CardInstance `json:"card"`
	OwnerID          string       `json:"owner_id"`
	TargetInstanceID string       `json:"target_instance_id,omitempty"`
}

// Session is the mutable record of one two-player match. All intent
// processing for a session runs under its mutex: intents are discrete,
// non-preemptible steps and never interleave their mutations.
type Session struct {
	mu sync.Mutex

	ID                 string
	Players            []*Player
	Deck               []CardInstance // top of deck is the last element
	Discard            []CardInstance
	TurnIndex          int
	Phase              Phase
	ActionStack        []StackEntry
	WaitingForResponse bool
	Ended              bool
	Winner             string // winner's display name, "tie", or empty
	Log                []string

	rng    Randomizer
	logger *zap.Logger
}

// NewSession creates an empty session in the lobby phase.
func NewSession(id string, rng Randomizer, logger *zap.Logger) *Session {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Session{
		ID:     id,
		Phase:  PhaseLobby,
		rng:    rng,
		logger: logger.With(zap.String("session_id", id)),
	}
}

// logf appends a user-visible line to the session log.
func (s *Session) logf(format string, args ...any) {
	s.Log = append(s.Log, fmt.Sprintf(format, args...))
}

// playerByID returns the player with the given id, or nil.
func (s *Session) playerByID(playerID string) *Player {
	for _, p := range s.Players {
		if p.ID == playerID {
			return p
		}
	}
	return nil
}

// activePlayer returns the player whose turn it is, or nil before the
// match has two players.
func (s *Session) activePlayer() *Player {
	if len(s.Players) < 2 {
		return nil
	}
	return s.Players[s.TurnIndex]
}

// opponentOf returns the other player.
func (s *Session) opponentOf(p *Player) *Player {
	for _, q := range s.Players {
		if q.ID != p.ID {
			return q
		}
	}
	return nil
}

// isActive reports whether the given player holds the turn.
func (s *Session) isActive(p *Player) bool {
	return s.activePlayer() == p
}

// drawOne moves the top deck card into the player's hand. Silent no-op
// on an empty deck.
func (s *Session) drawOne(p *Player) bool {
	if len(s.Deck) == 0 {
		return false
	}
	top := s.Deck[len(s.Deck)-1]
	s.Deck = s.Deck[:len(s.Deck)-1]
	p.Hand = append(p.Hand, top)
	return true
}

// toDiscard places a card on the discard pile, clearing transient flags
// so a recovered card comes back clean.
func (s *Session) toDiscard(c CardInstance) {
	c.Rotated = false
	s.Discard = append(s.Discard, c)
}

// shuffleDeck re-randomizes the draw pile in place.
func (s *Session) shuffleDeck() {
	s.rng.Shuffle(len(s.Deck), func(i, j int) {
		s.Deck[i], s.Deck[j] = s.Deck[j], s.Deck[i]
	})
}

// recomputeScores re-derives both players' scores from their boards.
// Scores are never patched incrementally.
func (s *Session) recomputeScores() {
	for _, p := range s.Players {
		p.Score = Score(p.Board)
	}
}
