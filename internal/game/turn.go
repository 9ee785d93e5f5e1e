package game

import (
	"go.uber.org/zap"

	"github.com/tartapies/tartapies-server-go/internal/catalog"
)

const (
	openingHandSize = 5
	maxHandSize     = 6
)

// join admits a participant. The first two distinct display names become
// the players; a rejoining name reattaches its connection; anyone else is
// ignored. Returns the player record, or nil when the session is full.
func (s *Session) join(displayName, connectionID string) *Player {
	for _, p := range s.Players {
		if p.Name == displayName {
			p.ConnectionID = connectionID
			s.logf("%s reconnected", displayName)
			return p
		}
	}
	if len(s.Players) >= 2 {
		return nil
	}

	p := &Player{
		ID:           s.rng.NewID(),
		ConnectionID: connectionID,
		Name:         displayName,
		HeroID:       s.pickHero(),
	}
	s.Players = append(s.Players, p)
	if hero, ok := catalog.LookupHero(p.HeroID); ok {
		s.logf("%s joined as %s", displayName, hero.Name)
	}

	if len(s.Players) == 2 && s.Phase == PhaseLobby {
		s.startMatch()
	}
	return p
}

// pickHero assigns a random hero not already taken in this session.
func (s *Session) pickHero() string {
	heroes := catalog.Heroes()
	taken := make(map[string]bool, len(s.Players))
	for _, p := range s.Players {
		taken[p.HeroID] = true
	}
	free := heroes[:0:0]
	for _, h := range heroes {
		if !taken[h.ID] {
			free = append(free, h)
		}
	}
	if len(free) == 0 {
		return heroes[s.rng.Intn(len(heroes))].ID
	}
	return free[s.rng.Intn(len(free))].ID
}

// startMatch builds the deck, deals the opening hands and enters the
// first draw phase.
func (s *Session) startMatch() {
	s.Deck = buildDeck(s.rng)
	for _, p := range s.Players {
		for i := 0; i < openingHandSize; i++ {
			s.drawOne(p)
		}
	}
	s.TurnIndex = 0
	s.Phase = PhaseDraw
	s.logf("Game started. %s goes first.", s.activePlayer().Name)
	s.logger.Info("match started",
		zap.String("first_player", s.activePlayer().Name),
		zap.Int("deck_size", len(s.Deck)),
	)
}

// drawCard handles the active player's start-of-turn draw. An empty deck
// draws nothing; if the deck is empty after the draw the session ends
// instead of entering the action phase.
func (s *Session) drawCard(playerID string) bool {
	if s.Phase != PhaseDraw {
		return false
	}
	p := s.playerByID(playerID)
	if p == nil || !s.isActive(p) {
		return false
	}

	if s.drawOne(p) {
		s.logf("%s drew a card.", p.Name)
	}
	if len(s.Deck) == 0 {
		s.finish()
		return true
	}
	s.Phase = PhaseAction
	return true
}

// endTurn hands the turn to the other player: trim the departing hand to
// the maximum size, exile board relics, advance the turn pointer and
// reset the incoming player's per-turn flags.
func (s *Session) endTurn(playerID string) bool {
	if s.Phase != PhaseAction {
		return false
	}
	p := s.playerByID(playerID)
	if p == nil || !s.isActive(p) {
		return false
	}
	if s.WaitingForResponse || len(s.ActionStack) > 0 {
		return false
	}

	// Discard down to the hand limit, excess trimmed from the end.
	for len(p.Hand) > maxHandSize {
		last := p.Hand[len(p.Hand)-1]
		p.Hand = p.Hand[:len(p.Hand)-1]
		s.toDiscard(last)
		s.logf("%s discarded %s (hand limit).", p.Name, last.Name)
	}

	// Relics are spent at end of turn.
	kept := p.Board[:0]
	for _, c := range p.Board {
		if c.Category == catalog.CategoryRelic {
			s.toDiscard(c)
			s.logf("%s's relic %s was exiled.", p.Name, c.Name)
			continue
		}
		kept = append(kept, c)
	}
	p.Board = kept
	s.recomputeScores()

	// A point-play denial on the departing player expires now.
	p.Flags.CannotPlayPoints = false

	s.TurnIndex = (s.TurnIndex + 1) % 2
	next := s.activePlayer()
	next.Flags.reset()
	s.Phase = PhaseDraw
	s.logf("--- %s's turn ---", next.Name)
	return true
}

// finish transitions the session to its terminal state and declares the
// outcome.
func (s *Session) finish() {
	s.recomputeScores()
	s.Phase = PhaseEnded
	s.Ended = true

	a, b := s.Players[0], s.Players[1]
	switch {
	case a.Score > b.Score:
		s.Winner = a.Name
		s.logf("Deck exhausted. %s wins %d - %d!", a.Name, a.Score, b.Score)
	case b.Score > a.Score:
		s.Winner = b.Name
		s.logf("Deck exhausted. %s wins %d - %d!", b.Name, b.Score, a.Score)
	default:
		s.Winner = "tie"
		s.logf("Deck exhausted. Tie at %d points.", a.Score)
	}
	s.logger.Info("match ended",
		zap.String("winner", s.Winner),
		zap.Int("score_a", a.Score),
		zap.Int("score_b", b.Score),
	)
}
