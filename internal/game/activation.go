package game

import (
	"github.com/tartapies/tartapies-server-go/internal/catalog"
)

// Activation methods for face-down potions and super items.
const (
	// ActivateByRoll flips the card on an even die roll.
	ActivateByRoll = "roll"
	// ActivateByDiscard flips the card by discarding one hand card.
	ActivateByDiscard = "discard"
)

// activateCard flips a face-down Potion or SuperItem on the active
// player's board and applies its activation effect. A failed roll or an
// unpayable discard cost leaves the card face-down.
func (s *Session) activateCard(playerID, instanceID, method string) bool {
	if s.Phase != PhaseAction || s.WaitingForResponse {
		return false
	}
	p := s.playerByID(playerID)
	if p == nil || !s.isActive(p) {
		return false
	}
	card := p.boardCard(instanceID)
	if card == nil || !card.FaceDown {
		return false
	}
	if card.Category != catalog.CategoryPotion && card.Category != catalog.CategorySuper {
		return false
	}

	switch method {
	case ActivateByRoll:
		roll := s.rng.Roll()
		s.logf("%s rolled a %d for %s.", p.Name, roll, card.Name)
		if !RollSucceeds(roll) {
			s.logf("%s stays face-down.", card.Name)
			return true
		}
	case ActivateByDiscard:
		if len(p.Hand) == 0 {
			return false
		}
		cost := p.Hand[len(p.Hand)-1]
		p.Hand = p.Hand[:len(p.Hand)-1]
		s.toDiscard(cost)
		s.logf("%s discarded %s to activate %s.", p.Name, cost.Name, card.Name)
	default:
		return false
	}

	card.FaceDown = false
	s.logf("%s activated %s.", p.Name, card.Name)
	s.applyEffect(p, *card, "")

	// Instant-effect cards are consumed by their activation; persistent
	// sources stay face-up on the board.
	switch card.ID {
	case catalog.CardCeleridad, catalog.CardSabotajeador:
		spent, rest, _ := removeInstance(p.Board, instanceID)
		p.Board = rest
		s.toDiscard(spent)
	}
	return true
}
