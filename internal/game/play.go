package game

import (
	"github.com/tartapies/tartapies-server-go/internal/catalog"
)

// playCard processes the active player's play-a-card intent. Category
// gates are checked before the card leaves the hand, so a rejected play
// mutates nothing. Attack and Defense cards are never resolved here;
// they suspend on the action stack until the response window closes.
func (s *Session) playCard(playerID, instanceID, targetInstanceID string) bool {
	if s.Phase != PhaseAction {
		return false
	}
	p := s.playerByID(playerID)
	if p == nil || !s.isActive(p) {
		return false
	}
	if s.WaitingForResponse {
		// While a response window is open only stack responses,
		// pass and resolve are legal.
		return false
	}

	var card CardInstance
	found := false
	for _, c := range p.Hand {
		if c.InstanceID == instanceID {
			card, found = c, true
			break
		}
	}
	if !found {
		return false
	}

	switch card.Category {
	case catalog.CategoryPoint:
		if p.Flags.CannotPlayPoints {
			return false
		}
	case catalog.CategoryAttack:
		if p.Flags.PlayedAttack {
			return false
		}
	case catalog.CategoryFaction:
		if p.Flags.PlayedFaction {
			return false
		}
	case catalog.CategoryRelic:
		if p.Flags.PlayedRelic {
			return false
		}
	}

	card, p.Hand, _ = removeInstance(p.Hand, instanceID)
	s.logf("%s played %s.", p.Name, card.Name)

	switch card.Category {
	case catalog.CategoryPoint:
		p.Board = append(p.Board, card)
		s.recomputeScores()
		s.onPointPlayed(p, card)

	case catalog.CategoryFaction:
		p.Flags.PlayedFaction = true
		p.Board = append(p.Board, card)
		s.recomputeScores()
		s.applyEffect(p, card, "")

	case catalog.CategoryAttack:
		p.Flags.PlayedAttack = true
		s.pushStack(StackEntry{Card: card, OwnerID: p.ID, TargetInstanceID: targetInstanceID})

	case catalog.CategoryDefense:
		s.pushStack(StackEntry{Card: card, OwnerID: p.ID, TargetInstanceID: targetInstanceID})

	case catalog.CategoryRelic:
		p.Flags.PlayedRelic = true
		// Relic effects fire on play; the card rests on the board
		// until it is exiled at end of turn.
		s.applyEffect(p, card, targetInstanceID)
		p.Board = append(p.Board, card)
		s.recomputeScores()

	case catalog.CategoryPotion, catalog.CategorySuper:
		// Enters face-down; inert until activated.
		p.Board = append(p.Board, card)

	default:
		// Unknown category: spend the card into the discard pile.
		s.toDiscard(card)
	}
	return true
}
