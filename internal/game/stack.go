package game

import (
	"github.com/tartapies/tartapies-server-go/internal/catalog"
)

// pushStack suspends a played Attack/Defense card on the action stack
// and opens the response window.
func (s *Session) pushStack(entry StackEntry) {
	s.ActionStack = append(s.ActionStack, entry)
	s.WaitingForResponse = true
}

// respondToStack plays a Defense card from hand on top of the open
// stack. While the response window is open, Defense cards are legal for
// either player, so responses can themselves be countered (LIFO).
func (s *Session) respondToStack(playerID, instanceID, targetInstanceID string) bool {
	if !s.WaitingForResponse || s.Phase != PhaseAction {
		return false
	}
	p := s.playerByID(playerID)
	if p == nil {
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
	if !found || card.Category != catalog.CategoryDefense {
		return false
	}

	card, p.Hand, _ = removeInstance(p.Hand, instanceID)
	s.logf("%s responded with %s.", p.Name, card.Name)
	s.pushStack(StackEntry{Card: card, OwnerID: p.ID, TargetInstanceID: targetInstanceID})
	return true
}

// resolveStack unwinds the whole stack top-down at the active player's
// request. The treaty card negates the entry directly below it; every
// other entry applies its table effect. Spent cards go to discard.
func (s *Session) resolveStack(playerID string) bool {
	p := s.playerByID(playerID)
	if p == nil || !s.isActive(p) {
		return false
	}
	if !s.WaitingForResponse || len(s.ActionStack) == 0 {
		return false
	}
	s.unwindStack()
	return true
}

// passAction is the non-active player declining to respond, which
// implicitly resolves the stack.
func (s *Session) passAction(playerID string) bool {
	p := s.playerByID(playerID)
	if p == nil || s.isActive(p) {
		return false
	}
	if !s.WaitingForResponse || len(s.ActionStack) == 0 {
		return false
	}
	s.logf("%s declined to respond.", p.Name)
	s.unwindStack()
	return true
}

// unwindStack resolves entries LIFO until the stack is empty, then
// closes the response window.
func (s *Session) unwindStack() {
	for len(s.ActionStack) > 0 {
		top := s.popStack()

		if top.Card.ID == catalog.CardTratado && len(s.ActionStack) > 0 {
			negated := s.popStack()
			s.logf("%s negated %s.", top.Card.Name, negated.Card.Name)
			s.toDiscard(negated.Card)
			s.toDiscard(top.Card)
			continue
		}

		owner := s.playerByID(top.OwnerID)
		if owner != nil {
			s.applyEffect(owner, top.Card, top.TargetInstanceID)
		}
		s.toDiscard(top.Card)
	}
	s.WaitingForResponse = false
}

func (s *Session) popStack() StackEntry {
	top := s.ActionStack[len(s.ActionStack)-1]
	s.ActionStack = s.ActionStack[:len(s.ActionStack)-1]
	return top
}
