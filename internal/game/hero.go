package game

import (
	"github.com/tartapies/tartapies-server-go/internal/catalog"
)

// Hero ability names accepted by the use-hero-ability intent.
const (
	AbilityTalent  = "talent"
	AbilityMastery = "mastery"
)

// heroAbilityFunc performs one hero's talent or mastery. A false return
// means the ability could not be attempted at all and the hero's
// rotation must not be consumed.
type heroAbilityFunc func(s *Session, actor *Player) bool

var heroTalents = map[string]heroAbilityFunc{
	catalog.HeroOlaf:     talentSaqueo,
	catalog.HeroPanza:    talentDolorDeCabeza,
	catalog.HeroZaniah:   talentEscudoMagico,
	catalog.HeroAsgaroth: talentHeraldoDelVacio,
}

var heroMasteries = map[string]heroAbilityFunc{
	catalog.HeroOlaf:     masteryFrenesi,
	catalog.HeroPanza:    masteryResaca,
	catalog.HeroZaniah:   masteryQuiromancia,
	catalog.HeroAsgaroth: masteryVacioAbsoluto,
}

// useHeroAbility resolves a talent or mastery. Either ability rotates
// the hero, blocking further use until the flags reset at the player's
// next own turn. Masteries cost one discarded hand card unless the
// discount flag waives it; an unpayable cost fails silently without
// consuming the rotation.
func (s *Session) useHeroAbility(playerID, ability string) bool {
	if s.Ended {
		return false
	}
	p := s.playerByID(playerID)
	if p == nil || p.Flags.HeroRotated {
		return false
	}

	// Zaniah's talent is a reaction: the only ability legal outside the
	// owner's own action window, usable while a response window is open.
	reaction := ability == AbilityTalent && p.HeroID == catalog.HeroZaniah && s.WaitingForResponse
	if !reaction {
		if s.Phase != PhaseAction || !s.isActive(p) || s.WaitingForResponse {
			return false
		}
	}

	switch ability {
	case AbilityTalent:
		fn := heroTalents[p.HeroID]
		if fn == nil || !fn(s, p) {
			return false
		}
		p.Flags.UsedTalent = true

	case AbilityMastery:
		fn := heroMasteries[p.HeroID]
		if fn == nil {
			return false
		}
		if !p.Flags.AbilityDiscount {
			if len(p.Hand) == 0 {
				return false
			}
			cost := p.Hand[len(p.Hand)-1]
			p.Hand = p.Hand[:len(p.Hand)-1]
			s.toDiscard(cost)
			s.logf("%s discarded %s for the mastery.", p.Name, cost.Name)
		}
		if !fn(s, p) {
			// Cost is already paid; the ability fizzled.
			s.logf("Nothing happened.")
		}
		p.Flags.UsedMastery = true

	default:
		return false
	}

	p.Flags.HeroRotated = true
	return true
}

// abilityRoll is the shared die gate for hero abilities. The discount
// flag lets the talent succeed without rolling.
func (s *Session) abilityRoll(p *Player) bool {
	if p.Flags.AbilityDiscount {
		s.logf("%s's ability succeeds without a roll.", p.Name)
		return true
	}
	roll := s.rng.Roll()
	s.logf("%s rolled a %d.", p.Name, roll)
	return RollSucceeds(roll)
}

// Saqueo: on an even roll, draw a card.
func talentSaqueo(s *Session, p *Player) bool {
	if !s.abilityRoll(p) {
		s.logf("Nothing happened.")
		return true
	}
	if s.drawOne(p) {
		s.logf("%s looted a card from the deck.", p.Name)
	}
	return true
}

// Dolor de Cabeza: rotate the opponent's hero.
func talentDolorDeCabeza(s *Session, p *Player) bool {
	opp := s.opponentOf(p)
	if opp == nil {
		return false
	}
	opp.Flags.HeroRotated = true
	s.logf("%s gave %s's hero a headache.", p.Name, opp.Name)
	return true
}

// Escudo Mágico: remove the topmost Attack entry from the action stack
// without applying its effect.
func talentEscudoMagico(s *Session, p *Player) bool {
	for i := len(s.ActionStack) - 1; i >= 0; i-- {
		if s.ActionStack[i].Card.Category == catalog.CategoryAttack {
			entry := s.ActionStack[i]
			s.ActionStack = append(s.ActionStack[:i], s.ActionStack[i+1:]...)
			s.toDiscard(entry.Card)
			s.logf("%s's magic shield negated %s.", p.Name, entry.Card.Name)
			s.WaitingForResponse = len(s.ActionStack) > 0
			return true
		}
	}
	return false
}

// Heraldo del Vacío: on an even roll, the opponent discards a random
// hand card.
func talentHeraldoDelVacio(s *Session, p *Player) bool {
	if !s.abilityRoll(p) {
		s.logf("Nothing happened.")
		return true
	}
	opp := s.opponentOf(p)
	if opp == nil || len(opp.Hand) == 0 {
		s.logf("Nothing happened.")
		return true
	}
	idx := s.rng.Intn(len(opp.Hand))
	lost := opp.Hand[idx]
	opp.Hand = append(opp.Hand[:idx], opp.Hand[idx+1:]...)
	s.toDiscard(lost)
	s.logf("The void claimed %s from %s's hand.", lost.Name, opp.Name)
	return true
}

// Frenesí: steal a random Point card from the opponent's board.
func masteryFrenesi(s *Session, p *Player) bool {
	opp := s.opponentOf(p)
	if opp == nil {
		return false
	}
	var candidates []string
	for _, c := range opp.Board {
		if c.IsPoint() {
			candidates = append(candidates, c.InstanceID)
		}
	}
	if len(candidates) == 0 {
		return false
	}
	pick := candidates[s.rng.Intn(len(candidates))]
	taken, ok := s.takePointFromBoard(p, pick)
	if !ok {
		// Shield negated the steal; the mastery was still used.
		return true
	}
	p.Board = append(p.Board, taken)
	s.recomputeScores()
	s.logf("%s's frenzy stole %s.", p.Name, taken.Name)
	return true
}

// Resaca: the opponent cannot play Point cards until their next turn.
func masteryResaca(s *Session, p *Player) bool {
	opp := s.opponentOf(p)
	if opp == nil {
		return false
	}
	opp.Flags.CannotPlayPoints = true
	s.logf("%s's hangover: %s cannot play Tartapies this turn.", p.Name, opp.Name)
	return true
}

// Quiromancia: play a random Point card from own hand for free.
func masteryQuiromancia(s *Session, p *Player) bool {
	var candidates []int
	for i, c := range p.Hand {
		if c.IsPoint() {
			candidates = append(candidates, i)
		}
	}
	if len(candidates) == 0 {
		return false
	}
	idx := candidates[s.rng.Intn(len(candidates))]
	card := p.Hand[idx]
	p.Hand = append(p.Hand[:idx], p.Hand[idx+1:]...)
	p.Board = append(p.Board, card)
	s.recomputeScores()
	s.logf("%s's palmistry played %s for free.", p.Name, card.Name)
	s.onPointPlayed(p, card)
	return true
}

// Vacío Absoluto: on an even roll, play a random Point card from the
// opponent's hand onto own board.
func masteryVacioAbsoluto(s *Session, p *Player) bool {
	if !s.abilityRoll(p) {
		s.logf("Nothing happened.")
		return true
	}
	opp := s.opponentOf(p)
	if opp == nil {
		return false
	}
	var candidates []int
	for i, c := range opp.Hand {
		if c.IsPoint() {
			candidates = append(candidates, i)
		}
	}
	if len(candidates) == 0 {
		s.logf("Nothing happened.")
		return true
	}
	idx := candidates[s.rng.Intn(len(candidates))]
	card := opp.Hand[idx]
	opp.Hand = append(opp.Hand[:idx], opp.Hand[idx+1:]...)
	p.Board = append(p.Board, card)
	s.recomputeScores()
	s.logf("The absolute void played %s from %s's hand.", card.Name, opp.Name)
	return true
}
