package game

import (
	"strings"

	"github.com/tartapies/tartapies-server-go/internal/catalog"
)

// effectFunc applies one card's game-world consequence in place. Target
// validation failures are silent no-ops: the card is still spent, but
// nothing happens.
type effectFunc func(s *Session, actor *Player, card CardInstance, targetInstanceID string)

// cardEffects is the table-driven dispatch from card identity to effect.
// Built in init to let handlers reference shared helpers freely.
var cardEffects map[string]effectFunc

func init() {
	cardEffects = map[string]effectFunc{
		catalog.CardZarpatrampa:   effectStealPoint,
		catalog.CardPetardobomba:  effectShufflePointIntoDeck,
		catalog.CardLevitasuero:   effectReturnPointToHand,
		catalog.CardHierbafrenesi: effectFrenzyDraw,

		// The treaty's negation is handled by the stack resolver; on
		// its own it does nothing.
		catalog.CardTratado:     func(*Session, *Player, CardInstance, string) {},
		catalog.CardNieblabomba: effectStealPoint,
		catalog.CardSueroDePaz:  effectRotateOpponentHero,

		catalog.CardVoluntadDeAldia: effectDrawAndToggleHero,
		catalog.CardCaosrubi:        effectAbilityDiscount,
		catalog.CardOrdenAbsoluto:   effectDestroyFaction,

		catalog.CardGremio: effectRevealOpponentHand,

		catalog.CardCeleridad:    effectDrawTwo,
		catalog.CardSabotajeador: effectRecoverItem,
		// Escudo de Granalianza is passive while face-up; consumed by
		// takePointFromBoard when it negates a point loss.
		catalog.CardEscudo: func(*Session, *Player, CardInstance, string) {},
	}
}

// applyEffect dispatches a card to its handler. Cards without an entry
// have no scripted effect beyond their placement, which is valid.
func (s *Session) applyEffect(actor *Player, card CardInstance, targetInstanceID string) {
	if fn, ok := cardEffects[card.ID]; ok {
		fn(s, actor, card, targetInstanceID)
	}
}

// onPointPlayed runs the side checks that follow every Point-card play:
// the played card's own search effect and any active triggered sources
// on the acting player's board.
func (s *Session) onPointPlayed(actor *Player, card CardInstance) {
	if card.ID == catalog.CardManzanaReal {
		s.searchDeckForPoint(actor)
	}

	// Active necromancy recovers a point card from the discard pile.
	for _, c := range actor.Board {
		if c.ID == catalog.CardNigromancia && !c.FaceDown {
			s.recoverPointFromDiscard(actor)
			break
		}
	}
}

// takePointFromBoard validates and extracts an opponent board Point card
// for steal/shuffle/return effects. The defender's face-up shield, if
// any, is consumed instead: the loss is negated and nothing is taken.
func (s *Session) takePointFromBoard(actor *Player, targetInstanceID string) (CardInstance, bool) {
	opp := s.opponentOf(actor)
	if opp == nil || targetInstanceID == "" {
		return CardInstance{}, false
	}
	target := opp.boardCard(targetInstanceID)
	if target == nil || !target.IsPoint() {
		s.logf("Nothing happened.")
		return CardInstance{}, false
	}
	targetName := target.Name

	for i, c := range opp.Board {
		if c.ID == catalog.CardEscudo && !c.FaceDown {
			shield := opp.Board[i]
			opp.Board = append(opp.Board[:i], opp.Board[i+1:]...)
			s.toDiscard(shield)
			s.logf("%s negated the loss of %s.", shield.Name, targetName)
			return CardInstance{}, false
		}
	}

	taken, rest, _ := removeInstance(opp.Board, targetInstanceID)
	opp.Board = rest
	return taken, true
}

func effectStealPoint(s *Session, actor *Player, card CardInstance, targetInstanceID string) {
	taken, ok := s.takePointFromBoard(actor, targetInstanceID)
	if !ok {
		return
	}
	actor.Board = append(actor.Board, taken)
	s.recomputeScores()
	s.logf("%s stole %s with %s.", actor.Name, taken.Name, card.Name)
}

func effectShufflePointIntoDeck(s *Session, actor *Player, card CardInstance, targetInstanceID string) {
	taken, ok := s.takePointFromBoard(actor, targetInstanceID)
	if !ok {
		return
	}
	s.Deck = append(s.Deck, taken)
	s.shuffleDeck()
	s.recomputeScores()
	s.logf("%s shuffled %s into the deck.", card.Name, taken.Name)
}

func effectReturnPointToHand(s *Session, actor *Player, card CardInstance, targetInstanceID string) {
	opp := s.opponentOf(actor)
	taken, ok := s.takePointFromBoard(actor, targetInstanceID)
	if !ok {
		return
	}
	opp.Hand = append(opp.Hand, taken)
	s.recomputeScores()
	s.logf("%s returned %s to %s's hand.", card.Name, taken.Name, opp.Name)
}

// effectFrenzyDraw draws two cards; each drawn Point card is played to
// the board immediately.
func effectFrenzyDraw(s *Session, actor *Player, card CardInstance, _ string) {
	for i := 0; i < 2; i++ {
		if !s.drawOne(actor) {
			s.logf("The deck is empty.")
			return
		}
		drawn := actor.Hand[len(actor.Hand)-1]
		s.logf("%s drew a card.", actor.Name)
		if drawn.IsPoint() {
			actor.Hand = actor.Hand[:len(actor.Hand)-1]
			actor.Board = append(actor.Board, drawn)
			s.recomputeScores()
			s.logf("%s played %s from the frenzy draw.", actor.Name, drawn.Name)
			s.onPointPlayed(actor, drawn)
		}
	}
}

func effectRotateOpponentHero(s *Session, actor *Player, card CardInstance, _ string) {
	opp := s.opponentOf(actor)
	if opp == nil {
		return
	}
	opp.Flags.HeroRotated = true
	s.logf("%s locked %s's hero abilities.", card.Name, opp.Name)
}

// effectDrawAndToggleHero draws one card and toggles the rotation of the
// hero owned by the targeted player. The target here is a player id, not
// a board card.
func effectDrawAndToggleHero(s *Session, actor *Player, card CardInstance, targetInstanceID string) {
	if s.drawOne(actor) {
		s.logf("%s drew a card.", actor.Name)
	}
	target := s.playerByID(targetInstanceID)
	if target == nil {
		return
	}
	target.Flags.HeroRotated = !target.Flags.HeroRotated
	if target.Flags.HeroRotated {
		s.logf("%s rotated %s's hero.", card.Name, target.Name)
	} else {
		s.logf("%s readied %s's hero.", card.Name, target.Name)
	}
}

func effectAbilityDiscount(s *Session, actor *Player, card CardInstance, _ string) {
	actor.Flags.AbilityDiscount = true
	s.logf("%s: %s's hero abilities are free this turn.", card.Name, actor.Name)
}

func effectDestroyFaction(s *Session, actor *Player, card CardInstance, targetInstanceID string) {
	opp := s.opponentOf(actor)
	if opp == nil || targetInstanceID == "" {
		return
	}
	target := opp.boardCard(targetInstanceID)
	if target == nil || target.Category != catalog.CategoryFaction {
		s.logf("Nothing happened.")
		return
	}
	taken, rest, _ := removeInstance(opp.Board, targetInstanceID)
	opp.Board = rest
	s.toDiscard(taken)
	s.recomputeScores()
	s.logf("%s destroyed %s.", card.Name, taken.Name)
}

func effectRevealOpponentHand(s *Session, actor *Player, card CardInstance, _ string) {
	opp := s.opponentOf(actor)
	if opp == nil {
		return
	}
	if len(opp.Hand) == 0 {
		s.logf("%s: %s's hand is empty.", card.Name, opp.Name)
		return
	}
	names := make([]string, len(opp.Hand))
	for i, c := range opp.Hand {
		names[i] = c.Name
	}
	s.logf("%s revealed %s's hand: %s.", card.Name, opp.Name, strings.Join(names, ", "))
}

func effectDrawTwo(s *Session, actor *Player, card CardInstance, _ string) {
	drawn := 0
	for i := 0; i < 2; i++ {
		if s.drawOne(actor) {
			drawn++
		}
	}
	s.logf("%s drew %d cards from %s.", actor.Name, drawn, card.Name)
}

// effectRecoverItem returns the most recently discarded Attack/Defense
// item to the actor's hand.
func effectRecoverItem(s *Session, actor *Player, card CardInstance, _ string) {
	for i := len(s.Discard) - 1; i >= 0; i-- {
		c := s.Discard[i]
		if c.Category == catalog.CategoryAttack || c.Category == catalog.CategoryDefense {
			s.Discard = append(s.Discard[:i], s.Discard[i+1:]...)
			actor.Hand = append(actor.Hand, c)
			s.logf("%s recovered %s from the discard pile.", card.Name, c.Name)
			return
		}
	}
	s.logf("Nothing happened.")
}

// searchDeckForPoint moves the first Point card found in the deck to the
// player's hand and reshuffles. Silent no-op if none remain.
func (s *Session) searchDeckForPoint(actor *Player) {
	for i := len(s.Deck) - 1; i >= 0; i-- {
		if s.Deck[i].IsPoint() {
			found := s.Deck[i]
			s.Deck = append(s.Deck[:i], s.Deck[i+1:]...)
			actor.Hand = append(actor.Hand, found)
			s.shuffleDeck()
			s.logf("%s searched the deck and took %s.", actor.Name, found.Name)
			return
		}
	}
	s.logf("Nothing happened.")
}

// recoverPointFromDiscard moves the most recently discarded Point card to
// the player's hand.
func (s *Session) recoverPointFromDiscard(actor *Player) {
	for i := len(s.Discard) - 1; i >= 0; i-- {
		if s.Discard[i].IsPoint() {
			found := s.Discard[i]
			s.Discard = append(s.Discard[:i], s.Discard[i+1:]...)
			actor.Hand = append(actor.Hand, found)
			s.logf("%s recovered %s from the discard pile.", actor.Name, found.Name)
			return
		}
	}
}
