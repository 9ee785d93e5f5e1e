package game

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tartapies/tartapies-server-go/internal/catalog"
)

func TestStealPointMovesCardBetweenBoards(t *testing.T) {
	s, alice, bob := newTestSession(nil)
	bob.Board = []CardInstance{testCard(catalog.CardTartapie, "tgt")}

	s.applyEffect(alice, testCard(catalog.CardZarpatrampa, "atk"), "tgt")

	assert.Empty(t, bob.Board)
	require.Len(t, alice.Board, 1)
	assert.Equal(t, "tgt", alice.Board[0].InstanceID)
	assert.Equal(t, 1, alice.Score)
	assert.Equal(t, 0, bob.Score)
}

func TestStealInvalidTargetIsSilentNoOp(t *testing.T) {
	s, alice, bob := newTestSession(nil)
	bob.Board = []CardInstance{testCard(catalog.CardGremio, "faction")}
	bob.Hand = []CardInstance{testCard(catalog.CardTartapie, "in-hand")}

	// Wrong category.
	s.applyEffect(alice, testCard(catalog.CardZarpatrampa, "a1"), "faction")
	// Not on a board.
	s.applyEffect(alice, testCard(catalog.CardZarpatrampa, "a2"), "in-hand")
	// Nonexistent.
	s.applyEffect(alice, testCard(catalog.CardZarpatrampa, "a3"), "ghost")

	assert.Empty(t, alice.Board)
	assert.Len(t, bob.Board, 1)
	assert.Len(t, bob.Hand, 1)
}

func TestShufflePointIntoDeck(t *testing.T) {
	s, alice, bob := newTestSession(nil)
	bob.Board = []CardInstance{testCard(catalog.CardTartapie, "tgt")}

	s.applyEffect(alice, testCard(catalog.CardPetardobomba, "atk"), "tgt")

	assert.Empty(t, bob.Board)
	require.Len(t, s.Deck, 1)
	assert.Equal(t, "tgt", s.Deck[0].InstanceID)
	assert.Equal(t, 0, bob.Score)
}

func TestReturnPointToHand(t *testing.T) {
	s, alice, bob := newTestSession(nil)
	bob.Board = []CardInstance{testCard(catalog.CardTartapie, "tgt")}

	s.applyEffect(alice, testCard(catalog.CardLevitasuero, "atk"), "tgt")

	assert.Empty(t, bob.Board)
	require.Len(t, bob.Hand, 1)
	assert.Equal(t, "tgt", bob.Hand[0].InstanceID)
}

func TestShieldNegatesPointLoss(t *testing.T) {
	s, alice, bob := newTestSession(nil)
	shield := testCard(catalog.CardEscudo, "shield")
	shield.FaceDown = false
	bob.Board = []CardInstance{
		testCard(catalog.CardTartapie, "tgt"),
		shield,
	}

	s.applyEffect(alice, testCard(catalog.CardZarpatrampa, "atk"), "tgt")

	// The steal was negated and the shield consumed.
	assert.NotNil(t, bob.boardCard("tgt"))
	assert.Nil(t, bob.boardCard("shield"))
	assert.Empty(t, alice.Board)
	require.Len(t, s.Discard, 1)
	assert.Equal(t, "shield", s.Discard[0].InstanceID)
}

func TestFaceDownShieldDoesNotProtect(t *testing.T) {
	s, alice, bob := newTestSession(nil)
	bob.Board = []CardInstance{
		testCard(catalog.CardTartapie, "tgt"),
		testCard(catalog.CardEscudo, "shield"), // still face-down
	}

	s.applyEffect(alice, testCard(catalog.CardZarpatrampa, "atk"), "tgt")

	assert.NotNil(t, alice.boardCard("tgt"))
	assert.NotNil(t, bob.boardCard("shield"))
}

func TestFrenzyDrawPlaysPointCards(t *testing.T) {
	s, alice, _ := newTestSession(nil)
	// Top of deck is the last element: a point card, then an item.
	s.Deck = []CardInstance{
		testCard(catalog.CardTratado, "d-def"),
		testCard(catalog.CardTartapie, "d-point"),
	}

	s.applyEffect(alice, testCard(catalog.CardHierbafrenesi, "atk"), "")

	// The point card went straight to the board, the item to hand.
	require.Len(t, alice.Board, 1)
	assert.Equal(t, "d-point", alice.Board[0].InstanceID)
	require.Len(t, alice.Hand, 1)
	assert.Equal(t, "d-def", alice.Hand[0].InstanceID)
	assert.Equal(t, 1, alice.Score)
}

func TestManzanaRealSearchesDeckOnPlay(t *testing.T) {
	s, alice, _ := newTestSession(nil)
	alice.Hand = []CardInstance{testCard(catalog.CardManzanaReal, "manzana")}
	s.Deck = []CardInstance{
		testCard(catalog.CardTratado, "d1"),
		testCard(catalog.CardTartapie, "d2"),
		testCard(catalog.CardTratado, "d3"),
	}

	require.True(t, s.playCard(alice.ID, "manzana", ""))

	require.Len(t, alice.Hand, 1)
	assert.Equal(t, "d2", alice.Hand[0].InstanceID)
	assert.Len(t, s.Deck, 2)
	assert.NotNil(t, alice.boardCard("manzana"))
}

func TestNigromanciaRecoversPointOnPointPlay(t *testing.T) {
	s, alice, _ := newTestSession(nil)
	potion := testCard(catalog.CardNigromancia, "potion")
	potion.FaceDown = false
	alice.Board = []CardInstance{potion}
	alice.Hand = []CardInstance{testCard(catalog.CardTartapie, "play-me")}
	s.Discard = []CardInstance{
		testCard(catalog.CardTratado, "junk"),
		testCard(catalog.CardTartapie, "lost-point"),
	}

	require.True(t, s.playCard(alice.ID, "play-me", ""))

	require.Len(t, alice.Hand, 1)
	assert.Equal(t, "lost-point", alice.Hand[0].InstanceID)
	assert.Len(t, s.Discard, 1)
}

func TestFaceDownNigromanciaDoesNotTrigger(t *testing.T) {
	s, alice, _ := newTestSession(nil)
	alice.Board = []CardInstance{testCard(catalog.CardNigromancia, "potion")}
	alice.Hand = []CardInstance{testCard(catalog.CardTartapie, "play-me")}
	s.Discard = []CardInstance{testCard(catalog.CardTartapie, "lost-point")}

	require.True(t, s.playCard(alice.ID, "play-me", ""))
	assert.Empty(t, alice.Hand)
	assert.Len(t, s.Discard, 1)
}

func TestGremioRevealsOpponentHand(t *testing.T) {
	s, alice, bob := newTestSession(nil)
	alice.Hand = []CardInstance{testCard(catalog.CardGremio, "gremio")}
	bob.Hand = []CardInstance{
		testCard(catalog.CardTartapie, "b1"),
		testCard(catalog.CardTratado, "b2"),
	}

	require.True(t, s.playCard(alice.ID, "gremio", ""))

	revealed := false
	for _, line := range s.Log {
		if strings.Contains(line, "Tartapie") && strings.Contains(line, "Tratado de Granalianza") {
			revealed = true
		}
	}
	assert.True(t, revealed, "expected a hand reveal log line, got %v", s.Log)
}

func TestOrdenAbsolutoDestroysFaction(t *testing.T) {
	s, alice, bob := newTestSession(nil)
	alice.Hand = []CardInstance{testCard(catalog.CardOrdenAbsoluto, "orden")}
	bob.Board = []CardInstance{
		testCard(catalog.CardGremio, "faction"),
		testCard(catalog.CardTartapie, "point"),
	}

	require.True(t, s.playCard(alice.ID, "orden", "faction"))

	assert.Nil(t, bob.boardCard("faction"))
	assert.NotNil(t, bob.boardCard("point"))
	assert.Equal(t, 1, bob.Score)

	// Point cards are not a legal target for it.
	s.Phase = PhaseAction
	alice.Flags.PlayedRelic = false
	alice.Hand = []CardInstance{testCard(catalog.CardOrdenAbsoluto, "orden2")}
	require.True(t, s.playCard(alice.ID, "orden2", "point"))
	assert.NotNil(t, bob.boardCard("point"))
}

func TestVoluntadDrawsAndTogglesHero(t *testing.T) {
	s, alice, bob := newTestSession(nil)
	alice.Hand = []CardInstance{testCard(catalog.CardVoluntadDeAldia, "voluntad")}
	s.Deck = []CardInstance{testCard(catalog.CardTartapie, "d1")}
	bob.Flags.HeroRotated = true

	// Target is a player id for hero effects.
	require.True(t, s.playCard(alice.ID, "voluntad", bob.ID))

	assert.False(t, bob.Flags.HeroRotated)
	assert.Len(t, alice.Hand, 1)
}

func TestCaosrubiSetsDiscount(t *testing.T) {
	s, alice, _ := newTestSession(nil)
	alice.Hand = []CardInstance{testCard(catalog.CardCaosrubi, "rubi")}

	require.True(t, s.playCard(alice.ID, "rubi", ""))
	assert.True(t, alice.Flags.AbilityDiscount)
	// Relics rest on the board until end of turn.
	assert.NotNil(t, alice.boardCard("rubi"))
}

func TestSecondRelicPlayRejectedSameTurn(t *testing.T) {
	s, alice, _ := newTestSession(nil)
	alice.Hand = []CardInstance{
		testCard(catalog.CardCaosrubi, "r1"),
		testCard(catalog.CardVoluntadDeAldia, "r2"),
	}

	require.True(t, s.playCard(alice.ID, "r1", ""))
	require.False(t, s.playCard(alice.ID, "r2", ""))
	assert.Len(t, alice.Hand, 1)
}

func TestSabotajeadorRecoversMostRecentItem(t *testing.T) {
	s, alice, _ := newTestSession(nil)
	s.Discard = []CardInstance{
		testCard(catalog.CardZarpatrampa, "old-item"),
		testCard(catalog.CardTartapie, "point"),
		testCard(catalog.CardTratado, "new-item"),
	}

	s.applyEffect(alice, testCard(catalog.CardSabotajeador, "sab"), "")

	require.Len(t, alice.Hand, 1)
	assert.Equal(t, "new-item", alice.Hand[0].InstanceID)
	assert.Len(t, s.Discard, 2)
}

func TestCeleridadDrawsTwo(t *testing.T) {
	s, alice, _ := newTestSession(nil)
	s.Deck = []CardInstance{
		testCard(catalog.CardTartapie, "d1"),
		testCard(catalog.CardTartapie, "d2"),
		testCard(catalog.CardTartapie, "d3"),
	}

	s.applyEffect(alice, testCard(catalog.CardCeleridad, "pot"), "")
	assert.Len(t, alice.Hand, 2)
	assert.Len(t, s.Deck, 1)
}

func TestPointDenialBlocksPlay(t *testing.T) {
	s, alice, _ := newTestSession(nil)
	alice.Flags.CannotPlayPoints = true
	alice.Hand = []CardInstance{testCard(catalog.CardTartapie, "point")}

	require.False(t, s.playCard(alice.ID, "point", ""))
	assert.Len(t, alice.Hand, 1)
}
