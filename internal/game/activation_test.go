package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tartapies/tartapies-server-go/internal/catalog"
)

func TestActivateByRollFlipsOnEven(t *testing.T) {
	rng := &scriptRand{rolls: []int{4}}
	s, alice, _ := newTestSession(rng)
	alice.Board = []CardInstance{testCard(catalog.CardNigromancia, "potion")}

	require.True(t, s.activateCard(alice.ID, "potion", ActivateByRoll))
	card := alice.boardCard("potion")
	require.NotNil(t, card)
	assert.False(t, card.FaceDown)
}

func TestActivateByRollStaysDownOnOdd(t *testing.T) {
	rng := &scriptRand{rolls: []int{5}}
	s, alice, _ := newTestSession(rng)
	alice.Board = []CardInstance{testCard(catalog.CardNigromancia, "potion")}

	// The intent mutates the log, so it is accepted, but the card stays
	// face-down.
	require.True(t, s.activateCard(alice.ID, "potion", ActivateByRoll))
	card := alice.boardCard("potion")
	require.NotNil(t, card)
	assert.True(t, card.FaceDown)
}

func TestActivateByDiscardPaysFromHand(t *testing.T) {
	s, alice, _ := newTestSession(nil)
	alice.Board = []CardInstance{testCard(catalog.CardNigromancia, "potion")}
	alice.Hand = []CardInstance{testCard(catalog.CardTratado, "cost")}

	require.True(t, s.activateCard(alice.ID, "potion", ActivateByDiscard))
	assert.Empty(t, alice.Hand)
	assert.False(t, alice.boardCard("potion").FaceDown)
}

func TestActivateByDiscardFailsOnEmptyHand(t *testing.T) {
	s, alice, _ := newTestSession(nil)
	alice.Board = []CardInstance{testCard(catalog.CardNigromancia, "potion")}

	require.False(t, s.activateCard(alice.ID, "potion", ActivateByDiscard))
	assert.True(t, alice.boardCard("potion").FaceDown)
}

func TestCeleridadActivationDrawsAndConsumes(t *testing.T) {
	rng := &scriptRand{rolls: []int{6}}
	s, alice, _ := newTestSession(rng)
	alice.Board = []CardInstance{testCard(catalog.CardCeleridad, "potion")}
	s.Deck = []CardInstance{
		testCard(catalog.CardTartapie, "d1"),
		testCard(catalog.CardTartapie, "d2"),
	}

	require.True(t, s.activateCard(alice.ID, "potion", ActivateByRoll))
	assert.Len(t, alice.Hand, 2)
	// Instant potions are consumed by activation.
	assert.Nil(t, alice.boardCard("potion"))
	require.Len(t, s.Discard, 1)
	assert.Equal(t, "potion", s.Discard[0].InstanceID)
}

func TestActivateRejectsFaceUpAndForeignCards(t *testing.T) {
	rng := &scriptRand{rolls: []int{6, 6}}
	s, alice, bob := newTestSession(rng)
	faceUp := testCard(catalog.CardEscudo, "up")
	faceUp.FaceDown = false
	alice.Board = []CardInstance{faceUp}
	bob.Board = []CardInstance{testCard(catalog.CardNigromancia, "theirs")}

	require.False(t, s.activateCard(alice.ID, "up", ActivateByRoll))
	require.False(t, s.activateCard(alice.ID, "theirs", ActivateByRoll))
	require.False(t, s.activateCard(bob.ID, "theirs", ActivateByRoll))
}

func TestActivateRejectsNonPotionBoardCards(t *testing.T) {
	s, alice, _ := newTestSession(nil)
	point := testCard(catalog.CardTartapie, "point")
	point.FaceDown = true // corrupted flag must not make it activatable
	alice.Board = []CardInstance{point}

	require.False(t, s.activateCard(alice.ID, "point", ActivateByRoll))
}
