package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeckSize(t *testing.T) {
	// 22 points, 8 attacks, 6 defenses, 3 relics, 3 factions,
	// 2 potions, 2 super items.
	assert.Equal(t, 46, DeckSize())
}

func TestLookup(t *testing.T) {
	def, ok := Lookup(CardTartapie)
	require.True(t, ok)
	assert.Equal(t, CategoryPoint, def.Category)
	assert.Equal(t, 1, def.PointValue)
	assert.Equal(t, 20, def.Copies)

	_, ok = Lookup("no_such_card")
	assert.False(t, ok)
}

func TestCardsReturnsCopy(t *testing.T) {
	cards := Cards()
	require.NotEmpty(t, cards)
	cards[0].Copies = 999

	again := Cards()
	assert.NotEqual(t, 999, again[0].Copies)
}

func TestHeroes(t *testing.T) {
	heroes := Heroes()
	require.Len(t, heroes, 4)

	hero, ok := LookupHero(HeroZaniah)
	require.True(t, ok)
	assert.Equal(t, "Escudo Mágico", hero.Talent)
	assert.Equal(t, "Quiromancia", hero.Mastery)
}

func TestHeroesNeverInDeck(t *testing.T) {
	for _, def := range Cards() {
		assert.NotEqual(t, CategoryHeroCard, def.Category, "%s", def.ID)
	}
}
