package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tartapies/tartapies-server-go/internal/catalog"
)

func TestBuildDeckExpandsCatalog(t *testing.T) {
	deck := buildDeck(&scriptRand{})

	require.Len(t, deck, catalog.DeckSize())

	counts := make(map[string]int)
	seen := make(map[string]bool)
	for _, c := range deck {
		counts[c.ID]++
		assert.False(t, seen[c.InstanceID], "duplicate instance id %s", c.InstanceID)
		seen[c.InstanceID] = true
	}
	for _, def := range catalog.Cards() {
		assert.Equal(t, def.Copies, counts[def.ID], "copies of %s", def.ID)
	}
}

func TestBuildDeckFaceDownDefaults(t *testing.T) {
	deck := buildDeck(&scriptRand{})

	for _, c := range deck {
		wantFaceDown := c.Category == catalog.CategoryPotion || c.Category == catalog.CategorySuper
		assert.Equal(t, wantFaceDown, c.FaceDown, "%s face-down default", c.ID)
		assert.False(t, c.Rotated)
	}
}

func TestRollSucceedsOnEven(t *testing.T) {
	for roll := 1; roll <= 6; roll++ {
		if roll%2 == 0 {
			assert.True(t, RollSucceeds(roll), "roll %d", roll)
		} else {
			assert.False(t, RollSucceeds(roll), "roll %d", roll)
		}
	}
}
