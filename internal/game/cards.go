package game

import (
	"github.com/tartapies/tartapies-server-go/internal/catalog"
)

// CardInstance is one physical copy of a catalog card inside a session.
// Identity fields are immutable after deck build; FaceDown and Rotated are
// the only mutable flags. An instance lives in exactly one container
// (hand, board, deck, discard or a stack entry) at any time.
type CardInstance struct {
	ID         string           `json:"id"`
	InstanceID string           `json:"instance_id"`
	Name       string           `json:"name"`
	Category   catalog.Category `json:"category"`
	PointValue int              `json:"point_value,omitempty"`
	FaceDown   bool             `json:"face_down"`
	Rotated    bool             `json:"rotated"`
}

// IsPoint reports whether the instance is a Point (Tartapie) card.
func (c CardInstance) IsPoint() bool {
	return c.Category == catalog.CategoryPoint
}

// buildDeck expands the catalog into a shuffled multiset of instances.
// Potions and super items default to face-down: they sit inert on the
// board until explicitly activated.
func buildDeck(rng Randomizer) []CardInstance {
	deck := make([]CardInstance, 0, catalog.DeckSize())
	for _, def := range catalog.Cards() {
		for i := 0; i < def.Copies; i++ {
			deck = append(deck, CardInstance{
				ID:         def.ID,
				InstanceID: rng.NewID(),
				Name:       def.Name,
				Category:   def.Category,
				PointValue: def.PointValue,
				FaceDown:   def.Category == catalog.CategoryPotion || def.Category == catalog.CategorySuper,
			})
		}
	}
	rng.Shuffle(len(deck), func(i, j int) {
		deck[i], deck[j] = deck[j], deck[i]
	})
	return deck
}

// removeInstance removes the card with the given instance id from a pile,
// returning the card, the remaining pile and whether it was found.
func removeInstance(pile []CardInstance, instanceID string) (CardInstance, []CardInstance, bool) {
	for i, c := range pile {
		if c.InstanceID == instanceID {
			return c, append(pile[:i], pile[i+1:]...), true
		}
	}
	return CardInstance{}, pile, false
}
