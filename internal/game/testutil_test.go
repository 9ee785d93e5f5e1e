package game

import (
	"fmt"

	"github.com/tartapies/tartapies-server-go/internal/catalog"
)

// scriptRand is a deterministic Randomizer for tests: die rolls and
// index picks are scripted, shuffles are no-ops (piles keep their
// order) and instance ids are sequential.
type scriptRand struct {
	rolls  []int
	ints   []int
	nextID int
}

func (r *scriptRand) Shuffle(int, func(i, j int)) {}

func (r *scriptRand) Roll() int {
	if len(r.rolls) == 0 {
		return 1
	}
	roll := r.rolls[0]
	r.rolls = r.rolls[1:]
	return roll
}

func (r *scriptRand) Intn(n int) int {
	if len(r.ints) == 0 {
		return 0
	}
	v := r.ints[0]
	r.ints = r.ints[1:]
	return v % n
}

func (r *scriptRand) NewID() string {
	r.nextID++
	return fmt.Sprintf("inst-%03d", r.nextID)
}

// testCard instantiates a catalog card with a fixed instance id.
func testCard(id, instanceID string) CardInstance {
	def, ok := catalog.Lookup(id)
	if !ok {
		panic("unknown card id " + id)
	}
	return CardInstance{
		ID:         def.ID,
		InstanceID: instanceID,
		Name:       def.Name,
		Category:   def.Category,
		PointValue: def.PointValue,
		FaceDown:   def.Category == catalog.CategoryPotion || def.Category == catalog.CategorySuper,
	}
}

// newTestSession builds a two-player session already in the action
// phase with empty hands and boards. Alice (p1) is the active player.
func newTestSession(rng *scriptRand) (*Session, *Player, *Player) {
	if rng == nil {
		rng = &scriptRand{}
	}
	s := NewSession("test-session", rng, nil)
	alice := &Player{ID: "p1", Name: "Alice", HeroID: catalog.HeroOlaf}
	bob := &Player{ID: "p2", Name: "Bob", HeroID: catalog.HeroZaniah}
	s.Players = []*Player{alice, bob}
	s.TurnIndex = 0
	s.Phase = PhaseAction
	return s, alice, bob
}

// allInstanceIDs collects every instance id across all containers of a
// session, for conservation checks.
func allInstanceIDs(s *Session) []string {
	var ids []string
	for _, c := range s.Deck {
		ids = append(ids, c.InstanceID)
	}
	for _, c := range s.Discard {
		ids = append(ids, c.InstanceID)
	}
	for _, e := range s.ActionStack {
		ids = append(ids, e.Card.InstanceID)
	}
	for _, p := range s.Players {
		for _, c := range p.Hand {
			ids = append(ids, c.InstanceID)
		}
		for _, c := range p.Board {
			ids = append(ids, c.InstanceID)
		}
	}
	return ids
}
