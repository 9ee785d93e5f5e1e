package game

// TurnFlags are the per-turn one-shot markers on a player. They reset when
// that player's own turn begins; CannotPlayPoints instead clears when the
// afflicted player's turn ends, so a denial placed during the opponent's
// turn covers the whole of the victim's next turn.
type TurnFlags struct {
	HeroRotated      bool `json:"hero_rotated"`
	UsedTalent       bool `json:"used_talent"`
	UsedMastery      bool `json:"used_mastery"`
	PlayedFaction    bool `json:"played_faction"`
	PlayedAttack     bool `json:"played_attack"`
	PlayedRelic      bool `json:"played_relic"`
	CannotPlayPoints bool `json:"cannot_play_points"`
	AbilityDiscount  bool `json:"ability_discount"`
}

// reset clears all flags for a fresh turn, preserving a pending
// point-play denial.
func (f *TurnFlags) reset() {
	denied := f.CannotPlayPoints
	*f = TurnFlags{CannotPlayPoints: denied}
}

// Player is one participant of a session. Hand and board are owned
// exclusively by the player and mutated only through the session's
// resolvers.
type Player struct {
	ID           string         `json:"id"`
	ConnectionID string         `json:"-"`
	Name         string         `json:"name"`
	HeroID       string         `json:"hero_id"`
	Hand         []CardInstance `json:"hand"`
	Board        []CardInstance `json:"board"`
	Score        int            `json:"score"`
	Flags        TurnFlags      `json:"flags"`
}

// boardCard returns a pointer to the board card with the given instance
// id, or nil.
func (p *Player) boardCard(instanceID string) *CardInstance {
	for i := range p.Board {
		if p.Board[i].InstanceID == instanceID {
			return &p.Board[i]
		}
	}
	return nil
}

// handContains reports whether the player holds the instance in hand.
func (p *Player) handContains(instanceID string) bool {
	for _, c := range p.Hand {
		if c.InstanceID == instanceID {
			return true
		}
	}
	return false
}
