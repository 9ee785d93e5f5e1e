package game

import (
	"github.com/tartapies/tartapies-server-go/internal/catalog"
)

// SessionView is the full-state snapshot handed to the transport layer
// after every mutating intent. Clients are stateless: they render
// whatever the latest snapshot says, which makes reconnects trivial.
type SessionView struct {
	SessionID          string       `json:"session_id"`
	Phase              Phase        `json:"phase"`
	TurnIndex          int          `json:"turn_index"`
	ActivePlayerID     string       `json:"active_player_id,omitempty"`
	WaitingForResponse bool         `json:"waiting_for_response"`
	DeckCount          int          `json:"deck_count"`
	Discard            []CardInstance `json:"discard"`
	Stack              []StackEntry `json:"stack"`
	Players            []PlayerView `json:"players"`
	Ended              bool         `json:"ended"`
	Winner             string       `json:"winner,omitempty"`
	Log                []string     `json:"log"`
}

// PlayerView is one player's slice of the snapshot.
type PlayerView struct {
	ID       string         `json:"id"`
	Name     string         `json:"name"`
	HeroID   string         `json:"hero_id"`
	HeroName string         `json:"hero_name"`
	Talent   string         `json:"talent"`
	Mastery  string         `json:"mastery"`
	Hand     []CardInstance `json:"hand"`
	Board    []CardInstance `json:"board"`
	Score    int            `json:"score"`
	Flags    TurnFlags      `json:"flags"`
}

// view builds the snapshot. Caller must hold the session lock.
func (s *Session) view() *SessionView {
	v := &SessionView{
		SessionID:          s.ID,
		Phase:              s.Phase,
		TurnIndex:          s.TurnIndex,
		WaitingForResponse: s.WaitingForResponse,
		DeckCount:          len(s.Deck),
		Discard:            append([]CardInstance(nil), s.Discard...),
		Stack:              append([]StackEntry(nil), s.ActionStack...),
		Ended:              s.Ended,
		Winner:             s.Winner,
		Log:                append([]string(nil), s.Log...),
	}
	if active := s.activePlayer(); active != nil {
		v.ActivePlayerID = active.ID
	}
	for _, p := range s.Players {
		pv := PlayerView{
			ID:     p.ID,
			Name:   p.Name,
			HeroID: p.HeroID,
			Hand:   append([]CardInstance(nil), p.Hand...),
			Board:  append([]CardInstance(nil), p.Board...),
			Score:  p.Score,
			Flags:  p.Flags,
		}
		if hero, ok := catalog.LookupHero(p.HeroID); ok {
			pv.HeroName = hero.Name
			pv.Talent = hero.Talent
			pv.Mastery = hero.Mastery
		}
		v.Players = append(v.Players, pv)
	}
	return v
}
