package game

import (
	"github.com/tartapies/tartapies-server-go/internal/catalog"
)

// Score recomputes a board's point total from scratch: the sum of Point
// card values plus faction contributions. Aldia grants an extra point
// when another Faction card shares the board; Nume, the neutral faction,
// always contributes zero.
func Score(board []CardInstance) int {
	factions := 0
	for _, c := range board {
		if c.Category == catalog.CategoryFaction {
			factions++
		}
	}

	total := 0
	for _, c := range board {
		switch c.Category {
		case catalog.CategoryPoint:
			total += c.PointValue
		case catalog.CategoryFaction:
			switch c.ID {
			case catalog.CardAldia:
				total++
				if factions > 1 {
					total++
				}
			case catalog.CardGremio:
				total++
			case catalog.CardNume:
				// Neutral: contributes nothing.
			}
		}
	}
	return total
}
