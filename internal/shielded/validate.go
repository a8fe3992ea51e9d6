package shielded

import (
	"errors"
	"fmt"

	"github.com/lox/shieldedgame/internal/cards"
)

var (
	// ErrInvalidCard is returned for a suit outside 0..3 or a value outside 2..14
	ErrInvalidCard = errors.New("invalid card")
	// ErrDuplicatePlayer is returned when a player already holds a hand
	ErrDuplicatePlayer = errors.New("player already dealt")
)

// ValidateHand checks a prospective deal against the game without
// modifying it. DealHand never calls this.
func (g *Game) ValidateHand(playerID uint64, cs []cards.Card) error {
	for i, c := range cs {
		if !c.Valid() {
			return fmt.Errorf("card %d (suit=%d value=%d): %w", i, c.Suit, c.Value, ErrInvalidCard)
		}
	}
	for _, h := range g.hands {
		if h.PlayerID == playerID {
			return fmt.Errorf("player %d: %w", playerID, ErrDuplicatePlayer)
		}
	}
	return nil
}
