package shielded

import "github.com/lox/shieldedgame/internal/cards"

// Game accumulates dealt hands and picks the highest scoring one.
// It is not safe for concurrent use.
type Game struct {
	hands []PlayerHand
	// finished is reserved for a future lifecycle; nothing sets it yet.
	finished bool
}

// New returns an empty game
func New() *Game {
	return &Game{}
}

// DealHand appends a hand for playerID. Cards are copied so the game owns
// them. Neither card ranges nor duplicate player IDs are checked here; use
// ValidateHand first when the caller wants that.
func (g *Game) DealHand(playerID uint64, cs []cards.Card) {
	g.hands = append(g.hands, PlayerHand{
		PlayerID: playerID,
		Cards:    append([]cards.Card(nil), cs...),
	})
}

// DetermineWinner returns the player whose hand has the highest score.
// Hands are visited in deal order and the leader only changes on a strictly
// greater score, so the earliest of tied hands wins. The running best starts
// at zero: with no hands, or only zero-score hands, there is no winner.
func (g *Game) DetermineWinner() (uint64, bool) {
	var (
		winner   uint64
		found    bool
		maxScore uint32
	)
	for _, h := range g.hands {
		if score := h.Score(); score > maxScore {
			maxScore = score
			winner = h.PlayerID
			found = true
		}
	}
	return winner, found
}

// FromHands builds a game by dealing hands in order
func FromHands(hands []PlayerHand) *Game {
	g := New()
	for _, h := range hands {
		g.DealHand(h.PlayerID, h.Cards)
	}
	return g
}

// Hands returns a copy of the dealt hands in deal order
func (g *Game) Hands() []PlayerHand {
	out := make([]PlayerHand, len(g.hands))
	for i, h := range g.hands {
		out[i] = h.clone()
	}
	return out
}

// Len returns the number of dealt hands
func (g *Game) Len() int {
	return len(g.hands)
}

// IsFinished reports the reserved lifecycle flag. It is always false.
func (g *Game) IsFinished() bool {
	return g.finished
}
