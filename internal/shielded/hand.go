package shielded

import "github.com/lox/shieldedgame/internal/cards"

//go:generate msgp

//msgp:tuple PlayerHand

// PlayerHand is the ordered set of cards held by one player
type PlayerHand struct {
	PlayerID uint64       `msg:"player_id"`
	Cards    []cards.Card `msg:"cards"`
}

// Score returns the sum of the hand's card values. Suits never contribute.
func (h PlayerHand) Score() uint32 {
	var score uint32
	for _, c := range h.Cards {
		score += uint32(c.Value)
	}
	return score
}

func (h PlayerHand) clone() PlayerHand {
	return PlayerHand{
		PlayerID: h.PlayerID,
		Cards:    append([]cards.Card(nil), h.Cards...),
	}
}
