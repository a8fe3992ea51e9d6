// Package shielded holds the per-player hands of a hidden-information card
// game and determines its winner from aggregate hand scores.
//
// Game is the plaintext reference logic that an external secure
// multiparty computation cluster would execute over encrypted hands. It
// performs no I/O or encryption, and the same hands dealt in the same order
// always produce the same result.
//
// # Basic Usage
//
//	g := shielded.New()
//	g.DealHand(1, cards.MustParseCards("Ah Ts"))
//	g.DealHand(2, cards.MustParseCards("Kc Qd"))
//	if id, ok := g.DetermineWinner(); ok {
//	    fmt.Println("winner", id) // 2
//	}
//
// Hands cross the boundary to the computation cluster as msgpack, see
// MarshalHands and UnmarshalHands.
package shielded
