package shielded

import (
	"fmt"

	"github.com/tinylib/msgp/msgp"
)

// MarshalHands encodes hands, in order, as a msgpack array of
// [player_id, [[suit, value]...]] tuples
func MarshalHands(hands []PlayerHand) ([]byte, error) {
	size := msgp.ArrayHeaderSize
	for i := range hands {
		size += hands[i].Msgsize()
	}
	o := make([]byte, 0, size)
	o = msgp.AppendArrayHeader(o, uint32(len(hands)))
	var err error
	for i := range hands {
		o, err = hands[i].MarshalMsg(o)
		if err != nil {
			return nil, fmt.Errorf("encoding hand %d: %w", i, err)
		}
	}
	return o, nil
}

// UnmarshalHands decodes a snapshot produced by MarshalHands. Trailing bytes
// are an error, as is any array length larger than the input left to read.
func UnmarshalHands(b []byte) ([]PlayerHand, error) {
	n, o, err := msgp.ReadArrayHeaderBytes(b)
	if err != nil {
		return nil, fmt.Errorf("reading hand count: %w", err)
	}
	if int64(n) > int64(len(o)) {
		return nil, fmt.Errorf("reading %d hands: %w", n, msgp.ErrShortBytes)
	}
	hands := make([]PlayerHand, n)
	for i := range hands {
		if err := checkCardCount(o); err != nil {
			return nil, fmt.Errorf("decoding hand %d: %w", i, err)
		}
		o, err = hands[i].UnmarshalMsg(o)
		if err != nil {
			return nil, fmt.Errorf("decoding hand %d: %w", i, err)
		}
	}
	if len(o) != 0 {
		return nil, fmt.Errorf("%d trailing bytes after %d hands", len(o), n)
	}
	return hands, nil
}

// checkCardCount peeks at the card array header of the hand at the start of
// b. The generated decoder allocates whatever length the header claims.
func checkCardCount(b []byte) error {
	_, o, err := msgp.ReadArrayHeaderBytes(b)
	if err != nil {
		return err
	}
	if o, err = msgp.Skip(o); err != nil {
		return msgp.WrapError(err, "PlayerID")
	}
	n, o, err := msgp.ReadArrayHeaderBytes(o)
	if err != nil {
		return msgp.WrapError(err, "Cards")
	}
	if int64(n) > int64(len(o)) {
		return msgp.WrapError(msgp.ErrShortBytes, "Cards")
	}
	return nil
}
