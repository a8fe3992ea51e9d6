package cards

import (
	"fmt"
	"strings"
)

// ParseCards parses a string of card notation into a slice of cards.
// Format: "AhTs" or "Ah Ts" where each card is [Value][Suit]
// Values: A, K, Q, J, T, 9, 8, 7, 6, 5, 4, 3, 2
// Suits: h (hearts), d (diamonds), c (clubs), s (spades)
func ParseCards(s string) ([]Card, error) {
	s = strings.ReplaceAll(s, " ", "")
	if len(s)%2 != 0 {
		return nil, fmt.Errorf("invalid card string length: %d (must be even)", len(s))
	}

	cs := make([]Card, 0, len(s)/2)
	for i := 0; i < len(s); i += 2 {
		c, err := ParseCard(s[i : i+2])
		if err != nil {
			return nil, fmt.Errorf("card at position %d: %w", i, err)
		}
		cs = append(cs, c)
	}
	return cs, nil
}

// ParseCard parses a single two character card such as "Ah". Case is
// ignored.
func ParseCard(s string) (Card, error) {
	if u := strings.ToUpper(s); len(s) == 2 && len(u) == 2 {
		s = u
	} else {
		return Card{}, fmt.Errorf("invalid card %q", s)
	}
	value, err := parseValue(s[0])
	if err != nil {
		return Card{}, err
	}
	suit, err := parseSuit(s[1])
	if err != nil {
		return Card{}, err
	}
	return NewCard(suit, value), nil
}

// MustParseCards is ParseCards for literals known to be well formed
func MustParseCards(s string) []Card {
	cs, err := ParseCards(s)
	if err != nil {
		panic(err)
	}
	return cs
}

func parseValue(c byte) (Value, error) {
	if i := strings.IndexByte(valueChars, c); i >= 0 {
		return Two + Value(i), nil
	}
	return 0, fmt.Errorf("unknown value '%c'", c)
}

func parseSuit(c byte) (Suit, error) {
	switch c {
	case 'H':
		return Hearts, nil
	case 'D':
		return Diamonds, nil
	case 'C':
		return Clubs, nil
	case 'S':
		return Spades, nil
	default:
		return 0, fmt.Errorf("unknown suit '%c'", c)
	}
}
