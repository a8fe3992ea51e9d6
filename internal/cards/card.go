// Package cards defines the playing card value type shared by game state
// and its wire encoding.
package cards

import "fmt"

//go:generate msgp

//msgp:tuple Card

// Suit represents a card suit
type Suit uint8

const (
	Hearts Suit = iota
	Diamonds
	Clubs
	Spades
)

// String returns the string representation of a suit
func (s Suit) String() string {
	switch s {
	case Hearts:
		return "♥"
	case Diamonds:
		return "♦"
	case Clubs:
		return "♣"
	case Spades:
		return "♠"
	default:
		return "?"
	}
}

// Valid reports whether s is one of the four suits
func (s Suit) Valid() bool {
	return s <= Spades
}

// Value represents a card value, 2 through 14 with Ace high
type Value uint8

const (
	Two Value = iota + 2
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
	Ace
)

var valueChars = "23456789TJQKA"

// String returns the string representation of a value
func (v Value) String() string {
	if !v.Valid() {
		return "?"
	}
	return string(valueChars[v-Two])
}

// Valid reports whether v lies in 2..14
func (v Value) Valid() bool {
	return v >= Two && v <= Ace
}

// Card represents a playing card
type Card struct {
	Suit  Suit  `msg:"suit"`
	Value Value `msg:"value"`
}

// NewCard creates a new card
func NewCard(suit Suit, value Value) Card {
	return Card{Suit: suit, Value: value}
}

// String returns the string representation of a card (e.g., "A♥")
func (c Card) String() string {
	return fmt.Sprintf("%s%s", c.Value, c.Suit)
}

// Valid reports whether both suit and value are in range
func (c Card) Valid() bool {
	return c.Suit.Valid() && c.Value.Valid()
}
