package cards

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tinylib/msgp/msgp"
)

func TestParseCards(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []Card
		wantErr  bool
	}{
		{
			name:  "ace and ten",
			input: "AhTs",
			expected: []Card{
				{Suit: Hearts, Value: Ace},
				{Suit: Spades, Value: Ten},
			},
		},
		{
			name:  "spaced and mixed case",
			input: "kc qD 2h",
			expected: []Card{
				{Suit: Clubs, Value: King},
				{Suit: Diamonds, Value: Queen},
				{Suit: Hearts, Value: Two},
			},
		},
		{
			name:     "empty",
			input:    "",
			expected: []Card{},
		},
		{name: "invalid value", input: "XsKs", wantErr: true},
		{name: "invalid suit", input: "AxKs", wantErr: true},
		{name: "odd length", input: "AsK", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseCards(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestParseCard(t *testing.T) {
	c, err := ParseCard("qs")
	require.NoError(t, err)
	assert.Equal(t, NewCard(Spades, Queen), c)

	for _, in := range []string{"", "A", "Ahs", "ı", "1h", "A?"} {
		_, err := ParseCard(in)
		assert.Error(t, err, "input %q", in)
	}
}

func TestMustParseCardsPanics(t *testing.T) {
	assert.Panics(t, func() { MustParseCards("Zz") })
}

func TestCardString(t *testing.T) {
	assert.Equal(t, "A♥", NewCard(Hearts, Ace).String())
	assert.Equal(t, "T♠", NewCard(Spades, Ten).String())
	assert.Equal(t, "2♣", NewCard(Clubs, Two).String())
	assert.Equal(t, "??", Card{Suit: 9, Value: 1}.String())
}

func TestCardValid(t *testing.T) {
	assert.True(t, NewCard(Hearts, Two).Valid())
	assert.True(t, NewCard(Spades, Ace).Valid())
	assert.False(t, Card{Suit: 4, Value: Ace}.Valid())
	assert.False(t, Card{Suit: Hearts, Value: 1}.Valid())
	assert.False(t, Card{Suit: Hearts, Value: 15}.Valid())
}

func TestCardMsgpEncoding(t *testing.T) {
	c := NewCard(Clubs, King)
	b, err := c.MarshalMsg(nil)
	require.NoError(t, err)
	// fixarray(2), fixint 2, fixint 13
	assert.Equal(t, []byte{0x92, 0x02, 0x0d}, b)
	assert.LessOrEqual(t, len(b), c.Msgsize())

	var out Card
	rest, err := out.UnmarshalMsg(append(b, 0xc0))
	require.NoError(t, err)
	assert.Equal(t, c, out)
	assert.Equal(t, []byte{0xc0}, rest)
}

func TestCardMsgpOutOfRangeRoundTrips(t *testing.T) {
	// The codec carries whatever the fields hold; range checks belong to callers.
	c := Card{Suit: 200, Value: 255}
	b, err := c.MarshalMsg(nil)
	require.NoError(t, err)

	var out Card
	_, err = out.UnmarshalMsg(b)
	require.NoError(t, err)
	assert.Equal(t, c, out)
}

func TestCardMsgpRejectsWrongShape(t *testing.T) {
	b := msgp.AppendArrayHeader(nil, 3)
	b = msgp.AppendUint8(b, 0)
	b = msgp.AppendUint8(b, 2)
	b = msgp.AppendUint8(b, 0)

	var out Card
	_, err := out.UnmarshalMsg(b)
	require.Error(t, err)

	_, err = out.UnmarshalMsg([]byte{0x92, 0x01})
	require.Error(t, err)
}
