// Package config loads table files describing the hands to deal.
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/lox/shieldedgame/internal/cards"
	"github.com/lox/shieldedgame/internal/shielded"
)

// TableConfig represents a complete table file
type TableConfig struct {
	Game  *GameSettings `hcl:"game,block"`
	Hands []HandConfig  `hcl:"hand,block"`
}

// GameSettings contains table-level settings
type GameSettings struct {
	LogLevel string `hcl:"log_level,optional"`
	// Strict rejects out-of-range cards and repeated players before dealing
	Strict bool `hcl:"strict,optional"`
}

// HandConfig is one player's hand, labelled by player id
type HandConfig struct {
	Player string   `hcl:"player,label"`
	Cards  []string `hcl:"cards"`
}

// DefaultTableConfig returns the demonstration table
func DefaultTableConfig() *TableConfig {
	return &TableConfig{
		Game: &GameSettings{LogLevel: "info"},
		Hands: []HandConfig{
			{Player: "1", Cards: []string{"Ah", "Ts"}},
			{Player: "2", Cards: []string{"Kc", "Qd"}},
		},
	}
}

// LoadTableConfig loads a table from an HCL file. A missing file yields
// the default table.
func LoadTableConfig(filename string) (*TableConfig, error) {
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return DefaultTableConfig(), nil
	}

	src, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read table file: %w", err)
	}
	return ParseTableConfig(src, filename)
}

// ParseTableConfig decodes HCL source into a table config
func ParseTableConfig(src []byte, filename string) (*TableConfig, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var config TableConfig
	diags = gohcl.DecodeBody(file.Body, nil, &config)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	config.Settings()
	return &config, nil
}

// Settings returns the game block, filling in defaults for a missing block
// or log level
func (c *TableConfig) Settings() *GameSettings {
	if c.Game == nil {
		c.Game = &GameSettings{}
	}
	if c.Game.LogLevel == "" {
		c.Game.LogLevel = "info"
	}
	return c.Game
}

// ValidateLogLevel rejects level names the logger does not know
func ValidateLogLevel(level string) error {
	switch level {
	case "debug", "info", "warn", "error":
		return nil
	default:
		return fmt.Errorf("invalid log level: %s", level)
	}
}

// Validate checks that every hand has a numeric player id and parseable cards
func (c *TableConfig) Validate() error {
	if err := ValidateLogLevel(c.Settings().LogLevel); err != nil {
		return err
	}
	_, err := c.PlayerHands()
	return err
}

// PlayerHands converts the configured hands, in file order
func (c *TableConfig) PlayerHands() ([]shielded.PlayerHand, error) {
	hands := make([]shielded.PlayerHand, 0, len(c.Hands))
	for _, hc := range c.Hands {
		id, err := strconv.ParseUint(hc.Player, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("hand %q: invalid player id: %w", hc.Player, err)
		}
		cs := make([]cards.Card, 0, len(hc.Cards))
		for _, s := range hc.Cards {
			card, err := cards.ParseCard(s)
			if err != nil {
				return nil, fmt.Errorf("hand %q: %w", hc.Player, err)
			}
			cs = append(cs, card)
		}
		hands = append(hands, shielded.PlayerHand{PlayerID: id, Cards: cs})
	}
	return hands, nil
}

// NewGame deals the configured hands into a fresh game. In strict mode each
// hand is validated against the hands already dealt.
func (c *TableConfig) NewGame() (*shielded.Game, error) {
	hands, err := c.PlayerHands()
	if err != nil {
		return nil, err
	}
	strict := c.Settings().Strict
	g := shielded.New()
	for _, h := range hands {
		if strict {
			if err := g.ValidateHand(h.PlayerID, h.Cards); err != nil {
				return nil, err
			}
		}
		g.DealHand(h.PlayerID, h.Cards)
	}
	return g, nil
}
