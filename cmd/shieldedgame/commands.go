package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/lox/shieldedgame/cmd/shieldedgame/shared"
	"github.com/lox/shieldedgame/internal/config"
	"github.com/lox/shieldedgame/internal/fileutil"
	"github.com/lox/shieldedgame/internal/shielded"
)

const statusLine = "Hidden-information game engine active."

// StatusCmd prints the static status line
type StatusCmd struct{}

func (c *StatusCmd) Run() error {
	return c.run(os.Stdout)
}

func (c *StatusCmd) run(w io.Writer) error {
	_, err := fmt.Fprintln(w, headerStyle.Render(statusLine))
	return err
}

// PlayCmd deals the hands of a table file and reports the winner
type PlayCmd struct {
	Table    string `kong:"arg,optional,default='table.hcl',help='Path to HCL table file'"`
	LogLevel string `kong:"help='Log level (overrides table file)'"`
	Strict   bool   `kong:"help='Reject invalid cards and repeated players'"`
}

func (c *PlayCmd) Run() error {
	return c.run(os.Stdout)
}

func (c *PlayCmd) run(w io.Writer) error {
	cfg, logger, err := loadTable(c.Table, c.LogLevel)
	if err != nil {
		return err
	}
	if c.Strict {
		cfg.Settings().Strict = true
	}

	g, err := cfg.NewGame()
	if err != nil {
		return fmt.Errorf("dealing %s: %w", c.Table, err)
	}
	logger.Info("Dealt table", "hands", g.Len(), "strict", cfg.Settings().Strict)
	return reportWinner(w, logger, g)
}

// ExportCmd writes the hands of a table file as a msgpack snapshot
type ExportCmd struct {
	Table    string `kong:"arg,help='Path to HCL table file'"`
	Output   string `kong:"short='o',default='hands.msgp',help='Snapshot file to write'"`
	LogLevel string `kong:"help='Log level (overrides table file)'"`
}

func (c *ExportCmd) Run() error {
	cfg, logger, err := loadTable(c.Table, c.LogLevel)
	if err != nil {
		return err
	}
	g, err := cfg.NewGame()
	if err != nil {
		return fmt.Errorf("dealing %s: %w", c.Table, err)
	}

	data, err := shielded.MarshalHands(g.Hands())
	if err != nil {
		return err
	}
	if err := fileutil.WriteFileAtomic(c.Output, data, 0o600); err != nil {
		return fmt.Errorf("writing snapshot: %w", err)
	}
	logger.Info("Wrote snapshot", "file", c.Output, "hands", g.Len(), "bytes", len(data))
	return nil
}

// WinnerCmd reads a msgpack snapshot and reports the winner
type WinnerCmd struct {
	Snapshot string `kong:"arg,help='Snapshot file written by export'"`
	LogLevel string `kong:"default='info',enum='debug,info,warn,error',help='Log level'"`
}

func (c *WinnerCmd) Run() error {
	return c.run(os.Stdout)
}

func (c *WinnerCmd) run(w io.Writer) error {
	if err := config.ValidateLogLevel(c.LogLevel); err != nil {
		return err
	}
	logger := shared.SetupLogger(c.LogLevel)

	data, err := os.ReadFile(c.Snapshot)
	if err != nil {
		return err
	}
	hands, err := shielded.UnmarshalHands(data)
	if err != nil {
		return fmt.Errorf("reading snapshot %s: %w", c.Snapshot, err)
	}
	logger.Debug("Loaded snapshot", "file", c.Snapshot, "hands", len(hands))
	return reportWinner(w, logger, shielded.FromHands(hands))
}

func loadTable(path, levelOverride string) (*config.TableConfig, *log.Logger, error) {
	cfg, err := config.LoadTableConfig(path)
	if err != nil {
		return nil, nil, fmt.Errorf("loading table: %w", err)
	}
	if levelOverride != "" {
		cfg.Settings().LogLevel = levelOverride
	}
	if err := cfg.Validate(); err != nil {
		return nil, nil, fmt.Errorf("invalid table: %w", err)
	}
	logger := shared.SetupLogger(cfg.Settings().LogLevel)
	logger.Debug("Loaded table", "file", path, "hands", len(cfg.Hands))
	return cfg, logger, nil
}

func reportWinner(w io.Writer, logger *log.Logger, g *shielded.Game) error {
	for _, h := range g.Hands() {
		logger.Debug("Scored hand", "player", h.PlayerID, "cards", len(h.Cards))
	}

	audit := fmt.Sprintf("Audit: %d hands scored from totals only, no cards shown", g.Len())
	if _, err := fmt.Fprintln(w, auditStyle.Render(audit)); err != nil {
		return err
	}

	winner, ok := g.DetermineWinner()
	if !ok {
		_, err := fmt.Fprintln(w, mutedStyle.Render("No winner"))
		return err
	}
	_, err := fmt.Fprintln(w, winnerStyle.Render(fmt.Sprintf("Winner: player %d", winner)))
	return err
}
