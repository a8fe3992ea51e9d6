package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/lox/shieldedgame/internal/shielded"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadTableConfigMissingFileUsesDefault(t *testing.T) {
	cfg, err := LoadTableConfig(filepath.Join(t.TempDir(), "missing.hcl"))
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	g, err := cfg.NewGame()
	require.NoError(t, err)
	winner, ok := g.DetermineWinner()
	require.True(t, ok)
	assert.Equal(t, uint64(2), winner)
}

func TestLoadTableConfigFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "table.hcl")
	src := `
game {
  log_level = "debug"
}

hand "5" {
  cards = ["Th", "Ts"]
}

hand "7" {
  cards = ["Ac", "6d"]
}
`
	require.NoError(t, os.WriteFile(path, []byte(src), 0o644))

	cfg, err := LoadTableConfig(path)
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())
	assert.Equal(t, "debug", cfg.Game.LogLevel)
	assert.False(t, cfg.Game.Strict)
	require.Len(t, cfg.Hands, 2)

	g, err := cfg.NewGame()
	require.NoError(t, err)
	winner, ok := g.DetermineWinner()
	require.True(t, ok)
	assert.Equal(t, uint64(5), winner)
}

func TestParseTableConfigDefaults(t *testing.T) {
	cfg, err := ParseTableConfig([]byte(`hand "1" { cards = [] }`), "t.hcl")
	require.NoError(t, err)
	require.NotNil(t, cfg.Game)
	assert.Equal(t, "info", cfg.Game.LogLevel)

	g, err := cfg.NewGame()
	require.NoError(t, err)
	_, ok := g.DetermineWinner()
	assert.False(t, ok, "a sole empty hand has no winner")
}

func TestParseTableConfigErrors(t *testing.T) {
	_, err := ParseTableConfig([]byte(`hand "1" {`), "broken.hcl")
	require.Error(t, err)

	_, err = ParseTableConfig([]byte(`hand "1" { suits = ["h"] }`), "unknown.hcl")
	require.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		src     string
		wantErr bool
	}{
		{"valid", `hand "1" { cards = ["Ah"] }`, false},
		{"bad player id", `hand "alice" { cards = ["Ah"] }`, true},
		{"bad card", `hand "1" { cards = ["Zz"] }`, true},
		{"bad log level", "game {\n log_level = \"loud\"\n}", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := ParseTableConfig([]byte(tt.src), "t.hcl")
			require.NoError(t, err)
			if tt.wantErr {
				assert.Error(t, cfg.Validate())
			} else {
				assert.NoError(t, cfg.Validate())
			}
		})
	}
}

func TestNewGameStrictRejectsDuplicates(t *testing.T) {
	src := `
game {
  strict = true
}
hand "1" { cards = ["Ah"] }
hand "1" { cards = ["Kh"] }
`
	cfg, err := ParseTableConfig([]byte(src), "t.hcl")
	require.NoError(t, err)
	_, err = cfg.NewGame()
	require.ErrorIs(t, err, shielded.ErrDuplicatePlayer)

	cfg.Game.Strict = false
	g, err := cfg.NewGame()
	require.NoError(t, err)
	assert.Equal(t, 2, g.Len())
}

func TestTableConfigWithoutGameBlock(t *testing.T) {
	cfg := &TableConfig{
		Hands: []HandConfig{
			{Player: "4", Cards: []string{"Ah"}},
			{Player: "9", Cards: []string{"Kh", "Kd"}},
		},
	}
	require.NoError(t, cfg.Validate())

	g, err := cfg.NewGame()
	require.NoError(t, err)
	winner, ok := g.DetermineWinner()
	require.True(t, ok)
	assert.Equal(t, uint64(9), winner)
	assert.Equal(t, "info", cfg.Settings().LogLevel)

	_, err = (&TableConfig{}).NewGame()
	require.NoError(t, err)
}

func TestValidateLogLevel(t *testing.T) {
	for _, level := range []string{"debug", "info", "warn", "error"} {
		assert.NoError(t, ValidateLogLevel(level))
	}
	assert.Error(t, ValidateLogLevel("verbose"))
	assert.Error(t, ValidateLogLevel(""))
}
