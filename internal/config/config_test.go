// internal/config/config_test.go
package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.False(t, cfg.LogJSON)
	assert.Equal(t, uint64(0), cfg.Seed)
	assert.Equal(t, uint8(21), cfg.Rules.TargetScore)
	assert.Equal(t, uint8(17), cfg.Rules.DealerStandScore)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("BLACKJACK_LOG_LEVEL", "debug")
	t.Setenv("BLACKJACK_LOG_JSON", "true")
	t.Setenv("BLACKJACK_SEED", "12345")
	t.Setenv("BLACKJACK_TARGET_SCORE", "25")
	t.Setenv("BLACKJACK_DEALER_STAND", "20")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.True(t, cfg.LogJSON)
	assert.Equal(t, uint64(12345), cfg.Seed)
	assert.Equal(t, uint8(25), cfg.Rules.TargetScore)
	assert.Equal(t, uint8(20), cfg.Rules.DealerStandScore)
}

func TestLoadRulesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rules.toml")
	require.NoError(t, os.WriteFile(path, []byte("target_score = 24\ndealer_stand_score = 19\n"), 0o644))
	t.Setenv("BLACKJACK_RULES_FILE", path)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, uint8(24), cfg.Rules.TargetScore)
	assert.Equal(t, uint8(19), cfg.Rules.DealerStandScore)
}

// TestEnvBeatsRulesFile pins the precedence order.
func TestEnvBeatsRulesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rules.toml")
	require.NoError(t, os.WriteFile(path, []byte("target_score = 24\n"), 0o644))
	t.Setenv("BLACKJACK_RULES_FILE", path)
	t.Setenv("BLACKJACK_TARGET_SCORE", "27")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, uint8(27), cfg.Rules.TargetScore)
}

func TestLoadBadRulesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rules.toml")
	require.NoError(t, os.WriteFile(path, []byte("target_score = \"not a number\"\n"), 0o644))
	t.Setenv("BLACKJACK_RULES_FILE", path)

	_, err := Load()
	assert.Error(t, err)
}

func TestLoadMissingRulesFile(t *testing.T) {
	t.Setenv("BLACKJACK_RULES_FILE", filepath.Join(t.TempDir(), "absent.toml"))
	_, err := Load()
	assert.Error(t, err)
}

func TestValidateRejectsStandAtTarget(t *testing.T) {
	t.Setenv("BLACKJACK_TARGET_SCORE", "17")
	t.Setenv("BLACKJACK_DEALER_STAND", "17")
	_, err := Load()
	assert.Error(t, err)
}

func TestLoadBadSeed(t *testing.T) {
	t.Setenv("BLACKJACK_SEED", "not-a-number")
	_, err := Load()
	assert.Error(t, err)
}
