// internal/config/config.go
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"

	"github.com/gustavobrossi/blackjack/engine"
)

// Config holds the process-level settings for the round drivers.
// Precedence: built-in defaults < TOML rules file < environment.
type Config struct {
	LogLevel  string // logrus level name
	LogJSON   bool   // JSON formatter instead of text
	Seed      uint64 // 0 means seed from the clock
	RulesFile string // optional TOML rules override
	Rules     engine.Rules
}

// rulesFile mirrors the optional TOML rules override.
type rulesFile struct {
	TargetScore      uint8 `toml:"target_score"`
	DealerStandScore uint8 `toml:"dealer_stand_score"`
}

// Load reads .env (if present), the optional rules file, then environment
// overrides. Environment keys: BLACKJACK_LOG_LEVEL, BLACKJACK_LOG_JSON,
// BLACKJACK_SEED, BLACKJACK_RULES_FILE, BLACKJACK_TARGET_SCORE,
// BLACKJACK_DEALER_STAND.
func Load() (*Config, error) {
	godotenv.Load()

	cfg := &Config{
		LogLevel: "info",
		Rules:    engine.DefaultRules(),
	}

	if path := os.Getenv("BLACKJACK_RULES_FILE"); path != "" {
		cfg.RulesFile = path
	}
	if cfg.RulesFile != "" {
		if err := cfg.ApplyRulesFile(cfg.RulesFile); err != nil {
			return nil, err
		}
	}

	if lvl := os.Getenv("BLACKJACK_LOG_LEVEL"); lvl != "" {
		cfg.LogLevel = lvl
	}
	if v := os.Getenv("BLACKJACK_LOG_JSON"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return nil, fmt.Errorf("parse BLACKJACK_LOG_JSON: %w", err)
		}
		cfg.LogJSON = b
	}
	if v := os.Getenv("BLACKJACK_SEED"); v != "" {
		seed, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("parse BLACKJACK_SEED: %w", err)
		}
		cfg.Seed = seed
	}
	if v := os.Getenv("BLACKJACK_TARGET_SCORE"); v != "" {
		n, err := strconv.ParseUint(v, 10, 8)
		if err != nil {
			return nil, fmt.Errorf("parse BLACKJACK_TARGET_SCORE: %w", err)
		}
		cfg.Rules.TargetScore = uint8(n)
	}
	if v := os.Getenv("BLACKJACK_DEALER_STAND"); v != "" {
		n, err := strconv.ParseUint(v, 10, 8)
		if err != nil {
			return nil, fmt.Errorf("parse BLACKJACK_DEALER_STAND: %w", err)
		}
		cfg.Rules.DealerStandScore = uint8(n)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ApplyRulesFile applies a TOML rules override on top of the current rules.
// Zero-valued fields in the file keep their current values.
func (c *Config) ApplyRulesFile(path string) error {
	var rf rulesFile
	if _, err := toml.DecodeFile(path, &rf); err != nil {
		return fmt.Errorf("decode rules file %s: %w", path, err)
	}
	if rf.TargetScore != 0 {
		c.Rules.TargetScore = rf.TargetScore
	}
	if rf.DealerStandScore != 0 {
		c.Rules.DealerStandScore = rf.DealerStandScore
	}
	return nil
}

func (c *Config) validate() error {
	if c.Rules.DealerStandScore >= c.Rules.TargetScore {
		return fmt.Errorf("dealer stand score %d must be below target score %d",
			c.Rules.DealerStandScore, c.Rules.TargetScore)
	}
	return nil
}
