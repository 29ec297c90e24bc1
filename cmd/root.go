package cmd

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/gustavobrossi/blackjack/internal/config"
)

var (
	cfg    *config.Config
	logger = logrus.New()

	flagRules   string
	flagSeed    uint64
	flagVerbose bool
)

// RootCmd represents the base command when called without any subcommands.
var RootCmd = &cobra.Command{
	Use:   "blackjack",
	Short: "Play blackjack rounds against an automated dealer",
	Long: `Blackjack is a terminal round driver for a two-seat blackjack engine.
You draw or hold; the dealer decides automatically. Once both seats hold,
the round resolves and a fresh deck is a keypress away.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		if flagRules != "" {
			if err := cfg.ApplyRulesFile(flagRules); err != nil {
				return err
			}
		}
		if cmd.Flags().Changed("seed") {
			cfg.Seed = flagSeed
		}

		level, err := logrus.ParseLevel(cfg.LogLevel)
		if err != nil {
			return fmt.Errorf("parse log level: %w", err)
		}
		if flagVerbose {
			level = logrus.DebugLevel
		}
		logger.SetLevel(level)
		if cfg.LogJSON {
			logger.SetFormatter(&logrus.JSONFormatter{})
		}
		return nil
	},
}

func init() {
	RootCmd.PersistentFlags().StringVar(&flagRules, "rules", "", "path to a TOML rules override file")
	RootCmd.PersistentFlags().Uint64Var(&flagSeed, "seed", 0, "deck seed (0 = seed from the clock)")
	RootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "enable debug logging")
	RootCmd.AddCommand(playCmd)
	RootCmd.AddCommand(simulateCmd)
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return RootCmd.Execute()
}
