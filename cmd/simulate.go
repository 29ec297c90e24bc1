package cmd

import (
	"strconv"
	"time"

	"github.com/pterm/pterm"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/gustavobrossi/blackjack/engine"
)

var flagRounds int

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Run headless rounds with a draw-below-17 stand-in for the human",
	RunE:  runSimulate,
}

func init() {
	simulateCmd.Flags().IntVar(&flagRounds, "rounds", 1000, "number of rounds to play")
}

func runSimulate(cmd *cobra.Command, args []string) error {
	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	spinner, _ := pterm.DefaultSpinner.Start("Playing ", flagRounds, " rounds...")

	tally := make(map[engine.Outcome]int, 4)
	start := time.Now()
	for i := 0; i < flagRounds; i++ {
		r := engine.NewRound(seed+uint64(i), cfg.Rules)
		for !r.IsRoundOver() {
			if !r.HumanHolding() {
				if err := r.HumanAct(r.HumanScore() < 17); err != nil {
					spinner.Fail()
					return err
				}
			}
			if err := r.Tick(); err != nil {
				spinner.Fail()
				return err
			}
		}
		tally[r.Winner()]++
	}
	elapsed := time.Since(start)
	spinner.Success("Done")

	pterm.DefaultTable.WithHasHeader().WithData(pterm.TableData{
		{"Outcome", "Rounds"},
		{"Human wins", strconv.Itoa(tally[engine.OutcomeHuman])},
		{"Computer wins", strconv.Itoa(tally[engine.OutcomeComputer])},
		{"Ties", strconv.Itoa(tally[engine.OutcomeTie])},
		{"Double busts", strconv.Itoa(tally[engine.OutcomeBust])},
	}).Render()

	logger.WithFields(logrus.Fields{
		"rounds":  flagRounds,
		"seed":    seed,
		"elapsed": elapsed.String(),
	}).Info("simulation complete")
	return nil
}
