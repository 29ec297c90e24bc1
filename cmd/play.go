package cmd

import (
	"strings"
	"time"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/gustavobrossi/blackjack/internal/game"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play an interactive round against the dealer",
	RunE:  runPlay,
}

func runPlay(cmd *cobra.Command, args []string) error {
	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	manager := game.NewManager()
	session := manager.Create(seed, cfg.Rules, logger)
	defer manager.Delete(session.ID)
	session.BroadcastFn = printEvent

	logger.WithField("seed", seed).Debug("starting interactive session")
	pterm.DefaultHeader.Println("Blackjack")

	for {
		view := session.View()
		renderTable(view)

		if view.RoundOver {
			printOutcome(view)
			again, err := pterm.DefaultInteractiveConfirm.
				WithDefaultText("Play another round?").
				WithDefaultValue(true).
				Show()
			if err != nil {
				return err
			}
			if !again {
				pterm.Println("Thanks for playing...")
				return nil
			}
			seed++
			session.Reset(seed)
			continue
		}

		if !view.Human.Holding {
			choice, err := pterm.DefaultInteractiveSelect.
				WithOptions([]string{"Hit", "Stand"}).
				WithDefaultText("Your move").
				Show()
			if err != nil {
				return err
			}
			if choice == "Hit" {
				if err := session.Hit(); err != nil {
					pterm.Warning.Printfln("No card available: %v", err)
				}
			} else {
				if err := session.Stand(); err != nil {
					return err
				}
			}
		}

		if err := session.Advance(); err != nil {
			pterm.Warning.Printfln("Dealer could not draw: %v", err)
		}
	}
}

// printEvent narrates dealer activity between renders. Human draws are
// already visible in the table, so only the dealer's side is announced.
func printEvent(ev game.Event) {
	switch ev.Type {
	case game.EventCardDrawn:
		if ev.Seat == game.SeatComputer {
			pterm.Info.Printfln("Dealer draws %s (score %d)", ev.Card, ev.Score)
		}
	case game.EventParticipantHeld:
		if ev.Seat == game.SeatComputer {
			pterm.Info.Printfln("Dealer holds (%s)", ev.Reason)
		} else if ev.Reason == game.HoldForced {
			pterm.Info.Println("You are forced to hold")
		}
	}
}

func renderTable(v game.View) {
	dealer := seatPanel("Dealer", v.Computer)
	player := seatPanel("You", v.Human)
	deck := pterm.Panel{Data: pterm.Sprintf("Cards remaining: %d", v.Remaining)}

	pterm.DefaultPanel.WithPanels([][]pterm.Panel{
		{dealer},
		{player, deck},
	}).Render()
}

func seatPanel(title string, sv game.SeatView) pterm.Panel {
	pbox := pterm.DefaultBox.WithLeftPadding(4).WithRightPadding(4).WithTopPadding(1).WithBottomPadding(1)
	status := pterm.LightGreen("Drawing")
	if sv.Holding {
		status = pterm.LightRed("Holding")
	}
	cards := strings.Join(sv.Cards, "  ")
	if cards == "" {
		cards = "(no cards yet)"
	}
	body := pterm.Sprintf("%s\nScore: %d\n%s", status, sv.Score, cards)
	return pterm.Panel{Data: pbox.WithTitle(title).WithTitleTopLeft().Sprintf(body)}
}

func printOutcome(v game.View) {
	switch v.Outcome {
	case "human":
		pterm.Success.Printfln("You win! %d against the dealer's %d", v.Human.Score, v.Computer.Score)
	case "computer":
		pterm.Error.Printfln("Dealer wins, %d against your %d", v.Computer.Score, v.Human.Score)
	case "tie":
		pterm.Info.Printfln("A tie at %d", v.Human.Score)
	case "bust":
		pterm.Warning.Printfln("Both seats bust (%d vs %d)", v.Human.Score, v.Computer.Score)
	}
}
