// internal/game/view.go
package game

import "github.com/gustavobrossi/blackjack/engine"

// SeatView is one participant's render-ready state.
type SeatView struct {
	Cards   []string `json:"cards"`
	Score   int      `json:"score"`
	Holding bool     `json:"holding"`
}

// View is a render-ready snapshot of a session's round. It shares no
// memory with the live round; mutating a View never touches game state.
type View struct {
	SessionID string   `json:"sessionId"`
	Human     SeatView `json:"human"`
	Computer  SeatView `json:"computer"`
	Remaining int      `json:"remaining"`
	RoundOver bool     `json:"roundOver"`
	Outcome   string   `json:"outcome,omitempty"` // set only when RoundOver
}

// View captures the current round state for rendering.
func (s *Session) View() View {
	s.mu.Lock()
	defer s.mu.Unlock()

	v := View{
		SessionID: s.ID.String(),
		Human: SeatView{
			Cards:   cardStrings(s.round.HumanHand()),
			Score:   s.round.HumanScore(),
			Holding: s.round.HumanHolding(),
		},
		Computer: SeatView{
			Cards:   cardStrings(s.round.ComputerHand()),
			Score:   s.round.ComputerScore(),
			Holding: s.round.ComputerHolding(),
		},
		Remaining: s.round.Remaining(),
		RoundOver: s.round.IsRoundOver(),
	}
	if v.RoundOver {
		v.Outcome = s.round.Winner().String()
	}
	return v
}

func cardStrings(hand []engine.Card) []string {
	out := make([]string, len(hand))
	for i, c := range hand {
		out[i] = c.String()
	}
	return out
}
