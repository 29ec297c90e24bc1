package engine

import "testing"

// TestResolveWinner pins the outcome table in its priority order.
func TestResolveWinner(t *testing.T) {
	tests := []struct {
		human, computer int
		want            Outcome
	}{
		{18, 19, OutcomeComputer},
		{22, 22, OutcomeBust},
		{20, 20, OutcomeTie},
		{21, 19, OutcomeHuman},
		{19, 22, OutcomeHuman}, // computer busted, human's 19 wins regardless
		{22, 19, OutcomeComputer},
		{21, 21, OutcomeTie},
		{0, 0, OutcomeTie},
		{17, 21, OutcomeComputer},
		{2, 26, OutcomeHuman},
		{23, 21, OutcomeComputer},
	}
	for _, tt := range tests {
		if got := ResolveWinner(tt.human, tt.computer); got != tt.want {
			t.Errorf("ResolveWinner(%d, %d) = %v, want %v", tt.human, tt.computer, got, tt.want)
		}
	}
}

// TestBustBeatsComparison verifies priority: a double bust is Bust even
// though the computer's score is the higher of the two.
func TestBustBeatsComparison(t *testing.T) {
	if got := ResolveWinner(25, 30); got != OutcomeBust {
		t.Errorf("ResolveWinner(25, 30) = %v, want OutcomeBust", got)
	}
}

func TestOutcomeString(t *testing.T) {
	tests := []struct {
		o    Outcome
		want string
	}{
		{OutcomeBust, "bust"},
		{OutcomeHuman, "human"},
		{OutcomeTie, "tie"},
		{OutcomeComputer, "computer"},
		{Outcome(99), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.o.String(); got != tt.want {
			t.Errorf("Outcome(%d).String() = %q, want %q", tt.o, got, tt.want)
		}
	}
}
