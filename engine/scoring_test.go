package engine

import "testing"

func card(rank uint8) Card { return NewCard(SuitHearts, rank) }

// TestScoreAceResolution covers the add-time Ace rule: an Ace counts 11
// when the running total allows it, and stays 11 even if a later card
// busts the hand.
func TestScoreAceResolution(t *testing.T) {
	tests := []struct {
		name string
		hand []Card
		want int
	}{
		{"king then ace", []Card{card(RankKing), card(RankAce)}, 21},
		{"ace then king", []Card{card(RankAce), card(RankKing)}, 21},
		{"mid-hand ace locked at 11", []Card{card(RankFive), card(RankFive), card(RankAce), card(RankFive)}, 26},
		{"ace demoted to 1", []Card{card(RankKing), card(RankNine), card(RankAce)}, 20},
		{"two aces", []Card{card(RankAce), card(RankAce)}, 12},
		{"empty hand", nil, 0},
		{"courts are ten", []Card{card(RankJack), card(RankQueen), card(RankKing)}, 30},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Score(tt.hand); got != tt.want {
				t.Errorf("Score = %d, want %d", got, tt.want)
			}
		})
	}
}

// TestCardValueContract verifies newScore = score + CardValue(score, c)
// matches Score replayed over every prefix.
func TestCardValueContract(t *testing.T) {
	hand := []Card{card(RankFive), card(RankAce), card(RankAce), card(RankKing), card(RankThree)}
	score := 0
	for i, c := range hand {
		score += CardValue(score, c)
		if want := Score(hand[:i+1]); score != want {
			t.Fatalf("prefix %d: incremental score %d, replayed %d", i+1, score, want)
		}
	}
}

// TestRulesScoreCustomTarget verifies the rules-aware replay follows the
// configured target: on 17 an Ace stays 11 under a target of 30 but drops
// to 1 against the standard 21.
func TestRulesScoreCustomTarget(t *testing.T) {
	hand := []Card{card(RankSeven), card(RankTen), card(RankAce)}

	rules := Rules{TargetScore: 30, DealerStandScore: 25}
	if got := rules.Score(hand); got != 28 {
		t.Errorf("Rules{30}.Score = %d, want 28", got)
	}
	if got := Score(hand); got != 18 {
		t.Errorf("Score = %d, want 18", got)
	}

	std := DefaultRules()
	if got, want := std.Score(hand), Score(hand); got != want {
		t.Errorf("DefaultRules().Score = %d, Score = %d, want equal", got, want)
	}
}

// TestCardValueAceBoundary pins the exact 21 boundary: an Ace on 10 is 11,
// an Ace on 11 is 1.
func TestCardValueAceBoundary(t *testing.T) {
	if got := CardValue(10, card(RankAce)); got != 11 {
		t.Errorf("CardValue(10, A) = %d, want 11", got)
	}
	if got := CardValue(11, card(RankAce)); got != 1 {
		t.Errorf("CardValue(11, A) = %d, want 1", got)
	}
}
