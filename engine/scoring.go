package engine

// CardValue returns the points the card adds to a running score against the
// standard target of 21. Non-Aces contribute their face value. An Ace
// contributes 11 when that keeps the total at or below the target, else 1 —
// decided at the moment the card is added and never revisited, even if a
// later card pushes the total past the target.
//
// Contract: newScore = score + CardValue(score, c).
func CardValue(score int, c Card) int {
	return cardValue(score, c, defaultTarget)
}

func cardValue(score int, c Card, target int) int {
	if c.Rank() != RankAce {
		return c.Value()
	}
	if score+11 <= target {
		return 11
	}
	return 1
}

// Score replays a hand left to right through CardValue against the
// standard target of 21. For rounds under custom rules, Rules.Score is
// the replay that matches the cached participant score.
func Score(hand []Card) int {
	return scoreHand(hand, defaultTarget)
}

// Score replays a hand left to right against the rules' target. This is
// the canonical definition every cached participant score must agree
// with. Totals past the target are returned as-is; bust detection belongs
// to the round, not the scorer.
func (r *Rules) Score(hand []Card) int {
	return scoreHand(hand, r.Target())
}

func scoreHand(hand []Card, target int) int {
	score := 0
	for _, c := range hand {
		score += cardValue(score, c, target)
	}
	return score
}
