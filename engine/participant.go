package engine

// MaxHandCards bounds a participant's hand. Every draw adds at least 1 to
// the score and a score at the target force-holds the round, so a hand can
// never legally pass 11 cards; 16 leaves slack for rigged test states.
const MaxHandCards = 16

// Participant is one seat's state: its hand, a cached incremental score,
// and the hold flag. Two instances live inside a Round, one per seat.
type Participant struct {
	Hand    [MaxHandCards]Card
	HandLen uint8
	Score   int
	Holding bool
}

// addCard appends the card and advances the cached score by the add-time
// card value. The cache stays equal to Score(hand) by construction.
func (p *Participant) addCard(c Card, target int) {
	if p.HandLen >= MaxHandCards {
		return
	}
	p.Hand[p.HandLen] = c
	p.HandLen++
	p.Score += cardValue(p.Score, c, target)
}

// hand returns a copy of the cards held so far. Callers never alias
// round-owned state.
func (p *Participant) hand() []Card {
	out := make([]Card, p.HandLen)
	copy(out, p.Hand[:p.HandLen])
	return out
}
