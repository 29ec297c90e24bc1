// Package engine implements a two-seat blackjack round engine.
//
// The package is a pure, allocation-free state machine: a Round is a flat
// value type holding the deck, both participants, and its own PRNG. All
// rendering, input handling, and session bookkeeping live in the layers
// around it; the engine only moves state in response to HumanAct and Tick.
package engine

// Round holds the complete, self-contained state of one blackjack round.
type Round struct {
	Deck     Deck
	Human    Participant
	Computer Participant
	Rules    Rules
	rng      RNG

	// replyOwed is a one-shot flag: the human drew a card and the dealer
	// answers it on the next Tick, exactly once.
	replyOwed bool
}

// NewRound initializes a fresh round with the given seed and rules: a full
// shuffled deck, both seats empty and drawing.
func NewRound(seed uint64, rules Rules) Round {
	var r Round
	r.rng = NewRNG(seed)
	r.Rules = rules
	r.Deck.fill()
	r.Deck.shuffle(&r.rng)
	return r
}

// HumanAct applies the human's draw-or-hold decision. A request on a seat
// already holding is a silent no-op. A draw updates the score and runs the
// force-hold check before returning, so the dealer always reads settled
// human state. Returns ErrEmptyDeck only when a draw found no card; the
// caller treats that as "no card available", not as a retryable fault.
func (r *Round) HumanAct(wantsToDraw bool) error {
	if r.Human.Holding {
		return nil
	}
	if !wantsToDraw {
		r.Human.Holding = true
		return nil
	}
	c, ok := r.Deck.Draw(&r.rng)
	if !ok {
		return ErrEmptyDeck
	}
	r.Human.addCard(c, r.Rules.Target())
	r.checkForceHold()
	r.replyOwed = true
	return nil
}

// Tick re-evaluates the automatic rules and runs the dealer's decision
// procedure. Called once per frame or on a fixed cadence by the driver.
// Ticking a finished round is a no-op.
func (r *Round) Tick() error {
	if r.IsRoundOver() {
		return nil
	}
	r.checkForceHold()
	r.autoStand()

	// One dealer reply per human draw while both seats are still drawing.
	if r.replyOwed {
		r.replyOwed = false
		if !r.Human.Holding && !r.Computer.Holding {
			if err := r.dealerStep(); err != nil {
				return err
			}
		}
	}

	// Once the human holds, the dealer keeps acting: at least one
	// invocation, repeated while it still trails the human's score.
	// Each draw raises the score by at least 1, so the loop is bounded
	// by the force-hold at the target.
	if r.Human.Holding && !r.Computer.Holding {
		if err := r.dealerStep(); err != nil {
			return err
		}
		for !r.Computer.Holding && r.Computer.Score < r.Human.Score {
			if err := r.dealerStep(); err != nil {
				return err
			}
		}
	}
	return nil
}

// dealerStep is one invocation of the automated decision procedure:
// either hold (when the human already holds and the hold condition is
// met) or draw one card and re-check.
func (r *Round) dealerStep() error {
	if r.Computer.Holding {
		return nil
	}
	target := r.Rules.Target()
	stand := r.Rules.Stand()

	if r.Human.Holding {
		if r.Computer.Score > r.Human.Score ||
			(r.Computer.Score > stand && r.Human.Score <= target) {
			r.Computer.Holding = true
			return nil
		}
	}

	c, ok := r.Deck.Draw(&r.rng)
	if !ok {
		return ErrEmptyDeck
	}
	r.Computer.addCard(c, target)
	r.checkForceHold()

	if r.Human.Holding && !r.Computer.Holding &&
		(r.Computer.Score > r.Human.Score || r.Computer.Score > stand) {
		r.Computer.Holding = true
	}
	return nil
}

// checkForceHold ends all drawing once either score reaches the target:
// a bust or blackjack by either seat holds both, even mid-draw, even on
// the very first card.
func (r *Round) checkForceHold() {
	target := r.Rules.Target()
	if r.Human.Score >= target || r.Computer.Score >= target {
		r.Human.Holding = true
		r.Computer.Holding = true
	}
}

// autoStand is the continuous dealer rule, evaluated on every tick
// regardless of turn: above the stand line and ahead of the human, the
// dealer stops drawing.
func (r *Round) autoStand() {
	if !r.Computer.Holding &&
		r.Computer.Score > r.Rules.Stand() &&
		r.Computer.Score > r.Human.Score {
		r.Computer.Holding = true
	}
}

// IsRoundOver reports whether both seats are holding.
func (r *Round) IsRoundOver() bool {
	return r.Human.Holding && r.Computer.Holding
}

// Winner resolves the round outcome from both cached scores. Meaningful
// only once IsRoundOver is true.
func (r *Round) Winner() Outcome {
	return resolveWinner(r.Human.Score, r.Computer.Score, r.Rules.Target())
}

// Read accessors for the driver layer. Hands are returned as copies.

func (r *Round) HumanHand() []Card     { return r.Human.hand() }
func (r *Round) ComputerHand() []Card  { return r.Computer.hand() }
func (r *Round) HumanScore() int       { return r.Human.Score }
func (r *Round) ComputerScore() int    { return r.Computer.Score }
func (r *Round) HumanHolding() bool    { return r.Human.Holding }
func (r *Round) ComputerHolding() bool { return r.Computer.Holding }
func (r *Round) Remaining() int        { return int(r.Deck.Len) }
