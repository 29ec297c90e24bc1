package engine

const (
	defaultTarget = 21
	defaultStand  = 17
)

// Rules holds configurable round thresholds.
type Rules struct {
	TargetScore      uint8 // force-hold at or above this; bust strictly above it
	DealerStandScore uint8 // dealer stands strictly above this, never at it
}

// DefaultRules returns the standard blackjack thresholds.
func DefaultRules() Rules {
	return Rules{
		TargetScore:      defaultTarget,
		DealerStandScore: defaultStand,
	}
}

// Target returns the effective target score, treating 0 as the default.
func (r *Rules) Target() int {
	if r.TargetScore == 0 {
		return defaultTarget
	}
	return int(r.TargetScore)
}

// Stand returns the effective dealer stand line, treating 0 as the default.
func (r *Rules) Stand() int {
	if r.DealerStandScore == 0 {
		return defaultStand
	}
	return int(r.DealerStandScore)
}
