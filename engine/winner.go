package engine

// Outcome is the result of a completed round.
type Outcome uint8

const (
	OutcomeBust     Outcome = iota // both seats past the target
	OutcomeHuman                   // human wins
	OutcomeTie                     // equal scores at or below the target
	OutcomeComputer                // computer wins
)

func (o Outcome) String() string {
	switch o {
	case OutcomeBust:
		return "bust"
	case OutcomeHuman:
		return "human"
	case OutcomeTie:
		return "tie"
	case OutcomeComputer:
		return "computer"
	}
	return "unknown"
}

// ResolveWinner maps both final scores to an outcome against the standard
// target of 21. The cases are checked in priority order; the first match
// wins:
//  1. both busted → Bust
//  2. human at or under the target and either ahead of the computer or
//     the computer busted → Human
//  3. equal scores at or under the target → Tie
//  4. otherwise → Computer
func ResolveWinner(humanScore, computerScore int) Outcome {
	return resolveWinner(humanScore, computerScore, defaultTarget)
}

func resolveWinner(humanScore, computerScore, target int) Outcome {
	switch {
	case humanScore > target && computerScore > target:
		return OutcomeBust
	case humanScore <= target && (humanScore > computerScore || computerScore > target):
		return OutcomeHuman
	case humanScore == computerScore && humanScore <= target:
		return OutcomeTie
	default:
		return OutcomeComputer
	}
}
