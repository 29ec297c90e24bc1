// internal/game/events.go
package game

// EventType represents the type of a round-related event delivered to the
// driver layer.
type EventType string

// Constants defining the event types a Session broadcasts.
const (
	EventRoundStart      EventType = "round_start"      // A fresh round began.
	EventCardDrawn       EventType = "card_drawn"       // A seat drew a card.
	EventParticipantHeld EventType = "participant_held" // A seat stopped drawing.
	EventRoundEnd        EventType = "round_end"        // Both seats hold; outcome resolved.
)

// Seat identifies which participant an event concerns.
type Seat string

const (
	SeatHuman    Seat = "human"
	SeatComputer Seat = "computer"
)

// HoldReason explains why a seat transitioned to holding.
type HoldReason string

const (
	HoldChose      HoldReason = "chose"       // Explicit stand.
	HoldForced     HoldReason = "forced"      // A score reached the target; both seats stop.
	HoldDealerRule HoldReason = "dealer_rule" // An automatic dealer hold condition fired.
)

// Event is the structure broadcast for every observable state change.
// Fields are populated per type; unused fields are omitted.
type Event struct {
	Type   EventType  `json:"type"`
	Seat   Seat       `json:"seat,omitempty"`
	Card   string     `json:"card,omitempty"`   // EventCardDrawn: the card, in "A♥" form.
	Score  int        `json:"score"`            // EventCardDrawn: the seat's new score; zero is meaningful.
	Reason HoldReason `json:"reason,omitempty"` // EventParticipantHeld.

	// EventRoundEnd. Scores are never omitted: an immediate stand ends a
	// round at a legitimate zero.
	Outcome       string `json:"outcome,omitempty"`
	HumanScore    int    `json:"humanScore"`
	ComputerScore int    `json:"computerScore"`
}
