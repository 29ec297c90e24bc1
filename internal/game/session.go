// internal/game/session.go
package game

import (
	"sync"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/gustavobrossi/blackjack/engine"
)

// maxTicksPerAdvance bounds the settle loop in Advance. The engine's own
// force-hold bounds dealer drawing well below this; the cap is a guard
// against a wedged state, not a tuning knob.
const maxTicksPerAdvance = 32

// Session wraps one engine round with identity, locking, logging, and
// event broadcast. All engine mutations happen behind the mutex; events
// are emitted only after the engine state has fully settled.
type Session struct {
	ID    uuid.UUID
	Rules engine.Rules

	round engine.Round
	ended bool
	mu    sync.Mutex

	// BroadcastFn delivers events to the driver layer. Nil means events
	// are dropped. Assigned once, before play begins.
	BroadcastFn func(ev Event)

	log *logrus.Entry
}

// NewSession creates a session around a fresh round. A nil logger falls
// back to the standard logrus logger.
func NewSession(seed uint64, rules engine.Rules, logger *logrus.Logger) *Session {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	s := &Session{
		ID:    uuid.New(),
		Rules: rules,
	}
	s.log = logger.WithField("session_id", s.ID)
	s.round = engine.NewRound(seed, rules)
	s.log.WithField("seed", seed).Debug("session created")
	return s
}

// Hit draws one card for the human seat.
func (s *Session) Hit() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	before := s.round
	if err := s.round.HumanAct(true); err != nil {
		s.log.WithError(err).Warn("human draw failed")
		return err
	}
	s.diffuse(before)
	s.maybeFinish()
	return nil
}

// Stand holds the human seat.
func (s *Session) Stand() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	before := s.round
	if err := s.round.HumanAct(false); err != nil {
		return err
	}
	s.diffuse(before)
	s.maybeFinish()
	return nil
}

// Advance ticks the engine until the automatic rules stop changing state,
// emitting an event for every observable change along the way.
func (s *Session) Advance() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := 0; i < maxTicksPerAdvance; i++ {
		before := s.round
		if err := s.round.Tick(); err != nil {
			s.log.WithError(err).Warn("tick failed")
			return err
		}
		s.diffuse(before)
		if s.round == before {
			break
		}
	}
	s.maybeFinish()
	return nil
}

// Reset replaces the finished round with a fresh one under the same
// session identity and rules.
func (s *Session) Reset(seed uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.round = engine.NewRound(seed, s.Rules)
	s.ended = false
	s.log.WithField("seed", seed).Debug("round reset")
	s.emit(Event{Type: EventRoundStart})
}

// RoundOver reports whether both seats are holding.
func (s *Session) RoundOver() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.round.IsRoundOver()
}

func (s *Session) emit(ev Event) {
	if s.BroadcastFn != nil {
		s.BroadcastFn(ev)
	}
}

// diffuse compares the round against a pre-action copy and emits one event
// per observable change, draws before holds.
func (s *Session) diffuse(before engine.Round) {
	s.seatDiff(SeatHuman, before.Human, s.round.Human)
	s.seatDiff(SeatComputer, before.Computer, s.round.Computer)
}

func (s *Session) seatDiff(seat Seat, prev, cur engine.Participant) {
	for i := prev.HandLen; i < cur.HandLen; i++ {
		c := cur.Hand[i]
		s.emit(Event{
			Type:  EventCardDrawn,
			Seat:  seat,
			Card:  c.String(),
			Score: s.Rules.Score(cur.Hand[:i+1]),
		})
	}
	if !prev.Holding && cur.Holding {
		target := s.Rules.Target()
		reason := HoldDealerRule
		switch {
		case s.round.HumanScore() >= target || s.round.ComputerScore() >= target:
			reason = HoldForced
		case seat == SeatHuman:
			reason = HoldChose
		}
		s.emit(Event{Type: EventParticipantHeld, Seat: seat, Reason: reason})
	}
}

// maybeFinish emits the round end exactly once per round.
func (s *Session) maybeFinish() {
	if s.ended || !s.round.IsRoundOver() {
		return
	}
	s.ended = true
	outcome := s.round.Winner()
	s.log.WithFields(logrus.Fields{
		"outcome":        outcome.String(),
		"human_score":    s.round.HumanScore(),
		"computer_score": s.round.ComputerScore(),
	}).Info("round over")
	s.emit(Event{
		Type:          EventRoundEnd,
		Outcome:       outcome.String(),
		HumanScore:    s.round.HumanScore(),
		ComputerScore: s.round.ComputerScore(),
	})
}
