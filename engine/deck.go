package engine

import "errors"

// DeckSize is the full 4 suits × 13 ranks deck.
const DeckSize = 52

// ErrEmptyDeck is reported when a draw is requested with no cards remaining.
// Defensive: a single round never exhausts 52 cards under normal play.
var ErrEmptyDeck = errors.New("deck is empty")

// Deck holds the undealt cards as a flat array. Owned by value inside a
// Round; never aliased externally.
type Deck struct {
	Cards [DeckSize]Card
	Len   uint8
}

// fill loads all 52 (suit, rank) combinations in canonical order.
func (d *Deck) fill() {
	idx := 0
	for suit := uint8(0); suit < NumSuits; suit++ {
		for rank := uint8(0); rank <= RankKing; rank++ {
			d.Cards[idx] = NewCard(suit, rank)
			idx++
		}
	}
	d.Len = DeckSize
}

// shuffle applies a uniform Fisher-Yates permutation, last index down to 1.
func (d *Deck) shuffle(rng *RNG) {
	for i := int(d.Len) - 1; i > 0; i-- {
		j := int(rng.randN(uint64(i + 1)))
		d.Cards[i], d.Cards[j] = d.Cards[j], d.Cards[i]
	}
}

// Draw removes and returns a uniformly random remaining card — not the top
// of the deck. Returns (EmptyCard, false) when no cards remain.
func (d *Deck) Draw(rng *RNG) (Card, bool) {
	if d.Len == 0 {
		return EmptyCard, false
	}
	i := uint8(rng.randN(uint64(d.Len)))
	c := d.Cards[i]
	// Swap-remove: draw order is already random, so compaction order
	// doesn't matter.
	d.Len--
	d.Cards[i] = d.Cards[d.Len]
	d.Cards[d.Len] = EmptyCard
	return c, true
}
