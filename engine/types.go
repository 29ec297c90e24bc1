package engine

// Suit constants — packed into upper 4 bits of Card.
const (
	SuitHearts   uint8 = 0
	SuitSpades   uint8 = 1
	SuitClubs    uint8 = 2
	SuitDiamonds uint8 = 3
)

// Rank constants — packed into lower 4 bits of Card.
const (
	RankAce   uint8 = 0
	RankTwo   uint8 = 1
	RankThree uint8 = 2
	RankFour  uint8 = 3
	RankFive  uint8 = 4
	RankSix   uint8 = 5
	RankSeven uint8 = 6
	RankEight uint8 = 7
	RankNine  uint8 = 8
	RankTen   uint8 = 9
	RankJack  uint8 = 10
	RankQueen uint8 = 11
	RankKing  uint8 = 12
)

const (
	NumSuits = 4
	NumRanks = 13
)

// Card is a packed uint8: upper 4 bits = suit, lower 4 bits = rank.
type Card uint8

// EmptyCard represents the absence of a card.
const EmptyCard Card = 0xFF

// NewCard constructs a Card from suit and rank.
func NewCard(suit, rank uint8) Card {
	return Card((suit << 4) | (rank & 0x0F))
}

// Suit returns the suit bits (upper 4).
func (c Card) Suit() uint8 { return uint8(c) >> 4 }

// Rank returns the rank bits (lower 4).
func (c Card) Rank() uint8 { return uint8(c) & 0x0F }

// Value returns the face value of the card.
//   - Ace (rank 0) → 11 (high; the scorer may count it as 1 at add time)
//   - Two–Ten (ranks 1–9) → rank+1
//   - Jack, Queen, King → 10
func (c Card) Value() int {
	r := c.Rank()
	switch {
	case r == RankAce:
		return 11
	case r <= RankTen: // ranks 1–9: Two–Ten
		return int(r + 1)
	case r <= RankKing:
		return 10
	}
	// EmptyCard or malformed — return 0
	return 0
}

var rankLabels = [NumRanks]string{
	"A", "2", "3", "4", "5", "6", "7", "8", "9", "10", "J", "Q", "K",
}

var suitGlyphs = [NumSuits]string{"♥", "♠", "♣", "♦"}

// String returns a compact form like "A♥" or "10♦" for logs and tests.
func (c Card) String() string {
	if c.Rank() >= NumRanks || c.Suit() >= NumSuits {
		return "??"
	}
	return rankLabels[c.Rank()] + suitGlyphs[c.Suit()]
}
