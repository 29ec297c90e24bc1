package engine

// RNG is an inline xorshift64 generator owned by the round, seeded once at
// round construction. No interface, no locking.
type RNG struct {
	state uint64
}

// NewRNG returns a generator for the given seed. A zero seed is corrected
// to 1 (xorshift can't start at 0).
func NewRNG(seed uint64) RNG {
	if seed == 0 {
		seed = 1
	}
	return RNG{state: seed}
}

func (r *RNG) next() uint64 {
	x := r.state
	x ^= x << 13
	x ^= x >> 7
	x ^= x << 17
	r.state = x
	return x
}

// randN returns a random number in [0, n).
func (r *RNG) randN(n uint64) uint64 {
	return r.next() % n
}
