package vmath

import "time"

// RNG is the randomness a spawner needs
// Implemented by *FastRand; tests substitute fixed sequences
type RNG interface {
	Intn(n int) int
}

// FastRand is a xorshift64 generator, not safe for concurrent use
type FastRand struct {
	state uint64
}

// NewFastRand seeds a generator, zero seed is remapped since xorshift stalls on 0
func NewFastRand(seed uint64) *FastRand {
	if seed == 0 {
		seed = 1
	}
	return &FastRand{state: seed}
}

// NewTimeSeededRand seeds from the wall clock
func NewTimeSeededRand() *FastRand {
	return NewFastRand(uint64(time.Now().UnixNano()))
}

func (r *FastRand) Next() uint64 {
	x := r.state
	x ^= x << 13
	x ^= x >> 17
	x ^= x << 5
	r.state = x
	return x
}

// Intn returns a value in [0, n), 0 when n <= 0
func (r *FastRand) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return int(r.Next() % uint64(n))
}

// RandomEdge picks one of the four edges uniformly
func RandomEdge(rng RNG) Edge {
	return AllEdges[rng.Intn(len(AllEdges))]
}

// SequenceRand replays a fixed list of values, wrapping around
// Each value is reduced modulo the requested n
type SequenceRand struct {
	values []int
	pos    int
}

// NewSequenceRand creates a replaying source
func NewSequenceRand(values ...int) *SequenceRand {
	return &SequenceRand{values: values}
}

func (s *SequenceRand) Intn(n int) int {
	if n <= 0 || len(s.values) == 0 {
		return 0
	}
	v := s.values[s.pos%len(s.values)]
	s.pos++
	if v < 0 {
		v = -v
	}
	return v % n
}
