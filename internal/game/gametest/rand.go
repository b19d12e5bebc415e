// Package gametest provides deterministic randomness for engine tests.
package gametest

// Seq replays a fixed sequence of values. Each IntN call consumes the next
// value (wrapping around at the end) reduced modulo n, so a script written
// for one board size stays valid for another.
type Seq struct {
	vals []int
	next int
}

// Fixed returns a Seq over vals. With no values every call returns 0.
func Fixed(vals ...int) *Seq {
	return &Seq{vals: vals}
}

// IntN implements game.Rand.
func (s *Seq) IntN(n int) int {
	if len(s.vals) == 0 {
		return 0
	}
	v := s.vals[s.next%len(s.vals)]
	s.next++
	if v < 0 {
		v = -v
	}
	return v % n
}

// Calls reports how many values were consumed.
func (s *Seq) Calls() int { return s.next }
