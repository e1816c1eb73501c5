// internal/daily/select.go
//
// Deterministic day -> target selection.
//
// The mix is a fixed XOR-shift-multiply avalanche over 32-bit signed integers
// with wraparound. Every player on the same day must see the same target, so
// the constants and the int32 width must never change. Seed = day index.

package daily

import (
	"math"

	"github.com/robalobadob/bossdle/internal/catalog"
)

// Mix scrambles seed into a pseudo-random 32-bit value.
func Mix(seed int32) uint32 {
	s := (seed ^ 61) ^ (seed >> 16)
	s = s + (s << 3)
	s = s ^ (s >> 4)
	s = s * 0x27d4eb2d
	s = s ^ (s >> 15)
	return uint32(s)
}

// Fraction maps seed onto [0,1]. The divisor is 2^32-1, so 1.0 is reachable;
// Index clamps it.
func Fraction(seed int32) float64 {
	return float64(Mix(seed)) / math.MaxUint32
}

// Index returns the catalog position for day in a catalog of n entries.
// It panics if n <= 0: no target is selectable from an empty catalog.
func Index(day, n int) int {
	if n <= 0 {
		panic("daily: select from empty catalog")
	}
	i := int(math.Floor(Fraction(int32(day)) * float64(n)))
	if i < 0 {
		i = 0
	}
	if i > n-1 {
		i = n - 1
	}
	return i
}

// Select returns the target entry for day. c must be non-empty.
func Select(day int, c *catalog.Catalog) catalog.Entry {
	return c.At(Index(day, c.Len()))
}
