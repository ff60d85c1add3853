// Package limb implements the single-limb primitives that the multi-precision
// arithmetic is built on. A limb is a 56-bit digit stored in a uint64, which
// leaves enough headroom for the carry of an addition and lets bits.Mul64
// hold a full limb product plus accumulator and carry.
package limb

import "math/bits"

const (
	// Bits is the number of value bits in a limb.
	Bits = 56

	// Mask selects the value bits of a limb.
	Mask = uint64(1)<<Bits - 1
)

// Adc returns x + y + carry as a limb and the carry out (0 or 1).
// x and y must be below 2^56 and carry must be 0 or 1.
func Adc(x, y, carry uint64) (sum, carryOut uint64) {
	s := x + y + carry
	return s & Mask, s >> Bits
}

// Sbb returns x - y - borrow as a limb and the borrow out. Borrows are
// represented as masks: 0 when no underflow occurred, Mask otherwise. Only the
// top bit of the incoming borrow is consulted.
func Sbb(x, y, borrow uint64) (diff, borrowOut uint64) {
	d := x - y - (borrow >> (Bits - 1))
	return d & Mask, uint64(int64(d)>>63) & Mask
}

// Mac returns acc + x*y + carry split into a limb and the carry out.
// With all inputs below 2^56 the sum stays below 2^112, so the carry out is
// itself a valid limb.
func Mac(acc, x, y, carry uint64) (res, carryOut uint64) {
	hi, lo := bits.Mul64(x, y)
	var c uint64
	lo, c = bits.Add64(lo, acc, 0)
	hi += c
	lo, c = bits.Add64(lo, carry, 0)
	hi += c
	return lo & Mask, hi<<(64-Bits) | lo>>Bits
}
