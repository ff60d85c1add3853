package field

import (
	"github.com/smallyu/go-weierstrass/internal/crypto/limb"
	"github.com/smallyu/go-weierstrass/internal/crypto/uint280"
)

// The methods below operate on raw Montgomery representations. Inputs are
// always fully reduced and so are the outputs.

func (c *Constants) add(a, b uint280.Uint) uint280.Uint {
	// Both operands are below p, so the sum is below 2p and a single
	// conditional subtraction suffices.
	return a.AddMod(b, c.modulus)
}

func (c *Constants) sub(a, b uint280.Uint) uint280.Uint {
	diff, borrow := a.Sbb(b)
	return uint280.Select(borrow, diff.Add(c.modulus), diff)
}

func (c *Constants) neg(a uint280.Uint) uint280.Uint {
	return uint280.Select(boolMask(a.IsZero()), a, c.modulus.Sub(a))
}

func (c *Constants) mul(a, b uint280.Uint) uint280.Uint {
	lo, hi := a.Mul(b)
	return c.montgomeryReduce(lo, hi)
}

// montgomeryReduce returns (lo + hi*2^280) / R mod p for an input below p*R.
//
// Each round clears limb i by adding k*p, k = t[i]*pInv mod 2^56. The mac
// chain covers limbs [i, i+5); its carry is folded into limb i+5 together
// with the carry left over from the previous round, which keeps a second
// chain running across the round boundary.
func (c *Constants) montgomeryReduce(lo, hi uint280.Uint) uint280.Uint {
	var t [2 * uint280.NumLimbs]uint64
	copy(t[:uint280.NumLimbs], lo[:])
	copy(t[uint280.NumLimbs:], hi[:])

	var carry2 uint64
	for i := 0; i < uint280.NumLimbs; i++ {
		k := (t[i] * c.pInv) & limb.Mask
		var carry uint64
		for j := 0; j < uint280.NumLimbs; j++ {
			t[i+j], carry = limb.Mac(t[i+j], k, c.modulus[j], carry)
		}
		t[i+uint280.NumLimbs], carry2 = limb.Adc(t[i+uint280.NumLimbs], carry, carry2)
	}

	var r uint280.Uint
	copy(r[:], t[uint280.NumLimbs:])

	// r + carry2*2^280 < 2p; subtract p once if it is not already reduced.
	diff, borrow := r.Sbb(c.modulus)
	keep := borrow &^ (-carry2 & limb.Mask)
	return uint280.Select(keep, r, diff)
}

func (c *Constants) toMont(a uint280.Uint) uint280.Uint {
	return c.mul(a, c.r2)
}

func (c *Constants) fromMont(a uint280.Uint) uint280.Uint {
	return c.montgomeryReduce(a, uint280.Zero())
}

// pow runs left-to-right square-and-multiply over all NumBits exponent bits.
// The multiplication happens on every step and is kept or discarded by a
// masked select.
func (c *Constants) pow(base, exp uint280.Uint) uint280.Uint {
	r := c.r
	for i := uint280.NumBits - 1; i >= 0; i-- {
		r = c.mul(r, r)
		m := c.mul(r, base)
		r = uint280.Select(boolMask(exp.Bit(i)), m, r)
	}
	return r
}

func boolMask(b bool) uint64 {
	if b {
		return limb.Mask
	}
	return 0
}
