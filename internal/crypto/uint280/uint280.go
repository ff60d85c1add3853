// Package uint280 implements a fixed-width 280-bit unsigned integer stored as
// five 56-bit limbs.
//
// A Uint is an integer, not a residue: arithmetic wraps modulo 2^280 unless a
// method says otherwise. Methods that can lose information (Add, Sub, Shl)
// drop the overflow silently; the caller either guarantees it cannot happen
// or uses the carry-returning and checked variants.
package uint280

import (
	"fmt"
	"math/big"

	"github.com/pkg/errors"

	"github.com/smallyu/go-weierstrass/internal/crypto/limb"
)

const (
	// LimbBits is the number of value bits per limb.
	LimbBits = limb.Bits
	// NumLimbs is the number of limbs in a Uint.
	NumLimbs = 5
	// NumBits is the width of a Uint in bits.
	NumBits = LimbBits * NumLimbs
	// NumBytes is the width of the byte encoding.
	NumBytes = NumBits / 8

	limbBytes = LimbBits / 8
)

var (
	ErrInputTooLarge   = errors.New("uint280: input too large")
	ErrDivisionByZero  = errors.New("uint280: division by zero")
	ErrShiftOutOfRange = errors.New("uint280: shift out of range")
	ErrOverflow        = errors.New("uint280: overflow")
	ErrUnderflow       = errors.New("uint280: underflow")
)

// Uint is a 280-bit unsigned integer. Limb 0 is the least significant and
// every limb is below 2^56.
type Uint [NumLimbs]uint64

// Zero returns the additive identity.
func Zero() Uint { return Uint{} }

// One returns the integer 1.
func One() Uint { return Uint{1} }

// Max returns 2^280 - 1.
func Max() Uint {
	var r Uint
	for i := range r {
		r[i] = limb.Mask
	}
	return r
}

// FromUint64 returns v as a Uint.
func FromUint64(v uint64) Uint {
	return Uint{v & limb.Mask, v >> LimbBits}
}

// FromBytes decodes a little-endian byte string of at most NumBytes bytes.
func FromBytes(b []byte) (Uint, error) {
	if len(b) > NumBytes {
		return Uint{}, errors.Wrapf(ErrInputTooLarge, "%d bytes", len(b))
	}
	var r Uint
	for i, v := range b {
		r[i/limbBytes] |= uint64(v) << (8 * (i % limbBytes))
	}
	return r, nil
}

// FromBig converts a non-negative big integer of at most NumBits bits.
func FromBig(n *big.Int) (Uint, error) {
	if n.Sign() < 0 {
		return Uint{}, errors.Wrap(ErrInputTooLarge, "negative value")
	}
	if n.BitLen() > NumBits {
		return Uint{}, errors.Wrapf(ErrInputTooLarge, "%d bits", n.BitLen())
	}
	var be [NumBytes]byte
	n.FillBytes(be[:])
	var le [NumBytes]byte
	for i := range be {
		le[i] = be[NumBytes-1-i]
	}
	return FromBytes(le[:])
}

// Bytes returns the fixed-width little-endian encoding.
func (a Uint) Bytes() [NumBytes]byte {
	var out [NumBytes]byte
	for i := range out {
		out[i] = byte(a[i/limbBytes] >> (8 * (i % limbBytes)))
	}
	return out
}

// Bits returns the little-endian bit expansion.
func (a Uint) Bits() [NumBits]bool {
	var out [NumBits]bool
	for i := range out {
		out[i] = a.Bit(i)
	}
	return out
}

// Bit reports whether bit i is set. i must be in [0, NumBits).
func (a Uint) Bit(i int) bool {
	return a[i/LimbBits]>>(i%LimbBits)&1 == 1
}

// Big returns a as a big integer.
func (a Uint) Big() *big.Int {
	le := a.Bytes()
	var be [NumBytes]byte
	for i := range le {
		be[i] = le[NumBytes-1-i]
	}
	return new(big.Int).SetBytes(be[:])
}

// String returns the value in hexadecimal.
func (a Uint) String() string {
	return fmt.Sprintf("0x%x", a.Big())
}

// Adc returns a + b and the carry out of the top limb (0 or 1).
func (a Uint) Adc(b Uint) (Uint, uint64) {
	var r Uint
	var carry uint64
	for i := 0; i < NumLimbs; i++ {
		r[i], carry = limb.Adc(a[i], b[i], carry)
	}
	return r, carry
}

// Add returns a + b modulo 2^280. The carry is dropped.
func (a Uint) Add(b Uint) Uint {
	r, _ := a.Adc(b)
	return r
}

// CheckedAdd returns a + b, or ErrOverflow if the sum does not fit.
func (a Uint) CheckedAdd(b Uint) (Uint, error) {
	r, carry := a.Adc(b)
	if carry != 0 {
		return Uint{}, ErrOverflow
	}
	return r, nil
}

// Sbb returns a - b and the borrow: 0 if a >= b, limb.Mask otherwise.
func (a Uint) Sbb(b Uint) (Uint, uint64) {
	var r Uint
	var borrow uint64
	for i := 0; i < NumLimbs; i++ {
		r[i], borrow = limb.Sbb(a[i], b[i], borrow)
	}
	return r, borrow
}

// Sub returns a - b modulo 2^280. The borrow is dropped.
func (a Uint) Sub(b Uint) Uint {
	r, _ := a.Sbb(b)
	return r
}

// CheckedSub returns a - b, or ErrUnderflow if b > a.
func (a Uint) CheckedSub(b Uint) (Uint, error) {
	r, borrow := a.Sbb(b)
	if borrow != 0 {
		return Uint{}, ErrUnderflow
	}
	return r, nil
}

// Mul returns the full 560-bit product of a and b as low and high halves.
func (a Uint) Mul(b Uint) (lo, hi Uint) {
	var t [2 * NumLimbs]uint64
	for i := 0; i < NumLimbs; i++ {
		var carry uint64
		for j := 0; j < NumLimbs; j++ {
			t[i+j], carry = limb.Mac(t[i+j], a[i], b[j], carry)
		}
		t[i+NumLimbs] = carry
	}
	copy(lo[:], t[:NumLimbs])
	copy(hi[:], t[NumLimbs:])
	return lo, hi
}

// AddMod returns (a + b) mod m under the precondition a + b < 2m.
// Exactly one conditional subtraction is performed; larger sums give a wrong
// result.
func (a Uint) AddMod(b, m Uint) Uint {
	sum, carry := a.Adc(b)
	diff, borrow := sum.Sbb(m)
	// Keep sum only when nothing overflowed and the subtraction underflowed.
	keep := borrow &^ (-carry & limb.Mask)
	return Select(keep, sum, diff)
}

// Select returns a when mask is limb.Mask and b when mask is 0, without
// branching on the mask.
func Select(mask uint64, a, b Uint) Uint {
	var r Uint
	for i := range r {
		r[i] = b[i] ^ (mask & (a[i] ^ b[i]))
	}
	return r
}

// Equal reports whether a == b.
func (a Uint) Equal(b Uint) bool {
	var acc uint64
	for i := range a {
		acc |= a[i] ^ b[i]
	}
	return acc == 0
}

// IsZero reports whether a == 0.
func (a Uint) IsZero() bool {
	return a.Equal(Uint{})
}

// Gte reports whether a >= b.
func (a Uint) Gte(b Uint) bool {
	_, borrow := a.Sbb(b)
	return borrow == 0
}

// Gt reports whether a > b.
func (a Uint) Gt(b Uint) bool {
	d, borrow := a.Sbb(b)
	return borrow == 0 && !d.IsZero()
}

// Lte reports whether a <= b.
func (a Uint) Lte(b Uint) bool { return !a.Gt(b) }

// Lt reports whether a < b.
func (a Uint) Lt(b Uint) bool { return !a.Gte(b) }

// Cmp returns -1, 0 or +1 depending on whether a is less than, equal to or
// greater than b.
func (a Uint) Cmp(b Uint) int {
	switch {
	case a.Gt(b):
		return 1
	case a.Gte(b):
		return 0
	default:
		return -1
	}
}
