package uint280

import (
	"github.com/pkg/errors"

	"github.com/smallyu/go-weierstrass/internal/crypto/limb"
)

// ShlLimb shifts every limb left by n bits, 0 <= n < LimbBits, moving the
// overflow of each limb into the next one. The bits shifted out of the top
// limb are returned as the carry.
func (a Uint) ShlLimb(n uint) (Uint, uint64, error) {
	if n >= LimbBits {
		return Uint{}, 0, errors.Wrapf(ErrShiftOutOfRange, "limb shift by %d", n)
	}
	r, carry := a.shlLimb(n)
	return r, carry, nil
}

func (a Uint) shlLimb(n uint) (Uint, uint64) {
	var r Uint
	var carry uint64
	for i := 0; i < NumLimbs; i++ {
		r[i] = (a[i]<<n)&limb.Mask | carry
		carry = a[i] >> (LimbBits - n)
	}
	return r, carry
}

// Shl1 shifts a left by one bit and returns the bit shifted out.
func (a Uint) Shl1() (Uint, uint64) {
	return a.shlLimb(1)
}

// Shl shifts a left by n bits. Bits moved past the top are dropped and
// n >= NumBits yields zero.
func (a Uint) Shl(n uint) Uint {
	if n >= NumBits {
		return Uint{}
	}
	shift := int(n / LimbBits)
	var r Uint
	for i := NumLimbs - 1; i >= shift; i-- {
		r[i] = a[i-shift]
	}
	r, _ = r.shlLimb(n % LimbBits)
	return r
}

// ShrLimb shifts every limb right by n bits, 0 <= n < LimbBits, moving the
// low bits of each limb into the one below. The bits shifted out of limb 0 are
// returned in the top of the carry limb.
func (a Uint) ShrLimb(n uint) (Uint, uint64, error) {
	if n >= LimbBits {
		return Uint{}, 0, errors.Wrapf(ErrShiftOutOfRange, "limb shift by %d", n)
	}
	r, carry := a.shrLimb(n)
	return r, carry, nil
}

func (a Uint) shrLimb(n uint) (Uint, uint64) {
	var r Uint
	var carry uint64
	for i := NumLimbs - 1; i >= 0; i-- {
		r[i] = a[i]>>n | carry
		carry = (a[i] << (LimbBits - n)) & limb.Mask
	}
	return r, carry
}

// Shr1 shifts a right by one bit and returns the bit shifted out, in the top
// bit of the carry limb.
func (a Uint) Shr1() (Uint, uint64) {
	return a.shrLimb(1)
}

// Shr shifts a right by n bits; n >= NumBits yields zero.
func (a Uint) Shr(n uint) Uint {
	if n >= NumBits {
		return Uint{}
	}
	shift := int(n / LimbBits)
	var r Uint
	for i := 0; i+shift < NumLimbs; i++ {
		r[i] = a[i+shift]
	}
	r, _ = r.shrLimb(n % LimbBits)
	return r
}

// NBits returns the position of the highest set bit plus one, or 0 for zero.
// The whole expansion is scanned regardless of the value.
func (a Uint) NBits() int {
	n := 0
	for i := NumBits - 1; i >= 0; i-- {
		if n == 0 && a.Bit(i) {
			n = i + 1
		}
	}
	return n
}
