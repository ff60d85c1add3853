// Package field implements arithmetic in prime fields of up to 279 bits using
// Montgomery multiplication over uint280 limbs.
//
// An Element is parameterized by the zero-size type that fixes its modulus,
// e.g. Element[Fp25519]. The Montgomery representation is never exposed:
// values enter through From* and leave through Big, Bytes and Bits.
package field

import (
	"fmt"
	"math/big"

	"github.com/pkg/errors"

	"github.com/smallyu/go-weierstrass/internal/crypto/uint280"
)

var (
	ErrNonCanonical  = errors.New("field: value not below the modulus")
	ErrNonInvertible = errors.New("field: zero is not invertible")
)

// Element is an element of the field fixed by P. The zero value is zero.
type Element[P Params] struct {
	v uint280.Uint
}

func constants[P Params]() *Constants {
	var p P
	return p.Constants()
}

// Zero returns the additive identity.
func Zero[P Params]() Element[P] {
	return Element[P]{}
}

// One returns the multiplicative identity.
func One[P Params]() Element[P] {
	return Element[P]{v: constants[P]().r}
}

// Modulus returns the field modulus as a big integer.
func Modulus[P Params]() *big.Int {
	return constants[P]().modulus.Big()
}

// FromUint64 returns v as a field element.
func FromUint64[P Params](v uint64) Element[P] {
	return Element[P]{v: constants[P]().toMont(uint280.FromUint64(v))}
}

// FromUint returns a mod p.
func FromUint[P Params](a uint280.Uint) Element[P] {
	return Element[P]{v: constants[P]().toMont(a)}
}

// FromBig returns n mod p. n must be non-negative and fit in 280 bits.
func FromBig[P Params](n *big.Int) (Element[P], error) {
	a, err := uint280.FromBig(n)
	if err != nil {
		return Element[P]{}, err
	}
	return FromUint[P](a), nil
}

// FromBytes decodes a canonical little-endian value of at most 35 bytes.
func FromBytes[P Params](b []byte) (Element[P], error) {
	a, err := uint280.FromBytes(b)
	if err != nil {
		return Element[P]{}, err
	}
	if !a.Lt(constants[P]().modulus) {
		return Element[P]{}, ErrNonCanonical
	}
	return FromUint[P](a), nil
}

// Uint returns the canonical value of e.
func (e Element[P]) Uint() uint280.Uint {
	return constants[P]().fromMont(e.v)
}

// Big returns the canonical value of e as a big integer.
func (e Element[P]) Big() *big.Int {
	return e.Uint().Big()
}

// Bytes returns the canonical value of e, little-endian.
func (e Element[P]) Bytes() [uint280.NumBytes]byte {
	return e.Uint().Bytes()
}

// Bits returns the little-endian bit expansion of the canonical value.
func (e Element[P]) Bits() [uint280.NumBits]bool {
	return e.Uint().Bits()
}

// IsOdd reports whether the canonical value of e is odd.
func (e Element[P]) IsOdd() bool {
	return e.Uint().Bit(0)
}

func (e Element[P]) String() string {
	return fmt.Sprintf("0x%x", e.Big())
}

// Equal reports whether e == f.
func (e Element[P]) Equal(f Element[P]) bool {
	return e.v.Equal(f.v)
}

// IsZero reports whether e == 0.
func (e Element[P]) IsZero() bool {
	return e.v.IsZero()
}

// Add returns e + f.
func (e Element[P]) Add(f Element[P]) Element[P] {
	return Element[P]{v: constants[P]().add(e.v, f.v)}
}

// Sub returns e - f.
func (e Element[P]) Sub(f Element[P]) Element[P] {
	return Element[P]{v: constants[P]().sub(e.v, f.v)}
}

// Double returns 2e.
func (e Element[P]) Double() Element[P] {
	return e.Add(e)
}

// Neg returns -e.
func (e Element[P]) Neg() Element[P] {
	return Element[P]{v: constants[P]().neg(e.v)}
}

// Mul returns e * f.
func (e Element[P]) Mul(f Element[P]) Element[P] {
	return Element[P]{v: constants[P]().mul(e.v, f.v)}
}

// Square returns e * e.
func (e Element[P]) Square() Element[P] {
	return e.Mul(e)
}

// Pow returns e^exp. The loop always runs over all 280 exponent bits.
func (e Element[P]) Pow(exp uint280.Uint) Element[P] {
	return Element[P]{v: constants[P]().pow(e.v, exp)}
}

// Invert returns 1/e computed as e^(p-2).
func (e Element[P]) Invert() (Element[P], error) {
	if e.IsZero() {
		return Element[P]{}, ErrNonInvertible
	}
	c := constants[P]()
	return Element[P]{v: c.pow(e.v, c.pMinus2)}, nil
}

// Legendre returns 1 if e is a non-zero square, -1 if it is a non-square and
// 0 if e is zero.
func (e Element[P]) Legendre() int {
	if e.IsZero() {
		return 0
	}
	if e.Pow(constants[P]().pMinus1Half).Equal(One[P]()) {
		return 1
	}
	return -1
}

// Sqrt returns a square root of e and true, or false if e is not a square.
// It uses Tonelli-Shanks and runs in variable time.
func (e Element[P]) Sqrt() (Element[P], bool) {
	if e.IsZero() {
		return e, true
	}
	if e.Legendre() != 1 {
		return Element[P]{}, false
	}

	c := constants[P]()
	one := One[P]()
	m := c.s
	z := Element[P]{v: c.pow(c.z, c.q)}
	t := e.Pow(c.q)
	r := e.Pow(c.qPlus1Half)

	for !t.Equal(one) {
		// Find the least i with t^(2^i) == 1.
		i := 0
		for t2 := t; !t2.Equal(one); t2 = t2.Square() {
			i++
		}
		b := z
		for j := 0; j < m-i-1; j++ {
			b = b.Square()
		}
		m = i
		z = b.Square()
		t = t.Mul(z)
		r = r.Mul(b)
	}
	return r, true
}
