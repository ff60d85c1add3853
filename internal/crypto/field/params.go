package field

import (
	"math/big"

	"github.com/pkg/errors"

	"github.com/smallyu/go-weierstrass/internal/crypto/limb"
	"github.com/smallyu/go-weierstrass/internal/crypto/uint280"
)

// Params fixes the modulus of an Element type. Implementations are zero-size
// types whose Constants method returns a package-level value, so choosing a
// field is a compile-time decision.
type Params interface {
	Constants() *Constants
}

// Constants holds everything the Montgomery arithmetic needs for one modulus.
// It is computed once by NewConstants and never modified.
type Constants struct {
	modulus uint280.Uint
	// r is 2^280 mod p, the Montgomery form of 1.
	r uint280.Uint
	// r2 is 2^560 mod p, used to convert into Montgomery form.
	r2 uint280.Uint
	// pInv is -p^-1 mod 2^56.
	pInv uint64

	pMinus2     uint280.Uint
	pMinus1Half uint280.Uint

	// Tonelli-Shanks: p - 1 = q * 2^s with q odd; z is a quadratic
	// non-residue in Montgomery form.
	s          int
	q          uint280.Uint
	qPlus1Half uint280.Uint
	z          uint280.Uint
}

// NewConstants derives the Montgomery constants for an odd prime modulus
// below 2^279.
func NewConstants(modulus *big.Int) (*Constants, error) {
	if modulus.Sign() <= 0 || modulus.Bit(0) == 0 || modulus.BitLen() >= uint280.NumBits {
		return nil, errors.Errorf("field: unsupported modulus %s", modulus)
	}
	p, err := uint280.FromBig(modulus)
	if err != nil {
		return nil, err
	}

	c := &Constants{modulus: p}
	c.pInv = negInverse(p[0])

	// R = ((2^280 - 1) mod p) + 1, which is below p because p is odd.
	_, rem, err := uint280.Max().Div(p)
	if err != nil {
		return nil, err
	}
	c.r = rem.AddMod(uint280.One(), p)

	// R^2 = R * 2^280 mod p by 280 modular doublings.
	c.r2 = c.r
	for i := 0; i < uint280.NumBits; i++ {
		c.r2 = c.r2.AddMod(c.r2, p)
	}

	pMinus1 := p.Sub(uint280.One())
	c.pMinus2 = pMinus1.Sub(uint280.One())
	c.pMinus1Half, _ = pMinus1.Shr1()

	c.q = pMinus1
	for !c.q.Bit(0) {
		c.q, _ = c.q.Shr1()
		c.s++
	}
	c.qPlus1Half, _ = c.q.Add(uint280.One()).Shr1()

	one := c.r
	minusOne := c.neg(one)
	for n := uint64(2); ; n++ {
		if n > 1000 {
			return nil, errors.Errorf("field: no quadratic non-residue found for %s", modulus)
		}
		cand := c.toMont(uint280.FromUint64(n))
		if c.pow(cand, c.pMinus1Half).Equal(minusOne) {
			c.z = cand
			break
		}
	}
	return c, nil
}

// MustNewConstants is like NewConstants but panics on error. It is meant for
// package-level field definitions.
func MustNewConstants(modulusHex string) *Constants {
	m, ok := new(big.Int).SetString(modulusHex, 16)
	if !ok {
		panic("field: invalid modulus " + modulusHex)
	}
	c, err := NewConstants(m)
	if err != nil {
		panic(err)
	}
	return c
}

// Modulus returns the field modulus.
func (c *Constants) Modulus() uint280.Uint { return c.modulus }

// negInverse returns -p0^-1 mod 2^56 for odd p0 by Newton iteration; each step
// doubles the number of correct low bits, starting from 3.
func negInverse(p0 uint64) uint64 {
	inv := p0
	for i := 0; i < 5; i++ {
		inv *= 2 - p0*inv
	}
	return -inv & limb.Mask
}

// Fp25519 is the field of integers modulo 2^255 - 19.
type Fp25519 struct{}

// FpSecp256k1 is the base field of the secp256k1 curve,
// 2^256 - 2^32 - 977.
type FpSecp256k1 struct{}

var (
	fp25519     = MustNewConstants("7fffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffed")
	fpSecp256k1 = MustNewConstants("fffffffffffffffffffffffffffffffffffffffffffffffffffffffefffffc2f")
)

func (Fp25519) Constants() *Constants     { return fp25519 }
func (FpSecp256k1) Constants() *Constants { return fpSecp256k1 }
