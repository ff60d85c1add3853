package curves

import (
	"math/big"
)

// Scalar represents a value in the scalar field of a curve, i.e. an integer
// modulo the order of the generator.
type Scalar interface {
	// Bytes returns the serialization of the scalar.
	Bytes() []byte

	// BigInt returns the scalar as a big integer.
	BigInt() *big.Int

	// Add adds this scalar to another scalar.
	Add(s Scalar) Scalar

	// Mul multiplies this scalar by another scalar.
	Mul(s Scalar) Scalar

	// Invert returns the modular inverse of the scalar.
	Invert() Scalar

	// Bits returns the little-endian bit decomposition of the scalar. The
	// length is fixed by the scalar field, not by the value.
	Bits() []bool

	// IsZero reports whether the scalar is zero.
	IsZero() bool
}

// ScalarField creates scalars for one group order.
type ScalarField interface {
	// Order returns the group order.
	Order() *big.Int

	// BitLen returns the length of the bit decomposition of every scalar.
	BitLen() int

	// NewScalar generates a uniformly random scalar.
	NewScalar() (Scalar, error)

	// NewScalarFromBigInt reduces n modulo the order.
	NewScalarFromBigInt(n *big.Int) Scalar
}

// bitsLE expands a little-endian byte string into n bits.
func bitsLE(b []byte, n int) []bool {
	bits := make([]bool, n)
	for i := range bits {
		bits[i] = b[i/8]>>(i%8)&1 == 1
	}
	return bits
}

// reverse returns b in the opposite byte order.
func reverse(b []byte) []byte {
	out := make([]byte, len(b))
	for i := range b {
		out[len(b)-1-i] = b[i]
	}
	return out
}
