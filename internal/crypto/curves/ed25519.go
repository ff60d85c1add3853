package curves

import (
	"crypto/rand"
	"math/big"

	"filippo.io/edwards25519"
)

// ed25519Order is l = 2^252 + 27742317777372353535851937790883648493.
var ed25519Order = func() *big.Int {
	c, _ := new(big.Int).SetString("27742317777372353535851937790883648493", 10)
	return c.Add(c, new(big.Int).Lsh(big.NewInt(1), 252))
}()

// Ed25519Scalars is the scalar field of Curve25519 and its birational
// equivalents, backed by edwards25519.Scalar.
type Ed25519Scalars struct{}

func (Ed25519Scalars) Order() *big.Int {
	return new(big.Int).Set(ed25519Order)
}

// BitLen is 253, the bit length of l.
func (Ed25519Scalars) BitLen() int {
	return ed25519Order.BitLen()
}

func (Ed25519Scalars) NewScalar() (Scalar, error) {
	var b [64]byte
	_, err := rand.Read(b[:])
	if err != nil {
		return nil, err
	}

	s, err := edwards25519.NewScalar().SetUniformBytes(b[:])
	if err != nil {
		return nil, err
	}
	return &Ed25519Scalar{s: s}, nil
}

func (Ed25519Scalars) NewScalarFromBigInt(n *big.Int) Scalar {
	// edwards25519 uses little-endian canonical encodings.
	var be [32]byte
	new(big.Int).Mod(n, ed25519Order).FillBytes(be[:])

	s, err := edwards25519.NewScalar().SetCanonicalBytes(reverse(be[:]))
	if err != nil {
		// Unreachable: the value was reduced modulo l above.
		panic(err)
	}
	return &Ed25519Scalar{s: s}
}

// Ed25519Scalar implements Scalar
type Ed25519Scalar struct {
	s *edwards25519.Scalar
}

func (s *Ed25519Scalar) Bytes() []byte {
	return s.s.Bytes()
}

func (s *Ed25519Scalar) BigInt() *big.Int {
	return new(big.Int).SetBytes(reverse(s.s.Bytes()))
}

func (s *Ed25519Scalar) Add(other Scalar) Scalar {
	o := mustEd25519(other)
	res := edwards25519.NewScalar().Add(s.s, o.s)
	return &Ed25519Scalar{s: res}
}

func (s *Ed25519Scalar) Mul(other Scalar) Scalar {
	o := mustEd25519(other)
	res := edwards25519.NewScalar().Multiply(s.s, o.s)
	return &Ed25519Scalar{s: res}
}

func (s *Ed25519Scalar) Invert() Scalar {
	res := edwards25519.NewScalar().Invert(s.s)
	return &Ed25519Scalar{s: res}
}

func (s *Ed25519Scalar) Bits() []bool {
	return bitsLE(s.s.Bytes(), ed25519Order.BitLen())
}

func (s *Ed25519Scalar) IsZero() bool {
	return s.s.Equal(edwards25519.NewScalar()) == 1
}

func mustEd25519(s Scalar) *Ed25519Scalar {
	o, ok := s.(*Ed25519Scalar)
	if !ok {
		panic(ErrScalarMismatch)
	}
	return o
}
