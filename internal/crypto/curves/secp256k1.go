package curves

import (
	"crypto/rand"
	"math/big"
	"sync"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"

	"github.com/smallyu/go-weierstrass/internal/crypto/field"
)

// Secp256k1Scalars is the scalar field of secp256k1, backed by
// secp256k1.ModNScalar.
type Secp256k1Scalars struct{}

func (Secp256k1Scalars) Order() *big.Int {
	return new(big.Int).Set(secp256k1.S256().N)
}

func (Secp256k1Scalars) BitLen() int {
	return 256
}

func (c Secp256k1Scalars) NewScalar() (Scalar, error) {
	// Generate random integer in [0, N-1]
	k, err := rand.Int(rand.Reader, secp256k1.S256().N)
	if err != nil {
		return nil, err
	}
	return c.NewScalarFromBigInt(k), nil
}

func (Secp256k1Scalars) NewScalarFromBigInt(n *big.Int) Scalar {
	k := new(big.Int).Mod(n, secp256k1.S256().N)
	s := new(Secp256k1Scalar)
	s.s.SetByteSlice(k.Bytes())
	return s
}

// Secp256k1Scalar implements Scalar.
type Secp256k1Scalar struct {
	s secp256k1.ModNScalar
}

// Bytes returns the 32-byte big-endian encoding.
func (s *Secp256k1Scalar) Bytes() []byte {
	b := s.s.Bytes()
	return b[:]
}

func (s *Secp256k1Scalar) BigInt() *big.Int {
	return new(big.Int).SetBytes(s.Bytes())
}

func (s *Secp256k1Scalar) Add(other Scalar) Scalar {
	o := mustSecp256k1(other)
	res := new(Secp256k1Scalar)
	res.s.Add2(&s.s, &o.s)
	return res
}

func (s *Secp256k1Scalar) Mul(other Scalar) Scalar {
	o := mustSecp256k1(other)
	res := new(Secp256k1Scalar)
	res.s.Mul2(&s.s, &o.s)
	return res
}

func (s *Secp256k1Scalar) Invert() Scalar {
	res := new(Secp256k1Scalar)
	res.s.InverseValNonConst(&s.s)
	return res
}

func (s *Secp256k1Scalar) Bits() []bool {
	return bitsLE(reverse(s.Bytes()), 256)
}

func (s *Secp256k1Scalar) IsZero() bool {
	return s.s.IsZero()
}

func mustSecp256k1(s Scalar) *Secp256k1Scalar {
	o, ok := s.(*Secp256k1Scalar)
	if !ok {
		panic(ErrScalarMismatch)
	}
	return o
}

var (
	secp256k1Once  sync.Once
	secp256k1Curve *Curve[field.FpSecp256k1]
)

// NewSecp256k1 returns secp256k1, y^2 = x^3 + 7, over its base field. The
// generator comes from the decred curve parameters.
func NewSecp256k1() *Curve[field.FpSecp256k1] {
	secp256k1Once.Do(func() {
		params := secp256k1.S256().Params()
		g := FromAffine(mustElement[field.FpSecp256k1](params.Gx), mustElement[field.FpSecp256k1](params.Gy))
		secp256k1Curve = mustCurve(
			Secp256k1,
			field.Zero[field.FpSecp256k1](),
			field.FromUint64[field.FpSecp256k1](7),
			g,
			Secp256k1Scalars{},
		)
	})
	return secp256k1Curve
}
