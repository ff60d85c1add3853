package field

import (
	"math/big"
	"math/rand"
	"testing"

	edfield "filippo.io/edwards25519/field"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smallyu/go-weierstrass/internal/crypto/limb"
	"github.com/smallyu/go-weierstrass/internal/crypto/uint280"
)

func randBig(rng *rand.Rand, max *big.Int) *big.Int {
	return new(big.Int).Rand(rng, max)
}

func mustFromBig[P Params](t *testing.T, n *big.Int) Element[P] {
	t.Helper()
	e, err := FromBig[P](n)
	require.NoError(t, err)
	return e
}

func TestConstants(t *testing.T) {
	for name, c := range map[string]*Constants{"p25519": fp25519, "secp256k1": fpSecp256k1} {
		t.Run(name, func(t *testing.T) {
			p := c.modulus.Big()
			r := new(big.Int).Lsh(big.NewInt(1), uint280.NumBits)
			r.Mod(r, p)
			assert.Equal(t, 0, c.r.Big().Cmp(r))

			r2 := new(big.Int).Mul(r, r)
			r2.Mod(r2, p)
			assert.Equal(t, 0, c.r2.Big().Cmp(r2))

			// p * pInv == -1 mod 2^56
			assert.Equal(t, limb.Mask, (c.modulus[0]*c.pInv)&limb.Mask)

			q := new(big.Int).Lsh(c.q.Big(), uint(c.s))
			assert.Equal(t, 0, q.Cmp(new(big.Int).Sub(p, big.NewInt(1))))
			assert.Equal(t, uint(1), c.q.Big().Bit(0))
		})
	}

	_, err := NewConstants(big.NewInt(10))
	assert.Error(t, err)
	_, err = NewConstants(new(big.Int).Lsh(big.NewInt(1), 300))
	assert.Error(t, err)
}

func TestConversions(t *testing.T) {
	t.Run("small values", func(t *testing.T) {
		e := FromUint64[Fp25519](42)
		assert.Equal(t, 0, e.Big().Cmp(big.NewInt(42)))
		assert.Equal(t, byte(42), e.Bytes()[0])
		assert.True(t, e.Bits()[1])
		assert.False(t, e.Bits()[0])
	})

	t.Run("bytes round trip", func(t *testing.T) {
		rng := rand.New(rand.NewSource(10))
		p := Modulus[Fp25519]()
		for i := 0; i < 100; i++ {
			e := mustFromBig[Fp25519](t, randBig(rng, p))
			enc := e.Bytes()
			again, err := FromBytes[Fp25519](enc[:])
			require.NoError(t, err)
			assert.True(t, e.Equal(again))
		}
	})

	t.Run("non canonical", func(t *testing.T) {
		p := constants[Fp25519]().modulus.Bytes()
		_, err := FromBytes[Fp25519](p[:])
		assert.True(t, errors.Is(err, ErrNonCanonical))

		_, err = FromBytes[Fp25519](make([]byte, 36))
		assert.True(t, errors.Is(err, uint280.ErrInputTooLarge))
	})

	t.Run("big values reduce", func(t *testing.T) {
		p := Modulus[FpSecp256k1]()
		n := new(big.Int).Add(p, big.NewInt(5))
		e := mustFromBig[FpSecp256k1](t, n)
		assert.Equal(t, 0, e.Big().Cmp(big.NewInt(5)))
	})
}

func testAgainstBig[P Params](t *testing.T, seed int64) {
	rng := rand.New(rand.NewSource(seed))
	p := Modulus[P]()
	for i := 0; i < 200; i++ {
		x, y := randBig(rng, p), randBig(rng, p)
		if i == 0 {
			x = new(big.Int).Sub(p, big.NewInt(1))
			y = new(big.Int).Sub(p, big.NewInt(1))
		}
		a, b := mustFromBig[P](t, x), mustFromBig[P](t, y)

		want := new(big.Int).Add(x, y)
		require.Equal(t, 0, a.Add(b).Big().Cmp(want.Mod(want, p)), "add")

		want = new(big.Int).Sub(x, y)
		require.Equal(t, 0, a.Sub(b).Big().Cmp(want.Mod(want, p)), "sub")

		want = new(big.Int).Mul(x, y)
		require.Equal(t, 0, a.Mul(b).Big().Cmp(want.Mod(want, p)), "mul")

		want = new(big.Int).Mul(x, x)
		require.Equal(t, 0, a.Square().Big().Cmp(want.Mod(want, p)), "square")

		want = new(big.Int).Lsh(x, 1)
		require.Equal(t, 0, a.Double().Big().Cmp(want.Mod(want, p)), "double")

		want = new(big.Int).Neg(x)
		require.Equal(t, 0, a.Neg().Big().Cmp(want.Mod(want, p)), "neg")

		e := randBig(rng, p)
		exp, err := uint280.FromBig(e)
		require.NoError(t, err)
		want = new(big.Int).Exp(x, e, p)
		require.Equal(t, 0, a.Pow(exp).Big().Cmp(want), "pow")
	}
}

func TestArithmetic(t *testing.T) {
	t.Run("p25519", func(t *testing.T) { testAgainstBig[Fp25519](t, 11) })
	t.Run("secp256k1", func(t *testing.T) { testAgainstBig[FpSecp256k1](t, 12) })
}

func TestIdentities(t *testing.T) {
	rng := rand.New(rand.NewSource(13))
	p := Modulus[Fp25519]()
	one := One[Fp25519]()
	zero := Zero[Fp25519]()

	assert.True(t, zero.IsZero())
	assert.True(t, zero.Neg().IsZero())
	assert.Equal(t, 0, one.Big().Cmp(big.NewInt(1)))

	for i := 0; i < 50; i++ {
		a := mustFromBig[Fp25519](t, randBig(rng, p))
		assert.True(t, a.Add(zero).Equal(a))
		assert.True(t, a.Mul(one).Equal(a))
		assert.True(t, a.Add(a.Neg()).IsZero())

		if a.IsZero() {
			continue
		}
		inv, err := a.Invert()
		require.NoError(t, err)
		assert.True(t, a.Mul(inv).Equal(one))
	}

	_, err := zero.Invert()
	assert.True(t, errors.Is(err, ErrNonInvertible))
}

func TestSqrt(t *testing.T) {
	t.Run("p25519", func(t *testing.T) { testSqrt[Fp25519](t, 14) })
	t.Run("secp256k1", func(t *testing.T) { testSqrt[FpSecp256k1](t, 15) })
}

func testSqrt[P Params](t *testing.T, seed int64) {
	rng := rand.New(rand.NewSource(seed))
	p := Modulus[P]()

	root, ok := Zero[P]().Sqrt()
	require.True(t, ok)
	assert.True(t, root.IsZero())

	nonSquares := 0
	for i := 0; i < 60; i++ {
		a := mustFromBig[P](t, randBig(rng, p))
		sq := a.Square()
		root, ok := sq.Sqrt()
		require.True(t, ok)
		assert.True(t, root.Square().Equal(sq))

		if _, ok := a.Sqrt(); !ok {
			nonSquares++
			assert.Equal(t, -1, a.Legendre())
		}
	}
	assert.NotZero(t, nonSquares)
}

// The edwards25519 field package is an independent implementation of
// arithmetic modulo 2^255 - 19.
func TestAgainstEdwards25519Field(t *testing.T) {
	rng := rand.New(rand.NewSource(16))
	p := Modulus[Fp25519]()

	toEd := func(e Element[Fp25519]) *edfield.Element {
		b := e.Bytes()
		fe, err := new(edfield.Element).SetBytes(b[:32])
		require.NoError(t, err)
		return fe
	}

	for i := 0; i < 100; i++ {
		a := mustFromBig[Fp25519](t, randBig(rng, p))
		b := mustFromBig[Fp25519](t, randBig(rng, p))

		want := new(edfield.Element).Multiply(toEd(a), toEd(b))
		assert.Equal(t, 1, want.Equal(toEd(a.Mul(b))))

		want = new(edfield.Element).Subtract(toEd(a), toEd(b))
		assert.Equal(t, 1, want.Equal(toEd(a.Sub(b))))

		if a.IsZero() {
			continue
		}
		inv, err := a.Invert()
		require.NoError(t, err)
		want = new(edfield.Element).Invert(toEd(a))
		assert.Equal(t, 1, want.Equal(toEd(inv)))
	}
}
