package curves

import (
	"crypto/sha256"
	"math/big"
	"testing"

	"filippo.io/edwards25519"
	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smallyu/go-weierstrass/internal/crypto/field"
)

func TestBuiltinConstantsReduced(t *testing.T) {
	p := field.Modulus[field.Fp25519]()
	for name, s := range map[string]string{
		"a":   wei25519A,
		"b":   wei25519B,
		"Gx":  wei25519Gx,
		"Gy":  wei25519Gy,
		"A/3": montgomeryAOver3,
	} {
		n, ok := new(big.Int).SetString(s, 16)
		require.True(t, ok, name)
		assert.True(t, n.Cmp(p) < 0, "%s is not below p", name)
	}

	// a = (3 - A^2) / 3 and b = (2A^3 - 9A) / 27 with A = 486662.
	A := field.FromUint64[field.Fp25519](486662)
	three := field.FromUint64[field.Fp25519](3)
	curve := NewWei25519()
	assert.True(t, curve.A().Mul(three).Equal(three.Sub(A.Square())))
	wantB := A.Square().Mul(A).Double().Sub(A.Mul(field.FromUint64[field.Fp25519](9)))
	assert.True(t, curve.B().Mul(field.FromUint64[field.Fp25519](27)).Equal(wantB))
	assert.True(t, mustHex[field.Fp25519](montgomeryAOver3).Mul(three).Equal(A))
}

func TestMustHexRejectsUnreduced(t *testing.T) {
	assert.Panics(t, func() {
		mustHex[field.Fp25519]("7fffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffed")
	})
	assert.Panics(t, func() {
		mustHex[field.Fp25519]("2aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa984914a144")
	})
	assert.Panics(t, func() { mustHex[field.Fp25519]("xyz") })
	assert.NotPanics(t, func() {
		mustHex[field.Fp25519]("7fffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffec")
	})
}

func TestEd25519Order(t *testing.T) {
	scalars := Ed25519Scalars{}
	l := scalars.Order()
	assert.Equal(t, "7237005577332262213973186563042994240857116359379907606001950938285454250989", l.String())
	assert.Equal(t, 253, scalars.BitLen())

	// -1 + 1 == 0 in edwards25519's own arithmetic.
	minusOne := scalars.NewScalarFromBigInt(new(big.Int).Sub(l, big.NewInt(1)))
	edMinusOne := edwards25519.NewScalar().Negate(mustEd25519(scalars.NewScalarFromBigInt(big.NewInt(1))).s)
	assert.Equal(t, edMinusOne.Bytes(), minusOne.Bytes())
	assert.True(t, minusOne.Add(scalars.NewScalarFromBigInt(big.NewInt(1))).IsZero())
	assert.True(t, scalars.NewScalarFromBigInt(l).IsZero())

	// A full-width digest is reduced the same way edwards25519 reduces it.
	digest := sha256.Sum256([]byte("challenge"))
	var wide [64]byte
	copy(wide[:], reverse(digest[:]))
	want, err := edwards25519.NewScalar().SetUniformBytes(wide[:])
	require.NoError(t, err)
	var got Scalar
	require.NotPanics(t, func() {
		got = scalars.NewScalarFromBigInt(new(big.Int).SetBytes(digest[:]))
	})
	assert.Equal(t, want.Bytes(), got.Bytes())
}

func TestSecp256k1Order(t *testing.T) {
	scalars := Secp256k1Scalars{}
	n := secp256k1.S256().N
	assert.Equal(t, 0, scalars.Order().Cmp(n))
	assert.Equal(t, 0, NewSecp256k1().Order().Cmp(n))

	minusOne := scalars.NewScalarFromBigInt(big.NewInt(-1))
	assert.True(t, minusOne.Add(scalars.NewScalarFromBigInt(big.NewInt(1))).IsZero())
}

func TestInSubgroup(t *testing.T) {
	curve := NewWei25519()
	assert.True(t, curve.InSubgroup(curve.Generator()))
	assert.True(t, curve.InSubgroup(Identity[field.Fp25519]()))
	assert.True(t, curve.InSubgroup(curve.Double(curve.Generator())))

	// The 2-torsion point (A/3, 0) lies on the curve but outside <G>, and so
	// does its sum with G.
	t2 := FromAffine(mustHex[field.Fp25519](montgomeryAOver3), field.Zero[field.Fp25519]())
	require.True(t, curve.Contains(t2))
	assert.False(t, curve.InSubgroup(t2))
	assert.False(t, curve.InSubgroup(curve.Add(curve.Generator(), t2)))

	secp := NewSecp256k1()
	assert.True(t, secp.InSubgroup(secp.Generator()))
}

func TestMulRejectsForeignScalar(t *testing.T) {
	wei := NewWei25519()
	secp := NewSecp256k1()

	defer func() {
		r := recover()
		require.NotNil(t, r)
		err, ok := r.(error)
		require.True(t, ok)
		assert.True(t, errors.Is(err, ErrScalarMismatch))
	}()
	wei.Mul(secp.Scalars().NewScalarFromBigInt(big.NewInt(5)), wei.Generator())
}
