package polynomial

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smallyu/go-weierstrass/internal/crypto/curves"
)

func scalarsOf(s curves.ScalarField, vs ...int64) []curves.Scalar {
	out := make([]curves.Scalar, len(vs))
	for i, v := range vs {
		out[i] = s.NewScalarFromBigInt(big.NewInt(v))
	}
	return out
}

func TestNew(t *testing.T) {
	scalars := curves.Ed25519Scalars{}

	t.Run("with random secret", func(t *testing.T) {
		poly, err := New(scalars, 2, nil)
		if err != nil {
			t.Fatalf("Failed to create polynomial: %v", err)
		}

		if len(poly.Coefficients) != 3 {
			t.Errorf("Expected 3 coefficients for degree 2, got %d", len(poly.Coefficients))
		}

		// All coefficients should be non-nil and within range
		for i, c := range poly.Coefficients {
			if c == nil {
				t.Errorf("Coefficient %d is nil", i)
				continue
			}
			if c.BigInt().Cmp(scalars.Order()) >= 0 {
				t.Errorf("Coefficient %d is out of range", i)
			}
		}
	})

	t.Run("with provided secret", func(t *testing.T) {
		secret := scalars.NewScalarFromBigInt(big.NewInt(12345))
		poly, err := New(scalars, 2, secret)
		if err != nil {
			t.Fatalf("Failed to create polynomial: %v", err)
		}

		if poly.Coefficients[0].BigInt().Cmp(big.NewInt(12345)) != 0 {
			t.Errorf("Expected a_0 = 12345, got %s", poly.Coefficients[0].BigInt())
		}
	})

	t.Run("negative degree", func(t *testing.T) {
		_, err := New(scalars, -1, nil)
		assert.Error(t, err)
	})
}

func TestEvaluate(t *testing.T) {
	scalars := curves.Secp256k1Scalars{}
	q := scalars.Order()

	tests := []struct {
		name   string
		coeffs []int64
		x      int64
		want   int64
	}{
		{"constant", []int64{5}, 100, 5},
		{"linear at zero", []int64{3, 2}, 0, 3},
		{"linear", []int64{3, 2}, 5, 13},
		{"quadratic", []int64{1, 2, 3}, 2, 17},
		{"quadratic at three", []int64{1, 2, 3}, 3, 34},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			poly := &Polynomial{Coefficients: scalarsOf(scalars, tt.coeffs...), Scalars: scalars}
			got := poly.Evaluate(scalars.NewScalarFromBigInt(big.NewInt(tt.x)))
			assert.Equal(t, 0, got.BigInt().Cmp(big.NewInt(tt.want)))
		})
	}

	t.Run("modular reduction", func(t *testing.T) {
		// f(x) = q-1 + 2x, f(1) = q+1 = 1 mod q
		qMinus1 := scalars.NewScalarFromBigInt(new(big.Int).Sub(q, big.NewInt(1)))
		poly := &Polynomial{
			Coefficients: []curves.Scalar{qMinus1, scalars.NewScalarFromBigInt(big.NewInt(2))},
			Scalars:      scalars,
		}
		got := poly.Evaluate(scalars.NewScalarFromBigInt(big.NewInt(1)))
		assert.Equal(t, 0, got.BigInt().Cmp(big.NewInt(1)))
	})
}

func TestEvaluateMulti(t *testing.T) {
	scalars := curves.Ed25519Scalars{}

	// f(x) = 5 + 3x
	poly := &Polynomial{Coefficients: scalarsOf(scalars, 5, 3), Scalars: scalars}
	results := poly.EvaluateMulti(scalarsOf(scalars, 0, 1, 2, 10))

	expected := []int64{5, 8, 11, 35}
	require.Len(t, results, len(expected))
	for i, r := range results {
		assert.Equal(t, 0, r.BigInt().Cmp(big.NewInt(expected[i])))
	}
}

func TestShamirSecretSharing(t *testing.T) {
	curve := curves.NewWei25519()
	scalars := curve.Scalars()

	// Create polynomial with known secret
	secret := scalars.NewScalarFromBigInt(big.NewInt(42))
	poly, err := New(scalars, 2, secret) // degree 2 means t=2, so 3 shares needed
	require.NoError(t, err)

	// Generate shares for parties 1..5
	xs := make([]*big.Int, 5)
	shares := make([]curves.Scalar, 5)
	for i := range xs {
		xs[i] = big.NewInt(int64(i + 1))
		shares[i] = poly.Evaluate(scalars.NewScalarFromBigInt(xs[i]))
	}

	commitments := Commit(curve, poly)
	for i := range xs {
		assert.True(t, VerifyShare(curve, commitments, scalars.NewScalarFromBigInt(xs[i]), shares[i]))
	}
	bad := shares[0].Add(scalars.NewScalarFromBigInt(big.NewInt(1)))
	assert.False(t, VerifyShare(curve, commitments, scalars.NewScalarFromBigInt(xs[0]), bad))
	assert.False(t, VerifyShare(curve, nil, scalars.NewScalarFromBigInt(xs[0]), shares[0]))

	// Any three shares reconstruct the secret
	got, err := Reconstruct(scalars, xs[2:], shares[2:])
	require.NoError(t, err)
	assert.Equal(t, 0, got.BigInt().Cmp(big.NewInt(42)))

	got, err = Reconstruct(scalars, []*big.Int{xs[0], xs[2], xs[4]}, []curves.Scalar{shares[0], shares[2], shares[4]})
	require.NoError(t, err)
	assert.Equal(t, 0, got.BigInt().Cmp(big.NewInt(42)))

	// Two shares are not enough
	got, err = Reconstruct(scalars, xs[:2], shares[:2])
	require.NoError(t, err)
	assert.NotEqual(t, 0, got.BigInt().Cmp(big.NewInt(42)))

	_, err = Reconstruct(scalars, []*big.Int{xs[0], xs[0]}, shares[:2])
	assert.Error(t, err)
}
