package polynomial

import (
	"math/big"

	"github.com/pkg/errors"

	"github.com/smallyu/go-weierstrass/internal/crypto/curves"
	"github.com/smallyu/go-weierstrass/internal/crypto/field"
)

// Polynomial represents a polynomial f(x) = a_0 + a_1*x + ... + a_t*x^t
// over the scalar field of a curve.
type Polynomial struct {
	Coefficients []curves.Scalar
	Scalars      curves.ScalarField
}

// New generates a random polynomial of given degree with the constant term (secret) provided.
// If secret is nil, a random constant term is generated.
func New(scalars curves.ScalarField, degree int, secret curves.Scalar) (*Polynomial, error) {
	if degree < 0 {
		return nil, errors.Errorf("polynomial: negative degree %d", degree)
	}
	coeffs := make([]curves.Scalar, degree+1)
	var err error

	// a_0 is the secret
	if secret == nil {
		coeffs[0], err = scalars.NewScalar()
		if err != nil {
			return nil, err
		}
	} else {
		coeffs[0] = secret
	}

	// Generate random coefficients a_1 ... a_t
	for i := 1; i <= degree; i++ {
		coeffs[i], err = scalars.NewScalar()
		if err != nil {
			return nil, err
		}
	}

	return &Polynomial{
		Coefficients: coeffs,
		Scalars:      scalars,
	}, nil
}

// Evaluate calculates f(x) mod q
func (p *Polynomial) Evaluate(x curves.Scalar) curves.Scalar {
	// Horner's method
	degree := len(p.Coefficients) - 1
	result := p.Coefficients[degree]

	for i := degree - 1; i >= 0; i-- {
		result = result.Mul(x).Add(p.Coefficients[i])
	}

	return result
}

// EvaluateMulti calculates f(x) for multiple x values
func (p *Polynomial) EvaluateMulti(xs []curves.Scalar) []curves.Scalar {
	results := make([]curves.Scalar, len(xs))
	for i, x := range xs {
		results[i] = p.Evaluate(x)
	}
	return results
}

// Commit returns the Feldman commitments C_i = a_i * G.
func Commit[P field.Params](curve *curves.Curve[P], p *Polynomial) []curves.Point[P] {
	commitments := make([]curves.Point[P], len(p.Coefficients))
	for i, a := range p.Coefficients {
		commitments[i] = curve.ScalarBaseMult(a)
	}
	return commitments
}

// VerifyShare checks share*G == sum(x^i * C_i), i.e. that share = f(x) for
// the polynomial behind the commitments.
func VerifyShare[P field.Params](curve *curves.Curve[P], commitments []curves.Point[P], x, share curves.Scalar) bool {
	if len(commitments) == 0 {
		return false
	}
	// Horner's method in the exponent
	acc := commitments[len(commitments)-1]
	for i := len(commitments) - 2; i >= 0; i-- {
		acc = curve.Add(curve.Mul(x, acc), commitments[i])
	}
	return curve.ScalarBaseMult(share).Equal(acc)
}

// Reconstruct recovers f(0) from shares y_i = f(x_i) by Lagrange
// interpolation. At least degree+1 distinct, non-zero x_i are required.
func Reconstruct(scalars curves.ScalarField, xs []*big.Int, shares []curves.Scalar) (curves.Scalar, error) {
	if len(xs) == 0 || len(xs) != len(shares) {
		return nil, errors.Errorf("polynomial: %d points and %d shares", len(xs), len(shares))
	}
	q := scalars.Order()
	secret := scalars.NewScalarFromBigInt(big.NewInt(0))

	for i, xi := range xs {
		// L_i(0) = prod_{j != i} x_j / (x_j - x_i)
		num, den := big.NewInt(1), big.NewInt(1)
		for j, xj := range xs {
			if i == j {
				continue
			}
			num.Mul(num, xj)
			num.Mod(num, q)
			den.Mul(den, new(big.Int).Sub(xj, xi))
			den.Mod(den, q)
		}
		if den.Sign() == 0 {
			return nil, errors.Errorf("polynomial: duplicate point %s", xi)
		}
		l := scalars.NewScalarFromBigInt(num).Mul(scalars.NewScalarFromBigInt(den).Invert())
		secret = secret.Add(shares[i].Mul(l))
	}
	return secret, nil
}
