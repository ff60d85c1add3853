package schnorr

import (
	"crypto/sha256"

	"github.com/pkg/errors"

	"github.com/smallyu/go-weierstrass/internal/crypto/curves"
	"github.com/smallyu/go-weierstrass/internal/crypto/field"
)

// Proof represents a Schnorr proof of knowledge of a discrete logarithm.
// Proves knowledge of x such that X = x * G.
type Proof[P field.Params] struct {
	R curves.Point[P] // Commitment R = k * G
	S curves.Scalar   // Response s = k + e * x
}

// Prove generates a Schnorr proof for the secret x, public key X = x*G.
func Prove[P field.Params](curve *curves.Curve[P], x curves.Scalar, X curves.Point[P]) (*Proof[P], error) {
	if curve == nil || x == nil {
		return nil, errors.New("schnorr: inputs cannot be nil")
	}

	// 1. Generate random nonce k
	k, err := curve.Scalars().NewScalar()
	if err != nil {
		return nil, errors.Wrap(err, "schnorr: nonce")
	}

	// 2. Compute R = k * G
	R := curve.ScalarBaseMult(k)

	// 3. Compute challenge e = H(X, R)
	e := challenge(curve, X, R)

	// 4. Compute s = k + e * x mod n
	s := k.Add(e.Mul(x))

	return &Proof[P]{
		R: R,
		S: s,
	}, nil
}

// Verify checks the validity of the Schnorr proof for public key X.
func (p *Proof[P]) Verify(curve *curves.Curve[P], X curves.Point[P]) bool {
	if p == nil || p.S == nil || curve == nil {
		return false
	}
	if X.IsIdentity() || !curve.Contains(X) || !curve.Contains(p.R) {
		return false
	}

	// 1. Compute challenge e = H(X, R)
	e := challenge(curve, X, p.R)

	// 2. Verify s*G == R + e*X
	lhs := curve.ScalarBaseMult(p.S)
	rhs := curve.Add(p.R, curve.Mul(e, X))
	return lhs.Equal(rhs)
}

// challenge computes H(name, X, R) mod n over the uncompressed encodings.
func challenge[P field.Params](curve *curves.Curve[P], X, R curves.Point[P]) curves.Scalar {
	h := sha256.New()
	h.Write([]byte(curve.Name()))
	h.Write(X.Bytes())
	h.Write(R.Bytes())

	return curve.Scalars().NewScalarFromBigInt(bigFromBytes(h.Sum(nil)))
}
