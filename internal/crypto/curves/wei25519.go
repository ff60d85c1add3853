package curves

import (
	"sync"

	"github.com/smallyu/go-weierstrass/internal/crypto/field"
)

// Wei25519 is the short-Weierstrass model of Curve25519. With the Montgomery
// coefficient A = 486662 the map (u, v) -> (u + A/3, v) sends
// v^2 = u^3 + A*u^2 + u to y^2 = x^3 + a*x + b with
//
//	a = (3 - A^2) / 3
//	b = (2A^3 - 9A) / 27
//
// The generator is the image of the Curve25519 base point u = 9, and its order
// is the ed25519 group order l.
const (
	wei25519A  = "2aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa984914a144"
	wei25519B  = "7b425ed097b425ed097b425ed097b425ed097b425ed097b4260b5e9c7710c864"
	wei25519Gx = "2aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaad245a"
	wei25519Gy = "20ae19a1b8a086b4e01edd2c7748d14c923d4d7e6d7c61b229e9c5a27eced3d9"

	// montgomeryAOver3 is A/3 mod p, the x offset between the Montgomery and
	// Weierstrass models.
	montgomeryAOver3 = "2aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaad2451"
)

var (
	wei25519Once  sync.Once
	wei25519Curve *Curve[field.Fp25519]
)

// NewWei25519 returns the Wei25519 curve over GF(2^255 - 19).
func NewWei25519() *Curve[field.Fp25519] {
	wei25519Once.Do(func() {
		g := FromAffine(mustHex[field.Fp25519](wei25519Gx), mustHex[field.Fp25519](wei25519Gy))
		wei25519Curve = mustCurve(
			Wei25519,
			mustHex[field.Fp25519](wei25519A),
			mustHex[field.Fp25519](wei25519B),
			g,
			Ed25519Scalars{},
		)
	})
	return wei25519Curve
}

// MontgomeryU returns the Curve25519 u-coordinate of a Wei25519 point, i.e.
// x - A/3 in affine coordinates.
func MontgomeryU(p Point[field.Fp25519]) (field.Element[field.Fp25519], error) {
	x, _, err := p.ToAffine()
	if err != nil {
		return x, err
	}
	return x.Sub(mustHex[field.Fp25519](montgomeryAOver3)), nil
}
