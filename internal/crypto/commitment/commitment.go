// Package commitment implements Pedersen commitments over a Weierstrass curve.
package commitment

import (
	"crypto/sha256"
	"encoding/binary"

	"github.com/smallyu/go-weierstrass/internal/crypto/curves"
	"github.com/smallyu/go-weierstrass/internal/crypto/field"
	"github.com/smallyu/go-weierstrass/internal/crypto/uint280"
)

// cofactorClear is multiplied into hashed points. It is 8 for Curve25519 and
// harmless on prime-order curves.
var cofactorClear = []bool{false, false, false, true}

// Commitment represents the output of a commitment scheme.
// C = m*G + r*H
type Commitment[P field.Params] struct {
	C curves.Point[P] // The commitment value
	D curves.Scalar   // The decommitment value (blinding factor)
}

// Pedersen holds the second generator H, whose discrete log relative to G is
// unknown.
type Pedersen[P field.Params] struct {
	curve *curves.Curve[P]
	h     curves.Point[P]
}

// NewPedersen derives H from domain by hashing to the curve.
func NewPedersen[P field.Params](curve *curves.Curve[P], domain []byte) *Pedersen[P] {
	return &Pedersen[P]{curve: curve, h: hashToPoint(curve, domain)}
}

// hashToPoint uses try-and-increment: SHA-256(domain || ctr) is read as a
// little-endian x-coordinate until it decodes to a point of large order.
func hashToPoint[P field.Params](curve *curves.Curve[P], domain []byte) curves.Point[P] {
	enc := make([]byte, 1+uint280.NumBytes)
	var ctr [4]byte
	for i := uint32(0); ; i++ {
		binary.BigEndian.PutUint32(ctr[:], i)
		h := sha256.New()
		h.Write(domain)
		h.Write(ctr[:])
		digest := h.Sum(nil)

		enc[0] = 0x02 | digest[0]&1
		copy(enc[1:], digest)
		p, err := curve.NewPointFromBytes(enc)
		if err != nil {
			continue
		}
		p = curve.BitMul(cofactorClear, p)
		if p.IsIdentity() {
			continue
		}
		return p
	}
}

// H returns the blinding generator.
func (c *Pedersen[P]) H() curves.Point[P] { return c.h }

// New commits to m with a fresh random blinding factor.
func (c *Pedersen[P]) New(m curves.Scalar) (*Commitment[P], error) {
	// 1. Generate random blinding factor
	r, err := c.curve.Scalars().NewScalar()
	if err != nil {
		return nil, err
	}

	// 2. Compute C = m*G + r*H
	return &Commitment[P]{C: c.commit(m, r), D: r}, nil
}

func (c *Pedersen[P]) commit(m, r curves.Scalar) curves.Point[P] {
	return c.curve.Add(c.curve.ScalarBaseMult(m), c.curve.Mul(r, c.h))
}

// Verify checks if the commitment C opens to m with decommitment r.
func (c *Pedersen[P]) Verify(C curves.Point[P], r, m curves.Scalar) bool {
	return c.commit(m, r).Equal(C)
}

// Add combines two commitments. The result opens to the sum of the messages
// with the sum of the blinding factors.
func (c *Pedersen[P]) Add(a, b *Commitment[P]) *Commitment[P] {
	return &Commitment[P]{C: c.curve.Add(a.C, b.C), D: a.D.Add(b.D)}
}
