package curves

import (
	"github.com/pkg/errors"

	"github.com/smallyu/go-weierstrass/internal/crypto/field"
)

// Point is a curve point in Jacobian coordinates. For Z != 0 it represents
// the affine point (X/Z^2, Y/Z^3). Every triple with Z == 0 is the point at
// infinity; the zero value is one of them.
//
// Two points are equal when they represent the same affine point, which is
// not the same as the triples being equal. Use Equal, never ==.
type Point[P field.Params] struct {
	X, Y, Z field.Element[P]
}

// Identity returns the point at infinity.
func Identity[P field.Params]() Point[P] {
	return Point[P]{}
}

// FromAffine returns the Jacobian point (x, y, 1). It does not check that
// the point lies on any curve; see Curve.NewAffinePoint.
func FromAffine[P field.Params](x, y field.Element[P]) Point[P] {
	return Point[P]{X: x, Y: y, Z: field.One[P]()}
}

// IsIdentity reports whether p is the point at infinity.
func (p Point[P]) IsIdentity() bool {
	return p.Z.IsZero()
}

// Equal reports whether p and q represent the same point.
func (p Point[P]) Equal(q Point[P]) bool {
	if p.IsIdentity() || q.IsIdentity() {
		return p.IsIdentity() == q.IsIdentity()
	}
	// x1*z2^2 == x2*z1^2 and y1*z2^3 == y2*z1^3
	z1z1 := p.Z.Square()
	z2z2 := q.Z.Square()
	if !p.X.Mul(z2z2).Equal(q.X.Mul(z1z1)) {
		return false
	}
	return p.Y.Mul(z2z2).Mul(q.Z).Equal(q.Y.Mul(z1z1).Mul(p.Z))
}

// Negate returns -p.
func (p Point[P]) Negate() Point[P] {
	return Point[P]{X: p.X, Y: p.Y.Neg(), Z: p.Z}
}

// ToAffine returns the affine coordinates (X/Z^2, Y/Z^3).
func (p Point[P]) ToAffine() (x, y field.Element[P], err error) {
	zInv, err := p.Z.Invert()
	if err != nil {
		return x, y, ErrPointAtInfinity
	}
	zInv2 := zInv.Square()
	x = p.X.Mul(zInv2)
	y = p.Y.Mul(zInv2).Mul(zInv)
	return x, y, nil
}

const (
	tagIdentity     = 0x00
	tagCompressed   = 0x02
	tagUncompressed = 0x04

	coordinateLen = 35
)

// Bytes returns the uncompressed encoding 0x04 || x || y, with both affine
// coordinates as 35-byte little-endian integers. The point at infinity
// encodes as the single byte 0x00.
func (p Point[P]) Bytes() []byte {
	x, y, err := p.ToAffine()
	if err != nil {
		return []byte{tagIdentity}
	}
	xb, yb := x.Bytes(), y.Bytes()
	out := make([]byte, 0, 1+2*coordinateLen)
	out = append(out, tagUncompressed)
	out = append(out, xb[:]...)
	return append(out, yb[:]...)
}

// BytesCompressed returns the compressed encoding (0x02 | parity(y)) || x.
// The point at infinity encodes as the single byte 0x00.
func (p Point[P]) BytesCompressed() []byte {
	x, y, err := p.ToAffine()
	if err != nil {
		return []byte{tagIdentity}
	}
	xb := x.Bytes()
	tag := byte(tagCompressed)
	if y.IsOdd() {
		tag |= 1
	}
	return append([]byte{tag}, xb[:]...)
}

// NewPointFromBytes decodes either encoding produced by Bytes or
// BytesCompressed and checks that the result lies on c.
func (c *Curve[P]) NewPointFromBytes(b []byte) (Point[P], error) {
	switch {
	case len(b) == 1 && b[0] == tagIdentity:
		return Identity[P](), nil

	case len(b) == 1+2*coordinateLen && b[0] == tagUncompressed:
		x, err := field.FromBytes[P](b[1 : 1+coordinateLen])
		if err != nil {
			return Point[P]{}, errors.Wrap(ErrInvalidEncoding, err.Error())
		}
		y, err := field.FromBytes[P](b[1+coordinateLen:])
		if err != nil {
			return Point[P]{}, errors.Wrap(ErrInvalidEncoding, err.Error())
		}
		return c.NewAffinePoint(x, y)

	case len(b) == 1+coordinateLen && b[0]&^1 == tagCompressed:
		x, err := field.FromBytes[P](b[1:])
		if err != nil {
			return Point[P]{}, errors.Wrap(ErrInvalidEncoding, err.Error())
		}
		y, ok := c.rhs(x).Sqrt()
		if !ok {
			return Point[P]{}, ErrNotOnCurve
		}
		odd := b[0]&1 == 1
		if y.IsZero() && odd {
			return Point[P]{}, errors.Wrap(ErrInvalidEncoding, "odd tag for zero y")
		}
		if y.IsOdd() != odd {
			y = y.Neg()
		}
		return FromAffine(x, y), nil

	default:
		return Point[P]{}, errors.Wrapf(ErrInvalidEncoding, "%d bytes with tag %#x", len(b), firstByte(b))
	}
}

func firstByte(b []byte) byte {
	if len(b) == 0 {
		return 0
	}
	return b[0]
}
