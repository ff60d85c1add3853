// Package curves implements the group law of short-Weierstrass curves
// y^2 = x^3 + a*x + b over the fields of package field.
//
// Points are kept in Jacobian coordinates (x, y, z), representing the affine
// point (x/z^2, y/z^3), so no inversion is needed until a point is encoded.
// None of the point operations run in constant time.
package curves

import (
	"math/big"

	"github.com/pkg/errors"

	"github.com/smallyu/go-weierstrass/internal/crypto/field"
)

// Names of the built-in curves.
const (
	Wei25519  = "wei25519"
	Secp256k1 = "secp256k1"
)

var (
	ErrNotOnCurve      = errors.New("curves: point is not on the curve")
	ErrSingularCurve   = errors.New("curves: curve is singular")
	ErrPointAtInfinity = errors.New("curves: point at infinity has no affine coordinates")
	ErrInvalidEncoding = errors.New("curves: invalid point encoding")
	ErrScalarMismatch  = errors.New("curves: scalar belongs to a different field")
	ErrNotInSubgroup   = errors.New("curves: point is not in the prime-order subgroup")
)

// Curve is a short-Weierstrass curve with a generator and the scalar field of
// the generator's order. A Curve is immutable and safe for concurrent use.
type Curve[P field.Params] struct {
	name    string
	a, b    field.Element[P]
	g       Point[P]
	scalars ScalarField
}

// NewCurve returns the curve y^2 = x^3 + a*x + b with generator g. It fails
// with ErrSingularCurve if 4a^3 + 27b^2 == 0 and with ErrNotOnCurve if g is
// the identity or does not satisfy the curve equation.
func NewCurve[P field.Params](name string, a, b field.Element[P], g Point[P], scalars ScalarField) (*Curve[P], error) {
	c := &Curve[P]{name: name, a: a, b: b, g: g, scalars: scalars}

	disc := field.FromUint64[P](4).Mul(a.Square().Mul(a)).Add(field.FromUint64[P](27).Mul(b.Square()))
	if disc.IsZero() {
		return nil, errors.Wrap(ErrSingularCurve, name)
	}
	if g.IsIdentity() || !c.Contains(g) {
		return nil, errors.Wrapf(ErrNotOnCurve, "%s generator", name)
	}
	return c, nil
}

func mustCurve[P field.Params](name string, a, b field.Element[P], g Point[P], scalars ScalarField) *Curve[P] {
	c, err := NewCurve(name, a, b, g, scalars)
	if err != nil {
		panic(err)
	}
	return c
}

// mustElement converts a built-in constant, which must already be reduced.
func mustElement[P field.Params](n *big.Int) field.Element[P] {
	if n.Sign() < 0 || n.Cmp(field.Modulus[P]()) >= 0 {
		panic(errors.Wrapf(field.ErrNonCanonical, "curves: constant %x", n))
	}
	e, err := field.FromBig[P](n)
	if err != nil {
		panic(err)
	}
	return e
}

func mustHex[P field.Params](s string) field.Element[P] {
	n, ok := new(big.Int).SetString(s, 16)
	if !ok {
		panic("curves: invalid constant " + s)
	}
	return mustElement[P](n)
}

// Name returns the curve name.
func (c *Curve[P]) Name() string { return c.name }

// A returns the coefficient a.
func (c *Curve[P]) A() field.Element[P] { return c.a }

// B returns the coefficient b.
func (c *Curve[P]) B() field.Element[P] { return c.b }

// Generator returns the base point G.
func (c *Curve[P]) Generator() Point[P] { return c.g }

// Scalars returns the scalar field of the generator's order.
func (c *Curve[P]) Scalars() ScalarField { return c.scalars }

// Order returns the order of the generator.
func (c *Curve[P]) Order() *big.Int { return c.scalars.Order() }

// NewAffinePoint returns the point (x, y) if it lies on c.
func (c *Curve[P]) NewAffinePoint(x, y field.Element[P]) (Point[P], error) {
	p := FromAffine(x, y)
	if !c.Contains(p) {
		return Point[P]{}, ErrNotOnCurve
	}
	return p, nil
}

// rhs returns x^3 + a*x + b.
func (c *Curve[P]) rhs(x field.Element[P]) field.Element[P] {
	return x.Square().Mul(x).Add(c.a.Mul(x)).Add(c.b)
}

// Contains reports whether p satisfies y^2 = x^3 + a*x*z^4 + b*z^6. The point
// at infinity is always contained.
func (c *Curve[P]) Contains(p Point[P]) bool {
	if p.IsIdentity() {
		return true
	}
	z2 := p.Z.Square()
	z4 := z2.Square()
	z6 := z4.Mul(z2)

	lhs := p.Y.Square()
	rhs := p.X.Square().Mul(p.X).
		Add(c.a.Mul(p.X).Mul(z4)).
		Add(c.b.Mul(z6))
	return lhs.Equal(rhs)
}

// Add returns p + q.
func (c *Curve[P]) Add(p, q Point[P]) Point[P] {
	if p.IsIdentity() {
		return q
	}
	if q.IsIdentity() {
		return p
	}

	z1z1 := p.Z.Square()
	z2z2 := q.Z.Square()
	u1 := p.X.Mul(z2z2)
	u2 := q.X.Mul(z1z1)
	s1 := p.Y.Mul(z2z2).Mul(q.Z)
	s2 := q.Y.Mul(z1z1).Mul(p.Z)

	if u1.Equal(u2) {
		if !s1.Equal(s2) {
			// q == -p
			return Identity[P]()
		}
		return c.Double(p)
	}

	h := u2.Sub(u1)
	r := s2.Sub(s1)
	hh := h.Square()
	hhh := hh.Mul(h)
	v := u1.Mul(hh)

	// x3 = r^2 - h^3 - 2v
	x3 := r.Square().Sub(hhh).Sub(v.Double())
	// y3 = r(v - x3) - s1*h^3
	y3 := r.Mul(v.Sub(x3)).Sub(s1.Mul(hhh))
	// z3 = z1*z2*h
	z3 := p.Z.Mul(q.Z).Mul(h)
	return Point[P]{X: x3, Y: y3, Z: z3}
}

// Double returns 2p.
func (c *Curve[P]) Double(p Point[P]) Point[P] {
	if p.IsIdentity() || p.Y.IsZero() {
		// A point with y == 0 has order two.
		return Identity[P]()
	}

	yy := p.Y.Square()
	zz := p.Z.Square()

	// s = 4*x*y^2
	s := p.X.Mul(yy).Double().Double()
	// m = 3x^2 + a*z^4
	xx := p.X.Square()
	m := xx.Double().Add(xx).Add(c.a.Mul(zz.Square()))

	// x3 = m^2 - 2s
	x3 := m.Square().Sub(s.Double())
	// y3 = m(s - x3) - 8y^4
	y3 := m.Mul(s.Sub(x3)).Sub(yy.Square().Double().Double().Double())
	// z3 = 2*y*z
	z3 := p.Y.Mul(p.Z).Double()
	return Point[P]{X: x3, Y: y3, Z: z3}
}

// Sub returns p - q.
func (c *Curve[P]) Sub(p, q Point[P]) Point[P] {
	return c.Add(p, q.Negate())
}

// BitMul returns k*p where k is given by its little-endian bits. It doubles
// once per bit, most significant first, and adds p for every set bit.
func (c *Curve[P]) BitMul(bits []bool, p Point[P]) Point[P] {
	acc := Identity[P]()
	for i := len(bits) - 1; i >= 0; i-- {
		acc = c.Double(acc)
		if bits[i] {
			acc = c.Add(acc, p)
		}
	}
	return acc
}

// Mul returns k*p. It panics with ErrScalarMismatch if k does not come from
// the curve's scalar field.
func (c *Curve[P]) Mul(k Scalar, p Point[P]) Point[P] {
	bits := k.Bits()
	if len(bits) != c.scalars.BitLen() {
		panic(errors.Wrapf(ErrScalarMismatch, "%d-bit scalar on %s", len(bits), c.name))
	}
	return c.BitMul(bits, p)
}

// InSubgroup reports whether p lies in the subgroup generated by G, i.e.
// whether order*p is the identity.
func (c *Curve[P]) InSubgroup(p Point[P]) bool {
	order := c.Order()
	bits := make([]bool, order.BitLen())
	for i := range bits {
		bits[i] = order.Bit(i) == 1
	}
	return c.BitMul(bits, p).IsIdentity()
}

// ScalarBaseMult returns k*G.
func (c *Curve[P]) ScalarBaseMult(k Scalar) Point[P] {
	return c.Mul(k, c.g)
}
