// Package ecc is the byte-oriented entry point to the curve arithmetic. It
// hides the generic field and point types behind the Group interface so that
// callers can pick a curve by name at runtime.
package ecc

import (
	"math/big"
	"sort"

	"github.com/pkg/errors"

	"github.com/smallyu/go-weierstrass/internal/crypto/curves"
	"github.com/smallyu/go-weierstrass/internal/crypto/field"
	"github.com/smallyu/go-weierstrass/internal/crypto/zk/schnorr"
)

// Group is the prime-order subgroup generated by a curve's base point. Input
// points outside it, such as the small-order points of Wei25519, are
// rejected with ErrNotInSubgroup. Points are exchanged
// in their serialized form: 0x00 for the identity, 0x04 || x || y or
// (0x02 | parity) || x with 35-byte little-endian coordinates. Either form is
// accepted as input; Parameters.Compressed selects the output form.
type Group interface {
	// Name returns the curve name, e.g. "wei25519".
	Name() string

	// Order returns the order of the generator.
	Order() *big.Int

	// Generator returns the encoded base point.
	Generator() []byte

	// ScalarBaseMult computes k * G. k is reduced modulo the order.
	ScalarBaseMult(k *big.Int) ([]byte, error)

	// ScalarMult computes k * P.
	ScalarMult(point []byte, k *big.Int) ([]byte, error)

	// Add combines two points.
	Add(p, q []byte) ([]byte, error)

	// Negate returns -P.
	Negate(point []byte) ([]byte, error)

	// IsOnCurve reports whether point decodes to a point of the group.
	IsOnCurve(point []byte) bool

	// Prove returns the public key secret * G and a Schnorr proof of
	// knowledge of secret.
	Prove(secret *big.Int) (pub, proof []byte, err error)

	// Verify checks a proof produced by Prove against pub.
	Verify(pub, proof []byte) bool
}

// Parameters holds the configuration for a Group.
type Parameters struct {
	Curve      string // The elliptic curve to use (e.g., "wei25519")
	Compressed bool   // Emit compressed point encodings
}

type groupConstructor func(params *Parameters) Group

var registry = map[string]groupConstructor{
	curves.Wei25519: func(params *Parameters) Group {
		return &group[field.Fp25519]{curve: curves.NewWei25519(), compressed: params.Compressed}
	},
	curves.Secp256k1: func(params *Parameters) Group {
		return &group[field.FpSecp256k1]{curve: curves.NewSecp256k1(), compressed: params.Compressed}
	},
}

// Curves returns the names of the supported curves in sorted order.
func Curves() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// New returns the group described by params.
func New(params *Parameters) (Group, error) {
	ctor, ok := registry[params.Curve]
	if !ok {
		return nil, errors.Wrapf(ErrUnknownCurve, "%q", params.Curve)
	}
	return ctor(params), nil
}

// Lookup returns the named group with uncompressed output encodings.
func Lookup(name string) (Group, error) {
	return New(&Parameters{Curve: name})
}

type group[P field.Params] struct {
	curve      *curves.Curve[P]
	compressed bool
}

func (g *group[P]) encode(p curves.Point[P]) []byte {
	if g.compressed {
		return p.BytesCompressed()
	}
	return p.Bytes()
}

func (g *group[P]) decode(b []byte) (curves.Point[P], error) {
	p, err := g.curve.NewPointFromBytes(b)
	if err != nil {
		return p, err
	}
	if !g.curve.InSubgroup(p) {
		return curves.Point[P]{}, curves.ErrNotInSubgroup
	}
	return p, nil
}

func (g *group[P]) scalar(k *big.Int) curves.Scalar {
	return g.curve.Scalars().NewScalarFromBigInt(k)
}

func (g *group[P]) Name() string { return g.curve.Name() }

func (g *group[P]) Order() *big.Int { return g.curve.Order() }

func (g *group[P]) Generator() []byte { return g.encode(g.curve.Generator()) }

func (g *group[P]) ScalarBaseMult(k *big.Int) ([]byte, error) {
	if k == nil {
		return nil, errors.New("ecc: nil scalar")
	}
	return g.encode(g.curve.ScalarBaseMult(g.scalar(k))), nil
}

func (g *group[P]) ScalarMult(point []byte, k *big.Int) ([]byte, error) {
	if k == nil {
		return nil, errors.New("ecc: nil scalar")
	}
	p, err := g.decode(point)
	if err != nil {
		return nil, err
	}
	return g.encode(g.curve.Mul(g.scalar(k), p)), nil
}

func (g *group[P]) Add(a, b []byte) ([]byte, error) {
	p, err := g.decode(a)
	if err != nil {
		return nil, errors.WithMessage(err, "first operand")
	}
	q, err := g.decode(b)
	if err != nil {
		return nil, errors.WithMessage(err, "second operand")
	}
	return g.encode(g.curve.Add(p, q)), nil
}

func (g *group[P]) Negate(point []byte) ([]byte, error) {
	p, err := g.decode(point)
	if err != nil {
		return nil, err
	}
	return g.encode(p.Negate()), nil
}

func (g *group[P]) IsOnCurve(point []byte) bool {
	_, err := g.decode(point)
	return err == nil
}

func (g *group[P]) Prove(secret *big.Int) ([]byte, []byte, error) {
	if secret == nil {
		return nil, nil, errors.New("ecc: nil secret")
	}
	x := g.scalar(secret)
	if x.IsZero() {
		return nil, nil, errors.New("ecc: secret is zero modulo the group order")
	}
	X := g.curve.ScalarBaseMult(x)
	proof, err := schnorr.Prove(g.curve, x, X)
	if err != nil {
		return nil, nil, err
	}
	return g.encode(X), proof.Bytes(), nil
}

func (g *group[P]) Verify(pub, proof []byte) bool {
	X, err := g.decode(pub)
	if err != nil {
		return false
	}
	p, err := schnorr.ParseProof(g.curve, proof)
	if err != nil {
		return false
	}
	return p.Verify(g.curve, X)
}
