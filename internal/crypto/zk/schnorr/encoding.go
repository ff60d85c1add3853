package schnorr

import (
	"math/big"

	"github.com/pkg/errors"

	"github.com/smallyu/go-weierstrass/internal/crypto/curves"
	"github.com/smallyu/go-weierstrass/internal/crypto/field"
)

// scalarLen is the width of the encoded response.
const scalarLen = 32

// ErrInvalidProof is returned when a serialized proof cannot be decoded.
var ErrInvalidProof = errors.New("schnorr: invalid proof encoding")

// Bytes serializes the proof as the compressed R followed by s as a 32-byte
// big-endian integer.
func (p *Proof[P]) Bytes() []byte {
	out := p.R.BytesCompressed()
	var s [scalarLen]byte
	p.S.BigInt().FillBytes(s[:])
	return append(out, s[:]...)
}

// ParseProof decodes a proof produced by Bytes.
func ParseProof[P field.Params](curve *curves.Curve[P], b []byte) (*Proof[P], error) {
	if len(b) <= scalarLen {
		return nil, errors.Wrapf(ErrInvalidProof, "%d bytes", len(b))
	}
	split := len(b) - scalarLen
	R, err := curve.NewPointFromBytes(b[:split])
	if err != nil {
		return nil, errors.Wrap(ErrInvalidProof, err.Error())
	}
	s := bigFromBytes(b[split:])
	if s.Cmp(curve.Order()) >= 0 {
		return nil, errors.Wrap(ErrInvalidProof, "response out of range")
	}
	return &Proof[P]{R: R, S: curve.Scalars().NewScalarFromBigInt(s)}, nil
}

func bigFromBytes(b []byte) *big.Int {
	return new(big.Int).SetBytes(b)
}
