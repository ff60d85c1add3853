package ecc

import (
	"github.com/pkg/errors"

	"github.com/smallyu/go-weierstrass/internal/crypto/curves"
	"github.com/smallyu/go-weierstrass/internal/crypto/field"
	"github.com/smallyu/go-weierstrass/internal/crypto/uint280"
	"github.com/smallyu/go-weierstrass/internal/crypto/zk/schnorr"
)

// Errors returned by the library. Match them with errors.Is; returned errors
// usually wrap one of these with extra context.
var (
	ErrUnknownCurve = errors.New("ecc: unknown curve")

	ErrInputTooLarge   = uint280.ErrInputTooLarge
	ErrDivisionByZero  = uint280.ErrDivisionByZero
	ErrShiftOutOfRange = uint280.ErrShiftOutOfRange
	ErrOverflow        = uint280.ErrOverflow
	ErrUnderflow       = uint280.ErrUnderflow

	ErrNonCanonical  = field.ErrNonCanonical
	ErrNonInvertible = field.ErrNonInvertible

	ErrNotOnCurve      = curves.ErrNotOnCurve
	ErrSingularCurve   = curves.ErrSingularCurve
	ErrPointAtInfinity = curves.ErrPointAtInfinity
	ErrInvalidEncoding = curves.ErrInvalidEncoding
	ErrScalarMismatch  = curves.ErrScalarMismatch
	ErrNotInSubgroup   = curves.ErrNotInSubgroup

	ErrInvalidProof = schnorr.ErrInvalidProof
)
