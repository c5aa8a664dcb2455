package curve25519

import (
	"errors"
	"io"
	"unsafe"

	"git.gammaspectra.live/P2Pool/algebra/types"
)

var (
	ErrNonCanonicalPoint = errors.New("point is not canonically encoded")
	ErrSmallOrderPoint   = errors.New("point has small order")
	ErrTorsionPoint      = errors.New("point is not in the prime order subgroup")
	ErrIdentityResult    = errors.New("operation resulted in the identity point")
	ErrZeroScalar        = errors.New("scalar is zero")
	ErrEntropy           = errors.New("could not read entropy")
)

// Engine Raw group and scalar field operations over compressed 32-byte encodings.
//
// Implementations must be zero-sized, stateless and safe for concurrent use; they are
// instantiated as the zero value of a type parameter.
//
// Scalars are little-endian and are reduced modulo basepointOrder on input, so any
// 32-byte pattern is accepted by the scalar operations.
type Engine interface {
	PointAdd(p, q types.Bytes32) (types.Bytes32, error)
	PointSubtract(p, q types.Bytes32) (types.Bytes32, error)

	// ScalarBaseMult Computes x * G. Fails when the result is the identity.
	ScalarBaseMult(x types.Bytes32) (types.Bytes32, error)
	// ScalarMult Computes x * q without clamping. q must be a valid point and the result must not be the identity.
	ScalarMult(x, q types.Bytes32) (types.Bytes32, error)

	// IsValidPoint Canonical encoding, on curve, not small order and torsion free
	IsValidPoint(p types.Bytes32) bool

	ScalarAdd(a, b types.Bytes32) types.Bytes32
	ScalarSubtract(a, b types.Bytes32) types.Bytes32
	ScalarMultiply(a, b types.Bytes32) types.Bytes32
	ScalarNegate(a types.Bytes32) types.Bytes32
	// ScalarComplement Computes 1 - a
	ScalarComplement(a types.Bytes32) types.Bytes32
	// ScalarInvert Computes 1 / a. Fails for a = 0 mod basepointOrder.
	ScalarInvert(a types.Bytes32) (types.Bytes32, error)
	// ScalarReduce64 Reduces a 512-bit little-endian integer modulo basepointOrder
	ScalarReduce64(h types.Hash64) types.Bytes32
	// ScalarRandom Draws a uniformly random scalar in [1, basepointOrder) from r
	ScalarRandom(r io.Reader) (types.Bytes32, error)
}

func assertSize[T Engine]() {
	var t T
	if unsafe.Sizeof(t) != 0 {
		panic("engine must be zero-sized")
	}
}
