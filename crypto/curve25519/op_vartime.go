package curve25519

import (
	"git.gammaspectra.live/P2Pool/algebra/types"
)

// VarTimeEngine Implements Variable time operations for Edwards25519 points
// Some operations may be implemented as constant time operations if no variable alternative exists
//
// Unsafe to use with private data or scalars
type VarTimeEngine struct {
	scalarOperations
}

func (e VarTimeEngine) decode(p types.Bytes32) (*Point, error) {
	return DecodeCompressedPoint(new(Point), p)
}

func (e VarTimeEngine) decodeSubgroup(p types.Bytes32) (*Point, error) {
	q, err := e.decode(p)
	if err != nil {
		return nil, err
	}
	if q.IsSmallOrder() {
		return nil, ErrSmallOrderPoint
	}
	if !q.IsTorsionFreeVarTime() {
		return nil, ErrTorsionPoint
	}
	return q, nil
}

func (e VarTimeEngine) PointAdd(p, q types.Bytes32) (types.Bytes32, error) {
	a, err := e.decode(p)
	if err != nil {
		return types.ZeroBytes32, err
	}
	b, err := e.decode(q)
	if err != nil {
		return types.ZeroBytes32, err
	}
	return encodePoint(a.Add(a, b)), nil
}

func (e VarTimeEngine) PointSubtract(p, q types.Bytes32) (types.Bytes32, error) {
	a, err := e.decode(p)
	if err != nil {
		return types.ZeroBytes32, err
	}
	b, err := e.decode(q)
	if err != nil {
		return types.ZeroBytes32, err
	}
	return encodePoint(a.Subtract(a, b)), nil
}

func (e VarTimeEngine) ScalarBaseMult(x types.Bytes32) (types.Bytes32, error) {
	var s Scalar
	v := new(Point).VarTimeScalarBaseMult(loadScalar(&s, x))
	if isIdentity(v) {
		return types.ZeroBytes32, ErrIdentityResult
	}
	return encodePoint(v), nil
}

func (e VarTimeEngine) ScalarMult(x, q types.Bytes32) (types.Bytes32, error) {
	p, err := e.decodeSubgroup(q)
	if err != nil {
		return types.ZeroBytes32, err
	}
	var s Scalar
	v := new(Point).VarTimeScalarMult(loadScalar(&s, x), p)
	if isIdentity(v) {
		return types.ZeroBytes32, ErrIdentityResult
	}
	return encodePoint(v), nil
}

func (e VarTimeEngine) IsValidPoint(p types.Bytes32) bool {
	_, err := e.decodeSubgroup(p)
	return err == nil
}

var _ Engine = VarTimeEngine{}

//nolint:gochecknoinits
func init() {
	assertSize[VarTimeEngine]()
}
