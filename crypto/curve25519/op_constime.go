package curve25519

import (
	"git.gammaspectra.live/P2Pool/algebra/types"
)

// ConstantTimeEngine Implements Constant time operations for Edwards25519 points
//
// Safe to use with private data or scalars
type ConstantTimeEngine struct {
	scalarOperations
}

func (e ConstantTimeEngine) decode(p types.Bytes32) (*Point, error) {
	return DecodeCompressedPoint(new(Point), p)
}

// decodeSubgroup Like decode, also requires the point to be in the prime order subgroup
func (e ConstantTimeEngine) decodeSubgroup(p types.Bytes32) (*Point, error) {
	q, err := e.decode(p)
	if err != nil {
		return nil, err
	}
	if q.IsSmallOrder() {
		return nil, ErrSmallOrderPoint
	}
	if !q.IsTorsionFree() {
		return nil, ErrTorsionPoint
	}
	return q, nil
}

func (e ConstantTimeEngine) PointAdd(p, q types.Bytes32) (types.Bytes32, error) {
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

func (e ConstantTimeEngine) PointSubtract(p, q types.Bytes32) (types.Bytes32, error) {
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

func (e ConstantTimeEngine) ScalarBaseMult(x types.Bytes32) (types.Bytes32, error) {
	var s Scalar
	v := new(Point).ScalarBaseMult(loadScalar(&s, x))
	if isIdentity(v) {
		return types.ZeroBytes32, ErrIdentityResult
	}
	return encodePoint(v), nil
}

func (e ConstantTimeEngine) ScalarMult(x, q types.Bytes32) (types.Bytes32, error) {
	p, err := e.decodeSubgroup(q)
	if err != nil {
		return types.ZeroBytes32, err
	}
	var s Scalar
	v := new(Point).ScalarMult(loadScalar(&s, x), p)
	if isIdentity(v) {
		return types.ZeroBytes32, ErrIdentityResult
	}
	return encodePoint(v), nil
}

func (e ConstantTimeEngine) IsValidPoint(p types.Bytes32) bool {
	_, err := e.decodeSubgroup(p)
	return err == nil
}

var _ Engine = ConstantTimeEngine{}

//nolint:gochecknoinits
func init() {
	assertSize[ConstantTimeEngine]()
}
