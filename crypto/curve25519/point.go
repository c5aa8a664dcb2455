package curve25519

import (
	"bytes"

	"git.gammaspectra.live/P2Pool/algebra/types"
	"git.gammaspectra.live/P2Pool/edwards25519" //nolint:depguard
)

const PointSize = 32

type Point = edwards25519.Point

var identityPoint = edwards25519.NewIdentityPoint()

// GeneratorBytes The compressed encoding of the Ed25519 base point G
var GeneratorBytes = types.Bytes32(edwards25519.NewGeneratorPoint().Bytes())

// IdentityBytes The compressed encoding of the neutral element
var IdentityBytes = types.Bytes32(edwards25519.NewIdentityPoint().Bytes())

// DecodeCompressedPoint Decompress a canonically-encoded Ed25519 point.
//
// Ed25519 is of order `8 * basepointOrder`. This function ensures each of those `8 * basepointOrder` points have a
// singular encoding by checking points aren't encoded with an unreduced field element,
// and aren't negative when the negative is equivalent (0 == -0).
//
// It does not check the point is in the prime-order subgroup.
func DecodeCompressedPoint(r *Point, buf types.Bytes32) (*Point, error) {
	if _, err := r.SetBytes(buf[:]); err != nil {
		return nil, err
	}

	// Ban points which are either unreduced or -0
	if !bytes.Equal(r.Bytes(), buf[:]) {
		return nil, ErrNonCanonicalPoint
	}
	return r, nil
}

func encodePoint(p *Point) (out types.Bytes32) {
	copy(out[:], p.Bytes())
	return out
}

func isIdentity(p *Point) bool {
	return p.Equal(identityPoint) == 1
}
