package curve25519

import (
	"fmt"
	"io"

	"git.gammaspectra.live/P2Pool/algebra/types"
	"git.gammaspectra.live/P2Pool/edwards25519" //nolint:depguard
)

const ScalarSize = 32

type Scalar = edwards25519.Scalar

// basepointOrder is the order of the Ed25519 basepoint, i.e., l = 2^252 + 27742317777372353535851937790883648493.
var basepointOrder = types.Bytes32{0xed, 0xd3, 0xf5, 0x5c, 0x1a, 0x63, 0x12, 0x58, 0xd6, 0x9c, 0xf7, 0xa2, 0xde, 0xf9, 0xde, 0x14, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x10}

// limit = basepointOrder * 15, basepointOrder fits 15 times in 32 bytes (iow, 15 basepointOrder is the highest multiple of basepointOrder that fits in 32 bytes)
var limit = types.Bytes32{0xe3, 0x6a, 0x67, 0x72, 0x8b, 0xce, 0x13, 0x29, 0x8f, 0x30, 0x82, 0x8c, 0x0b, 0xa4, 0x10, 0x39, 0x01, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0xf0}

// BasepointOrder returns l in little-endian encoding
func BasepointOrder() types.Bytes32 {
	return basepointOrder
}

// lessThan compares two little-endian integers from the most significant byte down
//
//go:nosplit
func lessThan(a, b *types.Bytes32) bool {
	for n := ScalarSize - 1; n >= 0; n-- {
		if a[n] < b[n] {
			return true
		} else if a[n] > b[n] {
			return false
		}
	}

	return false
}

// ScalarIsLimit32 a < 15 * l
func ScalarIsLimit32[T ~[ScalarSize]byte](a T) bool {
	b := types.Bytes32(a)
	return lessThan(&b, &limit)
}

// ScalarIsReduced32 a < l
func ScalarIsReduced32[T ~[ScalarSize]byte](a T) bool {
	b := types.Bytes32(a)
	return lessThan(&b, &basepointOrder)
}

// loadScalar Reads any 32-byte pattern as a scalar, reducing modulo l
func loadScalar(out *Scalar, b types.Bytes32) *Scalar {
	var wide [64]byte
	copy(wide[:], b[:])
	_, _ = out.SetUniformBytes(wide[:])
	return out
}

func storeScalar(s *Scalar) (out types.Bytes32) {
	copy(out[:], s.Bytes())
	return out
}

var zeroScalar = edwards25519.NewScalar()
var oneScalar = loadScalar(new(Scalar), types.Bytes32{1})

// scalarOperations Scalar field arithmetic shared by every engine; edwards25519 scalar ops are constant time
type scalarOperations struct{}

func (scalarOperations) ScalarAdd(a, b types.Bytes32) types.Bytes32 {
	var x, y Scalar
	return storeScalar(x.Add(loadScalar(&x, a), loadScalar(&y, b)))
}

func (scalarOperations) ScalarSubtract(a, b types.Bytes32) types.Bytes32 {
	var x, y Scalar
	return storeScalar(x.Subtract(loadScalar(&x, a), loadScalar(&y, b)))
}

func (scalarOperations) ScalarMultiply(a, b types.Bytes32) types.Bytes32 {
	var x, y Scalar
	return storeScalar(x.Multiply(loadScalar(&x, a), loadScalar(&y, b)))
}

func (scalarOperations) ScalarNegate(a types.Bytes32) types.Bytes32 {
	var x Scalar
	return storeScalar(x.Negate(loadScalar(&x, a)))
}

func (scalarOperations) ScalarComplement(a types.Bytes32) types.Bytes32 {
	var x Scalar
	return storeScalar(x.Subtract(oneScalar, loadScalar(&x, a)))
}

func (scalarOperations) ScalarInvert(a types.Bytes32) (types.Bytes32, error) {
	var x Scalar
	if loadScalar(&x, a).Equal(zeroScalar) == 1 {
		return types.ZeroBytes32, ErrZeroScalar
	}
	return storeScalar(x.Invert(&x)), nil
}

func (scalarOperations) ScalarReduce64(h types.Hash64) types.Bytes32 {
	var x Scalar
	_, _ = x.SetUniformBytes(h[:])
	return storeScalar(&x)
}

func (scalarOperations) ScalarRandom(r io.Reader) (types.Bytes32, error) {
	return RandomScalar(r)
}

// RandomScalar Equivalent to Monero's random32_unbiased / random_scalar
func RandomScalar(r io.Reader) (types.Bytes32, error) {
	var buf types.Bytes32
	var k Scalar
	for {
		if _, err := io.ReadFull(r, buf[:]); err != nil {
			return types.ZeroBytes32, fmt.Errorf("%w: %w", ErrEntropy, err)
		}

		if !ScalarIsLimit32(buf) {
			continue
		}
		loadScalar(&k, buf)

		if k.Equal(zeroScalar) == 0 {
			return storeScalar(&k), nil
		}
	}
}
