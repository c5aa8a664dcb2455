package crypto

import (
	"crypto/rand"
	"fmt"
	"io"

	"git.gammaspectra.live/P2Pool/algebra/crypto/curve25519"
	"git.gammaspectra.live/P2Pool/algebra/types"
	"git.gammaspectra.live/P2Pool/algebra/utils"
)

// Scalar An integer modulo l, stored as its 32-byte big-endian encoding.
//
// Text, bytes and ordering all use the big-endian form. The engine works on little-endian
// encodings, so operands are swapped on the way in and results on the way out.
//
// Scalar is an immutable value; every operation returns a new Scalar. The all-zero
// Scalar acts as the identity of Add, Sub and Mul (see Add).
//
// Scalars are secret by default: String, GoString, every fmt verb and MarshalJSON print
// ObfuscatedPlaceholder. Use StringMode with PrintClear to reveal the value.
type Scalar[E curve25519.Engine] struct {
	k types.Bytes32
}

type ConstantTimeScalar = Scalar[curve25519.ConstantTimeEngine]
type VarTimeScalar = Scalar[curve25519.VarTimeEngine]

func (s Scalar[E]) op() E {
	var e E
	return e
}

// scalarOrder l, big-endian
var scalarOrder = swapEndian(curve25519.BasepointOrder())

func swapEndian(b types.Bytes32) (out types.Bytes32) {
	for i := range b {
		out[len(b)-1-i] = b[i]
	}
	return out
}

// le Little-endian encoding, as taken by the engine
func (s Scalar[E]) le() types.Bytes32 {
	return swapEndian(s.k)
}

func scalarFromLE[E curve25519.Engine](k types.Bytes32) Scalar[E] {
	return Scalar[E]{k: swapEndian(k)}
}

func ZeroScalar[E curve25519.Engine]() Scalar[E] {
	return Scalar[E]{}
}

// OneScalar The multiplicative identity
func OneScalar[E curve25519.Engine]() Scalar[E] {
	return Scalar[E]{k: types.Bytes32{curve25519.ScalarSize - 1: 1}}
}

// RandomScalar Draws from crypto/rand. Failure to read entropy is fatal.
func RandomScalar[E curve25519.Engine]() Scalar[E] {
	return RandomScalarFromReader[E](rand.Reader)
}

// RandomScalarFromReader Like RandomScalar with a custom entropy source. Failure to read is fatal.
func RandomScalarFromReader[E curve25519.Engine](r io.Reader) Scalar[E] {
	var e E
	k, err := e.ScalarRandom(r)
	if err != nil {
		utils.Panicf("Scalar", "random scalar: %s", err)
	}
	return scalarFromLE[E](k)
}

// ScalarFromHash Reduces a wide digest modulo l
func ScalarFromHash[E curve25519.Engine](h types.Hash64) Scalar[E] {
	var e E
	return scalarFromLE[E](e.ScalarReduce64(h))
}

// ScalarFromString Parses 0x-prefixed (optional) big-endian hex of exactly 32 bytes. The value is not validated.
func ScalarFromString[E curve25519.Engine](s string) (Scalar[E], error) {
	k, err := types.Bytes32FromString[types.Bytes32](s)
	if err != nil {
		return Scalar[E]{}, formatError("scalar", err)
	}
	return Scalar[E]{k: k}, nil
}

func MustScalarFromString[E curve25519.Engine](s string) Scalar[E] {
	if k, err := ScalarFromString[E](s); err != nil {
		panic(err)
	} else {
		return k
	}
}

// ScalarFromBytes Takes the big-endian encoding
func ScalarFromBytes[E curve25519.Engine](buf [curve25519.ScalarSize]byte) Scalar[E] {
	return Scalar[E]{k: buf}
}

// ScalarFromSlice Uses the first 32 bytes of buf. Shorter input fails.
func ScalarFromSlice[E curve25519.Engine](buf []byte) (Scalar[E], error) {
	k, err := types.Bytes32FromSlice(buf)
	if err != nil {
		return Scalar[E]{}, formatError("scalar", err)
	}
	return Scalar[E]{k: k}, nil
}

// Add Returns s + o mod l.
//
// If s is zero, o is returned unchanged; else if o is zero, s is returned unchanged.
// Sub and Mul apply the exact same rule, which differs from modular arithmetic for them.
func (s Scalar[E]) Add(o Scalar[E]) Scalar[E] {
	if s.IsZero() {
		return o
	} else if o.IsZero() {
		return s
	}
	return scalarFromLE[E](s.op().ScalarAdd(s.le(), o.le()))
}

// Sub Returns s - o mod l, with the zero rule of Add: 0 - o returns o
func (s Scalar[E]) Sub(o Scalar[E]) Scalar[E] {
	if s.IsZero() {
		return o
	} else if o.IsZero() {
		return s
	}
	return scalarFromLE[E](s.op().ScalarSubtract(s.le(), o.le()))
}

// Mul Returns s * o mod l, with the zero rule of Add: s * 0 returns s
func (s Scalar[E]) Mul(o Scalar[E]) Scalar[E] {
	if s.IsZero() {
		return o
	} else if o.IsZero() {
		return s
	}
	return scalarFromLE[E](s.op().ScalarMultiply(s.le(), o.le()))
}

func (s *Scalar[E]) AddAssign(o Scalar[E]) {
	*s = s.Add(o)
}

func (s *Scalar[E]) SubAssign(o Scalar[E]) {
	*s = s.Sub(o)
}

func (s *Scalar[E]) MulAssign(o Scalar[E]) {
	*s = s.Mul(o)
}

func (s Scalar[E]) Negate() Scalar[E] {
	return scalarFromLE[E](s.op().ScalarNegate(s.le()))
}

// Complement Returns c such that s + c == OneScalar
func (s Scalar[E]) Complement() Scalar[E] {
	return scalarFromLE[E](s.op().ScalarComplement(s.le()))
}

// Invert Returns 1 / s mod l. Inverting zero is a fatal error.
func (s Scalar[E]) Invert() Scalar[E] {
	k, err := s.op().ScalarInvert(s.le())
	if err != nil {
		utils.Panicf("Scalar", "invert: %s", err)
	}
	return scalarFromLE[E](k)
}

// IsValid 0 < s < l, compared as unsigned big-endian. Only valid scalars may be used as private keys.
func (s Scalar[E]) IsValid() bool {
	return !s.k.IsZero() && s.k.Compare(scalarOrder) < 0
}

func (s Scalar[E]) IsZero() bool {
	return s.k.IsZero()
}

func (s Scalar[E]) Equal(o Scalar[E]) bool {
	return s.k == o.k
}

// Compare Numeric order, as the encoding is big-endian
func (s Scalar[E]) Compare(o Scalar[E]) int {
	return s.k.Compare(o.k)
}

// ToPoint Returns s * G. The result is checked for validity; a failure is fatal.
func (s Scalar[E]) ToPoint() Point[E] {
	op := s.op()
	p, err := op.ScalarBaseMult(s.le())
	if err != nil {
		utils.Panicf("Scalar", "scalar base mult: %s", err)
	}
	if !op.IsValidPoint(p) {
		utils.Panicf("Scalar", "scalar base mult produced invalid point %s", p)
	}
	return Point[E]{p: p}
}

// Mult Returns s * p, same as p.ScalarMult(s)
func (s Scalar[E]) Mult(p Point[E]) Point[E] {
	return p.ScalarMult(s)
}

// Bytes Returns the secret big-endian encoding
func (s Scalar[E]) Bytes() types.Bytes32 {
	return s.k
}

func (s Scalar[E]) String() string {
	return ObfuscatedPlaceholder
}

func (s Scalar[E]) GoString() string {
	return ObfuscatedPlaceholder
}

// Format Every verb prints ObfuscatedPlaceholder
func (s Scalar[E]) Format(f fmt.State, _ rune) {
	_, _ = io.WriteString(f, ObfuscatedPlaceholder)
}

// StringMode Only PrintClear, PrintHexLower and PrintHexUpper reveal the value
func (s Scalar[E]) StringMode(mode PrintMode) string {
	switch mode {
	case PrintClear, PrintHexLower:
		return s.k.String()
	case PrintHexUpper:
		return types.HexPrefix + s.k.HexUpper()
	default:
		return ObfuscatedPlaceholder
	}
}

// MarshalJSON Emits the placeholder, never the secret
func (s Scalar[E]) MarshalJSON() ([]byte, error) {
	return []byte(`"` + ObfuscatedPlaceholder + `"`), nil
}

// UnmarshalJSON Accepts the same hex as ScalarFromString. null is ignored.
func (s *Scalar[E]) UnmarshalJSON(buf []byte) error {
	str, err := types.UnquoteJSON(buf)
	if err != nil {
		return formatError("scalar", err)
	} else if str == nil {
		return nil
	}
	k, err := ScalarFromString[E](*str)
	if err != nil {
		return err
	}
	*s = k
	return nil
}

func (s *Scalar[E]) UnmarshalText(buf []byte) error {
	k, err := ScalarFromString[E](string(buf))
	if err != nil {
		return err
	}
	*s = k
	return nil
}
