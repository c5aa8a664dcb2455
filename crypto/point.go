package crypto

import (
	"database/sql/driver"
	"fmt"
	"io"
	"slices"

	"git.gammaspectra.live/P2Pool/algebra/crypto/curve25519"
	"git.gammaspectra.live/P2Pool/algebra/types"
	"git.gammaspectra.live/P2Pool/algebra/utils"
)

// Point A compressed Edwards25519 point, expected to be in the prime order subgroup.
//
// Point is an immutable, public value. The all-zero encoding acts as the identity of Add and Sub.
// Points are totally ordered by their encoded bytes.
type Point[E curve25519.Engine] struct {
	p types.Bytes32
}

type ConstantTimePoint = Point[curve25519.ConstantTimeEngine]
type VarTimePoint = Point[curve25519.VarTimeEngine]

func (p Point[E]) op() E {
	var e E
	return e
}

func ZeroPoint[E curve25519.Engine]() Point[E] {
	return Point[E]{}
}

// GeneratorPoint The base point G
func GeneratorPoint[E curve25519.Engine]() Point[E] {
	return Point[E]{p: curve25519.GeneratorBytes}
}

// PointFromString Parses 0x-prefixed (optional) hex of exactly 32 bytes. The point is not validated.
func PointFromString[E curve25519.Engine](s string) (Point[E], error) {
	p, err := types.Bytes32FromString[types.Bytes32](s)
	if err != nil {
		return Point[E]{}, formatError("point", err)
	}
	return Point[E]{p: p}, nil
}

func MustPointFromString[E curve25519.Engine](s string) Point[E] {
	if p, err := PointFromString[E](s); err != nil {
		panic(err)
	} else {
		return p
	}
}

func PointFromBytes[E curve25519.Engine](buf [curve25519.PointSize]byte) Point[E] {
	return Point[E]{p: buf}
}

// PointFromSlice Uses the first 32 bytes of buf. Shorter input fails.
func PointFromSlice[E curve25519.Engine](buf []byte) (Point[E], error) {
	p, err := types.Bytes32FromSlice(buf)
	if err != nil {
		return Point[E]{}, formatError("point", err)
	}
	return Point[E]{p: p}, nil
}

// Add Returns p + q. If p is zero q is returned unchanged; else if q is zero p is returned unchanged.
// Both points must decode, a failure is fatal.
func (p Point[E]) Add(q Point[E]) Point[E] {
	if p.IsZero() {
		return q
	} else if q.IsZero() {
		return p
	}
	r, err := p.op().PointAdd(p.p, q.p)
	if err != nil {
		utils.Panicf("Point", "add %s + %s: %s", p, q, err)
	}
	return Point[E]{p: r}
}

// Sub Returns p - q with the zero rule of Add: 0 - q returns q
func (p Point[E]) Sub(q Point[E]) Point[E] {
	if p.IsZero() {
		return q
	} else if q.IsZero() {
		return p
	}
	r, err := p.op().PointSubtract(p.p, q.p)
	if err != nil {
		utils.Panicf("Point", "subtract %s - %s: %s", p, q, err)
	}
	return Point[E]{p: r}
}

func (p *Point[E]) AddAssign(q Point[E]) {
	*p = p.Add(q)
}

func (p *Point[E]) SubAssign(q Point[E]) {
	*p = p.Sub(q)
}

// ScalarMult Returns s * p without clamping.
// p must be valid and the result must not be the identity, otherwise this is fatal.
func (p Point[E]) ScalarMult(s Scalar[E]) Point[E] {
	r, err := p.op().ScalarMult(s.le(), p.p)
	if err != nil {
		utils.Panicf("Point", "scalar mult of %s: %s", p, err)
	}
	return Point[E]{p: r}
}

// IsValid Canonical, on curve, not small order and in the prime order subgroup
func (p Point[E]) IsValid() bool {
	return p.op().IsValidPoint(p.p)
}

func (p Point[E]) IsZero() bool {
	return p.p.IsZero()
}

func (p Point[E]) Equal(q Point[E]) bool {
	return p.p == q.p
}

// Compare Lexicographic over the encoded bytes
func (p Point[E]) Compare(q Point[E]) int {
	return p.p.Compare(q.p)
}

func (p Point[E]) Less(q Point[E]) bool {
	return p.Compare(q) < 0
}

// SortPoints Sorts in place into the deterministic byte order
func SortPoints[E curve25519.Engine](points []Point[E]) {
	slices.SortFunc(points, Point[E].Compare)
}

func (p Point[E]) Bytes() types.Bytes32 {
	return p.p
}

func (p Point[E]) Slice() []byte {
	return p.p.Slice()
}

func (p Point[E]) String() string {
	return p.p.String()
}

// StringMode Points are public, PrintObfuscated prints like PrintClear
func (p Point[E]) StringMode(mode PrintMode) string {
	if mode == PrintHexUpper {
		return types.HexPrefix + p.p.HexUpper()
	}
	return p.p.String()
}

// Format Supports %s %v %q, and %x %X with the 0x prefix under the # flag
func (p Point[E]) Format(f fmt.State, verb rune) {
	var s string
	switch verb {
	case 'x':
		s = p.p.Hex()
	case 'X':
		s = p.p.HexUpper()
	case 'q':
		s = `"` + p.p.String() + `"`
	default:
		s = p.p.String()
	}
	if (verb == 'x' || verb == 'X') && f.Flag('#') {
		s = types.HexPrefix + s
	}
	_, _ = io.WriteString(f, s)
}

func (p Point[E]) MarshalJSON() ([]byte, error) {
	return p.p.MarshalJSON()
}

// UnmarshalJSON Accepts the same hex as PointFromString. null is ignored.
func (p *Point[E]) UnmarshalJSON(buf []byte) error {
	str, err := types.UnquoteJSON(buf)
	if err != nil {
		return formatError("point", err)
	} else if str == nil {
		return nil
	}
	q, err := PointFromString[E](*str)
	if err != nil {
		return err
	}
	*p = q
	return nil
}

func (p Point[E]) MarshalText() ([]byte, error) {
	return p.p.AppendText(nil), nil
}

func (p *Point[E]) UnmarshalText(buf []byte) error {
	q, err := PointFromString[E](string(buf))
	if err != nil {
		return err
	}
	*p = q
	return nil
}

func (p *Point[E]) Scan(src any) error {
	if err := p.p.Scan(src); err != nil {
		return formatError("point", err)
	}
	return nil
}

func (p *Point[E]) Value() (driver.Value, error) {
	return p.p.Value()
}
