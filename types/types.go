package types

import (
	"bytes"
	"database/sql/driver"
	"errors"
	"fmt"
	"strings"

	fasthex "github.com/tmthrgd/go-hex"
)

const Bytes32Size = 32
const Hash64Size = 64

// HexPrefix is emitted on every textual encoding and accepted, optionally, on input
const HexPrefix = "0x"

var (
	ErrWrongSize   = errors.New("wrong size")
	ErrInvalidHex  = errors.New("invalid hex")
	ErrInvalidType = errors.New("invalid type")
)

//nolint:recvcheck
type Bytes32 [Bytes32Size]byte

var ZeroBytes32 Bytes32

// Hash64 A wide digest, as produced by a 512-bit hash function
type Hash64 [Hash64Size]byte

func trimHexPrefix[T ~string | ~[]byte](s T) T {
	if len(s) >= 2 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X') {
		return s[2:]
	}
	return s
}

func decodeHexInto[T ~string | ~[]byte](dst []byte, s T) error {
	s = trimHexPrefix(s)
	if len(s) != len(dst)*2 {
		return fmt.Errorf("%w: expected %d hex digits, got %d", ErrWrongSize, len(dst)*2, len(s))
	}
	if _, err := fasthex.Decode(dst, []byte(s)); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidHex, err)
	}
	return nil
}

func MustBytes32FromString[T ~[Bytes32Size]byte](s string) T {
	if h, err := Bytes32FromString[T](s); err != nil {
		panic(err)
	} else {
		return h
	}
}

// Bytes32FromString Parses 64 hex digits, case-insensitive, with an optional 0x prefix
func Bytes32FromString[T ~[Bytes32Size]byte](s string) (T, error) {
	var h T
	if err := decodeHexInto(h[:], s); err != nil {
		return T{}, err
	}
	return h, nil
}

// Bytes32FromSlice Takes the first Bytes32Size bytes of buf. Shorter input is rejected.
func Bytes32FromSlice(buf []byte) (h Bytes32, err error) {
	if len(buf) < Bytes32Size {
		return h, fmt.Errorf("%w: expected at least %d bytes, got %d", ErrWrongSize, Bytes32Size, len(buf))
	}
	copy(h[:], buf[:Bytes32Size])
	return h, nil
}

func Hash64FromString(s string) (h Hash64, err error) {
	if err = decodeHexInto(h[:], s); err != nil {
		return Hash64{}, err
	}
	return h, nil
}

// Compare Lexicographic comparison of the stored bytes
func (b Bytes32) Compare(other Bytes32) int {
	return bytes.Compare(b[:], other[:])
}

func (b Bytes32) IsZero() bool {
	return b == ZeroBytes32
}

func (b Bytes32) Slice() []byte {
	return b[:]
}

// Hex lowercase digits, no prefix
func (b Bytes32) Hex() string {
	return fasthex.EncodeToString(b[:])
}

// HexUpper uppercase digits, no prefix
func (b Bytes32) HexUpper() string {
	return strings.ToUpper(fasthex.EncodeToString(b[:]))
}

func (b Bytes32) String() string {
	return HexPrefix + b.Hex()
}

// AppendText Appends the 0x-prefixed lowercase form to buf
func (b Bytes32) AppendText(buf []byte) []byte {
	buf = append(buf, HexPrefix...)
	var dst [Bytes32Size * 2]byte
	fasthex.Encode(dst[:], b[:])
	return append(buf, dst[:]...)
}

func (b Bytes32) MarshalJSON() ([]byte, error) {
	buf := make([]byte, 0, Bytes32Size*2+len(HexPrefix)+2)
	buf = append(buf, '"')
	buf = b.AppendText(buf)
	buf = append(buf, '"')
	return buf, nil
}

// UnquoteJSON Returns the contents of a JSON string, or nil for null
func UnquoteJSON(buf []byte) (*string, error) {
	if bytes.Equal(buf, []byte("null")) {
		return nil, nil //nolint:nilnil
	}
	if len(buf) < 2 || buf[0] != '"' || buf[len(buf)-1] != '"' {
		return nil, fmt.Errorf("%w: expected a JSON string", ErrInvalidHex)
	}
	s := string(buf[1 : len(buf)-1])
	return &s, nil
}

// UnmarshalJSON Requires exactly 32 hex encoded bytes. null leaves b untouched.
func (b *Bytes32) UnmarshalJSON(buf []byte) error {
	s, err := UnquoteJSON(buf)
	if err != nil || s == nil {
		return err
	}
	return decodeHexInto(b[:], *s)
}

func (b *Bytes32) Scan(src any) error {
	if src == nil {
		return nil
	} else if buf, ok := src.([]byte); ok {
		if len(buf) == 0 {
			return nil
		}
		if len(buf) != Bytes32Size {
			return ErrWrongSize
		}
		copy((*b)[:], buf)

		return nil
	}
	return ErrInvalidType
}

func (b *Bytes32) Value() (driver.Value, error) {
	if *b == ZeroBytes32 {
		return nil, nil //nolint:nilnil
	}
	return (*b)[:], nil
}

func (h Hash64) Slice() []byte {
	return h[:]
}

func (h Hash64) String() string {
	return HexPrefix + fasthex.EncodeToString(h[:])
}
