package types

import (
	"errors"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testHex = "0x5866666666666666666666666666666666666666666666666666666666666666"

func TestBytes32FromString(t *testing.T) {
	for _, e := range []struct {
		Name  string
		Input string
		Err   error
	}{
		{"Prefixed", testHex, nil},
		{"Bare", testHex[2:], nil},
		{"UpperPrefix", "0X" + testHex[2:], nil},
		{"Short", testHex[:40], ErrWrongSize},
		{"Long", testHex + "00", ErrWrongSize},
		{"NotHex", "0x" + "zz" + testHex[4:], ErrInvalidHex},
		{"Empty", "", ErrWrongSize},
	} {
		t.Run(e.Name, func(t *testing.T) {
			b, err := Bytes32FromString[Bytes32](e.Input)
			if e.Err != nil {
				require.Error(t, err)
				assert.True(t, errors.Is(err, e.Err), "got %v", err)
				assert.Equal(t, ZeroBytes32, b)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, testHex, b.String())
		})
	}
}

func TestBytes32CaseInsensitive(t *testing.T) {
	lower := MustBytes32FromString[Bytes32]("0xabcdef0000000000000000000000000000000000000000000000000000000001")
	upper := MustBytes32FromString[Bytes32]("0xABCDEF0000000000000000000000000000000000000000000000000000000001")
	assert.Equal(t, lower, upper)
	assert.Equal(t, "ABCDEF0000000000000000000000000000000000000000000000000000000001", lower.HexUpper())
	assert.Equal(t, "abcdef0000000000000000000000000000000000000000000000000000000001", lower.Hex())
}

func TestBytes32FromSlice(t *testing.T) {
	buf := make([]byte, 34)
	for i := range buf {
		buf[i] = byte(i + 1)
	}

	b, err := Bytes32FromSlice(buf)
	require.NoError(t, err)
	assert.Equal(t, buf[:Bytes32Size], b.Slice())

	_, err = Bytes32FromSlice(buf[:31])
	assert.ErrorIs(t, err, ErrWrongSize)
}

func TestBytes32Compare(t *testing.T) {
	a := MustBytes32FromString[Bytes32]("0x4440000000000000000000000000000000000000000000000000000000008c81")
	b := MustBytes32FromString[Bytes32]("0x37e8000000000000000000000000000000000000000000000000000000c51c50")

	assert.Equal(t, 1, a.Compare(b))
	assert.Equal(t, -1, b.Compare(a))
	assert.Equal(t, 0, a.Compare(a))

	s := []Bytes32{a, b}
	slices.SortFunc(s, Bytes32.Compare)
	assert.Equal(t, []Bytes32{b, a}, s)
}

func TestBytes32JSON(t *testing.T) {
	b := MustBytes32FromString[Bytes32](testHex)

	buf, err := b.MarshalJSON()
	require.NoError(t, err)
	assert.Equal(t, `"`+testHex+`"`, string(buf))

	var out Bytes32
	require.NoError(t, out.UnmarshalJSON(buf))
	assert.Equal(t, b, out)

	assert.Error(t, out.UnmarshalJSON([]byte(`"0x00"`)))
	assert.Error(t, out.UnmarshalJSON([]byte(`12`)))
	assert.ErrorIs(t, out.UnmarshalJSON([]byte(`""`)), ErrWrongSize)
	assert.Equal(t, b, out)

	// null is a no-op
	require.NoError(t, out.UnmarshalJSON([]byte(`null`)))
	assert.Equal(t, b, out)
}

func TestBytes32Scan(t *testing.T) {
	b := MustBytes32FromString[Bytes32](testHex)

	v, err := b.Value()
	require.NoError(t, err)

	var out Bytes32
	require.NoError(t, out.Scan(v))
	assert.Equal(t, b, out)

	assert.ErrorIs(t, out.Scan([]byte{1, 2, 3}), ErrWrongSize)
	assert.ErrorIs(t, out.Scan("text"), ErrInvalidType)

	v, err = ZeroBytes32.Value()
	require.NoError(t, err)
	assert.Nil(t, v)
}

func TestHash64FromString(t *testing.T) {
	h, err := Hash64FromString("0x" + testHex[2:] + testHex[2:])
	require.NoError(t, err)
	assert.Equal(t, byte(0x58), h[0])
	assert.Equal(t, byte(0x58), h[32])

	_, err = Hash64FromString(testHex)
	assert.ErrorIs(t, err, ErrWrongSize)
}
