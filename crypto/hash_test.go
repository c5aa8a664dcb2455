package crypto

import (
	"testing"

	"git.gammaspectra.live/P2Pool/algebra/crypto/curve25519"
	"github.com/stretchr/testify/assert"
)

func TestBlake2b512(t *testing.T) {
	expected := "0x786a02f742015903c6c6fd852552d272912f4740e15847618a86e217f71f5419d25e1031afee585313896444934eb04b903a685b1448b755d56f701afe9be2ce"
	assert.Equal(t, expected, Blake2b512().String())

	assert.Equal(t,
		"0xfa6302538c38e0f9c14bc7992676a38638ddaa405cbc0ea7ea7e4ba9609e7f521d7fc0e07592944d696c12b68254e5e43f876346075fc81cfa0bb3cc05e23127",
		Blake2b512([]byte("sca"), []byte("lar")).String(),
	)
}

func TestKeccak512(t *testing.T) {
	assert.Equal(t,
		"0x5b8285177165d34870f266bfc97d0c2036b0cfa8dbd883af2d1b98feffef15c70bab8b80187eb48b7b4f6cce98a91afec74b19bf58d3ed2075c79f52dc47469a",
		Keccak512([]byte("scalar")).String(),
	)
	assert.Equal(t, Keccak512([]byte("scalar")), Keccak512([]byte("sc"), []byte("alar")))
}

func TestHashToScalar(t *testing.T) {
	for _, v := range []struct {
		Name     string
		Scalar   ConstantTimeScalar
		Expected string
	}{
		{"blake2b", HashToScalar[curve25519.ConstantTimeEngine]([]byte("scalar")), "0x052525f09abecaa1b3fe32a29d986864c6da64e1413f23f0b7269898882f77da"},
		{"keccak", KeccakToScalar[curve25519.ConstantTimeEngine]([]byte("scalar")), "0x0026cd58fc4270b127fc4ab32f0f0b9646b1e00e55e82d4ee177e67307fea3ab"},
	} {
		t.Run(v.Name, func(t *testing.T) {
			assert.Equal(t, v.Expected, v.Scalar.StringMode(PrintClear))
			assert.True(t, v.Scalar.IsValid())
		})
	}

	// engines agree on the reduction
	assert.Equal(t,
		HashToScalar[curve25519.ConstantTimeEngine]([]byte("scalar")).Bytes(),
		HashToScalar[curve25519.VarTimeEngine]([]byte("scalar")).Bytes(),
	)
}

func TestScalarFromHashReduces(t *testing.T) {
	var h [64]byte
	for i := range h {
		h[i] = 0xff
	}
	s := ScalarFromHash[curve25519.VarTimeEngine](h)
	assert.Equal(t, "0x0399411b7c309a3dceec73d217f5be65d00e1ba768859347a40611e3449c0f00", s.StringMode(PrintClear))
	assert.True(t, s.IsValid())
}

func BenchmarkHashToScalar(b *testing.B) {
	data := []byte("scalar")
	for i := 0; i < b.N; i++ {
		_ = HashToScalar[curve25519.VarTimeEngine](data)
	}
}
