package crypto

import (
	"hash"

	"git.gammaspectra.live/P2Pool/algebra/crypto/curve25519"
	"git.gammaspectra.live/P2Pool/algebra/types"
	"git.gammaspectra.live/P2Pool/algebra/utils"
	"git.gammaspectra.live/P2Pool/sha3"
	"golang.org/x/crypto/blake2b"
)

func wideHash(h hash.Hash, data ...[]byte) (result types.Hash64) {
	for _, b := range data {
		_, _ = h.Write(b)
	}
	utils.SumNoEscape(h, result[:0])
	return result
}

// Blake2b512 Hashes the concatenation of data
func Blake2b512(data ...[]byte) types.Hash64 {
	h, _ := blake2b.New512(nil)
	return wideHash(h, data...)
}

// Keccak512 Legacy Keccak, as used across Monero, over the concatenation of data
func Keccak512(data ...[]byte) types.Hash64 {
	return wideHash(sha3.NewLegacyKeccak512(), data...)
}

// HashToScalar Derives a scalar from data via BLAKE2b-512 and wide reduction
func HashToScalar[E curve25519.Engine](data ...[]byte) Scalar[E] {
	return ScalarFromHash[E](Blake2b512(data...))
}

// KeccakToScalar Derives a scalar from data via Keccak-512 and wide reduction
func KeccakToScalar[E curve25519.Engine](data ...[]byte) Scalar[E] {
	return ScalarFromHash[E](Keccak512(data...))
}
