package utils

import (
	"hash"

	_ "unsafe"
)

// This allows defeat of the escape analysis to prevent heap allocations.
// It is the caller responsibility to ensure this is safe

func _sum(hasher hash.Hash, buf []byte) []byte {
	return hasher.Sum(buf)
}

// SumNoEscape Like hasher.Sum, without buf escaping to the heap
//
//go:noescape
//go:linkname SumNoEscape git.gammaspectra.live/P2Pool/algebra/utils._sum
func SumNoEscape(hasher hash.Hash, buf []byte) []byte
