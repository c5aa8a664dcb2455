package crypto

import (
	"git.gammaspectra.live/P2Pool/algebra/crypto/curve25519"
	"git.gammaspectra.live/P2Pool/algebra/types"
	"git.gammaspectra.live/P2Pool/algebra/utils"
)

// PublicKeyCache Memoizes Scalar.ToPoint and Point.IsValid, the two expensive operations.
// Safe for concurrent use.
type PublicKeyCache[E curve25519.Engine] struct {
	derivationCache utils.Cache[types.Bytes32, types.Bytes32]
	validityCache   utils.Cache[types.Bytes32, bool]
}

func NewPublicKeyLRUCache[E curve25519.Engine](size int) *PublicKeyCache[E] {
	return &PublicKeyCache[E]{
		derivationCache: utils.NewLRUCache[types.Bytes32, types.Bytes32](size),
		validityCache:   utils.NewLRUCache[types.Bytes32, bool](size),
	}
}

func NewPublicKeyMapCache[E curve25519.Engine](size int) *PublicKeyCache[E] {
	return &PublicKeyCache[E]{
		derivationCache: utils.NewMapCache[types.Bytes32, types.Bytes32](size),
		validityCache:   utils.NewMapCache[types.Bytes32, bool](size),
	}
}

func NewPublicKeyNilCache[E curve25519.Engine]() *PublicKeyCache[E] {
	return &PublicKeyCache[E]{
		derivationCache: utils.NewNilCache[types.Bytes32, types.Bytes32](),
		validityCache:   utils.NewNilCache[types.Bytes32, bool](),
	}
}

func (c *PublicKeyCache[E]) ToPoint(s Scalar[E]) Point[E] {
	if p, ok := c.derivationCache.Get(s.k); ok {
		return Point[E]{p: p}
	}
	p := s.ToPoint()
	c.derivationCache.Set(s.k, p.p)
	// ToPoint already verified it
	c.validityCache.Set(p.p, true)
	return p
}

func (c *PublicKeyCache[E]) IsValid(p Point[E]) bool {
	if ok, found := c.validityCache.Get(p.p); found {
		return ok
	}
	ok := p.IsValid()
	c.validityCache.Set(p.p, ok)
	return ok
}

func (c *PublicKeyCache[E]) PairFromScalar(s Scalar[E]) Pair[E] {
	return Pair[E]{
		secret: s,
		public: c.ToPoint(s),
	}
}

func (c *PublicKeyCache[E]) Clear() {
	c.derivationCache.Clear()
	c.validityCache.Clear()
}

// Stats Hits and misses summed over both caches
func (c *PublicKeyCache[E]) Stats() (hits, misses uint64) {
	h1, m1 := c.derivationCache.Stats()
	h2, m2 := c.validityCache.Stats()
	return h1 + h2, m1 + m2
}
