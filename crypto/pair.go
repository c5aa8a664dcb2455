package crypto

import (
	"fmt"

	"git.gammaspectra.live/P2Pool/algebra/crypto/curve25519"
	"git.gammaspectra.live/P2Pool/algebra/utils"
)

// Pair A secret Scalar and its public Point, V = v * G.
// A Pair is a snapshot; its halves cannot be changed independently.
type Pair[E curve25519.Engine] struct {
	secret Scalar[E]
	public Point[E]
}

type ConstantTimePair = Pair[curve25519.ConstantTimeEngine]

func PairFromScalar[E curve25519.Engine](v Scalar[E]) Pair[E] {
	return Pair[E]{
		secret: v,
		public: v.ToPoint(),
	}
}

func RandomPair[E curve25519.Engine]() Pair[E] {
	return PairFromScalar(RandomScalar[E]())
}

// GeneratePairs Produces n random pairs split across routines goroutines, see utils.SplitWork
func GeneratePairs[E curve25519.Engine](n uint64, routines int) ([]Pair[E], error) {
	pairs := make([]Pair[E], n)
	err := utils.SplitWork(routines, n, func(workIndex uint64, _ int) error {
		pairs[workIndex] = RandomPair[E]()
		return nil
	}, func(routines, routineIndex int) error {
		utils.Debugf("Pair", "generating %d pairs, routine %d/%d", n, routineIndex+1, routines)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return pairs, nil
}

func (p Pair[E]) Secret() Scalar[E] {
	return p.secret
}

func (p Pair[E]) Public() Point[E] {
	return p.public
}

// Valid Both halves are valid and the public point matches the secret
func (p Pair[E]) Valid() bool {
	if !p.secret.IsValid() || !p.public.IsValid() {
		return false
	}
	return p.secret.ToPoint() == p.public
}

func (p Pair[E]) String() string {
	return fmt.Sprintf("Pair{secret: %s, public: %s}", p.secret, p.public)
}

// StringMode Applies mode to the secret half
func (p Pair[E]) StringMode(mode PrintMode) string {
	return fmt.Sprintf("Pair{secret: %s, public: %s}", p.secret.StringMode(mode), p.public.StringMode(mode))
}

type pairJSON[E curve25519.Engine] struct {
	Secret Scalar[E] `json:"secret"`
	Public Point[E]  `json:"public"`
}

// MarshalJSON The secret is obfuscated, see Scalar.MarshalJSON
func (p Pair[E]) MarshalJSON() ([]byte, error) {
	return utils.MarshalJSON(pairJSON[E]{Secret: p.secret, Public: p.public})
}
