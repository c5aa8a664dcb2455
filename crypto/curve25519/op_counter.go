package curve25519

import (
	"io"
	"sync/atomic"

	"git.gammaspectra.live/P2Pool/algebra/types"
)

// VarTimeCounterEngine Is like VarTimeEngine, but increases a global counter for tests
//
// Unsafe to use with private data or scalars
type VarTimeCounterEngine struct{}

var counterOp VarTimeEngine

var (
	counterAddSub     atomic.Uint64
	counterScalarMult atomic.Uint64
	counterValidity   atomic.Uint64
	counterScalarOp   atomic.Uint64
	counterInvert     atomic.Uint64
	counterRandom     atomic.Uint64
)

func VarTimeCounterEngineReset() {
	counterAddSub.Store(0)
	counterScalarMult.Store(0)
	counterValidity.Store(0)
	counterScalarOp.Store(0)
	counterInvert.Store(0)
	counterRandom.Store(0)
}

// VarTimeCounterEngineCounts Current counter values, keyed by metric name
func VarTimeCounterEngineCounts() map[string]uint64 {
	return map[string]uint64{
		"AddSub":     counterAddSub.Load(),
		"ScalarMult": counterScalarMult.Load(),
		"Validity":   counterValidity.Load(),
		"ScalarOp":   counterScalarOp.Load(),
		"Invert":     counterInvert.Load(),
		"Random":     counterRandom.Load(),
	}
}

// VarTimeCounterEngineReport Reports per-op averages over N iterations, suitable for testing.B.ReportMetric
func VarTimeCounterEngineReport(N int, f func(v float64, metric string)) {
	report := func(v uint64, metric string) {
		if v == 0 {
			return
		}
		if v%uint64(N) == 0 {
			f(float64(v/uint64(N)), metric+"/op")
			return
		}
		f(float64(v)/float64(N), metric+"/op")
	}

	report(counterAddSub.Load(), "AddSub")
	report(counterScalarMult.Load(), "ScalarMult")
	report(counterValidity.Load(), "Validity")
	report(counterScalarOp.Load(), "ScalarOp")
	report(counterInvert.Load(), "Invert")
	report(counterRandom.Load(), "Random")
}

func (e VarTimeCounterEngine) PointAdd(p, q types.Bytes32) (types.Bytes32, error) {
	counterAddSub.Add(1)
	return counterOp.PointAdd(p, q)
}

func (e VarTimeCounterEngine) PointSubtract(p, q types.Bytes32) (types.Bytes32, error) {
	counterAddSub.Add(1)
	return counterOp.PointSubtract(p, q)
}

func (e VarTimeCounterEngine) ScalarBaseMult(x types.Bytes32) (types.Bytes32, error) {
	counterScalarMult.Add(1)
	return counterOp.ScalarBaseMult(x)
}

func (e VarTimeCounterEngine) ScalarMult(x, q types.Bytes32) (types.Bytes32, error) {
	counterScalarMult.Add(1)
	return counterOp.ScalarMult(x, q)
}

func (e VarTimeCounterEngine) IsValidPoint(p types.Bytes32) bool {
	counterValidity.Add(1)
	return counterOp.IsValidPoint(p)
}

func (e VarTimeCounterEngine) ScalarAdd(a, b types.Bytes32) types.Bytes32 {
	counterScalarOp.Add(1)
	return counterOp.ScalarAdd(a, b)
}

func (e VarTimeCounterEngine) ScalarSubtract(a, b types.Bytes32) types.Bytes32 {
	counterScalarOp.Add(1)
	return counterOp.ScalarSubtract(a, b)
}

func (e VarTimeCounterEngine) ScalarMultiply(a, b types.Bytes32) types.Bytes32 {
	counterScalarOp.Add(1)
	return counterOp.ScalarMultiply(a, b)
}

func (e VarTimeCounterEngine) ScalarNegate(a types.Bytes32) types.Bytes32 {
	counterScalarOp.Add(1)
	return counterOp.ScalarNegate(a)
}

func (e VarTimeCounterEngine) ScalarComplement(a types.Bytes32) types.Bytes32 {
	counterScalarOp.Add(1)
	return counterOp.ScalarComplement(a)
}

func (e VarTimeCounterEngine) ScalarInvert(a types.Bytes32) (types.Bytes32, error) {
	counterInvert.Add(1)
	return counterOp.ScalarInvert(a)
}

func (e VarTimeCounterEngine) ScalarReduce64(h types.Hash64) types.Bytes32 {
	counterScalarOp.Add(1)
	return counterOp.ScalarReduce64(h)
}

func (e VarTimeCounterEngine) ScalarRandom(r io.Reader) (types.Bytes32, error) {
	counterRandom.Add(1)
	return counterOp.ScalarRandom(r)
}

var _ Engine = VarTimeCounterEngine{}

//nolint:gochecknoinits
func init() {
	assertSize[VarTimeCounterEngine]()
}
