package bias

import (
	"math"

	"gonum.org/v1/gonum/stat/distuv"

	"rngbias/domain/core"
)

// MaxTestDimension bounds the dimensional test: 6^d window counting must fit
// signed 64-bit arithmetic.
const MaxTestDimension = 24

// DimensionalTest partitions the sequence into non-overlapping d-tuples,
// computes the chi-square statistic of the block histogram and compares it
// against the [pLower, pUpper] quantiles of the chi-square distribution with
// 6^d - 1 degrees of freedom. The result is zero when the statistic falls
// inside the acceptance interval (boundaries included): the sequence is
// neither suspiciously uniform nor suspiciously non-uniform. Outside it the
// result is the distance to the violated quantile.
//
// Callers must supply d in [1, MaxTestDimension] and 0 < pLower < pUpper < 1;
// the evaluation configuration is validated before any test runs.
func DimensionalTest(seq core.Sequence, d int, pLower, pUpper float64) float64 {
	h := Count(seq, 0, 100, d, d, Identity)

	df := math.Pow(core.AlphabetSize, float64(d)) - 1
	dist := distuv.ChiSquared{K: df}
	lb := dist.Quantile(pLower)
	ub := dist.Quantile(pUpper)

	p := ChiSquare(h, d)
	return math.Max(0, math.Max(lb-p, p-ub))
}
