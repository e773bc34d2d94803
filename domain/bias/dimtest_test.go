package bias

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"gonum.org/v1/gonum/stat/distuv"

	"rngbias/domain/core"
)

func TestDimensionalTestInsideAcceptanceInterval(t *testing.T) {
	// Counts 3,2,1,1,1,1 give a chi-square of ~2.33, well inside the
	// [10%, 90%] quantiles of chi-square with 5 degrees of freedom
	// (~1.61 and ~9.24).
	seq := core.Sequence("111223456")
	assert.Zero(t, DimensionalTest(seq, 1, 0.1, 0.9))
}

func TestDimensionalTestSuspiciouslyUniform(t *testing.T) {
	// A perfectly balanced sequence scores chi-square 0, below the lower
	// quantile: the shortfall is lb - 0.
	seq := core.Sequence(strings.Repeat("123456", 8))

	lb := distuv.ChiSquared{K: 5}.Quantile(0.1)
	got := DimensionalTest(seq, 1, 0.1, 0.9)
	assert.InDelta(t, lb, got, 1e-9)
}

func TestDimensionalTestSuspiciouslyBiased(t *testing.T) {
	// Twelve identical symbols: chi-square 60, far above the upper
	// quantile; the result is the excess.
	seq := core.Sequence("111111111111")

	ub := distuv.ChiSquared{K: 5}.Quantile(0.9)
	got := DimensionalTest(seq, 1, 0.1, 0.9)
	assert.InDelta(t, 60-ub, got, 1e-9)
}

func TestDimensionalTestNonOverlappingBlocks(t *testing.T) {
	// Width d, step d: a sequence of length 7 with d=2 scans 3 blocks and
	// drops the trailing remainder.
	h := Count(core.Sequence("1122334"), 0, 100, 2, 2, Identity)
	assert.Equal(t, 3, h.Total())
	assert.Equal(t, Histogram{"11": 1, "22": 1, "33": 1}, h)
}

func TestDimensionalTestHigherDimension(t *testing.T) {
	// d=2 over 36 balanced pairs still yields a non-negative result.
	seq := core.Sequence(strings.Repeat("123456", 12))
	got := DimensionalTest(seq, 2, 0.1, 0.9)
	assert.GreaterOrEqual(t, got, 0.0)
}

func TestDimensionalTestSequenceShorterThanBlock(t *testing.T) {
	// No block fits: zero evidence, and chi-square 0 sits below the lower
	// quantile, so the test reports the full shortfall rather than failing.
	seq := core.Sequence("12")
	lb := distuv.ChiSquared{K: 215}.Quantile(0.1)
	assert.InDelta(t, lb, DimensionalTest(seq, 3, 0.1, 0.9), 1e-9)
}
