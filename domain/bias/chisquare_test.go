package bias

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestChiSquareUniformHistogramIsZero(t *testing.T) {
	h := Histogram{"1": 2, "2": 2, "3": 2, "4": 2, "5": 2, "6": 2}
	assert.Zero(t, ChiSquare(h, 1))
}

func TestChiSquareEmptyHistogramIsZero(t *testing.T) {
	assert.Zero(t, ChiSquare(Histogram{}, 1))
	assert.Zero(t, ChiSquare(Histogram{}, 3))
}

func TestChiSquareZeroBinCorrection(t *testing.T) {
	// Six observations all in one of six bins: m = 1, the observed bin
	// contributes (6-1)^2 = 25 and the five unobserved bins contribute
	// m each.
	h := Histogram{"1": 6}
	assert.InDelta(t, 30.0, ChiSquare(h, 1), 1e-12)
}

func TestChiSquareNonNegative(t *testing.T) {
	hists := []Histogram{
		{"1": 1},
		{"1": 3, "2": 1},
		{"12": 5, "34": 2, "56": 9},
		{"1": 100, "2": 1, "3": 1, "4": 1, "5": 1, "6": 1},
	}
	for _, h := range hists {
		assert.GreaterOrEqual(t, ChiSquare(h, 1), 0.0)
		assert.GreaterOrEqual(t, ChiSquare(h, 2), 0.0)
	}
}

func TestChiSquareSkewedDistribution(t *testing.T) {
	// n=9 over dim 1: counts 3,2,1,1,1,1 against m=1.5.
	h := Histogram{"1": 3, "2": 2, "3": 1, "4": 1, "5": 1, "6": 1}
	want := (1.5*1.5 + 0.5*0.5 + 4*0.25) / 1.5
	assert.InDelta(t, want, ChiSquare(h, 1), 1e-12)
}
