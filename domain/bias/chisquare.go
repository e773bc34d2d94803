package bias

import (
	"math"

	"rngbias/domain/core"
)

// ChiSquare computes the goodness-of-fit statistic of a histogram against a
// uniform null distribution over 6^dim bins.
//
// With n observations the expected count per bin is m = n/6^dim. The sum of
// (v-m)^2/m over observed bins leaves out bins that never occurred; each of
// those contributes (0-m)^2/m = m, so the statistic is completed with
// m * (bins - observed). An empty histogram carries no evidence of bias and
// scores 0.
func ChiSquare(h Histogram, dim int) float64 {
	n := h.Total()
	if n == 0 {
		return 0
	}

	bins := math.Pow(core.AlphabetSize, float64(dim))
	m := float64(n) / bins

	var stat float64
	for _, v := range h {
		d := float64(v) - m
		stat += d * d / m
	}
	stat += m * (bins - float64(h.Observed()))
	return stat
}
