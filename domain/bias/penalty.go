package bias

import "math"

// Band is the acceptance interval [Alpha, Beta] and penalty weight Gamma for
// one feature.
type Band struct {
	Alpha float64
	Beta  float64
	Gamma float64
}

// Penalty is zero when value lies in [Alpha, Beta] and grows linearly with
// the distance to the nearer bound outside it, scaled by Gamma. Gamma == 0
// disables the feature.
func (b Band) Penalty(value float64) float64 {
	return b.Gamma * math.Max(0, math.Max(b.Alpha-value, value-b.Beta))
}
