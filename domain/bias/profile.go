package bias

import (
	"github.com/montanaflynn/stats"

	"rngbias/domain/core"
)

// Profile is a diagnostic snapshot of a sequence: every raw feature value
// plus summary statistics of the single-symbol counts. It feeds the describe
// command and has no effect on scoring.
type Profile struct {
	Length       int                `json:"length"`
	Features     map[string]float64 `json:"features"`
	SymbolCounts map[string]int     `json:"symbol_counts"`
	CountSummary CountSummary       `json:"count_summary"`
}

// CountSummary describes the spread of the six symbol counts.
type CountSummary struct {
	Mean   float64 `json:"mean"`
	StdDev float64 `json:"std_dev"`
	Min    float64 `json:"min"`
	Max    float64 `json:"max"`
	Median float64 `json:"median"`
}

// Describe computes the diagnostic profile of a sequence.
func Describe(seq core.Sequence) Profile {
	values := make(map[string]float64, NumFeatures)
	for _, f := range Features() {
		values[f.Name] = f.Value(seq)
	}

	hist := Count(seq, 0, 100, 1, 1, Identity)
	counts := make(map[string]int, core.AlphabetSize)
	data := make([]float64, 0, core.AlphabetSize)
	for sym := byte('1'); sym <= byte('0'+core.AlphabetSize); sym++ {
		c := hist[string(sym)]
		counts[string(sym)] = c
		data = append(data, float64(c))
	}

	mean, _ := stats.Mean(data)
	stdDev, _ := stats.StandardDeviation(data)
	min, _ := stats.Min(data)
	max, _ := stats.Max(data)
	median, _ := stats.Median(data)

	return Profile{
		Length:       seq.Len(),
		Features:     values,
		SymbolCounts: counts,
		CountSummary: CountSummary{
			Mean:   mean,
			StdDev: stdDev,
			Min:    min,
			Max:    max,
			Median: median,
		},
	}
}
