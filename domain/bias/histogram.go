package bias

import "rngbias/domain/core"

// Pattern maps a window to a discrete key. Each pattern family keeps a closed
// key domain so unobserved bins stay enumerable for the chi-square zero-bin
// correction.
type Pattern func(window string) string

// Identity keys each window by its own symbols. This is the pattern used by
// the dimensional randomness test, where the key domain is all 6^dim windows.
func Identity(window string) string {
	return window
}

// Histogram counts windows per observed pattern key. The sum of all counts
// equals the number of windows scanned.
type Histogram map[string]int

// Total returns the number of windows scanned.
func (h Histogram) Total() int {
	n := 0
	for _, v := range h {
		n += v
	}
	return n
}

// Observed returns the number of distinct keys seen.
func (h Histogram) Observed() int {
	return len(h)
}

// Count slides a dim-wide window across the [beginPct, endPct] sub-range of
// the sequence and tallies the pattern key of each window.
//
// The sub-range bounds are integer (floor) percentages of the sequence
// length. Windows start at beginIdx and advance by step while the window
// still fits, offset+dim <= endIdx. A sub-range shorter than dim yields an
// empty histogram, not an error.
func Count(seq core.Sequence, beginPct, endPct, dim, step int, pattern Pattern) Histogram {
	s := string(seq)
	begin := len(s) * beginPct / 100
	end := len(s) * endPct / 100

	h := make(Histogram)
	for i := begin; i+dim <= end; i += step {
		h[pattern(s[i:i+dim])]++
	}
	return h
}
