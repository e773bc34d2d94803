package bias

import "rngbias/domain/core"

// NumFeatures is the size of the feature library. Callers address features
// with 1-based indices 1..NumFeatures.
const NumFeatures = 15

// FeatureKind selects how a histogram becomes a scalar feature value.
type FeatureKind int

const (
	// KindChiSquare scores the histogram against a uniform distribution.
	KindChiSquare FeatureKind = iota
	// KindCount looks up the count of the matching key.
	KindCount
)

// Keys for boolean pattern families.
const (
	keyMatch = "match"
	keyMiss  = "miss"
)

// Feature is one pattern detector: a scan configuration plus a value rule.
// Features are plain data records; acceptance bands live separately so no
// per-feature state is captured in closures.
type Feature struct {
	Index    int
	Name     string
	BeginPct int
	EndPct   int
	Dim      int
	Step     int
	Pattern  Pattern
	Kind     FeatureKind
}

// Value computes the scalar feature value for a sequence: the chi-square
// statistic for KindChiSquare features, the matching-window count otherwise.
func (f Feature) Value(seq core.Sequence) float64 {
	h := Count(seq, f.BeginPct, f.EndPct, f.Dim, f.Step, f.Pattern)
	if f.Kind == KindChiSquare {
		return ChiSquare(h, f.Dim)
	}
	return float64(h[keyMatch])
}

// Features returns the fifteen detectors in external 1-based order.
// Predicates compare positions within the window, never symbol identity, so
// every feature is invariant under relabeling of the six symbols (F6 aside,
// which uses face-value parity).
func Features() []Feature {
	return []Feature{
		{Index: 1, Name: "F1", BeginPct: 0, EndPct: 100, Dim: 1, Step: 1, Pattern: Identity, Kind: KindChiSquare},
		{Index: 2, Name: "F2", BeginPct: 0, EndPct: 30, Dim: 1, Step: 1, Pattern: Identity, Kind: KindChiSquare},
		{Index: 3, Name: "F3", BeginPct: 23, EndPct: 53, Dim: 1, Step: 1, Pattern: Identity, Kind: KindChiSquare},
		{Index: 4, Name: "F4", BeginPct: 47, EndPct: 77, Dim: 1, Step: 1, Pattern: Identity, Kind: KindChiSquare},
		{Index: 5, Name: "F5", BeginPct: 70, EndPct: 100, Dim: 1, Step: 1, Pattern: Identity, Kind: KindChiSquare},
		{Index: 6, Name: "F6", BeginPct: 0, EndPct: 100, Dim: 2, Step: 1, Pattern: boolPattern(oddSum), Kind: KindCount},
		{Index: 7, Name: "F7", BeginPct: 0, EndPct: 100, Dim: 2, Step: 1, Pattern: boolPattern(streak), Kind: KindCount},
		{Index: 8, Name: "F8", BeginPct: 0, EndPct: 100, Dim: 3, Step: 1, Pattern: boolPattern(streak), Kind: KindCount},
		{Index: 9, Name: "F9", BeginPct: 0, EndPct: 100, Dim: 4, Step: 1, Pattern: boolPattern(streak), Kind: KindCount},
		{Index: 10, Name: "F10", BeginPct: 0, EndPct: 100, Dim: 4, Step: 1, Pattern: boolPattern(twoPair), Kind: KindCount},
		{Index: 11, Name: "F11", BeginPct: 0, EndPct: 100, Dim: 5, Step: 1, Pattern: boolPattern(fullHouse), Kind: KindCount},
		{Index: 12, Name: "F12", BeginPct: 0, EndPct: 100, Dim: 4, Step: 1, Pattern: boolPattern(nearStreak(1)), Kind: KindCount},
		{Index: 13, Name: "F13", BeginPct: 0, EndPct: 100, Dim: 5, Step: 1, Pattern: boolPattern(nearStreak(1)), Kind: KindCount},
		{Index: 14, Name: "F14", BeginPct: 0, EndPct: 100, Dim: 6, Step: 1, Pattern: boolPattern(nearStreak(2)), Kind: KindCount},
		{Index: 15, Name: "F15", BeginPct: 0, EndPct: 100, Dim: 7, Step: 1, Pattern: boolPattern(nearStreak(2)), Kind: KindCount},
	}
}

// boolPattern lifts a window predicate into a two-key pattern.
func boolPattern(match func(w string) bool) Pattern {
	return func(w string) string {
		if match(w) {
			return keyMatch
		}
		return keyMiss
	}
}

// oddSum reports whether the two face values sum to an odd number.
func oddSum(w string) bool {
	return (int(w[0]-'0')+int(w[1]-'0'))%2 == 1
}

// streak reports whether every symbol in the window equals the first.
func streak(w string) bool {
	for i := 1; i < len(w); i++ {
		if w[i] != w[0] {
			return false
		}
	}
	return true
}

// twoPair matches the XXYY, XYXY and XYYX arrangements with X != Y.
func twoPair(w string) bool {
	return (w[0] == w[1] && w[2] == w[3] && w[0] != w[2]) || // XXYY
		(w[0] == w[2] && w[1] == w[3] && w[0] != w[1]) || // XYXY
		(w[0] == w[3] && w[1] == w[2] && w[0] != w[1]) // XYYX
}

// fullHouse matches windows where one symbol appears twice and a second,
// different symbol three times. The pair can sit in any of the 10 positional
// arrangements (XXYYY .. YYYXX).
func fullHouse(w string) bool {
	var first, second byte
	var firstN, secondN int
	for i := 0; i < len(w); i++ {
		switch {
		case firstN == 0 || w[i] == first:
			first = w[i]
			firstN++
		case secondN == 0 || w[i] == second:
			second = w[i]
			secondN++
		default:
			return false // third distinct symbol
		}
	}
	return (firstN == 2 && secondN == 3) || (firstN == 3 && secondN == 2)
}

// nearStreak builds the "k extra in the interior" family: the first and last
// symbols are equal (X) and exactly k of the interior positions also equal X,
// over every placement. k=1 on width 4/5 gives the 3-in-4 and 3-in-5 shapes
// (XXYX, XYXX, XXYZX, ...); k=2 on width 6/7 gives 4-in-6 and 4-in-7.
func nearStreak(interiorMatches int) func(w string) bool {
	return func(w string) bool {
		last := len(w) - 1
		if w[0] != w[last] {
			return false
		}
		n := 0
		for i := 1; i < last; i++ {
			if w[i] == w[0] {
				n++
			}
		}
		return n == interiorMatches
	}
}
