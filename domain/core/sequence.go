package core

import "fmt"

// Alphabet constants for die-face sequences. Every derived bin count in the
// scoring engine (6^dim) is computed from AlphabetSize rather than a literal.
const (
	AlphabetSize = 6
	minSymbol    = '1'
	maxSymbol    = '6'
)

// Sequence is a validated, immutable run of die-face symbols. Values are only
// constructed through ParseSequence, so downstream code may assume length and
// alphabet membership hold.
type Sequence string

// String returns the raw symbol run.
func (s Sequence) String() string {
	return string(s)
}

// Len returns the number of symbols.
func (s Sequence) Len() int {
	return len(s)
}

// ParseSequence validates a raw line against the expected length and the
// {1..6} alphabet and returns it as a Sequence.
func ParseSequence(raw string, wantLen int) (Sequence, error) {
	if len(raw) != wantLen {
		return "", NewSequenceLengthError(len(raw), wantLen)
	}
	for i := 0; i < len(raw); i++ {
		if raw[i] < minSymbol || raw[i] > maxSymbol {
			return "", fmt.Errorf("%w: %q at position %d", ErrSequenceAlphabet, raw[i], i)
		}
	}
	return Sequence(raw), nil
}

// SymbolValue returns the numeric face value of the symbol at position i.
func (s Sequence) SymbolValue(i int) int {
	return int(s[i] - '0')
}
