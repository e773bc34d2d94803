package core

import (
	"errors"
	"fmt"
)

// Domain errors - centralized error definitions
var (
	// Input validation errors
	ErrInvalidSequence  = errors.New("invalid sequence")
	ErrSequenceLength   = fmt.Errorf("%w: wrong length", ErrInvalidSequence)
	ErrSequenceAlphabet = fmt.Errorf("%w: symbol outside 1-6", ErrInvalidSequence)

	// Configuration errors
	ErrInvalidConfig     = errors.New("invalid configuration")
	ErrFeatureIndex      = fmt.Errorf("%w: feature index out of range", ErrInvalidConfig)
	ErrEmptyObjectiveSet = fmt.Errorf("%w: empty objective index set", ErrInvalidConfig)
	ErrTestDimension     = fmt.Errorf("%w: test dimension out of range", ErrInvalidConfig)
	ErrBoundShape        = fmt.Errorf("%w: bound arrays do not cover constraints", ErrInvalidConfig)
	ErrBoundOrder        = fmt.Errorf("%w: bounds must satisfy 0 < lower < upper < 1", ErrInvalidConfig)
	ErrBandShape         = fmt.Errorf("%w: alpha/beta/gamma must cover all features", ErrInvalidConfig)
)

// Error constructors with context
func NewSequenceLengthError(got, want int) error {
	return fmt.Errorf("%w: got %d symbols, want %d", ErrSequenceLength, got, want)
}

func NewFeatureIndexError(index int) error {
	return fmt.Errorf("%w: %d (valid indices are 1-15)", ErrFeatureIndex, index)
}

func NewTestDimensionError(dim, max int) error {
	return fmt.Errorf("%w: %d (valid dimensions are 1-%d)", ErrTestDimension, dim, max)
}

// Error checking helpers
func IsValidationError(err error) bool {
	return errors.Is(err, ErrInvalidSequence)
}

func IsConfigError(err error) bool {
	return errors.Is(err, ErrInvalidConfig)
}
