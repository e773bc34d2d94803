package ports

import "context"

// SequenceGenerator produces symbol sequences. It is a boundary collaborator
// of the scoring core: generated sequences cross the same validation boundary
// as sequences read from a file.
type SequenceGenerator interface {
	// Generate returns a sequence of exactly length symbols over {1..6}.
	Generate(ctx context.Context, length int) (string, error)
}
