package core

import "github.com/google/uuid"

// EvaluationID identifies one evaluation run in logs and request traces.
type EvaluationID string

// NewEvaluationID creates a time-ordered identifier using UUID v7, falling
// back to v4 when v7 is unavailable.
func NewEvaluationID() EvaluationID {
	id, err := uuid.NewV7()
	if err != nil {
		id = uuid.New()
	}
	return EvaluationID(id.String())
}

// String returns the string representation.
func (id EvaluationID) String() string {
	return string(id)
}

// IsEmpty checks if the ID is empty.
func (id EvaluationID) IsEmpty() bool {
	return id == ""
}
