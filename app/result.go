package app

// Result is the output document: exactly one of Error being non-null and the
// other two fields being populated holds at a time. Objective and Constraint
// collapse independently: no entries marshal as null, a single entry as the
// scalar itself, two or more as the full ordered array.
type Result struct {
	Objective  interface{} `json:"objective"`
	Constraint interface{} `json:"constraint"`
	Error      interface{} `json:"error"`
}

// NewResult assembles a successful result from raw vectors.
func NewResult(objectives, constraints []float64) Result {
	return Result{
		Objective:  Collapse(objectives),
		Constraint: Collapse(constraints),
		Error:      nil,
	}
}

// ErrorResult assembles a failure result with both value fields null.
func ErrorResult(err error) Result {
	return Result{
		Objective:  nil,
		Constraint: nil,
		Error:      err.Error(),
	}
}

// Collapse applies the boundary convention: nil for zero elements, the bare
// scalar for one, the ordered slice otherwise.
func Collapse(values []float64) interface{} {
	switch len(values) {
	case 0:
		return nil
	case 1:
		return values[0]
	default:
		return values
	}
}
