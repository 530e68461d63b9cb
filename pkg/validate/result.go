package validate

import "time"

// Error is one failed rule for one field, immutable once constructed.
// The timestamp is taken at construction time.
type Error struct {
	Field     string
	Code      string
	Message   string
	Severity  Severity
	Timestamp time.Time
}

// newError converts a rule violation into a field-scoped Error.
func newError(field string, v *Violation) Error {
	return Error{
		Field:     field,
		Code:      v.Code,
		Message:   v.Message,
		Severity:  v.Severity,
		Timestamp: time.Now(),
	}
}

// Result aggregates the errors of one validation run. A Result is created
// fresh per Validate call and is not mutated after it is returned.
type Result struct {
	errors      []Error
	hasCritical bool
}

// NewResult assembles a result from pre-built errors. The engine builds
// results itself; this constructor exists for repository implementations
// and tests that need a result without running an engine.
func NewResult(errs ...Error) *Result {
	r := &Result{}
	r.add(errs...)
	return r
}

func (r *Result) add(errs ...Error) {
	for _, e := range errs {
		r.errors = append(r.errors, e)
		if e.Severity == SeverityCritical {
			r.hasCritical = true
		}
	}
}

// IsValid reports whether the run produced no errors.
func (r *Result) IsValid() bool {
	return len(r.errors) == 0
}

// HasCriticalError reports whether at least one error is CRITICAL.
func (r *Result) HasCriticalError() bool {
	return r.hasCritical
}

// Errors returns a copy of the collected errors in merge order.
func (r *Result) Errors() []Error {
	out := make([]Error, len(r.errors))
	copy(out, r.errors)
	return out
}

// ErrorsFor returns the errors recorded for a single field.
func (r *Result) ErrorsFor(field string) []Error {
	var out []Error
	for _, e := range r.errors {
		if e.Field == field {
			out = append(out, e)
		}
	}
	return out
}
