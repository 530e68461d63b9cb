package validate

import "fmt"

// Range rule codes.
const (
	CodeRangeNotNumeric = "RANGE_001"
	CodeRangeOutOfRange = "RANGE_002"
)

type rangeRule struct {
	min float64
	max float64
}

// NewRangeRule returns a rule that checks a numeric value against the
// inclusive interval [min, max]. A missing value passes without a check.
// A present non-numeric value is a CRITICAL RANGE_001 failure; a numeric
// value strictly outside the interval is a WARNING RANGE_002 failure.
func NewRangeRule(min, max float64) Rule {
	return rangeRule{min: min, max: max}
}

func (r rangeRule) Validate(value any) error {
	if value == nil {
		return nil
	}

	num, ok := toFloat64(value)
	if !ok {
		return NewViolation(CodeRangeNotNumeric, "numeric value required", SeverityCritical)
	}

	if num < r.min || num > r.max {
		msg := fmt.Sprintf("value out of range (%v - %v)", r.min, r.max)
		return NewViolation(CodeRangeOutOfRange, msg, SeverityWarning)
	}

	return nil
}

// toFloat64 widens any built-in numeric type to float64. Records decoded
// from JSON carry float64 already; the remaining cases cover values built
// in-process.
func toFloat64(value any) (float64, bool) {
	switch v := value.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int8:
		return float64(v), true
	case int16:
		return float64(v), true
	case int32:
		return float64(v), true
	case int64:
		return float64(v), true
	case uint:
		return float64(v), true
	case uint8:
		return float64(v), true
	case uint16:
		return float64(v), true
	case uint32:
		return float64(v), true
	case uint64:
		return float64(v), true
	default:
		return 0, false
	}
}
