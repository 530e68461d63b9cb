package validate

import "fmt"

// Rule is a single stateless check over one field value. Implementations
// must be safe for concurrent and repeated use, must not mutate the value,
// and report failures by returning a *Violation. Any other non-nil error is
// treated by the engine as a CRITICAL RULE_001 violation so that a
// misbehaving custom rule can never abort a validation run.
type Rule interface {
	Validate(value any) error
}

// RuleFunc adapts an ordinary function to the Rule interface.
type RuleFunc func(value any) error

func (f RuleFunc) Validate(value any) error {
	return f(value)
}

// Violation is the typed failure a Rule reports. Codes form a stable
// taxonomy so callers can distinguish "wrong shape" from "wrong content"
// without parsing messages.
type Violation struct {
	Code     string
	Message  string
	Severity Severity
}

func (v *Violation) Error() string {
	return fmt.Sprintf("[%s] %s: %s", v.Severity, v.Code, v.Message)
}

// NewViolation constructs a Violation with the given taxonomy code,
// human-readable message, and severity.
func NewViolation(code, message string, severity Severity) *Violation {
	return &Violation{Code: code, Message: message, Severity: severity}
}

// stringify mirrors the record contract: email and complexity rules accept
// any present value and match against its string form.
func stringify(value any) string {
	if s, ok := value.(string); ok {
		return s
	}
	return fmt.Sprint(value)
}
