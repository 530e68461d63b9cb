package validate

import (
	"fmt"
	"regexp"
)

// Case-insensitive RFC-lite pattern: letters/digits/._%+- local part,
// dot-separated domain, 2-6 letter top-level label.
var emailPattern = regexp.MustCompile(`(?i)^[A-Z0-9._%+-]+@[A-Z0-9.-]+\.[A-Z]{2,6}$`)

// Email rule codes.
const (
	CodeEmailRequired = "EMAIL_001"
	CodeEmailFormat   = "EMAIL_002"
)

type emailRule struct{}

// NewEmailRule returns a rule that requires a present, well-formed email
// address. A missing value is a CRITICAL EMAIL_001 failure; a present value
// that does not match the pattern is a CRITICAL EMAIL_002 failure.
func NewEmailRule() Rule {
	return emailRule{}
}

func (emailRule) Validate(value any) error {
	if value == nil {
		return NewViolation(CodeEmailRequired, "email address is required", SeverityCritical)
	}

	email := stringify(value)
	if !emailPattern.MatchString(email) {
		return NewViolation(CodeEmailFormat, fmt.Sprintf("invalid email format: %s", email), SeverityCritical)
	}

	return nil
}
