package validate

import (
	"fmt"
	"strings"
)

// Password complexity rule codes.
const (
	CodePasswordRequired  = "PWD_001"
	CodePasswordTooShort  = "PWD_002"
	CodePasswordNoSpecial = "PWD_003"
)

const specialChars = "!@#$%^&*()"

type complexityRule struct {
	minLength          int
	requireSpecialChar bool
}

// NewComplexityRule returns a password complexity rule. A missing value is
// a CRITICAL PWD_001 failure; a value shorter than minLength is a CRITICAL
// PWD_002 failure; when requireSpecialChar is set, a value without any of
// !@#$%^&*() is a WARNING PWD_003 failure.
func NewComplexityRule(minLength int, requireSpecialChar bool) Rule {
	return complexityRule{minLength: minLength, requireSpecialChar: requireSpecialChar}
}

func (r complexityRule) Validate(value any) error {
	if value == nil {
		return NewViolation(CodePasswordRequired, "password is required", SeverityCritical)
	}

	password := stringify(value)
	if len(password) < r.minLength {
		msg := fmt.Sprintf("password must be at least %d characters", r.minLength)
		return NewViolation(CodePasswordTooShort, msg, SeverityCritical)
	}

	if r.requireSpecialChar && !strings.ContainsAny(password, specialChars) {
		return NewViolation(CodePasswordNoSpecial, "password must contain a special character", SeverityWarning)
	}

	return nil
}
