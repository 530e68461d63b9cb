package validate_test

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/validkit/validkit/pkg/validate"
)

func TestResult(t *testing.T) {
	t.Parallel()

	t.Run("empty result is valid", func(t *testing.T) {
		result := validate.NewResult()
		assert.True(t, result.IsValid())
		assert.False(t, result.HasCriticalError())
		assert.Empty(t, result.Errors())
	})

	t.Run("any error invalidates the result", func(t *testing.T) {
		result := validate.NewResult(validate.Error{
			Field:    "age",
			Code:     validate.CodeRangeOutOfRange,
			Severity: validate.SeverityWarning,
		})
		assert.False(t, result.IsValid())
		assert.False(t, result.HasCriticalError())
	})

	t.Run("has critical error iff a critical error is present", func(t *testing.T) {
		rng := rand.New(rand.NewSource(time.Now().UnixNano()))
		severities := []validate.Severity{
			validate.SeverityInfo,
			validate.SeverityWarning,
			validate.SeverityCritical,
		}

		for iter := 0; iter < 100; iter++ {
			n := rng.Intn(8)
			errs := make([]validate.Error, 0, n)
			wantCritical := false
			for j := 0; j < n; j++ {
				sev := severities[rng.Intn(len(severities))]
				if sev == validate.SeverityCritical {
					wantCritical = true
				}
				errs = append(errs, validate.Error{Field: "f", Code: "T_001", Severity: sev})
			}

			result := validate.NewResult(errs...)
			assert.Equal(t, wantCritical, result.HasCriticalError())
			assert.Equal(t, n == 0, result.IsValid())
		}
	})

	t.Run("errors returns an independent copy", func(t *testing.T) {
		result := validate.NewResult(validate.Error{Field: "a", Code: "T_001"})

		errs := result.Errors()
		errs[0].Field = "mutated"
		assert.Equal(t, "a", result.Errors()[0].Field)
	})

	t.Run("errors for filters by field", func(t *testing.T) {
		result := validate.NewResult(
			validate.Error{Field: "a", Code: "T_001"},
			validate.Error{Field: "b", Code: "T_002"},
			validate.Error{Field: "a", Code: "T_003"},
		)

		errs := result.ErrorsFor("a")
		assert.Len(t, errs, 2)
		assert.Equal(t, "T_001", errs[0].Code)
		assert.Equal(t, "T_003", errs[1].Code)
		assert.Empty(t, result.ErrorsFor("c"))
	})
}

func TestSeverityString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "INFO", validate.SeverityInfo.String())
	assert.Equal(t, "WARNING", validate.SeverityWarning.String())
	assert.Equal(t, "CRITICAL", validate.SeverityCritical.String())
	assert.Equal(t, "UNKNOWN", validate.Severity(42).String())
}
