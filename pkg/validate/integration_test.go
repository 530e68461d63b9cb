package validate_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/validkit/validkit/pkg/validate"
)

// TestUserRecordScenario validates the canonical user record end to end:
// the email passes, the password is too short, and the age exceeds its
// range. With sequential processing the critical sits in the last field, so
// stop-on-critical never kicks in and both errors are reported.
func TestUserRecordScenario(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	registry := validate.NewRegistry().Register("user", validate.NewRuleSet().
		AddRule("email", validate.NewEmailRule()).
		AddRule("password", validate.NewComplexityRule(8, true)).
		AddRule("age", validate.NewRangeRule(0, 120)))

	repo := validate.NewMemoryErrorRepository()
	engine, err := validate.NewEngine(registry,
		validate.WithConfig(validate.Config{
			Parallelism:    1,
			StopOnCritical: true,
			PersistErrors:  true,
		}),
		validate.WithErrorRepository(repo))
	require.NoError(t, err)

	result, err := engine.Validate(ctx, "user", map[string]any{
		"email":    "test@example.com",
		"password": "weak",
		"age":      150,
	})
	require.NoError(t, err)

	assert.False(t, result.IsValid())
	assert.True(t, result.HasCriticalError())

	errs := result.Errors()
	require.Len(t, errs, 2)

	// Merge order is sorted by field: age before password.
	assert.Equal(t, "age", errs[0].Field)
	assert.Equal(t, validate.CodeRangeOutOfRange, errs[0].Code)
	assert.Equal(t, validate.SeverityWarning, errs[0].Severity)

	assert.Equal(t, "password", errs[1].Field)
	assert.Equal(t, validate.CodePasswordTooShort, errs[1].Code)
	assert.Equal(t, validate.SeverityCritical, errs[1].Severity)

	assert.Empty(t, result.ErrorsFor("email"))

	// The same errors landed in the repository.
	stored := repo.ErrorsFor("user")
	require.Len(t, stored, 2)
	assert.Equal(t, validate.CodeRangeOutOfRange, stored[0].Code)
	assert.Equal(t, validate.CodePasswordTooShort, stored[1].Code)
}
