package validate_test

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/validkit/validkit/pkg/validate"
)

func TestMemoryErrorRepository(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("appends errors per data type", func(t *testing.T) {
		repo := validate.NewMemoryErrorRepository()

		require.NoError(t, repo.SaveErrors(ctx, "user", validate.NewResult(
			validate.Error{Field: "email", Code: validate.CodeEmailRequired, Severity: validate.SeverityCritical},
		)))
		require.NoError(t, repo.SaveErrors(ctx, "user", validate.NewResult(
			validate.Error{Field: "age", Code: validate.CodeRangeOutOfRange, Severity: validate.SeverityWarning},
		)))
		require.NoError(t, repo.SaveErrors(ctx, "order", validate.NewResult(
			validate.Error{Field: "total", Code: validate.CodeRangeNotNumeric, Severity: validate.SeverityCritical},
		)))

		assert.Len(t, repo.ErrorsFor("user"), 2)
		assert.Len(t, repo.ErrorsFor("order"), 1)
		assert.Empty(t, repo.ErrorsFor("unknown"))
	})

	t.Run("nil result is rejected", func(t *testing.T) {
		repo := validate.NewMemoryErrorRepository()
		assert.ErrorIs(t, repo.SaveErrors(ctx, "user", nil), validate.ErrNilResult)
	})

	t.Run("canceled context is honored", func(t *testing.T) {
		repo := validate.NewMemoryErrorRepository()

		canceled, cancel := context.WithCancel(ctx)
		cancel()

		err := repo.SaveErrors(canceled, "user", validate.NewResult())
		assert.ErrorIs(t, err, context.Canceled)
		assert.Empty(t, repo.ErrorsFor("user"))
	})

	t.Run("concurrent writers lose nothing", func(t *testing.T) {
		const (
			writers       = 50
			errsPerWriter = 20
		)

		repo := validate.NewMemoryErrorRepository()

		var wg sync.WaitGroup
		for w := 0; w < writers; w++ {
			w := w
			wg.Add(1)
			go func() {
				defer wg.Done()

				errs := make([]validate.Error, 0, errsPerWriter)
				for k := 0; k < errsPerWriter; k++ {
					errs = append(errs, validate.Error{
						Field:    fmt.Sprintf("w%d_f%d", w, k),
						Code:     "T_001",
						Severity: validate.SeverityInfo,
					})
				}
				assert.NoError(t, repo.SaveErrors(ctx, "user", validate.NewResult(errs...)))
			}()
		}
		wg.Wait()

		stored := repo.ErrorsFor("user")
		require.Len(t, stored, writers*errsPerWriter)

		// No duplicates: every (writer, error) pair appears exactly once.
		seen := make(map[string]bool, len(stored))
		for _, e := range stored {
			assert.False(t, seen[e.Field], "duplicate entry %s", e.Field)
			seen[e.Field] = true
		}
	})

	t.Run("snapshots are independent of internal state", func(t *testing.T) {
		repo := validate.NewMemoryErrorRepository()
		require.NoError(t, repo.SaveErrors(ctx, "user", validate.NewResult(
			validate.Error{Field: "email", Code: validate.CodeEmailRequired, Severity: validate.SeverityCritical},
		)))

		snapshot := repo.Errors()
		snapshot["user"][0].Field = "mutated"
		delete(snapshot, "user")

		assert.Equal(t, "email", repo.ErrorsFor("user")[0].Field)
		assert.Len(t, repo.Errors(), 1)
	})
}
