package validate

import (
	"context"
	"sync"
)

// ErrorRepository is the sink for validation results, keyed by data-type
// name. Implementations accumulate errors across all validations ever
// submitted for a type and must tolerate concurrent writers. Persistence
// is best-effort: a repository failure never changes validation semantics.
type ErrorRepository interface {
	SaveErrors(ctx context.Context, dataType string, result *Result) error
}

// MemoryErrorRepository is the reference in-memory implementation, suitable
// for tests and local development. Writes append to a per-type log under a
// mutex; insertion order across concurrent writers is not guaranteed beyond
// each call's errors staying contiguous.
type MemoryErrorRepository struct {
	mu     sync.RWMutex
	errors map[string][]Error
}

// NewMemoryErrorRepository creates an empty in-memory repository.
func NewMemoryErrorRepository() *MemoryErrorRepository {
	return &MemoryErrorRepository{errors: make(map[string][]Error)}
}

// SaveErrors appends the result's errors to the data type's log.
func (m *MemoryErrorRepository) SaveErrors(ctx context.Context, dataType string, result *Result) error {
	if result == nil {
		return ErrNilResult
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	errs := result.Errors()

	m.mu.Lock()
	defer m.mu.Unlock()
	m.errors[dataType] = append(m.errors[dataType], errs...)
	return nil
}

// Errors returns a snapshot of all stored errors keyed by data type.
func (m *MemoryErrorRepository) Errors() map[string][]Error {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make(map[string][]Error, len(m.errors))
	for dataType, errs := range m.errors {
		cp := make([]Error, len(errs))
		copy(cp, errs)
		out[dataType] = cp
	}
	return out
}

// ErrorsFor returns a snapshot of the errors stored for one data type.
func (m *MemoryErrorRepository) ErrorsFor(dataType string) []Error {
	m.mu.RLock()
	defer m.mu.RUnlock()

	errs := m.errors[dataType]
	cp := make([]Error, len(errs))
	copy(cp, errs)
	return cp
}
