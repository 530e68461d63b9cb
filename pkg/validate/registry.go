package validate

import "sync"

// Registry holds the rule sets known to an engine, keyed by data-type name.
// Register freezes the rule set, so everything reachable through a Registry
// is immutable and safe for concurrent lookups during validation.
type Registry struct {
	mu   sync.RWMutex
	sets map[string]*RuleSet
}

// NewRegistry creates an empty rule-set registry.
func NewRegistry() *Registry {
	return &Registry{sets: make(map[string]*RuleSet)}
}

// Register associates a rule set with a data-type name, freezing the set.
// Registering the same name twice replaces the previous set.
func (r *Registry) Register(dataType string, rs *RuleSet) *Registry {
	if rs == nil {
		return r
	}
	rs.Freeze()

	r.mu.Lock()
	defer r.mu.Unlock()
	r.sets[dataType] = rs
	return r
}

// RuleSet returns the rule set registered for the data type, if any.
func (r *Registry) RuleSet(dataType string) (*RuleSet, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	rs, ok := r.sets[dataType]
	return rs, ok
}

// DataTypes returns the names of all registered data types.
func (r *Registry) DataTypes() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	types := make([]string, 0, len(r.sets))
	for dataType := range r.sets {
		types = append(types, dataType)
	}
	return types
}
