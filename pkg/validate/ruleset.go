package validate

import (
	"fmt"
	"sort"
	"sync/atomic"
)

// RuleSet maps field names to ordered rule lists for one record type.
// It is built once through chained AddRule calls and frozen before use;
// after Freeze the set is read-only and safe for any number of concurrent
// readers. Registering a set with a Registry freezes it.
type RuleSet struct {
	fieldRules map[string][]Rule
	frozen     atomic.Bool
}

// NewRuleSet creates an empty, unfrozen rule set.
func NewRuleSet() *RuleSet {
	return &RuleSet{fieldRules: make(map[string][]Rule)}
}

// AddRule appends a rule to the field's ordered rule list and returns the
// set for chaining. Nil rules are ignored for safety.
// Panics when called after Freeze to enforce fail-fast initialization -
// a rule set mutated mid-validation would break the concurrent-read
// invariant in ways that only surface as races.
func (rs *RuleSet) AddRule(field string, rule Rule) *RuleSet {
	if rs.frozen.Load() {
		panic(fmt.Sprintf("validate: AddRule(%q) called on frozen rule set", field))
	}
	if rule == nil {
		return rs
	}
	rs.fieldRules[field] = append(rs.fieldRules[field], rule)
	return rs
}

// Freeze makes the set immutable. Calling Freeze more than once is a no-op.
func (rs *RuleSet) Freeze() *RuleSet {
	rs.frozen.Store(true)
	return rs
}

// Fields returns the names of all fields with at least one rule, sorted so
// callers observe a deterministic order.
func (rs *RuleSet) Fields() []string {
	fields := make([]string, 0, len(rs.fieldRules))
	for field := range rs.fieldRules {
		fields = append(fields, field)
	}
	sort.Strings(fields)
	return fields
}

// RulesFor returns the ordered rules for a field, or an empty slice when
// the field has none. The returned slice is a copy.
func (rs *RuleSet) RulesFor(field string) []Rule {
	rules, ok := rs.fieldRules[field]
	if !ok {
		return nil
	}
	out := make([]Rule, len(rules))
	copy(out, rules)
	return out
}

// Len reports the number of fields with rules.
func (rs *RuleSet) Len() int {
	return len(rs.fieldRules)
}
