// Package validate implements a rule-based validation engine for named
// records: given a record (a map from field name to value) and the rule set
// registered for its data type, the engine runs every applicable rule,
// collects structured errors with severity, optionally stops scheduling new
// fields after a CRITICAL failure, and optionally persists the result.
//
// # Architecture
//
// Rules are small stateless values implementing the Rule interface; a
// failed check is reported as a *Violation carrying a stable code, a
// message, and a severity. RuleSet maps field names to ordered rule lists
// and is frozen before use so concurrent validation never races with
// mutation. Registry keys rule sets by data-type name. Engine is the only
// stateful component: it fans field checks out over a bounded worker pool,
// merges errors deterministically in sorted field order, and hands results
// to an ErrorRepository when persistence is enabled.
//
// Core building blocks:
//   - Rule / Violation   – single-field check and its typed failure
//   - RuleSet / Registry – frozen field-to-rules mapping, keyed by type
//   - Error / Result     – structured outcome of one validation run
//   - Config             – parallelism, stop-on-critical, persistence policy
//   - ErrorRepository    – pluggable sink; MemoryErrorRepository is the
//     reference implementation
//
// # Usage
//
//	registry := validate.NewRegistry().Register("user", validate.NewRuleSet().
//		AddRule("email", validate.NewEmailRule()).
//		AddRule("password", validate.NewComplexityRule(8, true)).
//		AddRule("age", validate.NewRangeRule(0, 120)))
//
//	engine, err := validate.NewEngine(registry)
//	if err != nil {
//		// handle error
//	}
//
//	result, err := engine.Validate(ctx, "user", map[string]any{
//		"email":    "test@example.com",
//		"password": "weak",
//		"age":      150,
//	})
//	if !result.IsValid() {
//		for _, e := range result.Errors() {
//			// e.Field, e.Code, e.Message, e.Severity
//		}
//	}
//
// # Error Handling
//
// Rule failures are data, not control flow: they never abort a Validate
// call. Only context cancellation and persistence faults surface as the
// secondary error return, and a persistence fault (detectable with
// errors.Is against ErrPersistenceFailed) always arrives together with the
// complete, already-computed Result.
package validate
