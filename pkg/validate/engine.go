package validate

import (
	"context"
	"errors"
	"log/slog"
	"sync/atomic"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// CodeRuleFailure is the code assigned when a custom rule returns an error
// that is not a *Violation. The engine treats it as CRITICAL so that a
// misbehaving rule surfaces as data instead of crashing the run.
const CodeRuleFailure = "RULE_001"

// Engine runs registered rule sets against records. It is the only
// stateful, concurrency-bearing component: rules and rule sets are
// immutable during validation and the error repository is internally
// synchronized.
type Engine struct {
	config   Config
	registry *Registry
	repo     ErrorRepository
	logger   *slog.Logger
	engineID uuid.UUID
}

// Option is a functional option for configuring an engine.
type Option func(*engineOptions)

type engineOptions struct {
	config Config
	repo   ErrorRepository
	logger *slog.Logger
}

// WithConfig sets the execution policy. The engine keeps a normalized copy.
func WithConfig(cfg Config) Option {
	return func(o *engineOptions) {
		o.config = cfg
	}
}

// WithErrorRepository sets the sink that receives results when
// Config.PersistErrors is enabled.
func WithErrorRepository(repo ErrorRepository) Option {
	return func(o *engineOptions) {
		if repo != nil {
			o.repo = repo
		}
	}
}

// WithLogger sets the logger for the engine.
func WithLogger(logger *slog.Logger) Option {
	return func(o *engineOptions) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// NewEngine creates a validation engine over the given rule-set registry.
func NewEngine(registry *Registry, opts ...Option) (*Engine, error) {
	if registry == nil {
		return nil, ErrNilRegistry
	}

	options := &engineOptions{
		config: DefaultConfig(),
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(options)
	}

	return &Engine{
		config:   options.config.normalized(),
		registry: registry,
		repo:     options.repo,
		logger:   options.logger,
		engineID: uuid.New(),
	}, nil
}

// Config returns the engine's normalized execution policy.
func (e *Engine) Config() Config {
	return e.config
}

// Validate runs the rule set registered for dataType against the record and
// returns the aggregated result. An absent record key is treated the same
// as an explicit nil value. A data type with no registered rule set
// validates vacuously: no rules means no checks.
//
// Field tasks run concurrently up to Config.Parallelism; rules within one
// field always run sequentially in declared order, and all of a field's
// rules run regardless of severity. When Config.StopOnCritical is set and
// some field has produced a CRITICAL error, no further fields are
// scheduled; fields already in flight finish and their errors are kept.
// Errors are merged in sorted field order so the result is deterministic
// under concurrency.
//
// A repository failure never discards the computed result: Validate returns
// the complete Result together with an error wrapping ErrPersistenceFailed.
func (e *Engine) Validate(ctx context.Context, dataType string, record map[string]any) (*Result, error) {
	result := &Result{}

	rs, ok := e.registry.RuleSet(dataType)
	if !ok {
		e.logger.DebugContext(ctx, "no rule set registered, record is vacuously valid",
			slog.String("data_type", dataType),
			slog.String("engine_id", e.engineID.String()))
		return result, nil
	}

	fields := rs.Fields()
	fieldErrors := make([][]Error, len(fields))

	var sawCritical atomic.Bool

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(e.config.Parallelism)

	for i, field := range fields {
		i, field := i, field
		// Field-granular stop: checked before each new task is admitted,
		// so in-flight fields always finish.
		if e.config.StopOnCritical && sawCritical.Load() {
			break
		}

		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			// Re-checked here because g.Go blocks for a pool slot: a task
			// admitted while waiting must still observe a stop that
			// happened in the meantime.
			if e.config.StopOnCritical && sawCritical.Load() {
				return nil
			}

			errs := e.validateField(rs, field, record[field])
			for _, fe := range errs {
				if fe.Severity == SeverityCritical {
					sawCritical.Store(true)
					break
				}
			}
			fieldErrors[i] = errs
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		// Only context cancellation lands here; rule failures are data.
		// Keep whatever completed so the caller still sees partial findings.
		for _, errs := range fieldErrors {
			result.add(errs...)
		}
		return result, err
	}

	for _, errs := range fieldErrors {
		result.add(errs...)
	}

	e.logger.DebugContext(ctx, "validation completed",
		slog.String("data_type", dataType),
		slog.String("engine_id", e.engineID.String()),
		slog.Int("fields", len(fields)),
		slog.Int("errors", len(result.errors)),
		slog.Bool("critical", result.hasCritical))

	if e.config.PersistErrors && e.repo != nil {
		if err := e.repo.SaveErrors(ctx, dataType, result); err != nil {
			e.logger.ErrorContext(ctx, "failed to persist validation errors",
				slog.String("data_type", dataType),
				slog.String("engine_id", e.engineID.String()),
				slog.Any("error", err))
			return result, errors.Join(ErrPersistenceFailed, err)
		}
	}

	return result, nil
}

// validateField runs all rules for one field in declared order and collects
// every failure, regardless of severity.
func (e *Engine) validateField(rs *RuleSet, field string, value any) []Error {
	var out []Error
	for _, rule := range rs.RulesFor(field) {
		err := rule.Validate(value)
		if err == nil {
			continue
		}

		var v *Violation
		if !errors.As(err, &v) {
			v = NewViolation(CodeRuleFailure, err.Error(), SeverityCritical)
		}
		out = append(out, newError(field, v))
	}
	return out
}
