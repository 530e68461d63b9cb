package validate

import "runtime"

// Config is the execution policy for one engine. It is an immutable
// snapshot: the engine copies it at construction and never reads the
// environment implicitly afterwards. The env tags allow loading through
// the config package.
type Config struct {
	// Parallelism bounds the number of field tasks running concurrently
	// within one Validate call. Values below 1 default to the host's
	// reported CPU count at engine construction.
	Parallelism int `env:"VALIDATE_PARALLELISM" envDefault:"0"`

	// StopOnCritical stops scheduling new field tasks once any field has
	// produced a CRITICAL error. In-flight fields still finish.
	StopOnCritical bool `env:"VALIDATE_STOP_ON_CRITICAL" envDefault:"true"`

	// PersistErrors hands each Result to the configured error repository.
	PersistErrors bool `env:"VALIDATE_PERSIST_ERRORS" envDefault:"false"`
}

// DefaultConfig returns the reference policy: host CPU parallelism,
// stop-on-critical enabled, persistence disabled.
func DefaultConfig() Config {
	return Config{
		Parallelism:    runtime.NumCPU(),
		StopOnCritical: true,
		PersistErrors:  false,
	}
}

// normalized resolves the dynamic default without mutating the caller's copy.
func (c Config) normalized() Config {
	if c.Parallelism < 1 {
		c.Parallelism = runtime.NumCPU()
	}
	return c
}
