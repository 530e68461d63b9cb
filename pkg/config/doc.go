// Package config loads application configuration from environment
// variables into typed structs.
//
// It wraps github.com/joho/godotenv and github.com/caarlos0/env/v11: values
// come from the process environment with an optional .env fallback, and are
// parsed into any struct annotated with `env` tags. Each configuration type
// is parsed once per process and cached, so concurrent callers and repeated
// lookups always see the same snapshot.
//
// # Usage
//
//	var cfg validate.Config
//	config.MustLoad(&cfg)
//
// Tests that need to re-read the environment can call Reset to drop the
// cache.
package config
