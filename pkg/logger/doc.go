// Package logger provides a factory for Go's slog package with functional
// options for configuration.
//
// The single factory New creates a *slog.Logger configured by Option
// functions: output format (text or json), minimum level, destination
// writer, and default attributes applied to every record. WithDevelopment
// and WithProduction bundle sensible defaults for each environment, and
// SetAsDefault installs the logger process-wide.
//
// # Usage
//
//	log := logger.New(logger.WithDevelopment("validkit"))
//	logger.SetAsDefault(log)
package logger
