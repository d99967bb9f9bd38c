// Package logging assembles structured slog loggers and formatting helpers
// used across listone.
//
// It owns the console/JSON handlers, centralizes level and output plumbing,
// and exposes context-aware helpers so pipeline code automatically tags log
// lines with the run ID and stage. Logs default to stderr so stdout stays
// reserved for command output. The package also provides a no-op logger for
// tests and wiring code that cannot fail.
package logging
