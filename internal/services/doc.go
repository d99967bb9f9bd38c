// Package services defines shared plumbing consumed by the reorder workflow
// and the CLI.
//
// Key responsibilities:
//   - Context helpers that stamp run IDs and stage names for logging.
//   - Structured error markers plus the Wrap helper so callers can tell a
//     missing input playlist apart from configuration or output failures.
//
// Use these helpers when wiring new stages so error handling and
// observability stay uniform across the pipeline.
package services
