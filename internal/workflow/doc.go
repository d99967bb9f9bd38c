// Package workflow runs the playlist reorder pipeline end to end.
//
// A Reorderer reads the configured input playlist, hands the parsed pairs to
// the lineup assembler, and writes the result atomically to the configured
// output. Each run is tagged with a fresh run ID and every stage (parse,
// assemble, write) stamps its name into the context so log lines can be
// correlated. A missing input aborts the run before anything is written.
package workflow
