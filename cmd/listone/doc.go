// Package main hosts the listone CLI entrypoint and command graph.
//
// The Cobra-based command tree maps `listone [input] [output]` onto the
// reorder workflow, and adds an inspect command for dry runs plus
// configuration scaffolding. It centralizes configuration resolution and
// structured logging setup so subcommands only deal with presentation.
//
// Keep this package lean: new behaviour belongs in the internal packages
// first and is surfaced here through dedicated commands or flags.
package main
