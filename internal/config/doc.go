// Package config loads, normalizes, and validates listone configuration data.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), reads TOML files, and honours the LISTONE_LOG_LEVEL environment
// fallback. Positional CLI arguments override the input and output paths
// after loading, so the file only has to carry what differs from defaults.
//
// Always obtain settings through this package so downstream code receives
// absolute paths, canonical log formats, and clear validation errors.
package config
