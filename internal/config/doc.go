// Package config loads, validates, and normalizes depviz job configuration.
//
// A job configuration is a two-column CSV file of key/value pairs. The loader
// produces a raw string map, and the validator coerces the six required keys
// into a Normalized value in a fixed fail-fast order, classifying the
// repository reference as a URL, an existing local path, or unknown.
//
// Failures are tagged with the sentinel errors in this package so callers can
// distinguish load-phase problems from validation-phase problems and map them
// to distinct exit codes.
package config
