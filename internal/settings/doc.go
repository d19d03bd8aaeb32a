// Package settings loads, normalizes, and validates depviz tool preferences.
//
// Preferences live in a TOML file (logging level/format and default output
// rendering) and are distinct from the CSV job configuration handled by
// internal/config: settings shape how depviz reports, never what it
// validates. Missing files are not an error; defaults apply.
//
// Always obtain preferences through this package so downstream code receives
// canonical enum values and expanded paths.
package settings
