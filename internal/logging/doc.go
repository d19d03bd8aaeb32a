// Package logging assembles the structured slog loggers used across depviz.
//
// It centralizes level parsing and the console/JSON handler choice, tags each
// invocation with a run ID, and provides a no-op logger for tests and wiring
// code that cannot fail. All log output goes to stderr; stdout is reserved
// for the normalized key=value contract.
package logging
