package config

import "errors"

// Load-phase errors: the file could not be turned into a raw key/value map.
var (
	ErrNotFound     = errors.New("config file not found")
	ErrUnreadable   = errors.New("config file not readable")
	ErrEmptyFile    = errors.New("config file is empty")
	ErrParse        = errors.New("config parse failure")
	ErrMalformedRow = errors.New("malformed config row")
	ErrEmptyKey     = errors.New("empty config key")
)

// Validation-phase errors: the raw map violated the schema.
var (
	ErrMissingKeys      = errors.New("missing required keys")
	ErrEmptyField       = errors.New("field must not be empty")
	ErrInvalidEnum      = errors.New("invalid enum value")
	ErrInconsistentMode = errors.New("inconsistent mode")
	ErrMissingExtension = errors.New("missing file extension")
	ErrNotAnInteger     = errors.New("not an integer")
	ErrNegativeValue    = errors.New("negative value")
)

// Process exit codes per failure phase.
const (
	ExitOK              = 0
	ExitLoadError       = 2
	ExitValidationError = 3
)

// ExitCode maps an error from this package to the process exit code the CLI
// should terminate with. Errors from outside the config phases map to 1.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitOK
	case errors.Is(err, ErrNotFound),
		errors.Is(err, ErrUnreadable),
		errors.Is(err, ErrEmptyFile),
		errors.Is(err, ErrParse),
		errors.Is(err, ErrMalformedRow),
		errors.Is(err, ErrEmptyKey):
		return ExitLoadError
	case errors.Is(err, ErrMissingKeys),
		errors.Is(err, ErrEmptyField),
		errors.Is(err, ErrInvalidEnum),
		errors.Is(err, ErrInconsistentMode),
		errors.Is(err, ErrMissingExtension),
		errors.Is(err, ErrNotAnInteger),
		errors.Is(err, ErrNegativeValue):
		return ExitValidationError
	default:
		return 1
	}
}
