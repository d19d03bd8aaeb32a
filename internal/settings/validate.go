package settings

import "fmt"

// Validate ensures the settings are usable.
func (s *Settings) Validate() error {
	switch s.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level must be one of debug, info, warn, error (got %q)", s.Logging.Level)
	}
	switch s.Logging.Format {
	case FormatConsole, FormatJSON:
	default:
		return fmt.Errorf("logging.format must be one of console, json (got %q)", s.Logging.Format)
	}
	switch s.Output.Format {
	case OutputText, OutputTable, OutputJSON:
	default:
		return fmt.Errorf("output.format must be one of text, table, json (got %q)", s.Output.Format)
	}
	switch s.Output.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return fmt.Errorf("output.color must be one of auto, always, never (got %q)", s.Output.Color)
	}
	return nil
}
