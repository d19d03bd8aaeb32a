package settings

// Canonical enum values for settings fields.
const (
	FormatConsole = "console"
	FormatJSON    = "json"

	OutputText  = "text"
	OutputTable = "table"
	OutputJSON  = "json"

	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Default returns the settings used when no file is present.
func Default() Settings {
	return Settings{
		Logging: Logging{
			Level:  "info",
			Format: FormatConsole,
		},
		Output: Output{
			Format: OutputText,
			Color:  ColorAuto,
		},
	}
}
