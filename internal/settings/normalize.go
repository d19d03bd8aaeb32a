package settings

import "strings"

func (s *Settings) normalize() {
	s.Logging.Level = strings.ToLower(strings.TrimSpace(s.Logging.Level))
	if s.Logging.Level == "" {
		s.Logging.Level = "info"
	}
	s.Logging.Format = strings.ToLower(strings.TrimSpace(s.Logging.Format))
	if s.Logging.Format == "" {
		s.Logging.Format = FormatConsole
	}
	s.Output.Format = strings.ToLower(strings.TrimSpace(s.Output.Format))
	if s.Output.Format == "" {
		s.Output.Format = OutputText
	}
	s.Output.Color = strings.ToLower(strings.TrimSpace(s.Output.Color))
	if s.Output.Color == "" {
		s.Output.Color = ColorAuto
	}
}
