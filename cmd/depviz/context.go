package main

import (
	"log/slog"
	"strings"
	"sync"

	"depviz/internal/logging"
	"depviz/internal/settings"
)

type commandContext struct {
	settingsFlag *string

	settingsOnce sync.Once
	settings     *settings.Settings
	settingsErr  error

	loggerOnce sync.Once
	loggerVal  *slog.Logger
}

func newCommandContext(settingsFlag *string) *commandContext {
	return &commandContext{settingsFlag: settingsFlag}
}

func (c *commandContext) ensureSettings() (*settings.Settings, error) {
	c.settingsOnce.Do(func() {
		var path string
		if c.settingsFlag != nil {
			path = strings.TrimSpace(*c.settingsFlag)
		}
		s, _, _, err := settings.Load(path)
		if err != nil {
			c.settingsErr = err
			return
		}
		c.settings = s
	})
	return c.settings, c.settingsErr
}

// settingsValue returns resolved settings, falling back to defaults when the
// settings file is unusable so inspection can still run.
func (c *commandContext) settingsValue() *settings.Settings {
	s, err := c.ensureSettings()
	if err != nil || s == nil {
		fallback := settings.Default()
		return &fallback
	}
	return s
}

func (c *commandContext) logger() *slog.Logger {
	c.loggerOnce.Do(func() {
		logger, err := logging.NewFromSettings(c.settingsValue())
		if err != nil {
			c.loggerVal = logging.NewNop()
			return
		}
		c.loggerVal = logging.WithRunID(logger)
	})
	return c.loggerVal
}
