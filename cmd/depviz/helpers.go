package main

import (
	"io"
	"os"

	"github.com/mattn/go-isatty"

	"depviz/internal/settings"
)

func allowColor(preference string, writer io.Writer) bool {
	switch preference {
	case settings.ColorAlways:
		return true
	case settings.ColorNever:
		return false
	}
	return shouldColorize(writer)
}

func shouldColorize(writer io.Writer) bool {
	file, ok := writer.(*os.File)
	if !ok {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
