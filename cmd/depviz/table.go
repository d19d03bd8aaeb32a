package main

import (
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"depviz/internal/config"
)

// renderPairsTable renders normalized fields as a two-column table with
// humanized field names.
func renderPairsTable(pairs []config.Pair, colorize bool) string {
	tw := table.NewWriter()
	if colorize {
		tw.SetStyle(table.StyleColoredDark)
	} else {
		tw.SetStyle(table.StyleRounded)
	}

	tw.AppendHeader(table.Row{"Field", "Value"})
	for _, pair := range pairs {
		tw.AppendRow(table.Row{humanizeKey(pair.Key), pair.Value})
	}

	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignLeft, AlignHeader: text.AlignLeft},
		{Number: 2, Align: text.AlignLeft, AlignHeader: text.AlignLeft},
	})

	return tw.Render()
}

// humanizeKey turns a snake_case key into a display label, e.g.
// "ascii_mode" becomes "Ascii Mode".
func humanizeKey(key string) string {
	return cases.Title(language.Und).String(strings.ReplaceAll(key, "_", " "))
}
