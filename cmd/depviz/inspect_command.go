package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"depviz/internal/config"
	"depviz/internal/settings"
)

func newInspectCommand(ctx *commandContext) *cobra.Command {
	var configPath string
	var outputFlag string

	cmd := &cobra.Command{
		Use:   "inspect",
		Short: "Validate a job configuration and print its normalized values",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInspect(cmd, ctx, configPath, outputFlag)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to the CSV job configuration")
	_ = cmd.MarkFlagRequired("config")
	cmd.Flags().StringVarP(&outputFlag, "output", "o", "", "Output format (text, table, json)")

	return cmd
}

func runInspect(cmd *cobra.Command, ctx *commandContext, configPath, outputFlag string) error {
	logger := ctx.logger()
	path := strings.TrimSpace(configPath)

	raw, err := config.ReadFile(path)
	if err != nil {
		return err
	}
	logger.Debug("loaded raw config", "path", path, "keys", len(raw))

	normalized, err := config.ValidateAndNormalize(raw)
	if err != nil {
		return err
	}
	logger.Debug("validated config", "package", normalized.PackageName, "repo_type", normalized.RepoType)

	format, err := resolveOutputFormat(ctx, outputFlag)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	switch format {
	case settings.OutputJSON:
		return writeJSON(cmd, normalized)
	case settings.OutputTable:
		colorize := allowColor(ctx.settingsValue().Output.Color, out)
		fmt.Fprintln(out, renderPairsTable(normalized.Pairs(), colorize))
		return nil
	default:
		for _, pair := range normalized.Pairs() {
			fmt.Fprintf(out, "%s=%s\n", pair.Key, pair.Value)
		}
		return nil
	}
}

// resolveOutputFormat applies the flag when set, otherwise the settings
// default, otherwise text.
func resolveOutputFormat(ctx *commandContext, flag string) (string, error) {
	format := strings.ToLower(strings.TrimSpace(flag))
	if format == "" {
		format = ctx.settingsValue().Output.Format
	}
	switch format {
	case settings.OutputText, settings.OutputTable, settings.OutputJSON:
		return format, nil
	case "":
		return settings.OutputText, nil
	default:
		return "", fmt.Errorf("unsupported output format %q (expected text, table, or json)", format)
	}
}
