package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"depviz/internal/settings"
)

func newSettingsCommand(ctx *commandContext) *cobra.Command {
	settingsCmd := &cobra.Command{
		Use:   "settings",
		Short: "Tool preference utilities",
	}

	settingsCmd.AddCommand(newSettingsInitCommand())
	settingsCmd.AddCommand(newSettingsShowCommand(ctx))

	return settingsCmd
}

func newSettingsInitCommand() *cobra.Command {
	var targetPath string
	var overwrite bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create a sample settings file",
		RunE: func(cmd *cobra.Command, args []string) error {
			target := strings.TrimSpace(targetPath)
			if target == "" {
				defaultPath, err := settings.DefaultSettingsPath()
				if err != nil {
					return fmt.Errorf("determine default settings path: %w", err)
				}
				target = defaultPath
			} else {
				expanded, err := settings.ExpandPath(target)
				if err != nil {
					return fmt.Errorf("resolve settings path: %w", err)
				}
				target = expanded
			}

			if !overwrite {
				if _, err := os.Stat(target); err == nil {
					return fmt.Errorf("settings file already exists at %s (use --overwrite to replace it)", target)
				} else if !os.IsNotExist(err) {
					return fmt.Errorf("check settings path: %w", err)
				}
			}

			if err := settings.CreateSample(target); err != nil {
				return fmt.Errorf("create sample settings: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Wrote sample settings to %s\n", target)
			return nil
		},
	}

	cmd.Flags().StringVarP(&targetPath, "path", "p", "", "Destination for the settings file")
	cmd.Flags().BoolVar(&overwrite, "overwrite", false, "Overwrite existing settings if present")
	return cmd
}

func newSettingsShowCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show resolved tool preferences",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := ctx.ensureSettings()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "logging.level=%s\n", s.Logging.Level)
			fmt.Fprintf(out, "logging.format=%s\n", s.Logging.Format)
			fmt.Fprintf(out, "output.format=%s\n", s.Output.Format)
			fmt.Fprintf(out, "output.color=%s\n", s.Output.Color)
			return nil
		},
	}
}
