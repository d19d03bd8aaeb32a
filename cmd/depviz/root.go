package main

import (
	"strings"

	"github.com/spf13/cobra"
)

func newRootCommand() *cobra.Command {
	var settingsFlag string
	var configFlag string
	var outputFlag string

	ctx := newCommandContext(&settingsFlag)

	rootCmd := &cobra.Command{
		Use:           "depviz",
		Short:         "Validate and inspect depviz job configuration",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			// `depviz -c file.csv` is shorthand for `depviz inspect -c file.csv`.
			if strings.TrimSpace(configFlag) == "" {
				return cmd.Help()
			}
			return runInspect(cmd, ctx, configFlag, outputFlag)
		},
	}

	rootCmd.PersistentFlags().StringVar(&settingsFlag, "settings", "", "Settings file path")
	rootCmd.Flags().StringVarP(&configFlag, "config", "c", "", "Path to the CSV job configuration")
	rootCmd.Flags().StringVarP(&outputFlag, "output", "o", "", "Output format (text, table, json)")

	rootCmd.AddCommand(newInspectCommand(ctx))
	rootCmd.AddCommand(newConfigCommand(ctx))
	rootCmd.AddCommand(newSettingsCommand(ctx))

	return rootCmd
}
