package main

import (
	"fmt"
	"os"

	"github.com/oukeidos/lumconv/internal/version"
	"github.com/spf13/cobra"
)

func execute() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := convertOptions{}

	cmd := &cobra.Command{
		Use:   "lumconv [input.csv] [output.json]",
		Short: "Convert a lighting table to JSON",
		Long: "Convert a ';'-delimited lighting table with decimal commas into a JSON array.\n" +
			"Without arguments, reads \"04 - Iluminacion.csv\" and writes \"datos_iluminacion_historicos.json\".",
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 && isSubcommand(cmd, args[0]) {
				_ = cmd.Usage()
				return fmt.Errorf("unknown command %q for %q", args[0], cmd.CommandPath())
			}
			return runConvert(cmd, args, &opts)
		},
		Args:         cobra.ArbitraryArgs,
		SilenceUsage: true,
	}

	cmd.Version = version.Info()
	cmd.SetVersionTemplate("{{.Version}}\n")
	cmd.SetUsageTemplate(rootUsageTemplate)

	addConvertFlags(cmd, &opts)

	cmd.AddCommand(
		newPreviewCmd(),
		newAboutCmd(),
	)
	cmd.CompletionOptions.DisableDefaultCmd = true
	return cmd
}

func isSubcommand(cmd *cobra.Command, name string) bool {
	for _, c := range cmd.Commands() {
		if c.Name() == name {
			return true
		}
	}
	return false
}
