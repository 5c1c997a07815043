package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newAboutCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "about",
		Short: "Show what the tool does",
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "lumconv — lighting table to JSON converter")
			fmt.Fprintln(out, "Reads ';'-separated rows (tipo_ambiente;superficie_m2;tecnologia;lumenes_requeridos_lm),")
			fmt.Fprintln(out, "turns decimal commas into points, rounds lumens to integers and writes a JSON array.")
		},
	}
	cmd.SetUsageTemplate(subcommandUsageTemplate)
	return cmd
}
