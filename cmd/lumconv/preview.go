package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/oukeidos/lumconv/internal/apperrors"
	"github.com/oukeidos/lumconv/internal/converter"
	"github.com/oukeidos/lumconv/internal/logger"
	"github.com/oukeidos/lumconv/internal/record"
	"github.com/rivo/uniseg"
	"github.com/spf13/cobra"
)

func newPreviewCmd() *cobra.Command {
	opts := convertOptions{}
	cmd := &cobra.Command{
		Use:   "preview [input.csv]",
		Short: "Print the converted records without writing JSON",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in := converter.DefaultInputPath
			if len(args) == 1 {
				in = args[0]
			}
			closeLog, err := initLogging(&opts)
			if err != nil {
				return err
			}
			defer closeLog()

			records, err := converter.Preview(in)
			if err != nil {
				if apperrors.IsInputNotFound(err) {
					logger.Error("Input file not found", "path", in, "error", apperrors.PublicMessage(err))
					return nil
				}
				return err
			}
			printRecords(cmd.OutOrStdout(), records)
			return nil
		},
		SilenceUsage: true,
	}
	cmd.SetUsageTemplate(subcommandUsageTemplate)
	addLogFlags(cmd.Flags(), &opts)
	return cmd
}

// printRecords writes an aligned table. Widths are measured in terminal
// cells so accented and wide labels line up.
func printRecords(w io.Writer, records []record.Record) {
	rows := make([][]string, 0, len(records)+1)
	rows = append(rows, record.Columns)
	for _, r := range records {
		rows = append(rows, []string{
			r.Environment,
			r.Area.String(),
			r.Technology,
			strconv.FormatInt(r.Flux, 10),
		})
	}

	widths := make([]int, len(record.Columns))
	for _, row := range rows {
		for i, cell := range row {
			widths[i] = max(widths[i], uniseg.StringWidth(cell))
		}
	}

	for _, row := range rows {
		var b strings.Builder
		for i, cell := range row {
			if i > 0 {
				b.WriteString("  ")
			}
			pad := strings.Repeat(" ", widths[i]-uniseg.StringWidth(cell))
			// Numbers right-aligned.
			if i == 1 || i == 3 {
				b.WriteString(pad + cell)
			} else {
				b.WriteString(cell + pad)
			}
		}
		fmt.Fprintln(w, strings.TrimRight(b.String(), " "))
	}
	fmt.Fprintf(w, "\n%d records\n", len(records))
}
