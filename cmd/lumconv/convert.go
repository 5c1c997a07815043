package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/oukeidos/lumconv/internal/apperrors"
	"github.com/oukeidos/lumconv/internal/converter"
	"github.com/oukeidos/lumconv/internal/files"
	"github.com/oukeidos/lumconv/internal/logger"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

type convertOptions struct {
	safeOutput  bool
	logFilePath string
	debug       bool
}

func addConvertFlags(cmd *cobra.Command, opts *convertOptions) {
	cmd.Flags().BoolVar(&opts.safeOutput, "safe-output", false, "Write to a new numbered file instead of replacing an existing output")
	addLogFlags(cmd.Flags(), opts)
}

func addLogFlags(fs *pflag.FlagSet, opts *convertOptions) {
	fs.StringVar(&opts.logFilePath, "log-file", "", "Path to append machine-readable JSONL logs")
	fs.BoolVar(&opts.debug, "debug", false, "Enable debug logging")
}

// resolvePaths maps positional arguments to input and output paths.
// No arguments selects the built-in defaults; a single input derives
// its output by swapping the extension for .json.
func resolvePaths(args []string) (string, string, error) {
	switch len(args) {
	case 0:
		return converter.DefaultInputPath, converter.DefaultOutputPath, nil
	case 1:
		return args[0], jsonPathFor(args[0]), nil
	case 2:
		return args[0], args[1], nil
	default:
		return "", "", fmt.Errorf("expected at most 2 arguments but got %d; did you forget quotes around file paths?", len(args))
	}
}

func jsonPathFor(input string) string {
	return strings.TrimSuffix(input, filepath.Ext(input)) + ".json"
}

// initLogging returns a closer for the optional log file.
func initLogging(opts *convertOptions) (func() error, error) {
	level := logger.LevelInfo
	if opts.debug {
		level = logger.LevelDebug
	}
	if opts.logFilePath == "" {
		logger.Init(level, nil)
		return func() error { return nil }, nil
	}
	if err := files.RejectSymlinkPath(opts.logFilePath); err != nil {
		return nil, err
	}
	f, err := os.OpenFile(opts.logFilePath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0600)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}
	logger.Init(level, f)
	return func() error {
		logger.Init(level, nil)
		return f.Close()
	}, nil
}

func runConvert(cmd *cobra.Command, args []string, opts *convertOptions) error {
	in, out, err := resolvePaths(args)
	if err != nil {
		_ = cmd.Usage()
		return err
	}

	closeLog, err := initLogging(opts)
	if err != nil {
		return err
	}
	defer closeLog()

	res, err := converter.Run(converter.Config{
		InputPath:  in,
		OutputPath: out,
		SafeOutput: opts.safeOutput,
	})
	if err != nil {
		if apperrors.IsInputNotFound(err) {
			// Recovered: report and exit cleanly without output.
			logger.Error("Input file not found", "path", in, "error", apperrors.PublicMessage(err))
			return nil
		}
		return err
	}

	w := cmd.OutOrStdout()
	fmt.Fprintf(w, "Converted %d records.\n", res.RecordCount)
	fmt.Fprintf(w, "JSON saved to '%s'\n", res.OutputPath)
	return nil
}
