package converter

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Default paths used when the CLI is run without arguments.
const (
	DefaultInputPath  = "04 - Iluminacion.csv"
	DefaultOutputPath = "datos_iluminacion_historicos.json"
)

// OutputPerms is the file mode of written JSON files.
const OutputPerms os.FileMode = 0644

// Config holds everything one conversion needs.
type Config struct {
	InputPath  string
	OutputPath string

	// SafeOutput writes next to an existing output (name_1.json, ...)
	// instead of replacing it.
	SafeOutput bool
}

// Validate checks the paths before any file is read.
func (c Config) Validate() error {
	if strings.TrimSpace(c.InputPath) == "" {
		return fmt.Errorf("input path is required")
	}
	if strings.TrimSpace(c.OutputPath) == "" {
		return fmt.Errorf("output path is required")
	}

	absIn, err := filepath.Abs(c.InputPath)
	if err != nil {
		return fmt.Errorf("failed to resolve input path: %w", err)
	}
	absOut, err := filepath.Abs(c.OutputPath)
	if err != nil {
		return fmt.Errorf("failed to resolve output path: %w", err)
	}
	inInfo, err := os.Stat(absIn)
	if err != nil {
		// A missing input is reported by the load step.
		return nil
	}
	if absIn == absOut {
		return fmt.Errorf("input and output files are the same (%s)", absIn)
	}
	if outInfo, err := os.Stat(absOut); err == nil && os.SameFile(inInfo, outInfo) {
		return fmt.Errorf("input and output files are the same (%s)", absIn)
	}
	return nil
}
