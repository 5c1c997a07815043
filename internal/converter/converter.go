// Package converter turns a lighting table into a JSON array of records.
//
// A run is all-or-nothing: every row is parsed before anything is written,
// and the output replaces its destination atomically.
package converter

import (
	"fmt"
	"strings"

	"github.com/oukeidos/lumconv/internal/apperrors"
	"github.com/oukeidos/lumconv/internal/files"
	"github.com/oukeidos/lumconv/internal/logger"
	"github.com/oukeidos/lumconv/internal/record"
	"github.com/oukeidos/lumconv/internal/table"
)

// Result describes a completed conversion.
type Result struct {
	RecordCount int
	OutputPath  string
	// Checksum is the sha256 digest of the written bytes.
	Checksum    string
}

// Run converts cfg.InputPath and writes the JSON array to cfg.OutputPath
// (or a sibling path when SafeOutput is set and the output exists).
// A missing input yields a KindInputNotFound error and writes nothing.
func Run(cfg Config) (Result, error) {
	if err := cfg.Validate(); err != nil {
		return Result{}, fmt.Errorf("invalid configuration: %w", err)
	}
	records, err := Preview(cfg.InputPath)
	if err != nil {
		return Result{}, err
	}

	data, err := record.Encode(records)
	if err != nil {
		return Result{}, apperrors.Write(fmt.Errorf("failed to encode records: %w", err))
	}

	outPath := cfg.OutputPath
	if cfg.SafeOutput {
		safe, changed, err := files.SafePath(outPath)
		if err != nil {
			return Result{}, apperrors.Write(fmt.Errorf("failed to resolve output path: %w", err))
		}
		if changed {
			logger.Info("Output exists; writing to a new path", "path", safe)
		}
		outPath = safe
	}

	if err := files.AtomicWrite(outPath, data, OutputPerms); err != nil {
		return Result{}, apperrors.New(apperrors.KindWrite, fmt.Sprintf("failed to write %s", outPath), err)
	}

	res := Result{
		RecordCount: len(records),
		OutputPath:  outPath,
		Checksum:    record.Checksum(data),
	}
	logger.Info("Wrote JSON output", "path", outPath, "count", res.RecordCount)
	logger.Debug("Output checksum", "checksum", res.Checksum, "bytes", len(data))
	return res, nil
}

// Preview loads and cleans the table at inputPath without writing anything.
func Preview(inputPath string) ([]record.Record, error) {
	if strings.TrimSpace(inputPath) == "" {
		return nil, fmt.Errorf("input path is required")
	}

	t, err := table.Load(inputPath)
	if err != nil {
		return nil, err
	}
	logger.Debug("Loaded table", "path", inputPath, "rows", len(t.Rows), "header", t.Header)

	records := make([]record.Record, 0, len(t.Rows))
	for _, row := range t.Rows {
		rec, err := record.FromRow(row.Fields, row.Line)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	logger.Debug("Parsed records", "count", len(records))
	return records, nil
}
