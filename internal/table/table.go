// Package table reads the raw rows of an input table. It knows nothing about
// column meaning; it only enforces the shape every row must have.
package table

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/oukeidos/lumconv/internal/apperrors"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// Delimiter separates fields in text input.
const Delimiter = ';'

// Width is the number of fields the header and every row must have.
const Width = 4

// Row is one data row with its 1-based source line (or sheet row) number.
type Row struct {
	Line   int
	Fields []string
}

// Table is the parsed input: the discarded header plus the data rows in
// source order.
type Table struct {
	Header []string
	Rows   []Row
}

// Load reads the table at path. Workbooks (.xlsx, .xlsm) are read from their
// first sheet; anything else is treated as ';'-delimited text.
// A missing, unreadable or directory path yields a KindInputNotFound error.
func Load(path string) (Table, error) {
	info, err := os.Stat(path)
	if err != nil {
		return Table{}, apperrors.InputNotFound(path, err)
	}
	if info.IsDir() {
		return Table{}, apperrors.InputNotFound(path, fmt.Errorf("%s is a directory", path))
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx", ".xlsm":
		return loadWorkbook(path)
	}

	f, err := os.Open(path)
	if err != nil {
		return Table{}, apperrors.InputNotFound(path, err)
	}
	defer f.Close()
	return Parse(f)
}

// Parse reads ';'-delimited text. A UTF-8 or UTF-16 byte order mark is
// honored and stripped. Blank lines are skipped.
func Parse(r io.Reader) (Table, error) {
	decoded := transform.NewReader(r, unicode.BOMOverride(unicode.UTF8.NewDecoder()))
	cr := csv.NewReader(decoded)
	cr.Comma = Delimiter
	cr.LazyQuotes = true

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return Table{}, apperrors.Format("input is empty: no header row", nil)
	}
	if err != nil {
		return Table{}, csvError(cr, header, err)
	}
	if len(header) != Width {
		return Table{}, apperrors.Format(
			fmt.Sprintf("header: expected %d fields, got %d", Width, len(header)), nil)
	}

	t := Table{Header: header, Rows: []Row{}}
	for {
		fields, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return Table{}, csvError(cr, fields, err)
		}
		line, _ := cr.FieldPos(0)
		t.Rows = append(t.Rows, Row{Line: line, Fields: fields})
	}
	return t, nil
}

func csvError(cr *csv.Reader, fields []string, err error) error {
	if errors.Is(err, csv.ErrFieldCount) && len(fields) > 0 {
		line, _ := cr.FieldPos(0)
		return apperrors.Format(
			fmt.Sprintf("line %d: expected %d fields, got %d", line, Width, len(fields)), err)
	}
	var pe *csv.ParseError
	if errors.As(err, &pe) {
		return apperrors.Format(fmt.Sprintf("line %d: malformed row: %v", pe.Line, pe.Err), err)
	}
	return apperrors.New(apperrors.KindInputNotFound, "input file could not be read", err)
}
