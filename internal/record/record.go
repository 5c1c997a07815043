// Package record defines the normalized lighting record and the rules that
// turn one raw table row into it.
package record

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/oukeidos/lumconv/internal/apperrors"
)

// Column names, in output order.
const (
	ColEnvironment = "tipo_ambiente"
	ColArea        = "superficie_m2"
	ColTechnology  = "tecnologia"
	ColFlux        = "lumenes_requeridos_lm"
)

// Columns lists the output field names positionally.
var Columns = []string{ColEnvironment, ColArea, ColTechnology, ColFlux}

// NumColumns is the number of fields every input row must carry.
const NumColumns = 4

// Record is one normalized row. Field order is the JSON key order.
type Record struct {
	Environment string  `json:"tipo_ambiente"`
	Area        Decimal `json:"superficie_m2"`
	Technology  string  `json:"tecnologia"`
	Flux        int64   `json:"lumenes_requeridos_lm"`
}

// FromRow builds a Record from the fields of one data row. line is the
// 1-based line number in the source file and only feeds error messages.
func FromRow(fields []string, line int) (Record, error) {
	if len(fields) != NumColumns {
		return Record{}, apperrors.Format(
			fmt.Sprintf("line %d: expected %d fields, got %d", line, NumColumns, len(fields)), nil)
	}

	area, err := ParseDecimalComma(fields[1])
	if err != nil {
		return Record{}, numericError(line, ColArea, fields[1], err)
	}
	raw, err := ParseDecimalComma(fields[3])
	if err != nil {
		return Record{}, numericError(line, ColFlux, fields[3], err)
	}
	flux, err := RoundFlux(raw)
	if err != nil {
		return Record{}, numericError(line, ColFlux, fields[3], err)
	}

	return Record{
		Environment: fields[0],
		Area:        Decimal(area),
		Technology:  fields[2],
		Flux:        flux,
	}, nil
}

func numericError(line int, column, raw string, err error) error {
	return apperrors.NumericParse(
		fmt.Sprintf("line %d: %s: invalid number %q", line, column, raw), err)
}

// ParseDecimalComma replaces every ',' with '.' and parses the result as a
// finite float64. Surrounding whitespace is ignored.
func ParseDecimalComma(s string) (float64, error) {
	v := strings.TrimSpace(strings.ReplaceAll(s, ",", "."))
	if v == "" {
		return 0, fmt.Errorf("empty value")
	}
	// ParseFloat also takes hex floats; a table cell never should.
	if strings.ContainsAny(v, "xX") {
		return 0, fmt.Errorf("unsupported number syntax %q", v)
	}
	v, err := stripDigitUnderscores(v)
	if err != nil {
		return 0, err
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, fmt.Errorf("non-finite value %q", v)
	}
	return f, nil
}

// stripDigitUnderscores removes '_' digit separators ("1_000.5"). Each one
// must sit between two digits.
func stripDigitUnderscores(s string) (string, error) {
	if !strings.Contains(s, "_") {
		return s, nil
	}
	for i := 0; i < len(s); i++ {
		if s[i] != '_' {
			continue
		}
		if i == 0 || i == len(s)-1 || !isDigit(s[i-1]) || !isDigit(s[i+1]) {
			return "", fmt.Errorf("misplaced digit separator in %q", s)
		}
	}
	return strings.ReplaceAll(s, "_", ""), nil
}

func isDigit(b byte) bool { return b >= '0' && b <= '9' }

// RoundFlux rounds half to even and converts to int64.
func RoundFlux(f float64) (int64, error) {
	r := math.RoundToEven(f)
	// float64(math.MaxInt64) rounds up to 2^63, which is already out of range.
	if r >= math.MaxInt64 || r < math.MinInt64 {
		return 0, fmt.Errorf("value %v out of integer range", f)
	}
	return int64(r), nil
}
