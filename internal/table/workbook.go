package table

import (
	"fmt"
	"strings"

	"github.com/oukeidos/lumconv/internal/apperrors"
	"github.com/xuri/excelize/v2"
)

func loadWorkbook(path string) (Table, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return Table{}, apperrors.Format("input is not a readable workbook", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return Table{}, apperrors.Format("workbook has no sheets", nil)
	}
	rows, err := f.GetRows(sheets[0], excelize.Options{RawCellValue: true})
	if err != nil {
		return Table{}, apperrors.Format(fmt.Sprintf("sheet %q could not be read", sheets[0]), err)
	}
	return fromSheetRows(rows)
}

// fromSheetRows applies the text-table rules to sheet rows. Sheets drop
// trailing empty cells, so short rows are padded to the header width.
func fromSheetRows(rows [][]string) (Table, error) {
	t := Table{Rows: []Row{}}
	for i, cells := range rows {
		if isBlank(cells) {
			continue
		}
		line := i + 1
		if t.Header == nil {
			if len(cells) != Width {
				return Table{}, apperrors.Format(
					fmt.Sprintf("header: expected %d fields, got %d", Width, len(cells)), nil)
			}
			t.Header = cells
			continue
		}
		if len(cells) > Width {
			return Table{}, apperrors.Format(
				fmt.Sprintf("line %d: expected %d fields, got %d", line, Width, len(cells)), nil)
		}
		fields := make([]string, Width)
		copy(fields, cells)
		t.Rows = append(t.Rows, Row{Line: line, Fields: fields})
	}
	if t.Header == nil {
		return Table{}, apperrors.Format("input is empty: no header row", nil)
	}
	return t, nil
}

func isBlank(cells []string) bool {
	for _, c := range cells {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}
