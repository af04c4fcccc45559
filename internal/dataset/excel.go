package dataset

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/xuri/excelize/v2"
)

// LoadExcel reads one sheet of an Excel workbook into a dataset. When sheet
// is empty the first sheet of the workbook is used. The first non-empty row
// is taken as the header, matching how exported delivery extracts are laid
// out.
func LoadExcel(path, sheet string, opts LoadOptions) (*Dataset, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	if sheet == "" {
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return nil, fmt.Errorf("workbook %s has no sheets", path)
		}
		sheet = sheets[0]
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q: %w", sheet, err)
	}

	headerRow := -1
	for i, row := range rows {
		if rowHasData(row) {
			headerRow = i
			break
		}
	}
	if headerRow < 0 {
		return nil, fmt.Errorf("sheet %q has no header row", sheet)
	}

	header := make([]string, 0, len(rows[headerRow]))
	for _, cell := range rows[headerRow] {
		header = append(header, strings.TrimSpace(cell))
	}

	d, err := New(header)
	if err != nil {
		return nil, err
	}

	for i := headerRow + 1; i < len(rows); i++ {
		if !rowHasData(rows[i]) {
			continue
		}
		row := make([]Value, len(header))
		for j := range header {
			if j < len(rows[i]) {
				row[j] = ParseCell(rows[i][j], opts)
			} else {
				row[j] = Missing()
			}
		}
		if err := d.Append(row); err != nil {
			return nil, fmt.Errorf("sheet %q row %d: %w", sheet, i+1, err)
		}
	}

	slog.Info("Loaded Excel dataset",
		slog.String("path", path),
		slog.String("sheet", sheet),
		slog.Int("rows", d.Len()),
		slog.Int("fields", len(d.Fields())))
	return d, nil
}

func rowHasData(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return true
		}
	}
	return false
}
