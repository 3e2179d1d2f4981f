package Importer

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"
)

// Row is one spreadsheet row keyed by header label. Empty cells are
// omitted, so a missing key means the column was absent or blank.
type Row map[string]string

// ReadSheet extracts a named sheet from a workbook as ordered rows.
// headerOffset rows are skipped before the header row; the CONTROL DE
// MAQUINARIA source format carries two title rows above the real table.
// A missing sheet yields (nil, nil): bulk workbooks routinely lack some
// of the optional sheets. A workbook that cannot be opened is an error.
func ReadSheet(data []byte, sheet string, headerOffset int) ([]Row, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data), excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("error al leer el archivo Excel: %w", err)
	}
	defer f.Close()

	if idx, _ := f.GetSheetIndex(sheet); idx == -1 {
		return nil, nil
	}
	return readRows(f, sheet, headerOffset)
}

// ReadFirstSheet reads the first sheet of the workbook; single-purpose
// import templates put their data there.
func ReadFirstSheet(data []byte) ([]Row, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data), excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("error al leer el archivo Excel: %w", err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	if sheet == "" {
		return nil, nil
	}
	return readRows(f, sheet, 0)
}

func readRows(f *excelize.File, sheet string, headerOffset int) ([]Row, error) {
	raw, err := f.GetRows(sheet, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("error al leer la hoja %q: %w", sheet, err)
	}
	if len(raw) <= headerOffset {
		return nil, nil
	}

	headers := raw[headerOffset]
	var rows []Row
	for _, cells := range raw[headerOffset+1:] {
		row := Row{}
		for i, cell := range cells {
			if i >= len(headers) {
				break
			}
			header := strings.TrimSpace(headers[i])
			value := strings.TrimSpace(cell)
			if header == "" || value == "" {
				continue
			}
			row[header] = value
		}
		if len(row) > 0 {
			rows = append(rows, row)
		}
	}
	return rows, nil
}
