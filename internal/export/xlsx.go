// Package export serializes report rows into spreadsheets.
//
// Two sinks implement the same row contract: XLSXSink produces a binary
// workbook for file downloads, and SheetsSink pushes the same rows to a
// hosted Google Sheets spreadsheet.
package export

import (
	"context"
	"fmt"

	"github.com/xuri/excelize/v2"
)

// XLSXSink writes rows into a single-sheet XLSX workbook and returns the
// serialized bytes.
type XLSXSink struct {
	SheetName string
}

// NewXLSXSink creates an XLSX sink with the given sheet name.
func NewXLSXSink(sheetName string) *XLSXSink {
	if sheetName == "" {
		sheetName = "Sheet1"
	}
	return &XLSXSink{SheetName: sheetName}
}

// Write implements the ExportSink interface. The header becomes row one;
// each input row follows in order.
func (s *XLSXSink) Write(ctx context.Context, header []string, rows [][]any) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	sheet := f.GetSheetName(0)
	if s.SheetName != sheet {
		if err := f.SetSheetName(sheet, s.SheetName); err != nil {
			return nil, fmt.Errorf("failed to name sheet: %w", err)
		}
		sheet = s.SheetName
	}

	headerCells := make([]any, len(header))
	for i, h := range header {
		headerCells[i] = h
	}
	if err := f.SetSheetRow(sheet, "A1", &headerCells); err != nil {
		return nil, fmt.Errorf("failed to write header row: %w", err)
	}

	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, fmt.Errorf("failed to address row %d: %w", i+2, err)
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return nil, fmt.Errorf("failed to write row %d: %w", i+2, err)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to serialize workbook: %w", err)
	}
	return buf.Bytes(), nil
}
