package leaderboard

import (
	"context"
	"fmt"
	"strings"

	"github.com/parasnikum/DevSync/pkg/logger"
	"github.com/xuri/excelize/v2"
)

const excelSheetName = "Leaderboard"

// ExcelEmitter writes the report to a local xlsx file. Each run produces a
// fresh workbook, mirroring the full-replace semantics of the sheet sink.
type ExcelEmitter struct {
	path string
}

// NewExcelEmitter builds an emitter targeting the given file path
func NewExcelEmitter(path string) *ExcelEmitter {
	return &ExcelEmitter{path: path}
}

// Emit writes the report table into a new workbook
func (e *ExcelEmitter) Emit(ctx context.Context, report *Report) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", excelSheetName); err != nil {
		return fmt.Errorf("failed to rename sheet: %w", err)
	}

	for col, header := range report.Headers {
		if err := e.setCell(f, col, 0, header); err != nil {
			return err
		}
	}

	for rowIdx, row := range report.Rows {
		for col, value := range row {
			if err := e.setCell(f, col, rowIdx+1, value); err != nil {
				return err
			}
		}
	}

	if err := f.SaveAs(e.path); err != nil {
		return fmt.Errorf("failed to save workbook: %w", err)
	}

	logger.Infof("Workbook written: %s, rows = %d", e.path, len(report.Rows))
	return nil
}

func (e *ExcelEmitter) setCell(f *excelize.File, col, row int, value interface{}) error {
	cell, err := excelize.CoordinatesToCellName(col+1, row+1)
	if err != nil {
		return err
	}

	// Formula cells carry a leading "=" from the report shaper
	if s, ok := value.(string); ok && strings.HasPrefix(s, "=") {
		return f.SetCellFormula(excelSheetName, cell, strings.TrimPrefix(s, "="))
	}
	return f.SetCellValue(excelSheetName, cell, value)
}
