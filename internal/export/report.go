// Package export renders a batch summary as an XLSX workbook for review.
package export

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/joseph-ayodele/doc-renamer/constants"
	"github.com/joseph-ayodele/doc-renamer/internal/pipeline"
)

// RunReportXLSX returns an XLSX workbook (as bytes) with one row per file
// outcome, in processing order.
func RunReportXLSX(summary *pipeline.Summary, logger *slog.Logger) ([]byte, error) {
	if logger == nil {
		logger = slog.Default()
	}
	start := time.Now()

	f := excelize.NewFile()
	const sheet = "Run"
	if index, _ := f.GetSheetIndex(sheet); index == -1 {
		if _, err := f.NewSheet(sheet); err != nil {
			return nil, err
		}
	}
	activeIndex, _ := f.GetSheetIndex(sheet)
	f.SetActiveSheet(activeIndex)

	headers := []string{
		"Source",
		"Type",
		"Status",
		"Reason",
		"Extracted Fields",
		"New Filename",
		"Destination",
	}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}

	row := 2
	for _, o := range summary.Outcomes {
		write := func(col int, v any) {
			cell, _ := excelize.CoordinatesToCellName(col, row)
			_ = f.SetCellValue(sheet, cell, v)
		}

		status := string(o.Status)
		if summary.DryRun && o.Status == constants.StatusPlaced {
			status = "PLANNED"
		}

		write(1, o.Source)
		write(2, string(o.Format))
		write(3, status)
		write(4, string(o.Reason))
		write(5, o.Fields)
		write(6, o.NewName)
		write(7, o.DestPath)
		row++
	}

	// Widen a few columns
	_ = f.SetColWidth(sheet, "A", "A", 48) // source
	_ = f.SetColWidth(sheet, "B", "D", 14)
	_ = f.SetColWidth(sheet, "E", "E", 42) // fields
	_ = f.SetColWidth(sheet, "F", "G", 48)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx write: %w", err)
	}

	logger.Info("export.xlsx.ok",
		"run_id", summary.RunID.String(),
		"rows", len(summary.Outcomes),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return buf.Bytes(), nil
}
