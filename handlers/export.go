// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/danielhkuo/smokeroom/models"
)

// XLSXContentType is served with exported workbooks
const XLSXContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ReadingsSheet is the only sheet in an exported workbook
const ReadingsSheet = "Air Quality Log"

// ReadingsExportHeader is the first row of the export
var ReadingsExportHeader = []string{"Timestamp", "Value", "Status"}

// ExportFilename names the attachment for a room
func ExportFilename(roomCode string) string {
	return roomCode + "_air_quality_log.xlsx"
}

// BuildReadingsWorkbook writes readings, in the given order, below a header
// row and returns the XLSX bytes.
func BuildReadingsWorkbook(readings []models.Reading) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", ReadingsSheet); err != nil {
		return nil, fmt.Errorf("failed to name sheet: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Alignment: &excelize.Alignment{
			Horizontal: "center",
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create header style: %w", err)
	}

	if err := f.SetSheetRow(ReadingsSheet, "A1", &ReadingsExportHeader); err != nil {
		return nil, fmt.Errorf("failed to write header: %w", err)
	}
	lastHeader, err := excelize.CoordinatesToCellName(len(ReadingsExportHeader), 1)
	if err != nil {
		return nil, fmt.Errorf("failed to convert coordinates: %w", err)
	}
	if err := f.SetCellStyle(ReadingsSheet, "A1", lastHeader, headerStyle); err != nil {
		return nil, fmt.Errorf("failed to set header style: %w", err)
	}

	for i, reading := range readings {
		cell, err := excelize.CoordinatesToCellName(1, i+2) // row 1 is the header
		if err != nil {
			return nil, fmt.Errorf("failed to convert coordinates: %w", err)
		}
		row := []interface{}{reading.Timestamp, reading.Value, reading.Status}
		if err := f.SetSheetRow(ReadingsSheet, cell, &row); err != nil {
			return nil, fmt.Errorf("failed to write row %d: %w", i+2, err)
		}
	}

	if err := f.SetColWidth(ReadingsSheet, "A", "A", 22); err != nil {
		return nil, fmt.Errorf("failed to set column width: %w", err)
	}
	if err := f.SetColWidth(ReadingsSheet, "B", "C", 12); err != nil {
		return nil, fmt.Errorf("failed to set column width: %w", err)
	}

	// Freeze the header row
	if err := f.SetPanes(ReadingsSheet, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	}); err != nil {
		return nil, fmt.Errorf("failed to freeze panes: %w", err)
	}

	var buf bytes.Buffer
	if _, err := f.WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("failed to write workbook: %w", err)
	}

	return buf.Bytes(), nil
}
