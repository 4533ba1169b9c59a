// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/danielhkuo/smokeroom/models"
)

func openWorkbook(t *testing.T, data []byte) *excelize.File {
	t.Helper()
	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	t.Cleanup(func() { f.Close() })
	return f
}

func TestBuildReadingsWorkbook_Empty(t *testing.T) {
	data, err := BuildReadingsWorkbook(nil)
	require.NoError(t, err)

	f := openWorkbook(t, data)
	assert.Equal(t, []string{ReadingsSheet}, f.GetSheetList())

	rows, err := f.GetRows(ReadingsSheet)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, ReadingsExportHeader, rows[0])
}

func TestBuildReadingsWorkbook_Rows(t *testing.T) {
	readings := []models.Reading{
		{ID: 1, RoomCode: "R1", Timestamp: "2025-06-01 09:00:00", Value: 90, Status: models.StatusDanger},
		{ID: 2, RoomCode: "R1", Timestamp: "2025-06-01 10:00:00", Value: 10, Status: models.StatusGood},
		{ID: 3, RoomCode: "R1", Timestamp: "2025-06-01 11:00:00", Value: 50, Status: models.StatusSmoky},
	}

	data, err := BuildReadingsWorkbook(readings)
	require.NoError(t, err)

	rows, err := openWorkbook(t, data).GetRows(ReadingsSheet)
	require.NoError(t, err)

	assert.Equal(t, [][]string{
		{"Timestamp", "Value", "Status"},
		{"2025-06-01 09:00:00", "90", "Danger"},
		{"2025-06-01 10:00:00", "10", "Good"},
		{"2025-06-01 11:00:00", "50", "Smoky"},
	}, rows)
}

func TestExportFilename(t *testing.T) {
	assert.Equal(t, "R1_air_quality_log.xlsx", ExportFilename("R1"))
}
