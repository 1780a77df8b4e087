package export

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/frenchys-amb/ambutrack-api/internal/application/report"
)

var _ report.TabularExporter = (*XLSXExporter)(nil)

// XLSXExporter exporta tablas a XLSX con excelize.
type XLSXExporter struct{}

// NewXLSXExporter construye el exportador XLSX.
func NewXLSXExporter() *XLSXExporter { return &XLSXExporter{} }

// Export genera el libro con una hoja y la tabla dada.
func (e *XLSXExporter) Export(sheetName string, headers []string, rows [][]string) ([]byte, error) {
	if sheetName == "" {
		sheetName = "Datos"
	}
	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(sheetName)
	if err != nil {
		return nil, fmt.Errorf("xlsx sheet: %w", err)
	}
	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil && sheetName != "Sheet1" {
		return nil, fmt.Errorf("xlsx delete default sheet: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
	})
	if err != nil {
		return nil, fmt.Errorf("xlsx style: %w", err)
	}
	for i, h := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return nil, fmt.Errorf("xlsx cell: %w", err)
		}
		if err := f.SetCellValue(sheetName, cell, h); err != nil {
			return nil, fmt.Errorf("xlsx header: %w", err)
		}
		if err := f.SetCellStyle(sheetName, cell, cell, headerStyle); err != nil {
			return nil, fmt.Errorf("xlsx header style: %w", err)
		}
	}
	for rowIdx, cols := range rows {
		for colIdx, value := range cols {
			cell, err := excelize.CoordinatesToCellName(colIdx+1, rowIdx+2)
			if err != nil {
				return nil, fmt.Errorf("xlsx cell: %w", err)
			}
			if err := f.SetCellValue(sheetName, cell, value); err != nil {
				return nil, fmt.Errorf("xlsx value: %w", err)
			}
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("xlsx write: %w", err)
	}
	return buf.Bytes(), nil
}

// ContentType devuelve el MIME type del XLSX.
func (e *XLSXExporter) ContentType() string {
	return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
}

// Extension devuelve "xlsx".
func (e *XLSXExporter) Extension() string { return "xlsx" }
