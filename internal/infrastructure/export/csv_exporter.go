// Package export implementa los exportadores tabulares (CSV y XLSX).
package export

import (
	"bytes"
	"encoding/csv"
	"fmt"

	"github.com/frenchys-amb/ambutrack-api/internal/application/report"
)

var _ report.TabularExporter = (*CSVExporter)(nil)

// CSVExporter exporta tablas a CSV (UTF-8 con BOM para que Excel abra bien
// los acentos).
type CSVExporter struct{}

// NewCSVExporter construye el exportador CSV.
func NewCSVExporter() *CSVExporter { return &CSVExporter{} }

// Export genera el CSV. sheetName se ignora: CSV no tiene hojas.
func (e *CSVExporter) Export(_ string, headers []string, rows [][]string) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString("\xEF\xBB\xBF") // BOM
	w := csv.NewWriter(&buf)
	if err := w.Write(headers); err != nil {
		return nil, fmt.Errorf("csv headers: %w", err)
	}
	if err := w.WriteAll(rows); err != nil {
		return nil, fmt.Errorf("csv rows: %w", err)
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("csv flush: %w", err)
	}
	return buf.Bytes(), nil
}

// ContentType devuelve el MIME type del CSV.
func (e *CSVExporter) ContentType() string { return "text/csv; charset=utf-8" }

// Extension devuelve "csv".
func (e *CSVExporter) Extension() string { return "csv" }
