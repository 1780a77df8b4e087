package report

import (
	"context"

	"github.com/frenchys-amb/ambutrack-api/internal/application/dto"
	"github.com/frenchys-amb/ambutrack-api/internal/domain/entity"
)

// ShortagePDFGenerator genera la representación imprimible de los faltantes
// de una unidad. Implementado en infrastructure/pdf.
type ShortagePDFGenerator interface {
	GenerateShortageReport(ctx context.Context, ambulance *entity.Ambulance, shortfalls []dto.ShortfallDTO) ([]byte, error)
	GenerateRequisitionReport(ctx context.Context, ambulance *entity.Ambulance, requisition *entity.Requisition) ([]byte, error)
}

// TabularExporter exporta una tabla (cabeceras + filas) a un formato de
// archivo. Implementado en infrastructure/export para CSV y XLSX.
type TabularExporter interface {
	Export(sheetName string, headers []string, rows [][]string) ([]byte, error)
	// ContentType devuelve el MIME type del formato generado.
	ContentType() string
	// Extension devuelve la extensión de archivo sin punto ("csv", "xlsx").
	Extension() string
}
