package repository

import "github.com/frenchys-amb/ambutrack-api/internal/domain/entity"

// UsageReportRepository define el puerto de persistencia para reportes de consumo.
type UsageReportRepository interface {
	Create(report *entity.UsageReport) error
	ListByAmbulance(ambulanceID string, limit, offset int) ([]*entity.UsageReport, error)
}
