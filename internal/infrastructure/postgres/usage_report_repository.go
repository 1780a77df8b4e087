package postgres

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/frenchys-amb/ambutrack-api/internal/domain/entity"
	"github.com/frenchys-amb/ambutrack-api/internal/domain/repository"
)

var _ repository.UsageReportRepository = (*UsageReportRepo)(nil)

// UsageReportRepo implementación del puerto UsageReportRepository sobre
// PostgreSQL. Las líneas de consumo se guardan en JSONB.
type UsageReportRepo struct {
	q Querier
}

// NewUsageReportRepository construye el adaptador de reportes de consumo.
func NewUsageReportRepository(q Querier) *UsageReportRepo {
	return &UsageReportRepo{q: q}
}

// Create persiste un reporte de consumo.
func (r *UsageReportRepo) Create(report *entity.UsageReport) error {
	items, err := json.Marshal(report.Items)
	if err != nil {
		return fmt.Errorf("marshal usage items: %w", err)
	}
	query := `
		INSERT INTO usage_reports (id, ambulance_id, user_id, date, items, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err = r.q.Exec(context.Background(), query,
		report.ID, report.AmbulanceID, report.UserID, report.Date, items, report.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert usage report: %w", err)
	}
	return nil
}

// ListByAmbulance lista los reportes de consumo de una unidad, más recientes primero.
func (r *UsageReportRepo) ListByAmbulance(ambulanceID string, limit, offset int) ([]*entity.UsageReport, error) {
	query := `
		SELECT id, ambulance_id, user_id, date, items, created_at
		FROM usage_reports WHERE ambulance_id = $1
		ORDER BY created_at DESC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, ambulanceID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list usage reports: %w", err)
	}
	defer rows.Close()
	var list []*entity.UsageReport
	for rows.Next() {
		var (
			rep   entity.UsageReport
			items []byte
		)
		if err := rows.Scan(&rep.ID, &rep.AmbulanceID, &rep.UserID, &rep.Date, &items, &rep.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan usage report: %w", err)
		}
		if len(items) > 0 {
			if err := json.Unmarshal(items, &rep.Items); err != nil {
				return nil, fmt.Errorf("unmarshal usage items: %w", err)
			}
		}
		list = append(list, &rep)
	}
	return list, rows.Err()
}
