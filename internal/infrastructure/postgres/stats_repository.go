package postgres

import (
	"context"
	"fmt"

	"github.com/frenchys-amb/ambutrack-api/internal/domain/repository"
)

var _ repository.StatsRepository = (*StatsRepo)(nil)

// StatsRepo consultas agregadas del panel de administración.
type StatsRepo struct {
	q Querier
}

// NewStatsRepository construye el adaptador de estadísticas.
func NewStatsRepository(q Querier) *StatsRepo {
	return &StatsRepo{q: q}
}

// CountAmbulances cuenta las unidades registradas.
func (r *StatsRepo) CountAmbulances(ctx context.Context) (int, error) {
	var n int
	err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM ambulances`).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count ambulances: %w", err)
	}
	return n, nil
}

// CountStorageItems cuenta los ítems del almacén central.
func (r *StatsRepo) CountStorageItems(ctx context.Context) (int, error) {
	var n int
	err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM storage_items`).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count storage items: %w", err)
	}
	return n, nil
}

// CountStorageLowStock cuenta los ítems del almacén con cantidad bajo el umbral.
func (r *StatsRepo) CountStorageLowStock(ctx context.Context, threshold int) (int, error) {
	var n int
	err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM storage_items WHERE quantity < $1`, threshold).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count low stock: %w", err)
	}
	return n, nil
}
