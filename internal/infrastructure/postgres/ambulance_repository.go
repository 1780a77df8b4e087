package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/frenchys-amb/ambutrack-api/internal/domain"
	"github.com/frenchys-amb/ambutrack-api/internal/domain/entity"
	"github.com/frenchys-amb/ambutrack-api/internal/domain/repository"
)

var _ repository.AmbulanceRepository = (*AmbulanceRepo)(nil)

// AmbulanceRepo implementación del puerto AmbulanceRepository sobre PostgreSQL.
type AmbulanceRepo struct {
	q Querier
}

// NewAmbulanceRepository construye el adaptador de persistencia para unidades.
func NewAmbulanceRepository(q Querier) *AmbulanceRepo {
	return &AmbulanceRepo{q: q}
}

// Create persiste una nueva unidad.
func (r *AmbulanceRepo) Create(ambulance *entity.Ambulance) error {
	query := `
		INSERT INTO ambulances (id, unit_id, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.q.Exec(context.Background(), query,
		ambulance.ID, ambulance.UnitID, ambulance.Status,
		ambulance.CreatedAt, ambulance.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert ambulance: %w", err)
	}
	return nil
}

// GetByID obtiene una unidad por ID.
func (r *AmbulanceRepo) GetByID(id string) (*entity.Ambulance, error) {
	query := `
		SELECT id, unit_id, status, created_at, updated_at
		FROM ambulances WHERE id = $1`
	var a entity.Ambulance
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&a.ID, &a.UnitID, &a.Status, &a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get ambulance: %w", err)
	}
	return &a, nil
}

// GetByUnitID obtiene una unidad por su identificador visible.
func (r *AmbulanceRepo) GetByUnitID(unitID string) (*entity.Ambulance, error) {
	query := `
		SELECT id, unit_id, status, created_at, updated_at
		FROM ambulances WHERE unit_id = $1`
	var a entity.Ambulance
	err := r.q.QueryRow(context.Background(), query, unitID).Scan(
		&a.ID, &a.UnitID, &a.Status, &a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get ambulance by unit_id: %w", err)
	}
	return &a, nil
}

// Update actualiza una unidad existente.
func (r *AmbulanceRepo) Update(ambulance *entity.Ambulance) error {
	query := `
		UPDATE ambulances SET unit_id = $2, status = $3, updated_at = $4
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		ambulance.ID, ambulance.UnitID, ambulance.Status, ambulance.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update ambulance: %w", err)
	}
	return nil
}

// List lista unidades con paginación.
func (r *AmbulanceRepo) List(limit, offset int) ([]*entity.Ambulance, error) {
	query := `
		SELECT id, unit_id, status, created_at, updated_at
		FROM ambulances ORDER BY unit_id LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list ambulances: %w", err)
	}
	defer rows.Close()
	var list []*entity.Ambulance
	for rows.Next() {
		var a entity.Ambulance
		if err := rows.Scan(&a.ID, &a.UnitID, &a.Status, &a.CreatedAt, &a.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan ambulance: %w", err)
		}
		list = append(list, &a)
	}
	return list, rows.Err()
}

// Delete elimina una unidad por ID.
func (r *AmbulanceRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM ambulances WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete ambulance: %w", err)
	}
	return nil
}
