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

var _ repository.StandardRepository = (*StandardRepo)(nil)

// StandardRepo implementación del puerto StandardRepository sobre PostgreSQL.
// La tabla inventory_standards tiene UNIQUE (category, normalized_name).
type StandardRepo struct {
	q Querier
}

// NewStandardRepository construye el adaptador del catálogo de estándares.
func NewStandardRepository(q Querier) *StandardRepo {
	return &StandardRepo{q: q}
}

const standardColumns = `
	id, category, normalized_name, quantity, item_type, created_at, updated_at`

// categoryOrder ordena las categorías según las secciones del checklist.
// array_position deja al final cualquier categoría fuera del catálogo.
const categoryOrder = `array_position(
	ARRAY['signos_vitales','aire_oxigeno','canalizacion','miscelaneos',
		'medicamentos','entubacion','equipo_general'], category)`

// Create persiste un nuevo estándar.
func (r *StandardRepo) Create(standard *entity.Standard) error {
	query := `
		INSERT INTO inventory_standards (id, category, normalized_name, quantity,
			item_type, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		standard.ID, standard.Category, standard.NormalizedName, standard.Quantity,
		standard.ItemType, standard.CreatedAt, standard.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert standard: %w", err)
	}
	return nil
}

// GetByID obtiene un estándar por ID.
func (r *StandardRepo) GetByID(id string) (*entity.Standard, error) {
	query := `SELECT ` + standardColumns + ` FROM inventory_standards WHERE id = $1`
	var s entity.Standard
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&s.ID, &s.Category, &s.NormalizedName, &s.Quantity, &s.ItemType,
		&s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get standard: %w", err)
	}
	return &s, nil
}

// GetByCategoryAndName obtiene un estándar por su llave lógica.
func (r *StandardRepo) GetByCategoryAndName(category, normalizedName string) (*entity.Standard, error) {
	query := `SELECT ` + standardColumns + `
		FROM inventory_standards WHERE category = $1 AND normalized_name = $2`
	var s entity.Standard
	err := r.q.QueryRow(context.Background(), query, category, normalizedName).Scan(
		&s.ID, &s.Category, &s.NormalizedName, &s.Quantity, &s.ItemType,
		&s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get standard by key: %w", err)
	}
	return &s, nil
}

// UpdateQuantity cambia la cantidad recomendada.
func (r *StandardRepo) UpdateQuantity(id string, quantity int) error {
	query := `UPDATE inventory_standards SET quantity = $2, updated_at = now() WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query, id, quantity)
	if err != nil {
		return fmt.Errorf("update standard quantity: %w", err)
	}
	return nil
}

// List devuelve el catálogo completo en el orden de secciones del checklist.
func (r *StandardRepo) List() ([]*entity.Standard, error) {
	query := `SELECT ` + standardColumns + `
		FROM inventory_standards
		ORDER BY ` + categoryOrder + `, normalized_name`
	return r.queryStandards(query)
}

// ListByCategory devuelve los estándares de una sección.
func (r *StandardRepo) ListByCategory(category string) ([]*entity.Standard, error) {
	query := `SELECT ` + standardColumns + `
		FROM inventory_standards WHERE category = $1
		ORDER BY normalized_name`
	return r.queryStandards(query, category)
}

func (r *StandardRepo) queryStandards(query string, args ...any) ([]*entity.Standard, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list standards: %w", err)
	}
	defer rows.Close()
	var list []*entity.Standard
	for rows.Next() {
		var s entity.Standard
		if err := rows.Scan(
			&s.ID, &s.Category, &s.NormalizedName, &s.Quantity, &s.ItemType,
			&s.CreatedAt, &s.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan standard: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}

// Delete elimina un estándar por ID.
func (r *StandardRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM inventory_standards WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete standard: %w", err)
	}
	return nil
}

// Upsert inserta o actualiza por (category, normalized_name); usado por el seeder.
func (r *StandardRepo) Upsert(standard *entity.Standard) error {
	query := `
		INSERT INTO inventory_standards (id, category, normalized_name, quantity,
			item_type, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (category, normalized_name)
		DO UPDATE SET quantity = EXCLUDED.quantity,
			item_type = EXCLUDED.item_type,
			updated_at = now()`
	_, err := r.q.Exec(context.Background(), query,
		standard.ID, standard.Category, standard.NormalizedName, standard.Quantity,
		standard.ItemType, standard.CreatedAt, standard.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("upsert standard: %w", err)
	}
	return nil
}
