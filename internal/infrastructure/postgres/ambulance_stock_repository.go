package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/frenchys-amb/ambutrack-api/internal/domain/entity"
	"github.com/frenchys-amb/ambutrack-api/internal/domain/repository"
)

var _ repository.AmbulanceStockRepository = (*AmbulanceStockRepo)(nil)

// AmbulanceStockRepo implementación del puerto AmbulanceStockRepository sobre
// PostgreSQL (usable con pool o tx). La llave lógica de la tabla es
// (ambulance_id, normalized_name).
type AmbulanceStockRepo struct {
	q Querier
}

// NewAmbulanceStockRepository construye el adaptador. Pasar pool o tx (Querier).
func NewAmbulanceStockRepository(q Querier) *AmbulanceStockRepo {
	return &AmbulanceStockRepo{q: q}
}

const ambulanceStockColumns = `
	id, ambulance_id, item_master_id, normalized_name, quantity, category,
	item_type, expiration_date, created_at, updated_at`

func scanAmbulanceStock(row pgx.Row) (*entity.AmbulanceStock, error) {
	var s entity.AmbulanceStock
	err := row.Scan(
		&s.ID, &s.AmbulanceID, &s.ItemMasterID, &s.NormalizedName, &s.Quantity,
		&s.Category, &s.ItemType, &s.ExpirationDate, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// Get obtiene la fila de stock de un ítem a bordo; nil si la unidad no lo lleva.
func (r *AmbulanceStockRepo) Get(ambulanceID, normalizedName string) (*entity.AmbulanceStock, error) {
	query := `SELECT ` + ambulanceStockColumns + `
		FROM ambulance_stock WHERE ambulance_id = $1 AND normalized_name = $2`
	s, err := scanAmbulanceStock(r.q.QueryRow(context.Background(), query, ambulanceID, normalizedName))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get ambulance stock: %w", err)
	}
	return s, nil
}

// GetForUpdate obtiene la fila y la bloquea (SELECT FOR UPDATE); nil si no existe.
func (r *AmbulanceStockRepo) GetForUpdate(ambulanceID, normalizedName string) (*entity.AmbulanceStock, error) {
	query := `SELECT ` + ambulanceStockColumns + `
		FROM ambulance_stock WHERE ambulance_id = $1 AND normalized_name = $2
		FOR UPDATE`
	s, err := scanAmbulanceStock(r.q.QueryRow(context.Background(), query, ambulanceID, normalizedName))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get ambulance stock for update: %w", err)
	}
	return s, nil
}

// Upsert inserta o actualiza la fila por (ambulance_id, normalized_name).
func (r *AmbulanceStockRepo) Upsert(stock *entity.AmbulanceStock) error {
	query := `
		INSERT INTO ambulance_stock (id, ambulance_id, item_master_id, normalized_name,
			quantity, category, item_type, expiration_date, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		ON CONFLICT (ambulance_id, normalized_name)
		DO UPDATE SET quantity = EXCLUDED.quantity,
			item_master_id = EXCLUDED.item_master_id,
			expiration_date = EXCLUDED.expiration_date,
			updated_at = now()`
	_, err := r.q.Exec(context.Background(), query,
		stock.ID, stock.AmbulanceID, stock.ItemMasterID, stock.NormalizedName,
		stock.Quantity, stock.Category, stock.ItemType, stock.ExpirationDate,
		stock.CreatedAt, stock.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("upsert ambulance stock: %w", err)
	}
	return nil
}

// UpdateQuantity fija la cantidad de una fila de stock a bordo.
func (r *AmbulanceStockRepo) UpdateQuantity(id string, quantity int) error {
	query := `UPDATE ambulance_stock SET quantity = $2, updated_at = now() WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query, id, quantity)
	if err != nil {
		return fmt.Errorf("update ambulance stock quantity: %w", err)
	}
	return nil
}

// ListByAmbulance devuelve todo el stock a bordo de una unidad.
func (r *AmbulanceStockRepo) ListByAmbulance(ambulanceID string) ([]*entity.AmbulanceStock, error) {
	query := `SELECT ` + ambulanceStockColumns + `
		FROM ambulance_stock WHERE ambulance_id = $1
		ORDER BY category, normalized_name`
	rows, err := r.q.Query(context.Background(), query, ambulanceID)
	if err != nil {
		return nil, fmt.Errorf("list ambulance stock: %w", err)
	}
	defer rows.Close()
	var list []*entity.AmbulanceStock
	for rows.Next() {
		var s entity.AmbulanceStock
		if err := rows.Scan(
			&s.ID, &s.AmbulanceID, &s.ItemMasterID, &s.NormalizedName, &s.Quantity,
			&s.Category, &s.ItemType, &s.ExpirationDate, &s.CreatedAt, &s.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan ambulance stock: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}

// Delete elimina una fila de stock a bordo (cantidad llegó a cero).
func (r *AmbulanceStockRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM ambulance_stock WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete ambulance stock: %w", err)
	}
	return nil
}
