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

var _ repository.StorageItemRepository = (*StorageItemRepo)(nil)

// StorageItemRepo implementación del puerto StorageItemRepository sobre
// PostgreSQL (usable con pool o tx).
type StorageItemRepo struct {
	q Querier
}

// NewStorageItemRepository construye el adaptador. Pasar pool o tx (Querier).
func NewStorageItemRepository(q Querier) *StorageItemRepo {
	return &StorageItemRepo{q: q}
}

const storageItemColumns = `
	id, name, normalized_name, quantity, category, item_type,
	expiration_date, created_by, created_at, updated_at`

func scanStorageItem(row pgx.Row) (*entity.StorageItem, error) {
	var it entity.StorageItem
	err := row.Scan(
		&it.ID, &it.Name, &it.NormalizedName, &it.Quantity, &it.Category,
		&it.ItemType, &it.ExpirationDate, &it.CreatedBy, &it.CreatedAt, &it.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &it, nil
}

// Create persiste un nuevo ítem en el almacén central.
func (r *StorageItemRepo) Create(item *entity.StorageItem) error {
	query := `
		INSERT INTO storage_items (id, name, normalized_name, quantity, category,
			item_type, expiration_date, created_by, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(context.Background(), query,
		item.ID, item.Name, item.NormalizedName, item.Quantity, item.Category,
		item.ItemType, item.ExpirationDate, item.CreatedBy, item.CreatedAt, item.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert storage item: %w", err)
	}
	return nil
}

// GetByID obtiene un ítem por ID.
func (r *StorageItemRepo) GetByID(id string) (*entity.StorageItem, error) {
	query := `SELECT ` + storageItemColumns + ` FROM storage_items WHERE id = $1`
	it, err := scanStorageItem(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get storage item: %w", err)
	}
	return it, nil
}

// GetByNormalizedName obtiene un ítem por su nombre normalizado.
func (r *StorageItemRepo) GetByNormalizedName(normalizedName string) (*entity.StorageItem, error) {
	query := `SELECT ` + storageItemColumns + ` FROM storage_items WHERE normalized_name = $1`
	it, err := scanStorageItem(r.q.QueryRow(context.Background(), query, normalizedName))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get storage item by name: %w", err)
	}
	return it, nil
}

// GetForUpdate obtiene un ítem y bloquea la fila (SELECT FOR UPDATE).
// Devuelve nil sin error si el ítem no existe en el catálogo.
func (r *StorageItemRepo) GetForUpdate(normalizedName string) (*entity.StorageItem, error) {
	query := `SELECT ` + storageItemColumns + `
		FROM storage_items WHERE normalized_name = $1
		FOR UPDATE`
	it, err := scanStorageItem(r.q.QueryRow(context.Background(), query, normalizedName))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get storage item for update: %w", err)
	}
	return it, nil
}

// Update actualiza un ítem existente.
func (r *StorageItemRepo) Update(item *entity.StorageItem) error {
	query := `
		UPDATE storage_items
		SET name = $2, normalized_name = $3, quantity = $4,
			expiration_date = $5, updated_at = $6
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		item.ID, item.Name, item.NormalizedName, item.Quantity,
		item.ExpirationDate, item.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update storage item: %w", err)
	}
	return nil
}

// UpdateQuantity fija la cantidad de un ítem (usado por las transferencias).
func (r *StorageItemRepo) UpdateQuantity(id string, quantity int) error {
	query := `UPDATE storage_items SET quantity = $2, updated_at = now() WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query, id, quantity)
	if err != nil {
		return fmt.Errorf("update storage quantity: %w", err)
	}
	return nil
}

// List lista ítems del almacén, opcionalmente por categoría.
// limit <= 0 lista sin paginar (catálogos completos para exportación).
func (r *StorageItemRepo) List(category string, limit, offset int) ([]*entity.StorageItem, error) {
	query := `SELECT ` + storageItemColumns + ` FROM storage_items`
	args := []any{}
	if category != "" {
		query += ` WHERE category = $1`
		args = append(args, category)
	}
	query += ` ORDER BY category, normalized_name`
	if limit > 0 {
		query += fmt.Sprintf(` LIMIT $%d OFFSET $%d`, len(args)+1, len(args)+2)
		args = append(args, limit, offset)
	}
	return r.queryItems(query, args...)
}

// ListByType lista ítems por dominio (equipo o medicamento).
func (r *StorageItemRepo) ListByType(itemType entity.ItemType, limit, offset int) ([]*entity.StorageItem, error) {
	query := `SELECT ` + storageItemColumns + `
		FROM storage_items WHERE item_type = $1
		ORDER BY category, normalized_name`
	args := []any{itemType}
	if limit > 0 {
		query += ` LIMIT $2 OFFSET $3`
		args = append(args, limit, offset)
	}
	return r.queryItems(query, args...)
}

func (r *StorageItemRepo) queryItems(query string, args ...any) ([]*entity.StorageItem, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list storage items: %w", err)
	}
	defer rows.Close()
	var list []*entity.StorageItem
	for rows.Next() {
		var it entity.StorageItem
		if err := rows.Scan(
			&it.ID, &it.Name, &it.NormalizedName, &it.Quantity, &it.Category,
			&it.ItemType, &it.ExpirationDate, &it.CreatedBy, &it.CreatedAt, &it.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan storage item: %w", err)
		}
		list = append(list, &it)
	}
	return list, rows.Err()
}

// Delete elimina un ítem del almacén por ID.
func (r *StorageItemRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM storage_items WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete storage item: %w", err)
	}
	return nil
}
