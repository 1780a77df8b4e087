package postgres

import (
	"context"
	"fmt"

	"github.com/frenchys-amb/ambutrack-api/internal/domain/entity"
	"github.com/frenchys-amb/ambutrack-api/internal/domain/repository"
)

var _ repository.ActivityRepository = (*ActivityRepo)(nil)

// ActivityRepo implementación del puerto ActivityRepository sobre PostgreSQL.
// La tabla activity_log es append-only.
type ActivityRepo struct {
	q Querier
}

// NewActivityRepository construye el adaptador de la bitácora.
func NewActivityRepository(q Querier) *ActivityRepo {
	return &ActivityRepo{q: q}
}

// Append agrega una entrada a la bitácora.
func (r *ActivityRepo) Append(entry *entity.ActivityEntry) error {
	query := `
		INSERT INTO activity_log (id, user_id, action, entity_type, entity_id, details, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		entry.ID, entry.UserID, entry.Action, entry.EntityType, entry.EntityID,
		[]byte(entry.Details), entry.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert activity: %w", err)
	}
	return nil
}

// List devuelve la bitácora paginada, más reciente primero.
func (r *ActivityRepo) List(limit, offset int) ([]*entity.ActivityEntry, error) {
	query := `
		SELECT id, user_id, action, entity_type, entity_id, details, created_at
		FROM activity_log ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list activity: %w", err)
	}
	defer rows.Close()
	var list []*entity.ActivityEntry
	for rows.Next() {
		var (
			e       entity.ActivityEntry
			details []byte
		)
		if err := rows.Scan(&e.ID, &e.UserID, &e.Action, &e.EntityType, &e.EntityID, &details, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan activity: %w", err)
		}
		e.Details = details
		list = append(list, &e)
	}
	return list, rows.Err()
}
