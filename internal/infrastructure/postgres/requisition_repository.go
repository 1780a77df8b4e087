package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"

	"github.com/jackc/pgx/v5"

	"github.com/frenchys-amb/ambutrack-api/internal/domain/entity"
	"github.com/frenchys-amb/ambutrack-api/internal/domain/repository"
)

var _ repository.RequisitionRepository = (*RequisitionRepo)(nil)

// RequisitionRepo implementación del puerto RequisitionRepository sobre
// PostgreSQL. El detalle de ítems viaja en una columna JSONB con esquema
// versionado (ver entity.RequisitionData).
type RequisitionRepo struct {
	q Querier
}

// NewRequisitionRepository construye el adaptador de requisiciones.
func NewRequisitionRepository(q Querier) *RequisitionRepo {
	return &RequisitionRepo{q: q}
}

// Create persiste una requisición. Los registros son inmutables.
func (r *RequisitionRepo) Create(requisition *entity.Requisition) error {
	data, err := json.Marshal(requisition.Data)
	if err != nil {
		return fmt.Errorf("marshal requisition data: %w", err)
	}
	query := `
		INSERT INTO requisitions (id, ambulance_id, user_id, date, data, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err = r.q.Exec(context.Background(), query,
		requisition.ID, requisition.AmbulanceID, requisition.UserID,
		requisition.Date, data, requisition.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert requisition: %w", err)
	}
	return nil
}

// GetByID obtiene una requisición por ID.
func (r *RequisitionRepo) GetByID(id string) (*entity.Requisition, error) {
	query := `
		SELECT id, ambulance_id, user_id, date, data, created_at
		FROM requisitions WHERE id = $1`
	req, err := scanRequisition(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get requisition: %w", err)
	}
	return req, nil
}

// ListByAmbulance lista las requisiciones de una unidad, más recientes primero.
func (r *RequisitionRepo) ListByAmbulance(ambulanceID string, limit, offset int) ([]*entity.Requisition, error) {
	query := `
		SELECT id, ambulance_id, user_id, date, data, created_at
		FROM requisitions WHERE ambulance_id = $1
		ORDER BY created_at DESC LIMIT $2 OFFSET $3`
	return r.queryRequisitions(query, ambulanceID, limit, offset)
}

// List lista todas las requisiciones, más recientes primero.
func (r *RequisitionRepo) List(limit, offset int) ([]*entity.Requisition, error) {
	query := `
		SELECT id, ambulance_id, user_id, date, data, created_at
		FROM requisitions
		ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	return r.queryRequisitions(query, limit, offset)
}

func (r *RequisitionRepo) queryRequisitions(query string, args ...any) ([]*entity.Requisition, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list requisitions: %w", err)
	}
	defer rows.Close()
	var list []*entity.Requisition
	for rows.Next() {
		req, err := scanRequisition(rows)
		if err != nil {
			return nil, fmt.Errorf("scan requisition: %w", err)
		}
		list = append(list, req)
	}
	return list, rows.Err()
}

func scanRequisition(row pgx.Row) (*entity.Requisition, error) {
	var (
		req  entity.Requisition
		data []byte
	)
	if err := row.Scan(&req.ID, &req.AmbulanceID, &req.UserID, &req.Date, &data, &req.CreatedAt); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(data, &req.Data); err != nil || len(req.Data.Items) == 0 {
		// Payload legacy (mapa nombre → cantidad): tolerarlo en lectura.
		var legacy map[string]int
		if legacyErr := json.Unmarshal(data, &legacy); legacyErr == nil && len(legacy) > 0 {
			req.Data = entity.RequisitionData{Items: legacyItems(legacy)}
		} else if err != nil {
			return nil, fmt.Errorf("unmarshal requisition data: %w", err)
		}
	}
	return &req, nil
}

// legacyItems convierte el mapa legacy en líneas ordenadas por nombre, para
// que las lecturas repetidas de una misma fila devuelvan el mismo orden.
func legacyItems(legacy map[string]int) []entity.RequisitionItem {
	names := make([]string, 0, len(legacy))
	for name := range legacy {
		names = append(names, name)
	}
	sort.Strings(names)
	items := make([]entity.RequisitionItem, 0, len(names))
	for _, name := range names {
		items = append(items, entity.RequisitionItem{Name: name, Quantity: legacy[name]})
	}
	return items
}
