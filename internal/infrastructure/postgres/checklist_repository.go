package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/frenchys-amb/ambutrack-api/internal/domain/entity"
	"github.com/frenchys-amb/ambutrack-api/internal/domain/repository"
)

var _ repository.ChecklistRepository = (*ChecklistRepo)(nil)

// ChecklistRepo implementación del puerto ChecklistRepository sobre PostgreSQL.
// El mapa de ítems confirmados se guarda en JSONB; el kilometraje y las
// presiones de oxígeno en columnas NUMERIC (decimal).
type ChecklistRepo struct {
	q Querier
}

// NewChecklistRepository construye el adaptador de checklists.
func NewChecklistRepository(q Querier) *ChecklistRepo {
	return &ChecklistRepo{q: q}
}

const checklistColumns = `
	id, ambulance_id, user_id, date, shift, mileage, fuel, oxygen_main,
	oxygen_portable, oil_level, transmission_level, brake_fluid_level,
	steering_fluid_level, coolant_level, items, status, missing_count,
	notes, created_at`

// Create persiste un checklist terminado.
func (r *ChecklistRepo) Create(checklist *entity.Checklist) error {
	items, err := json.Marshal(checklist.Items)
	if err != nil {
		return fmt.Errorf("marshal checklist items: %w", err)
	}
	query := `
		INSERT INTO checklists (id, ambulance_id, user_id, date, shift, mileage,
			fuel, oxygen_main, oxygen_portable, oil_level, transmission_level,
			brake_fluid_level, steering_fluid_level, coolant_level, items,
			status, missing_count, notes, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10,
			$11, $12, $13, $14, $15, $16, $17, $18, $19)`
	m := checklist.Mechanical
	_, err = r.q.Exec(context.Background(), query,
		checklist.ID, checklist.AmbulanceID, checklist.UserID, checklist.Date,
		checklist.Shift, m.Mileage, m.Fuel, m.OxygenMain, m.OxygenPortable,
		m.OilLevel, m.TransmissionLevel, m.BrakeFluidLevel, m.SteeringFluidLevel,
		m.CoolantLevel, items, checklist.Status, checklist.MissingCount,
		checklist.Notes, checklist.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert checklist: %w", err)
	}
	return nil
}

// GetByID obtiene un checklist por ID.
func (r *ChecklistRepo) GetByID(id string) (*entity.Checklist, error) {
	query := `SELECT ` + checklistColumns + ` FROM checklists WHERE id = $1`
	c, err := scanChecklist(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get checklist: %w", err)
	}
	return c, nil
}

// ListByAmbulance lista los checklists de una unidad, más recientes primero.
func (r *ChecklistRepo) ListByAmbulance(ambulanceID string, limit, offset int) ([]*entity.Checklist, error) {
	query := `SELECT ` + checklistColumns + `
		FROM checklists WHERE ambulance_id = $1
		ORDER BY created_at DESC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, ambulanceID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list checklists: %w", err)
	}
	defer rows.Close()
	var list []*entity.Checklist
	for rows.Next() {
		c, err := scanChecklist(rows)
		if err != nil {
			return nil, fmt.Errorf("scan checklist: %w", err)
		}
		list = append(list, c)
	}
	return list, rows.Err()
}

func scanChecklist(row pgx.Row) (*entity.Checklist, error) {
	var (
		c     entity.Checklist
		items []byte
	)
	err := row.Scan(
		&c.ID, &c.AmbulanceID, &c.UserID, &c.Date, &c.Shift,
		&c.Mechanical.Mileage, &c.Mechanical.Fuel, &c.Mechanical.OxygenMain,
		&c.Mechanical.OxygenPortable, &c.Mechanical.OilLevel,
		&c.Mechanical.TransmissionLevel, &c.Mechanical.BrakeFluidLevel,
		&c.Mechanical.SteeringFluidLevel, &c.Mechanical.CoolantLevel,
		&items, &c.Status, &c.MissingCount, &c.Notes, &c.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	if len(items) > 0 {
		if err := json.Unmarshal(items, &c.Items); err != nil {
			return nil, fmt.Errorf("unmarshal checklist items: %w", err)
		}
	}
	return &c, nil
}
