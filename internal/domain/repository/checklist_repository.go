package repository

import "github.com/frenchys-amb/ambutrack-api/internal/domain/entity"

// ChecklistRepository define el puerto de persistencia para checklists diarios.
type ChecklistRepository interface {
	Create(checklist *entity.Checklist) error
	GetByID(id string) (*entity.Checklist, error)
	ListByAmbulance(ambulanceID string, limit, offset int) ([]*entity.Checklist, error)
}
