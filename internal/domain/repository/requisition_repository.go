package repository

import "github.com/frenchys-amb/ambutrack-api/internal/domain/entity"

// RequisitionRepository define el puerto de persistencia para requisiciones.
// Los registros son inmutables: solo Create y lecturas.
type RequisitionRepository interface {
	Create(requisition *entity.Requisition) error
	GetByID(id string) (*entity.Requisition, error)
	ListByAmbulance(ambulanceID string, limit, offset int) ([]*entity.Requisition, error)
	List(limit, offset int) ([]*entity.Requisition, error)
}
