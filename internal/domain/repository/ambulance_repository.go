package repository

import "github.com/frenchys-amb/ambutrack-api/internal/domain/entity"

// AmbulanceRepository define el puerto de persistencia para las unidades (DIP).
type AmbulanceRepository interface {
	Create(ambulance *entity.Ambulance) error
	GetByID(id string) (*entity.Ambulance, error)
	GetByUnitID(unitID string) (*entity.Ambulance, error)
	Update(ambulance *entity.Ambulance) error
	List(limit, offset int) ([]*entity.Ambulance, error)
	Delete(id string) error
}
