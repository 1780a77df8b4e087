package repository

import "github.com/frenchys-amb/ambutrack-api/internal/domain/entity"

// StandardRepository define el puerto para el catálogo de estándares de dotación.
// La tabla garantiza unicidad por (category, normalized_name).
type StandardRepository interface {
	Create(standard *entity.Standard) error
	GetByID(id string) (*entity.Standard, error)
	GetByCategoryAndName(category, normalizedName string) (*entity.Standard, error)
	UpdateQuantity(id string, quantity int) error
	List() ([]*entity.Standard, error)
	ListByCategory(category string) ([]*entity.Standard, error)
	Delete(id string) error
	// Upsert inserta o actualiza por (category, normalized_name); usado por el seeder.
	Upsert(standard *entity.Standard) error
}
