package repository

import "github.com/frenchys-amb/ambutrack-api/internal/domain/entity"

// AmbulanceStockRepository define el puerto para el stock a bordo de una unidad.
type AmbulanceStockRepository interface {
	Get(ambulanceID, normalizedName string) (*entity.AmbulanceStock, error)
	// GetForUpdate bloquea la fila para update; nil si no existe.
	GetForUpdate(ambulanceID, normalizedName string) (*entity.AmbulanceStock, error)
	Upsert(stock *entity.AmbulanceStock) error
	UpdateQuantity(id string, quantity int) error
	ListByAmbulance(ambulanceID string) ([]*entity.AmbulanceStock, error)
	Delete(id string) error
}
