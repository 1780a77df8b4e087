package repository

import "github.com/frenchys-amb/ambutrack-api/internal/domain/entity"

// StorageItemRepository define el puerto de persistencia para el almacén central.
// Usado también dentro de transacciones de transferencia (GetForUpdate).
type StorageItemRepository interface {
	Create(item *entity.StorageItem) error
	GetByID(id string) (*entity.StorageItem, error)
	GetByNormalizedName(normalizedName string) (*entity.StorageItem, error)
	// GetForUpdate bloquea la fila para update (SELECT FOR UPDATE); nil si no existe.
	GetForUpdate(normalizedName string) (*entity.StorageItem, error)
	Update(item *entity.StorageItem) error
	UpdateQuantity(id string, quantity int) error
	List(category string, limit, offset int) ([]*entity.StorageItem, error)
	ListByType(itemType entity.ItemType, limit, offset int) ([]*entity.StorageItem, error)
	Delete(id string) error
}
