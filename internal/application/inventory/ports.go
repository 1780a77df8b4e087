package inventory

import (
	"context"

	"github.com/frenchys-amb/ambutrack-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza que el par decremento-central /
// incremento-unidad de una transferencia sea atómico.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		storageRepo repository.StorageItemRepository,
		unitStockRepo repository.AmbulanceStockRepository,
	) error) error
}
