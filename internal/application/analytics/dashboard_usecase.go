// Package analytics arma las métricas del panel de administración.
package analytics

import (
	"context"

	"github.com/frenchys-amb/ambutrack-api/internal/application/dto"
	"github.com/frenchys-amb/ambutrack-api/internal/domain/entity"
	domaininv "github.com/frenchys-amb/ambutrack-api/internal/domain/inventory"
	"github.com/frenchys-amb/ambutrack-api/internal/domain/repository"
)

const (
	// lowStockThreshold ítems del almacén por debajo de esta cantidad cuentan
	// como stock bajo en el panel.
	lowStockThreshold = 5
	// criticalLimit cuántos faltantes críticos muestra el panel.
	criticalLimit = 10
)

// DashboardUseCase reúne los contadores del panel y el ranking de ítems del
// almacén central más agotados respecto del estándar.
type DashboardUseCase struct {
	statsRepo    repository.StatsRepository
	standardRepo repository.StandardRepository
	storageRepo  repository.StorageItemRepository
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(
	statsRepo repository.StatsRepository,
	standardRepo repository.StandardRepository,
	storageRepo repository.StorageItemRepository,
) *DashboardUseCase {
	return &DashboardUseCase{
		statsRepo:    statsRepo,
		standardRepo: standardRepo,
		storageRepo:  storageRepo,
	}
}

// Get calcula las métricas del panel. Los faltantes críticos comparan el
// almacén central contra el estándar por unidad: un almacén que no puede
// reponer ni una unidad completa es el primer aviso de compra.
func (uc *DashboardUseCase) Get(ctx context.Context) (*dto.DashboardResponse, error) {
	totalAmbulances, err := uc.statsRepo.CountAmbulances(ctx)
	if err != nil {
		return nil, err
	}
	storageItems, err := uc.statsRepo.CountStorageItems(ctx)
	if err != nil {
		return nil, err
	}
	lowStock, err := uc.statsRepo.CountStorageLowStock(ctx, lowStockThreshold)
	if err != nil {
		return nil, err
	}

	standards, err := uc.standardRepo.List()
	if err != nil {
		return nil, err
	}
	critical, err := uc.criticalStorageShortages(standards)
	if err != nil {
		return nil, err
	}

	return &dto.DashboardResponse{
		TotalAmbulances:   totalAmbulances,
		StorageItems:      storageItems,
		StorageLowStock:   lowStock,
		CriticalShortages: critical,
	}, nil
}

// criticalStorageShortages reconcilia el almacén central contra el catálogo y
// devuelve el ranking de los más agotados.
func (uc *DashboardUseCase) criticalStorageShortages(standards []*entity.Standard) ([]dto.ShortfallDTO, error) {
	// Sin paginar: el catálogo de un operador cabe completo en memoria.
	items, err := uc.storageRepo.List("", 0, 0)
	if err != nil {
		return nil, err
	}
	idx := make(domaininv.StockIndex)
	for _, it := range items {
		cat := it.Category
		if it.ItemType == entity.ItemTypeMedication {
			cat = entity.CategoryMedicamentos
		}
		if idx[cat] == nil {
			idx[cat] = make(map[string]int)
		}
		idx[cat][it.NormalizedName] += it.Quantity
	}

	plain := make([]entity.Standard, 0, len(standards))
	for _, s := range standards {
		plain = append(plain, *s)
	}
	shortfalls := domaininv.RankCritical(domaininv.Reconcile(plain, idx), criticalLimit)

	out := make([]dto.ShortfallDTO, 0, len(shortfalls))
	for _, s := range shortfalls {
		out = append(out, dto.ShortfallDTO{
			Name:        s.Name,
			Section:     s.Category,
			ItemType:    string(s.ItemType),
			Current:     s.Current,
			Recommended: s.Recommended,
			Missing:     s.Missing,
		})
	}
	return out, nil
}
