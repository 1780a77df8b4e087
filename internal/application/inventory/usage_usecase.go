package inventory

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/frenchys-amb/ambutrack-api/internal/application/audit"
	"github.com/frenchys-amb/ambutrack-api/internal/application/dto"
	"github.com/frenchys-amb/ambutrack-api/internal/domain"
	"github.com/frenchys-amb/ambutrack-api/internal/domain/entity"
	"github.com/frenchys-amb/ambutrack-api/internal/domain/repository"
	"github.com/frenchys-amb/ambutrack-api/pkg/logger"
	"github.com/frenchys-amb/ambutrack-api/pkg/normalize"
)

// UsageUseCase registra el consumo de insumos tras un servicio y descuenta el
// stock a bordo de la unidad. Las filas que llegan a cero se eliminan; los
// ítems que la unidad no lleva a bordo se omiten del descuento pero quedan en
// el reporte.
type UsageUseCase struct {
	txRunner      TxRunner
	usageRepo     repository.UsageReportRepository
	ambulanceRepo repository.AmbulanceRepository
	audit         *audit.Recorder
	log           *logger.Logger
}

// NewUsageUseCase construye el caso de uso.
func NewUsageUseCase(
	txRunner TxRunner,
	usageRepo repository.UsageReportRepository,
	ambulanceRepo repository.AmbulanceRepository,
	recorder *audit.Recorder,
	log *logger.Logger,
) *UsageUseCase {
	return &UsageUseCase{
		txRunner:      txRunner,
		usageRepo:     usageRepo,
		ambulanceRepo: ambulanceRepo,
		audit:         recorder,
		log:           log,
	}
}

// Record persiste el reporte de consumo y descuenta el stock de la unidad en
// una sola transacción.
func (uc *UsageUseCase) Record(ctx context.Context, userID string, in dto.RecordUsageRequest) (*entity.UsageReport, error) {
	ambulance, err := uc.ambulanceRepo.GetByID(in.AmbulanceID)
	if err != nil {
		return nil, err
	}
	if ambulance == nil {
		return nil, domain.ErrNotFound
	}

	now := time.Now()
	items := make([]entity.UsageItem, 0, len(in.Items))
	for _, it := range in.Items {
		items = append(items, entity.UsageItem{
			Name:     normalize.Name(it.Name),
			Quantity: it.Quantity,
		})
	}
	report := &entity.UsageReport{
		ID:          uuid.New().String(),
		AmbulanceID: in.AmbulanceID,
		UserID:      userID,
		Date:        in.Date,
		Items:       items,
		CreatedAt:   now,
	}

	err = uc.txRunner.Run(ctx, func(
		_ repository.StorageItemRepository,
		unitStockRepo repository.AmbulanceStockRepository,
	) error {
		for _, item := range items {
			if err := uc.consumeItem(unitStockRepo, in.AmbulanceID, item); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if err := uc.usageRepo.Create(report); err != nil {
		return nil, err
	}
	uc.audit.Record(ctx, userID, "create", "usage_reports", report.ID, map[string]any{
		"ambulance_id": in.AmbulanceID,
		"items":        len(items),
	})
	return report, nil
}

// consumeItem descuenta una línea de consumo del stock a bordo. Un consumo
// mayor al stock deja la fila en cero; al llegar a cero la fila se elimina.
func (uc *UsageUseCase) consumeItem(
	unitStockRepo repository.AmbulanceStockRepository,
	ambulanceID string,
	item entity.UsageItem,
) error {
	stock, err := unitStockRepo.GetForUpdate(ambulanceID, item.Name)
	if err != nil {
		return err
	}
	if stock == nil {
		uc.log.Warn().
			Str("ambulance_id", ambulanceID).
			Str("item", item.Name).
			Msg("consumo reportado de un ítem que la unidad no lleva a bordo")
		return nil
	}
	remaining := stock.Quantity - item.Quantity
	if remaining <= 0 {
		return unitStockRepo.Delete(stock.ID)
	}
	return unitStockRepo.UpdateQuantity(stock.ID, remaining)
}

// ListByAmbulance lista los reportes de consumo de una unidad.
func (uc *UsageUseCase) ListByAmbulance(ambulanceID string, limit, offset int) ([]*entity.UsageReport, error) {
	return uc.usageRepo.ListByAmbulance(ambulanceID, limit, offset)
}
