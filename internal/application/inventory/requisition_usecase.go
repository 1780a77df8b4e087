// Package inventory contiene los casos de uso del motor de inventario:
// requisiciones con transferencia automática, estado por unidad, registro de
// consumo y checklist diario.
package inventory

import (
	"context"
	"errors"
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

// RequisitionUseCase crea requisiciones y ejecuta la transferencia automática
// almacén central → unidad. Cada ítem se transfiere en su propia transacción
// con bloqueo de fila (SELECT FOR UPDATE): el decremento en el almacén y el
// incremento a bordo son atómicos por ítem, y el fallo de un ítem no revierte
// los demás (éxito parcial entre ítems).
type RequisitionUseCase struct {
	txRunner      TxRunner
	reqRepo       repository.RequisitionRepository
	ambulanceRepo repository.AmbulanceRepository
	audit         *audit.Recorder
	log           *logger.Logger
}

// NewRequisitionUseCase construye el caso de uso.
func NewRequisitionUseCase(
	txRunner TxRunner,
	reqRepo repository.RequisitionRepository,
	ambulanceRepo repository.AmbulanceRepository,
	recorder *audit.Recorder,
	log *logger.Logger,
) *RequisitionUseCase {
	return &RequisitionUseCase{
		txRunner:      txRunner,
		reqRepo:       reqRepo,
		ambulanceRepo: ambulanceRepo,
		audit:         recorder,
		log:           log,
	}
}

// Create procesa una requisición: valida la unidad, transfiere cada ítem y
// persiste el registro con las líneas que sí se movieron. Si ningún ítem se
// transfirió no se crea registro; la respuesta detalla el resultado por ítem.
func (uc *RequisitionUseCase) Create(ctx context.Context, userID string, in dto.CreateRequisitionRequest) (*dto.CreateRequisitionResponse, error) {
	ambulance, err := uc.ambulanceRepo.GetByID(in.AmbulanceID)
	if err != nil {
		return nil, err
	}
	if ambulance == nil {
		return nil, domain.ErrNotFound
	}

	now := time.Now()
	results := make([]dto.RequisitionItemResult, 0, len(in.Items))
	transferred := make([]entity.RequisitionItem, 0, len(in.Items))

	for _, item := range in.Items {
		normalized := normalize.Name(item.Name)
		result := dto.RequisitionItemResult{Name: normalized, Quantity: item.Quantity}

		err := uc.txRunner.Run(ctx, func(
			storageRepo repository.StorageItemRepository,
			unitStockRepo repository.AmbulanceStockRepository,
		) error {
			return uc.transferItem(storageRepo, unitStockRepo, in.AmbulanceID, normalized, item.Quantity, now)
		})
		switch {
		case err == nil:
			result.Transferred = true
			transferred = append(transferred, entity.RequisitionItem{
				Name:     normalized,
				Quantity: item.Quantity,
				Category: item.Category,
				ItemType: entity.ItemTypeForCategory(item.Category),
			})
		case errors.Is(err, domain.ErrItemNotInCatalog), errors.Is(err, domain.ErrInsufficientStock):
			result.Error = err.Error()
			uc.log.Warn().
				Str("ambulance_id", in.AmbulanceID).
				Str("item", normalized).
				Int("quantity", item.Quantity).
				Err(err).
				Msg("ítem de requisición rechazado")
		default:
			return nil, err
		}
		results = append(results, result)
	}

	resp := &dto.CreateRequisitionResponse{
		AmbulanceID: in.AmbulanceID,
		Date:        in.Date,
		Results:     results,
		Transferred: len(transferred),
		Failed:      len(results) - len(transferred),
	}
	if len(transferred) == 0 {
		return resp, nil
	}

	requisition := &entity.Requisition{
		ID:          uuid.New().String(),
		AmbulanceID: in.AmbulanceID,
		UserID:      userID,
		Date:        in.Date,
		Data: entity.RequisitionData{
			GeneratedAt: now,
			Reason:      in.Reason,
			Items:       transferred,
		},
		CreatedAt: now,
	}
	if err := uc.reqRepo.Create(requisition); err != nil {
		return nil, err
	}
	resp.ID = requisition.ID
	uc.audit.Record(ctx, userID, "create", "requisitions", requisition.ID, map[string]any{
		"ambulance_id": in.AmbulanceID,
		"transferred":  len(transferred),
		"failed":       resp.Failed,
	})
	return resp, nil
}

// transferItem mueve una cantidad del almacén central al stock de la unidad.
// Corre dentro de una transacción: bloquea la fila del almacén, verifica
// existencia y stock suficiente, resta en el origen y suma (o inserta) en el
// destino.
func (uc *RequisitionUseCase) transferItem(
	storageRepo repository.StorageItemRepository,
	unitStockRepo repository.AmbulanceStockRepository,
	ambulanceID, normalizedName string,
	quantity int,
	now time.Time,
) error {
	origin, err := storageRepo.GetForUpdate(normalizedName)
	if err != nil {
		return err
	}
	if origin == nil {
		return domain.ErrItemNotInCatalog
	}
	if origin.Quantity < quantity {
		return domain.ErrInsufficientStock
	}
	if err := storageRepo.UpdateQuantity(origin.ID, origin.Quantity-quantity); err != nil {
		return err
	}

	dest, err := unitStockRepo.GetForUpdate(ambulanceID, normalizedName)
	if err != nil {
		return err
	}
	if dest == nil {
		dest = &entity.AmbulanceStock{
			ID:             uuid.New().String(),
			AmbulanceID:    ambulanceID,
			ItemMasterID:   origin.ID,
			NormalizedName: normalizedName,
			Quantity:       quantity,
			Category:       origin.Category,
			ItemType:       origin.ItemType,
			ExpirationDate: origin.ExpirationDate,
			CreatedAt:      now,
			UpdatedAt:      now,
		}
		return unitStockRepo.Upsert(dest)
	}
	return unitStockRepo.UpdateQuantity(dest.ID, dest.Quantity+quantity)
}

// GetByID obtiene una requisición persistida.
func (uc *RequisitionUseCase) GetByID(id string) (*dto.RequisitionResponse, error) {
	requisition, err := uc.reqRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if requisition == nil {
		return nil, nil
	}
	return toRequisitionResponse(requisition), nil
}

// List lista requisiciones, opcionalmente de una sola unidad.
func (uc *RequisitionUseCase) List(ambulanceID string, limit, offset int) ([]dto.RequisitionResponse, error) {
	var (
		list []*entity.Requisition
		err  error
	)
	if ambulanceID != "" {
		list, err = uc.reqRepo.ListByAmbulance(ambulanceID, limit, offset)
	} else {
		list, err = uc.reqRepo.List(limit, offset)
	}
	if err != nil {
		return nil, err
	}
	items := make([]dto.RequisitionResponse, 0, len(list))
	for _, r := range list {
		items = append(items, *toRequisitionResponse(r))
	}
	return items, nil
}

func toRequisitionResponse(r *entity.Requisition) *dto.RequisitionResponse {
	items := make([]dto.ShortfallOrder, 0, len(r.Data.Items))
	for _, it := range r.Data.Items {
		items = append(items, dto.ShortfallOrder{
			Name:     it.Name,
			Quantity: it.Quantity,
			Category: it.Category,
			ItemType: string(it.ItemType),
		})
	}
	return &dto.RequisitionResponse{
		ID:          r.ID,
		AmbulanceID: r.AmbulanceID,
		UserID:      r.UserID,
		Date:        r.Date,
		Reason:      r.Data.Reason,
		Items:       items,
		CreatedAt:   r.CreatedAt,
	}
}
