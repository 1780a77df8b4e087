package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/frenchys-amb/ambutrack-api/internal/application/audit"
	"github.com/frenchys-amb/ambutrack-api/internal/application/dto"
	"github.com/frenchys-amb/ambutrack-api/internal/domain"
	"github.com/frenchys-amb/ambutrack-api/internal/domain/entity"
	"github.com/frenchys-amb/ambutrack-api/internal/domain/repository"
)

// AmbulanceUseCase casos de uso CRUD para las unidades de la flota.
type AmbulanceUseCase struct {
	repo      repository.AmbulanceRepository
	stockRepo repository.AmbulanceStockRepository
	audit     *audit.Recorder
}

// NewAmbulanceUseCase construye el caso de uso.
func NewAmbulanceUseCase(
	repo repository.AmbulanceRepository,
	stockRepo repository.AmbulanceStockRepository,
	recorder *audit.Recorder,
) *AmbulanceUseCase {
	return &AmbulanceUseCase{repo: repo, stockRepo: stockRepo, audit: recorder}
}

// Create da de alta una unidad. El unit_id visible debe ser único.
func (uc *AmbulanceUseCase) Create(ctx context.Context, actorID string, in dto.CreateAmbulanceRequest) (*dto.AmbulanceResponse, error) {
	existing, err := uc.repo.GetByUnitID(in.UnitID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	now := time.Now()
	ambulance := &entity.Ambulance{
		ID:        uuid.New().String(),
		UnitID:    in.UnitID,
		Status:    "active",
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(ambulance); err != nil {
		return nil, err
	}
	uc.audit.Record(ctx, actorID, "create", "ambulances", ambulance.ID, map[string]any{"unit_id": ambulance.UnitID})
	return toAmbulanceResponse(ambulance), nil
}

// GetByID obtiene una unidad por ID.
func (uc *AmbulanceUseCase) GetByID(id string) (*dto.AmbulanceResponse, error) {
	ambulance, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if ambulance == nil {
		return nil, nil
	}
	return toAmbulanceResponse(ambulance), nil
}

// Update edición parcial de una unidad (identificador visible o estado).
func (uc *AmbulanceUseCase) Update(ctx context.Context, actorID, id string, in dto.UpdateAmbulanceRequest) (*dto.AmbulanceResponse, error) {
	ambulance, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if ambulance == nil {
		return nil, nil
	}
	if in.UnitID != nil {
		ambulance.UnitID = *in.UnitID
	}
	if in.Status != nil {
		ambulance.Status = *in.Status
	}
	ambulance.UpdatedAt = time.Now()
	if err := uc.repo.Update(ambulance); err != nil {
		return nil, err
	}
	uc.audit.Record(ctx, actorID, "update", "ambulances", ambulance.ID, nil)
	return toAmbulanceResponse(ambulance), nil
}

// List lista unidades con paginación.
func (uc *AmbulanceUseCase) List(limit, offset int) (*dto.AmbulanceListResponse, error) {
	list, err := uc.repo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.AmbulanceResponse, 0, len(list))
	for _, a := range list {
		items = append(items, *toAmbulanceResponse(a))
	}
	return &dto.AmbulanceListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Stock devuelve el inventario a bordo de una unidad.
func (uc *AmbulanceUseCase) Stock(ambulanceID string) ([]dto.AmbulanceStockItemDTO, error) {
	ambulance, err := uc.repo.GetByID(ambulanceID)
	if err != nil {
		return nil, err
	}
	if ambulance == nil {
		return nil, domain.ErrNotFound
	}
	stock, err := uc.stockRepo.ListByAmbulance(ambulanceID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.AmbulanceStockItemDTO, 0, len(stock))
	for _, s := range stock {
		item := dto.AmbulanceStockItemDTO{
			ID:             s.ID,
			NormalizedName: s.NormalizedName,
			Quantity:       s.Quantity,
			Category:       s.Category,
			ItemType:       string(s.ItemType),
		}
		if s.ExpirationDate != nil {
			d := s.ExpirationDate.Format("2006-01-02")
			item.ExpirationDate = &d
		}
		items = append(items, item)
	}
	return items, nil
}

// Delete elimina una unidad por ID.
func (uc *AmbulanceUseCase) Delete(ctx context.Context, actorID, id string) error {
	if err := uc.repo.Delete(id); err != nil {
		return err
	}
	uc.audit.Record(ctx, actorID, "delete", "ambulances", id, nil)
	return nil
}

func toAmbulanceResponse(a *entity.Ambulance) *dto.AmbulanceResponse {
	return &dto.AmbulanceResponse{
		ID:        a.ID,
		UnitID:    a.UnitID,
		Status:    a.Status,
		CreatedAt: a.CreatedAt,
		UpdatedAt: a.UpdatedAt,
	}
}
