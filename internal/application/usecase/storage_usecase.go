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
	"github.com/frenchys-amb/ambutrack-api/pkg/normalize"
)

// StorageUseCase casos de uso CRUD para el almacén central.
// El nombre se normaliza y el ItemType se fija desde la categoría en el alta;
// ninguna operación posterior vuelve a derivarlos.
type StorageUseCase struct {
	repo  repository.StorageItemRepository
	audit *audit.Recorder
}

// NewStorageUseCase construye el caso de uso.
func NewStorageUseCase(repo repository.StorageItemRepository, recorder *audit.Recorder) *StorageUseCase {
	return &StorageUseCase{repo: repo, audit: recorder}
}

// Create da de alta un ítem en el almacén. Si ya existe un ítem con el mismo
// nombre normalizado devuelve ErrDuplicate: las reposiciones se hacen por Update.
func (uc *StorageUseCase) Create(ctx context.Context, actorID string, in dto.CreateStorageItemRequest) (*dto.StorageItemResponse, error) {
	if !entity.ValidCategory(in.Category) {
		return nil, domain.ErrInvalidInput
	}
	normalized := normalize.Name(in.Name)
	if normalized == "" {
		return nil, domain.ErrInvalidInput
	}
	existing, err := uc.repo.GetByNormalizedName(normalized)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	expiration, err := parseDatePtr(in.ExpirationDate)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	item := &entity.StorageItem{
		ID:             uuid.New().String(),
		Name:           in.Name,
		NormalizedName: normalized,
		Quantity:       in.Quantity,
		Category:       in.Category,
		ItemType:       entity.ItemTypeForCategory(in.Category),
		ExpirationDate: expiration,
		CreatedBy:      actorID,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := uc.repo.Create(item); err != nil {
		return nil, err
	}
	uc.audit.Record(ctx, actorID, "create", "storage_items", item.ID, map[string]any{
		"name": item.NormalizedName, "quantity": item.Quantity,
	})
	return toStorageItemResponse(item), nil
}

// GetByID obtiene un ítem por ID.
func (uc *StorageUseCase) GetByID(id string) (*dto.StorageItemResponse, error) {
	item, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, nil
	}
	return toStorageItemResponse(item), nil
}

// Update edición parcial: nombre, cantidad o fecha de vencimiento.
// La categoría (y por tanto el ItemType) no cambia después del alta.
func (uc *StorageUseCase) Update(ctx context.Context, actorID, id string, in dto.UpdateStorageItemRequest) (*dto.StorageItemResponse, error) {
	item, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, nil
	}
	if in.Name != nil {
		normalized := normalize.Name(*in.Name)
		if normalized == "" {
			return nil, domain.ErrInvalidInput
		}
		item.Name = *in.Name
		item.NormalizedName = normalized
	}
	if in.Quantity != nil {
		item.Quantity = *in.Quantity
	}
	if in.ExpirationDate != nil {
		expiration, err := parseDatePtr(in.ExpirationDate)
		if err != nil {
			return nil, domain.ErrInvalidInput
		}
		item.ExpirationDate = expiration
	}
	item.UpdatedAt = time.Now()
	if err := uc.repo.Update(item); err != nil {
		return nil, err
	}
	uc.audit.Record(ctx, actorID, "update", "storage_items", item.ID, map[string]any{
		"name": item.NormalizedName, "quantity": item.Quantity,
	})
	return toStorageItemResponse(item), nil
}

// List lista ítems del almacén, opcionalmente filtrados por categoría.
func (uc *StorageUseCase) List(category string, limit, offset int) (*dto.StorageItemListResponse, error) {
	list, err := uc.repo.List(category, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.StorageItemResponse, 0, len(list))
	for _, it := range list {
		items = append(items, *toStorageItemResponse(it))
	}
	return &dto.StorageItemListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// ListByType lista ítems por dominio (equipo o medicamento).
func (uc *StorageUseCase) ListByType(itemType string, limit, offset int) (*dto.StorageItemListResponse, error) {
	t := entity.ItemType(itemType)
	if t != entity.ItemTypeEquipment && t != entity.ItemTypeMedication {
		return nil, domain.ErrInvalidInput
	}
	list, err := uc.repo.ListByType(t, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.StorageItemResponse, 0, len(list))
	for _, it := range list {
		items = append(items, *toStorageItemResponse(it))
	}
	return &dto.StorageItemListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Delete elimina un ítem del almacén por ID.
func (uc *StorageUseCase) Delete(ctx context.Context, actorID, id string) error {
	if err := uc.repo.Delete(id); err != nil {
		return err
	}
	uc.audit.Record(ctx, actorID, "delete", "storage_items", id, nil)
	return nil
}

func toStorageItemResponse(it *entity.StorageItem) *dto.StorageItemResponse {
	resp := &dto.StorageItemResponse{
		ID:             it.ID,
		Name:           it.Name,
		NormalizedName: it.NormalizedName,
		Quantity:       it.Quantity,
		Category:       it.Category,
		ItemType:       string(it.ItemType),
		CreatedAt:      it.CreatedAt,
		UpdatedAt:      it.UpdatedAt,
	}
	if it.ExpirationDate != nil {
		d := it.ExpirationDate.Format("2006-01-02")
		resp.ExpirationDate = &d
	}
	return resp
}

// parseDatePtr parsea una fecha YYYY-MM-DD opcional.
func parseDatePtr(s *string) (*time.Time, error) {
	if s == nil || *s == "" {
		return nil, nil
	}
	t, err := time.Parse("2006-01-02", *s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
