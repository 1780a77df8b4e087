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

// StandardUseCase administración del catálogo de estándares de dotación.
// Un estándar es único por (categoría, nombre normalizado).
type StandardUseCase struct {
	repo  repository.StandardRepository
	audit *audit.Recorder
}

// NewStandardUseCase construye el caso de uso.
func NewStandardUseCase(repo repository.StandardRepository, recorder *audit.Recorder) *StandardUseCase {
	return &StandardUseCase{repo: repo, audit: recorder}
}

// Create agrega un estándar. Devuelve ErrDuplicate si la categoría ya tiene
// un ítem con el mismo nombre normalizado.
func (uc *StandardUseCase) Create(ctx context.Context, actorID string, in dto.CreateStandardRequest) (*dto.StandardResponse, error) {
	if !entity.ValidCategory(in.Category) {
		return nil, domain.ErrInvalidInput
	}
	normalized := normalize.Name(in.Name)
	if normalized == "" {
		return nil, domain.ErrInvalidInput
	}
	existing, err := uc.repo.GetByCategoryAndName(in.Category, normalized)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	now := time.Now()
	standard := &entity.Standard{
		ID:             uuid.New().String(),
		Category:       in.Category,
		NormalizedName: normalized,
		Quantity:       in.Quantity,
		ItemType:       entity.ItemTypeForCategory(in.Category),
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := uc.repo.Create(standard); err != nil {
		return nil, err
	}
	uc.audit.Record(ctx, actorID, "create", "inventory_standards", standard.ID, map[string]any{
		"category": standard.Category, "name": standard.NormalizedName, "quantity": standard.Quantity,
	})
	return toStandardResponse(standard), nil
}

// UpdateQuantity cambia la cantidad recomendada de un estándar.
func (uc *StandardUseCase) UpdateQuantity(ctx context.Context, actorID, id string, in dto.UpdateStandardRequest) (*dto.StandardResponse, error) {
	standard, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if standard == nil {
		return nil, nil
	}
	if err := uc.repo.UpdateQuantity(id, in.Quantity); err != nil {
		return nil, err
	}
	standard.Quantity = in.Quantity
	standard.UpdatedAt = time.Now()
	uc.audit.Record(ctx, actorID, "update", "inventory_standards", id, map[string]any{
		"name": standard.NormalizedName, "quantity": in.Quantity,
	})
	return toStandardResponse(standard), nil
}

// List devuelve el catálogo completo, en el orden de secciones del checklist.
func (uc *StandardUseCase) List() (*dto.StandardListResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	items := make([]dto.StandardResponse, 0, len(list))
	for _, s := range list {
		items = append(items, *toStandardResponse(s))
	}
	return &dto.StandardListResponse{Items: items, Total: len(items)}, nil
}

// ListByCategory devuelve los estándares de una sección.
func (uc *StandardUseCase) ListByCategory(category string) (*dto.StandardListResponse, error) {
	if !entity.ValidCategory(category) {
		return nil, domain.ErrInvalidInput
	}
	list, err := uc.repo.ListByCategory(category)
	if err != nil {
		return nil, err
	}
	items := make([]dto.StandardResponse, 0, len(list))
	for _, s := range list {
		items = append(items, *toStandardResponse(s))
	}
	return &dto.StandardListResponse{Items: items, Total: len(items)}, nil
}

// Delete elimina un estándar por ID.
func (uc *StandardUseCase) Delete(ctx context.Context, actorID, id string) error {
	if err := uc.repo.Delete(id); err != nil {
		return err
	}
	uc.audit.Record(ctx, actorID, "delete", "inventory_standards", id, nil)
	return nil
}

func toStandardResponse(s *entity.Standard) *dto.StandardResponse {
	return &dto.StandardResponse{
		ID:             s.ID,
		Category:       s.Category,
		NormalizedName: s.NormalizedName,
		Quantity:       s.Quantity,
		ItemType:       string(s.ItemType),
		CreatedAt:      s.CreatedAt,
		UpdatedAt:      s.UpdatedAt,
	}
}
