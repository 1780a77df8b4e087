package usecase

import (
	"time"

	"github.com/frenchys-amb/ambutrack-api/internal/application/dto"
	"github.com/frenchys-amb/ambutrack-api/internal/domain/repository"
)

// ActivityUseCase lectura de la bitácora de actividad (solo admin).
type ActivityUseCase struct {
	repo repository.ActivityRepository
}

// NewActivityUseCase construye el caso de uso.
func NewActivityUseCase(repo repository.ActivityRepository) *ActivityUseCase {
	return &ActivityUseCase{repo: repo}
}

// List devuelve la bitácora paginada, más reciente primero.
func (uc *ActivityUseCase) List(limit, offset int) (*dto.ActivityListResponse, error) {
	entries, err := uc.repo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ActivityEntryResponse, 0, len(entries))
	for _, e := range entries {
		items = append(items, dto.ActivityEntryResponse{
			ID:         e.ID,
			UserID:     e.UserID,
			Action:     e.Action,
			EntityType: e.EntityType,
			EntityID:   e.EntityID,
			Details:    string(e.Details),
			CreatedAt:  e.CreatedAt.Format(time.RFC3339),
		})
	}
	return &dto.ActivityListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}
