// Package audit registra la bitácora de actividad de los casos de uso.
package audit

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"github.com/frenchys-amb/ambutrack-api/internal/domain/entity"
	"github.com/frenchys-amb/ambutrack-api/internal/domain/repository"
	"github.com/frenchys-amb/ambutrack-api/pkg/logger"
)

// Recorder escribe entradas de auditoría en modo best-effort: un fallo al
// registrar la bitácora nunca debe abortar la operación que la originó.
type Recorder struct {
	repo repository.ActivityRepository
	log  *logger.Logger
}

// NewRecorder construye el recorder.
func NewRecorder(repo repository.ActivityRepository, log *logger.Logger) *Recorder {
	return &Recorder{repo: repo, log: log}
}

// Record agrega una entrada a la bitácora. details se serializa a JSON.
func (r *Recorder) Record(_ context.Context, userID, action, entityType, entityID string, details map[string]any) {
	if r == nil || r.repo == nil {
		return
	}
	raw, err := json.Marshal(details)
	if err != nil {
		raw = nil
	}
	entry := &entity.ActivityEntry{
		ID:         uuid.New().String(),
		UserID:     userID,
		Action:     action,
		EntityType: entityType,
		EntityID:   entityID,
		Details:    raw,
		CreatedAt:  time.Now(),
	}
	if err := r.repo.Append(entry); err != nil && r.log != nil {
		r.log.Warn().Err(err).
			Str("entity_type", entityType).
			Str("action", action).
			Msg("no se pudo registrar actividad")
	}
}
