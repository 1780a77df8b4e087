package repository

import "github.com/frenchys-amb/ambutrack-api/internal/domain/entity"

// ActivityRepository define el puerto para la bitácora de actividad (append-only).
type ActivityRepository interface {
	Append(entry *entity.ActivityEntry) error
	List(limit, offset int) ([]*entity.ActivityEntry, error)
}
