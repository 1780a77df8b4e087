package entity

import (
	"encoding/json"
	"time"
)

// ActivityEntry es un registro append-only de auditoría: quién hizo qué sobre
// qué entidad. Details guarda contexto libre en JSON.
type ActivityEntry struct {
	ID         string
	UserID     string
	Action     string // create, update, delete
	EntityType string // requisitions, checklists, storage_items, ...
	EntityID   string
	Details    json.RawMessage
	CreatedAt  time.Time
}
