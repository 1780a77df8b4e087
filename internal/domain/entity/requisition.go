package entity

import "time"

// RequisitionItem es una línea de requisición ya normalizada y tipada.
type RequisitionItem struct {
	Name     string   `json:"name"`
	Quantity int      `json:"quantity"`
	Category string   `json:"category"`
	ItemType ItemType `json:"item_type"`
}

// RequisitionData es el cuerpo JSONB versionado de una requisición.
// Reemplaza los formatos legacy (mapa nombre→cantidad) con un único esquema.
type RequisitionData struct {
	GeneratedAt time.Time         `json:"generated_at"`
	Reason      string            `json:"reason"`
	Items       []RequisitionItem `json:"items"`
}

// Requisition representa una solicitud de reposición de una unidad.
// Inmutable después de su creación.
type Requisition struct {
	ID          string
	AmbulanceID string
	UserID      string
	Date        string // YYYY-MM-DD
	Data        RequisitionData
	CreatedAt   time.Time
}
