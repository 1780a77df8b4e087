package dto

import "time"

// CreateAmbulanceRequest alta de una unidad.
type CreateAmbulanceRequest struct {
	UnitID string `json:"unit_id" validate:"required"`
}

// UpdateAmbulanceRequest edición parcial de una unidad.
type UpdateAmbulanceRequest struct {
	UnitID *string `json:"unit_id,omitempty"`
	Status *string `json:"status,omitempty" validate:"omitempty,oneof=active maintenance inactive"`
}

// AmbulanceResponse representación de una unidad.
type AmbulanceResponse struct {
	ID        string    `json:"id"`
	UnitID    string    `json:"unit_id"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// AmbulanceListResponse listado paginado de unidades.
type AmbulanceListResponse struct {
	Items []AmbulanceResponse `json:"items"`
	Page  PageResponse        `json:"page"`
}

// AmbulanceStockItemDTO una fila del inventario a bordo.
type AmbulanceStockItemDTO struct {
	ID             string  `json:"id"`
	NormalizedName string  `json:"normalized_name"`
	Quantity       int     `json:"quantity"`
	Category       string  `json:"category"`
	ItemType       string  `json:"item_type"`
	ExpirationDate *string `json:"expiration_date,omitempty"`
}
