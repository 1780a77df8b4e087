package dto

import "time"

// CreateStandardRequest alta de un estándar de dotación (solo admin).
type CreateStandardRequest struct {
	Name     string `json:"name" validate:"required"`
	Category string `json:"category" validate:"required"`
	Quantity int    `json:"quantity" validate:"required,gt=0"`
}

// UpdateStandardRequest cambio de cantidad recomendada.
type UpdateStandardRequest struct {
	Quantity int `json:"quantity" validate:"required,gt=0"`
}

// StandardResponse representación de un estándar.
type StandardResponse struct {
	ID             string    `json:"id"`
	Category       string    `json:"category"`
	NormalizedName string    `json:"normalized_name"`
	Quantity       int       `json:"quantity"`
	ItemType       string    `json:"item_type"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// StandardListResponse estándares agrupados tal como se listan.
type StandardListResponse struct {
	Items []StandardResponse `json:"items"`
	Total int                `json:"total"`
}
