package dto

import "time"

// CreateStorageItemRequest alta de un ítem en el almacén central.
// El tipo (equipo o medicamento) queda fijado por la categoría en este borde.
type CreateStorageItemRequest struct {
	Name           string  `json:"name" validate:"required"`
	Quantity       int     `json:"quantity" validate:"required,gt=0"`
	Category       string  `json:"category" validate:"required"`
	ExpirationDate *string `json:"expiration_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
}

// UpdateStorageItemRequest edición parcial de un ítem de almacén.
type UpdateStorageItemRequest struct {
	Name           *string `json:"name,omitempty"`
	Quantity       *int    `json:"quantity,omitempty" validate:"omitempty,min=0"`
	ExpirationDate *string `json:"expiration_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
}

// StorageItemResponse representación de un ítem del almacén central.
type StorageItemResponse struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	NormalizedName string    `json:"normalized_name"`
	Quantity       int       `json:"quantity"`
	Category       string    `json:"category"`
	ItemType       string    `json:"item_type"`
	ExpirationDate *string   `json:"expiration_date,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// StorageItemListResponse listado paginado del almacén.
type StorageItemListResponse struct {
	Items []StorageItemResponse `json:"items"`
	Page  PageResponse          `json:"page"`
}
