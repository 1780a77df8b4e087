package entity

import "time"

// StorageItem representa un ítem del almacén central (tabla consolidada de
// equipos y medicamentos). Quantity es un entero no negativo.
type StorageItem struct {
	ID             string
	Name           string
	NormalizedName string
	Quantity       int
	Category       string
	ItemType       ItemType
	ExpirationDate *time.Time // solo medicamentos
	CreatedBy      string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
