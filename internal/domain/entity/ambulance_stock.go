package entity

import "time"

// AmbulanceStock representa el stock de un ítem a bordo de una unidad.
// La llave lógica es (ambulance_id, normalized_name); ItemMasterID referencia
// el ítem del almacén central del que proviene.
type AmbulanceStock struct {
	ID             string
	AmbulanceID    string
	ItemMasterID   string
	NormalizedName string
	Quantity       int
	Category       string
	ItemType       ItemType
	ExpirationDate *time.Time // solo medicamentos
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
