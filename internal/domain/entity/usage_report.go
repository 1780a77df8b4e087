package entity

import "time"

// UsageItem es una línea de consumo reportada tras un servicio.
type UsageItem struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
}

// UsageReport representa el consumo de insumos de una unidad en una fecha.
// Al registrarse descuenta el stock a bordo de la unidad.
type UsageReport struct {
	ID          string
	AmbulanceID string
	UserID      string
	Date        string // YYYY-MM-DD
	Items       []UsageItem
	CreatedAt   time.Time
}
