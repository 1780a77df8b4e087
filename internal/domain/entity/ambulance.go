package entity

import "time"

// Ambulance representa una unidad de la flota.
type Ambulance struct {
	ID        string
	UnitID    string // identificador visible de la unidad (ej: "AMB-03")
	Status    string // active, maintenance, inactive
	CreatedAt time.Time
	UpdatedAt time.Time
}
