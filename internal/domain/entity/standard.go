package entity

import "time"

// Standard representa la cantidad recomendada de un ítem por unidad.
// Única por (category, normalized_name); administrada por el rol admin y
// leída por el motor de reconciliación.
type Standard struct {
	ID             string
	Category       string
	NormalizedName string
	Quantity       int
	ItemType       ItemType
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
