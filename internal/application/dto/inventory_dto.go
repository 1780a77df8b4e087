package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ShortfallDTO un faltante derivado de la reconciliación. Nunca se persiste.
type ShortfallDTO struct {
	Name        string `json:"name"`
	Section     string `json:"section"`
	ItemType    string `json:"item_type"`
	Current     int    `json:"current"`
	Recommended int    `json:"recommended"`
	Missing     int    `json:"missing"`
}

// InventoryStatusResponse estado de una unidad: por categoría, cada ítem del
// estándar con su cantidad actual, recomendada y faltante.
type InventoryStatusResponse struct {
	AmbulanceID string                    `json:"ambulance_id"`
	Sections    map[string][]ShortfallDTO `json:"sections"` // incluye missing == 0
	Shortfalls  []ShortfallDTO            `json:"shortfalls"`
}

// RequisitionItemRequest una línea del carrito de requisición. La cantidad
// puede venir editada a mano respecto del faltante calculado.
type RequisitionItemRequest struct {
	Name     string `json:"name" validate:"required"`
	Quantity int    `json:"quantity" validate:"required,gt=0"`
	Category string `json:"category" validate:"required"`
}

// CreateRequisitionRequest body para POST /api/requisitions.
type CreateRequisitionRequest struct {
	AmbulanceID string                   `json:"ambulance_id" validate:"required"`
	Date        string                   `json:"date" validate:"required,datetime=2006-01-02"`
	Reason      string                   `json:"reason"`
	Items       []RequisitionItemRequest `json:"items" validate:"required,min=1,dive"`
}

// RequisitionItemResult resultado por ítem de la transferencia automática.
// La política de éxito parcial entre ítems se conserva del comportamiento
// observado: el fallo de un ítem no revierte los demás.
type RequisitionItemResult struct {
	Name        string `json:"name"`
	Quantity    int    `json:"quantity"`
	Transferred bool   `json:"transferred"`
	Error       string `json:"error,omitempty"`
}

// CreateRequisitionResponse la requisición persistida más el detalle por ítem.
type CreateRequisitionResponse struct {
	ID          string                  `json:"id"`
	AmbulanceID string                  `json:"ambulance_id"`
	Date        string                  `json:"date"`
	Results     []RequisitionItemResult `json:"results"`
	Transferred int                     `json:"transferred"`
	Failed      int                     `json:"failed"`
}

// RequisitionResponse lectura de una requisición persistida.
type RequisitionResponse struct {
	ID          string           `json:"id"`
	AmbulanceID string           `json:"ambulance_id"`
	UserID      string           `json:"user_id"`
	Date        string           `json:"date"`
	Reason      string           `json:"reason"`
	Items       []ShortfallOrder `json:"items"`
	CreatedAt   time.Time        `json:"created_at"`
}

// ShortfallOrder una línea de una requisición ya persistida.
type ShortfallOrder struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
	Category string `json:"category"`
	ItemType string `json:"item_type"`
}

// RecordUsageRequest body para POST /api/usage: consumo por servicio.
type RecordUsageRequest struct {
	AmbulanceID string             `json:"ambulance_id" validate:"required"`
	Date        string             `json:"date" validate:"required,datetime=2006-01-02"`
	Items       []UsageItemRequest `json:"items" validate:"required,min=1,dive"`
}

// UsageItemRequest una línea de consumo.
type UsageItemRequest struct {
	Name     string `json:"name" validate:"required"`
	Quantity int    `json:"quantity" validate:"required,gt=0"`
}

// ChecklistItemCheck estado reportado de un ítem del catálogo durante el
// checklist: cantidad observada (opcional) y confirmación explícita.
type ChecklistItemCheck struct {
	Name      string `json:"name" validate:"required"`
	Quantity  *int   `json:"quantity,omitempty" validate:"omitempty,min=0"`
	Confirmed bool   `json:"confirmed"`
}

// SubmitChecklistRequest body para POST /api/checklists.
type SubmitChecklistRequest struct {
	AmbulanceID        string               `json:"ambulance_id" validate:"required"`
	Date               string               `json:"date" validate:"required,datetime=2006-01-02"`
	Shift              string               `json:"shift"`
	Mileage            decimal.Decimal      `json:"mileage"`
	Fuel               string               `json:"fuel" validate:"required,oneof=Full 3/4 1/2 1/4 E"`
	OxygenMain         decimal.Decimal      `json:"oxygen_main"`
	OxygenPortable     decimal.Decimal      `json:"oxygen_portable"`
	OilLevel           string               `json:"oil_level" validate:"omitempty,oneof=Ok Bajo Critico"`
	TransmissionLevel  string               `json:"transmission_level" validate:"omitempty,oneof=Ok Bajo Critico"`
	BrakeFluidLevel    string               `json:"brake_fluid_level" validate:"omitempty,oneof=Ok Bajo Critico"`
	SteeringFluidLevel string               `json:"steering_fluid_level" validate:"omitempty,oneof=Ok Bajo Critico"`
	CoolantLevel       string               `json:"coolant_level" validate:"omitempty,oneof=Ok Bajo Critico"`
	Notes              string               `json:"notes"`
	Items              []ChecklistItemCheck `json:"items" validate:"dive"`
}

// SubmitChecklistResponse resultado del guardado: estado final y faltantes
// listos para prellenar la requisición.
type SubmitChecklistResponse struct {
	ID           string         `json:"id"`
	Status       string         `json:"status"`
	Progress     int            `json:"progress"`
	MissingCount int            `json:"missing_count"`
	Shortfalls   []ShortfallDTO `json:"shortfalls"`
}
