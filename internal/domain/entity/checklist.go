package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de un checklist al momento de guardarse.
const (
	ChecklistStatusComplete      = "completo"      // todos los ítems confirmados y sin faltantes
	ChecklistStatusWithShortfall = "con_faltantes" // se guardó pero arrastra faltantes
)

// Niveles de combustible aceptados en el reporte mecánico.
const (
	FuelFull          = "Full"
	FuelThreeQuarters = "3/4"
	FuelHalf          = "1/2"
	FuelQuarter       = "1/4"
	FuelEmpty         = "E"
)

// MechanicalState agrupa el estado mecánico y operativo reportado en el checklist.
// Las presiones de oxígeno y el kilometraje se guardan como NUMERIC.
type MechanicalState struct {
	Mileage            decimal.Decimal
	Fuel               string          // Full, 3/4, 1/2, 1/4, E
	OxygenMain         decimal.Decimal // presión tanque principal (PSI)
	OxygenPortable     decimal.Decimal // presión tanque portátil (PSI)
	OilLevel           string          // Ok, Bajo, Critico
	TransmissionLevel  string
	BrakeFluidLevel    string
	SteeringFluidLevel string
	CoolantLevel       string
}

// Checklist representa la verificación diaria de una unidad: estado mecánico,
// mapa de ítems confirmados y el estado final (completo o con faltantes).
type Checklist struct {
	ID           string
	AmbulanceID  string
	UserID       string
	Date         string // YYYY-MM-DD
	Shift        string
	Mechanical   MechanicalState
	Items        map[string]bool // normalized_name → confirmado
	Status       string
	MissingCount int
	Notes        string
	CreatedAt    time.Time
}
