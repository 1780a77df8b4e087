package entity

// ItemType distingue el dominio de un ítem de inventario. La decisión se toma
// una sola vez en el borde del modelo de datos; la lógica de transferencias
// despacha sobre este tipo y nunca vuelve a derivarlo de la categoría.
type ItemType string

const (
	ItemTypeEquipment  ItemType = "equipment"
	ItemTypeMedication ItemType = "medication"
)

// Categorías de inventario de una unidad (secciones del checklist).
const (
	CategorySignosVitales = "signos_vitales"
	CategoryAireOxigeno   = "aire_oxigeno"
	CategoryCanalizacion  = "canalizacion"
	CategoryMiscelaneos   = "miscelaneos"
	CategoryMedicamentos  = "medicamentos"
	CategoryEntubacion    = "entubacion"
	CategoryEquipoGeneral = "equipo_general"
)

// Categories lista las categorías en el orden en que se presentan en el checklist.
var Categories = []string{
	CategorySignosVitales,
	CategoryAireOxigeno,
	CategoryCanalizacion,
	CategoryMiscelaneos,
	CategoryMedicamentos,
	CategoryEntubacion,
	CategoryEquipoGeneral,
}

// ItemTypeForCategory fija el ItemType en el borde (API, seeder) a partir de la
// categoría declarada. Solo "medicamentos" es dominio de farmacia.
func ItemTypeForCategory(category string) ItemType {
	if category == CategoryMedicamentos {
		return ItemTypeMedication
	}
	return ItemTypeEquipment
}

// ValidCategory indica si la categoría pertenece al catálogo de secciones.
func ValidCategory(category string) bool {
	for _, c := range Categories {
		if c == category {
			return true
		}
	}
	return false
}
