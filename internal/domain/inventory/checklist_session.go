package inventory

import (
	"github.com/frenchys-amb/ambutrack-api/internal/domain/entity"
)

// ChecklistSession es el estado de una verificación en curso, propiedad del
// caller (handler o cliente) en lugar de estado ambiente. Cada ítem del
// catálogo está Pendiente o Confirmado; la sesión mantiene además el
// snapshot de cantidades sobre el que se calculan los faltantes.
type ChecklistSession struct {
	standards []entity.Standard
	// byName resuelve un estándar por nombre normalizado (único por categoría,
	// y en la práctica por catálogo completo).
	byName     map[string]entity.Standard
	quantities map[string]int  // normalized_name → cantidad observada
	confirmed  map[string]bool // normalized_name → Confirmado
}

// NewChecklistSession crea la sesión a partir del catálogo de estándares y el
// stock actual de la unidad. Todos los ítems inician en Pendiente.
func NewChecklistSession(standards []entity.Standard, stock []entity.AmbulanceStock) *ChecklistSession {
	s := &ChecklistSession{
		standards:  standards,
		byName:     make(map[string]entity.Standard, len(standards)),
		quantities: make(map[string]int, len(standards)),
		confirmed:  make(map[string]bool, len(standards)),
	}
	for _, std := range standards {
		s.byName[std.NormalizedName] = std
	}
	idx := NewStockIndex(stock)
	for _, std := range standards {
		s.quantities[std.NormalizedName] = idx.Quantity(std.Category, std.NormalizedName)
	}
	return s
}

// SetQuantity registra la cantidad observada de un ítem y lo marca Confirmado.
// Cantidades negativas se tratan como 0.
func (s *ChecklistSession) SetQuantity(normalizedName string, qty int) {
	if _, ok := s.byName[normalizedName]; !ok {
		return
	}
	if qty < 0 {
		qty = 0
	}
	s.quantities[normalizedName] = qty
	s.confirmed[normalizedName] = true
}

// Confirm marca un ítem Pendiente como Confirmado. Si la cantidad observada
// es 0, la autocompleta con la cantidad recomendada (comportamiento del
// chequeo rápido: marcar implica "está completo").
func (s *ChecklistSession) Confirm(normalizedName string) {
	std, ok := s.byName[normalizedName]
	if !ok {
		return
	}
	if s.quantities[normalizedName] == 0 {
		s.quantities[normalizedName] = std.Quantity
	}
	s.confirmed[normalizedName] = true
}

// Unconfirm regresa un ítem Confirmado a Pendiente.
func (s *ChecklistSession) Unconfirm(normalizedName string) {
	delete(s.confirmed, normalizedName)
}

// QuickFillSection fija todos los ítems de una categoría a su cantidad
// recomendada y los confirma.
func (s *ChecklistSession) QuickFillSection(category string) {
	for _, std := range s.standards {
		if std.Category != category {
			continue
		}
		s.quantities[std.NormalizedName] = std.Quantity
		s.confirmed[std.NormalizedName] = true
	}
}

// Quantity devuelve la cantidad observada de un ítem (0 si no se ha tocado).
func (s *ChecklistSession) Quantity(normalizedName string) int {
	return s.quantities[normalizedName]
}

// Confirmed indica si el ítem está Confirmado.
func (s *ChecklistSession) Confirmed(normalizedName string) bool {
	return s.confirmed[normalizedName]
}

// Progress devuelve el porcentaje (0-100) de ítems del catálogo confirmados.
func (s *ChecklistSession) Progress() int {
	if len(s.standards) == 0 {
		return 0
	}
	done := 0
	for _, std := range s.standards {
		if s.confirmed[std.NormalizedName] {
			done++
		}
	}
	return done * 100 / len(s.standards)
}

// Complete indica si todos los ítems del catálogo, en todas las secciones,
// están Confirmados. Solo entonces un checklist puede cerrarse como
// "completo sin faltantes".
func (s *ChecklistSession) Complete() bool {
	for _, std := range s.standards {
		if !s.confirmed[std.NormalizedName] {
			return false
		}
	}
	return len(s.standards) > 0
}

// IncompleteSections lista las categorías que aún tienen ítems Pendientes.
func (s *ChecklistSession) IncompleteSections() []string {
	pending := make(map[string]bool)
	var order []string
	for _, std := range s.standards {
		if !pending[std.Category] && !s.confirmed[std.NormalizedName] {
			pending[std.Category] = true
			order = append(order, std.Category)
		}
	}
	return order
}

// Shortfalls reconcilia las cantidades observadas contra los estándares de la
// sesión y devuelve los faltantes, listos para prellenar una requisición.
func (s *ChecklistSession) Shortfalls() []Shortfall {
	out := make([]Shortfall, 0)
	for _, std := range s.standards {
		current := s.quantities[std.NormalizedName]
		missing := std.Quantity - current
		if missing <= 0 {
			continue
		}
		out = append(out, Shortfall{
			Name:        std.NormalizedName,
			Category:    std.Category,
			ItemType:    std.ItemType,
			Current:     current,
			Recommended: std.Quantity,
			Missing:     missing,
		})
	}
	return out
}

// ItemsMap exporta el mapa normalized_name → confirmado para persistirlo en el
// registro del checklist.
func (s *ChecklistSession) ItemsMap() map[string]bool {
	out := make(map[string]bool, len(s.standards))
	for _, std := range s.standards {
		out[std.NormalizedName] = s.confirmed[std.NormalizedName]
	}
	return out
}
