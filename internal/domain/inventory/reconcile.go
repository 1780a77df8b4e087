// Package inventory contiene la lógica pura de inventario: reconciliación de
// stock contra estándares, ranking de faltantes críticos y la máquina de
// estados del checklist. Nada aquí toca la base de datos; todas las funciones
// son deterministas y seguras para llamadas concurrentes.
package inventory

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/frenchys-amb/ambutrack-api/internal/domain/entity"
)

// Shortfall es el resultado derivado de comparar stock actual contra el
// estándar de un ítem. Nunca se persiste; se calcula en cada reconciliación.
type Shortfall struct {
	Name        string
	Category    string
	ItemType    entity.ItemType
	Current     int
	Recommended int
	Missing     int // max(0, Recommended-Current); solo se reportan > 0
}

// Ratio devuelve el cociente de agotamiento current/recommended.
// 0 significa totalmente agotado; 1 significa stock completo.
func (s Shortfall) Ratio() decimal.Decimal {
	if s.Recommended <= 0 {
		return decimal.Zero
	}
	return decimal.NewFromInt(int64(s.Current)).
		Div(decimal.NewFromInt(int64(s.Recommended)))
}

// StockIndex indexa cantidades actuales por nombre normalizado dentro de una
// misma categoría: category → normalized_name → quantity.
type StockIndex map[string]map[string]int

// NewStockIndex construye el índice desde el stock a bordo de una unidad.
// Los medicamentos se agrupan bajo su propia categoría aunque la fila tenga
// otra etiqueta; el despacho es por ItemType, no por string.
func NewStockIndex(stock []entity.AmbulanceStock) StockIndex {
	idx := make(StockIndex)
	for _, s := range stock {
		cat := s.Category
		if s.ItemType == entity.ItemTypeMedication {
			cat = entity.CategoryMedicamentos
		}
		if idx[cat] == nil {
			idx[cat] = make(map[string]int)
		}
		idx[cat][s.NormalizedName] += s.Quantity
	}
	return idx
}

// Quantity devuelve la cantidad actual de un ítem; ausente cuenta como 0.
func (idx StockIndex) Quantity(category, normalizedName string) int {
	if m, ok := idx[category]; ok {
		return m[normalizedName]
	}
	return 0
}

// Reconcile compara cada estándar contra el stock indexado y devuelve los
// ítems con faltante (missing > 0), en el orden de entrada de los estándares.
// Estándares y stock deben compartir la misma normalización de nombres;
// el cruce es por igualdad exacta del nombre normalizado.
func Reconcile(standards []entity.Standard, stock StockIndex) []Shortfall {
	out := make([]Shortfall, 0, len(standards))
	for _, std := range standards {
		current := stock.Quantity(std.Category, std.NormalizedName)
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

// RankCritical ordena los faltantes de forma estable por cociente de
// agotamiento ascendente (los más agotados primero; empates conservan el
// orden de entrada) y trunca el resultado a los n más críticos.
func RankCritical(shortfalls []Shortfall, n int) []Shortfall {
	ranked := make([]Shortfall, len(shortfalls))
	copy(ranked, shortfalls)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Ratio().LessThan(ranked[j].Ratio())
	})
	if n >= 0 && len(ranked) > n {
		ranked = ranked[:n]
	}
	return ranked
}
