package inventory_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/frenchys-amb/ambutrack-api/internal/domain/entity"
	"github.com/frenchys-amb/ambutrack-api/internal/domain/inventory"
)

func std(category, name string, qty int) entity.Standard {
	return entity.Standard{
		Category:       category,
		NormalizedName: name,
		Quantity:       qty,
		ItemType:       entity.ItemTypeForCategory(category),
	}
}

func TestReconcile_SoloReportaFaltantes(t *testing.T) {
	standards := []entity.Standard{
		std(entity.CategoryMedicamentos, "adrenalina_1mg", 10),
		std(entity.CategoryCanalizacion, "cateter_18g", 10),
		std(entity.CategoryEquipoGeneral, "desfibrilador", 1),
	}
	stock := inventory.NewStockIndex([]entity.AmbulanceStock{
		{Category: entity.CategoryMedicamentos, ItemType: entity.ItemTypeMedication, NormalizedName: "adrenalina_1mg", Quantity: 3},
		{Category: entity.CategoryCanalizacion, ItemType: entity.ItemTypeEquipment, NormalizedName: "cateter_18g", Quantity: 15}, // sobrestock
		{Category: entity.CategoryEquipoGeneral, ItemType: entity.ItemTypeEquipment, NormalizedName: "desfibrilador", Quantity: 1},
	})

	got := inventory.Reconcile(standards, stock)

	require.Len(t, got, 1, "solo adrenalina tiene faltante")
	assert.Equal(t, "adrenalina_1mg", got[0].Name)
	assert.Equal(t, 3, got[0].Current)
	assert.Equal(t, 10, got[0].Recommended)
	assert.Equal(t, 7, got[0].Missing)
}

func TestReconcile_AusenteCuentaComoCero(t *testing.T) {
	standards := []entity.Standard{
		std(entity.CategorySignosVitales, "tensiometro", 1),
	}
	got := inventory.Reconcile(standards, inventory.NewStockIndex(nil))

	require.Len(t, got, 1)
	assert.Equal(t, 0, got[0].Current)
	assert.Equal(t, 1, got[0].Missing)
}

// Una fila de stock marcada como medicamento se agrupa bajo la categoría de
// medicamentos aunque traiga otra etiqueta de categoría: el despacho es por
// tipo, no por string.
func TestNewStockIndex_AgrupaMedicamentosPorTipo(t *testing.T) {
	idx := inventory.NewStockIndex([]entity.AmbulanceStock{
		{Category: entity.CategoryCanalizacion, ItemType: entity.ItemTypeMedication, NormalizedName: "lidocaina_2", Quantity: 3},
		{Category: entity.CategoryMedicamentos, ItemType: entity.ItemTypeMedication, NormalizedName: "lidocaina_2", Quantity: 2},
	})

	assert.Equal(t, 5, idx.Quantity(entity.CategoryMedicamentos, "lidocaina_2"))
	assert.Equal(t, 0, idx.Quantity(entity.CategoryCanalizacion, "lidocaina_2"))
}

func TestRankCritical_OrdenaPorAgotamiento(t *testing.T) {
	shortfalls := []inventory.Shortfall{
		{Name: "vendas", Current: 5, Recommended: 10, Missing: 5},      // ratio 0.5
		{Name: "adrenalina", Current: 0, Recommended: 10, Missing: 10}, // ratio 0, el más crítico
		{Name: "gasas", Current: 15, Recommended: 20, Missing: 5},      // ratio 0.75
		{Name: "jeringas", Current: 2, Recommended: 10, Missing: 8},    // ratio 0.2
	}

	got := inventory.RankCritical(shortfalls, 10)

	require.Len(t, got, 4)
	assert.Equal(t, "adrenalina", got[0].Name)
	assert.Equal(t, "jeringas", got[1].Name)
	assert.Equal(t, "vendas", got[2].Name)
	assert.Equal(t, "gasas", got[3].Name)
	// El slice de entrada no se reordena.
	assert.Equal(t, "vendas", shortfalls[0].Name)
}

func TestRankCritical_EmpatesConservanOrden(t *testing.T) {
	shortfalls := []inventory.Shortfall{
		{Name: "primero", Current: 1, Recommended: 2, Missing: 1},
		{Name: "segundo", Current: 5, Recommended: 10, Missing: 5},
		{Name: "tercero", Current: 2, Recommended: 4, Missing: 2},
	}

	got := inventory.RankCritical(shortfalls, 3)

	require.Len(t, got, 3)
	assert.Equal(t, "primero", got[0].Name)
	assert.Equal(t, "segundo", got[1].Name)
	assert.Equal(t, "tercero", got[2].Name)
}

func TestRankCritical_Trunca(t *testing.T) {
	shortfalls := make([]inventory.Shortfall, 15)
	for i := range shortfalls {
		shortfalls[i] = inventory.Shortfall{Name: "item", Current: i, Recommended: 20, Missing: 20 - i}
	}

	assert.Len(t, inventory.RankCritical(shortfalls, 10), 10)
	assert.Len(t, inventory.RankCritical(shortfalls, 20), 15)
	assert.Len(t, inventory.RankCritical(nil, 10), 0)
}

func TestShortfall_Ratio(t *testing.T) {
	assert.True(t, inventory.Shortfall{Current: 0, Recommended: 10}.Ratio().IsZero())
	assert.True(t, inventory.Shortfall{Current: 3, Recommended: 0}.Ratio().IsZero(), "estándar 0 no divide")

	half := inventory.Shortfall{Current: 5, Recommended: 10}.Ratio()
	assert.Equal(t, "0.5", half.String())
}
