package inventory_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/frenchys-amb/ambutrack-api/internal/domain/entity"
	"github.com/frenchys-amb/ambutrack-api/internal/domain/inventory"
)

func catalogoMinimo() []entity.Standard {
	return []entity.Standard{
		std(entity.CategorySignosVitales, "tensiometro", 1),
		std(entity.CategorySignosVitales, "estetoscopio", 2),
		std(entity.CategoryMedicamentos, "adrenalina_1mg", 10),
		std(entity.CategoryMedicamentos, "atropina_05mg", 10),
	}
}

// Marcar un ítem sin cantidad observada significa "está completo": la sesión
// autocompleta con la cantidad recomendada.
func TestConfirm_AutocompletaConElEstandar(t *testing.T) {
	s := inventory.NewChecklistSession(catalogoMinimo(), nil)

	s.Confirm("adrenalina_1mg")

	assert.True(t, s.Confirmed("adrenalina_1mg"))
	assert.Equal(t, 10, s.Quantity("adrenalina_1mg"))
}

func TestConfirm_RespetaCantidadYaObservada(t *testing.T) {
	stock := []entity.AmbulanceStock{
		{Category: entity.CategoryMedicamentos, ItemType: entity.ItemTypeMedication, NormalizedName: "adrenalina_1mg", Quantity: 4},
	}
	s := inventory.NewChecklistSession(catalogoMinimo(), stock)

	s.Confirm("adrenalina_1mg")

	assert.Equal(t, 4, s.Quantity("adrenalina_1mg"), "no debe pisar la cantidad real")
}

func TestSetQuantity_NegativaSeTrataComoCero(t *testing.T) {
	s := inventory.NewChecklistSession(catalogoMinimo(), nil)

	s.SetQuantity("tensiometro", -3)

	assert.True(t, s.Confirmed("tensiometro"))
	assert.Equal(t, 0, s.Quantity("tensiometro"))
}

func TestSetQuantity_ItemFueraDelCatalogoSeIgnora(t *testing.T) {
	s := inventory.NewChecklistSession(catalogoMinimo(), nil)

	s.SetQuantity("no_existe", 5)

	assert.False(t, s.Confirmed("no_existe"))
	assert.Equal(t, 0, s.Progress())
}

func TestProgress_YComplete(t *testing.T) {
	s := inventory.NewChecklistSession(catalogoMinimo(), nil)
	assert.Equal(t, 0, s.Progress())
	assert.False(t, s.Complete())

	s.Confirm("tensiometro")
	s.Confirm("estetoscopio")
	assert.Equal(t, 50, s.Progress())
	assert.False(t, s.Complete(), "faltan medicamentos por confirmar")

	s.Confirm("adrenalina_1mg")
	s.Confirm("atropina_05mg")
	assert.Equal(t, 100, s.Progress())
	assert.True(t, s.Complete())

	s.Unconfirm("atropina_05mg")
	assert.False(t, s.Complete())
	assert.Equal(t, []string{entity.CategoryMedicamentos}, s.IncompleteSections())
}

func TestComplete_CatalogoVacioNuncaEsCompleto(t *testing.T) {
	s := inventory.NewChecklistSession(nil, nil)

	assert.False(t, s.Complete())
	assert.Equal(t, 0, s.Progress())
}

func TestQuickFillSection_ConfirmaTodaLaCategoria(t *testing.T) {
	s := inventory.NewChecklistSession(catalogoMinimo(), nil)

	s.QuickFillSection(entity.CategoryMedicamentos)

	assert.True(t, s.Confirmed("adrenalina_1mg"))
	assert.True(t, s.Confirmed("atropina_05mg"))
	assert.Equal(t, 10, s.Quantity("adrenalina_1mg"))
	assert.False(t, s.Confirmed("tensiometro"), "otras secciones no se tocan")
	assert.Equal(t, 50, s.Progress())
}

// Los faltantes de la sesión salen de las cantidades observadas, no del stock
// persistido: sirven para prellenar la requisición al cerrar el checklist.
func TestShortfalls_UsaCantidadesObservadas(t *testing.T) {
	stock := []entity.AmbulanceStock{
		{Category: entity.CategoryMedicamentos, ItemType: entity.ItemTypeMedication, NormalizedName: "adrenalina_1mg", Quantity: 10},
	}
	s := inventory.NewChecklistSession(catalogoMinimo(), stock)

	// El paramédico cuenta 3 aunque el sistema creía 10.
	s.SetQuantity("adrenalina_1mg", 3)
	s.Confirm("tensiometro")
	s.Confirm("estetoscopio")
	s.Confirm("atropina_05mg")

	shortfalls := s.Shortfalls()
	require.Len(t, shortfalls, 1)
	assert.Equal(t, "adrenalina_1mg", shortfalls[0].Name)
	assert.Equal(t, 7, shortfalls[0].Missing)
}

func TestItemsMap_CubreTodoElCatalogo(t *testing.T) {
	s := inventory.NewChecklistSession(catalogoMinimo(), nil)
	s.Confirm("tensiometro")

	items := s.ItemsMap()

	require.Len(t, items, 4)
	assert.True(t, items["tensiometro"])
	assert.False(t, items["adrenalina_1mg"])
}
