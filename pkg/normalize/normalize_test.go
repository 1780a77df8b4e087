package normalize_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/frenchys-amb/ambutrack-api/pkg/normalize"
)

func TestName_Ejemplos(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"angio_20", "angio_20"},
		{"Angio #20", "angio_20"},
		{"ANGIO 20", "angio_20"},
		{"adrenalina 1mg", "adrenalina_1mg"},
		{"llave de 3 vias", "llave_de_3_vias"},
		{"  solucion salina 500ml  ", "solucion_salina_500ml"},
		{"___", ""},
		{"", ""},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, normalize.Name(c.in), "entrada: %q", c.in)
	}
}

// Los acentos no se pliegan a ASCII: cualquier carácter fuera de [a-z0-9_]
// es separador, las letras acentuadas incluidas. Dos grafías que difieren en
// acentos producen llaves distintas.
func TestName_AcentosSonSeparadores(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Inmovilización", "inmovilizaci_n"},
		{"cánula nasal adulto", "c_nula_nasal_adulto"},
		{"lidocaína 2%", "lidoca_na_2"},
		{"llave de 3 vías", "llave_de_3_v_as"},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, normalize.Name(c.in), "entrada: %q", c.in)
	}

	assert.False(t, normalize.Equal("Inmovilización", "Inmovilizacion"),
		"la grafía con acento y la sin acento no son el mismo ítem")
}

// La normalización debe ser idempotente: normalizar un nombre ya normalizado
// devuelve exactamente la misma cadena.
func TestName_Idempotente(t *testing.T) {
	inputs := []string{
		"Angio #20", "adrenalina 1mg", "Máscara Venturi (Adulto)",
		"tubo endotraqueal 7.5", "catéter 18G", "", "ya_normalizado",
	}
	for _, in := range inputs {
		once := normalize.Name(in)
		assert.Equal(t, once, normalize.Name(once), "doble normalización de %q", in)
	}
}

func TestName_ColapsaCorridasDeSeparadores(t *testing.T) {
	assert.Equal(t, "angio_20", normalize.Name("angio - #:: 20"))
	assert.Equal(t, "a_b", normalize.Name("a__b"))
}

func TestEqual_ComparaFormasNormalizadas(t *testing.T) {
	assert.True(t, normalize.Equal("Angio #20", "angio_20"))
	assert.True(t, normalize.Equal("ADRENALINA 1MG", "adrenalina 1mg"))
	assert.False(t, normalize.Equal("angio_20", "angio_14"))
}
