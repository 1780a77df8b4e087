package postgres

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// staticRow simula una fila ya leída para ejercitar el scan sin base de datos.
type staticRow struct {
	values []any
}

func (r staticRow) Scan(dest ...any) error {
	for i := range dest {
		switch d := dest[i].(type) {
		case *string:
			*d = r.values[i].(string)
		case *[]byte:
			*d = r.values[i].([]byte)
		case *time.Time:
			*d = r.values[i].(time.Time)
		}
	}
	return nil
}

func requisitionRow(data string) staticRow {
	return staticRow{values: []any{
		"req-1", "amb-001", "user-001", "2026-08-27", []byte(data), time.Now(),
	}}
}

func TestScanRequisition_EsquemaVersionado(t *testing.T) {
	row := requisitionRow(`{
		"generated_at": "2026-08-27T10:00:00Z",
		"reason": "reposición tras servicio",
		"items": [{"name": "cateter_18g", "quantity": 7, "category": "canalizacion", "item_type": "equipment"}]
	}`)

	req, err := scanRequisition(row)

	require.NoError(t, err)
	require.Len(t, req.Data.Items, 1)
	assert.Equal(t, "cateter_18g", req.Data.Items[0].Name)
	assert.Equal(t, 7, req.Data.Items[0].Quantity)
	assert.Equal(t, "reposición tras servicio", req.Data.Reason)
}

// Las filas legacy guardaban un objeto nombre → cantidad. El scan las
// convierte a líneas ordenadas por nombre, así cada lectura de la misma fila
// devuelve los ítems en el mismo orden.
func TestScanRequisition_LegacyOrdenEstable(t *testing.T) {
	row := requisitionRow(`{"vendas": 5, "adrenalina_1mg": 10, "gasas": 3}`)

	first, err := scanRequisition(row)
	require.NoError(t, err)

	names := make([]string, 0, len(first.Data.Items))
	for _, item := range first.Data.Items {
		names = append(names, item.Name)
	}
	assert.Equal(t, []string{"adrenalina_1mg", "gasas", "vendas"}, names)

	second, err := scanRequisition(row)
	require.NoError(t, err)
	assert.Equal(t, first.Data.Items, second.Data.Items)
}

func TestScanRequisition_DataInvalida(t *testing.T) {
	_, err := scanRequisition(requisitionRow(`no es json`))
	assert.Error(t, err)
}
