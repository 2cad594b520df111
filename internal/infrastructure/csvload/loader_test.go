package csvload_test

import (
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/mrp-planner/internal/application/planning"
	"github.com/jhoicas/mrp-planner/internal/domain"
	"github.com/jhoicas/mrp-planner/internal/infrastructure/csvload"
)

func TestParseItemParams(t *testing.T) {
	// Encabezados con espacios alrededor: la ingesta debe limpiarlos.
	in := strings.NewReader(
		" warehouse , item_id ,description,uom,lead_time,safety_stock,MOQ,pack_size\n" +
			"W1,X,Tornillo,EA,2,20,15,10\n" +
			"W2,Y,Tuerca,EA,1,0,0,1\n")

	loader := csvload.NewLoader()
	items, warnings, err := loader.ParseItemParams(in)
	require.NoError(t, err)
	assert.Empty(t, warnings)
	require.Len(t, items, 2)

	assert.Equal(t, "W1", items[0].Warehouse)
	assert.Equal(t, "X", items[0].ItemID)
	assert.Equal(t, 2, items[0].LeadTimeWeeks)
	assert.True(t, items[0].SafetyStock.Equal(decimalFrom(t, "20")))
	assert.True(t, items[0].PackSize.Equal(decimalFrom(t, "10")))
}

func TestParseItemParamsColumnasFaltantes(t *testing.T) {
	in := strings.NewReader("warehouse,item_id,description\nW1,X,Tornillo\n")

	_, _, err := csvload.NewLoader().ParseItemParams(in)
	var schema *domain.SchemaError
	require.ErrorAs(t, err, &schema)
	assert.Equal(t, domain.TableItemParams, schema.Table)
	assert.Contains(t, schema.Missing, "lead_time")
	assert.Contains(t, schema.Missing, "pack_size")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestParseItemParamsCoercionaNoNumericos(t *testing.T) {
	in := strings.NewReader(
		"warehouse,item_id,description,uom,lead_time,safety_stock,MOQ,pack_size\n" +
			"W1,X,Tornillo,EA,n/a,veinte,15,10\n")

	items, warnings, err := csvload.NewLoader().ParseItemParams(in)
	require.NoError(t, err, "los valores sucios no abortan la carga")
	require.Len(t, items, 1)
	assert.Equal(t, 0, items[0].LeadTimeWeeks)
	assert.True(t, items[0].SafetyStock.IsZero())

	require.Len(t, warnings, 2)
	for _, w := range warnings {
		assert.Equal(t, planning.WarningCoercion, w.Kind)
	}
}

func TestParseSnapshotsUOMOpcional(t *testing.T) {
	sinUOM := strings.NewReader("warehouse,item_id,on_hand_qty\nW1,X,10\n")
	snaps, _, err := csvload.NewLoader().ParseSnapshots(sinUOM)
	require.NoError(t, err)
	require.Len(t, snaps, 1)
	assert.Empty(t, snaps[0].UnitOfMeasure)

	conUOM := strings.NewReader("warehouse,item_id,uom,on_hand_qty\nW1,X,CAJA,10\n")
	snaps, _, err = csvload.NewLoader().ParseSnapshots(conUOM)
	require.NoError(t, err)
	assert.Equal(t, "CAJA", snaps[0].UnitOfMeasure)
}

func TestParseDemandHistory(t *testing.T) {
	in := strings.NewReader(
		"warehouse,item_id,week_start,issued_qty\n" +
			"W1,X,2026-08-10,5\n" +
			"W1,X,2026-08-17,7.5\n")

	points, warnings, err := csvload.NewLoader().ParseDemandHistory(in)
	require.NoError(t, err)
	assert.Empty(t, warnings)
	require.Len(t, points, 2)
	assert.True(t, points[0].WeekStart.Equal(time.Date(2026, 8, 10, 0, 0, 0, 0, time.UTC)))
	assert.True(t, points[1].IssuedQty.Equal(decimalFrom(t, "7.5")))
}

func TestParseDemandHistoryFechaInvalida(t *testing.T) {
	in := strings.NewReader("warehouse,item_id,week_start,issued_qty\nW1,X,agosto,5\n")
	_, _, err := csvload.NewLoader().ParseDemandHistory(in)
	assert.Error(t, err, "una fecha ilegible sí es fatal: no hay bucket al que asignar")
}

func TestParseReceipts(t *testing.T) {
	in := strings.NewReader(
		"warehouse,item_id,week_start,qty\n" +
			"W1,X,2026-08-24,30\n" +
			"W1,X,2026-08-24,12\n") // mismo bucket: el motor los suma

	receipts, _, err := csvload.NewLoader().ParseReceipts(in)
	require.NoError(t, err)
	require.Len(t, receipts, 2)
	assert.True(t, receipts[0].WeekStart.Equal(receipts[1].WeekStart))
}

func decimalFrom(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	v, err := decimal.NewFromString(s)
	require.NoError(t, err)
	return v
}
