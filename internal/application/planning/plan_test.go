package planning_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/mrp-planner/internal/application/planning"
	"github.com/jhoicas/mrp-planner/internal/domain"
	"github.com/jhoicas/mrp-planner/internal/domain/entity"
)

// Entrada de dos bodegas con historial, snapshot y recibos dispersos.
func planInput(t *testing.T) planning.Input {
	t.Helper()
	itemA := itemX(t) // W1/X
	itemB := entity.ItemParams{
		Warehouse: "W2", ItemID: "Y", Description: "Segundo artículo", UnitOfMeasure: "KG",
		LeadTimeWeeks: 1, SafetyStock: d(t, "0"), MOQ: d(t, "0"), PackSize: d(t, "1"),
	}
	return planning.Input{
		Items: []entity.ItemParams{itemB, itemA}, // desordenados a propósito
		Snapshots: []entity.InventorySnapshot{
			{Warehouse: "W1", ItemID: "X", OnHandQty: d(t, "10")},
			// dos snapshots de la misma clave se suman
			{Warehouse: "W2", ItemID: "Y", OnHandQty: d(t, "3")},
			{Warehouse: "W2", ItemID: "Y", OnHandQty: d(t, "2")},
		},
		History: []entity.DemandHistoryPoint{
			{Warehouse: "W1", ItemID: "X", WeekStart: week0.AddDate(0, 0, -28), IssuedQty: d(t, "5")},
			{Warehouse: "W1", ItemID: "X", WeekStart: week0.AddDate(0, 0, -21), IssuedQty: d(t, "5")},
			{Warehouse: "W1", ItemID: "X", WeekStart: week0.AddDate(0, 0, -14), IssuedQty: d(t, "5")},
			{Warehouse: "W1", ItemID: "X", WeekStart: week0.AddDate(0, 0, -7), IssuedQty: d(t, "5")},
			// Y no tiene historial: recibe el piso de demanda
		},
		Receipts: []entity.ScheduledReceipt{
			// dos recibos del mismo bucket se suman
			{Warehouse: "W2", ItemID: "Y", WeekStart: week0, Qty: d(t, "4")},
			{Warehouse: "W2", ItemID: "Y", WeekStart: week0, Qty: d(t, "6")},
		},
		Buckets: weeksFrom(week0, 4),
	}
}

func TestPlanCorridaCompleta(t *testing.T) {
	res, err := planning.Plan(context.Background(), planInput(t), planning.DefaultConfig())
	require.NoError(t, err)

	// Una fila por (bodega, artículo, semana), ordenadas por clave y semana.
	require.Len(t, res.Rows, 8)
	assert.Equal(t, "W1", res.Rows[0].Warehouse)
	assert.Equal(t, "W2", res.Rows[4].Warehouse)

	// W1/X reproduce el escenario de referencia (beg 10, req 5, ss 20).
	w0 := res.Rows[0]
	assert.True(t, w0.WeeklyReq.Equal(d(t, "5")))
	assert.True(t, w0.PlannedOrderQty.Equal(d(t, "20")))
	assert.True(t, w0.EndSOH.Equal(d(t, "25")))

	// W2/Y: sin historial cae al piso de demanda 1; beg 5 (3+2) y recibo 10
	// (4+6) en la semana 0.
	y0 := res.Rows[4]
	assert.True(t, y0.WeeklyReq.Equal(d(t, "1")))
	assert.True(t, y0.BegSOH.Equal(d(t, "5")))
	assert.True(t, y0.Incoming.Equal(d(t, "10")))
	assert.True(t, y0.PlannedOrderQty.IsZero())

	// Los pedidos derivados cumplen el desfase de liberación.
	require.NotEmpty(t, res.Orders)
	for _, o := range res.Orders {
		assert.True(t, o.Qty.IsPositive())
	}
}

func TestPlanDeterminista(t *testing.T) {
	// Entradas idénticas producen salidas idénticas aunque la proyección sea
	// paralela: el orden final es por (bodega, artículo, semana).
	first, err := planning.Plan(context.Background(), planInput(t), planning.DefaultConfig())
	require.NoError(t, err)

	for i := 0; i < 5; i++ {
		again, err := planning.Plan(context.Background(), planInput(t), planning.DefaultConfig())
		require.NoError(t, err)
		require.Len(t, again.Rows, len(first.Rows))
		for j := range first.Rows {
			assert.Equal(t, first.Rows[j].Warehouse, again.Rows[j].Warehouse)
			assert.Equal(t, first.Rows[j].ItemID, again.Rows[j].ItemID)
			assert.True(t, first.Rows[j].WeekStart.Equal(again.Rows[j].WeekStart))
			assert.True(t, first.Rows[j].EndSOH.Equal(again.Rows[j].EndSOH))
			assert.True(t, first.Rows[j].PlannedOrderQty.Equal(again.Rows[j].PlannedOrderQty))
		}
		require.Len(t, again.Orders, len(first.Orders))
	}
}

func TestPlanAbortaConDatosInvalidos(t *testing.T) {
	// Con validación fallida no hay resultados parciales.
	in := planInput(t)
	in.Items = append(in.Items, in.Items[0])

	res, err := planning.Plan(context.Background(), in, planning.DefaultConfig())
	assert.Nil(t, res)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestPlanContextoCancelado(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := planning.Plan(ctx, planInput(t), planning.DefaultConfig())
	assert.ErrorIs(t, err, context.Canceled)
}

func TestPlanSnapshotAusenteEsCero(t *testing.T) {
	in := planning.Input{
		Items:   []entity.ItemParams{itemX(t)},
		Buckets: weeksFrom(week0, 1),
	}
	res, err := planning.Plan(context.Background(), in, planning.DefaultConfig())
	require.NoError(t, err)
	require.Len(t, res.Rows, 1)
	assert.True(t, res.Rows[0].BegSOH.IsZero(), "sin snapshot el saldo inicial es 0")
}

func TestPlanHorizonteInyectado(t *testing.T) {
	// El motor no calcula fechas: el mismo maestro con horizontes distintos
	// produce longitudes distintas.
	for _, n := range []int{1, 6, 52} {
		in := planning.Input{Items: []entity.ItemParams{itemX(t)}, Buckets: weeksFrom(week0, n)}
		res, err := planning.Plan(context.Background(), in, planning.DefaultConfig())
		require.NoError(t, err)
		assert.Len(t, res.Rows, n)
	}
}
