package planning_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/mrp-planner/internal/application/planning"
	"github.com/jhoicas/mrp-planner/internal/domain/entity"
)

func TestScheduleReleases(t *testing.T) {
	params := itemX(t) // lead time 2 semanas
	rows := []entity.NettingRow{
		{Warehouse: "W1", ItemID: "X", WeekStart: week0, PlannedOrderQty: d(t, "20")},
		{Warehouse: "W1", ItemID: "X", WeekStart: week0.AddDate(0, 0, 7), PlannedOrderQty: d(t, "0")},
		{Warehouse: "W1", ItemID: "X", WeekStart: week0.AddDate(0, 0, 28), PlannedOrderQty: d(t, "40")},
	}

	orders := planning.ScheduleReleases(params, rows)
	require.Len(t, orders, 2, "solo las filas con cantidad > 0 producen pedido")

	first := orders[0]
	assert.True(t, first.ReceiptWeek.Equal(week0))
	// Liberación dos semanas antes del recibo: cae antes del horizonte y no se
	// recorta; es señal de que el pedido ya debería haberse colocado.
	assert.True(t, first.ReleaseWeek.Equal(week0.AddDate(0, 0, -14)))
	assert.Equal(t, "Artículo de prueba", first.Description)
	assert.Equal(t, "EA", first.UnitOfMeasure)

	second := orders[1]
	assert.True(t, second.Qty.Equal(d(t, "40")))
	assert.True(t, second.ReleaseWeek.Equal(second.ReceiptWeek.AddDate(0, 0, -14)))
}

func TestScheduleReleasesLeadTimeCero(t *testing.T) {
	params := itemX(t)
	params.LeadTimeWeeks = 0
	rows := []entity.NettingRow{
		{Warehouse: "W1", ItemID: "X", WeekStart: week0, PlannedOrderQty: d(t, "10")},
	}
	orders := planning.ScheduleReleases(params, rows)
	require.Len(t, orders, 1)
	assert.True(t, orders[0].ReleaseWeek.Equal(orders[0].ReceiptWeek))
}

func TestScheduleReleasesOffsetSiempreCoherente(t *testing.T) {
	// Propiedad: release = receipt - lead_time*7 días para todo pedido.
	for _, lead := range []int{0, 1, 2, 8} {
		params := itemX(t)
		params.LeadTimeWeeks = lead
		rows := planning.ProjectItem(params, d(t, "0"), d(t, "5"), nil, weeksFrom(week0, 6))
		for _, o := range planning.ScheduleReleases(params, rows) {
			want := o.ReceiptWeek.AddDate(0, 0, -7*lead)
			assert.True(t, o.ReleaseWeek.Equal(want), "lead %d: release %s, se esperaba %s", lead, o.ReleaseWeek, want)
		}
	}
}
