package planning_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/mrp-planner/internal/application/planning"
	"github.com/jhoicas/mrp-planner/internal/domain/entity"
)

func weeksFrom(start time.Time, n int) []time.Time {
	out := make([]time.Time, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, start.AddDate(0, 0, 7*i))
	}
	return out
}

var week0 = time.Date(2026, 8, 24, 0, 0, 0, 0, time.UTC) // lunes

func itemX(t *testing.T) entity.ItemParams {
	t.Helper()
	return entity.ItemParams{
		Warehouse:     "W1",
		ItemID:        "X",
		Description:   "Artículo de prueba",
		UnitOfMeasure: "EA",
		LeadTimeWeeks: 2,
		SafetyStock:   d(t, "20"),
		MOQ:           d(t, "15"),
		PackSize:      d(t, "10"),
	}
}

// Escenario de referencia: beg 10, ss 20, req 5, MOQ 15, pack 10.
// Semana 0: pre = 10-5 = 5; faltante = 15; max(15, MOQ)=15; redondeado a 20;
// end = 25. Semana 1: pre = 20; faltante 0; end = 20.
func TestProjectItemEscenarioReferencia(t *testing.T) {
	rows := planning.ProjectItem(itemX(t), d(t, "10"), d(t, "5"), nil, weeksFrom(week0, 2))
	require.Len(t, rows, 2)

	w0 := rows[0]
	assert.True(t, w0.BegSOH.Equal(d(t, "10")))
	assert.True(t, w0.Shortage.Equal(d(t, "15")))
	assert.True(t, w0.PlannedOrderQty.Equal(d(t, "20")))
	assert.True(t, w0.EndSOH.Equal(d(t, "25")))

	w1 := rows[1]
	assert.True(t, w1.BegSOH.Equal(d(t, "25")))
	assert.True(t, w1.Shortage.IsZero())
	assert.True(t, w1.PlannedOrderQty.IsZero())
	assert.True(t, w1.EndSOH.Equal(d(t, "20")))
}

// Un recibo programado en la semana t puede eliminar el faltante sin disparar
// pedido: el faltante se evalúa contra el saldo previo al pedido, no contra
// el saldo inicial.
func TestProjectItemReciboEliminaFaltante(t *testing.T) {
	incoming := map[time.Time]decimal.Decimal{week0: d(t, "15")}
	rows := planning.ProjectItem(itemX(t), d(t, "10"), d(t, "5"), incoming, weeksFrom(week0, 1))
	require.Len(t, rows, 1)

	// pre = 10 - 5 + 15 = 20 = ss: sin faltante, sin pedido.
	assert.True(t, rows[0].Incoming.Equal(d(t, "15")))
	assert.True(t, rows[0].Shortage.IsZero())
	assert.True(t, rows[0].PlannedOrderQty.IsZero())
	assert.True(t, rows[0].EndSOH.Equal(d(t, "20")))
}

// El saldo proyectado puede quedar negativo y permanecer negativo: no se
// recorta. Con MOQ y pack pequeños frente a una demanda grande el lote no
// cierra la brecha en un paso.
func TestProjectItemSaldoNegativoVisible(t *testing.T) {
	params := itemX(t)
	params.SafetyStock = d(t, "0")
	params.MOQ = d(t, "1")
	params.PackSize = d(t, "1")

	rows := planning.ProjectItem(params, d(t, "-30"), d(t, "10"), nil, weeksFrom(week0, 3))
	require.Len(t, rows, 3)
	// pre = -40; faltante = 40; pedido = 40; end = 0. El arranque negativo es
	// visible en BegSOH de la primera semana.
	assert.True(t, rows[0].BegSOH.Equal(d(t, "-30")))
	assert.True(t, rows[0].PlannedOrderQty.Equal(d(t, "40")))
	assert.True(t, rows[0].EndSOH.IsZero())
}

// Propiedades de la recurrencia sobre un recorrido largo con recibos
// dispersos: identidad fila a fila, arrastre entre semanas consecutivas y
// disparo del pedido exactamente cuando pre < stock de seguridad.
func TestProjectItemPropiedadesRecurrencia(t *testing.T) {
	params := itemX(t)
	buckets := weeksFrom(week0, 12)
	incoming := map[time.Time]decimal.Decimal{
		buckets[2]: d(t, "30"),
		buckets[5]: d(t, "7.5"),
		buckets[9]: d(t, "120"),
	}

	rows := planning.ProjectItem(params, d(t, "42.25"), d(t, "11.4"), incoming, buckets)
	require.Len(t, rows, len(buckets))

	for i, r := range rows {
		// end = beg - req + incoming + pedido
		identity := r.BegSOH.Sub(r.WeeklyReq).Add(r.Incoming).Add(r.PlannedOrderQty)
		assert.True(t, r.EndSOH.Equal(identity), "semana %d rompe la identidad", i)

		pre := r.BegSOH.Sub(r.WeeklyReq).Add(r.Incoming)
		if pre.LessThan(r.SafetyStock) {
			assert.True(t, r.PlannedOrderQty.IsPositive(), "semana %d debía pedir", i)
			assert.True(t, r.PlannedOrderQty.GreaterThanOrEqual(params.MOQ))
			assert.True(t, r.PlannedOrderQty.Mod(params.PackSize).IsZero())
		} else {
			assert.True(t, r.PlannedOrderQty.IsZero(), "semana %d no debía pedir", i)
		}

		if i > 0 {
			assert.True(t, r.BegSOH.Equal(rows[i-1].EndSOH), "semana %d no arrastra el saldo", i)
		}
	}
}
