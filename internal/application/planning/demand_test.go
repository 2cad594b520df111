package planning_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/mrp-planner/internal/application/planning"
	"github.com/jhoicas/mrp-planner/internal/domain/entity"
)

func historyPoints(t *testing.T, qtys ...string) []entity.DemandHistoryPoint {
	t.Helper()
	week := time.Date(2026, time.January, 5, 0, 0, 0, 0, time.UTC)
	pts := make([]entity.DemandHistoryPoint, 0, len(qtys))
	for _, q := range qtys {
		pts = append(pts, entity.DemandHistoryPoint{
			Warehouse: "W1", ItemID: "X", WeekStart: week, IssuedQty: d(t, q),
		})
		week = week.AddDate(0, 0, 7)
	}
	return pts
}

func TestEstimateWeeklyDemand(t *testing.T) {
	floor := d(t, "1")

	cases := []struct {
		name    string
		history []entity.DemandHistoryPoint
		want    string
	}{
		{"promedia los últimos 4 puntos", historyPoints(t, "100", "100", "4", "6", "8", "10"), "7"},
		{"historial más corto que la ventana", historyPoints(t, "4", "8"), "6"},
		{"un solo punto", historyPoints(t, "9"), "9"},
		{"sin historial aplica el piso", nil, "1"},
		{"consumo cero aplica el piso", historyPoints(t, "0", "0", "0", "0"), "1"},
		{"promedio negativo aplica el piso", historyPoints(t, "-5", "-3", "2", "0"), "1"},
		{"promedio fraccional se conserva", historyPoints(t, "1", "2"), "1.5"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := planning.EstimateWeeklyDemand(tc.history, 4, floor)
			assert.True(t, got.Equal(d(t, tc.want)), "se esperaba %s, llegó %s", tc.want, got)
		})
	}
}

func TestEstimateWeeklyDemandNuncaBajoElPiso(t *testing.T) {
	// Propiedad: la demanda estimada nunca queda por debajo del piso,
	// sin importar el historial.
	floor := d(t, "2")
	histories := [][]entity.DemandHistoryPoint{
		nil,
		historyPoints(t, "0"),
		historyPoints(t, "-10", "-20"),
		historyPoints(t, "0.5", "0.5"), // positivo pero bajo el piso: se conserva
	}
	for _, h := range histories {
		got := planning.EstimateWeeklyDemand(h, 4, floor)
		assert.True(t, got.IsPositive(), "la demanda debe ser positiva, llegó %s", got)
	}
}
