package planning

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/mrp-planner/internal/domain/entity"
)

// EstimateWeeklyDemand deriva la demanda semanal de un artículo como el
// promedio de los últimos `window` puntos de su historial (menos si el
// historial es más corto). El historial debe venir ordenado cronológicamente.
//
// La cifra se usa uniforme en todo el horizonte: no se re-estima por semana
// futura. Sin historial, o con promedio no positivo, se aplica el piso
// configurado: una demanda de 0 haría la proyección degenerada y un artículo
// sin consumo histórico aún merece una proyección con sentido.
func EstimateWeeklyDemand(history []entity.DemandHistoryPoint, window int, floor decimal.Decimal) decimal.Decimal {
	if window <= 0 {
		window = 4
	}
	if len(history) == 0 {
		return floor
	}
	if len(history) > window {
		history = history[len(history)-window:]
	}

	total := decimal.Zero
	for _, p := range history {
		total = total.Add(p.IssuedQty)
	}
	avg := total.Div(decimal.NewFromInt(int64(len(history))))
	if avg.LessThanOrEqual(decimal.Zero) {
		return floor
	}
	return avg
}
