package planning

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/mrp-planner/internal/domain/entity"
)

// ProjectItem recorre el horizonte de un artículo y produce una fila por
// semana. Es un fold estricto de izquierda a derecha: el saldo final de la
// semana t es el saldo inicial de t+1, y el orden no puede alterarse.
//
// El faltante se evalúa contra el saldo previo al pedido
// (beg - req + incoming), no contra el saldo inicial: un recibo programado en
// la semana t puede eliminar el faltante sin disparar pedido. El saldo
// proyectado puede quedar negativo y permanecer negativo si la demanda supera
// a la oferta y el lote no cierra la brecha en un paso; eso debe ser visible
// en la salida, no recortado.
func ProjectItem(
	params entity.ItemParams,
	begSOH decimal.Decimal,
	weeklyReq decimal.Decimal,
	incoming map[time.Time]decimal.Decimal,
	buckets []time.Time,
) []entity.NettingRow {
	rows := make([]entity.NettingRow, 0, len(buckets))
	balance := begSOH

	for _, week := range buckets {
		in := incoming[week] // ausente: decimal cero

		preOrderEnd := balance.Sub(weeklyReq).Add(in)

		shortage := params.SafetyStock.Sub(preOrderEnd)
		if shortage.IsNegative() {
			shortage = decimal.Zero
		}

		orderQty := LotSize(shortage, params.MOQ, params.PackSize)
		endSOH := preOrderEnd.Add(orderQty)

		rows = append(rows, entity.NettingRow{
			Warehouse:       params.Warehouse,
			ItemID:          params.ItemID,
			WeekStart:       week,
			BegSOH:          balance,
			WeeklyReq:       weeklyReq,
			Incoming:        in,
			Shortage:        shortage,
			PlannedOrderQty: orderQty,
			EndSOH:          endSOH,
			SafetyStock:     params.SafetyStock,
		})

		balance = endSOH
	}
	return rows
}
