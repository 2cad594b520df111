package planning

import "github.com/jhoicas/mrp-planner/internal/domain/entity"

// ScheduleReleases deriva los pedidos planificados de las filas con cantidad
// mayor que cero: la semana de recibo es la del bucket y la de liberación se
// desplaza lead_time semanas hacia atrás. Una liberación anterior al inicio
// del horizonte (o en el pasado) es señal deliberada de que el pedido ya
// debería haberse colocado; no se recorta ni se filtra.
func ScheduleReleases(params entity.ItemParams, rows []entity.NettingRow) []entity.PlannedOrder {
	var orders []entity.PlannedOrder
	for _, r := range rows {
		if !r.PlannedOrderQty.IsPositive() {
			continue
		}
		orders = append(orders, entity.PlannedOrder{
			Warehouse:     r.Warehouse,
			ItemID:        r.ItemID,
			Description:   params.Description,
			UnitOfMeasure: params.UnitOfMeasure,
			Qty:           r.PlannedOrderQty,
			ReceiptWeek:   r.WeekStart,
			ReleaseWeek:   r.WeekStart.AddDate(0, 0, -7*params.LeadTimeWeeks),
		})
	}
	return orders
}
