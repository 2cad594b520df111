package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// DemandHistoryPoint consumo histórico de una semana. Solo lectura: se usa
// únicamente para estimar la demanda semanal, nunca se muta.
type DemandHistoryPoint struct {
	Warehouse string
	ItemID    string
	WeekStart time.Time
	IssuedQty decimal.Decimal
}

// Key devuelve la clave compuesta del punto de historial.
func (p DemandHistoryPoint) Key() ItemKey {
	return ItemKey{Warehouse: p.Warehouse, ItemID: p.ItemID}
}
