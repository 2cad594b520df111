package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// ScheduledReceipt entrada futura ya comprometida que aterriza en una semana
// concreta. Varios recibos en el mismo bucket se suman.
type ScheduledReceipt struct {
	Warehouse string
	ItemID    string
	WeekStart time.Time
	Qty       decimal.Decimal
}

// Key devuelve la clave compuesta del recibo.
func (r ScheduledReceipt) Key() ItemKey {
	return ItemKey{Warehouse: r.Warehouse, ItemID: r.ItemID}
}
