package entity

import "github.com/shopspring/decimal"

// InventorySnapshot saldo disponible de un artículo al inicio del horizonte.
// Si falta la fila para una clave, el saldo inicial se trata como 0.
type InventorySnapshot struct {
	Warehouse     string
	ItemID        string
	UnitOfMeasure string // opcional; si difiere del maestro se reporta como advertencia
	OnHandQty     decimal.Decimal
}

// Key devuelve la clave compuesta del snapshot.
func (s InventorySnapshot) Key() ItemKey {
	return ItemKey{Warehouse: s.Warehouse, ItemID: s.ItemID}
}
