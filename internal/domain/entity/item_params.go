package entity

import "github.com/shopspring/decimal"

// ItemKey identifica un par (bodega, artículo). Es la clave de todas las
// tablas de referencia y de las filas de resultado.
type ItemKey struct {
	Warehouse string
	ItemID    string
}

// ItemParams parámetros de planificación de un artículo en una bodega.
// Una fila por clave (Warehouse, ItemID): duplicados son un fallo de
// validación, no se resuelven en silencio.
type ItemParams struct {
	Warehouse     string          `validate:"required"`
	ItemID        string          `validate:"required"`
	Description   string
	UnitOfMeasure string
	LeadTimeWeeks int             `validate:"gte=0"` // semanas entre liberación y recibo
	SafetyStock   decimal.Decimal `validate:"gte=0"`
	MOQ           decimal.Decimal `validate:"gte=0"`
	PackSize      decimal.Decimal // > 0; se valida aparte para reportar la fila ofensora
}

// Key devuelve la clave compuesta del artículo.
func (p ItemParams) Key() ItemKey {
	return ItemKey{Warehouse: p.Warehouse, ItemID: p.ItemID}
}
