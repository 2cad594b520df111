package planning

import "github.com/shopspring/decimal"

// LotSize convierte un faltante crudo en una cantidad pedible: eleva al MOQ y
// redondea hacia arriba al siguiente múltiplo de pack. Con faltante no
// positivo devuelve 0.
//
// Un pack no positivo lo rechaza la puerta de validación antes del neteo
// (InvalidLotSizeError); aquí se trata como 1 únicamente para que la función
// se mantenga total. Esa es la única decisión sobre el caso degenerado: no se
// decide por sitio de llamada.
func LotSize(shortage, moq, packSize decimal.Decimal) decimal.Decimal {
	if shortage.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero
	}
	raw := decimal.Max(shortage, moq)
	if packSize.LessThanOrEqual(decimal.Zero) {
		packSize = decimal.NewFromInt(1)
	}
	return raw.Div(packSize).Ceil().Mul(packSize)
}
