package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// PlanRun una corrida de planificación persistida, con conteos de resumen.
type PlanRun struct {
	ID            string
	AsOf          time.Time // fecha "hoy" usada para generar el horizonte
	HorizonPolicy string
	BucketCount   int
	ItemCount     int
	OrderCount    int
	WarningCount  int
	CreatedBy     string
	CreatedAt     time.Time
}

// NettingRow estado proyectado de un artículo en una semana del horizonte.
// Invariante central: BegSOH de la semana t+1 es igual a EndSOH de la semana t.
// EndSOH puede ser negativo y permanecer negativo; no se recorta.
type NettingRow struct {
	Warehouse       string
	ItemID          string
	WeekStart       time.Time
	BegSOH          decimal.Decimal
	WeeklyReq       decimal.Decimal
	Incoming        decimal.Decimal
	Shortage        decimal.Decimal
	PlannedOrderQty decimal.Decimal
	EndSOH          decimal.Decimal
	SafetyStock     decimal.Decimal
}

// PlannedOrder pedido planificado: solo las filas con PlannedOrderQty > 0
// producen uno. ReleaseWeek puede caer en el pasado; eso es señal de que el
// pedido ya debería haberse liberado y no se filtra.
type PlannedOrder struct {
	Warehouse     string
	ItemID        string
	Description   string
	UnitOfMeasure string
	Qty           decimal.Decimal
	ReceiptWeek   time.Time
	ReleaseWeek   time.Time
}
