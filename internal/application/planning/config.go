// Package planning implementa el motor de planificación MRP de un nivel:
// estimación de demanda semanal, generación del horizonte, neteo contra el
// stock de seguridad, dimensionado de lote (MOQ + pack) y programación de
// liberaciones por lead time.
//
// El motor es puro y determinista: recibe las tablas de referencia ya
// materializadas y el horizonte inyectado, y devuelve filas y pedidos sin
// estado compartido entre corridas.
package planning

import "github.com/shopspring/decimal"

// HorizonPolicy política de generación del horizonte semanal.
type HorizonPolicy string

const (
	// HorizonRolling N semanas futuras desde el lunes de la semana actual.
	HorizonRolling HorizonPolicy = "rolling"
	// HorizonYearEnd todos los lunes hasta el 31 de diciembre del año en curso.
	HorizonYearEnd HorizonPolicy = "year_end"
)

// Severity tratamiento de una inconsistencia de unidad de medida.
type Severity string

const (
	SeverityWarn  Severity = "warn"  // se reporta y la corrida continúa
	SeverityBlock Severity = "block" // aborta la corrida antes del neteo
)

// Config políticas de la corrida. Las variantes del proceso manual divergían
// en estos puntos (piso de demanda, severidad de UOM, horizonte); aquí son
// parámetros explícitos con defaults documentados, no comportamiento implícito.
type Config struct {
	DemandWindow        int             // puntos de historial a promediar (default 4)
	DemandFloor         decimal.Decimal // demanda semanal mínima, nunca < 1 (default 1)
	HorizonPolicy       HorizonPolicy   // rolling | year_end (default rolling)
	HorizonWeeks        int             // semanas del horizonte rolling (default 12)
	UOMMismatchSeverity Severity        // warn | block (default warn)
}

// DefaultConfig configuración canónica de la corrida.
func DefaultConfig() Config {
	return Config{
		DemandWindow:        4,
		DemandFloor:         decimal.NewFromInt(1),
		HorizonPolicy:       HorizonRolling,
		HorizonWeeks:        12,
		UOMMismatchSeverity: SeverityWarn,
	}
}

// normalized aplica los mínimos seguros sobre una configuración parcial.
// Una demanda semanal de 0 degenera la recurrencia (los saldos nunca bajan),
// por eso el piso nunca puede quedar por debajo de 1.
func (c Config) normalized() Config {
	if c.DemandWindow <= 0 {
		c.DemandWindow = 4
	}
	one := decimal.NewFromInt(1)
	if c.DemandFloor.LessThan(one) {
		c.DemandFloor = one
	}
	if c.HorizonPolicy == "" {
		c.HorizonPolicy = HorizonRolling
	}
	if c.HorizonWeeks <= 0 {
		c.HorizonWeeks = 12
	}
	if c.UOMMismatchSeverity == "" {
		c.UOMMismatchSeverity = SeverityWarn
	}
	return c
}
