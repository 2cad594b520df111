package planning

import (
	"fmt"
	"reflect"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/mrp-planner/internal/domain"
	"github.com/jhoicas/mrp-planner/internal/domain/entity"
)

// Tipos de advertencia no fatal.
const (
	WarningUOMMismatch = "uom_mismatch"
	WarningCoercion    = "coercion"
)

// Warning advertencia recogida durante la ingesta o la validación. No detiene
// la corrida: se devuelve junto al resultado para que el llamador la muestre.
type Warning struct {
	Kind      string `json:"kind"`
	Warehouse string `json:"warehouse,omitempty"`
	ItemID    string `json:"item_id,omitempty"`
	Field     string `json:"field,omitempty"`
	Message   string `json:"message"`
}

var validate = newValidator()

// newValidator registra decimal.Decimal como float64 para que los tags
// numéricos (gte, gt) apliquen también a cantidades.
func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if d, ok := field.Interface().(decimal.Decimal); ok {
			f, _ := d.Float64()
			return f
		}
		return nil
	}, decimal.Decimal{})
	return v
}

// ValidateInput es la puerta de validación previa al neteo. Los errores
// (clave duplicada, pack_size no positivo, restricciones de campo, horizonte
// malformado) abortan la corrida: no se producen resultados parciales con
// datos de referencia inválidos. Las inconsistencias de unidad de medida se
// tratan según la severidad configurada.
func ValidateInput(in Input, cfg Config) ([]Warning, error) {
	cfg = cfg.normalized()

	// Claves duplicadas en el maestro: parámetros ambiguos.
	seen := make(map[entity.ItemKey]int, len(in.Items))
	for _, p := range in.Items {
		seen[p.Key()]++
	}
	for _, p := range in.Items {
		if n := seen[p.Key()]; n > 1 {
			return nil, &domain.DuplicateKeyError{Warehouse: p.Warehouse, ItemID: p.ItemID, Rows: n}
		}
	}

	// Restricciones de campo del maestro.
	for _, p := range in.Items {
		if err := validate.Struct(p); err != nil {
			return nil, fmt.Errorf("parámetros de (%s, %s): %s: %w", p.Warehouse, p.ItemID, err, domain.ErrInvalidInput)
		}
		if p.PackSize.LessThanOrEqual(decimal.Zero) {
			return nil, &domain.InvalidLotSizeError{Warehouse: p.Warehouse, ItemID: p.ItemID, PackSize: p.PackSize}
		}
	}

	// El horizonte inyectado debe ser lunes estrictamente crecientes de 7 días.
	for i, w := range in.Buckets {
		if !w.Equal(MondayOf(w)) {
			return nil, fmt.Errorf("bucket %s no está anclado a lunes: %w", w.Format("2006-01-02"), domain.ErrInvalidInput)
		}
		if i > 0 && !w.Equal(in.Buckets[i-1].AddDate(0, 0, 7)) {
			return nil, fmt.Errorf("horizonte con huecos o desorden en %s: %w", w.Format("2006-01-02"), domain.ErrInvalidInput)
		}
	}

	// Unidad de medida entre maestro y snapshot: warn o block según config.
	uom := make(map[entity.ItemKey]string, len(in.Items))
	for _, p := range in.Items {
		uom[p.Key()] = p.UnitOfMeasure
	}
	var warnings []Warning
	for _, s := range in.Snapshots {
		master, ok := uom[s.Key()]
		if !ok || s.UnitOfMeasure == "" || s.UnitOfMeasure == master {
			continue
		}
		mismatch := &domain.UnitMismatchError{Warehouse: s.Warehouse, ItemID: s.ItemID, Master: master, Other: s.UnitOfMeasure}
		if cfg.UOMMismatchSeverity == SeverityBlock {
			return nil, mismatch
		}
		warnings = append(warnings, Warning{
			Kind:      WarningUOMMismatch,
			Warehouse: s.Warehouse,
			ItemID:    s.ItemID,
			Field:     "uom",
			Message:   mismatch.Error(),
		})
	}
	return warnings, nil
}
