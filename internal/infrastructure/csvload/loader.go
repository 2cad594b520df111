// Package csvload implementa el colaborador de ingesta: carga las cuatro
// tablas de referencia desde CSV. Limpia encabezados, verifica columnas
// obligatorias (SchemaError) y coerciona cantidades no numéricas a 0 dejando
// una advertencia; nunca aborta por un valor sucio.
package csvload

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/mrp-planner/internal/application/planning"
	"github.com/jhoicas/mrp-planner/internal/domain"
	"github.com/jhoicas/mrp-planner/internal/domain/entity"
)

const dateLayout = "2006-01-02"

// Loader parser CSV de las tablas de referencia. Implementa el puerto
// usecase.TableParser.
type Loader struct{}

// NewLoader construye el parser.
func NewLoader() *Loader { return &Loader{} }

// header lee la fila de encabezados, recorta espacios y devuelve el índice de
// columna por nombre. Columnas obligatorias ausentes → SchemaError con la
// lista completa de faltantes.
func header(r *csv.Reader, table string, required []string) (map[string]int, error) {
	record, err := r.Read()
	if err != nil {
		return nil, fmt.Errorf("leer encabezados de %s: %w", table, err)
	}
	idx := make(map[string]int, len(record))
	for i, name := range record {
		idx[strings.TrimSpace(name)] = i
	}
	var missing []string
	for _, col := range required {
		if _, ok := idx[col]; !ok {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		return nil, &domain.SchemaError{Table: table, Missing: missing}
	}
	return idx, nil
}

func field(record []string, idx map[string]int, col string) string {
	i, ok := idx[col]
	if !ok || i >= len(record) {
		return ""
	}
	return strings.TrimSpace(record[i])
}

// coerceDecimal convierte un campo a decimal; lo no numérico queda en 0 con
// advertencia, nunca aborta la carga.
func coerceDecimal(raw, table, col string, line int, warnings *[]planning.Warning) decimal.Decimal {
	if raw == "" {
		return decimal.Zero
	}
	v, err := decimal.NewFromString(raw)
	if err != nil {
		*warnings = append(*warnings, planning.Warning{
			Kind:    planning.WarningCoercion,
			Field:   col,
			Message: fmt.Sprintf("%s fila %d: %q no es numérico en %s; se usa 0", table, line, raw, col),
		})
		return decimal.Zero
	}
	return v
}

func coerceInt(raw, table, col string, line int, warnings *[]planning.Warning) int {
	if raw == "" {
		return 0
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		*warnings = append(*warnings, planning.Warning{
			Kind:    planning.WarningCoercion,
			Field:   col,
			Message: fmt.Sprintf("%s fila %d: %q no es entero en %s; se usa 0", table, line, raw, col),
		})
		return 0
	}
	return v
}

func newReader(r io.Reader) *csv.Reader {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true
	return cr
}

// ParseItemParams carga el maestro de artículos.
func (l *Loader) ParseItemParams(r io.Reader) ([]entity.ItemParams, []planning.Warning, error) {
	cr := newReader(r)
	idx, err := header(cr, domain.TableItemParams, []string{
		"warehouse", "item_id", "description", "uom", "lead_time", "safety_stock", "MOQ", "pack_size",
	})
	if err != nil {
		return nil, nil, err
	}

	var (
		items    []entity.ItemParams
		warnings []planning.Warning
	)
	for line := 2; ; line++ {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, nil, fmt.Errorf("%s fila %d: %w", domain.TableItemParams, line, err)
		}
		items = append(items, entity.ItemParams{
			Warehouse:     field(record, idx, "warehouse"),
			ItemID:        field(record, idx, "item_id"),
			Description:   field(record, idx, "description"),
			UnitOfMeasure: field(record, idx, "uom"),
			LeadTimeWeeks: coerceInt(field(record, idx, "lead_time"), domain.TableItemParams, "lead_time", line, &warnings),
			SafetyStock:   coerceDecimal(field(record, idx, "safety_stock"), domain.TableItemParams, "safety_stock", line, &warnings),
			MOQ:           coerceDecimal(field(record, idx, "MOQ"), domain.TableItemParams, "MOQ", line, &warnings),
			PackSize:      coerceDecimal(field(record, idx, "pack_size"), domain.TableItemParams, "pack_size", line, &warnings),
		})
	}
	return items, warnings, nil
}

// ParseSnapshots carga los saldos iniciales. La columna uom es opcional.
func (l *Loader) ParseSnapshots(r io.Reader) ([]entity.InventorySnapshot, []planning.Warning, error) {
	cr := newReader(r)
	idx, err := header(cr, domain.TableSnapshots, []string{"warehouse", "item_id", "on_hand_qty"})
	if err != nil {
		return nil, nil, err
	}

	var (
		snapshots []entity.InventorySnapshot
		warnings  []planning.Warning
	)
	for line := 2; ; line++ {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, nil, fmt.Errorf("%s fila %d: %w", domain.TableSnapshots, line, err)
		}
		snapshots = append(snapshots, entity.InventorySnapshot{
			Warehouse:     field(record, idx, "warehouse"),
			ItemID:        field(record, idx, "item_id"),
			UnitOfMeasure: field(record, idx, "uom"),
			OnHandQty:     coerceDecimal(field(record, idx, "on_hand_qty"), domain.TableSnapshots, "on_hand_qty", line, &warnings),
		})
	}
	return snapshots, warnings, nil
}

// ParseDemandHistory carga el historial de consumo semanal.
func (l *Loader) ParseDemandHistory(r io.Reader) ([]entity.DemandHistoryPoint, []planning.Warning, error) {
	cr := newReader(r)
	idx, err := header(cr, domain.TableHistory, []string{"warehouse", "item_id", "week_start", "issued_qty"})
	if err != nil {
		return nil, nil, err
	}

	var (
		points   []entity.DemandHistoryPoint
		warnings []planning.Warning
	)
	for line := 2; ; line++ {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, nil, fmt.Errorf("%s fila %d: %w", domain.TableHistory, line, err)
		}
		week, err := time.Parse(dateLayout, field(record, idx, "week_start"))
		if err != nil {
			return nil, nil, fmt.Errorf("%s fila %d: week_start: %w", domain.TableHistory, line, err)
		}
		points = append(points, entity.DemandHistoryPoint{
			Warehouse: field(record, idx, "warehouse"),
			ItemID:    field(record, idx, "item_id"),
			WeekStart: week,
			IssuedQty: coerceDecimal(field(record, idx, "issued_qty"), domain.TableHistory, "issued_qty", line, &warnings),
		})
	}
	return points, warnings, nil
}

// ParseReceipts carga los recibos programados.
func (l *Loader) ParseReceipts(r io.Reader) ([]entity.ScheduledReceipt, []planning.Warning, error) {
	cr := newReader(r)
	idx, err := header(cr, domain.TableReceipts, []string{"warehouse", "item_id", "week_start", "qty"})
	if err != nil {
		return nil, nil, err
	}

	var (
		receipts []entity.ScheduledReceipt
		warnings []planning.Warning
	)
	for line := 2; ; line++ {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, nil, fmt.Errorf("%s fila %d: %w", domain.TableReceipts, line, err)
		}
		week, err := time.Parse(dateLayout, field(record, idx, "week_start"))
		if err != nil {
			return nil, nil, fmt.Errorf("%s fila %d: week_start: %w", domain.TableReceipts, line, err)
		}
		receipts = append(receipts, entity.ScheduledReceipt{
			Warehouse: field(record, idx, "warehouse"),
			ItemID:    field(record, idx, "item_id"),
			WeekStart: week,
			Qty:       coerceDecimal(field(record, idx, "qty"), domain.TableReceipts, "qty", line, &warnings),
		})
	}
	return receipts, warnings, nil
}
