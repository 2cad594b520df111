package planning

import (
	"context"
	"runtime"
	"sort"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"github.com/jhoicas/mrp-planner/internal/domain/entity"
)

// Input tablas de referencia ya ingeridas y validables, más el horizonte
// inyectado. Las tablas son propiedad del llamador durante la corrida y el
// motor no las muta.
type Input struct {
	Items     []entity.ItemParams
	Snapshots []entity.InventorySnapshot
	History   []entity.DemandHistoryPoint
	Receipts  []entity.ScheduledReceipt
	Buckets   []time.Time
}

// Result salida de una corrida: una fila por (bodega, artículo, semana), los
// pedidos derivados y las advertencias no fatales acumuladas.
type Result struct {
	Rows     []entity.NettingRow
	Orders   []entity.PlannedOrder
	Warnings []Warning
}

// Plan ejecuta la corrida completa: valida, estima demanda por artículo,
// netea semana a semana y programa liberaciones. Cada par (bodega, artículo)
// es un cómputo independiente sobre su propio corte de las tablas, así que se
// proyecta en paralelo; dentro de un artículo el recorrido es estrictamente
// secuencial. La salida es determinista: ordenada por (bodega, artículo) y,
// dentro de cada artículo, por semana.
func Plan(ctx context.Context, in Input, cfg Config) (*Result, error) {
	cfg = cfg.normalized()

	warnings, err := ValidateInput(in, cfg)
	if err != nil {
		return nil, err
	}

	onHand := make(map[entity.ItemKey]decimal.Decimal, len(in.Snapshots))
	for _, s := range in.Snapshots {
		onHand[s.Key()] = onHand[s.Key()].Add(s.OnHandQty)
	}

	history := make(map[entity.ItemKey][]entity.DemandHistoryPoint)
	for _, p := range in.History {
		history[p.Key()] = append(history[p.Key()], p)
	}
	for _, pts := range history {
		sort.Slice(pts, func(i, j int) bool { return pts[i].WeekStart.Before(pts[j].WeekStart) })
	}

	receipts := make(map[entity.ItemKey]map[time.Time]decimal.Decimal)
	for _, r := range in.Receipts {
		byWeek := receipts[r.Key()]
		if byWeek == nil {
			byWeek = make(map[time.Time]decimal.Decimal)
			receipts[r.Key()] = byWeek
		}
		week := time.Date(r.WeekStart.Year(), r.WeekStart.Month(), r.WeekStart.Day(), 0, 0, 0, 0, time.UTC)
		byWeek[week] = byWeek[week].Add(r.Qty)
	}

	items := make([]entity.ItemParams, len(in.Items))
	copy(items, in.Items)
	sort.Slice(items, func(i, j int) bool {
		if items[i].Warehouse != items[j].Warehouse {
			return items[i].Warehouse < items[j].Warehouse
		}
		return items[i].ItemID < items[j].ItemID
	})

	// Cada tarea escribe solo en su posición: sin sincronización más allá de
	// recoger resultados.
	rowsByItem := make([][]entity.NettingRow, len(items))
	ordersByItem := make([][]entity.PlannedOrder, len(items))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, p := range items {
		i, p := i, p
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			key := p.Key()
			weeklyReq := EstimateWeeklyDemand(history[key], cfg.DemandWindow, cfg.DemandFloor)
			rows := ProjectItem(p, onHand[key], weeklyReq, receipts[key], in.Buckets)
			rowsByItem[i] = rows
			ordersByItem[i] = ScheduleReleases(p, rows)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	res := &Result{Warnings: warnings}
	for i := range items {
		res.Rows = append(res.Rows, rowsByItem[i]...)
		res.Orders = append(res.Orders, ordersByItem[i]...)
	}
	return res, nil
}
