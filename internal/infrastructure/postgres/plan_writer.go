package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/mrp-planner/internal/domain/entity"
	"github.com/jhoicas/mrp-planner/internal/domain/repository"
)

var _ repository.PlanWriter = (*PlanWriterRepo)(nil)

// PlanWriterRepo escrituras de una corrida. El TxRunner lo construye sobre una
// transacción: corrida, filas y pedidos llegan juntos o no llegan.
type PlanWriterRepo struct {
	q Querier
}

// NewPlanWriter construye el escritor de corridas. Pasar pool o tx (Querier).
func NewPlanWriter(q Querier) *PlanWriterRepo {
	return &PlanWriterRepo{q: q}
}

// CreateRun persiste la cabecera de la corrida.
func (r *PlanWriterRepo) CreateRun(ctx context.Context, run *entity.PlanRun) error {
	query := `
		INSERT INTO plan_runs (id, as_of, horizon_policy, bucket_count, item_count, order_count, warning_count, created_by, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(ctx, query,
		run.ID, run.AsOf, run.HorizonPolicy, run.BucketCount,
		run.ItemCount, run.OrderCount, run.WarningCount, run.CreatedBy, run.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert plan run: %w", err)
	}
	return nil
}

// InsertRows inserta las filas de proyección de la corrida con COPY.
func (r *PlanWriterRepo) InsertRows(ctx context.Context, runID string, rows []entity.NettingRow) error {
	_, err := r.q.CopyFrom(ctx,
		pgx.Identifier{"plan_rows"},
		[]string{"run_id", "warehouse", "item_id", "week_start", "beg_soh", "weekly_req",
			"incoming", "shortage", "planned_order_qty", "end_soh", "safety_stock"},
		pgx.CopyFromSlice(len(rows), func(i int) ([]any, error) {
			row := rows[i]
			return []any{runID, row.Warehouse, row.ItemID, row.WeekStart, row.BegSOH,
				row.WeeklyReq, row.Incoming, row.Shortage, row.PlannedOrderQty,
				row.EndSOH, row.SafetyStock}, nil
		}),
	)
	if err != nil {
		return fmt.Errorf("copy plan rows: %w", err)
	}
	return nil
}

// InsertOrders inserta los pedidos planificados de la corrida con COPY.
func (r *PlanWriterRepo) InsertOrders(ctx context.Context, runID string, orders []entity.PlannedOrder) error {
	_, err := r.q.CopyFrom(ctx,
		pgx.Identifier{"plan_orders"},
		[]string{"run_id", "warehouse", "item_id", "description", "uom", "qty", "receipt_week", "release_week"},
		pgx.CopyFromSlice(len(orders), func(i int) ([]any, error) {
			o := orders[i]
			return []any{runID, o.Warehouse, o.ItemID, o.Description, o.UnitOfMeasure,
				o.Qty, o.ReceiptWeek, o.ReleaseWeek}, nil
		}),
	)
	if err != nil {
		return fmt.Errorf("copy plan orders: %w", err)
	}
	return nil
}
