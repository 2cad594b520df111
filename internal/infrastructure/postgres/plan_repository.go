package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/mrp-planner/internal/domain"
	"github.com/jhoicas/mrp-planner/internal/domain/entity"
	"github.com/jhoicas/mrp-planner/internal/domain/repository"
)

var _ repository.PlanRepository = (*PlanRepo)(nil)

// PlanRepo lecturas de corridas persistidas (usable con pool o tx).
type PlanRepo struct {
	q Querier
}

// NewPlanRepository construye el adaptador de lectura de corridas.
func NewPlanRepository(q Querier) *PlanRepo {
	return &PlanRepo{q: q}
}

// ListRuns devuelve corridas ordenadas de más reciente a más antigua.
func (r *PlanRepo) ListRuns(ctx context.Context, limit, offset int) ([]*entity.PlanRun, error) {
	query := `
		SELECT id, as_of, horizon_policy, bucket_count, item_count, order_count, warning_count, created_by, created_at
		FROM plan_runs
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list plan runs: %w", err)
	}
	defer rows.Close()

	var runs []*entity.PlanRun
	for rows.Next() {
		var run entity.PlanRun
		if err := rows.Scan(&run.ID, &run.AsOf, &run.HorizonPolicy, &run.BucketCount,
			&run.ItemCount, &run.OrderCount, &run.WarningCount, &run.CreatedBy, &run.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan plan run: %w", err)
		}
		runs = append(runs, &run)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate plan runs: %w", err)
	}
	return runs, nil
}

// GetRun obtiene una corrida por ID.
func (r *PlanRepo) GetRun(ctx context.Context, id string) (*entity.PlanRun, error) {
	query := `
		SELECT id, as_of, horizon_policy, bucket_count, item_count, order_count, warning_count, created_by, created_at
		FROM plan_runs WHERE id = $1`
	var run entity.PlanRun
	err := r.q.QueryRow(ctx, query, id).Scan(&run.ID, &run.AsOf, &run.HorizonPolicy,
		&run.BucketCount, &run.ItemCount, &run.OrderCount, &run.WarningCount, &run.CreatedBy, &run.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get plan run: %w", err)
	}
	return &run, nil
}

// GetRows devuelve las filas de proyección de una corrida, ordenadas por clave y semana.
func (r *PlanRepo) GetRows(ctx context.Context, runID string) ([]entity.NettingRow, error) {
	query := `
		SELECT warehouse, item_id, week_start, beg_soh, weekly_req, incoming, shortage,
		       planned_order_qty, end_soh, safety_stock
		FROM plan_rows WHERE run_id = $1
		ORDER BY warehouse, item_id, week_start`
	rows, err := r.q.Query(ctx, query, runID)
	if err != nil {
		return nil, fmt.Errorf("get plan rows: %w", err)
	}
	defer rows.Close()

	var result []entity.NettingRow
	for rows.Next() {
		var row entity.NettingRow
		if err := rows.Scan(&row.Warehouse, &row.ItemID, &row.WeekStart, &row.BegSOH,
			&row.WeeklyReq, &row.Incoming, &row.Shortage, &row.PlannedOrderQty,
			&row.EndSOH, &row.SafetyStock); err != nil {
			return nil, fmt.Errorf("scan plan row: %w", err)
		}
		result = append(result, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate plan rows: %w", err)
	}
	return result, nil
}

// GetOrders devuelve los pedidos planificados de una corrida.
func (r *PlanRepo) GetOrders(ctx context.Context, runID string) ([]entity.PlannedOrder, error) {
	query := `
		SELECT warehouse, item_id, description, uom, qty, receipt_week, release_week
		FROM plan_orders WHERE run_id = $1
		ORDER BY warehouse, item_id, receipt_week`
	rows, err := r.q.Query(ctx, query, runID)
	if err != nil {
		return nil, fmt.Errorf("get plan orders: %w", err)
	}
	defer rows.Close()

	var orders []entity.PlannedOrder
	for rows.Next() {
		var o entity.PlannedOrder
		if err := rows.Scan(&o.Warehouse, &o.ItemID, &o.Description, &o.UnitOfMeasure,
			&o.Qty, &o.ReceiptWeek, &o.ReleaseWeek); err != nil {
			return nil, fmt.Errorf("scan plan order: %w", err)
		}
		orders = append(orders, o)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate plan orders: %w", err)
	}
	return orders, nil
}
