package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jhoicas/mrp-planner/internal/domain/entity"
	"github.com/jhoicas/mrp-planner/internal/domain/repository"
)

var _ repository.DemandHistoryRepository = (*DemandHistoryRepo)(nil)

// DemandHistoryRepo implementación del historial de consumo sobre PostgreSQL.
type DemandHistoryRepo struct {
	pool *pgxpool.Pool
}

// NewDemandHistoryRepository construye el adaptador del historial.
func NewDemandHistoryRepository(pool *pgxpool.Pool) *DemandHistoryRepo {
	return &DemandHistoryRepo{pool: pool}
}

// ReplaceAll reemplaza la tabla completa con el contenido de la última subida.
func (r *DemandHistoryRepo) ReplaceAll(ctx context.Context, points []entity.DemandHistoryPoint) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if _, err := tx.Exec(ctx, `DELETE FROM demand_history`); err != nil {
		return fmt.Errorf("clear demand_history: %w", err)
	}
	_, err = tx.CopyFrom(ctx,
		pgx.Identifier{"demand_history"},
		[]string{"warehouse", "item_id", "week_start", "issued_qty"},
		pgx.CopyFromSlice(len(points), func(i int) ([]any, error) {
			p := points[i]
			return []any{p.Warehouse, p.ItemID, p.WeekStart, p.IssuedQty}, nil
		}),
	)
	if err != nil {
		return fmt.Errorf("copy demand_history: %w", err)
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// List devuelve el historial completo ordenado por clave y semana.
func (r *DemandHistoryRepo) List(ctx context.Context) ([]entity.DemandHistoryPoint, error) {
	query := `
		SELECT warehouse, item_id, week_start, issued_qty
		FROM demand_history
		ORDER BY warehouse, item_id, week_start`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list demand_history: %w", err)
	}
	defer rows.Close()

	var points []entity.DemandHistoryPoint
	for rows.Next() {
		var p entity.DemandHistoryPoint
		if err := rows.Scan(&p.Warehouse, &p.ItemID, &p.WeekStart, &p.IssuedQty); err != nil {
			return nil, fmt.Errorf("scan demand_history: %w", err)
		}
		points = append(points, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate demand_history: %w", err)
	}
	return points, nil
}
