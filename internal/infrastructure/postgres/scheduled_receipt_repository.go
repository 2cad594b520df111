package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jhoicas/mrp-planner/internal/domain/entity"
	"github.com/jhoicas/mrp-planner/internal/domain/repository"
)

var _ repository.ScheduledReceiptRepository = (*ScheduledReceiptRepo)(nil)

// ScheduledReceiptRepo implementación de recibos programados sobre PostgreSQL.
type ScheduledReceiptRepo struct {
	pool *pgxpool.Pool
}

// NewScheduledReceiptRepository construye el adaptador de recibos.
func NewScheduledReceiptRepository(pool *pgxpool.Pool) *ScheduledReceiptRepo {
	return &ScheduledReceiptRepo{pool: pool}
}

// ReplaceAll reemplaza la tabla completa con el contenido de la última subida.
func (r *ScheduledReceiptRepo) ReplaceAll(ctx context.Context, receipts []entity.ScheduledReceipt) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if _, err := tx.Exec(ctx, `DELETE FROM scheduled_receipts`); err != nil {
		return fmt.Errorf("clear scheduled_receipts: %w", err)
	}
	_, err = tx.CopyFrom(ctx,
		pgx.Identifier{"scheduled_receipts"},
		[]string{"warehouse", "item_id", "week_start", "qty"},
		pgx.CopyFromSlice(len(receipts), func(i int) ([]any, error) {
			rc := receipts[i]
			return []any{rc.Warehouse, rc.ItemID, rc.WeekStart, rc.Qty}, nil
		}),
	)
	if err != nil {
		return fmt.Errorf("copy scheduled_receipts: %w", err)
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// List devuelve todos los recibos programados ordenados por clave y semana.
func (r *ScheduledReceiptRepo) List(ctx context.Context) ([]entity.ScheduledReceipt, error) {
	query := `
		SELECT warehouse, item_id, week_start, qty
		FROM scheduled_receipts
		ORDER BY warehouse, item_id, week_start`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list scheduled_receipts: %w", err)
	}
	defer rows.Close()

	var receipts []entity.ScheduledReceipt
	for rows.Next() {
		var rc entity.ScheduledReceipt
		if err := rows.Scan(&rc.Warehouse, &rc.ItemID, &rc.WeekStart, &rc.Qty); err != nil {
			return nil, fmt.Errorf("scan scheduled_receipts: %w", err)
		}
		receipts = append(receipts, rc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate scheduled_receipts: %w", err)
	}
	return receipts, nil
}
