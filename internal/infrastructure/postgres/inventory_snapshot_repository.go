package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jhoicas/mrp-planner/internal/domain/entity"
	"github.com/jhoicas/mrp-planner/internal/domain/repository"
)

var _ repository.InventorySnapshotRepository = (*InventorySnapshotRepo)(nil)

// InventorySnapshotRepo implementación de saldos iniciales sobre PostgreSQL.
type InventorySnapshotRepo struct {
	pool *pgxpool.Pool
}

// NewInventorySnapshotRepository construye el adaptador de saldos.
func NewInventorySnapshotRepository(pool *pgxpool.Pool) *InventorySnapshotRepo {
	return &InventorySnapshotRepo{pool: pool}
}

// ReplaceAll reemplaza la tabla completa con el contenido de la última subida.
func (r *InventorySnapshotRepo) ReplaceAll(ctx context.Context, snapshots []entity.InventorySnapshot) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if _, err := tx.Exec(ctx, `DELETE FROM inventory_on_hand`); err != nil {
		return fmt.Errorf("clear inventory_on_hand: %w", err)
	}
	_, err = tx.CopyFrom(ctx,
		pgx.Identifier{"inventory_on_hand"},
		[]string{"warehouse", "item_id", "uom", "on_hand_qty"},
		pgx.CopyFromSlice(len(snapshots), func(i int) ([]any, error) {
			s := snapshots[i]
			return []any{s.Warehouse, s.ItemID, s.UnitOfMeasure, s.OnHandQty}, nil
		}),
	)
	if err != nil {
		return fmt.Errorf("copy inventory_on_hand: %w", err)
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// List devuelve todos los saldos iniciales.
func (r *InventorySnapshotRepo) List(ctx context.Context) ([]entity.InventorySnapshot, error) {
	query := `
		SELECT warehouse, item_id, uom, on_hand_qty
		FROM inventory_on_hand
		ORDER BY warehouse, item_id`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list inventory_on_hand: %w", err)
	}
	defer rows.Close()

	var snapshots []entity.InventorySnapshot
	for rows.Next() {
		var s entity.InventorySnapshot
		if err := rows.Scan(&s.Warehouse, &s.ItemID, &s.UnitOfMeasure, &s.OnHandQty); err != nil {
			return nil, fmt.Errorf("scan inventory_on_hand: %w", err)
		}
		snapshots = append(snapshots, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate inventory_on_hand: %w", err)
	}
	return snapshots, nil
}
