package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jhoicas/mrp-planner/internal/domain/entity"
	"github.com/jhoicas/mrp-planner/internal/domain/repository"
)

var _ repository.ItemParamsRepository = (*ItemParamsRepo)(nil)

// ItemParamsRepo implementación del maestro de artículos sobre PostgreSQL.
type ItemParamsRepo struct {
	pool *pgxpool.Pool
}

// NewItemParamsRepository construye el adaptador del maestro de artículos.
func NewItemParamsRepository(pool *pgxpool.Pool) *ItemParamsRepo {
	return &ItemParamsRepo{pool: pool}
}

// ReplaceAll reemplaza la tabla completa con el contenido de la última subida.
// DELETE + COPY dentro de una transacción: o queda la versión nueva o la vieja.
func (r *ItemParamsRepo) ReplaceAll(ctx context.Context, items []entity.ItemParams) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if _, err := tx.Exec(ctx, `DELETE FROM item_master`); err != nil {
		return fmt.Errorf("clear item_master: %w", err)
	}
	_, err = tx.CopyFrom(ctx,
		pgx.Identifier{"item_master"},
		[]string{"warehouse", "item_id", "description", "uom", "lead_time_weeks", "safety_stock", "moq", "pack_size"},
		pgx.CopyFromSlice(len(items), func(i int) ([]any, error) {
			it := items[i]
			return []any{it.Warehouse, it.ItemID, it.Description, it.UnitOfMeasure,
				it.LeadTimeWeeks, it.SafetyStock, it.MOQ, it.PackSize}, nil
		}),
	)
	if err != nil {
		return fmt.Errorf("copy item_master: %w", err)
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// List devuelve el maestro completo ordenado por clave.
func (r *ItemParamsRepo) List(ctx context.Context) ([]entity.ItemParams, error) {
	query := `
		SELECT warehouse, item_id, description, uom, lead_time_weeks, safety_stock, moq, pack_size
		FROM item_master
		ORDER BY warehouse, item_id`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list item_master: %w", err)
	}
	defer rows.Close()

	var items []entity.ItemParams
	for rows.Next() {
		var it entity.ItemParams
		if err := rows.Scan(&it.Warehouse, &it.ItemID, &it.Description, &it.UnitOfMeasure,
			&it.LeadTimeWeeks, &it.SafetyStock, &it.MOQ, &it.PackSize); err != nil {
			return nil, fmt.Errorf("scan item_master: %w", err)
		}
		items = append(items, it)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate item_master: %w", err)
	}
	return items, nil
}
