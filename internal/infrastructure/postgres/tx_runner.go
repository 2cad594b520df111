package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jhoicas/mrp-planner/internal/application/usecase"
	"github.com/jhoicas/mrp-planner/internal/domain/repository"
)

var _ usecase.PlanTxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// RunPlanPersist inicia una transacción, ejecuta fn con un PlanWriter atado a
// la tx y hace Commit o Rollback. Así la corrida se persiste completa o nada.
func (r *TxRunner) RunPlanPersist(ctx context.Context, fn func(w repository.PlanWriter) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(NewPlanWriter(tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
