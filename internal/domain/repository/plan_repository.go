package repository

import (
	"context"

	"github.com/jhoicas/mrp-planner/internal/domain/entity"
)

// PlanRepository lecturas sobre corridas persistidas.
type PlanRepository interface {
	ListRuns(ctx context.Context, limit, offset int) ([]*entity.PlanRun, error)
	GetRun(ctx context.Context, id string) (*entity.PlanRun, error)
	GetRows(ctx context.Context, runID string) ([]entity.NettingRow, error)
	GetOrders(ctx context.Context, runID string) ([]entity.PlannedOrder, error)
}

// PlanWriter escrituras de una corrida. Se implementa atado a una transacción:
// la corrida con todas sus filas y pedidos se persiste de forma atómica.
type PlanWriter interface {
	CreateRun(ctx context.Context, run *entity.PlanRun) error
	InsertRows(ctx context.Context, runID string, rows []entity.NettingRow) error
	InsertOrders(ctx context.Context, runID string, orders []entity.PlannedOrder) error
}
