package usecase

import (
	"context"
	"io"

	"github.com/jhoicas/mrp-planner/internal/application/planning"
	"github.com/jhoicas/mrp-planner/internal/domain/entity"
	"github.com/jhoicas/mrp-planner/internal/domain/repository"
)

// TableParser puerto de ingesta: convierte una tabla cruda (CSV) en entidades
// más las advertencias de coerción acumuladas. Lo implementa
// infrastructure/csvload.
type TableParser interface {
	ParseItemParams(r io.Reader) ([]entity.ItemParams, []planning.Warning, error)
	ParseSnapshots(r io.Reader) ([]entity.InventorySnapshot, []planning.Warning, error)
	ParseDemandHistory(r io.Reader) ([]entity.DemandHistoryPoint, []planning.Warning, error)
	ParseReceipts(r io.Reader) ([]entity.ScheduledReceipt, []planning.Warning, error)
}

// PlanTxRunner ejecuta la persistencia de una corrida dentro de una
// transacción: corrida, filas y pedidos se escriben de forma atómica o nada.
type PlanTxRunner interface {
	RunPlanPersist(ctx context.Context, fn func(w repository.PlanWriter) error) error
}

// OrderReportGenerator puerto del reporte PDF de pedidos planificados.
type OrderReportGenerator interface {
	GenerateOrdersReport(ctx context.Context, run *entity.PlanRun, orders []entity.PlannedOrder) ([]byte, error)
}
