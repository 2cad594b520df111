package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/mrp-planner/internal/application/dto"
	"github.com/jhoicas/mrp-planner/internal/application/planning"
	"github.com/jhoicas/mrp-planner/internal/domain/entity"
	"github.com/jhoicas/mrp-planner/internal/domain/repository"
	"github.com/jhoicas/mrp-planner/pkg/logger"
)

// PlanUseCase orquesta una corrida: carga las tablas de referencia, genera el
// horizonte según la política configurada, ejecuta el motor y persiste la
// corrida completa en una transacción.
type PlanUseCase struct {
	itemRepo repository.ItemParamsRepository
	snapRepo repository.InventorySnapshotRepository
	histRepo repository.DemandHistoryRepository
	rcptRepo repository.ScheduledReceiptRepository
	planRepo repository.PlanRepository
	tx       PlanTxRunner
	report   OrderReportGenerator
	cfg      planning.Config
	log      *logger.Logger
	now      func() time.Time // inyectable para pruebas deterministas
}

// NewPlanUseCase construye el caso de uso de planificación.
func NewPlanUseCase(
	itemRepo repository.ItemParamsRepository,
	snapRepo repository.InventorySnapshotRepository,
	histRepo repository.DemandHistoryRepository,
	rcptRepo repository.ScheduledReceiptRepository,
	planRepo repository.PlanRepository,
	tx PlanTxRunner,
	report OrderReportGenerator,
	cfg planning.Config,
	log *logger.Logger,
) *PlanUseCase {
	return &PlanUseCase{
		itemRepo: itemRepo,
		snapRepo: snapRepo,
		histRepo: histRepo,
		rcptRepo: rcptRepo,
		planRepo: planRepo,
		tx:       tx,
		report:   report,
		cfg:      cfg,
		log:      log,
		now:      time.Now,
	}
}

// WithClock reemplaza el reloj (para pruebas).
func (uc *PlanUseCase) WithClock(now func() time.Time) *PlanUseCase {
	uc.now = now
	return uc
}

// RunPlan ejecuta y persiste una corrida. asOf en cero usa la fecha actual;
// aparte del "hoy" para anclar el horizonte no hay ninguna dependencia de
// reloj ni aleatoriedad en el cómputo.
func (uc *PlanUseCase) RunPlan(ctx context.Context, userID string, asOf time.Time) (*dto.PlanRunResponse, error) {
	if asOf.IsZero() {
		asOf = uc.now()
	}

	items, err := uc.itemRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("cargar maestro de artículos: %w", err)
	}
	snapshots, err := uc.snapRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("cargar saldos iniciales: %w", err)
	}
	history, err := uc.histRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("cargar historial de consumo: %w", err)
	}
	receipts, err := uc.rcptRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("cargar recibos programados: %w", err)
	}

	buckets := planning.Buckets(uc.cfg, asOf)
	result, err := planning.Plan(ctx, planning.Input{
		Items:     items,
		Snapshots: snapshots,
		History:   history,
		Receipts:  receipts,
		Buckets:   buckets,
	}, uc.cfg)
	if err != nil {
		uc.log.Warn().Err(err).Msg("corrida abortada en validación")
		return nil, err
	}

	run := &entity.PlanRun{
		ID:            uuid.New().String(),
		AsOf:          asOf,
		HorizonPolicy: string(uc.cfg.HorizonPolicy),
		BucketCount:   len(buckets),
		ItemCount:     len(items),
		OrderCount:    len(result.Orders),
		WarningCount:  len(result.Warnings),
		CreatedBy:     userID,
		CreatedAt:     uc.now(),
	}

	err = uc.tx.RunPlanPersist(ctx, func(w repository.PlanWriter) error {
		if err := w.CreateRun(ctx, run); err != nil {
			return err
		}
		if err := w.InsertRows(ctx, run.ID, result.Rows); err != nil {
			return err
		}
		return w.InsertOrders(ctx, run.ID, result.Orders)
	})
	if err != nil {
		return nil, fmt.Errorf("persistir corrida: %w", err)
	}

	uc.log.Info().
		Str("run_id", run.ID).
		Int("items", run.ItemCount).
		Int("buckets", run.BucketCount).
		Int("orders", run.OrderCount).
		Msg("corrida de planificación completada")

	resp := dto.PlanRunFromEntity(run)
	resp.Warnings = result.Warnings
	return &resp, nil
}

// ListRuns devuelve el historial de corridas, la más reciente primero.
func (uc *PlanUseCase) ListRuns(ctx context.Context, page dto.PageRequest) ([]dto.PlanRunResponse, error) {
	page.DefaultPage()
	runs, err := uc.planRepo.ListRuns(ctx, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.PlanRunResponse, 0, len(runs))
	for _, r := range runs {
		out = append(out, dto.PlanRunFromEntity(r))
	}
	return out, nil
}

// GetRun devuelve el resumen de una corrida.
func (uc *PlanUseCase) GetRun(ctx context.Context, id string) (*dto.PlanRunResponse, error) {
	run, err := uc.planRepo.GetRun(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := dto.PlanRunFromEntity(run)
	return &resp, nil
}

// GetRows devuelve las filas de neteo de una corrida, redondeadas para
// presentación en el borde.
func (uc *PlanUseCase) GetRows(ctx context.Context, runID string) ([]dto.NettingRowDTO, error) {
	rows, err := uc.planRepo.GetRows(ctx, runID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.NettingRowDTO, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.NettingRowFromEntity(r))
	}
	return out, nil
}

// GetOrders devuelve los pedidos planificados de una corrida.
func (uc *PlanUseCase) GetOrders(ctx context.Context, runID string) ([]dto.PlannedOrderDTO, error) {
	orders, err := uc.planRepo.GetOrders(ctx, runID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.PlannedOrderDTO, 0, len(orders))
	for _, o := range orders {
		out = append(out, dto.PlannedOrderFromEntity(o))
	}
	return out, nil
}

// GetOrdersReport genera el PDF de pedidos planificados de una corrida.
func (uc *PlanUseCase) GetOrdersReport(ctx context.Context, runID string) ([]byte, error) {
	run, err := uc.planRepo.GetRun(ctx, runID)
	if err != nil {
		return nil, err
	}
	orders, err := uc.planRepo.GetOrders(ctx, runID)
	if err != nil {
		return nil, err
	}
	return uc.report.GenerateOrdersReport(ctx, run, orders)
}
