package repository

import (
	"context"

	"github.com/jhoicas/mrp-planner/internal/domain/entity"
)

// Las tablas de referencia se cargan completas en cada subida: el caso de uso
// reemplaza el contenido anterior en lugar de mezclarlo (ReplaceAll). La
// planificación siempre lee la tabla entera.

// ItemParamsRepository puerto de persistencia del maestro de artículos.
type ItemParamsRepository interface {
	ReplaceAll(ctx context.Context, items []entity.ItemParams) error
	List(ctx context.Context) ([]entity.ItemParams, error)
}

// InventorySnapshotRepository puerto de persistencia de saldos iniciales.
type InventorySnapshotRepository interface {
	ReplaceAll(ctx context.Context, snapshots []entity.InventorySnapshot) error
	List(ctx context.Context) ([]entity.InventorySnapshot, error)
}

// DemandHistoryRepository puerto de persistencia del historial de consumo.
type DemandHistoryRepository interface {
	ReplaceAll(ctx context.Context, points []entity.DemandHistoryPoint) error
	List(ctx context.Context) ([]entity.DemandHistoryPoint, error)
}

// ScheduledReceiptRepository puerto de persistencia de recibos programados.
type ScheduledReceiptRepository interface {
	ReplaceAll(ctx context.Context, receipts []entity.ScheduledReceipt) error
	List(ctx context.Context) ([]entity.ScheduledReceipt, error)
}
