package usecase

import (
	"context"
	"fmt"
	"io"

	"github.com/jhoicas/mrp-planner/internal/application/dto"
	"github.com/jhoicas/mrp-planner/internal/domain"
	"github.com/jhoicas/mrp-planner/internal/domain/repository"
	"github.com/jhoicas/mrp-planner/pkg/logger"
)

// ReferenceUseCase cargas y consultas de las tablas de referencia. Cada subida
// reemplaza la tabla completa: la planificación siempre corre sobre el último
// juego de datos cargado.
type ReferenceUseCase struct {
	parser   TableParser
	itemRepo repository.ItemParamsRepository
	snapRepo repository.InventorySnapshotRepository
	histRepo repository.DemandHistoryRepository
	rcptRepo repository.ScheduledReceiptRepository
	log      *logger.Logger
}

// NewReferenceUseCase construye el caso de uso de tablas de referencia.
func NewReferenceUseCase(
	parser TableParser,
	itemRepo repository.ItemParamsRepository,
	snapRepo repository.InventorySnapshotRepository,
	histRepo repository.DemandHistoryRepository,
	rcptRepo repository.ScheduledReceiptRepository,
	log *logger.Logger,
) *ReferenceUseCase {
	return &ReferenceUseCase{
		parser:   parser,
		itemRepo: itemRepo,
		snapRepo: snapRepo,
		histRepo: histRepo,
		rcptRepo: rcptRepo,
		log:      log,
	}
}

// UploadItemParams carga el maestro de artículos desde CSV.
func (uc *ReferenceUseCase) UploadItemParams(ctx context.Context, r io.Reader) (*dto.UploadResponse, error) {
	items, warnings, err := uc.parser.ParseItemParams(r)
	if err != nil {
		return nil, err
	}
	if err := uc.itemRepo.ReplaceAll(ctx, items); err != nil {
		return nil, fmt.Errorf("reemplazar maestro: %w", err)
	}
	uc.logUpload(domain.TableItemParams, len(items), len(warnings))
	return &dto.UploadResponse{Table: domain.TableItemParams, Rows: len(items), Warnings: warnings}, nil
}

// UploadSnapshots carga los saldos iniciales desde CSV.
func (uc *ReferenceUseCase) UploadSnapshots(ctx context.Context, r io.Reader) (*dto.UploadResponse, error) {
	snapshots, warnings, err := uc.parser.ParseSnapshots(r)
	if err != nil {
		return nil, err
	}
	if err := uc.snapRepo.ReplaceAll(ctx, snapshots); err != nil {
		return nil, fmt.Errorf("reemplazar saldos: %w", err)
	}
	uc.logUpload(domain.TableSnapshots, len(snapshots), len(warnings))
	return &dto.UploadResponse{Table: domain.TableSnapshots, Rows: len(snapshots), Warnings: warnings}, nil
}

// UploadDemandHistory carga el historial de consumo desde CSV.
func (uc *ReferenceUseCase) UploadDemandHistory(ctx context.Context, r io.Reader) (*dto.UploadResponse, error) {
	points, warnings, err := uc.parser.ParseDemandHistory(r)
	if err != nil {
		return nil, err
	}
	if err := uc.histRepo.ReplaceAll(ctx, points); err != nil {
		return nil, fmt.Errorf("reemplazar historial: %w", err)
	}
	uc.logUpload(domain.TableHistory, len(points), len(warnings))
	return &dto.UploadResponse{Table: domain.TableHistory, Rows: len(points), Warnings: warnings}, nil
}

// UploadReceipts carga los recibos programados desde CSV.
func (uc *ReferenceUseCase) UploadReceipts(ctx context.Context, r io.Reader) (*dto.UploadResponse, error) {
	receipts, warnings, err := uc.parser.ParseReceipts(r)
	if err != nil {
		return nil, err
	}
	if err := uc.rcptRepo.ReplaceAll(ctx, receipts); err != nil {
		return nil, fmt.Errorf("reemplazar recibos: %w", err)
	}
	uc.logUpload(domain.TableReceipts, len(receipts), len(warnings))
	return &dto.UploadResponse{Table: domain.TableReceipts, Rows: len(receipts), Warnings: warnings}, nil
}

// ListItemParams devuelve el maestro cargado.
func (uc *ReferenceUseCase) ListItemParams(ctx context.Context) ([]dto.ItemParamsDTO, error) {
	items, err := uc.itemRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ItemParamsDTO, 0, len(items))
	for _, p := range items {
		out = append(out, dto.ItemParamsFromEntity(p))
	}
	return out, nil
}

func (uc *ReferenceUseCase) logUpload(table string, rows, warnings int) {
	uc.log.Info().
		Str("table", table).
		Int("rows", rows).
		Int("warnings", warnings).
		Msg("tabla de referencia reemplazada")
}
