package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/mrp-planner/internal/application/planning"
	"github.com/jhoicas/mrp-planner/internal/domain/entity"
)

const weekLayout = "2006-01-02"

// RunPlanRequest cuerpo de POST /api/plans. AsOf es opcional: vacío usa la
// fecha actual del servidor.
type RunPlanRequest struct {
	AsOf string `json:"as_of"` // YYYY-MM-DD
}

// PlanRunResponse resumen de una corrida persistida.
type PlanRunResponse struct {
	ID            string             `json:"id"`
	AsOf          string             `json:"as_of"`
	HorizonPolicy string             `json:"horizon_policy"`
	Buckets       int                `json:"buckets"`
	Items         int                `json:"items"`
	Orders        int                `json:"orders"`
	WarningCount  int                `json:"warning_count"`
	Warnings      []planning.Warning `json:"warnings,omitempty"`
	CreatedBy     string             `json:"created_by,omitempty"`
	CreatedAt     time.Time          `json:"created_at"`
}

// NettingRowDTO fila de neteo para presentación. Las cantidades se redondean
// a dos decimales aquí, en el borde: la aritmética interna del motor nunca
// redondea valores intermedios.
type NettingRowDTO struct {
	Warehouse       string          `json:"warehouse"`
	ItemID          string          `json:"item_id"`
	WeekStart       string          `json:"week_start"`
	BegSOH          decimal.Decimal `json:"beg_soh"`
	WklyReq         decimal.Decimal `json:"wkly_req"`
	Incoming        decimal.Decimal `json:"incoming"`
	Shortage        decimal.Decimal `json:"shortage"`
	PlannedOrderQty decimal.Decimal `json:"planned_order_qty"`
	EndSOH          decimal.Decimal `json:"end_soh"`
	SafetyStock     decimal.Decimal `json:"safety_stock"`
}

// PlannedOrderDTO pedido planificado para presentación.
type PlannedOrderDTO struct {
	Warehouse     string          `json:"warehouse"`
	ItemID        string          `json:"item_id"`
	Description   string          `json:"description"`
	UnitOfMeasure string          `json:"uom"`
	Qty           decimal.Decimal `json:"qty"`
	ReceiptWeek   string          `json:"receipt_week"`
	ReleaseWeek   string          `json:"release_week"`
}

// NettingRowFromEntity mapea una fila del motor a su forma de presentación.
func NettingRowFromEntity(r entity.NettingRow) NettingRowDTO {
	return NettingRowDTO{
		Warehouse:       r.Warehouse,
		ItemID:          r.ItemID,
		WeekStart:       r.WeekStart.Format(weekLayout),
		BegSOH:          r.BegSOH.Round(2),
		WklyReq:         r.WeeklyReq.Round(2),
		Incoming:        r.Incoming.Round(2),
		Shortage:        r.Shortage.Round(2),
		PlannedOrderQty: r.PlannedOrderQty.Round(2),
		EndSOH:          r.EndSOH.Round(2),
		SafetyStock:     r.SafetyStock.Round(2),
	}
}

// PlannedOrderFromEntity mapea un pedido planificado a su forma de presentación.
func PlannedOrderFromEntity(o entity.PlannedOrder) PlannedOrderDTO {
	return PlannedOrderDTO{
		Warehouse:     o.Warehouse,
		ItemID:        o.ItemID,
		Description:   o.Description,
		UnitOfMeasure: o.UnitOfMeasure,
		Qty:           o.Qty.Round(2),
		ReceiptWeek:   o.ReceiptWeek.Format(weekLayout),
		ReleaseWeek:   o.ReleaseWeek.Format(weekLayout),
	}
}

// PlanRunFromEntity mapea el resumen de una corrida.
func PlanRunFromEntity(run *entity.PlanRun) PlanRunResponse {
	return PlanRunResponse{
		ID:            run.ID,
		AsOf:          run.AsOf.Format(weekLayout),
		HorizonPolicy: run.HorizonPolicy,
		Buckets:       run.BucketCount,
		Items:         run.ItemCount,
		Orders:        run.OrderCount,
		WarningCount:  run.WarningCount,
		CreatedBy:     run.CreatedBy,
		CreatedAt:     run.CreatedAt,
	}
}
