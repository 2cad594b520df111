package dto

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/mrp-planner/internal/application/planning"
	"github.com/jhoicas/mrp-planner/internal/domain/entity"
)

// UploadResponse resultado de la carga de una tabla de referencia.
type UploadResponse struct {
	Table    string             `json:"table"`
	Rows     int                `json:"rows"`
	Warnings []planning.Warning `json:"warnings,omitempty"`
}

// ItemParamsDTO fila del maestro de artículos para presentación.
type ItemParamsDTO struct {
	Warehouse     string          `json:"warehouse"`
	ItemID        string          `json:"item_id"`
	Description   string          `json:"description"`
	UnitOfMeasure string          `json:"uom"`
	LeadTimeWeeks int             `json:"lead_time"`
	SafetyStock   decimal.Decimal `json:"safety_stock"`
	MOQ           decimal.Decimal `json:"moq"`
	PackSize      decimal.Decimal `json:"pack_size"`
}

// ItemParamsFromEntity mapea una fila del maestro.
func ItemParamsFromEntity(p entity.ItemParams) ItemParamsDTO {
	return ItemParamsDTO{
		Warehouse:     p.Warehouse,
		ItemID:        p.ItemID,
		Description:   p.Description,
		UnitOfMeasure: p.UnitOfMeasure,
		LeadTimeWeeks: p.LeadTimeWeeks,
		SafetyStock:   p.SafetyStock,
		MOQ:           p.MOQ,
		PackSize:      p.PackSize,
	}
}
