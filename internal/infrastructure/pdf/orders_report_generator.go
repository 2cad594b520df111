// Package pdf implementa el reporte imprimible de pedidos planificados de una
// corrida de planificación.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Plan de Pedidos  │  ID corrida + Fecha base        │
//	│  ─────────────────────────────────────────────────────────  │
//	│  RESUMEN: política / semanas / artículos / advertencias      │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Bodega | Artículo | UdM | Cant | Recibo | Liberación │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTALES: pedidos + cantidad total                           │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/mrp-planner/internal/application/usecase"
	"github.com/jhoicas/mrp-planner/internal/domain/entity"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

var _ usecase.OrderReportGenerator = (*MarotoReportGenerator)(nil)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoReportGenerator implementa usecase.OrderReportGenerator usando Maroto v2.
type MarotoReportGenerator struct{}

// NewMarotoReportGenerator construye el generador.
func NewMarotoReportGenerator() *MarotoReportGenerator { return &MarotoReportGenerator{} }

// GenerateOrdersReport genera el PDF de pedidos planificados y devuelve sus bytes.
func (g *MarotoReportGenerator) GenerateOrdersReport(
	_ context.Context,
	run *entity.PlanRun,
	orders []entity.PlannedOrder,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Plan de Pedidos", true).
		Build()

	m := maroto.New(cfg)

	// Header principal
	m.AddRows(headerRow(run))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(summaryRow(run))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	// Tabla de pedidos
	m.AddRows(tableHeaderRow())
	for _, r := range tableOrderRows(orders) {
		m.AddRows(r)
	}

	// Totales
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalsRow(orders))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: título (izq) e ID de corrida + fecha base (der).
func headerRow(run *entity.PlanRun) core.Row {
	return row.New(18).Add(
		col.New(7).Add(
			text.New("PLAN DE PEDIDOS", props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Pedidos planificados por semana de recibo", props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("CORRIDA "+run.ID, props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New("Fecha base: "+run.AsOf.Format("02/01/2006"), props.Text{
				Size: 9, Align: align.Right, Top: 8,
			}),
			text.New("Generado: "+run.CreatedAt.Format("02/01/2006 15:04"), props.Text{
				Size: 8, Align: align.Right, Top: 14, Color: colorGray,
			}),
		),
	)
}

// summaryRow: parámetros y conteos de la corrida.
func summaryRow(run *entity.PlanRun) core.Row {
	return row.New(12).Add(
		col.New(12).Add(
			text.New("RESUMEN DE LA CORRIDA", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(fmt.Sprintf("Política: %s   |   Semanas: %d   |   Artículos: %d   |   Advertencias: %d",
				run.HorizonPolicy, run.BucketCount, run.ItemCount, run.WarningCount,
			), props.Text{Size: 8, Top: 7, Color: colorGray}),
		),
	)
}

// tableHeaderRow: cabecera de la tabla de pedidos.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Bodega", 1, align.Left),
		h("Artículo", 2, align.Left),
		h("Descripción", 3, align.Left),
		h("UdM", 1, align.Center),
		h("Cantidad", 2, align.Right),
		h("Sem. recibo", 2, align.Center),
		h("Sem. liberación", 1, align.Center),
	)
}

// tableOrderRows: una fila por pedido planificado.
func tableOrderRows(orders []entity.PlannedOrder) []core.Row {
	result := make([]core.Row, 0, len(orders))
	for _, o := range orders {
		result = append(result, row.New(7).Add(
			col.New(1).Add(text.New(
				o.Warehouse,
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(2).Add(text.New(
				o.ItemID,
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(3).Add(text.New(
				o.Description,
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(1).Add(text.New(
				o.UnitOfMeasure,
				props.Text{Size: 8, Align: align.Center, Top: 1},
			)),
			col.New(2).Add(text.New(
				o.Qty.StringFixed(2),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
			col.New(2).Add(text.New(
				o.ReceiptWeek.Format("02/01/2006"),
				props.Text{Size: 8, Align: align.Center, Top: 1},
			)),
			col.New(1).Add(text.New(
				o.ReleaseWeek.Format("02/01/2006"),
				props.Text{Size: 7, Align: align.Center, Top: 1},
			)),
		))
	}
	return result
}

// totalsRow: conteo de pedidos y suma de cantidades alineados a la derecha.
func totalsRow(orders []entity.PlannedOrder) core.Row {
	total := decimal.Zero
	for _, o := range orders {
		total = total.Add(o.Qty)
	}
	label := func(s string) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2,
		})
	}
	grandValue := func(s string) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right,
			Color: colorPrimary, Right: 1,
		})
	}
	return row.New(14).Add(
		col.New(6), // espacio izquierdo
		col.New(3).Add(
			label(fmt.Sprintf("Pedidos: %d", len(orders))),
		),
		col.New(3).Add(
			grandValue("Cantidad total: "+total.StringFixed(2)),
		),
	)
}
