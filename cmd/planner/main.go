// Comando planner: corrida de planificación en modo batch, sin base de datos.
// Lee las cuatro tablas de referencia desde CSV, ejecuta el motor y escribe
// las filas de proyección y los pedidos planificados como CSV (y opcionalmente
// el reporte PDF) en el directorio de salida.
package main

import (
	"context"
	"encoding/csv"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/mrp-planner/internal/application/planning"
	"github.com/jhoicas/mrp-planner/internal/domain/entity"
	"github.com/jhoicas/mrp-planner/internal/infrastructure/csvload"
	infrapdf "github.com/jhoicas/mrp-planner/internal/infrastructure/pdf"
	"github.com/jhoicas/mrp-planner/pkg/logger"
)

func main() {
	var (
		itemsPath    = flag.String("items", "", "CSV del maestro de artículos (requerido)")
		onHandPath   = flag.String("on-hand", "", "CSV de saldos iniciales (requerido)")
		historyPath  = flag.String("demand-history", "", "CSV de historial de consumo (requerido)")
		receiptsPath = flag.String("receipts", "", "CSV de recibos programados (opcional)")
		outDir       = flag.String("out", ".", "directorio de salida")
		asOfFlag     = flag.String("as-of", "", "fecha base YYYY-MM-DD (default: hoy)")
		policy       = flag.String("policy", "rolling", "política de horizonte: rolling | year_end")
		weeks        = flag.Int("weeks", 12, "semanas del horizonte rolling")
		window       = flag.Int("window", 4, "puntos de historial a promediar")
		floor        = flag.Float64("floor", 1, "demanda semanal mínima")
		uomSeverity  = flag.String("uom-severity", "warn", "inconsistencia de UdM: warn | block")
		withPDF      = flag.Bool("pdf", false, "generar también el reporte PDF de pedidos")
	)
	flag.Parse()

	log := logger.New(logger.Config{Env: "development", Level: "info"})

	if *itemsPath == "" || *onHandPath == "" || *historyPath == "" {
		flag.Usage()
		os.Exit(2)
	}

	asOf := time.Now()
	if *asOfFlag != "" {
		parsed, err := time.Parse("2006-01-02", *asOfFlag)
		if err != nil {
			log.Fatal().Str("as_of", *asOfFlag).Msg("as-of debe tener formato YYYY-MM-DD")
		}
		asOf = parsed
	}

	cfg := planning.Config{
		DemandWindow:        *window,
		DemandFloor:         decimal.NewFromFloat(*floor),
		HorizonPolicy:       planning.HorizonPolicy(*policy),
		HorizonWeeks:        *weeks,
		UOMMismatchSeverity: planning.Severity(*uomSeverity),
	}

	loader := csvload.NewLoader()
	var warnings []planning.Warning

	items, w, err := parseFile(*itemsPath, loader.ParseItemParams)
	if err != nil {
		log.Fatal().Err(err).Str("file", *itemsPath).Msg("maestro de artículos inválido")
	}
	warnings = append(warnings, w...)

	snapshots, w, err := parseFile(*onHandPath, loader.ParseSnapshots)
	if err != nil {
		log.Fatal().Err(err).Str("file", *onHandPath).Msg("saldos iniciales inválidos")
	}
	warnings = append(warnings, w...)

	history, w, err := parseFile(*historyPath, loader.ParseDemandHistory)
	if err != nil {
		log.Fatal().Err(err).Str("file", *historyPath).Msg("historial de consumo inválido")
	}
	warnings = append(warnings, w...)

	var receipts []entity.ScheduledReceipt
	if *receiptsPath != "" {
		receipts, w, err = parseFile(*receiptsPath, loader.ParseReceipts)
		if err != nil {
			log.Fatal().Err(err).Str("file", *receiptsPath).Msg("recibos programados inválidos")
		}
		warnings = append(warnings, w...)
	}

	buckets := planning.Buckets(cfg, asOf)
	result, err := planning.Plan(context.Background(), planning.Input{
		Items:     items,
		Snapshots: snapshots,
		History:   history,
		Receipts:  receipts,
		Buckets:   buckets,
	}, cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("corrida abortada en validación")
	}
	warnings = append(warnings, result.Warnings...)

	for _, warn := range warnings {
		log.Warn().
			Str("kind", warn.Kind).
			Str("warehouse", warn.Warehouse).
			Str("item_id", warn.ItemID).
			Msg(warn.Message)
	}

	rowsPath := filepath.Join(*outDir, "plan_rows.csv")
	if err := writeCSV(rowsPath, rowsHeader, rowRecords(result.Rows)); err != nil {
		log.Fatal().Err(err).Str("file", rowsPath).Msg("escribir filas de proyección")
	}
	ordersPath := filepath.Join(*outDir, "plan_orders.csv")
	if err := writeCSV(ordersPath, ordersHeader, orderRecords(result.Orders)); err != nil {
		log.Fatal().Err(err).Str("file", ordersPath).Msg("escribir pedidos planificados")
	}

	if *withPDF {
		run := &entity.PlanRun{
			ID:            "batch",
			AsOf:          asOf,
			HorizonPolicy: *policy,
			BucketCount:   len(buckets),
			ItemCount:     len(items),
			OrderCount:    len(result.Orders),
			WarningCount:  len(warnings),
			CreatedAt:     time.Now(),
		}
		pdfBytes, err := infrapdf.NewMarotoReportGenerator().GenerateOrdersReport(context.Background(), run, result.Orders)
		if err != nil {
			log.Fatal().Err(err).Msg("generar reporte PDF")
		}
		pdfPath := filepath.Join(*outDir, "plan_orders.pdf")
		if err := os.WriteFile(pdfPath, pdfBytes, 0o644); err != nil {
			log.Fatal().Err(err).Str("file", pdfPath).Msg("escribir reporte PDF")
		}
	}

	log.Info().
		Int("items", len(items)).
		Int("buckets", len(buckets)).
		Int("rows", len(result.Rows)).
		Int("orders", len(result.Orders)).
		Int("warnings", len(warnings)).
		Msg("corrida de planificación completada")
}

// parseFile abre un CSV y lo pasa por el parser indicado.
func parseFile[T any](path string, parse func(io.Reader) ([]T, []planning.Warning, error)) ([]T, []planning.Warning, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("abrir %s: %w", path, err)
	}
	defer f.Close()
	return parse(f)
}

var rowsHeader = []string{
	"warehouse", "item_id", "week_start", "beg_soh", "wkly_req", "incoming",
	"shortage", "planned_order_qty", "end_soh", "safety_stock",
}

func rowRecords(rows []entity.NettingRow) [][]string {
	records := make([][]string, 0, len(rows))
	for _, r := range rows {
		records = append(records, []string{
			r.Warehouse, r.ItemID, r.WeekStart.Format("2006-01-02"),
			r.BegSOH.String(), r.WeeklyReq.String(), r.Incoming.String(),
			r.Shortage.String(), r.PlannedOrderQty.String(), r.EndSOH.String(),
			r.SafetyStock.String(),
		})
	}
	return records
}

var ordersHeader = []string{
	"warehouse", "item_id", "description", "uom", "qty", "receipt_week", "release_week",
}

func orderRecords(orders []entity.PlannedOrder) [][]string {
	records := make([][]string, 0, len(orders))
	for _, o := range orders {
		records = append(records, []string{
			o.Warehouse, o.ItemID, o.Description, o.UnitOfMeasure,
			o.Qty.String(), o.ReceiptWeek.Format("2006-01-02"), o.ReleaseWeek.Format("2006-01-02"),
		})
	}
	return records
}

func writeCSV(path string, header []string, records [][]string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(header); err != nil {
		return err
	}
	if err := w.WriteAll(records); err != nil {
		return err
	}
	w.Flush()
	return w.Error()
}
