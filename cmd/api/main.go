package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/mrp-planner/internal/application/auth"
	"github.com/jhoicas/mrp-planner/internal/application/planning"
	"github.com/jhoicas/mrp-planner/internal/application/usecase"
	"github.com/jhoicas/mrp-planner/internal/infrastructure/csvload"
	infrapdf "github.com/jhoicas/mrp-planner/internal/infrastructure/pdf"
	"github.com/jhoicas/mrp-planner/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/mrp-planner/internal/interfaces/http"
	"github.com/jhoicas/mrp-planner/pkg/config"
	"github.com/jhoicas/mrp-planner/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	userRepo := postgres.NewUserRepository(pool)
	itemRepo := postgres.NewItemParamsRepository(pool)
	snapRepo := postgres.NewInventorySnapshotRepository(pool)
	histRepo := postgres.NewDemandHistoryRepository(pool)
	rcptRepo := postgres.NewScheduledReceiptRepository(pool)
	planRepo := postgres.NewPlanRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	planCfg := planning.Config{
		DemandWindow:        cfg.Plan.DemandWindow,
		DemandFloor:         decimal.NewFromFloat(cfg.Plan.DemandFloor),
		HorizonPolicy:       planning.HorizonPolicy(cfg.Plan.HorizonPolicy),
		HorizonWeeks:        cfg.Plan.HorizonWeeks,
		UOMMismatchSeverity: planning.Severity(cfg.Plan.UOMMismatchSeverity),
	}

	referenceUC := usecase.NewReferenceUseCase(
		csvload.NewLoader(), itemRepo, snapRepo, histRepo, rcptRepo, log,
	)
	planUC := usecase.NewPlanUseCase(
		itemRepo, snapRepo, histRepo, rcptRepo, planRepo,
		txRunner, infrapdf.NewMarotoReportGenerator(), planCfg, log,
	)
	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "MRP Planner API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:      authUC,
		ReferenceUC: referenceUC,
		PlanUC:      planUC,
		JWTSecret:   cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
