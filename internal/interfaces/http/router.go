package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/mrp-planner/internal/application/auth"
	"github.com/jhoicas/mrp-planner/internal/application/usecase"
	"github.com/jhoicas/mrp-planner/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC      *auth.AuthUseCase
	ReferenceUC *usecase.ReferenceUseCase
	PlanUC      *usecase.PlanUseCase
	JWTSecret   string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Tablas de referencia: subir requiere admin o planificador, consultar no.
	reference := protected.Group("/reference")
	referenceHandler := NewReferenceHandler(deps.ReferenceUC)
	canUpload := RequireRole(entity.RoleAdmin, entity.RolePlanificador)
	reference.Post("/items", canUpload, referenceHandler.UploadItemParams)
	reference.Post("/on-hand", canUpload, referenceHandler.UploadSnapshots)
	reference.Post("/demand-history", canUpload, referenceHandler.UploadDemandHistory)
	reference.Post("/receipts", canUpload, referenceHandler.UploadReceipts)
	reference.Get("/items", referenceHandler.ListItemParams)

	// Corridas de planificación: ejecutar requiere admin o planificador,
	// las lecturas están abiertas a cualquier usuario autenticado.
	plans := protected.Group("/plans")
	planHandler := NewPlanHandler(deps.PlanUC)
	plans.Post("/", RequireRole(entity.RoleAdmin, entity.RolePlanificador), planHandler.Run)
	plans.Get("/", planHandler.List)
	plans.Get("/:id", planHandler.GetByID)
	plans.Get("/:id/rows", planHandler.GetRows)
	plans.Get("/:id/orders", planHandler.GetOrders)
	plans.Get("/:id/report", planHandler.GetReport)
}
