package http

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/mrp-planner/internal/application/dto"
	"github.com/jhoicas/mrp-planner/internal/application/usecase"
	"github.com/jhoicas/mrp-planner/internal/domain"
)

// PlanHandler maneja la ejecución y consulta de corridas de planificación.
type PlanHandler struct {
	uc *usecase.PlanUseCase
}

// NewPlanHandler construye el handler de planificación.
func NewPlanHandler(uc *usecase.PlanUseCase) *PlanHandler {
	return &PlanHandler{uc: uc}
}

// Run godoc
// @Summary      Ejecutar una corrida de planificación
// @Tags         plans
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RunPlanRequest  false  "as_of opcional (YYYY-MM-DD, default hoy)"
// @Success      201   {object}  dto.PlanRunResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/plans [post]
func (h *PlanHandler) Run(c *fiber.Ctx) error {
	var in dto.RunPlanRequest
	// Cuerpo vacío es válido: corre con la fecha de hoy.
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&in); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
		}
	}
	var asOf time.Time
	if in.AsOf != "" {
		parsed, err := time.Parse("2006-01-02", in.AsOf)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "as_of debe tener formato YYYY-MM-DD"})
		}
		asOf = parsed
	}
	out, err := h.uc.RunPlan(c.Context(), GetUserID(c), asOf)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar corridas de planificación
// @Tags         plans
// @Produce      json
// @Param        limit   query  int  false  "máximo de filas (default 50)"
// @Param        offset  query  int  false  "desplazamiento"
// @Success      200  {array}  dto.PlanRunResponse
// @Router       /api/plans [get]
func (h *PlanHandler) List(c *fiber.Ctx) error {
	page := dto.PageRequest{
		Limit:  c.QueryInt("limit"),
		Offset: c.QueryInt("offset"),
	}
	out, err := h.uc.ListRuns(c.Context(), page)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener una corrida por ID
// @Tags         plans
// @Produce      json
// @Param        id  path  string  true  "ID de la corrida"
// @Success      200  {object}  dto.PlanRunResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/plans/{id} [get]
func (h *PlanHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetRun(c.Context(), c.Params("id"))
	if err != nil {
		return h.notFoundOrInternal(c, err)
	}
	return c.JSON(out)
}

// GetRows godoc
// @Summary      Filas de proyección semanal de una corrida
// @Tags         plans
// @Produce      json
// @Param        id  path  string  true  "ID de la corrida"
// @Success      200  {array}  dto.NettingRowDTO
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/plans/{id}/rows [get]
func (h *PlanHandler) GetRows(c *fiber.Ctx) error {
	out, err := h.uc.GetRows(c.Context(), c.Params("id"))
	if err != nil {
		return h.notFoundOrInternal(c, err)
	}
	return c.JSON(out)
}

// GetOrders godoc
// @Summary      Pedidos planificados de una corrida
// @Tags         plans
// @Produce      json
// @Param        id  path  string  true  "ID de la corrida"
// @Success      200  {array}  dto.PlannedOrderDTO
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/plans/{id}/orders [get]
func (h *PlanHandler) GetOrders(c *fiber.Ctx) error {
	out, err := h.uc.GetOrders(c.Context(), c.Params("id"))
	if err != nil {
		return h.notFoundOrInternal(c, err)
	}
	return c.JSON(out)
}

// GetReport godoc
// @Summary      Reporte PDF de pedidos planificados
// @Tags         plans
// @Produce      application/pdf
// @Param        id  path  string  true  "ID de la corrida"
// @Success      200  {file}  binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/plans/{id}/report [get]
func (h *PlanHandler) GetReport(c *fiber.Ctx) error {
	pdfBytes, err := h.uc.GetOrdersReport(c.Context(), c.Params("id"))
	if err != nil {
		return h.notFoundOrInternal(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="plan-pedidos.pdf"`)
	return c.Send(pdfBytes)
}

func (h *PlanHandler) notFoundOrInternal(c *fiber.Ctx, err error) error {
	if errors.Is(err, domain.ErrNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "corrida no encontrada"})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
}
