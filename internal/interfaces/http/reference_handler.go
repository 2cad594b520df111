package http

import (
	"errors"
	"io"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/mrp-planner/internal/application/dto"
	"github.com/jhoicas/mrp-planner/internal/application/usecase"
	"github.com/jhoicas/mrp-planner/internal/domain"
)

// ReferenceHandler maneja la carga y consulta de las tablas de referencia
// (maestro de artículos, saldos, historial y recibos).
type ReferenceHandler struct {
	uc *usecase.ReferenceUseCase
}

// NewReferenceHandler construye el handler de tablas de referencia.
func NewReferenceHandler(uc *usecase.ReferenceUseCase) *ReferenceHandler {
	return &ReferenceHandler{uc: uc}
}

// uploadFn firma común de los casos de uso de subida.
type uploadFn func(c *fiber.Ctx, r io.Reader) (*dto.UploadResponse, error)

// handleUpload abre el archivo multipart "file" y delega en el caso de uso.
func (h *ReferenceHandler) handleUpload(c *fiber.Ctx, fn uploadFn) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_FILE", Message: "se requiere un archivo CSV en el campo 'file'"})
	}
	f, err := fileHeader.Open()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_FILE", Message: "no se pudo abrir el archivo"})
	}
	defer f.Close()

	out, err := fn(c, f)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// UploadItemParams godoc
// @Summary      Cargar maestro de artículos (CSV)
// @Tags         reference
// @Accept       multipart/form-data
// @Produce      json
// @Param        file  formData  file  true  "CSV del maestro de artículos"
// @Success      201   {object}  dto.UploadResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/reference/items [post]
func (h *ReferenceHandler) UploadItemParams(c *fiber.Ctx) error {
	return h.handleUpload(c, func(c *fiber.Ctx, r io.Reader) (*dto.UploadResponse, error) {
		return h.uc.UploadItemParams(c.Context(), r)
	})
}

// UploadSnapshots godoc
// @Summary      Cargar saldos iniciales (CSV)
// @Tags         reference
// @Accept       multipart/form-data
// @Produce      json
// @Param        file  formData  file  true  "CSV de saldos iniciales"
// @Success      201   {object}  dto.UploadResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/reference/on-hand [post]
func (h *ReferenceHandler) UploadSnapshots(c *fiber.Ctx) error {
	return h.handleUpload(c, func(c *fiber.Ctx, r io.Reader) (*dto.UploadResponse, error) {
		return h.uc.UploadSnapshots(c.Context(), r)
	})
}

// UploadDemandHistory godoc
// @Summary      Cargar historial de consumo (CSV)
// @Tags         reference
// @Accept       multipart/form-data
// @Produce      json
// @Param        file  formData  file  true  "CSV de historial de consumo"
// @Success      201   {object}  dto.UploadResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/reference/demand-history [post]
func (h *ReferenceHandler) UploadDemandHistory(c *fiber.Ctx) error {
	return h.handleUpload(c, func(c *fiber.Ctx, r io.Reader) (*dto.UploadResponse, error) {
		return h.uc.UploadDemandHistory(c.Context(), r)
	})
}

// UploadReceipts godoc
// @Summary      Cargar recibos programados (CSV)
// @Tags         reference
// @Accept       multipart/form-data
// @Produce      json
// @Param        file  formData  file  true  "CSV de recibos programados"
// @Success      201   {object}  dto.UploadResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/reference/receipts [post]
func (h *ReferenceHandler) UploadReceipts(c *fiber.Ctx) error {
	return h.handleUpload(c, func(c *fiber.Ctx, r io.Reader) (*dto.UploadResponse, error) {
		return h.uc.UploadReceipts(c.Context(), r)
	})
}

// ListItemParams godoc
// @Summary      Listar maestro de artículos
// @Tags         reference
// @Produce      json
// @Success      200  {array}  dto.ItemParamsDTO
// @Router       /api/reference/items [get]
func (h *ReferenceHandler) ListItemParams(c *fiber.Ctx) error {
	items, err := h.uc.ListItemParams(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(items)
}
