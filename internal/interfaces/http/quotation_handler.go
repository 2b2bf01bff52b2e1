package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/minhlahunday/dealer-portal-api/internal/application/dto"
	appquotation "github.com/minhlahunday/dealer-portal-api/internal/application/quotation"
	"github.com/minhlahunday/dealer-portal-api/internal/domain"
)

// QuotationHandler maneja las peticiones HTTP de cotizaciones (protegido).
type QuotationHandler struct {
	uc *appquotation.UseCase
}

// NewQuotationHandler construye el handler.
func NewQuotationHandler(uc *appquotation.UseCase) *QuotationHandler {
	return &QuotationHandler{uc: uc}
}

// List lista cotizaciones paginadas.
// GET /api/quotations?page=&limit=&q=
func (h *QuotationHandler) List(c *fiber.Ctx) error {
	var req dto.PageRequest
	if err := c.QueryParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "parámetros de paginación inválidos"})
	}
	out, err := h.uc.ListQuotations(c.Context(), req)
	if err != nil {
		return h.mapError(c, err)
	}
	return c.JSON(out)
}

// GetByID detalle con tabla de facturación y elegibilidad de acciones.
// GET /api/quotations/:id
func (h *QuotationHandler) GetByID(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "id requerido"})
	}
	out, err := h.uc.GetQuotation(c.Context(), id)
	if err != nil {
		return h.mapError(c, err)
	}
	return c.JSON(out)
}

// Eligibility reporta si cancelar/convertir proceden y la razón advisory.
// GET /api/quotations/:id/eligibility
func (h *QuotationHandler) Eligibility(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "id requerido"})
	}
	out, err := h.uc.CheckEligibility(c.Context(), id)
	if err != nil {
		return h.mapError(c, err)
	}
	return c.JSON(out)
}

// Cancel cancela una cotización (gated por el ciclo de vida).
// POST /api/quotations/:id/cancel
func (h *QuotationHandler) Cancel(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "id requerido"})
	}
	out, err := h.uc.CancelQuotation(c.Context(), id)
	if err != nil {
		return h.mapError(c, err)
	}
	return c.JSON(out)
}

// mapError traduce errores de dominio a HTTP. Los rechazos advisory del
// ciclo de vida van como 409 con códigos distintos; el backend caído va
// como 502 para diferenciarlo de un fallo propio.
func (h *QuotationHandler) mapError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "datos inválidos"})
	case errors.Is(err, domain.ErrQuotationNotFound), errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "cotización no encontrada"})
	case errors.Is(err, domain.ErrQuotationCanceled):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "ALREADY_CANCELED", Message: "la cotización ya fue cancelada"})
	case errors.Is(err, domain.ErrQuotationExpired):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "EXPIRED", Message: "la cotización está vencida"})
	case errors.Is(err, domain.ErrQuotationNotValid):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "NOT_VALID", Message: "la cotización no está en estado válido"})
	case errors.Is(err, domain.ErrBackendUnavailable):
		return c.Status(fiber.StatusBadGateway).JSON(dto.ErrorResponse{Code: "BACKEND_UNAVAILABLE", Message: "el backend de cotizaciones no respondió"})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}
