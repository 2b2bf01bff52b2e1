package http

import (
	"github.com/gofiber/fiber/v2"

	appquotation "github.com/minhlahunday/dealer-portal-api/internal/application/quotation"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	QuotationUC *appquotation.UseCase
	JWTSecret   string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Rutas protegidas (requieren Bearer Token del staff)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Quotations (protegido): lectura para todo el staff, cancel solo
	// para quien puede vender.
	quotations := protected.Group("/quotations")
	quotationHandler := NewQuotationHandler(deps.QuotationUC)
	quotations.Get("/", quotationHandler.List)
	quotations.Get("/:id", quotationHandler.GetByID)
	quotations.Get("/:id/eligibility", quotationHandler.Eligibility)
	quotations.Post("/:id/cancel", RequireRole("admin", "vendedor"), quotationHandler.Cancel)
}
