package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/biztime-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	CompanyUC  *usecase.CompanyUseCase
	InvoiceUC  *usecase.InvoiceUseCase
	IndustryUC *usecase.IndustryUseCase
}

// Router registra las rutas de la API. Las rutas van en la raíz, sin prefijo,
// para mantener compatibilidad con los clientes existentes.
func Router(app *fiber.App, deps RouterDeps) {
	companies := app.Group("/companies")
	companyHandler := NewCompanyHandler(deps.CompanyUC)
	companies.Get("/", companyHandler.List)
	companies.Post("/", companyHandler.Create)
	companies.Get("/:code", companyHandler.Get)
	companies.Put("/:code", companyHandler.Update)
	companies.Delete("/:code", companyHandler.Delete)

	invoices := app.Group("/invoices")
	invoiceHandler := NewInvoiceHandler(deps.InvoiceUC)
	invoices.Get("/", invoiceHandler.List)
	invoices.Post("/", invoiceHandler.Create)
	invoices.Get("/:id", invoiceHandler.Get)
	invoices.Put("/:id", invoiceHandler.Update)
	invoices.Delete("/:id", invoiceHandler.Delete)

	industries := app.Group("/industries")
	industryHandler := NewIndustryHandler(deps.IndustryUC)
	industries.Get("/", industryHandler.List)
	industries.Post("/", industryHandler.Create)
	industries.Post("/add-to-company", industryHandler.Associate)
}
