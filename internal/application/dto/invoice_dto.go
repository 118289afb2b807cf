package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateInvoiceRequest body para POST /invoices. Ambos campos obligatorios;
// la validación corre antes de tocar el almacén.
type CreateInvoiceRequest struct {
	CompCode string          `json:"comp_code" validate:"required"`
	Amt      decimal.Decimal `json:"amt" validate:"required,gt=0"`
}

// UpdateInvoiceRequest body para PUT /invoices/:id. El amt siempre se escribe;
// paid dispara la máquina de estados de pago.
type UpdateInvoiceRequest struct {
	Amt  decimal.Decimal `json:"amt" validate:"required,gt=0"`
	Paid bool            `json:"paid"`
}

// InvoiceResponse factura completa (listados, create, update).
type InvoiceResponse struct {
	ID       int64           `json:"id"`
	CompCode string          `json:"comp_code"`
	Amt      decimal.Decimal `json:"amt"`
	Paid     bool            `json:"paid"`
	AddDate  time.Time       `json:"add_date"`
	PaidDate *time.Time      `json:"paid_date"`
}

// CompanyInvoiceResponse factura dentro del GET de empresa: la forma legada
// omite comp_code porque es redundante con la empresa del sobre.
type CompanyInvoiceResponse struct {
	ID       int64           `json:"id"`
	Amt      decimal.Decimal `json:"amt"`
	Paid     bool            `json:"paid"`
	AddDate  time.Time       `json:"add_date"`
	PaidDate *time.Time      `json:"paid_date"`
}

// InvoiceWithCompanyResponse GET por id: factura con su empresa anidada.
type InvoiceWithCompanyResponse struct {
	ID       int64           `json:"id"`
	Amt      decimal.Decimal `json:"amt"`
	Paid     bool            `json:"paid"`
	AddDate  time.Time       `json:"add_date"`
	PaidDate *time.Time      `json:"paid_date"`
	Company  CompanyResponse `json:"company"`
}

// InvoiceEnvelope sobre {"invoice": ...}.
type InvoiceEnvelope struct {
	Invoice InvoiceResponse `json:"invoice"`
}

// InvoiceDetailEnvelope sobre del GET por id.
type InvoiceDetailEnvelope struct {
	Invoice InvoiceWithCompanyResponse `json:"invoice"`
}

// InvoiceListResponse sobre {"invoices": [...]}.
type InvoiceListResponse struct {
	Invoices []InvoiceResponse `json:"invoices"`
}
