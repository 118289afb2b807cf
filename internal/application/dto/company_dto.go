package dto

// CreateCompanyRequest entrada para crear una empresa. El code no se recibe:
// se deriva del name (slug).
type CreateCompanyRequest struct {
	Name        string `json:"name" validate:"required,min=1,max=200"`
	Description string `json:"description"`
}

// UpdateCompanyRequest entrada para actualizar una empresa. Actualización de
// todos los campos, incluido el propio code (actúa como rename); la URL lleva
// el code actual.
type UpdateCompanyRequest struct {
	Code        string `json:"code" validate:"required,min=1,max=200"`
	Name        string `json:"name" validate:"required,min=1,max=200"`
	Description string `json:"description"`
}

// CompanyResponse salida de una empresa.
type CompanyResponse struct {
	Code        string `json:"code"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// CompanyDetailResponse empresa con sus industrias agregadas (GET por code).
type CompanyDetailResponse struct {
	Code        string   `json:"code"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Industries  []string `json:"industries"`
}

// CompanyEnvelope sobre {"company": ...} para crear/actualizar.
type CompanyEnvelope struct {
	Company CompanyResponse `json:"company"`
}

// CompanyDetailEnvelope sobre del GET por code: empresa + sus facturas.
type CompanyDetailEnvelope struct {
	Company  CompanyDetailResponse    `json:"company"`
	Invoices []CompanyInvoiceResponse `json:"invoices"`
}

// CompanyListResponse sobre {"companies": [...]}.
type CompanyListResponse struct {
	Companies []CompanyResponse `json:"companies"`
}
