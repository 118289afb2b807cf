package dto

// CreateIndustryRequest body para POST /industries. A diferencia de Company,
// el code lo trae el cliente.
type CreateIndustryRequest struct {
	Code string `json:"code" validate:"required,min=1,max=200"`
	Name string `json:"name" validate:"required,min=1,max=200"`
}

// AssociateIndustryRequest body para POST /industries/add-to-company.
type AssociateIndustryRequest struct {
	CompCode     string `json:"comp_code" validate:"required"`
	IndustryCode string `json:"industry_code" validate:"required"`
}

// IndustryResponse industria sin agregados.
type IndustryResponse struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

// IndustryWithCompaniesResponse industria con los codes de empresa asociados.
type IndustryWithCompaniesResponse struct {
	Code      string   `json:"code"`
	Name      string   `json:"name"`
	Companies []string `json:"companies"`
}

// IndustryEnvelope sobre {"industry": ...}.
type IndustryEnvelope struct {
	Industry IndustryResponse `json:"industry"`
}

// IndustryCompanyResponse fila de unión creada por el associate.
type IndustryCompanyResponse struct {
	CompCode     string `json:"comp_code"`
	IndustryCode string `json:"industry_code"`
}

// IndustryCompanyEnvelope sobre {"industry_company": ...} del associate.
type IndustryCompanyEnvelope struct {
	IndustryCompany IndustryCompanyResponse `json:"industry_company"`
}

// IndustryListResponse sobre {"industries": [...]}.
type IndustryListResponse struct {
	Industries []IndustryWithCompaniesResponse `json:"industries"`
}
