package usecase

import (
	"context"
	"fmt"

	"github.com/tu-usuario/biztime-api/internal/application/dto"
	"github.com/tu-usuario/biztime-api/internal/domain"
	"github.com/tu-usuario/biztime-api/internal/domain/entity"
	"github.com/tu-usuario/biztime-api/internal/domain/repository"
	"github.com/tu-usuario/biztime-api/pkg/slug"
)

// CompanyUseCase aplica reglas de negocio para empresas (casos de uso).
type CompanyUseCase struct {
	companies repository.CompanyRepository
	invoices  repository.InvoiceRepository
}

// NewCompanyUseCase construye el caso de uso con los puertos de persistencia.
// Necesita el repo de facturas porque el GET por code agrega las facturas de
// la empresa.
func NewCompanyUseCase(companies repository.CompanyRepository, invoices repository.InvoiceRepository) *CompanyUseCase {
	return &CompanyUseCase{companies: companies, invoices: invoices}
}

// List devuelve todas las empresas, sin agregados.
func (uc *CompanyUseCase) List(ctx context.Context) (*dto.CompanyListResponse, error) {
	list, err := uc.companies.List(ctx)
	if err != nil {
		return nil, err
	}
	out := &dto.CompanyListResponse{Companies: make([]dto.CompanyResponse, 0, len(list))}
	for _, c := range list {
		out.Companies = append(out.Companies, companyToResponse(c))
	}
	return out, nil
}

// Get devuelve la empresa con sus industrias agregadas y sus facturas.
// Devuelve domain.ErrNotFound si el code no existe.
func (uc *CompanyUseCase) Get(ctx context.Context, code string) (*dto.CompanyDetailEnvelope, error) {
	company, err := uc.companies.Get(ctx, code)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, fmt.Errorf("company %q: %w", code, domain.ErrNotFound)
	}

	industries, err := uc.companies.GetIndustryNames(ctx, code)
	if err != nil {
		return nil, err
	}
	invoices, err := uc.invoices.ListByCompany(ctx, code)
	if err != nil {
		return nil, err
	}

	out := &dto.CompanyDetailEnvelope{
		Company: dto.CompanyDetailResponse{
			Code:        company.Code,
			Name:        company.Name,
			Description: company.Description,
			Industries:  industries,
		},
		Invoices: make([]dto.CompanyInvoiceResponse, 0, len(invoices)),
	}
	for _, inv := range invoices {
		out.Invoices = append(out.Invoices, dto.CompanyInvoiceResponse{
			ID:       inv.ID,
			Amt:      inv.Amt,
			Paid:     inv.Paid,
			AddDate:  inv.AddDate,
			PaidDate: inv.PaidDate,
		})
	}
	return out, nil
}

// Create crea una empresa derivando el code del name (slug). Devuelve
// domain.ErrInvalidInput si el name no aporta ningún carácter utilizable y
// domain.ErrDuplicate si el code derivado ya existe.
func (uc *CompanyUseCase) Create(ctx context.Context, in dto.CreateCompanyRequest) (*dto.CompanyEnvelope, error) {
	code := slug.Make(in.Name)
	if code == "" {
		return nil, fmt.Errorf("name %q no produce un code válido: %w", in.Name, domain.ErrInvalidInput)
	}
	company := &entity.Company{Code: code, Name: in.Name, Description: in.Description}
	if err := uc.companies.Create(ctx, company); err != nil {
		return nil, err
	}
	return &dto.CompanyEnvelope{Company: companyToResponse(company)}, nil
}

// Update actualiza los tres campos de la fila con currentCode; el code puede
// cambiar. Devuelve la fila post-update (con el code nuevo).
func (uc *CompanyUseCase) Update(ctx context.Context, currentCode string, in dto.UpdateCompanyRequest) (*dto.CompanyEnvelope, error) {
	company := &entity.Company{Code: in.Code, Name: in.Name, Description: in.Description}
	if err := uc.companies.Update(ctx, currentCode, company); err != nil {
		return nil, err
	}
	return &dto.CompanyEnvelope{Company: companyToResponse(company)}, nil
}

// Delete elimina la empresa. ErrNotFound si no existe; ErrConflict si aún
// tiene facturas (decisión explícita: rechazar, no cascada).
func (uc *CompanyUseCase) Delete(ctx context.Context, code string) error {
	return uc.companies.Delete(ctx, code)
}

func companyToResponse(c *entity.Company) dto.CompanyResponse {
	return dto.CompanyResponse{Code: c.Code, Name: c.Name, Description: c.Description}
}
