package usecase

import (
	"context"
	"fmt"

	"github.com/tu-usuario/biztime-api/internal/application/dto"
	"github.com/tu-usuario/biztime-api/internal/domain"
	"github.com/tu-usuario/biztime-api/internal/domain/entity"
	"github.com/tu-usuario/biztime-api/internal/domain/repository"
)

// IndustryUseCase aplica reglas de negocio para industrias y su asociación
// con empresas.
type IndustryUseCase struct {
	industries repository.IndustryRepository
}

// NewIndustryUseCase construye el caso de uso con el puerto de persistencia.
func NewIndustryUseCase(industries repository.IndustryRepository) *IndustryUseCase {
	return &IndustryUseCase{industries: industries}
}

// List devuelve todas las industrias con los codes de empresa asociados,
// en orden de primera aparición. Una tabla vacía produce una lista vacía
// con éxito; "sin datos" no es un error.
func (uc *IndustryUseCase) List(ctx context.Context) (*dto.IndustryListResponse, error) {
	list, err := uc.industries.ListWithCompanies(ctx)
	if err != nil {
		return nil, err
	}
	out := &dto.IndustryListResponse{Industries: make([]dto.IndustryWithCompaniesResponse, 0, len(list))}
	for _, ind := range list {
		out.Industries = append(out.Industries, dto.IndustryWithCompaniesResponse{
			Code:      ind.Code,
			Name:      ind.Name,
			Companies: ind.Companies,
		})
	}
	return out, nil
}

// Create inserta una industria nueva. ErrDuplicate si el code ya existe.
func (uc *IndustryUseCase) Create(ctx context.Context, in dto.CreateIndustryRequest) (*dto.IndustryEnvelope, error) {
	if in.Code == "" || in.Name == "" {
		return nil, fmt.Errorf("code y name son requeridos: %w", domain.ErrInvalidInput)
	}
	industry := &entity.Industry{Code: in.Code, Name: in.Name}
	if err := uc.industries.Create(ctx, industry); err != nil {
		return nil, err
	}
	return &dto.IndustryEnvelope{
		Industry: dto.IndustryResponse{Code: industry.Code, Name: industry.Name},
	}, nil
}

// Associate crea la fila de unión empresa↔industria. ErrCreateFailed si
// alguna de las claves no existe; ErrDuplicate si el par ya estaba asociado.
func (uc *IndustryUseCase) Associate(ctx context.Context, in dto.AssociateIndustryRequest) (*dto.IndustryCompanyEnvelope, error) {
	if in.CompCode == "" || in.IndustryCode == "" {
		return nil, fmt.Errorf("comp_code e industry_code son requeridos: %w", domain.ErrInvalidInput)
	}
	if err := uc.industries.Associate(ctx, in.CompCode, in.IndustryCode); err != nil {
		return nil, err
	}
	return &dto.IndustryCompanyEnvelope{
		IndustryCompany: dto.IndustryCompanyResponse{
			CompCode:     in.CompCode,
			IndustryCode: in.IndustryCode,
		},
	}, nil
}
