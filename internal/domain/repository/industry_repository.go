package repository

import (
	"context"

	"github.com/tu-usuario/biztime-api/internal/domain/entity"
)

// IndustryRepository define el puerto de persistencia para Industry y su
// asociación muchos-a-muchos con Company.
type IndustryRepository interface {
	// ListWithCompanies agrupa el outer join industria→unión→empresa por
	// code de industria, en orden de primera aparición. Tabla vacía
	// devuelve slice vacío, no error.
	ListWithCompanies(ctx context.Context) ([]*entity.IndustryWithCompanies, error)
	Create(ctx context.Context, industry *entity.Industry) error
	// Associate inserta la fila de unión (comp_code, industry_code).
	Associate(ctx context.Context, compCode, industryCode string) error
}
