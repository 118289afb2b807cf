package repository

import (
	"context"

	"github.com/tu-usuario/biztime-api/internal/domain/entity"
)

// CompanyRepository define el puerto de persistencia para Company (DIP).
// La implementación vive en infrastructure. Los Get* devuelven (nil, nil)
// cuando no hay fila; el caso de uso decide si eso es ErrNotFound.
type CompanyRepository interface {
	List(ctx context.Context) ([]*entity.Company, error)
	Get(ctx context.Context, code string) (*entity.Company, error)
	// GetIndustryNames devuelve los nombres de industria asociados vía la
	// tabla de unión, en el orden en que el almacén devuelve las filas.
	// Sin asociaciones devuelve slice vacío (los NULL del outer join se filtran).
	GetIndustryNames(ctx context.Context, code string) ([]string, error)
	Create(ctx context.Context, company *entity.Company) error
	// Update actualiza code, name y description de la fila con currentCode.
	// Devuelve domain.ErrNotFound si ninguna fila coincide.
	Update(ctx context.Context, currentCode string, company *entity.Company) error
	Delete(ctx context.Context, code string) error
}
