package postgres

import (
	"context"
	"fmt"

	"github.com/tu-usuario/biztime-api/internal/domain"
	"github.com/tu-usuario/biztime-api/internal/domain/entity"
	"github.com/tu-usuario/biztime-api/internal/domain/repository"
)

var _ repository.IndustryRepository = (*IndustryRepo)(nil)

// IndustryRepo implementación de IndustryRepository sobre PostgreSQL.
type IndustryRepo struct {
	q Querier
}

// NewIndustryRepository construye el adaptador. Pasar pool o tx (Querier).
func NewIndustryRepository(q Querier) *IndustryRepo {
	return &IndustryRepo{q: q}
}

// ListWithCompanies pliega el outer join industria→unión→empresa en un
// agregado por industria, en orden de primera aparición. Las filas con
// empresa NULL (industria sin asociaciones) aportan la industria con la
// lista de empresas vacía. Tabla vacía produce slice vacío, no error.
func (r *IndustryRepo) ListWithCompanies(ctx context.Context) ([]*entity.IndustryWithCompanies, error) {
	query := `
		SELECT i.code, i.name, c.code AS company
		FROM industries AS i
		LEFT JOIN industries_companies AS ic ON i.code = ic.industry_code
		LEFT JOIN companies AS c ON ic.comp_code = c.code
		ORDER BY i.code`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list industries: %w", err)
	}
	defer rows.Close()

	byCode := make(map[string]*entity.IndustryWithCompanies)
	list := []*entity.IndustryWithCompanies{}
	for rows.Next() {
		var code, name string
		var company *string
		if err := rows.Scan(&code, &name, &company); err != nil {
			return nil, fmt.Errorf("scan industry: %w", err)
		}
		agg, ok := byCode[code]
		if !ok {
			agg = &entity.IndustryWithCompanies{
				Industry:  entity.Industry{Code: code, Name: name},
				Companies: []string{},
			}
			byCode[code] = agg
			list = append(list, agg)
		}
		if company != nil {
			agg.Companies = append(agg.Companies, *company)
		}
	}
	return list, rows.Err()
}

// Create persiste una nueva industria.
func (r *IndustryRepo) Create(ctx context.Context, industry *entity.Industry) error {
	_, err := r.q.Exec(ctx,
		`INSERT INTO industries (code, name) VALUES ($1, $2)`,
		industry.Code, industry.Name,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("industry %q: %w", industry.Code, domain.ErrDuplicate)
		}
		return fmt.Errorf("insert industry: %w", err)
	}
	return nil
}

// Associate inserta la fila de unión empresa↔industria. Claves foráneas
// inválidas se traducen a ErrCreateFailed; el par repetido a ErrDuplicate.
func (r *IndustryRepo) Associate(ctx context.Context, compCode, industryCode string) error {
	_, err := r.q.Exec(ctx,
		`INSERT INTO industries_companies (comp_code, industry_code) VALUES ($1, $2)`,
		compCode, industryCode,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("asociación %s↔%s: %w", compCode, industryCode, domain.ErrDuplicate)
		}
		if isForeignKeyViolation(err) {
			return fmt.Errorf("asociación %s↔%s: %w", compCode, industryCode, domain.ErrCreateFailed)
		}
		return fmt.Errorf("insert industry company: %w", err)
	}
	return nil
}
