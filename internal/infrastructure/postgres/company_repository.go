package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/tu-usuario/biztime-api/internal/domain"
	"github.com/tu-usuario/biztime-api/internal/domain/entity"
	"github.com/tu-usuario/biztime-api/internal/domain/repository"
)

// Asegura que CompanyRepo implementa repository.CompanyRepository.
var _ repository.CompanyRepository = (*CompanyRepo)(nil)

// CompanyRepo implementación del puerto CompanyRepository sobre PostgreSQL.
type CompanyRepo struct {
	q Querier
}

// NewCompanyRepository construye el adaptador. Pasar pool o tx (Querier).
func NewCompanyRepository(q Querier) *CompanyRepo {
	return &CompanyRepo{q: q}
}

// List devuelve todas las empresas tal cual, sin joins.
func (r *CompanyRepo) List(ctx context.Context) ([]*entity.Company, error) {
	rows, err := r.q.Query(ctx, `SELECT code, name, description FROM companies ORDER BY code`)
	if err != nil {
		return nil, fmt.Errorf("list companies: %w", err)
	}
	defer rows.Close()

	var list []*entity.Company
	for rows.Next() {
		var c entity.Company
		if err := rows.Scan(&c.Code, &c.Name, &c.Description); err != nil {
			return nil, fmt.Errorf("scan company: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}

// Get obtiene una empresa por code. Devuelve (nil, nil) si no existe.
func (r *CompanyRepo) Get(ctx context.Context, code string) (*entity.Company, error) {
	var c entity.Company
	err := r.q.QueryRow(ctx,
		`SELECT code, name, description FROM companies WHERE code = $1`, code,
	).Scan(&c.Code, &c.Name, &c.Description)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get company: %w", err)
	}
	return &c, nil
}

// GetIndustryNames devuelve los nombres de industria asociados a la empresa.
// El outer join produce una fila con industria NULL cuando no hay asociaciones;
// esas filas se filtran al escanear para que el agregado sea una lista vacía
// genuina y no [null].
func (r *CompanyRepo) GetIndustryNames(ctx context.Context, code string) ([]string, error) {
	query := `
		SELECT i.name
		FROM companies AS c
		LEFT JOIN industries_companies AS ic ON c.code = ic.comp_code
		LEFT JOIN industries AS i ON ic.industry_code = i.code
		WHERE c.code = $1`
	rows, err := r.q.Query(ctx, query, code)
	if err != nil {
		return nil, fmt.Errorf("list company industries: %w", err)
	}
	defer rows.Close()

	names := []string{}
	for rows.Next() {
		var name *string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("scan industry name: %w", err)
		}
		if name != nil {
			names = append(names, *name)
		}
	}
	return names, rows.Err()
}

// Create persiste una nueva empresa.
func (r *CompanyRepo) Create(ctx context.Context, company *entity.Company) error {
	_, err := r.q.Exec(ctx,
		`INSERT INTO companies (code, name, description) VALUES ($1, $2, $3)`,
		company.Code, company.Name, company.Description,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("company %q: %w", company.Code, domain.ErrDuplicate)
		}
		return fmt.Errorf("insert company: %w", err)
	}
	return nil
}

// Update actualiza code, name y description de la fila con currentCode.
// El code puede cambiar (rename). Las FKs son por code y RESTRICT: renombrar
// una empresa que aún tiene facturas viola la FK y se traduce a ErrConflict.
func (r *CompanyRepo) Update(ctx context.Context, currentCode string, company *entity.Company) error {
	cmd, err := r.q.Exec(ctx,
		`UPDATE companies SET code = $1, name = $2, description = $3 WHERE code = $4`,
		company.Code, company.Name, company.Description, currentCode,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("company %q: %w", company.Code, domain.ErrDuplicate)
		}
		if isForeignKeyViolation(err) {
			return fmt.Errorf("company %q tiene facturas asociadas: %w", currentCode, domain.ErrConflict)
		}
		return fmt.Errorf("update company: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return fmt.Errorf("company %q: %w", currentCode, domain.ErrNotFound)
	}
	return nil
}

// Delete elimina una empresa por code. Una empresa con facturas no se borra:
// la FK RESTRICT lo rechaza y se traduce a ErrConflict.
func (r *CompanyRepo) Delete(ctx context.Context, code string) error {
	cmd, err := r.q.Exec(ctx, `DELETE FROM companies WHERE code = $1`, code)
	if err != nil {
		if isForeignKeyViolation(err) {
			return fmt.Errorf("company %q tiene facturas asociadas: %w", code, domain.ErrConflict)
		}
		return fmt.Errorf("delete company: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return fmt.Errorf("company %q: %w", code, domain.ErrNotFound)
	}
	return nil
}
