package usecase_test

import (
	"context"
	"fmt"
	"time"

	"github.com/tu-usuario/biztime-api/internal/domain"
	"github.com/tu-usuario/biztime-api/internal/domain/entity"
	"github.com/tu-usuario/biztime-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria de los puertos de persistencia. Reproducen el contrato de
// los adaptadores PostgreSQL: (nil, nil) en lecturas sin fila, sentinelas de
// dominio envueltos en escrituras que violan constraints.
// ──────────────────────────────────────────────────────────────────────────────

type fakeCompanyRepo struct {
	companies  []*entity.Company
	industries map[string][]string // comp code -> nombres de industria
}

func newFakeCompanyRepo() *fakeCompanyRepo {
	return &fakeCompanyRepo{industries: map[string][]string{}}
}

func (r *fakeCompanyRepo) List(ctx context.Context) ([]*entity.Company, error) {
	return r.companies, nil
}

func (r *fakeCompanyRepo) Get(ctx context.Context, code string) (*entity.Company, error) {
	for _, c := range r.companies {
		if c.Code == code {
			return c, nil
		}
	}
	return nil, nil
}

func (r *fakeCompanyRepo) GetIndustryNames(ctx context.Context, code string) ([]string, error) {
	names := r.industries[code]
	if names == nil {
		names = []string{}
	}
	return names, nil
}

func (r *fakeCompanyRepo) Create(ctx context.Context, company *entity.Company) error {
	if c, _ := r.Get(ctx, company.Code); c != nil {
		return fmt.Errorf("company %q: %w", company.Code, domain.ErrDuplicate)
	}
	r.companies = append(r.companies, company)
	return nil
}

func (r *fakeCompanyRepo) Update(ctx context.Context, currentCode string, company *entity.Company) error {
	for i, c := range r.companies {
		if c.Code == currentCode {
			r.companies[i] = company
			return nil
		}
	}
	return fmt.Errorf("company %q: %w", currentCode, domain.ErrNotFound)
}

func (r *fakeCompanyRepo) Delete(ctx context.Context, code string) error {
	for i, c := range r.companies {
		if c.Code == code {
			r.companies = append(r.companies[:i], r.companies[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("company %q: %w", code, domain.ErrNotFound)
}

type fakeInvoiceRepo struct {
	invoices []*entity.Invoice
	nextID   int64
	calls    int // queries emitidas; para comprobar que la validación corre antes
}

func newFakeInvoiceRepo() *fakeInvoiceRepo { return &fakeInvoiceRepo{nextID: 1} }

func (r *fakeInvoiceRepo) List(ctx context.Context) ([]*entity.Invoice, error) {
	r.calls++
	return r.invoices, nil
}

func (r *fakeInvoiceRepo) ListByCompany(ctx context.Context, compCode string) ([]*entity.Invoice, error) {
	r.calls++
	out := []*entity.Invoice{}
	for _, inv := range r.invoices {
		if inv.CompCode == compCode {
			out = append(out, inv)
		}
	}
	return out, nil
}

func (r *fakeInvoiceRepo) Get(ctx context.Context, id int64) (*entity.Invoice, error) {
	r.calls++
	for _, inv := range r.invoices {
		if inv.ID == id {
			return inv, nil
		}
	}
	return nil, nil
}

func (r *fakeInvoiceRepo) GetForUpdate(ctx context.Context, id int64) (*entity.Invoice, error) {
	return r.Get(ctx, id)
}

func (r *fakeInvoiceRepo) GetWithCompany(ctx context.Context, id int64) (*entity.InvoiceWithCompany, error) {
	r.calls++
	for _, inv := range r.invoices {
		if inv.ID == id {
			return &entity.InvoiceWithCompany{
				Invoice: *inv,
				Company: entity.Company{Code: inv.CompCode, Name: "Empresa " + inv.CompCode},
			}, nil
		}
	}
	return nil, nil
}

func (r *fakeInvoiceRepo) Create(ctx context.Context, invoice *entity.Invoice) error {
	r.calls++
	invoice.ID = r.nextID
	r.nextID++
	invoice.Paid = false
	invoice.AddDate = time.Now().UTC()
	invoice.PaidDate = nil
	r.invoices = append(r.invoices, invoice)
	return nil
}

func (r *fakeInvoiceRepo) Update(ctx context.Context, invoice *entity.Invoice) error {
	r.calls++
	for i, inv := range r.invoices {
		if inv.ID == invoice.ID {
			r.invoices[i] = invoice
			return nil
		}
	}
	return fmt.Errorf("invoice %d: %w", invoice.ID, domain.ErrNotFound)
}

func (r *fakeInvoiceRepo) Delete(ctx context.Context, id int64) error {
	r.calls++
	for i, inv := range r.invoices {
		if inv.ID == id {
			r.invoices = append(r.invoices[:i], r.invoices[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("invoice %d: %w", id, domain.ErrNotFound)
}

// fakeTx ejecuta el callback directamente sobre el fake, sin transacción real.
type fakeTx struct {
	repo repository.InvoiceRepository
}

func (t *fakeTx) Run(ctx context.Context, fn func(invoices repository.InvoiceRepository) error) error {
	return fn(t.repo)
}

type fakeIndustryRepo struct {
	industries   []*entity.Industry
	associations map[string][]string // industry code -> comp codes
	validComps   map[string]bool
}

func newFakeIndustryRepo() *fakeIndustryRepo {
	return &fakeIndustryRepo{associations: map[string][]string{}, validComps: map[string]bool{}}
}

func (r *fakeIndustryRepo) ListWithCompanies(ctx context.Context) ([]*entity.IndustryWithCompanies, error) {
	out := []*entity.IndustryWithCompanies{}
	for _, ind := range r.industries {
		comps := r.associations[ind.Code]
		if comps == nil {
			comps = []string{}
		}
		out = append(out, &entity.IndustryWithCompanies{Industry: *ind, Companies: comps})
	}
	return out, nil
}

func (r *fakeIndustryRepo) Create(ctx context.Context, industry *entity.Industry) error {
	for _, ind := range r.industries {
		if ind.Code == industry.Code {
			return fmt.Errorf("industry %q: %w", industry.Code, domain.ErrDuplicate)
		}
	}
	r.industries = append(r.industries, industry)
	return nil
}

func (r *fakeIndustryRepo) Associate(ctx context.Context, compCode, industryCode string) error {
	if !r.validComps[compCode] {
		return fmt.Errorf("asociación %s↔%s: %w", compCode, industryCode, domain.ErrCreateFailed)
	}
	found := false
	for _, ind := range r.industries {
		if ind.Code == industryCode {
			found = true
		}
	}
	if !found {
		return fmt.Errorf("asociación %s↔%s: %w", compCode, industryCode, domain.ErrCreateFailed)
	}
	for _, c := range r.associations[industryCode] {
		if c == compCode {
			return fmt.Errorf("asociación %s↔%s: %w", compCode, industryCode, domain.ErrDuplicate)
		}
	}
	r.associations[industryCode] = append(r.associations[industryCode], compCode)
	return nil
}
