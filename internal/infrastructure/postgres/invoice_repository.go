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

var _ repository.InvoiceRepository = (*InvoiceRepo)(nil)

// InvoiceRepo implementación de InvoiceRepository (usable con pool o tx).
type InvoiceRepo struct {
	q Querier
}

// NewInvoiceRepository construye el adaptador. Pasar pool o tx (Querier).
func NewInvoiceRepository(q Querier) *InvoiceRepo {
	return &InvoiceRepo{q: q}
}

const invoiceColumns = `id, comp_code, amt, paid, add_date, paid_date`

func scanInvoice(row pgx.Row, inv *entity.Invoice) error {
	return row.Scan(&inv.ID, &inv.CompCode, &inv.Amt, &inv.Paid, &inv.AddDate, &inv.PaidDate)
}

// List devuelve todas las facturas.
func (r *InvoiceRepo) List(ctx context.Context) ([]*entity.Invoice, error) {
	return r.list(ctx, `SELECT `+invoiceColumns+` FROM invoices ORDER BY id`)
}

// ListByCompany devuelve las facturas de una empresa.
func (r *InvoiceRepo) ListByCompany(ctx context.Context, compCode string) ([]*entity.Invoice, error) {
	return r.list(ctx, `SELECT `+invoiceColumns+` FROM invoices WHERE comp_code = $1 ORDER BY id`, compCode)
}

func (r *InvoiceRepo) list(ctx context.Context, query string, args ...any) ([]*entity.Invoice, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list invoices: %w", err)
	}
	defer rows.Close()

	var list []*entity.Invoice
	for rows.Next() {
		var inv entity.Invoice
		if err := scanInvoice(rows, &inv); err != nil {
			return nil, fmt.Errorf("scan invoice: %w", err)
		}
		list = append(list, &inv)
	}
	return list, rows.Err()
}

// Get obtiene una factura por id. Devuelve (nil, nil) si no existe.
func (r *InvoiceRepo) Get(ctx context.Context, id int64) (*entity.Invoice, error) {
	var inv entity.Invoice
	err := scanInvoice(r.q.QueryRow(ctx,
		`SELECT `+invoiceColumns+` FROM invoices WHERE id = $1`, id), &inv)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get invoice: %w", err)
	}
	return &inv, nil
}

// GetForUpdate obtiene la factura y bloquea la fila (SELECT FOR UPDATE) hasta
// el fin de la transacción; dos updates concurrentes sobre el mismo id quedan
// serializados y la transición de pago no se pisa.
func (r *InvoiceRepo) GetForUpdate(ctx context.Context, id int64) (*entity.Invoice, error) {
	var inv entity.Invoice
	err := scanInvoice(r.q.QueryRow(ctx,
		`SELECT `+invoiceColumns+` FROM invoices WHERE id = $1 FOR UPDATE`, id), &inv)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get invoice for update: %w", err)
	}
	return &inv, nil
}

// GetWithCompany obtiene la factura unida (inner join) con su empresa emisora.
// Devuelve (nil, nil) si no existe; el caso de la fila ausente se comprueba
// aquí y nunca se accede a campos de una fila que no llegó.
func (r *InvoiceRepo) GetWithCompany(ctx context.Context, id int64) (*entity.InvoiceWithCompany, error) {
	query := `
		SELECT inv.id, inv.comp_code, inv.amt, inv.paid, inv.add_date, inv.paid_date,
		       c.code, c.name, c.description
		FROM invoices AS inv
		JOIN companies AS c ON inv.comp_code = c.code
		WHERE inv.id = $1`
	var out entity.InvoiceWithCompany
	err := r.q.QueryRow(ctx, query, id).Scan(
		&out.ID, &out.CompCode, &out.Amt, &out.Paid, &out.AddDate, &out.PaidDate,
		&out.Company.Code, &out.Company.Name, &out.Company.Description,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get invoice with company: %w", err)
	}
	return &out, nil
}

// Create inserta la factura; id, paid y add_date los asigna el almacén y
// quedan reflejados en el struct. Un comp_code inexistente viola la FK y se
// traduce a ErrCreateFailed.
func (r *InvoiceRepo) Create(ctx context.Context, invoice *entity.Invoice) error {
	err := scanInvoice(r.q.QueryRow(ctx,
		`INSERT INTO invoices (comp_code, amt) VALUES ($1, $2) RETURNING `+invoiceColumns,
		invoice.CompCode, invoice.Amt), invoice)
	if err != nil {
		if isForeignKeyViolation(err) {
			return fmt.Errorf("company %q no existe: %w", invoice.CompCode, domain.ErrCreateFailed)
		}
		return fmt.Errorf("insert invoice: %w", err)
	}
	return nil
}

// Update escribe amt, paid y paid_date en una sola sentencia, por id.
func (r *InvoiceRepo) Update(ctx context.Context, invoice *entity.Invoice) error {
	cmd, err := r.q.Exec(ctx,
		`UPDATE invoices SET amt = $2, paid = $3, paid_date = $4 WHERE id = $1`,
		invoice.ID, invoice.Amt, invoice.Paid, invoice.PaidDate,
	)
	if err != nil {
		return fmt.Errorf("update invoice: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return fmt.Errorf("invoice %d: %w", invoice.ID, domain.ErrNotFound)
	}
	return nil
}

// Delete elimina una factura por id.
func (r *InvoiceRepo) Delete(ctx context.Context, id int64) error {
	cmd, err := r.q.Exec(ctx, `DELETE FROM invoices WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete invoice: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return fmt.Errorf("invoice %d: %w", id, domain.ErrNotFound)
	}
	return nil
}
