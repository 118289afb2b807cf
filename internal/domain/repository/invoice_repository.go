package repository

import (
	"context"

	"github.com/tu-usuario/biztime-api/internal/domain/entity"
)

// InvoiceRepository define el puerto de persistencia para Invoice.
type InvoiceRepository interface {
	List(ctx context.Context) ([]*entity.Invoice, error)
	ListByCompany(ctx context.Context, compCode string) ([]*entity.Invoice, error)
	// Get devuelve (nil, nil) si no existe la factura.
	Get(ctx context.Context, id int64) (*entity.Invoice, error)
	// GetForUpdate obtiene la factura bloqueando la fila (SELECT FOR UPDATE).
	// Solo tiene sentido dentro de una transacción. Devuelve (nil, nil) si no existe.
	GetForUpdate(ctx context.Context, id int64) (*entity.Invoice, error)
	// GetWithCompany une la factura con su empresa emisora (inner join).
	// Devuelve (nil, nil) si no existe.
	GetWithCompany(ctx context.Context, id int64) (*entity.InvoiceWithCompany, error)
	// Create inserta con paid=false y deja que el almacén asigne id y
	// add_date; ambos quedan reflejados en el struct.
	Create(ctx context.Context, invoice *entity.Invoice) error
	// Update escribe amt, paid y paid_date en una sola sentencia, por id.
	// Devuelve domain.ErrNotFound si ninguna fila coincide.
	Update(ctx context.Context, invoice *entity.Invoice) error
	Delete(ctx context.Context, id int64) error
}
