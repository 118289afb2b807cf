package usecase

import (
	"context"

	"github.com/tu-usuario/biztime-api/internal/domain/repository"
)

// InvoiceTx ejecuta fn dentro de una transacción del almacén, con un repo de
// facturas atado a ella. La implementación vive en infrastructure/postgres.
type InvoiceTx interface {
	Run(ctx context.Context, fn func(invoices repository.InvoiceRepository) error) error
}
