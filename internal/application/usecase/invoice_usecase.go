package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/tu-usuario/biztime-api/internal/application/dto"
	"github.com/tu-usuario/biztime-api/internal/domain"
	"github.com/tu-usuario/biztime-api/internal/domain/entity"
	"github.com/tu-usuario/biztime-api/internal/domain/repository"
)

// InvoiceUseCase aplica reglas de negocio para facturas, incluida la máquina
// de estados de pago (paid/paid_date).
type InvoiceUseCase struct {
	invoices repository.InvoiceRepository
	tx       InvoiceTx
}

// NewInvoiceUseCase construye el caso de uso. tx envuelve el update
// leer-calcular-escribir en una transacción.
func NewInvoiceUseCase(invoices repository.InvoiceRepository, tx InvoiceTx) *InvoiceUseCase {
	return &InvoiceUseCase{invoices: invoices, tx: tx}
}

// List devuelve todas las facturas.
func (uc *InvoiceUseCase) List(ctx context.Context) (*dto.InvoiceListResponse, error) {
	list, err := uc.invoices.List(ctx)
	if err != nil {
		return nil, err
	}
	out := &dto.InvoiceListResponse{Invoices: make([]dto.InvoiceResponse, 0, len(list))}
	for _, inv := range list {
		out.Invoices = append(out.Invoices, invoiceToResponse(inv))
	}
	return out, nil
}

// Get devuelve la factura con su empresa emisora anidada (inner join).
// Devuelve domain.ErrNotFound si el id no existe.
func (uc *InvoiceUseCase) Get(ctx context.Context, id int64) (*dto.InvoiceDetailEnvelope, error) {
	inv, err := uc.invoices.GetWithCompany(ctx, id)
	if err != nil {
		return nil, err
	}
	if inv == nil {
		return nil, fmt.Errorf("invoice %d: %w", id, domain.ErrNotFound)
	}
	return &dto.InvoiceDetailEnvelope{
		Invoice: dto.InvoiceWithCompanyResponse{
			ID:       inv.ID,
			Amt:      inv.Amt,
			Paid:     inv.Paid,
			AddDate:  inv.AddDate,
			PaidDate: inv.PaidDate,
			Company: dto.CompanyResponse{
				Code:        inv.Company.Code,
				Name:        inv.Company.Name,
				Description: inv.Company.Description,
			},
		},
	}, nil
}

// Create inserta una factura nueva. comp_code y amt son obligatorios y amt
// debe ser positivo; eso se comprueba aquí, antes de emitir query alguna
// (domain.ErrInvalidInput, distinto del rechazo del almacén).
func (uc *InvoiceUseCase) Create(ctx context.Context, in dto.CreateInvoiceRequest) (*dto.InvoiceEnvelope, error) {
	if in.CompCode == "" {
		return nil, fmt.Errorf("comp_code es requerido: %w", domain.ErrInvalidInput)
	}
	if !in.Amt.IsPositive() {
		return nil, fmt.Errorf("amt debe ser un monto positivo: %w", domain.ErrInvalidInput)
	}
	inv := &entity.Invoice{CompCode: in.CompCode, Amt: in.Amt}
	if err := uc.invoices.Create(ctx, inv); err != nil {
		return nil, err
	}
	return &dto.InvoiceEnvelope{Invoice: invoiceToResponse(inv)}, nil
}

// Update escribe amt y paid, y mueve paid_date según la transición:
// se fija al pasar a pagada, se limpia al volver a no pagada y se preserva
// en las auto-transiciones. Lectura y escritura corren en una transacción
// con la fila bloqueada, para que dos updates concurrentes no se pisen.
func (uc *InvoiceUseCase) Update(ctx context.Context, id int64, in dto.UpdateInvoiceRequest) (*dto.InvoiceEnvelope, error) {
	if !in.Amt.IsPositive() {
		return nil, fmt.Errorf("amt debe ser un monto positivo: %w", domain.ErrInvalidInput)
	}

	var updated *entity.Invoice
	err := uc.tx.Run(ctx, func(invoices repository.InvoiceRepository) error {
		current, err := invoices.GetForUpdate(ctx, id)
		if err != nil {
			return err
		}
		if current == nil {
			return fmt.Errorf("invoice %d: %w", id, domain.ErrNotFound)
		}
		current.PaidDate = entity.NextPaidDate(current.PaidDate, current.Paid, in.Paid, time.Now().UTC())
		current.Paid = in.Paid
		current.Amt = in.Amt
		if err := invoices.Update(ctx, current); err != nil {
			return err
		}
		updated = current
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &dto.InvoiceEnvelope{Invoice: invoiceToResponse(updated)}, nil
}

// Delete elimina la factura. ErrNotFound si ninguna fila coincide.
func (uc *InvoiceUseCase) Delete(ctx context.Context, id int64) error {
	return uc.invoices.Delete(ctx, id)
}

func invoiceToResponse(inv *entity.Invoice) dto.InvoiceResponse {
	return dto.InvoiceResponse{
		ID:       inv.ID,
		CompCode: inv.CompCode,
		Amt:      inv.Amt,
		Paid:     inv.Paid,
		AddDate:  inv.AddDate,
		PaidDate: inv.PaidDate,
	}
}
