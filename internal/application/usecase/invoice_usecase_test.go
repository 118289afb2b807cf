package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/biztime-api/internal/application/dto"
	"github.com/tu-usuario/biztime-api/internal/application/usecase"
	"github.com/tu-usuario/biztime-api/internal/domain"
	"github.com/tu-usuario/biztime-api/internal/domain/entity"
)

func newInvoiceFixture() (*usecase.InvoiceUseCase, *fakeInvoiceRepo) {
	invoices := newFakeInvoiceRepo()
	return usecase.NewInvoiceUseCase(invoices, &fakeTx{repo: invoices}), invoices
}

func seedInvoice(t *testing.T, repo *fakeInvoiceRepo, amt int64) *entity.Invoice {
	t.Helper()
	inv := &entity.Invoice{CompCode: "acme", Amt: decimal.NewFromInt(amt)}
	require.NoError(t, repo.Create(context.Background(), inv))
	return inv
}

// ──────────────────────────────────────────────────────────────────────────────
// Create
// ──────────────────────────────────────────────────────────────────────────────

func TestInvoiceCreate_DefaultsDeFilaNueva(t *testing.T) {
	uc, _ := newInvoiceFixture()

	out, err := uc.Create(context.Background(), dto.CreateInvoiceRequest{
		CompCode: "acme",
		Amt:      decimal.NewFromFloat(199.99),
	})

	require.NoError(t, err)
	assert.Equal(t, int64(1), out.Invoice.ID)
	assert.Equal(t, "acme", out.Invoice.CompCode)
	assert.False(t, out.Invoice.Paid, "una factura nueva nace no pagada")
	assert.Nil(t, out.Invoice.PaidDate)
	assert.WithinDuration(t, time.Now().UTC(), out.Invoice.AddDate, 2*time.Second)
}

func TestInvoiceCreate_ValidaAntesDeConsultar(t *testing.T) {
	uc, invoices := newInvoiceFixture()

	_, err := uc.Create(context.Background(), dto.CreateInvoiceRequest{Amt: decimal.NewFromInt(10)})
	require.ErrorIs(t, err, domain.ErrInvalidInput, "comp_code vacío debe rechazarse")

	_, err = uc.Create(context.Background(), dto.CreateInvoiceRequest{CompCode: "acme"})
	require.ErrorIs(t, err, domain.ErrInvalidInput, "amt cero debe rechazarse")

	_, err = uc.Create(context.Background(), dto.CreateInvoiceRequest{
		CompCode: "acme", Amt: decimal.NewFromInt(-5),
	})
	require.ErrorIs(t, err, domain.ErrInvalidInput, "amt negativo debe rechazarse")

	assert.Zero(t, invoices.calls, "la validación corre antes de tocar el almacén")
}

// ──────────────────────────────────────────────────────────────────────────────
// Get
// ──────────────────────────────────────────────────────────────────────────────

func TestInvoiceGet_ConEmpresaAnidada(t *testing.T) {
	uc, invoices := newInvoiceFixture()
	inv := seedInvoice(t, invoices, 500)

	out, err := uc.Get(context.Background(), inv.ID)

	require.NoError(t, err)
	assert.Equal(t, inv.ID, out.Invoice.ID)
	assert.Equal(t, "acme", out.Invoice.Company.Code)
}

func TestInvoiceGet_NoExiste(t *testing.T) {
	uc, _ := newInvoiceFixture()

	_, err := uc.Get(context.Background(), 999)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// Update: las cuatro transiciones de pago
// ──────────────────────────────────────────────────────────────────────────────

func TestInvoiceUpdate_NoPagadaAPagada_FijaPaidDate(t *testing.T) {
	uc, invoices := newInvoiceFixture()
	inv := seedInvoice(t, invoices, 100)

	out, err := uc.Update(context.Background(), inv.ID, dto.UpdateInvoiceRequest{
		Amt: decimal.NewFromInt(100), Paid: true,
	})

	require.NoError(t, err)
	assert.True(t, out.Invoice.Paid)
	require.NotNil(t, out.Invoice.PaidDate)
	assert.WithinDuration(t, time.Now().UTC(), *out.Invoice.PaidDate, 2*time.Second)
}

func TestInvoiceUpdate_PagadaANoPagada_LimpiaPaidDate(t *testing.T) {
	uc, invoices := newInvoiceFixture()
	inv := seedInvoice(t, invoices, 100)
	paidAt := time.Now().UTC().Add(-24 * time.Hour)
	inv.Paid = true
	inv.PaidDate = &paidAt

	out, err := uc.Update(context.Background(), inv.ID, dto.UpdateInvoiceRequest{
		Amt: decimal.NewFromInt(100), Paid: false,
	})

	require.NoError(t, err)
	assert.False(t, out.Invoice.Paid)
	assert.Nil(t, out.Invoice.PaidDate)
}

func TestInvoiceUpdate_PagadaAPagada_PreservaPaidDate(t *testing.T) {
	uc, invoices := newInvoiceFixture()
	inv := seedInvoice(t, invoices, 100)
	paidAt := time.Now().UTC().Add(-24 * time.Hour)
	inv.Paid = true
	inv.PaidDate = &paidAt

	out, err := uc.Update(context.Background(), inv.ID, dto.UpdateInvoiceRequest{
		Amt: decimal.NewFromInt(250), Paid: true,
	})

	require.NoError(t, err)
	assert.True(t, out.Invoice.Paid)
	require.NotNil(t, out.Invoice.PaidDate)
	assert.True(t, out.Invoice.PaidDate.Equal(paidAt), "la fecha original no debe moverse")
	assert.True(t, out.Invoice.Amt.Equal(decimal.NewFromInt(250)))
}

func TestInvoiceUpdate_NoPagadaANoPagada_SigueSinFecha(t *testing.T) {
	uc, invoices := newInvoiceFixture()
	inv := seedInvoice(t, invoices, 100)

	out, err := uc.Update(context.Background(), inv.ID, dto.UpdateInvoiceRequest{
		Amt: decimal.NewFromInt(175), Paid: false,
	})

	require.NoError(t, err)
	assert.False(t, out.Invoice.Paid)
	assert.Nil(t, out.Invoice.PaidDate)
	assert.True(t, out.Invoice.Amt.Equal(decimal.NewFromInt(175)))
}

func TestInvoiceUpdate_NoExiste(t *testing.T) {
	uc, _ := newInvoiceFixture()

	_, err := uc.Update(context.Background(), 404, dto.UpdateInvoiceRequest{
		Amt: decimal.NewFromInt(10), Paid: true,
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestInvoiceUpdate_AmtInvalido(t *testing.T) {
	uc, invoices := newInvoiceFixture()
	seedInvoice(t, invoices, 100)
	before := invoices.calls

	_, err := uc.Update(context.Background(), 1, dto.UpdateInvoiceRequest{Paid: true})

	require.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Equal(t, before, invoices.calls, "no debe abrirse transacción con entrada inválida")
}

// ──────────────────────────────────────────────────────────────────────────────
// Delete
// ──────────────────────────────────────────────────────────────────────────────

func TestInvoiceDelete_DosVeces(t *testing.T) {
	uc, invoices := newInvoiceFixture()
	inv := seedInvoice(t, invoices, 100)

	require.NoError(t, uc.Delete(context.Background(), inv.ID))

	err := uc.Delete(context.Background(), inv.ID)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
