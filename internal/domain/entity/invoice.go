package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Invoice representa una factura emitida a una empresa.
// CompCode es inmutable después de la creación; el par Paid/PaidDate
// se mueve en bloque según la máquina de estados de pago.
type Invoice struct {
	ID       int64
	CompCode string
	Amt      decimal.Decimal
	Paid     bool
	AddDate  time.Time
	PaidDate *time.Time // nil mientras la factura no esté pagada
}

// InvoiceWithCompany factura unida (inner join) con su empresa emisora.
type InvoiceWithCompany struct {
	Invoice
	Company Company
}

// NextPaidDate calcula el paid_date resultante de un update de factura.
// Estados: Unpaid(paid_date=nil) y Paid(paid_date=T).
//   - Unpaid → Paid: paid_date = now (momento del update)
//   - Paid → Unpaid: paid_date = nil
//   - Auto-transiciones: paid_date se preserva tal cual, nunca se recalcula.
func NextPaidDate(current *time.Time, paid, wantPaid bool, now time.Time) *time.Time {
	switch {
	case wantPaid && !paid:
		return &now
	case !wantPaid && paid:
		return nil
	default:
		return current
	}
}
