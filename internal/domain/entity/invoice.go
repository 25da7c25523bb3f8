package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Invoice representa una factura asociada a una empresa.
//
// Invariante: Paid == true si y solo si PaidDate != nil. La única pieza de
// código autorizada a calcular PaidDate es billing.ResolvePaidDate.
type Invoice struct {
	ID       int64
	CompCode string          // FK a Company.Code, inmutable tras la creación
	Amt      decimal.Decimal // monto, siempre positivo
	Paid     bool
	AddDate  time.Time  // asignada por el store al crear (DATE)
	PaidDate *time.Time // nil mientras no esté pagada (DATE)
}
