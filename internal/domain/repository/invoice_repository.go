package repository

import (
	"context"

	"github.com/jhoicas/biztime-api/internal/domain/entity"
)

// InvoiceRepository define el puerto de persistencia para Invoice.
type InvoiceRepository interface {
	List(ctx context.Context) ([]*entity.Invoice, error)
	GetByID(ctx context.Context, id int64) (*entity.Invoice, error)
	// Create inserta la factura y completa ID y AddDate asignados por el store.
	// Devuelve domain.ErrNotFound si comp_code no referencia una empresa.
	Create(ctx context.Context, invoice *entity.Invoice) error
	// Update persiste amt, paid y paid_date en una sola escritura.
	Update(ctx context.Context, invoice *entity.Invoice) error
	Delete(ctx context.Context, id int64) error
}

// InvoiceTxRunner ejecuta fn dentro de una transacción con un
// InvoiceRepository atado a ella. GetForUpdate bloquea la fila (FOR UPDATE)
// para que el ciclo leer-resolver-escribir del update no corra contra
// escrituras concurrentes sobre la misma factura.
type InvoiceTxRunner interface {
	RunInvoice(ctx context.Context, fn func(repo InvoiceForUpdateRepository) error) error
}

// InvoiceForUpdateRepository es la vista del repositorio disponible dentro de
// la transacción del runner.
type InvoiceForUpdateRepository interface {
	GetForUpdate(ctx context.Context, id int64) (*entity.Invoice, error)
	Update(ctx context.Context, invoice *entity.Invoice) error
}
