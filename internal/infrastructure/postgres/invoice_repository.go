package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/biztime-api/internal/domain"
	"github.com/jhoicas/biztime-api/internal/domain/entity"
	"github.com/jhoicas/biztime-api/internal/domain/repository"
)

var _ repository.InvoiceRepository = (*InvoiceRepo)(nil)
var _ repository.InvoiceForUpdateRepository = (*InvoiceRepo)(nil)

// InvoiceRepo implementación de InvoiceRepository (usable con pool o tx).
type InvoiceRepo struct {
	q Querier
}

// NewInvoiceRepository construye el adaptador. Pasar pool o tx (Querier).
func NewInvoiceRepository(q Querier) *InvoiceRepo {
	return &InvoiceRepo{q: q}
}

// List devuelve todas las facturas ordenadas por id.
func (r *InvoiceRepo) List(ctx context.Context) ([]*entity.Invoice, error) {
	query := `
		SELECT id, comp_code, amt, paid, add_date, paid_date
		FROM invoices ORDER BY id`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list invoices: %w", err)
	}
	defer rows.Close()

	var list []*entity.Invoice
	for rows.Next() {
		var inv entity.Invoice
		if err := rows.Scan(&inv.ID, &inv.CompCode, &inv.Amt, &inv.Paid, &inv.AddDate, &inv.PaidDate); err != nil {
			return nil, fmt.Errorf("scan invoice: %w", err)
		}
		list = append(list, &inv)
	}
	return list, rows.Err()
}

// GetByID obtiene una factura por id. Devuelve (nil, nil) si no existe.
func (r *InvoiceRepo) GetByID(ctx context.Context, id int64) (*entity.Invoice, error) {
	return r.get(ctx, id, false)
}

// GetForUpdate obtiene la factura bloqueando la fila (FOR UPDATE). Solo tiene
// sentido dentro de una transacción; el lock serializa updates concurrentes
// sobre la misma factura para que ResolvePaidDate lea la fecha más fresca.
func (r *InvoiceRepo) GetForUpdate(ctx context.Context, id int64) (*entity.Invoice, error) {
	return r.get(ctx, id, true)
}

func (r *InvoiceRepo) get(ctx context.Context, id int64, forUpdate bool) (*entity.Invoice, error) {
	query := `
		SELECT id, comp_code, amt, paid, add_date, paid_date
		FROM invoices WHERE id = $1`
	if forUpdate {
		query += " FOR UPDATE"
	}
	var inv entity.Invoice
	err := r.q.QueryRow(ctx, query, id).Scan(
		&inv.ID, &inv.CompCode, &inv.Amt, &inv.Paid, &inv.AddDate, &inv.PaidDate,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get invoice: %w", err)
	}
	return &inv, nil
}

// Create inserta la factura; id y add_date los asigna el store y se devuelven
// vía RETURNING. Devuelve domain.ErrNotFound si comp_code no referencia una
// empresa existente (violación de FK 23503).
func (r *InvoiceRepo) Create(ctx context.Context, invoice *entity.Invoice) error {
	query := `
		INSERT INTO invoices (comp_code, amt)
		VALUES ($1, $2)
		RETURNING id, paid, add_date, paid_date`
	err := r.q.QueryRow(ctx, query, invoice.CompCode, invoice.Amt).Scan(
		&invoice.ID, &invoice.Paid, &invoice.AddDate, &invoice.PaidDate,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return fmt.Errorf("company %s: %w", invoice.CompCode, domain.ErrNotFound)
		}
		return fmt.Errorf("insert invoice: %w", err)
	}
	return nil
}

// Update persiste amt, paid y paid_date en una sola escritura.
// Devuelve domain.ErrNotFound si el id no existe.
func (r *InvoiceRepo) Update(ctx context.Context, invoice *entity.Invoice) error {
	query := `
		UPDATE invoices SET amt = $2, paid = $3, paid_date = $4
		WHERE id = $1`
	cmd, err := r.q.Exec(ctx, query, invoice.ID, invoice.Amt, invoice.Paid, invoice.PaidDate)
	if err != nil {
		return fmt.Errorf("update invoice: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return fmt.Errorf("invoice %d: %w", invoice.ID, domain.ErrNotFound)
	}
	return nil
}

// Delete elimina una factura por id. Devuelve domain.ErrNotFound si no existe.
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
