package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/jhoicas/biztime-api/internal/application/dto"
	"github.com/jhoicas/biztime-api/internal/domain"
	"github.com/jhoicas/biztime-api/internal/domain/billing"
	"github.com/jhoicas/biztime-api/internal/domain/entity"
	"github.com/jhoicas/biztime-api/internal/domain/repository"
)

const dateLayout = "2006-01-02"

// InvoiceUseCase aplica las reglas de negocio para facturas.
type InvoiceUseCase struct {
	repo      repository.InvoiceRepository
	companies repository.CompanyRepository
	tx        repository.InvoiceTxRunner
	now       func() time.Time
}

// NewInvoiceUseCase construye el caso de uso. El runner transaccional cubre el
// ciclo leer-resolver-escribir de Update; now se inyecta para los tests.
func NewInvoiceUseCase(
	repo repository.InvoiceRepository,
	companies repository.CompanyRepository,
	tx repository.InvoiceTxRunner,
) *InvoiceUseCase {
	return &InvoiceUseCase{repo: repo, companies: companies, tx: tx, now: time.Now}
}

// WithClock reemplaza la fuente de tiempo (tests).
func (uc *InvoiceUseCase) WithClock(now func() time.Time) *InvoiceUseCase {
	uc.now = now
	return uc
}

// List devuelve todas las facturas como resúmenes {id, comp_code}.
func (uc *InvoiceUseCase) List(ctx context.Context) (*dto.InvoiceListResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.InvoiceSummary, 0, len(list))
	for _, inv := range list {
		items = append(items, dto.InvoiceSummary{ID: inv.ID, CompCode: inv.CompCode})
	}
	return &dto.InvoiceListResponse{Invoices: items}, nil
}

// Get devuelve la factura con su empresa propietaria anidada.
// Devuelve domain.ErrNotFound si el id no existe.
func (uc *InvoiceUseCase) Get(ctx context.Context, id int64) (*dto.InvoiceDetailResponse, error) {
	invoice, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if invoice == nil {
		return nil, domain.ErrNotFound
	}
	company, err := uc.companies.GetByCode(ctx, invoice.CompCode)
	if err != nil {
		return nil, err
	}
	if company == nil {
		// La FK garantiza la empresa; si falta, el store está inconsistente.
		return nil, domain.ErrNotFound
	}
	return &dto.InvoiceDetailResponse{Invoice: dto.InvoiceDetail{
		ID:       invoice.ID,
		Amt:      invoice.Amt,
		Paid:     invoice.Paid,
		AddDate:  invoice.AddDate.Format(dateLayout),
		PaidDate: formatPaidDate(invoice.PaidDate),
		Company:  companyToDetail(company),
	}}, nil
}

// Create inserta una factura para la empresa comp_code. El monto debe ser
// positivo; paid arranca en false y add_date la asigna el store.
// Devuelve domain.ErrNotFound si comp_code no referencia una empresa
// existente (violación de FK clasificada por el adaptador).
func (uc *InvoiceUseCase) Create(ctx context.Context, in dto.CreateInvoiceRequest) (*dto.InvoiceResponse, error) {
	if strings.TrimSpace(in.CompCode) == "" || !in.Amt.IsPositive() {
		return nil, domain.ErrInvalidInput
	}
	invoice := &entity.Invoice{
		CompCode: strings.TrimSpace(in.CompCode),
		Amt:      in.Amt,
		Paid:     false,
		PaidDate: nil,
	}
	if err := uc.repo.Create(ctx, invoice); err != nil {
		return nil, err
	}
	return &dto.InvoiceResponse{Invoice: invoiceToRecord(invoice)}, nil
}

// Update actualiza amt y el estado de pago. La lectura de paid_date, el
// cálculo vía billing.ResolvePaidDate y la escritura ocurren dentro de una
// misma transacción con la fila bloqueada (FOR UPDATE), de modo que dos
// updates concurrentes sobre la misma factura se serializan.
func (uc *InvoiceUseCase) Update(ctx context.Context, id int64, in dto.UpdateInvoiceRequest) (*dto.InvoiceResponse, error) {
	if !in.Amt.IsPositive() {
		return nil, domain.ErrInvalidInput
	}
	var updated *entity.Invoice
	err := uc.tx.RunInvoice(ctx, func(repo repository.InvoiceForUpdateRepository) error {
		invoice, err := repo.GetForUpdate(ctx, id)
		if err != nil {
			return err
		}
		if invoice == nil {
			return domain.ErrNotFound
		}
		invoice.Amt = in.Amt
		invoice.Paid = in.Paid
		invoice.PaidDate = billing.ResolvePaidDate(invoice.PaidDate, in.Paid, uc.now())
		if err := repo.Update(ctx, invoice); err != nil {
			return err
		}
		updated = invoice
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &dto.InvoiceResponse{Invoice: invoiceToRecord(updated)}, nil
}

// Delete elimina la factura. Devuelve domain.ErrNotFound si no existe.
func (uc *InvoiceUseCase) Delete(ctx context.Context, id int64) (*dto.DeleteResponse, error) {
	if err := uc.repo.Delete(ctx, id); err != nil {
		return nil, err
	}
	return dto.Deleted(), nil
}

func invoiceToRecord(inv *entity.Invoice) dto.InvoiceRecord {
	return dto.InvoiceRecord{
		ID:       inv.ID,
		CompCode: inv.CompCode,
		Amt:      inv.Amt,
		Paid:     inv.Paid,
		AddDate:  inv.AddDate.Format(dateLayout),
		PaidDate: formatPaidDate(inv.PaidDate),
	}
}

func formatPaidDate(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(dateLayout)
	return &s
}
