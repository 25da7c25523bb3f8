package usecase_test

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/jhoicas/biztime-api/internal/domain"
	"github.com/jhoicas/biztime-api/internal/domain/billing"
	"github.com/jhoicas/biztime-api/internal/domain/entity"
	"github.com/jhoicas/biztime-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria de los puertos de persistencia. Reproducen el contrato de
// los adaptadores PostgreSQL: (nil, nil) cuando no hay fila, centinelas de
// domain en las violaciones de unicidad y de FK, id/add_date asignados al
// insertar.
// ──────────────────────────────────────────────────────────────────────────────

var fakeToday = time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)

type fakeStore struct {
	companies map[string]*entity.Company
	invoices  map[int64]*entity.Invoice
	nextID    int64
	failWith  error // si no es nil, toda operación falla (simula store caído)
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		companies: make(map[string]*entity.Company),
		invoices:  make(map[int64]*entity.Invoice),
		nextID:    1,
	}
}

// ── CompanyRepository ────────────────────────────────────────────────────────

type fakeCompanyRepo struct{ s *fakeStore }

var _ repository.CompanyRepository = (*fakeCompanyRepo)(nil)

func (r *fakeCompanyRepo) List(context.Context) ([]*entity.Company, error) {
	if r.s.failWith != nil {
		return nil, r.s.failWith
	}
	codes := make([]string, 0, len(r.s.companies))
	for code := range r.s.companies {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	out := make([]*entity.Company, 0, len(codes))
	for _, code := range codes {
		c := *r.s.companies[code]
		out = append(out, &c)
	}
	return out, nil
}

func (r *fakeCompanyRepo) GetByCode(_ context.Context, code string) (*entity.Company, error) {
	if r.s.failWith != nil {
		return nil, r.s.failWith
	}
	c, ok := r.s.companies[code]
	if !ok {
		return nil, nil
	}
	cp := *c
	return &cp, nil
}

func (r *fakeCompanyRepo) InvoiceIDs(_ context.Context, code string) ([]int64, error) {
	if r.s.failWith != nil {
		return nil, r.s.failWith
	}
	ids := make([]int64, 0)
	for id, inv := range r.s.invoices {
		if inv.CompCode == code {
			ids = append(ids, id)
		}
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids, nil
}

func (r *fakeCompanyRepo) Create(_ context.Context, company *entity.Company) error {
	if r.s.failWith != nil {
		return r.s.failWith
	}
	if _, ok := r.s.companies[company.Code]; ok {
		return fmt.Errorf("company code %s: %w", company.Code, domain.ErrDuplicate)
	}
	cp := *company
	r.s.companies[company.Code] = &cp
	return nil
}

func (r *fakeCompanyRepo) Update(_ context.Context, company *entity.Company) error {
	if r.s.failWith != nil {
		return r.s.failWith
	}
	if _, ok := r.s.companies[company.Code]; !ok {
		return fmt.Errorf("company %s: %w", company.Code, domain.ErrNotFound)
	}
	cp := *company
	r.s.companies[company.Code] = &cp
	return nil
}

func (r *fakeCompanyRepo) Delete(_ context.Context, code string) error {
	if r.s.failWith != nil {
		return r.s.failWith
	}
	if _, ok := r.s.companies[code]; !ok {
		return fmt.Errorf("company %s: %w", code, domain.ErrNotFound)
	}
	for _, inv := range r.s.invoices {
		if inv.CompCode == code {
			return fmt.Errorf("company %s still has invoices: %w", code, domain.ErrConflict)
		}
	}
	delete(r.s.companies, code)
	return nil
}

// ── InvoiceRepository ────────────────────────────────────────────────────────

type fakeInvoiceRepo struct{ s *fakeStore }

var _ repository.InvoiceRepository = (*fakeInvoiceRepo)(nil)
var _ repository.InvoiceForUpdateRepository = (*fakeInvoiceRepo)(nil)

func (r *fakeInvoiceRepo) List(context.Context) ([]*entity.Invoice, error) {
	if r.s.failWith != nil {
		return nil, r.s.failWith
	}
	ids := make([]int64, 0, len(r.s.invoices))
	for id := range r.s.invoices {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	out := make([]*entity.Invoice, 0, len(ids))
	for _, id := range ids {
		inv := *r.s.invoices[id]
		out = append(out, &inv)
	}
	return out, nil
}

func (r *fakeInvoiceRepo) GetByID(_ context.Context, id int64) (*entity.Invoice, error) {
	if r.s.failWith != nil {
		return nil, r.s.failWith
	}
	inv, ok := r.s.invoices[id]
	if !ok {
		return nil, nil
	}
	cp := *inv
	return &cp, nil
}

func (r *fakeInvoiceRepo) GetForUpdate(ctx context.Context, id int64) (*entity.Invoice, error) {
	return r.GetByID(ctx, id)
}

func (r *fakeInvoiceRepo) Create(_ context.Context, invoice *entity.Invoice) error {
	if r.s.failWith != nil {
		return r.s.failWith
	}
	if _, ok := r.s.companies[invoice.CompCode]; !ok {
		return fmt.Errorf("company %s: %w", invoice.CompCode, domain.ErrNotFound)
	}
	invoice.ID = r.s.nextID
	r.s.nextID++
	invoice.AddDate = billing.DateOnly(fakeToday)
	cp := *invoice
	r.s.invoices[invoice.ID] = &cp
	return nil
}

func (r *fakeInvoiceRepo) Update(_ context.Context, invoice *entity.Invoice) error {
	if r.s.failWith != nil {
		return r.s.failWith
	}
	if _, ok := r.s.invoices[invoice.ID]; !ok {
		return fmt.Errorf("invoice %d: %w", invoice.ID, domain.ErrNotFound)
	}
	cp := *invoice
	r.s.invoices[invoice.ID] = &cp
	return nil
}

func (r *fakeInvoiceRepo) Delete(_ context.Context, id int64) error {
	if r.s.failWith != nil {
		return r.s.failWith
	}
	if _, ok := r.s.invoices[id]; !ok {
		return fmt.Errorf("invoice %d: %w", id, domain.ErrNotFound)
	}
	delete(r.s.invoices, id)
	return nil
}

// ── InvoiceTxRunner ──────────────────────────────────────────────────────────

type fakeTxRunner struct{ s *fakeStore }

var _ repository.InvoiceTxRunner = (*fakeTxRunner)(nil)

func (t *fakeTxRunner) RunInvoice(_ context.Context, fn func(repo repository.InvoiceForUpdateRepository) error) error {
	return fn(&fakeInvoiceRepo{s: t.s})
}
