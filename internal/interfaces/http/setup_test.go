package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"sort"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/stretchr/testify/require"

	appbilling "github.com/jhoicas/biztime-api/internal/application/billing"
	"github.com/jhoicas/biztime-api/internal/application/usecase"
	"github.com/jhoicas/biztime-api/internal/domain"
	"github.com/jhoicas/biztime-api/internal/domain/billing"
	"github.com/jhoicas/biztime-api/internal/domain/entity"
	"github.com/jhoicas/biztime-api/internal/domain/repository"
	infrapdf "github.com/jhoicas/biztime-api/internal/infrastructure/pdf"
	apphttp "github.com/jhoicas/biztime-api/internal/interfaces/http"
)

// ──────────────────────────────────────────────────────────────────────────────
// App de prueba: el router real sobre repositorios en memoria que respetan el
// contrato de los adaptadores PostgreSQL (centinelas de domain incluidos).
// El reloj está fijado para que las aserciones sobre fechas sean exactas.
// ──────────────────────────────────────────────────────────────────────────────

var testToday = time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)

type memStore struct {
	companies map[string]*entity.Company
	invoices  map[int64]*entity.Invoice
	nextID    int64
}

type memCompanyRepo struct{ s *memStore }
type memInvoiceRepo struct{ s *memStore }
type memTxRunner struct{ s *memStore }

func newTestApp(t *testing.T) *fiber.App {
	t.Helper()
	s := &memStore{
		companies: make(map[string]*entity.Company),
		invoices:  make(map[int64]*entity.Invoice),
		nextID:    1,
	}
	companyUC := usecase.NewCompanyUseCase(&memCompanyRepo{s: s})
	invoiceUC := usecase.NewInvoiceUseCase(&memInvoiceRepo{s: s}, &memCompanyRepo{s: s}, &memTxRunner{s: s}).
		WithClock(func() time.Time { return testToday })
	pdfUC := appbilling.NewPDFUseCase(&memInvoiceRepo{s: s}, &memCompanyRepo{s: s}, infrapdf.NewMarotoPDFGenerator())

	app := fiber.New()
	app.Use(recover.New())
	apphttp.Router(app, apphttp.RouterDeps{
		CompanyUC:  companyUC,
		InvoiceUC:  invoiceUC,
		InvoicePDF: pdfUC,
	})
	return app
}

// doJSON ejecuta una petición con body JSON y devuelve la respuesta decodificada.
func doJSON(t *testing.T, app *fiber.App, method, path string, body any) (int, map[string]any) {
	t.Helper()
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var decoded map[string]any
	if len(raw) > 0 && resp.Header.Get("Content-Type") != "application/pdf" {
		require.NoError(t, json.Unmarshal(raw, &decoded), "body: %s", raw)
	}
	return resp.StatusCode, decoded
}

// createCompany helper: POST /companies y exige 201.
func createCompany(t *testing.T, app *fiber.App, name, description string) map[string]any {
	t.Helper()
	status, body := doJSON(t, app, http.MethodPost, "/companies", map[string]any{
		"name": name, "description": description,
	})
	require.Equal(t, http.StatusCreated, status, "body: %v", body)
	return body["company"].(map[string]any)
}

// createInvoice helper: POST /invoices y exige 201.
func createInvoice(t *testing.T, app *fiber.App, compCode string, amt float64) map[string]any {
	t.Helper()
	status, body := doJSON(t, app, http.MethodPost, "/invoices", map[string]any{
		"comp_code": compCode, "amt": amt,
	})
	require.Equal(t, http.StatusCreated, status, "body: %v", body)
	return body["invoice"].(map[string]any)
}

// ── Implementación de los repos en memoria ───────────────────────────────────

var _ repository.CompanyRepository = (*memCompanyRepo)(nil)
var _ repository.InvoiceRepository = (*memInvoiceRepo)(nil)
var _ repository.InvoiceTxRunner = (*memTxRunner)(nil)

func (r *memCompanyRepo) List(context.Context) ([]*entity.Company, error) {
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

func (r *memCompanyRepo) GetByCode(_ context.Context, code string) (*entity.Company, error) {
	c, ok := r.s.companies[code]
	if !ok {
		return nil, nil
	}
	cp := *c
	return &cp, nil
}

func (r *memCompanyRepo) InvoiceIDs(_ context.Context, code string) ([]int64, error) {
	ids := make([]int64, 0)
	for id, inv := range r.s.invoices {
		if inv.CompCode == code {
			ids = append(ids, id)
		}
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids, nil
}

func (r *memCompanyRepo) Create(_ context.Context, company *entity.Company) error {
	if _, ok := r.s.companies[company.Code]; ok {
		return fmt.Errorf("company code %s: %w", company.Code, domain.ErrDuplicate)
	}
	cp := *company
	r.s.companies[company.Code] = &cp
	return nil
}

func (r *memCompanyRepo) Update(_ context.Context, company *entity.Company) error {
	if _, ok := r.s.companies[company.Code]; !ok {
		return fmt.Errorf("company %s: %w", company.Code, domain.ErrNotFound)
	}
	cp := *company
	r.s.companies[company.Code] = &cp
	return nil
}

func (r *memCompanyRepo) Delete(_ context.Context, code string) error {
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

func (r *memInvoiceRepo) List(context.Context) ([]*entity.Invoice, error) {
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

func (r *memInvoiceRepo) GetByID(_ context.Context, id int64) (*entity.Invoice, error) {
	inv, ok := r.s.invoices[id]
	if !ok {
		return nil, nil
	}
	cp := *inv
	return &cp, nil
}

func (r *memInvoiceRepo) GetForUpdate(ctx context.Context, id int64) (*entity.Invoice, error) {
	return r.GetByID(ctx, id)
}

func (r *memInvoiceRepo) Create(_ context.Context, invoice *entity.Invoice) error {
	if _, ok := r.s.companies[invoice.CompCode]; !ok {
		return fmt.Errorf("company %s: %w", invoice.CompCode, domain.ErrNotFound)
	}
	invoice.ID = r.s.nextID
	r.s.nextID++
	invoice.AddDate = billing.DateOnly(testToday)
	cp := *invoice
	r.s.invoices[invoice.ID] = &cp
	return nil
}

func (r *memInvoiceRepo) Update(_ context.Context, invoice *entity.Invoice) error {
	if _, ok := r.s.invoices[invoice.ID]; !ok {
		return fmt.Errorf("invoice %d: %w", invoice.ID, domain.ErrNotFound)
	}
	cp := *invoice
	r.s.invoices[invoice.ID] = &cp
	return nil
}

func (r *memInvoiceRepo) Delete(_ context.Context, id int64) error {
	if _, ok := r.s.invoices[id]; !ok {
		return fmt.Errorf("invoice %d: %w", id, domain.ErrNotFound)
	}
	delete(r.s.invoices, id)
	return nil
}

func (t *memTxRunner) RunInvoice(_ context.Context, fn func(repo repository.InvoiceForUpdateRepository) error) error {
	return fn(&memInvoiceRepo{s: t.s})
}
