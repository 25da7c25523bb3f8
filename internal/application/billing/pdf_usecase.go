package billing

import (
	"context"

	"github.com/jhoicas/biztime-api/internal/domain"
	"github.com/jhoicas/biztime-api/internal/domain/repository"
)

// PDFUseCase arma los datos de una factura y delega el render al generador.
type PDFUseCase struct {
	invoices  repository.InvoiceRepository
	companies repository.CompanyRepository
	generator InvoicePDFGenerator
}

// NewPDFUseCase construye el caso de uso de PDF.
func NewPDFUseCase(
	invoices repository.InvoiceRepository,
	companies repository.CompanyRepository,
	generator InvoicePDFGenerator,
) *PDFUseCase {
	return &PDFUseCase{invoices: invoices, companies: companies, generator: generator}
}

// InvoicePDF genera el PDF de la factura id.
// Devuelve domain.ErrNotFound si la factura no existe.
func (uc *PDFUseCase) InvoicePDF(ctx context.Context, id int64) ([]byte, error) {
	invoice, err := uc.invoices.GetByID(ctx, id)
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
		return nil, domain.ErrNotFound
	}
	return uc.generator.GenerateInvoicePDF(ctx, invoice, company)
}
