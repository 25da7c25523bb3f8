package billing

import (
	"context"

	"github.com/jhoicas/biztime-api/internal/domain/entity"
)

// InvoicePDFGenerator renderiza la representación gráfica de una factura.
// La implementación vive en infrastructure (Maroto).
type InvoicePDFGenerator interface {
	GenerateInvoicePDF(ctx context.Context, invoice *entity.Invoice, company *entity.Company) ([]byte, error)
}
