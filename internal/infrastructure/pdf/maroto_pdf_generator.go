// Package pdf implementa la representación gráfica de una factura.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Empresa + código  │  Factura N° + fecha de emisión │
//	│  ─────────────────────────────────────────────────────────  │
//	│  DESCRIPCIÓN de la empresa (si existe)                      │
//	│  ─────────────────────────────────────────────────────────  │
//	│  MONTO + estado de pago (pagada el ... / pendiente de pago) │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/jhoicas/biztime-api/internal/application/billing"
	"github.com/jhoicas/biztime-api/internal/domain/entity"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// Asegura que MarotoPDFGenerator implementa billing.InvoicePDFGenerator.
var _ billing.InvoicePDFGenerator = (*MarotoPDFGenerator)(nil)

// MarotoPDFGenerator implementa billing.InvoicePDFGenerator usando Maroto v2.
type MarotoPDFGenerator struct{}

// NewMarotoPDFGenerator construye el generador.
func NewMarotoPDFGenerator() *MarotoPDFGenerator { return &MarotoPDFGenerator{} }

// GenerateInvoicePDF genera el PDF y devuelve sus bytes.
func (g *MarotoPDFGenerator) GenerateInvoicePDF(
	_ context.Context,
	invoice *entity.Invoice,
	company *entity.Company,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle(fmt.Sprintf("Factura #%d", invoice.ID), true).
		WithAuthor(company.Name, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(invoice, company))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	if company.Description != "" {
		m.AddRows(descriptionRow(company))
	}
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(amountRow(invoice))
	m.AddRows(statusRow(invoice))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("generate invoice pdf: %w", err)
	}
	return doc.GetBytes(), nil
}

// headerRow empresa a la izquierda, número y fecha de la factura a la derecha.
func headerRow(invoice *entity.Invoice, company *entity.Company) core.Row {
	return row.New(16).Add(
		col.New(7).Add(
			text.New(company.Name, props.Text{
				Size: 14, Style: fontstyle.Bold, Color: colorPrimary,
			}),
			text.New("Código: "+company.Code, props.Text{
				Top: 8, Size: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New(fmt.Sprintf("FACTURA #%d", invoice.ID), props.Text{
				Size: 12, Style: fontstyle.Bold, Align: align.Right, Color: colorPrimary,
			}),
			text.New("Emitida: "+invoice.AddDate.Format("2006-01-02"), props.Text{
				Top: 8, Size: 9, Align: align.Right, Color: colorGray,
			}),
		),
	)
}

func descriptionRow(company *entity.Company) core.Row {
	return row.New(8).Add(
		col.New(12).Add(
			text.New(company.Description, props.Text{Size: 9, Color: colorGray}),
		),
	)
}

func amountRow(invoice *entity.Invoice) core.Row {
	return row.New(12).Add(
		col.New(6).Add(
			text.New("TOTAL", props.Text{Size: 10, Style: fontstyle.Bold}),
		),
		col.New(6).Add(
			text.New("$ "+invoice.Amt.StringFixed(2), props.Text{
				Size: 12, Style: fontstyle.Bold, Align: align.Right, Color: colorPrimary,
			}),
		),
	)
}

func statusRow(invoice *entity.Invoice) core.Row {
	status := "PENDIENTE DE PAGO"
	if invoice.Paid && invoice.PaidDate != nil {
		status = "PAGADA el " + invoice.PaidDate.Format("2006-01-02")
	}
	return row.New(8).Add(
		col.New(12).Add(
			text.New(status, props.Text{Size: 9, Style: fontstyle.Italic, Color: colorGray}),
		),
	)
}
