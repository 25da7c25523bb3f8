package dto

import "github.com/shopspring/decimal"

// CreateInvoiceRequest body para POST /invoices.
type CreateInvoiceRequest struct {
	CompCode string          `json:"comp_code"`
	Amt      decimal.Decimal `json:"amt"`
}

// UpdateInvoiceRequest body para PUT /invoices/:id.
// El flag paid dispara la transición de estado de pago (billing.ResolvePaidDate).
type UpdateInvoiceRequest struct {
	Amt  decimal.Decimal `json:"amt"`
	Paid bool            `json:"paid"`
}

// InvoiceSummary factura en el listado: {id, comp_code}.
type InvoiceSummary struct {
	ID       int64  `json:"id"`
	CompCode string `json:"comp_code"`
}

// InvoiceListResponse envoltorio del listado: {"invoices": [...]}.
type InvoiceListResponse struct {
	Invoices []InvoiceSummary `json:"invoices"`
}

// InvoiceRecord factura plana (respuestas de POST y PUT).
// Las fechas viajan como "YYYY-MM-DD"; paid_date es null mientras no se pague.
type InvoiceRecord struct {
	ID       int64           `json:"id"`
	CompCode string          `json:"comp_code"`
	Amt      decimal.Decimal `json:"amt"`
	Paid     bool            `json:"paid"`
	AddDate  string          `json:"add_date"`
	PaidDate *string         `json:"paid_date"`
}

// InvoiceResponse envoltorio de una factura plana: {"invoice": {...}}.
type InvoiceResponse struct {
	Invoice InvoiceRecord `json:"invoice"`
}

// InvoiceDetail factura con la empresa propietaria anidada (GET /invoices/:id).
type InvoiceDetail struct {
	ID       int64           `json:"id"`
	Amt      decimal.Decimal `json:"amt"`
	Paid     bool            `json:"paid"`
	AddDate  string          `json:"add_date"`
	PaidDate *string         `json:"paid_date"`
	Company  CompanyDetail   `json:"company"`
}

// InvoiceDetailResponse envoltorio del detalle: {"invoice": {...}}.
type InvoiceDetailResponse struct {
	Invoice InvoiceDetail `json:"invoice"`
}
