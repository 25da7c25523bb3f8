package dto

// CreateCompanyRequest entrada para POST /companies.
// El código no se acepta del cliente: se deriva del nombre.
type CreateCompanyRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// UpdateCompanyRequest entrada para PUT/PATCH /companies/:code.
// Solo name y description son mutables; code es inmutable.
type UpdateCompanyRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// CompanySummary empresa en el listado (sin description ni facturas).
type CompanySummary struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

// CompanyListResponse envoltorio del listado: {"companies": [...]}.
type CompanyListResponse struct {
	Companies []CompanySummary `json:"companies"`
}

// CompanyDetail empresa completa. Description viaja como null cuando está
// vacía (columna nullable).
type CompanyDetail struct {
	Code        string  `json:"code"`
	Name        string  `json:"name"`
	Description *string `json:"description"`
}

// CompanyResponse envoltorio de una empresa: {"company": {...}}.
// Respuesta de POST y PUT/PATCH.
type CompanyResponse struct {
	Company CompanyDetail `json:"company"`
}

// CompanyWithInvoices detalle GET: la empresa más los IDs de sus facturas,
// ordenados. La lista siempre está presente aunque sea vacía.
type CompanyWithInvoices struct {
	CompanyDetail
	Invoices []int64 `json:"invoices"`
}

// CompanyDetailResponse envoltorio del detalle: {"company": {..., invoices}}.
type CompanyDetailResponse struct {
	Company CompanyWithInvoices `json:"company"`
}
