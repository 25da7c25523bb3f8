package usecase

import (
	"context"
	"strings"

	"github.com/jhoicas/biztime-api/internal/application/dto"
	"github.com/jhoicas/biztime-api/internal/domain"
	"github.com/jhoicas/biztime-api/internal/domain/entity"
	"github.com/jhoicas/biztime-api/internal/domain/repository"
	"github.com/jhoicas/biztime-api/internal/domain/slug"
)

// CompanyUseCase aplica las reglas de negocio para empresas.
type CompanyUseCase struct {
	repo repository.CompanyRepository
}

// NewCompanyUseCase construye el caso de uso con el puerto de persistencia.
func NewCompanyUseCase(repo repository.CompanyRepository) *CompanyUseCase {
	return &CompanyUseCase{repo: repo}
}

// List devuelve todas las empresas como resúmenes {code, name}.
func (uc *CompanyUseCase) List(ctx context.Context) (*dto.CompanyListResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.CompanySummary, 0, len(list))
	for _, c := range list {
		items = append(items, dto.CompanySummary{Code: c.Code, Name: c.Name})
	}
	return &dto.CompanyListResponse{Companies: items}, nil
}

// Get devuelve la empresa completa más los IDs de sus facturas (puede ser una
// lista vacía). Devuelve domain.ErrNotFound si el código no existe.
func (uc *CompanyUseCase) Get(ctx context.Context, code string) (*dto.CompanyDetailResponse, error) {
	company, err := uc.repo.GetByCode(ctx, code)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, domain.ErrNotFound
	}
	invoiceIDs, err := uc.repo.InvoiceIDs(ctx, code)
	if err != nil {
		return nil, err
	}
	if invoiceIDs == nil {
		invoiceIDs = []int64{}
	}
	return &dto.CompanyDetailResponse{Company: dto.CompanyWithInvoices{
		CompanyDetail: companyToDetail(company),
		Invoices:      invoiceIDs,
	}}, nil
}

// Create deriva el código a partir del nombre e inserta la empresa.
// Devuelve domain.ErrInvalidInput si el nombre no produce código y
// domain.ErrDuplicate si el código derivado ya existe.
func (uc *CompanyUseCase) Create(ctx context.Context, in dto.CreateCompanyRequest) (*dto.CompanyResponse, error) {
	code, err := slug.Derive(in.Name)
	if err != nil {
		return nil, err
	}
	company := &entity.Company{
		Code:        code,
		Name:        strings.TrimSpace(in.Name),
		Description: in.Description,
	}
	if err := uc.repo.Create(ctx, company); err != nil {
		return nil, err
	}
	return &dto.CompanyResponse{Company: companyToDetail(company)}, nil
}

// Update actualiza name y description; el código nunca es mutable.
// Devuelve domain.ErrNotFound si el código no existe.
func (uc *CompanyUseCase) Update(ctx context.Context, code string, in dto.UpdateCompanyRequest) (*dto.CompanyResponse, error) {
	if strings.TrimSpace(in.Name) == "" {
		return nil, domain.ErrInvalidInput
	}
	company := &entity.Company{
		Code:        code,
		Name:        strings.TrimSpace(in.Name),
		Description: in.Description,
	}
	if err := uc.repo.Update(ctx, company); err != nil {
		return nil, err
	}
	return &dto.CompanyResponse{Company: companyToDetail(company)}, nil
}

// Delete elimina la empresa. Devuelve domain.ErrNotFound si no existe y
// domain.ErrConflict si aún tiene facturas que la referencian (el store
// restringe el borrado por FK; no hay cascada).
func (uc *CompanyUseCase) Delete(ctx context.Context, code string) (*dto.DeleteResponse, error) {
	if err := uc.repo.Delete(ctx, code); err != nil {
		return nil, err
	}
	return dto.Deleted(), nil
}

// companyToDetail convierte la entidad al DTO; description vacía viaja como null.
func companyToDetail(c *entity.Company) dto.CompanyDetail {
	var desc *string
	if c.Description != "" {
		d := c.Description
		desc = &d
	}
	return dto.CompanyDetail{Code: c.Code, Name: c.Name, Description: desc}
}
