package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/biztime-api/internal/domain"
	"github.com/jhoicas/biztime-api/internal/domain/entity"
	"github.com/jhoicas/biztime-api/internal/domain/repository"
)

// Asegura que CompanyRepo implementa repository.CompanyRepository.
var _ repository.CompanyRepository = (*CompanyRepo)(nil)

// CompanyRepo implementación del puerto CompanyRepository sobre PostgreSQL
// (usable con pool o tx).
type CompanyRepo struct {
	q Querier
}

// NewCompanyRepository construye el adaptador de persistencia para empresas.
func NewCompanyRepository(q Querier) *CompanyRepo {
	return &CompanyRepo{q: q}
}

// List devuelve todas las empresas ordenadas por código.
func (r *CompanyRepo) List(ctx context.Context) ([]*entity.Company, error) {
	query := `
		SELECT code, name, COALESCE(description, '')
		FROM companies ORDER BY code`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list companies: %w", err)
	}
	defer rows.Close()

	var list []*entity.Company
	for rows.Next() {
		var c entity.Company
		if err := rows.Scan(&c.Code, &c.Name, &c.Description); err != nil {
			return nil, fmt.Errorf("scan company: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}

// GetByCode obtiene una empresa por código. Devuelve (nil, nil) si no existe.
func (r *CompanyRepo) GetByCode(ctx context.Context, code string) (*entity.Company, error) {
	query := `
		SELECT code, name, COALESCE(description, '')
		FROM companies WHERE code = $1`
	var c entity.Company
	err := r.q.QueryRow(ctx, query, code).Scan(&c.Code, &c.Name, &c.Description)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get company: %w", err)
	}
	return &c, nil
}

// InvoiceIDs devuelve los IDs de las facturas de la empresa, ordenados.
func (r *CompanyRepo) InvoiceIDs(ctx context.Context, code string) ([]int64, error) {
	rows, err := r.q.Query(ctx, `SELECT id FROM invoices WHERE comp_code = $1 ORDER BY id`, code)
	if err != nil {
		return nil, fmt.Errorf("list invoice ids: %w", err)
	}
	defer rows.Close()

	ids := make([]int64, 0)
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan invoice id: %w", err)
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

// Create persiste una nueva empresa. Devuelve domain.ErrDuplicate si el
// código ya existe (constraint único 23505).
func (r *CompanyRepo) Create(ctx context.Context, company *entity.Company) error {
	query := `
		INSERT INTO companies (code, name, description)
		VALUES ($1, $2, $3)`
	_, err := r.q.Exec(ctx, query,
		company.Code, company.Name, nullIfEmpty(company.Description),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("company code %s: %w", company.Code, domain.ErrDuplicate)
		}
		return fmt.Errorf("insert company: %w", err)
	}
	return nil
}

// Update actualiza name y description de una empresa existente.
// Devuelve domain.ErrNotFound si el código no existe.
func (r *CompanyRepo) Update(ctx context.Context, company *entity.Company) error {
	query := `
		UPDATE companies SET name = $2, description = $3
		WHERE code = $1`
	cmd, err := r.q.Exec(ctx, query,
		company.Code, company.Name, nullIfEmpty(company.Description),
	)
	if err != nil {
		return fmt.Errorf("update company: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return fmt.Errorf("company %s: %w", company.Code, domain.ErrNotFound)
	}
	return nil
}

// Delete elimina una empresa por código. Devuelve domain.ErrNotFound si no
// existe y domain.ErrConflict si aún hay facturas que la referencian (la FK
// es ON DELETE RESTRICT).
func (r *CompanyRepo) Delete(ctx context.Context, code string) error {
	cmd, err := r.q.Exec(ctx, `DELETE FROM companies WHERE code = $1`, code)
	if err != nil {
		if isForeignKeyViolation(err) {
			return fmt.Errorf("company %s still has invoices: %w", code, domain.ErrConflict)
		}
		return fmt.Errorf("delete company: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return fmt.Errorf("company %s: %w", code, domain.ErrNotFound)
	}
	return nil
}

// nullIfEmpty convierte "" a NULL para columnas nullable.
func nullIfEmpty(s string) any {
	if s == "" {
		return nil
	}
	return s
}
