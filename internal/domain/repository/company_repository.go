package repository

import (
	"context"

	"github.com/jhoicas/biztime-api/internal/domain/entity"
)

// CompanyRepository define el puerto de persistencia para Company (DIP).
// La implementación vive en infrastructure.
//
// Los métodos de lectura devuelven (nil, nil) cuando la empresa no existe;
// los de escritura clasifican los errores del store hacia los centinelas de
// domain (ErrNotFound, ErrDuplicate, ErrConflict).
type CompanyRepository interface {
	List(ctx context.Context) ([]*entity.Company, error)
	GetByCode(ctx context.Context, code string) (*entity.Company, error)
	// InvoiceIDs devuelve los IDs de las facturas de la empresa, ordenados.
	InvoiceIDs(ctx context.Context, code string) ([]int64, error)
	Create(ctx context.Context, company *entity.Company) error
	Update(ctx context.Context, company *entity.Company) error
	Delete(ctx context.Context, code string) error
}
