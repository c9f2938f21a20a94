package repository

import (
	"context"

	"github.com/jhoicas/busfleet-console/internal/domain/entity"
)

// CompanyRepository define el puerto de acceso a empresas (DIP).
// La implementación vive en infrastructure (cliente REST del backend de flota).
// token es el bearer de la sesión actual; todas las llamadas van autenticadas.
type CompanyRepository interface {
	List(ctx context.Context, token string) ([]*entity.Company, error)
	GetByID(ctx context.Context, token, id string) (*entity.Company, error)
	Create(ctx context.Context, token string, company *entity.Company) (*entity.Company, error)
	Update(ctx context.Context, token string, company *entity.Company) (*entity.Company, error)
	Delete(ctx context.Context, token, id string) error
}
