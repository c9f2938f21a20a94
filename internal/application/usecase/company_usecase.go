package usecase

import (
	"context"
	"strings"

	"github.com/jhoicas/busfleet-console/internal/application/dto"
	"github.com/jhoicas/busfleet-console/internal/domain"
	"github.com/jhoicas/busfleet-console/internal/domain/entity"
	"github.com/jhoicas/busfleet-console/internal/domain/repository"
)

// CompanyUseCase aplica las reglas del panel para empresas.
type CompanyUseCase struct {
	repo repository.CompanyRepository
}

// NewCompanyUseCase construye el caso de uso con el puerto de acceso.
func NewCompanyUseCase(repo repository.CompanyRepository) *CompanyUseCase {
	return &CompanyUseCase{repo: repo}
}

// List empresas visibles: todas en alcance global, solo la propia en alcance de empresa.
func (uc *CompanyUseCase) List(ctx context.Context, token string, scope Scope) ([]*entity.Company, error) {
	if scope.Global {
		return uc.repo.List(ctx, token)
	}
	c, err := uc.repo.GetByID(ctx, token, scope.CompanyID)
	if err != nil {
		return nil, err
	}
	return []*entity.Company{c}, nil
}

// GetByID obtiene una empresa si el alcance la permite.
func (uc *CompanyUseCase) GetByID(ctx context.Context, token string, scope Scope, id string) (*dto.CompanyResponse, error) {
	if !scope.Allows(id) {
		return nil, domain.ErrForbidden
	}
	c, err := uc.repo.GetByID(ctx, token, id)
	if err != nil {
		return nil, err
	}
	return entityToCompanyResponse(c), nil
}

// Create crea una empresa. Solo alcance global.
func (uc *CompanyUseCase) Create(ctx context.Context, token string, scope Scope, in dto.CompanyForm) (*dto.CompanyResponse, error) {
	if !scope.CanManageCompanies() {
		return nil, domain.ErrForbidden
	}
	if err := validateForm(in); err != nil {
		return nil, err
	}
	company := formToCompany(in)
	if company.Status == "" {
		company.Status = entity.CompanyStatusActive
	}
	created, err := uc.repo.Create(ctx, token, company)
	if err != nil {
		return nil, err
	}
	return entityToCompanyResponse(created), nil
}

// Update reemplaza los datos de la empresa id. Solo alcance global.
func (uc *CompanyUseCase) Update(ctx context.Context, token string, scope Scope, id string, in dto.CompanyForm) (*dto.CompanyResponse, error) {
	if !scope.CanManageCompanies() {
		return nil, domain.ErrForbidden
	}
	if err := validateForm(in); err != nil {
		return nil, err
	}
	company := formToCompany(in)
	company.ID = id
	updated, err := uc.repo.Update(ctx, token, company)
	if err != nil {
		return nil, err
	}
	return entityToCompanyResponse(updated), nil
}

// Delete elimina la empresa id tras confirmación explícita. Solo alcance global.
func (uc *CompanyUseCase) Delete(ctx context.Context, token string, scope Scope, id string, confirmed bool) error {
	if !scope.CanManageCompanies() {
		return domain.ErrForbidden
	}
	if !confirmed {
		return domain.ErrConfirmationRequired
	}
	return uc.repo.Delete(ctx, token, id)
}

func formToCompany(in dto.CompanyForm) *entity.Company {
	return &entity.Company{
		Name:    strings.TrimSpace(in.Name),
		NIT:     strings.TrimSpace(in.NIT),
		Email:   strings.TrimSpace(in.Email),
		Phone:   strings.TrimSpace(in.Phone),
		Address: strings.TrimSpace(in.Address),
		Status:  in.Status,
	}
}
