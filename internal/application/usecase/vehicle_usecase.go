package usecase

import (
	"context"
	"strings"

	"github.com/jhoicas/busfleet-console/internal/application/dto"
	"github.com/jhoicas/busfleet-console/internal/domain"
	"github.com/jhoicas/busfleet-console/internal/domain/entity"
	"github.com/jhoicas/busfleet-console/internal/domain/repository"
)

// VehicleUseCase aplica las reglas del panel para vehículos.
type VehicleUseCase struct {
	repo repository.VehicleRepository
}

// NewVehicleUseCase construye el caso de uso con el puerto de acceso.
func NewVehicleUseCase(repo repository.VehicleRepository) *VehicleUseCase {
	return &VehicleUseCase{repo: repo}
}

// List vehículos del alcance.
func (uc *VehicleUseCase) List(ctx context.Context, token string, scope Scope) ([]*entity.Vehicle, error) {
	if scope.Global {
		return uc.repo.List(ctx, token)
	}
	return uc.repo.ListByCompany(ctx, token, scope.CompanyID)
}

// GetByID obtiene un vehículo del alcance.
func (uc *VehicleUseCase) GetByID(ctx context.Context, token string, scope Scope, id string) (*dto.VehicleResponse, error) {
	v, err := uc.get(ctx, token, scope, id)
	if err != nil {
		return nil, err
	}
	return entityToVehicleResponse(v), nil
}

// Create registra un vehículo. En alcance de empresa se fuerza company_id.
func (uc *VehicleUseCase) Create(ctx context.Context, token string, scope Scope, in dto.VehicleForm) (*dto.VehicleResponse, error) {
	in.CompanyID = scope.forceCompany(in.CompanyID)
	if err := validateForm(in); err != nil {
		return nil, err
	}
	created, err := uc.repo.Create(ctx, token, formToVehicle(in))
	if err != nil {
		return nil, err
	}
	return entityToVehicleResponse(created), nil
}

// Update reemplaza los datos del vehículo id.
func (uc *VehicleUseCase) Update(ctx context.Context, token string, scope Scope, id string, in dto.VehicleForm) (*dto.VehicleResponse, error) {
	in.CompanyID = scope.forceCompany(in.CompanyID)
	if err := validateForm(in); err != nil {
		return nil, err
	}
	if _, err := uc.get(ctx, token, scope, id); err != nil {
		return nil, err
	}
	v := formToVehicle(in)
	v.ID = id
	updated, err := uc.repo.Update(ctx, token, v)
	if err != nil {
		return nil, err
	}
	return entityToVehicleResponse(updated), nil
}

// UpdateStatus cambia solo el estado (selector en línea).
func (uc *VehicleUseCase) UpdateStatus(ctx context.Context, token string, scope Scope, id string, in dto.StatusForm) (*dto.VehicleResponse, error) {
	status := entity.VehicleStatus(in.Status)
	if !status.Valid() {
		return nil, fieldError("status", "Valor no permitido")
	}
	if _, err := uc.get(ctx, token, scope, id); err != nil {
		return nil, err
	}
	updated, err := uc.repo.UpdateStatus(ctx, token, id, status)
	if err != nil {
		return nil, err
	}
	return entityToVehicleResponse(updated), nil
}

// Delete elimina el vehículo id tras confirmación explícita.
func (uc *VehicleUseCase) Delete(ctx context.Context, token string, scope Scope, id string, confirmed bool) error {
	if !confirmed {
		return domain.ErrConfirmationRequired
	}
	if _, err := uc.get(ctx, token, scope, id); err != nil {
		return err
	}
	return uc.repo.Delete(ctx, token, id)
}

// get lee el vehículo y verifica que pertenezca al alcance.
func (uc *VehicleUseCase) get(ctx context.Context, token string, scope Scope, id string) (*entity.Vehicle, error) {
	v, err := uc.repo.GetByID(ctx, token, id)
	if err != nil {
		return nil, err
	}
	if !scope.Allows(v.CompanyID) {
		return nil, domain.ErrForbidden
	}
	return v, nil
}

func formToVehicle(in dto.VehicleForm) *entity.Vehicle {
	return &entity.Vehicle{
		Brand:         strings.TrimSpace(in.Brand),
		Model:         strings.TrimSpace(in.Model),
		Year:          in.Year,
		Type:          entity.VehicleType(in.VehicleType),
		PlateNumber:   strings.ToUpper(strings.TrimSpace(in.PlateNumber)),
		CompanyNumber: strings.TrimSpace(in.CompanyNumber),
		VIN:           strings.ToUpper(strings.TrimSpace(in.VIN)),
		Status:        entity.VehicleStatus(in.Status),
		CompanyID:     in.CompanyID,
	}
}
