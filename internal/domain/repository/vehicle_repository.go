package repository

import (
	"context"

	"github.com/jhoicas/busfleet-console/internal/domain/entity"
)

// VehicleRepository define el puerto de acceso a vehículos (DIP).
type VehicleRepository interface {
	List(ctx context.Context, token string) ([]*entity.Vehicle, error)
	ListByCompany(ctx context.Context, token, companyID string) ([]*entity.Vehicle, error)
	GetByID(ctx context.Context, token, id string) (*entity.Vehicle, error)
	Create(ctx context.Context, token string, vehicle *entity.Vehicle) (*entity.Vehicle, error)
	Update(ctx context.Context, token string, vehicle *entity.Vehicle) (*entity.Vehicle, error)
	// UpdateStatus envía solo el nuevo estado.
	UpdateStatus(ctx context.Context, token, id string, status entity.VehicleStatus) (*entity.Vehicle, error)
	Delete(ctx context.Context, token, id string) error
}
