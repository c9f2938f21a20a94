package repository

import (
	"context"

	"github.com/jhoicas/busfleet-console/internal/domain/entity"
)

// RouteRepository define el puerto de acceso a rutas (DIP).
type RouteRepository interface {
	List(ctx context.Context, token string) ([]*entity.Route, error)
	ListByCompany(ctx context.Context, token, companyID string) ([]*entity.Route, error)
	GetByID(ctx context.Context, token, id string) (*entity.Route, error)
	Create(ctx context.Context, token string, route *entity.Route) (*entity.Route, error)
	Update(ctx context.Context, token string, route *entity.Route) (*entity.Route, error)
	UpdateStatus(ctx context.Context, token, id string, status entity.RouteStatus) (*entity.Route, error)
	Delete(ctx context.Context, token, id string) error
}
