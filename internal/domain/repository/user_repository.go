package repository

import (
	"context"

	"github.com/jhoicas/busfleet-console/internal/domain/entity"
)

// UserRepository define el puerto de acceso a usuarios (DIP).
type UserRepository interface {
	List(ctx context.Context, token string) ([]*entity.User, error)
	ListByCompany(ctx context.Context, token, companyID string) ([]*entity.User, error)
	GetByID(ctx context.Context, token, id string) (*entity.User, error)
	// Me devuelve el usuario dueño del token.
	Me(ctx context.Context, token string) (*entity.User, error)
	Create(ctx context.Context, token string, user *entity.User) (*entity.User, error)
	Update(ctx context.Context, token string, user *entity.User) (*entity.User, error)
	UpdateProfile(ctx context.Context, token string, user *entity.User) (*entity.ProfileUpdate, error)
	Delete(ctx context.Context, token, id string) error
}
