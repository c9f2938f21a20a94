package repository

import (
	"context"

	"github.com/jhoicas/busfleet-console/internal/domain/entity"
)

// SessionRepository almacén de sesiones del navegador. Get devuelve (nil, nil) si no existe.
type SessionRepository interface {
	Create(ctx context.Context, s *entity.Session) error
	Get(ctx context.Context, id string) (*entity.Session, error)
	Save(ctx context.Context, s *entity.Session) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]*entity.Session, error)
}
