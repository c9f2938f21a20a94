package fleetapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/jhoicas/busfleet-console/internal/domain/entity"
	"github.com/jhoicas/busfleet-console/internal/domain/repository"
)

var _ repository.UserRepository = (*UserClient)(nil)

// UserClient implementa repository.UserRepository contra /users/.
type UserClient struct {
	c *Client
}

// NewUserClient construye el cliente de usuarios.
func NewUserClient(c *Client) *UserClient {
	return &UserClient{c: c}
}

func (r *UserClient) List(ctx context.Context, token string) ([]*entity.User, error) {
	return r.list(ctx, token, "/users/")
}

func (r *UserClient) ListByCompany(ctx context.Context, token, companyID string) ([]*entity.User, error) {
	return r.list(ctx, token, "/users/company/"+escape(companyID))
}

func (r *UserClient) list(ctx context.Context, token, path string) ([]*entity.User, error) {
	var out []userJSON
	if err := r.c.doJSON(ctx, http.MethodGet, path, token, nil, &out); err != nil {
		return nil, err
	}
	list := make([]*entity.User, 0, len(out))
	for _, w := range out {
		list = append(list, w.toEntity())
	}
	return list, nil
}

func (r *UserClient) GetByID(ctx context.Context, token, id string) (*entity.User, error) {
	return r.one(ctx, http.MethodGet, "/users/"+escape(id), token, nil)
}

func (r *UserClient) Me(ctx context.Context, token string) (*entity.User, error) {
	return r.one(ctx, http.MethodGet, "/users/me", token, nil)
}

func (r *UserClient) Create(ctx context.Context, token string, user *entity.User) (*entity.User, error) {
	return r.one(ctx, http.MethodPost, "/users/", token, userToWire(user))
}

func (r *UserClient) Update(ctx context.Context, token string, user *entity.User) (*entity.User, error) {
	return r.one(ctx, http.MethodPut, "/users/"+escape(user.ID), token, userToWire(user))
}

func (r *UserClient) Delete(ctx context.Context, token, id string) error {
	return r.c.doJSON(ctx, http.MethodDelete, "/users/"+escape(id), token, nil, nil)
}

// profileEnvelope respuesta de /users/profile cuando cambia el correo.
type profileEnvelope struct {
	User    *userJSON `json:"user"`
	Warning string    `json:"warning"`
}

// UpdateProfile el backend responde con el usuario, o con {user, warning} si cambió el correo.
func (r *UserClient) UpdateProfile(ctx context.Context, token string, user *entity.User) (*entity.ProfileUpdate, error) {
	var raw json.RawMessage
	if err := r.c.doJSON(ctx, http.MethodPut, "/users/profile", token, userToWire(user), &raw); err != nil {
		return nil, err
	}
	var env profileEnvelope
	if err := json.Unmarshal(raw, &env); err == nil && env.User != nil {
		return &entity.ProfileUpdate{User: env.User.toEntity(), Warning: env.Warning}, nil
	}
	var plain userJSON
	if err := json.Unmarshal(raw, &plain); err != nil {
		return nil, fmt.Errorf("fleetapi: deserializar perfil: %w", err)
	}
	return &entity.ProfileUpdate{User: plain.toEntity()}, nil
}

func (r *UserClient) one(ctx context.Context, method, path, token string, in any) (*entity.User, error) {
	var out userJSON
	if err := r.c.doJSON(ctx, method, path, token, in, &out); err != nil {
		return nil, err
	}
	return out.toEntity(), nil
}
