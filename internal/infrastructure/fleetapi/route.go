package fleetapi

import (
	"context"
	"net/http"

	"github.com/jhoicas/busfleet-console/internal/domain/entity"
	"github.com/jhoicas/busfleet-console/internal/domain/repository"
)

var _ repository.RouteRepository = (*RouteClient)(nil)

// RouteClient implementa repository.RouteRepository contra /routes/.
type RouteClient struct {
	c *Client
}

// NewRouteClient construye el cliente de rutas.
func NewRouteClient(c *Client) *RouteClient {
	return &RouteClient{c: c}
}

func (r *RouteClient) List(ctx context.Context, token string) ([]*entity.Route, error) {
	return r.list(ctx, token, "/routes/")
}

func (r *RouteClient) ListByCompany(ctx context.Context, token, companyID string) ([]*entity.Route, error) {
	return r.list(ctx, token, "/routes/company/"+escape(companyID))
}

func (r *RouteClient) list(ctx context.Context, token, path string) ([]*entity.Route, error) {
	var out []routeJSON
	if err := r.c.doJSON(ctx, http.MethodGet, path, token, nil, &out); err != nil {
		return nil, err
	}
	list := make([]*entity.Route, 0, len(out))
	for _, w := range out {
		list = append(list, w.toEntity())
	}
	return list, nil
}

func (r *RouteClient) GetByID(ctx context.Context, token, id string) (*entity.Route, error) {
	return r.one(ctx, http.MethodGet, "/routes/"+escape(id), token, nil)
}

func (r *RouteClient) Create(ctx context.Context, token string, route *entity.Route) (*entity.Route, error) {
	return r.one(ctx, http.MethodPost, "/routes/", token, routeToWire(route))
}

func (r *RouteClient) Update(ctx context.Context, token string, route *entity.Route) (*entity.Route, error) {
	return r.one(ctx, http.MethodPut, "/routes/"+escape(route.ID), token, routeToWire(route))
}

// UpdateStatus PUT /routes/{id}/status con {"status": ...} únicamente.
func (r *RouteClient) UpdateStatus(ctx context.Context, token, id string, status entity.RouteStatus) (*entity.Route, error) {
	return r.one(ctx, http.MethodPut, "/routes/"+escape(id)+"/status", token, statusJSON{Status: string(status)})
}

func (r *RouteClient) Delete(ctx context.Context, token, id string) error {
	return r.c.doJSON(ctx, http.MethodDelete, "/routes/"+escape(id), token, nil, nil)
}

func (r *RouteClient) one(ctx context.Context, method, path, token string, in any) (*entity.Route, error) {
	var out routeJSON
	if err := r.c.doJSON(ctx, method, path, token, in, &out); err != nil {
		return nil, err
	}
	return out.toEntity(), nil
}
