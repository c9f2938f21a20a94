package fleetapi

import (
	"context"
	"net/http"

	"github.com/jhoicas/busfleet-console/internal/domain/entity"
	"github.com/jhoicas/busfleet-console/internal/domain/repository"
)

var _ repository.VehicleRepository = (*VehicleClient)(nil)

// VehicleClient implementa repository.VehicleRepository contra /vehicles/.
type VehicleClient struct {
	c *Client
}

// NewVehicleClient construye el cliente de vehículos.
func NewVehicleClient(c *Client) *VehicleClient {
	return &VehicleClient{c: c}
}

func (r *VehicleClient) List(ctx context.Context, token string) ([]*entity.Vehicle, error) {
	return r.list(ctx, token, "/vehicles/")
}

func (r *VehicleClient) ListByCompany(ctx context.Context, token, companyID string) ([]*entity.Vehicle, error) {
	return r.list(ctx, token, "/vehicles/company/"+escape(companyID))
}

func (r *VehicleClient) list(ctx context.Context, token, path string) ([]*entity.Vehicle, error) {
	var out []vehicleJSON
	if err := r.c.doJSON(ctx, http.MethodGet, path, token, nil, &out); err != nil {
		return nil, err
	}
	list := make([]*entity.Vehicle, 0, len(out))
	for _, w := range out {
		list = append(list, w.toEntity())
	}
	return list, nil
}

func (r *VehicleClient) GetByID(ctx context.Context, token, id string) (*entity.Vehicle, error) {
	return r.one(ctx, http.MethodGet, "/vehicles/"+escape(id), token, nil)
}

func (r *VehicleClient) Create(ctx context.Context, token string, vehicle *entity.Vehicle) (*entity.Vehicle, error) {
	return r.one(ctx, http.MethodPost, "/vehicles/", token, vehicleToWire(vehicle))
}

func (r *VehicleClient) Update(ctx context.Context, token string, vehicle *entity.Vehicle) (*entity.Vehicle, error) {
	return r.one(ctx, http.MethodPut, "/vehicles/"+escape(vehicle.ID), token, vehicleToWire(vehicle))
}

// UpdateStatus PUT /vehicles/{id}/status con {"status": ...} únicamente.
func (r *VehicleClient) UpdateStatus(ctx context.Context, token, id string, status entity.VehicleStatus) (*entity.Vehicle, error) {
	return r.one(ctx, http.MethodPut, "/vehicles/"+escape(id)+"/status", token, statusJSON{Status: string(status)})
}

func (r *VehicleClient) Delete(ctx context.Context, token, id string) error {
	return r.c.doJSON(ctx, http.MethodDelete, "/vehicles/"+escape(id), token, nil, nil)
}

func (r *VehicleClient) one(ctx context.Context, method, path, token string, in any) (*entity.Vehicle, error) {
	var out vehicleJSON
	if err := r.c.doJSON(ctx, method, path, token, in, &out); err != nil {
		return nil, err
	}
	return out.toEntity(), nil
}
