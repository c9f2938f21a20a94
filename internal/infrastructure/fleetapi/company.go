package fleetapi

import (
	"context"
	"net/http"

	"github.com/jhoicas/busfleet-console/internal/domain/entity"
	"github.com/jhoicas/busfleet-console/internal/domain/repository"
)

var _ repository.CompanyRepository = (*CompanyClient)(nil)

// CompanyClient implementa repository.CompanyRepository contra /companies/.
type CompanyClient struct {
	c *Client
}

// NewCompanyClient construye el cliente de empresas.
func NewCompanyClient(c *Client) *CompanyClient {
	return &CompanyClient{c: c}
}

func (r *CompanyClient) List(ctx context.Context, token string) ([]*entity.Company, error) {
	var out []companyJSON
	if err := r.c.doJSON(ctx, http.MethodGet, "/companies/", token, nil, &out); err != nil {
		return nil, err
	}
	list := make([]*entity.Company, 0, len(out))
	for _, w := range out {
		list = append(list, w.toEntity())
	}
	return list, nil
}

func (r *CompanyClient) GetByID(ctx context.Context, token, id string) (*entity.Company, error) {
	var out companyJSON
	if err := r.c.doJSON(ctx, http.MethodGet, "/companies/"+escape(id), token, nil, &out); err != nil {
		return nil, err
	}
	return out.toEntity(), nil
}

func (r *CompanyClient) Create(ctx context.Context, token string, company *entity.Company) (*entity.Company, error) {
	var out companyJSON
	if err := r.c.doJSON(ctx, http.MethodPost, "/companies/", token, companyToWire(company), &out); err != nil {
		return nil, err
	}
	return out.toEntity(), nil
}

func (r *CompanyClient) Update(ctx context.Context, token string, company *entity.Company) (*entity.Company, error) {
	var out companyJSON
	if err := r.c.doJSON(ctx, http.MethodPut, "/companies/"+escape(company.ID), token, companyToWire(company), &out); err != nil {
		return nil, err
	}
	return out.toEntity(), nil
}

func (r *CompanyClient) Delete(ctx context.Context, token, id string) error {
	return r.c.doJSON(ctx, http.MethodDelete, "/companies/"+escape(id), token, nil, nil)
}
