package usecase_test

import (
	"context"
	"fmt"
	"strings"

	"github.com/jhoicas/busfleet-console/internal/domain"
	"github.com/jhoicas/busfleet-console/internal/domain/entity"
)

// Repos en memoria que cumplen los puertos; cuentan las llamadas de escritura.

type stubCompanies struct {
	items  map[string]*entity.Company
	writes int
	err    error
}

func newStubCompanies(list ...*entity.Company) *stubCompanies {
	s := &stubCompanies{items: map[string]*entity.Company{}}
	for _, c := range list {
		s.items[c.ID] = c
	}
	return s
}

func (s *stubCompanies) List(context.Context, string) ([]*entity.Company, error) {
	out := []*entity.Company{}
	for _, c := range s.items {
		out = append(out, c)
	}
	return out, nil
}

func (s *stubCompanies) GetByID(_ context.Context, _ string, id string) (*entity.Company, error) {
	if c, ok := s.items[id]; ok {
		return c, nil
	}
	return nil, domain.ErrNotFound
}

func (s *stubCompanies) Create(_ context.Context, _ string, c *entity.Company) (*entity.Company, error) {
	s.writes++
	if s.err != nil {
		return nil, s.err
	}
	c.ID = fmt.Sprintf("c%d", len(s.items)+1)
	s.items[c.ID] = c
	return c, nil
}

func (s *stubCompanies) Update(_ context.Context, _ string, c *entity.Company) (*entity.Company, error) {
	s.writes++
	s.items[c.ID] = c
	return c, nil
}

func (s *stubCompanies) Delete(_ context.Context, _ string, id string) error {
	s.writes++
	delete(s.items, id)
	return nil
}

type stubUsers struct {
	items   map[string]*entity.User
	me      *entity.User
	writes  int
	warning string
}

func newStubUsers(me *entity.User, list ...*entity.User) *stubUsers {
	s := &stubUsers{items: map[string]*entity.User{}, me: me}
	for _, u := range list {
		s.items[u.ID] = u
	}
	return s
}

func (s *stubUsers) List(context.Context, string) ([]*entity.User, error) {
	out := []*entity.User{}
	for _, u := range s.items {
		out = append(out, u)
	}
	return out, nil
}

func (s *stubUsers) ListByCompany(_ context.Context, _ string, companyID string) ([]*entity.User, error) {
	out := []*entity.User{}
	for _, u := range s.items {
		if u.CompanyID == companyID {
			out = append(out, u)
		}
	}
	return out, nil
}

func (s *stubUsers) GetByID(_ context.Context, _ string, id string) (*entity.User, error) {
	if u, ok := s.items[id]; ok {
		return u, nil
	}
	return nil, domain.ErrNotFound
}

func (s *stubUsers) Me(context.Context, string) (*entity.User, error) {
	if s.me == nil {
		return nil, domain.ErrUnauthorized
	}
	return s.me, nil
}

func (s *stubUsers) Create(_ context.Context, _ string, u *entity.User) (*entity.User, error) {
	s.writes++
	u.ID = fmt.Sprintf("u%d", len(s.items)+1)
	s.items[u.ID] = u
	return u, nil
}

func (s *stubUsers) Update(_ context.Context, _ string, u *entity.User) (*entity.User, error) {
	s.writes++
	s.items[u.ID] = u
	return u, nil
}

func (s *stubUsers) UpdateProfile(_ context.Context, _ string, u *entity.User) (*entity.ProfileUpdate, error) {
	s.writes++
	warning := ""
	if !strings.EqualFold(u.Email, s.me.Email) {
		warning = s.warning
	}
	return &entity.ProfileUpdate{User: u, Warning: warning}, nil
}

func (s *stubUsers) Delete(_ context.Context, _ string, id string) error {
	s.writes++
	delete(s.items, id)
	return nil
}

type stubVehicles struct {
	items  map[string]*entity.Vehicle
	writes int
	status entity.VehicleStatus
}

func newStubVehicles(list ...*entity.Vehicle) *stubVehicles {
	s := &stubVehicles{items: map[string]*entity.Vehicle{}}
	for _, v := range list {
		s.items[v.ID] = v
	}
	return s
}

func (s *stubVehicles) List(context.Context, string) ([]*entity.Vehicle, error) {
	out := []*entity.Vehicle{}
	for _, v := range s.items {
		out = append(out, v)
	}
	return out, nil
}

func (s *stubVehicles) ListByCompany(_ context.Context, _ string, companyID string) ([]*entity.Vehicle, error) {
	out := []*entity.Vehicle{}
	for _, v := range s.items {
		if v.CompanyID == companyID {
			out = append(out, v)
		}
	}
	return out, nil
}

func (s *stubVehicles) GetByID(_ context.Context, _ string, id string) (*entity.Vehicle, error) {
	if v, ok := s.items[id]; ok {
		return v, nil
	}
	return nil, domain.ErrNotFound
}

func (s *stubVehicles) Create(_ context.Context, _ string, v *entity.Vehicle) (*entity.Vehicle, error) {
	s.writes++
	v.ID = fmt.Sprintf("v%d", len(s.items)+1)
	s.items[v.ID] = v
	return v, nil
}

func (s *stubVehicles) Update(_ context.Context, _ string, v *entity.Vehicle) (*entity.Vehicle, error) {
	s.writes++
	s.items[v.ID] = v
	return v, nil
}

func (s *stubVehicles) UpdateStatus(_ context.Context, _ string, id string, status entity.VehicleStatus) (*entity.Vehicle, error) {
	s.writes++
	s.status = status
	v := *s.items[id]
	v.Status = status
	return &v, nil
}

func (s *stubVehicles) Delete(_ context.Context, _ string, id string) error {
	s.writes++
	delete(s.items, id)
	return nil
}

type stubRoutes struct {
	items  map[string]*entity.Route
	writes int
	last   *entity.Route
}

func newStubRoutes(list ...*entity.Route) *stubRoutes {
	s := &stubRoutes{items: map[string]*entity.Route{}}
	for _, r := range list {
		s.items[r.ID] = r
	}
	return s
}

func (s *stubRoutes) List(context.Context, string) ([]*entity.Route, error) {
	out := []*entity.Route{}
	for _, r := range s.items {
		out = append(out, r)
	}
	return out, nil
}

func (s *stubRoutes) ListByCompany(_ context.Context, _ string, companyID string) ([]*entity.Route, error) {
	out := []*entity.Route{}
	for _, r := range s.items {
		if r.CompanyID == companyID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (s *stubRoutes) GetByID(_ context.Context, _ string, id string) (*entity.Route, error) {
	if r, ok := s.items[id]; ok {
		return r, nil
	}
	return nil, domain.ErrNotFound
}

func (s *stubRoutes) Create(_ context.Context, _ string, r *entity.Route) (*entity.Route, error) {
	s.writes++
	r.ID = fmt.Sprintf("r%d", len(s.items)+1)
	s.items[r.ID] = r
	s.last = r
	return r, nil
}

func (s *stubRoutes) Update(_ context.Context, _ string, r *entity.Route) (*entity.Route, error) {
	s.writes++
	s.items[r.ID] = r
	s.last = r
	return r, nil
}

func (s *stubRoutes) UpdateStatus(_ context.Context, _ string, id string, status entity.RouteStatus) (*entity.Route, error) {
	s.writes++
	r := *s.items[id]
	r.Status = status
	return &r, nil
}

func (s *stubRoutes) Delete(_ context.Context, _ string, id string) error {
	s.writes++
	delete(s.items, id)
	return nil
}
