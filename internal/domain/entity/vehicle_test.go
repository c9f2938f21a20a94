package entity_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/busfleet-console/internal/domain/entity"
)

func TestAssignableVehicles_SameCompanyAndActive(t *testing.T) {
	vehicles := []*entity.Vehicle{
		{ID: "v1", CompanyID: "c1", Status: entity.VehicleActivo},
		{ID: "v2", CompanyID: "c1", Status: entity.VehicleMantenimiento},
		{ID: "v3", CompanyID: "c2", Status: entity.VehicleActivo},
		{ID: "v4", CompanyID: "c1", Status: entity.VehicleActivo},
		{ID: "v5", CompanyID: "c1", Status: entity.VehicleEnRuta},
	}

	got := entity.AssignableVehicles(vehicles, "c1")

	ids := make([]string, 0, len(got))
	for _, v := range got {
		ids = append(ids, v.ID)
	}
	assert.Equal(t, []string{"v1", "v4"}, ids)
	assert.Empty(t, entity.AssignableVehicles(vehicles, ""), "sin empresa no hay opciones")
}

func TestEnumsValid(t *testing.T) {
	assert.True(t, entity.VehicleBus.Valid())
	assert.False(t, entity.VehicleType("TREN").Valid())
	assert.True(t, entity.VehicleAveriado.Valid())
	assert.True(t, entity.RoleJefeTaller.Valid())
	assert.False(t, entity.Role("VENDEDOR").Valid())
	assert.True(t, entity.RoleAdministrativo.Privileged())
	assert.False(t, entity.RoleConductor.Privileged())
	assert.True(t, entity.RepeatWeekly.Valid())
	assert.False(t, entity.RouteStatus("CANCELADA").Valid())
}
