package fleetapi

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/busfleet-console/internal/domain"
)

func TestParseDetail(t *testing.T) {
	cases := []struct {
		name string
		body string
		want string
	}{
		{"texto", `{"detail":"Empresa no encontrada"}`, "Empresa no encontrada"},
		{"lista de validación", `{"detail":[{"loc":["body","plate_number"],"msg":"field required"},{"loc":["body",0],"msg":"bad"}]}`, "plate_number: field required; bad"},
		{"sin detail", `{"message":"x"}`, ""},
		{"no json", `<html>502</html>`, ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, parseDetail([]byte(tc.body)))
		})
	}
}

func TestAPIError_Unwrap(t *testing.T) {
	assert.ErrorIs(t, newAPIError(401, nil), domain.ErrUnauthorized)
	assert.ErrorIs(t, newAPIError(403, nil), domain.ErrForbidden)
	assert.ErrorIs(t, newAPIError(404, nil), domain.ErrNotFound)
	assert.ErrorIs(t, newAPIError(422, nil), domain.ErrInvalidInput)
	assert.ErrorIs(t, newAPIError(503, nil), domain.ErrBackendUnavailable)
	assert.Nil(t, newAPIError(418, nil).Unwrap())
	assert.Equal(t, "backend HTTP 400: placa duplicada", (&APIError{Status: 400, Detail: "placa duplicada"}).Error())
}
