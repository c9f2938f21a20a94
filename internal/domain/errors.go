package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound             = errors.New("recurso no encontrado")
	ErrInvalidInput         = errors.New("entrada inválida")
	ErrConflict             = errors.New("conflicto con el estado actual")
	ErrUnauthorized         = errors.New("no autorizado")
	ErrForbidden            = errors.New("acceso denegado")
	ErrConfirmationRequired = errors.New("se requiere confirmación explícita")
	ErrBackendUnavailable   = errors.New("backend no disponible")
	ErrVehicleNotSelectable = errors.New("el vehículo no pertenece a la empresa o no está activo")
)
