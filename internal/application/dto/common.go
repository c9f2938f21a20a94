package dto

// ErrorResponse cuerpo de error HTTP en endpoints JSON.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// SessionStatusResponse respuesta de GET /api/session (sondeo del Auth Gate desde las páginas).
type SessionStatusResponse struct {
	State          string `json:"state"`
	NextCheckAt    string `json:"next_check_at,omitempty"`
	TokenExpiresAt string `json:"token_expires_at,omitempty"`
}

// HealthResponse respuesta de GET /health.
type HealthResponse struct {
	Status  string `json:"status"`
	Service string `json:"service"`
}

// StatusForm cambio de estado desde el selector en línea (vehículos y rutas).
type StatusForm struct {
	Status string `form:"status" validate:"required"`
}

// ConfirmForm confirmación explícita de una operación destructiva.
type ConfirmForm struct {
	Confirm bool `form:"confirm"`
}
