package dto

import "time"

// RouteForm entrada del formulario de ruta. La duración se edita en días/horas/minutos
// y las paradas llegan como campos repetidos stop_location/stop_minutes alineados por índice.
type RouteForm struct {
	Name                string   `form:"name" validate:"required,max=200"`
	StartPoint          string   `form:"start_point" validate:"required,max=200"`
	EndPoint            string   `form:"end_point" validate:"required,max=200"`
	StopLocations       []string `form:"stop_location" validate:"dive,max=200"`
	StopMinutes         []int    `form:"stop_minutes" validate:"dive,min=0"`
	DepartureDate       string   `form:"departure_date" validate:"required,datetime=2006-01-02"`
	DepartureTime       string   `form:"departure_time" validate:"required,datetime=15:04"`
	DurationDays        int      `form:"duration_days" validate:"min=0"`
	DurationHours       int      `form:"duration_hours" validate:"min=0"`
	DurationMinutes     int      `form:"duration_minutes" validate:"min=0"`
	RepetitionFrequency int      `form:"repetition_frequency" validate:"min=0"`
	RepetitionPeriod    string   `form:"repetition_period" validate:"omitempty,oneof=DIARIO SEMANAL MENSUAL"`
	Status              string   `form:"status" validate:"required,oneof=ACTIVA EN_EJECUCION COMPLETADA SUSPENDIDA"`
	CompanyID           string   `form:"company_id" validate:"required"`
	VehicleID           string   `form:"vehicle_id"`
}

// StopResponse parada intermedia.
type StopResponse struct {
	Location    string `json:"location"`
	StopMinutes int    `json:"estimated_stop_time"`
}

// RouteResponse salida de una ruta con campos derivados para presentación.
type RouteResponse struct {
	ID                  string         `json:"id"`
	Name                string         `json:"name"`
	StartPoint          string         `json:"start_point"`
	EndPoint            string         `json:"end_point"`
	Stops               []StopResponse `json:"intermediate_stops"`
	DepartureDate       string         `json:"-"`
	DepartureTime       string         `json:"-"`
	Departure           string         `json:"departure_time"`
	EstimatedDuration   int            `json:"estimated_duration"`
	DurationDays        int            `json:"-"`
	DurationHours       int            `json:"-"`
	DurationMinutes     int            `json:"-"`
	DurationText        string         `json:"-"`
	Arrival             string         `json:"-"`
	RepetitionFrequency int            `json:"repetition_frequency,omitempty"`
	RepetitionPeriod    string         `json:"repetition_period,omitempty"`
	Status              string         `json:"status"`
	CompanyID           string         `json:"company_id"`
	CompanyName         string         `json:"company_name,omitempty"`
	VehicleID           string         `json:"vehicle_id,omitempty"`
	VehiclePlate        string         `json:"vehicle_plate,omitempty"`
}

// RouteSheet datos de la hoja de ruta imprimible.
type RouteSheet struct {
	Route        RouteResponse
	CompanyName  string
	VehicleLabel string
	DetailURL    string // destino del código QR
	GeneratedAt  time.Time
}
