package entity

import "time"

// RouteStatus estado de una ruta.
type RouteStatus string

const (
	RouteActiva      RouteStatus = "ACTIVA"
	RouteEnEjecucion RouteStatus = "EN_EJECUCION"
	RouteCompletada  RouteStatus = "COMPLETADA"
	RouteSuspendida  RouteStatus = "SUSPENDIDA"
)

// RouteStatuses en orden de presentación.
var RouteStatuses = []RouteStatus{RouteActiva, RouteEnEjecucion, RouteCompletada, RouteSuspendida}

// Valid informa si s es un estado conocido.
func (s RouteStatus) Valid() bool {
	for _, known := range RouteStatuses {
		if s == known {
			return true
		}
	}
	return false
}

// RepetitionPeriod unidad de repetición de una ruta recurrente.
type RepetitionPeriod string

const (
	RepeatDaily   RepetitionPeriod = "DIARIO"
	RepeatWeekly  RepetitionPeriod = "SEMANAL"
	RepeatMonthly RepetitionPeriod = "MENSUAL"
)

// RepetitionPeriods en orden de presentación.
var RepetitionPeriods = []RepetitionPeriod{RepeatDaily, RepeatWeekly, RepeatMonthly}

// Valid informa si p es un periodo conocido.
func (p RepetitionPeriod) Valid() bool {
	for _, known := range RepetitionPeriods {
		if p == known {
			return true
		}
	}
	return false
}

// Stop parada intermedia con su tiempo estimado de detención en minutos.
type Stop struct {
	Location    string
	StopMinutes int
}

// Repetition frecuencia de una ruta recurrente: cada Frequency unidades de Period.
type Repetition struct {
	Frequency int
	Period    RepetitionPeriod
}

// Route representa una ruta programada de una empresa.
type Route struct {
	ID                string
	Name              string
	StartPoint        string
	EndPoint          string
	Stops             []Stop
	Departure         time.Time
	EstimatedDuration int         // minutos totales
	Repetition        *Repetition // nil = no se repite
	Status            RouteStatus
	CompanyID         string
	VehicleID         string // vacío = sin vehículo asignado
}

// TotalStopMinutes suma los tiempos de parada de las paradas intermedias.
func (r *Route) TotalStopMinutes() int {
	total := 0
	for _, s := range r.Stops {
		total += s.StopMinutes
	}
	return total
}

// EstimatedArrival llegada estimada a partir de la salida y la duración total.
func (r *Route) EstimatedArrival() time.Time {
	return r.Departure.Add(time.Duration(r.EstimatedDuration) * time.Minute)
}
