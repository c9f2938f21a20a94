package fleetapi

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/jhoicas/busfleet-console/internal/domain/entity"
)

// departureLayout formato sin zona que el backend usa para departure_time.
const departureLayout = "2006-01-02T15:04:05"

var timeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	departureLayout,
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
}

// wireTime acepta marcas de tiempo con o sin zona horaria. Sin zona se interpretan en UTC.
type wireTime struct{ time.Time }

func (t *wireTime) UnmarshalJSON(b []byte) error {
	if bytes.Equal(b, []byte("null")) {
		t.Time = time.Time{}
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	parsed, err := parseTime(s)
	if err != nil {
		return err
	}
	t.Time = parsed
	return nil
}

func (t wireTime) MarshalJSON() ([]byte, error) {
	if t.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(t.UTC().Format(departureLayout))
}

func parseTime(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, nil
	}
	for _, layout := range timeLayouts {
		if parsed, err := time.ParseInLocation(layout, s, time.UTC); err == nil {
			return parsed, nil
		}
	}
	return time.Time{}, fmt.Errorf("fleetapi: fecha no reconocida %q", s)
}

func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// ── Company ───────────────────────────────────────────────────────────────────

type companyJSON struct {
	ID        string   `json:"id,omitempty"`
	Name      string   `json:"name"`
	NIT       string   `json:"nit"`
	Email     string   `json:"email"`
	Phone     string   `json:"phone"`
	Address   string   `json:"address"`
	Status    string   `json:"status,omitempty"`
	CreatedAt *wireTime `json:"created_at,omitempty"`
}

func companyToWire(c *entity.Company) companyJSON {
	return companyJSON{Name: c.Name, NIT: c.NIT, Email: c.Email, Phone: c.Phone, Address: c.Address, Status: c.Status}
}

func (w companyJSON) toEntity() *entity.Company {
	c := &entity.Company{
		ID: w.ID, Name: w.Name, NIT: w.NIT, Email: w.Email, Phone: w.Phone,
		Address: w.Address, Status: w.Status,
	}
	if w.CreatedAt != nil {
		c.CreatedAt = w.CreatedAt.Time
	}
	return c
}

// ── User ──────────────────────────────────────────────────────────────────────

type userJSON struct {
	ID             string  `json:"id,omitempty"`
	Name           string  `json:"name"`
	Email          string  `json:"email"`
	Identification *string `json:"identification"`
	Role           string  `json:"role"`
	Status         string  `json:"status,omitempty"`
	CompanyID      *string `json:"company_id"`
}

func userToWire(u *entity.User) userJSON {
	return userJSON{
		Name: u.Name, Email: u.Email, Identification: nullable(u.Identification),
		Role: string(u.Role), Status: u.Status, CompanyID: nullable(u.CompanyID),
	}
}

func (w userJSON) toEntity() *entity.User {
	return &entity.User{
		ID: w.ID, Name: w.Name, Email: w.Email, Identification: deref(w.Identification),
		Role: entity.Role(w.Role), Status: w.Status, CompanyID: deref(w.CompanyID),
	}
}

// ── Vehicle ───────────────────────────────────────────────────────────────────

type vehicleJSON struct {
	ID            string  `json:"id,omitempty"`
	Brand         string  `json:"brand"`
	Model         string  `json:"model"`
	Year          int     `json:"year"`
	VehicleType   string  `json:"vehicle_type"`
	PlateNumber   string  `json:"plate_number"`
	CompanyNumber string  `json:"company_number"`
	VIN           *string `json:"vin"`
	Status        string  `json:"status"`
	CompanyID     string  `json:"company_id"`
}

func vehicleToWire(v *entity.Vehicle) vehicleJSON {
	return vehicleJSON{
		Brand: v.Brand, Model: v.Model, Year: v.Year, VehicleType: string(v.Type),
		PlateNumber: v.PlateNumber, CompanyNumber: v.CompanyNumber, VIN: nullable(v.VIN),
		Status: string(v.Status), CompanyID: v.CompanyID,
	}
}

func (w vehicleJSON) toEntity() *entity.Vehicle {
	return &entity.Vehicle{
		ID: w.ID, Brand: w.Brand, Model: w.Model, Year: w.Year, Type: entity.VehicleType(w.VehicleType),
		PlateNumber: w.PlateNumber, CompanyNumber: w.CompanyNumber, VIN: deref(w.VIN),
		Status: entity.VehicleStatus(w.Status), CompanyID: w.CompanyID,
	}
}

// ── Route ─────────────────────────────────────────────────────────────────────

type stopJSON struct {
	Location          string `json:"location"`
	EstimatedStopTime int    `json:"estimated_stop_time"`
}

type routeJSON struct {
	ID                  string     `json:"id,omitempty"`
	Name                string     `json:"name"`
	StartPoint          string     `json:"start_point"`
	EndPoint            string     `json:"end_point"`
	IntermediateStops   []stopJSON `json:"intermediate_stops"`
	DepartureTime       wireTime   `json:"departure_time"`
	EstimatedDuration   int        `json:"estimated_duration"`
	RepetitionFrequency *int       `json:"repetition_frequency"`
	RepetitionPeriod    *string    `json:"repetition_period"`
	Status              string     `json:"status"`
	CompanyID           string     `json:"company_id"`
	VehicleID           *string    `json:"vehicle_id"`
}

func routeToWire(r *entity.Route) routeJSON {
	stops := make([]stopJSON, 0, len(r.Stops))
	for _, s := range r.Stops {
		stops = append(stops, stopJSON{Location: s.Location, EstimatedStopTime: s.StopMinutes})
	}
	w := routeJSON{
		Name: r.Name, StartPoint: r.StartPoint, EndPoint: r.EndPoint, IntermediateStops: stops,
		DepartureTime: wireTime{r.Departure}, EstimatedDuration: r.EstimatedDuration,
		Status: string(r.Status), CompanyID: r.CompanyID, VehicleID: nullable(r.VehicleID),
	}
	if r.Repetition != nil {
		freq := r.Repetition.Frequency
		period := string(r.Repetition.Period)
		w.RepetitionFrequency = &freq
		w.RepetitionPeriod = &period
	}
	return w
}

func (w routeJSON) toEntity() *entity.Route {
	stops := make([]entity.Stop, 0, len(w.IntermediateStops))
	for _, s := range w.IntermediateStops {
		stops = append(stops, entity.Stop{Location: s.Location, StopMinutes: s.EstimatedStopTime})
	}
	r := &entity.Route{
		ID: w.ID, Name: w.Name, StartPoint: w.StartPoint, EndPoint: w.EndPoint, Stops: stops,
		Departure: w.DepartureTime.Time, EstimatedDuration: w.EstimatedDuration,
		Status: entity.RouteStatus(w.Status), CompanyID: w.CompanyID, VehicleID: deref(w.VehicleID),
	}
	if w.RepetitionFrequency != nil && w.RepetitionPeriod != nil && *w.RepetitionPeriod != "" {
		r.Repetition = &entity.Repetition{Frequency: *w.RepetitionFrequency, Period: entity.RepetitionPeriod(*w.RepetitionPeriod)}
	}
	return r
}

type statusJSON struct {
	Status string `json:"status"`
}
