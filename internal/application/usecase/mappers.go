package usecase

import (
	"github.com/jhoicas/busfleet-console/internal/application/dto"
	"github.com/jhoicas/busfleet-console/internal/domain/entity"
)

const (
	dateLayout = "2006-01-02"
	timeLayout = "15:04"
)

func entityToCompanyResponse(c *entity.Company) *dto.CompanyResponse {
	if c == nil {
		return nil
	}
	return &dto.CompanyResponse{
		ID:        c.ID,
		Name:      c.Name,
		NIT:       c.NIT,
		Email:     c.Email,
		Phone:     c.Phone,
		Address:   c.Address,
		Status:    c.Status,
		CreatedAt: c.CreatedAt,
	}
}

func entityToUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:             u.ID,
		Name:           u.Name,
		Email:          u.Email,
		Identification: u.Identification,
		Role:           string(u.Role),
		Status:         u.Status,
		CompanyID:      u.CompanyID,
	}
}

func entityToVehicleResponse(v *entity.Vehicle) *dto.VehicleResponse {
	if v == nil {
		return nil
	}
	return &dto.VehicleResponse{
		ID:            v.ID,
		Brand:         v.Brand,
		Model:         v.Model,
		Year:          v.Year,
		VehicleType:   string(v.Type),
		PlateNumber:   v.PlateNumber,
		CompanyNumber: v.CompanyNumber,
		VIN:           v.VIN,
		Status:        string(v.Status),
		CompanyID:     v.CompanyID,
	}
}

func entityToRouteResponse(r *entity.Route) *dto.RouteResponse {
	if r == nil {
		return nil
	}
	d := entity.SplitMinutes(r.EstimatedDuration)
	out := &dto.RouteResponse{
		ID:                r.ID,
		Name:              r.Name,
		StartPoint:        r.StartPoint,
		EndPoint:          r.EndPoint,
		Stops:             make([]dto.StopResponse, 0, len(r.Stops)),
		EstimatedDuration: r.EstimatedDuration,
		DurationDays:      d.Days,
		DurationHours:     d.Hours,
		DurationMinutes:   d.Minutes,
		DurationText:      d.String(),
		Status:            string(r.Status),
		CompanyID:         r.CompanyID,
		VehicleID:         r.VehicleID,
	}
	if !r.Departure.IsZero() {
		out.DepartureDate = r.Departure.Format(dateLayout)
		out.DepartureTime = r.Departure.Format(timeLayout)
		out.Departure = r.Departure.Format(dateLayout + " " + timeLayout)
		out.Arrival = r.EstimatedArrival().Format(dateLayout + " " + timeLayout)
	}
	for _, s := range r.Stops {
		out.Stops = append(out.Stops, dto.StopResponse{Location: s.Location, StopMinutes: s.StopMinutes})
	}
	if r.Repetition != nil {
		out.RepetitionFrequency = r.Repetition.Frequency
		out.RepetitionPeriod = string(r.Repetition.Period)
	}
	return out
}

// companyNames índice id -> nombre para resolver referencias en tablas.
func companyNames(list []*entity.Company) map[string]string {
	names := make(map[string]string, len(list))
	for _, c := range list {
		names[c.ID] = c.Name
	}
	return names
}
