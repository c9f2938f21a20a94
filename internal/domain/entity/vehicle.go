package entity

// VehicleType tipo de vehículo.
type VehicleType string

const (
	VehicleBus       VehicleType = "BUS"
	VehicleCamion    VehicleType = "CAMION"
	VehicleFurgoneta VehicleType = "FURGONETA"
	VehicleCoche     VehicleType = "COCHE"
	VehicleMoto      VehicleType = "MOTO"
)

// VehicleTypes en orden de presentación.
var VehicleTypes = []VehicleType{VehicleBus, VehicleCamion, VehicleFurgoneta, VehicleCoche, VehicleMoto}

// VehicleStatus estado operativo de un vehículo.
type VehicleStatus string

const (
	VehicleActivo        VehicleStatus = "ACTIVO"
	VehicleEnRuta        VehicleStatus = "EN_RUTA"
	VehicleMantenimiento VehicleStatus = "MANTENIMIENTO"
	VehicleInactivo      VehicleStatus = "INACTIVO"
	VehicleBaja          VehicleStatus = "BAJA"
	VehicleAveriado      VehicleStatus = "AVERIADO"
)

// VehicleStatuses en orden de presentación del selector de estado.
var VehicleStatuses = []VehicleStatus{
	VehicleActivo, VehicleEnRuta, VehicleMantenimiento,
	VehicleInactivo, VehicleBaja, VehicleAveriado,
}

// Valid informa si t es un tipo conocido.
func (t VehicleType) Valid() bool {
	for _, known := range VehicleTypes {
		if t == known {
			return true
		}
	}
	return false
}

// Valid informa si s es un estado conocido.
func (s VehicleStatus) Valid() bool {
	for _, known := range VehicleStatuses {
		if s == known {
			return true
		}
	}
	return false
}

// Vehicle representa un vehículo de la flota de una empresa.
type Vehicle struct {
	ID            string
	Brand         string
	Model         string
	Year          int
	Type          VehicleType
	PlateNumber   string
	CompanyNumber string // número interno de la empresa
	VIN           string // vacío = sin VIN
	Status        VehicleStatus
	CompanyID     string
}

// AssignableTo informa si el vehículo puede asignarse a una ruta de companyID.
func (v *Vehicle) AssignableTo(companyID string) bool {
	return v != nil && companyID != "" && v.CompanyID == companyID && v.Status == VehicleActivo
}

// AssignableVehicles filtra los vehículos seleccionables para una ruta de companyID.
func AssignableVehicles(vehicles []*Vehicle, companyID string) []*Vehicle {
	out := make([]*Vehicle, 0, len(vehicles))
	for _, v := range vehicles {
		if v.AssignableTo(companyID) {
			out = append(out, v)
		}
	}
	return out
}
