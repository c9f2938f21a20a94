package dto

// VehicleForm entrada del formulario de vehículo.
type VehicleForm struct {
	Brand         string `form:"brand" validate:"required,max=100"`
	Model         string `form:"model" validate:"required,max=100"`
	Year          int    `form:"year" validate:"required,min=1950,max=2100"`
	VehicleType   string `form:"vehicle_type" validate:"required,oneof=BUS CAMION FURGONETA COCHE MOTO"`
	PlateNumber   string `form:"plate_number" validate:"required,max=15"`
	CompanyNumber string `form:"company_number" validate:"required,max=30"`
	VIN           string `form:"vin" validate:"omitempty,max=17"`
	Status        string `form:"status" validate:"required,oneof=ACTIVO EN_RUTA MANTENIMIENTO INACTIVO BAJA AVERIADO"`
	CompanyID     string `form:"company_id" validate:"required"`
}

// VehicleResponse salida de un vehículo.
type VehicleResponse struct {
	ID            string `json:"id"`
	Brand         string `json:"brand"`
	Model         string `json:"model"`
	Year          int    `json:"year"`
	VehicleType   string `json:"vehicle_type"`
	PlateNumber   string `json:"plate_number"`
	CompanyNumber string `json:"company_number"`
	VIN           string `json:"vin"`
	Status        string `json:"status"`
	CompanyID     string `json:"company_id"`
	CompanyName   string `json:"company_name,omitempty"`
}
