package dto

import "time"

// CompanyForm entrada del formulario de empresa (crear y editar).
type CompanyForm struct {
	Name    string `form:"name" validate:"required,min=1,max=200"`
	NIT     string `form:"nit" validate:"required,min=1,max=20"`
	Email   string `form:"email" validate:"required,email"`
	Phone   string `form:"phone" validate:"omitempty,max=30"`
	Address string `form:"address" validate:"omitempty,max=300"`
	Status  string `form:"status" validate:"omitempty,oneof=active inactive"`
}

// CompanyResponse salida de una empresa para tablas y detalle.
type CompanyResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	NIT       string    `json:"nit"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Address   string    `json:"address"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}
