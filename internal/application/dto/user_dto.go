package dto

// UserForm entrada del formulario de usuario.
type UserForm struct {
	Name           string `form:"name" validate:"required,min=1,max=200"`
	Email          string `form:"email" validate:"required,email"`
	Identification string `form:"identification" validate:"omitempty,max=50"`
	Role           string `form:"role" validate:"required,oneof=ADMIN OPERADOR CONDUCTOR PASAJERO TECNICO JEFE_TALLER ADMINISTRATIVO"`
	Status         string `form:"status" validate:"omitempty,oneof=active inactive"`
	CompanyID      string `form:"company_id" validate:"required"`
}

// ProfileForm edición del propio perfil. Cambiar el correo exige ConfirmEmailChange.
type ProfileForm struct {
	Name               string `form:"name" validate:"required,min=1,max=200"`
	Email              string `form:"email" validate:"required,email"`
	Identification     string `form:"identification" validate:"omitempty,max=50"`
	ConfirmEmailChange bool   `form:"confirm_email_change"`
}

// UserResponse salida de un usuario.
type UserResponse struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Email          string `json:"email"`
	Identification string `json:"identification"`
	Role           string `json:"role"`
	Status         string `json:"status"`
	CompanyID      string `json:"company_id"`
	CompanyName    string `json:"company_name,omitempty"`
}

// ProfileResult resultado de editar el perfil. ForceLogout indica que hay que cerrar la sesión.
type ProfileResult struct {
	User        UserResponse
	Warning     string
	ForceLogout bool
}
