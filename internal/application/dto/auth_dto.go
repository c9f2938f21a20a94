package dto

// LoginForm inicio de sesión directo con credenciales.
type LoginForm struct {
	Username string `form:"username" validate:"required"`
	Password string `form:"password" validate:"required"`
}

// ForgotPasswordForm paso 1 del restablecimiento: solicitar el código.
type ForgotPasswordForm struct {
	Email string `form:"email" validate:"required,email"`
}

// ResetPasswordForm paso 2: código recibido por correo y nueva contraseña.
type ResetPasswordForm struct {
	Email           string `form:"email" validate:"required,email"`
	Code            string `form:"code" validate:"required,max=20"`
	NewPassword     string `form:"new_password" validate:"required,min=8"`
	ConfirmPassword string `form:"confirm_password" validate:"required,eqfield=NewPassword"`
}

// LogoutResult destino tras cerrar sesión: URL externa del proveedor o "/".
type LogoutResult struct {
	RedirectURL string
}
