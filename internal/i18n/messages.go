package i18n

// english traducciones al inglés, por clave en español.
var english = map[string]string{
	// navegación y etiquetas
	"Consola de flota":        "Fleet console",
	"Empresas":                "Companies",
	"Usuarios":                "Users",
	"Vehículos":               "Vehicles",
	"Rutas":                   "Routes",
	"Mi perfil":               "My profile",
	"Cerrar sesión":           "Sign out",
	"Nueva empresa":           "New company",
	"Editar empresa":          "Edit company",
	"Nuevo usuario":           "New user",
	"Editar usuario":          "Edit user",
	"Nuevo vehículo":          "New vehicle",
	"Editar vehículo":         "Edit vehicle",
	"Nueva ruta":              "New route",
	"Editar ruta":             "Edit route",
	"Nombre":                  "Name",
	"NIT":                     "Tax ID",
	"Correo electrónico":      "Email",
	"Teléfono":                "Phone",
	"Dirección":               "Address",
	"Estado":                  "Status",
	"Creada":                  "Created",
	"Acciones":                "Actions",
	"Ver":                     "View",
	"Editar":                  "Edit",
	"Eliminar":                "Delete",
	"Guardar":                 "Save",
	"Cancelar":                "Cancel",
	"Volver":                  "Back",
	"Identificación":          "Identification",
	"Rol":                     "Role",
	"Empresa":                 "Company",
	"Marca":                   "Brand",
	"Modelo":                  "Model",
	"Año":                     "Year",
	"Tipo":                    "Type",
	"Placa":                   "Plate",
	"Número interno":          "Fleet number",
	"VIN":                     "VIN",
	"Origen":                  "Origin",
	"Destino":                 "Destination",
	"Salida":                  "Departure",
	"Duración estimada":       "Estimated duration",
	"Llegada estimada":        "Estimated arrival",
	"Repetición":              "Repetition",
	"Cada":                    "Every",
	"Periodo":                 "Period",
	"Sin repetición":          "No repetition",
	"Vehículo":                "Vehicle",
	"Sin vehículo":            "No vehicle",
	"actual":                  "current",
	"Paradas":                 "Stops",
	"Lugar":                   "Place",
	"Minutos de parada":       "Stop minutes",
	"Agregar parada":          "Add stop",
	"Fecha de salida":         "Departure date",
	"Hora de salida":          "Departure time",
	"Días":                    "Days",
	"Horas":                   "Hours",
	"Minutos":                 "Minutes",
	"Hoja de ruta (PDF)":      "Route sheet (PDF)",
	"Sin paradas intermedias": "No intermediate stops",
	"No hay registros":        "No records",
	"Cambiar estado":          "Change status",
	"Confirmar eliminación":   "Confirm deletion",
	"Sí, eliminar":            "Yes, delete",
	"Sin acceso":              "No access",
	"¿Eliminar este registro? Esta acción no se puede deshacer.": "Delete this record? This action cannot be undone.",
	"Su rol no tiene acceso a la consola de administración.":     "Your role has no access to the admin console.",
	"No se pudo completar la operación":                           "The operation could not be completed",

	// login y contraseña
	"Iniciar sesión": "Sign in",
	"Iniciar sesión con el proveedor de identidad": "Sign in with the identity provider",
	"o con usuario y contraseña":                   "or with username and password",
	"Usuario":                                      "Username",
	"Contraseña":                                   "Password",
	"¿Olvidó su contraseña?":                       "Forgot your password?",
	"Restablecer contraseña":                       "Reset password",
	"Enviar código":                                "Send code",
	"Le enviamos un código a %s":                   "We sent a code to %s",
	"Código de verificación":                       "Verification code",
	"Nueva contraseña":                             "New password",
	"Confirmar contraseña":                         "Confirm password",
	"Sesión cerrada":                               "Signed out",
	"Confirmo el cambio de mi correo electrónico":  "I confirm my email change",

	// avisos tras redirección
	"Registro creado":                        "Record created",
	"Registro actualizado":                   "Record updated",
	"Registro eliminado":                     "Record deleted",
	"Estado actualizado":                     "Status updated",
	"Perfil actualizado":                     "Profile updated",
	"Contraseña actualizada. Inicie sesión.": "Password updated. Please sign in.",

	// errores
	"Revise los campos marcados":              "Check the highlighted fields",
	"Debe confirmar la operación":             "You must confirm the operation",
	"No tiene permiso para esta operación":    "You are not allowed to perform this operation",
	"Registro no encontrado":                  "Record not found",
	"Formulario inválido":                     "Invalid form",
	"Usuario o contraseña incorrectos":        "Wrong username or password",
	"Error al iniciar sesión":                 "Sign in failed",
	"Error al enviar el código":               "Could not send the code",
	"Error al restablecer la contraseña":      "Could not reset the password",
	"Error al cargar los datos":               "Could not load the data",
	"Error al cargar las empresas":            "Could not load the companies",
	"Error al cargar la empresa":              "Could not load the company",
	"Error al crear la empresa":               "Could not create the company",
	"Error al actualizar la empresa":          "Could not update the company",
	"Error al eliminar la empresa":            "Could not delete the company",
	"Error al cargar los usuarios":            "Could not load the users",
	"Error al cargar el usuario":              "Could not load the user",
	"Error al crear el usuario":               "Could not create the user",
	"Error al actualizar el usuario":          "Could not update the user",
	"Error al eliminar el usuario":            "Could not delete the user",
	"Error al cargar los vehículos":           "Could not load the vehicles",
	"Error al cargar el vehículo":             "Could not load the vehicle",
	"Error al crear el vehículo":              "Could not create the vehicle",
	"Error al actualizar el vehículo":         "Could not update the vehicle",
	"Error al eliminar el vehículo":           "Could not delete the vehicle",
	"Error al cambiar el estado del vehículo": "Could not change the vehicle status",
	"Error al cargar las rutas":               "Could not load the routes",
	"Error al cargar la ruta":                 "Could not load the route",
	"Error al crear la ruta":                  "Could not create the route",
	"Error al actualizar la ruta":             "Could not update the route",
	"Error al eliminar la ruta":               "Could not delete the route",
	"Error al cambiar el estado de la ruta":   "Could not change the route status",
	"Error al actualizar el perfil":           "Could not update the profile",
	"Error al generar la hoja de ruta":        "Could not generate the route sheet",

	// validación
	"Este campo es obligatorio":               "This field is required",
	"Correo electrónico inválido":             "Invalid email",
	"Valor no permitido":                      "Value not allowed",
	"Valor por debajo del mínimo":             "Value below the minimum",
	"Valor demasiado largo o grande":          "Value too long or too large",
	"Fecha u hora inválida":                   "Invalid date or time",
	"Las contraseñas no coinciden":            "Passwords do not match",
	"Valor inválido":                          "Invalid value",
	"Rol no permitido para su empresa":        "Role not allowed for your company",
	"Indique cada cuántos periodos se repite": "Enter how many periods between repetitions",
	"Cada parada necesita un lugar":           "Every stop needs a place",
	"El vehículo no pertenece a la empresa o no está activo": "The vehicle does not belong to the company or is not active",
}
