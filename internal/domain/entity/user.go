package entity

// Role rol de un usuario del sistema de flota.
type Role string

// Roles válidos para User.
const (
	RoleAdmin          Role = "ADMIN"
	RoleOperador       Role = "OPERADOR"
	RoleConductor      Role = "CONDUCTOR"
	RolePasajero       Role = "PASAJERO"
	RoleTecnico        Role = "TECNICO"
	RoleJefeTaller     Role = "JEFE_TALLER"
	RoleAdministrativo Role = "ADMINISTRATIVO"
)

// Roles en el orden en que se ofrecen en los formularios.
var Roles = []Role{
	RoleAdmin, RoleOperador, RoleConductor, RolePasajero,
	RoleTecnico, RoleJefeTaller, RoleAdministrativo,
}

// Valid informa si r es uno de los roles conocidos.
func (r Role) Valid() bool {
	for _, known := range Roles {
		if r == known {
			return true
		}
	}
	return false
}

// Privileged informa si el rol administra la consola (no visible en vistas por empresa).
func (r Role) Privileged() bool {
	return r == RoleAdmin || r == RoleAdministrativo
}

// User representa un usuario del sistema (pertenece a una Company).
type User struct {
	ID             string
	Name           string
	Email          string
	Identification string
	Role           Role
	Status         string // active, inactive
	CompanyID      string
}

// ProfileUpdate resultado de editar el propio perfil. Warning no vacío indica
// que el backend exige volver a iniciar sesión (cambio de correo).
type ProfileUpdate struct {
	User    *User
	Warning string
}
