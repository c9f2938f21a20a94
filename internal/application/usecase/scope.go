package usecase

import (
	"github.com/jhoicas/busfleet-console/internal/domain"
	"github.com/jhoicas/busfleet-console/internal/domain/entity"
)

// Scope alcance del panel: global (ADMIN) o una sola empresa (ADMINISTRATIVO).
type Scope struct {
	Global    bool
	CompanyID string
	Me        *entity.User
}

// ResolveScope deriva el alcance del rol del usuario autenticado.
func ResolveScope(me *entity.User) (Scope, error) {
	if me == nil {
		return Scope{}, domain.ErrUnauthorized
	}
	switch me.Role {
	case entity.RoleAdmin:
		return Scope{Global: true, Me: me}, nil
	case entity.RoleAdministrativo:
		if me.CompanyID == "" {
			return Scope{}, domain.ErrForbidden
		}
		return Scope{CompanyID: me.CompanyID, Me: me}, nil
	}
	return Scope{}, domain.ErrForbidden
}

// Allows informa si el alcance puede ver o modificar datos de companyID.
func (s Scope) Allows(companyID string) bool {
	return s.Global || (companyID != "" && companyID == s.CompanyID)
}

// CanManageCompanies solo el alcance global crea, edita o elimina empresas.
func (s Scope) CanManageCompanies() bool { return s.Global }

// visibleUser en alcance de empresa se ocultan los usuarios ADMIN y ADMINISTRATIVO.
func (s Scope) visibleUser(u *entity.User) bool {
	if s.Global {
		return true
	}
	return u.CompanyID == s.CompanyID && !u.Role.Privileged()
}

// forceCompany en alcance de empresa ignora el company_id enviado.
func (s Scope) forceCompany(companyID string) string {
	if s.Global {
		return companyID
	}
	return s.CompanyID
}
