package usecase

import (
	"context"
	"strings"

	"github.com/jhoicas/busfleet-console/internal/application/dto"
	"github.com/jhoicas/busfleet-console/internal/domain"
	"github.com/jhoicas/busfleet-console/internal/domain/entity"
	"github.com/jhoicas/busfleet-console/internal/domain/repository"
)

// UserUseCase aplica las reglas del panel para usuarios.
type UserUseCase struct {
	repo repository.UserRepository
}

// NewUserUseCase construye el caso de uso con el puerto de acceso.
func NewUserUseCase(repo repository.UserRepository) *UserUseCase {
	return &UserUseCase{repo: repo}
}

// Me usuario dueño del token.
func (uc *UserUseCase) Me(ctx context.Context, token string) (*entity.User, error) {
	return uc.repo.Me(ctx, token)
}

// List usuarios visibles en el alcance. En alcance de empresa se ocultan ADMIN y ADMINISTRATIVO.
func (uc *UserUseCase) List(ctx context.Context, token string, scope Scope) ([]*entity.User, error) {
	var (
		list []*entity.User
		err  error
	)
	if scope.Global {
		list, err = uc.repo.List(ctx, token)
	} else {
		list, err = uc.repo.ListByCompany(ctx, token, scope.CompanyID)
	}
	if err != nil {
		return nil, err
	}
	out := make([]*entity.User, 0, len(list))
	for _, u := range list {
		if scope.visibleUser(u) {
			out = append(out, u)
		}
	}
	return out, nil
}

// GetByID obtiene un usuario visible en el alcance.
func (uc *UserUseCase) GetByID(ctx context.Context, token string, scope Scope, id string) (*dto.UserResponse, error) {
	u, err := uc.get(ctx, token, scope, id)
	if err != nil {
		return nil, err
	}
	return entityToUserResponse(u), nil
}

// Create crea un usuario. En alcance de empresa se fuerza company_id y no se permiten roles privilegiados.
func (uc *UserUseCase) Create(ctx context.Context, token string, scope Scope, in dto.UserForm) (*dto.UserResponse, error) {
	in.CompanyID = scope.forceCompany(in.CompanyID)
	if err := validateForm(in); err != nil {
		return nil, err
	}
	user := formToUser(in)
	if !scope.visibleUser(user) {
		return nil, fieldError("role", "Rol no permitido para su empresa")
	}
	created, err := uc.repo.Create(ctx, token, user)
	if err != nil {
		return nil, err
	}
	return entityToUserResponse(created), nil
}

// Update reemplaza los datos del usuario id.
func (uc *UserUseCase) Update(ctx context.Context, token string, scope Scope, id string, in dto.UserForm) (*dto.UserResponse, error) {
	in.CompanyID = scope.forceCompany(in.CompanyID)
	if err := validateForm(in); err != nil {
		return nil, err
	}
	if _, err := uc.get(ctx, token, scope, id); err != nil {
		return nil, err
	}
	user := formToUser(in)
	user.ID = id
	if !scope.visibleUser(user) {
		return nil, fieldError("role", "Rol no permitido para su empresa")
	}
	updated, err := uc.repo.Update(ctx, token, user)
	if err != nil {
		return nil, err
	}
	return entityToUserResponse(updated), nil
}

// Delete elimina el usuario id tras confirmación explícita.
func (uc *UserUseCase) Delete(ctx context.Context, token string, scope Scope, id string, confirmed bool) error {
	if !confirmed {
		return domain.ErrConfirmationRequired
	}
	if _, err := uc.get(ctx, token, scope, id); err != nil {
		return err
	}
	return uc.repo.Delete(ctx, token, id)
}

// UpdateProfile edita el propio perfil. Cambiar el correo requiere confirmación explícita;
// si el backend responde con warning la sesión debe cerrarse.
func (uc *UserUseCase) UpdateProfile(ctx context.Context, token string, me *entity.User, in dto.ProfileForm) (*dto.ProfileResult, error) {
	if err := validateForm(in); err != nil {
		return nil, err
	}
	email := strings.TrimSpace(in.Email)
	if !strings.EqualFold(email, me.Email) && !in.ConfirmEmailChange {
		return nil, domain.ErrConfirmationRequired
	}
	user := *me
	user.Name = strings.TrimSpace(in.Name)
	user.Email = email
	user.Identification = strings.TrimSpace(in.Identification)

	res, err := uc.repo.UpdateProfile(ctx, token, &user)
	if err != nil {
		return nil, err
	}
	out := &dto.ProfileResult{Warning: res.Warning, ForceLogout: res.Warning != ""}
	if res.User != nil {
		out.User = *entityToUserResponse(res.User)
	}
	return out, nil
}

func (uc *UserUseCase) get(ctx context.Context, token string, scope Scope, id string) (*entity.User, error) {
	u, err := uc.repo.GetByID(ctx, token, id)
	if err != nil {
		return nil, err
	}
	if !scope.visibleUser(u) {
		return nil, domain.ErrForbidden
	}
	return u, nil
}

func formToUser(in dto.UserForm) *entity.User {
	status := in.Status
	if status == "" {
		status = "active"
	}
	return &entity.User{
		Name:           strings.TrimSpace(in.Name),
		Email:          strings.TrimSpace(in.Email),
		Identification: strings.TrimSpace(in.Identification),
		Role:           entity.Role(in.Role),
		Status:         status,
		CompanyID:      in.CompanyID,
	}
}
