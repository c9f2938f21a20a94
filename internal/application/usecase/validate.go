package usecase

import (
	"errors"
	"reflect"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/jhoicas/busfleet-console/internal/domain"
)

var validate = validator.New()

func init() {
	// Los errores se reportan con el nombre del campo del formulario.
	validate.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("form"), ",")
		if name == "" || name == "-" {
			return f.Name
		}
		return name
	})
}

// ValidationError errores por campo del formulario. Los mensajes son claves del catálogo i18n.
type ValidationError struct {
	Fields map[string]string
	Cause  error // error de dominio más específico, opcional
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+e.Fields[k])
	}
	return "validación: " + strings.Join(parts, ", ")
}

func (e *ValidationError) Unwrap() []error {
	if e.Cause != nil {
		return []error{domain.ErrInvalidInput, e.Cause}
	}
	return []error{domain.ErrInvalidInput}
}

// fieldError construye un ValidationError de un solo campo.
func fieldError(field, msg string) *ValidationError {
	return &ValidationError{Fields: map[string]string{field: msg}}
}

// validateForm corre las etiquetas validate de in.
func validateForm(in any) error {
	err := validate.Struct(in)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	fields := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		name := fe.Field()
		if i := strings.IndexByte(name, '['); i > 0 {
			name = name[:i]
		}
		if _, seen := fields[name]; !seen {
			fields[name] = tagMessage(fe.Tag())
		}
	}
	return &ValidationError{Fields: fields}
}

func tagMessage(tag string) string {
	switch tag {
	case "required":
		return "Este campo es obligatorio"
	case "email":
		return "Correo electrónico inválido"
	case "oneof":
		return "Valor no permitido"
	case "min":
		return "Valor por debajo del mínimo"
	case "max":
		return "Valor demasiado largo o grande"
	case "datetime":
		return "Fecha u hora inválida"
	case "eqfield":
		return "Las contraseñas no coinciden"
	}
	return "Valor inválido"
}

// Validate expone la validación de formularios a otros paquetes de aplicación.
func Validate(in any) error { return validateForm(in) }
