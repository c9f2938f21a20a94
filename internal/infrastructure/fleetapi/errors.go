package fleetapi

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/jhoicas/busfleet-console/internal/domain"
)

// APIError respuesta no exitosa del backend de flota.
// Detail es el texto de `detail` del cuerpo de error, vacío si el backend no lo envió.
type APIError struct {
	Status int
	Detail string
}

func (e *APIError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("backend HTTP %d: %s", e.Status, e.Detail)
	}
	return fmt.Sprintf("backend HTTP %d", e.Status)
}

// Unwrap permite errors.Is contra los errores de dominio según el código HTTP.
func (e *APIError) Unwrap() error {
	switch {
	case e.Status == http.StatusUnauthorized:
		return domain.ErrUnauthorized
	case e.Status == http.StatusForbidden:
		return domain.ErrForbidden
	case e.Status == http.StatusNotFound:
		return domain.ErrNotFound
	case e.Status == http.StatusConflict:
		return domain.ErrConflict
	case e.Status == http.StatusBadRequest, e.Status == http.StatusUnprocessableEntity:
		return domain.ErrInvalidInput
	case e.Status >= 500:
		return domain.ErrBackendUnavailable
	}
	return nil
}

// errorBody sobre `{"detail": ...}`. detail puede ser texto o la lista de errores de validación.
type errorBody struct {
	Detail json.RawMessage `json:"detail"`
}

type validationItem struct {
	Loc []any  `json:"loc"`
	Msg string `json:"msg"`
}

func newAPIError(status int, body []byte) *APIError {
	return &APIError{Status: status, Detail: parseDetail(body)}
}

func parseDetail(body []byte) string {
	var eb errorBody
	if err := json.Unmarshal(body, &eb); err != nil || len(eb.Detail) == 0 {
		return ""
	}
	var s string
	if err := json.Unmarshal(eb.Detail, &s); err == nil {
		return s
	}
	var items []validationItem
	if err := json.Unmarshal(eb.Detail, &items); err == nil {
		msgs := make([]string, 0, len(items))
		for _, it := range items {
			if it.Msg == "" {
				continue
			}
			if field := lastLoc(it.Loc); field != "" {
				msgs = append(msgs, field+": "+it.Msg)
			} else {
				msgs = append(msgs, it.Msg)
			}
		}
		return strings.Join(msgs, "; ")
	}
	return strings.Trim(string(eb.Detail), `"`)
}

func lastLoc(loc []any) string {
	if len(loc) == 0 {
		return ""
	}
	if s, ok := loc[len(loc)-1].(string); ok {
		return s
	}
	return ""
}
