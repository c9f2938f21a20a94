package fleetapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/jhoicas/busfleet-console/internal/domain"
	"github.com/jhoicas/busfleet-console/pkg/config"
	"github.com/jhoicas/busfleet-console/pkg/logger"
)

const maxBodyBytes = 1 << 20

// Client cliente HTTP del backend REST de la flota. Es seguro para uso concurrente.
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        *logger.Logger
}

// New construye el cliente con la URL base y el timeout de la configuración.
func New(cfg config.BackendConfig, log *logger.Logger) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	if log == nil {
		log = logger.Nop()
	}
	return &Client{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
		log:        log.Named("fleetapi"),
	}
}

// BaseURL URL base del backend.
func (c *Client) BaseURL() string { return c.baseURL }

// doJSON envía in como JSON (si no es nil) y decodifica la respuesta en out (si no es nil).
func (c *Client) doJSON(ctx context.Context, method, path, token string, in, out any) error {
	var body io.Reader
	if in != nil {
		raw, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("fleetapi: serializar request: %w", err)
		}
		body = bytes.NewReader(raw)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("fleetapi: crear request: %w", err)
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return c.send(req, token, out)
}

// doForm envía un cuerpo application/x-www-form-urlencoded.
func (c *Client) doForm(ctx context.Context, path string, form url.Values, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, strings.NewReader(form.Encode()))
	if err != nil {
		return fmt.Errorf("fleetapi: crear request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return c.send(req, "", out)
}

func (c *Client) send(req *http.Request, token string, out any) error {
	req.Header.Set("Accept", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.Warn().Err(err).Str("method", req.Method).Str("path", req.URL.Path).Msg("llamada al backend fallida")
		if ctxErr := req.Context().Err(); ctxErr != nil {
			return fmt.Errorf("fleetapi: timeout o cancelación: %w", ctxErr)
		}
		return fmt.Errorf("fleetapi: %w: %v", domain.ErrBackendUnavailable, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return fmt.Errorf("fleetapi: leer respuesta: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := newAPIError(resp.StatusCode, raw)
		c.log.Warn().
			Str("method", req.Method).
			Str("path", req.URL.Path).
			Int("status", resp.StatusCode).
			Str("detail", apiErr.Detail).
			Dur("latency", time.Since(start)).
			Msg("backend rechazó la petición")
		return apiErr
	}

	c.log.Debug().
		Str("method", req.Method).
		Str("path", req.URL.Path).
		Int("status", resp.StatusCode).
		Dur("latency", time.Since(start)).
		Msg("backend")

	if out == nil || len(bytes.TrimSpace(raw)) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("fleetapi: deserializar respuesta de %s: %w", req.URL.Path, err)
	}
	return nil
}

func escape(id string) string { return url.PathEscape(id) }
