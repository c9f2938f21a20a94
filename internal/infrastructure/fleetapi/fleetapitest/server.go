// Package fleetapitest levanta un backend de flota en memoria para tests.
package fleetapitest

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
)

// Call petición registrada por el servidor falso.
type Call struct {
	Method string
	Path   string
	Query  string
	Body   string
}

// Server backend falso: guarda entidades como mapas JSON y registra cada llamada.
type Server struct {
	*httptest.Server

	mu        sync.Mutex
	tokens    map[string]string // token -> id del usuario dueño
	password  map[string]string // email -> password
	resetCode string
	calls     []Call
	seq       int

	companies map[string]map[string]any
	users     map[string]map[string]any
	vehicles  map[string]map[string]any
	routes    map[string]map[string]any
	order     map[string][]string

	// LogoutURL valor devuelto en POST /logout.
	LogoutURL string
	// Fail fuerza un status para method+" "+path (p. ej. "POST /companies/").
	Fail map[string]FailResponse
}

// FailResponse respuesta forzada.
type FailResponse struct {
	Status int
	Detail string
}

// New arranca el servidor. Se cierra con t.Cleanup(srv.Close).
func New() *Server {
	s := &Server{
		tokens:    map[string]string{},
		password:  map[string]string{},
		companies: map[string]map[string]any{},
		users:     map[string]map[string]any{},
		vehicles:  map[string]map[string]any{},
		routes:    map[string]map[string]any{},
		order:     map[string][]string{},
		Fail:      map[string]FailResponse{},
		resetCode: "123456",
	}
	s.Server = httptest.NewServer(s.handler())
	return s
}

// AddToken registra un token válido para userID.
func (s *Server) AddToken(token, userID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tokens[token] = userID
}

// RevokeToken invalida un token.
func (s *Server) RevokeToken(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.tokens, token)
}

// SetPassword credenciales para POST /login.
func (s *Server) SetPassword(email, password string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.password[email] = password
}

// SetResetCode código esperado por /reset-password.
func (s *Server) SetResetCode(code string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.resetCode = code
}

// Seed inserta una entidad (kind: companies, users, vehicles, routes) y devuelve su id.
func (s *Server) Seed(kind string, obj map[string]any) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.insert(kind, obj)
}

// Get copia de una entidad almacenada.
func (s *Server) Get(kind, id string) map[string]any {
	s.mu.Lock()
	defer s.mu.Unlock()
	obj, ok := s.store(kind)[id]
	if !ok {
		return nil
	}
	return clone(obj)
}

// Calls copia de las llamadas registradas.
func (s *Server) Calls() []Call {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Call(nil), s.calls...)
}

// CountCalls cuenta llamadas con method y path exactos.
func (s *Server) CountCalls(method, path string) int {
	n := 0
	for _, c := range s.Calls() {
		if c.Method == method && c.Path == path {
			n++
		}
	}
	return n
}

// ResetCalls limpia el registro de llamadas.
func (s *Server) ResetCalls() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls = nil
}

func (s *Server) store(kind string) map[string]map[string]any {
	switch kind {
	case "companies":
		return s.companies
	case "users":
		return s.users
	case "vehicles":
		return s.vehicles
	case "routes":
		return s.routes
	}
	panic("fleetapitest: tipo desconocido " + kind)
}

func (s *Server) insert(kind string, obj map[string]any) string {
	id, _ := obj["id"].(string)
	if id == "" {
		s.seq++
		id = fmt.Sprintf("%s-%04d", strings.TrimSuffix(kind, "s"), s.seq)
		obj["id"] = id
	}
	if kind == "companies" {
		if _, ok := obj["created_at"]; !ok {
			obj["created_at"] = "2026-01-15T09:30:00.123456"
		}
		if _, ok := obj["status"]; !ok {
			obj["status"] = "active"
		}
	}
	if _, exists := s.store(kind)[id]; !exists {
		s.order[kind] = append(s.order[kind], id)
	}
	s.store(kind)[id] = obj
	return id
}

func (s *Server) list(kind, companyID string) []map[string]any {
	out := []map[string]any{}
	for _, id := range s.order[kind] {
		obj, ok := s.store(kind)[id]
		if !ok {
			continue
		}
		if companyID != "" && obj["company_id"] != companyID {
			continue
		}
		out = append(out, clone(obj))
	}
	return out
}

func (s *Server) handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("POST /login", s.handleLogin)
	mux.HandleFunc("POST /logout", s.authed(func(w http.ResponseWriter, r *http.Request, _ string) {
		writeJSON(w, http.StatusOK, map[string]any{"logoutUrl": s.LogoutURL})
	}))
	mux.HandleFunc("POST /forgot-password", s.handleForgot)
	mux.HandleFunc("POST /reset-password", s.handleReset)

	mux.HandleFunc("GET /users/me", s.authed(func(w http.ResponseWriter, r *http.Request, uid string) {
		s.writeOne(w, "users", uid)
	}))
	mux.HandleFunc("PUT /users/profile", s.authed(s.handleProfile))

	for _, kind := range []string{"companies", "users", "vehicles", "routes"} {
		mux.HandleFunc("GET /"+kind+"/", s.authed(func(w http.ResponseWriter, r *http.Request, _ string) {
			writeJSON(w, http.StatusOK, s.list(kind, ""))
		}))
		mux.HandleFunc("POST /"+kind+"/", s.authed(func(w http.ResponseWriter, r *http.Request, _ string) {
			obj, ok := decodeObj(w, r)
			if !ok {
				return
			}
			delete(obj, "id")
			id := s.insert(kind, obj)
			writeJSON(w, http.StatusOK, clone(s.store(kind)[id]))
		}))
		mux.HandleFunc("GET /"+kind+"/{id}", s.authed(func(w http.ResponseWriter, r *http.Request, _ string) {
			s.writeOne(w, kind, r.PathValue("id"))
		}))
		mux.HandleFunc("PUT /"+kind+"/{id}", s.authed(func(w http.ResponseWriter, r *http.Request, _ string) {
			s.update(w, r, kind, r.PathValue("id"), false)
		}))
		mux.HandleFunc("DELETE /"+kind+"/{id}", s.authed(func(w http.ResponseWriter, r *http.Request, _ string) {
			id := r.PathValue("id")
			if _, ok := s.store(kind)[id]; !ok {
				writeDetail(w, http.StatusNotFound, "No encontrado")
				return
			}
			delete(s.store(kind), id)
			writeJSON(w, http.StatusOK, map[string]any{"message": "eliminado"})
		}))
		if kind != "companies" {
			mux.HandleFunc("GET /"+kind+"/company/{id}", s.authed(func(w http.ResponseWriter, r *http.Request, _ string) {
				writeJSON(w, http.StatusOK, s.list(kind, r.PathValue("id")))
			}))
		}
	}
	for _, kind := range []string{"vehicles", "routes"} {
		mux.HandleFunc("PUT /"+kind+"/{id}/status", s.authed(func(w http.ResponseWriter, r *http.Request, _ string) {
			s.update(w, r, kind, r.PathValue("id"), true)
		}))
	}
	return mux
}

// authed registra la llamada, aplica fallos forzados y valida el bearer token.
func (s *Server) authed(h func(http.ResponseWriter, *http.Request, string)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if s.record(w, r) {
			return
		}
		token := strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer ")
		s.mu.Lock()
		defer s.mu.Unlock()
		uid, ok := s.tokens[token]
		if !ok {
			writeDetail(w, http.StatusUnauthorized, "Could not validate credentials")
			return
		}
		h(w, r, uid)
	}
}

// record guarda la llamada; devuelve true si respondió con un fallo forzado.
func (s *Server) record(w http.ResponseWriter, r *http.Request) bool {
	body, _ := io.ReadAll(r.Body)
	r.Body = io.NopCloser(strings.NewReader(string(body)))
	s.mu.Lock()
	s.calls = append(s.calls, Call{Method: r.Method, Path: r.URL.Path, Query: r.URL.RawQuery, Body: string(body)})
	fail, forced := s.Fail[r.Method+" "+r.URL.Path]
	s.mu.Unlock()
	if forced {
		writeDetail(w, fail.Status, fail.Detail)
	}
	return forced
}

func (s *Server) writeOne(w http.ResponseWriter, kind, id string) {
	obj, ok := s.store(kind)[id]
	if !ok {
		writeDetail(w, http.StatusNotFound, "No encontrado")
		return
	}
	writeJSON(w, http.StatusOK, clone(obj))
}

func (s *Server) update(w http.ResponseWriter, r *http.Request, kind, id string, statusOnly bool) {
	obj, ok := s.store(kind)[id]
	if !ok {
		writeDetail(w, http.StatusNotFound, "No encontrado")
		return
	}
	in, ok := decodeObj(w, r)
	if !ok {
		return
	}
	if statusOnly {
		if len(in) != 1 || in["status"] == nil {
			writeDetail(w, http.StatusUnprocessableEntity, "solo se acepta status")
			return
		}
	}
	for k, v := range in {
		if k == "id" {
			continue
		}
		obj[k] = v
	}
	writeJSON(w, http.StatusOK, clone(obj))
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	if s.record(w, r) {
		return
	}
	if err := r.ParseForm(); err != nil {
		writeDetail(w, http.StatusBadRequest, "form inválido")
		return
	}
	user, pass := r.PostForm.Get("username"), r.PostForm.Get("password")
	s.mu.Lock()
	defer s.mu.Unlock()
	if want, ok := s.password[user]; !ok || want != pass {
		writeDetail(w, http.StatusUnauthorized, "Invalid credentials")
		return
	}
	for _, obj := range s.users {
		if obj["email"] == user {
			token := "tok-" + obj["id"].(string)
			s.tokens[token] = obj["id"].(string)
			writeJSON(w, http.StatusOK, map[string]any{"access_token": token, "token_type": "bearer"})
			return
		}
	}
	writeDetail(w, http.StatusNotFound, "Usuario no encontrado en el sistema")
}

func (s *Server) handleForgot(w http.ResponseWriter, r *http.Request) {
	if s.record(w, r) {
		return
	}
	email := r.URL.Query().Get("email")
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.hasEmail(email) {
		writeDetail(w, http.StatusNotFound, "Usuario no encontrado")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"message": "Se ha enviado un código de recuperación a su correo electrónico"})
}

func (s *Server) handleReset(w http.ResponseWriter, r *http.Request) {
	if s.record(w, r) {
		return
	}
	var in struct {
		Email       string `json:"email"`
		Code        string `json:"code"`
		NewPassword string `json:"new_password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeDetail(w, http.StatusUnprocessableEntity, "cuerpo inválido")
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.hasEmail(in.Email) {
		writeDetail(w, http.StatusNotFound, "Usuario no encontrado")
		return
	}
	if in.Code != s.resetCode {
		writeDetail(w, http.StatusBadRequest, "Código de verificación inválido")
		return
	}
	s.password[in.Email] = in.NewPassword
	writeJSON(w, http.StatusOK, map[string]any{"message": "Contraseña actualizada exitosamente"})
}

func (s *Server) handleProfile(w http.ResponseWriter, r *http.Request, uid string) {
	obj, ok := s.users[uid]
	if !ok {
		writeDetail(w, http.StatusNotFound, "Usuario no encontrado")
		return
	}
	in, ok := decodeObj(w, r)
	if !ok {
		return
	}
	emailChanged := in["email"] != nil && in["email"] != obj["email"]
	for _, k := range []string{"name", "email", "identification"} {
		if v, ok := in[k]; ok {
			obj[k] = v
		}
	}
	if emailChanged {
		writeJSON(w, http.StatusOK, map[string]any{
			"user":    clone(obj),
			"warning": "Su correo electrónico ha sido actualizado. Deberá iniciar sesión con el nuevo correo en su próximo acceso.",
		})
		return
	}
	writeJSON(w, http.StatusOK, clone(obj))
}

func (s *Server) hasEmail(email string) bool {
	for _, obj := range s.users {
		if obj["email"] == email {
			return true
		}
	}
	return false
}

func decodeObj(w http.ResponseWriter, r *http.Request) (map[string]any, bool) {
	var obj map[string]any
	if err := json.NewDecoder(r.Body).Decode(&obj); err != nil {
		writeDetail(w, http.StatusUnprocessableEntity, "cuerpo inválido")
		return nil, false
	}
	return obj, true
}

func clone(obj map[string]any) map[string]any {
	out := make(map[string]any, len(obj))
	for k, v := range obj {
		out[k] = v
	}
	return out
}

func writeDetail(w http.ResponseWriter, status int, detail string) {
	writeJSON(w, status, map[string]any{"detail": detail})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
