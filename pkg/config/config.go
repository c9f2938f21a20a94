package config

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Drivers soportados para el almacén de sesiones.
const (
	SessionDriverMemory   = "memory"
	SessionDriverRedis    = "redis"
	SessionDriverPostgres = "postgres"
)

// Config agrupa la configuración de la consola (lectura vía Viper desde env, archivo y flags).
type Config struct {
	App     AppConfig
	HTTP    HTTPConfig
	Backend BackendConfig
	Auth    AuthConfig
	Session SessionConfig
	DB      DBConfig
	Log     LogConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env         string // development, staging, production
	Name        string
	PublicURL   string // URL pública de la consola (enlaces absolutos, QR de hojas de ruta)
	DefaultLang string // es, en
}

// HTTPConfig configuración del servidor HTTP de la consola.
type HTTPConfig struct {
	Host string
	Port int
}

// Addr devuelve la dirección de escucha (host:port).
func (c HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// BackendConfig apunta al backend REST de la flota.
type BackendConfig struct {
	BaseURL string
	Timeout time.Duration
}

// AuthConfig parámetros del Auth Gate.
type AuthConfig struct {
	VerifyInterval time.Duration // periodo de re-verificación del token
}

// SessionConfig almacén de sesiones del navegador.
type SessionConfig struct {
	Driver     string // memory, redis, postgres
	CookieName string
	TTL        time.Duration
	RedisURL   string
}

// DBConfig configuración de PostgreSQL (solo con SESSION_DRIVER=postgres).
// Si DatabaseURL no está vacío, se usa como connection string completo.
type DBConfig struct {
	DatabaseURL string
	Host        string
	Port        int
	User        string
	Password    string
	DBName      string
	SSLMode     string
}

// LogConfig nivel del logger.
type LogConfig struct {
	Level string
}

// ConnectionString devuelve el DSN a usar: DATABASE_URL si está definido, si no el construido con DSN().
func (c DBConfig) ConnectionString() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}
	return c.DSN()
}

// DSN devuelve el connection string para PostgreSQL con URL encoding para caracteres especiales.
func (c DBConfig) DSN() string {
	u := &url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.User, c.Password),
		Host:     fmt.Sprintf("%s:%d", c.Host, c.Port),
		Path:     "/" + c.DBName,
		RawQuery: fmt.Sprintf("sslmode=%s", c.SSLMode),
	}
	return u.String()
}

// Flags define los flags de línea de comandos que sobreescriben el entorno.
func Flags(name string) *pflag.FlagSet {
	fs := pflag.NewFlagSet(name, pflag.ContinueOnError)
	fs.String("config", "", "ruta a un archivo de configuración (.env)")
	fs.String("addr", "", "dirección de escucha host:port (sobreescribe HTTP_HOST/HTTP_PORT)")
	fs.String("backend-url", "", "URL base del backend REST de la flota")
	return fs
}

// Load lee la configuración desde variables de entorno (y opcionalmente desde archivo).
// Las env vars tienen prioridad sobre el archivo; los flags sobre ambas.
func Load() (*Config, error) {
	return LoadWithFlags(nil)
}

// LoadWithFlags igual que Load pero aplicando un FlagSet ya parseado.
func LoadWithFlags(fs *pflag.FlagSet) (*Config, error) {
	v := viper.New()

	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.SetConfigName("config")
	v.AddConfigPath("./config")
	_ = v.ReadInConfig()

	if fs != nil {
		if path, _ := fs.GetString("config"); path != "" {
			v.SetConfigFile(path)
			if err := v.ReadInConfig(); err != nil {
				return nil, fmt.Errorf("leer archivo de configuración %s: %w", path, err)
			}
		}
	}

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))

	cfg := &Config{
		App: AppConfig{
			Env:         getString(v, "APP_ENV", "development"),
			Name:        getString(v, "APP_NAME", "busfleet-console"),
			PublicURL:   strings.TrimRight(getString(v, "PUBLIC_URL", "http://localhost:3000"), "/"),
			DefaultLang: getString(v, "DEFAULT_LANG", "es"),
		},
		HTTP: HTTPConfig{
			Host: getString(v, "HTTP_HOST", "0.0.0.0"),
			Port: getInt(v, "HTTP_PORT", 3000),
		},
		Backend: BackendConfig{
			BaseURL: strings.TrimRight(getString(v, "BACKEND_URL", "http://localhost:8000"), "/"),
			Timeout: time.Duration(getInt(v, "BACKEND_TIMEOUT_SECONDS", 15)) * time.Second,
		},
		Auth: AuthConfig{
			VerifyInterval: time.Duration(getInt(v, "AUTH_VERIFY_INTERVAL_SECONDS", 60)) * time.Second,
		},
		Session: SessionConfig{
			Driver:     strings.ToLower(getString(v, "SESSION_DRIVER", SessionDriverMemory)),
			CookieName: getString(v, "SESSION_COOKIE", "fleet_session"),
			TTL:        time.Duration(getInt(v, "SESSION_TTL_HOURS", 12)) * time.Hour,
			RedisURL:   getString(v, "REDIS_URL", "redis://localhost:6379/0"),
		},
		DB: DBConfig{
			DatabaseURL: getString(v, "DATABASE_URL", ""),
			Host:        getString(v, "DB_HOST", "localhost"),
			Port:        getInt(v, "DB_PORT", 5432),
			User:        getString(v, "DB_USER", "postgres"),
			Password:    getString(v, "DB_PASSWORD", ""),
			DBName:      getString(v, "DB_NAME", "busfleet_console"),
			SSLMode:     getString(v, "DB_SSLMODE", "disable"),
		},
		Log: LogConfig{
			Level: getString(v, "LOG_LEVEL", "info"),
		},
	}

	if fs != nil {
		if err := applyFlags(cfg, fs); err != nil {
			return nil, err
		}
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func applyFlags(cfg *Config, fs *pflag.FlagSet) error {
	if addr, _ := fs.GetString("addr"); addr != "" {
		host, port, ok := strings.Cut(addr, ":")
		if !ok {
			return fmt.Errorf("--addr inválido %q: se espera host:port", addr)
		}
		n, err := strconv.Atoi(port)
		if err != nil {
			return fmt.Errorf("--addr inválido %q: %w", addr, err)
		}
		cfg.HTTP.Host = host
		cfg.HTTP.Port = n
	}
	if backend, _ := fs.GetString("backend-url"); backend != "" {
		cfg.Backend.BaseURL = strings.TrimRight(backend, "/")
	}
	return nil
}

func (c *Config) validate() error {
	switch c.Session.Driver {
	case SessionDriverMemory, SessionDriverRedis, SessionDriverPostgres:
	default:
		return fmt.Errorf("SESSION_DRIVER desconocido: %q", c.Session.Driver)
	}
	if c.Auth.VerifyInterval <= 0 {
		return fmt.Errorf("AUTH_VERIFY_INTERVAL_SECONDS debe ser positivo")
	}
	if _, err := url.ParseRequestURI(c.Backend.BaseURL); err != nil {
		return fmt.Errorf("BACKEND_URL inválido: %w", err)
	}
	return nil
}

func getString(v *viper.Viper, key, def string) string {
	if v.IsSet(key) {
		return v.GetString(key)
	}
	return def
}

func getInt(v *viper.Viper, key string, def int) int {
	if v.IsSet(key) {
		switch v.Get(key).(type) {
		case int:
			return v.GetInt(key)
		case string:
			n, err := strconv.Atoi(v.GetString(key))
			if err != nil {
				return def
			}
			return n
		default:
			return v.GetInt(key)
		}
	}
	return def
}
