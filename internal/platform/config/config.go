package config

import (
	"fmt"
	"strings"
	"time"
	_ "time/tzdata"

	"github.com/kelseyhightower/envconfig"
)

// Config se arma desde env con prefijo MEDIBUDDY_ (ej: MEDIBUDDY_PORT).
// Se pasa explícitamente a cada adapter; no hay clientes globales.
type Config struct {
	Port string `envconfig:"PORT" default:"8080"`

	LogLevel  string `envconfig:"LOG_LEVEL" default:"info"`
	LogFormat string `envconfig:"LOG_FORMAT" default:"text"`
	AppName   string `envconfig:"APP_NAME" default:"medication-adherence"`

	// Opcional: si viene, usa Postgres. Si no, in-memory.
	DBDSN string `envconfig:"DB_DSN"`

	// Zona horaria para resolver fechas del timeline.
	Timezone string `envconfig:"TIMEZONE" default:"UTC"`

	GeminiAPIKey  string `envconfig:"GEMINI_API_KEY"`
	GeminiModel   string `envconfig:"GEMINI_MODEL" default:"gemini-2.5-flash"`
	GeminiBaseURL string `envconfig:"GEMINI_BASE_URL" default:"https://generativelanguage.googleapis.com"`

	AssemblyAIAPIKey  string `envconfig:"ASSEMBLYAI_API_KEY"`
	AssemblyAIBaseURL string `envconfig:"ASSEMBLYAI_BASE_URL" default:"https://api.assemblyai.com"`

	ProviderTimeout    time.Duration `envconfig:"PROVIDER_TIMEOUT" default:"60s"`
	ProviderMaxRetries int           `envconfig:"PROVIDER_MAX_RETRIES" default:"3"`

	MaxUploadBytes int64 `envconfig:"MAX_UPLOAD_BYTES" default:"10485760"`

	// Tope de logs que lee el reporte por paciente.
	ReportLogLimit int `envconfig:"REPORT_LOG_LIMIT" default:"10000"`
}

const envPrefix = "MEDIBUDDY"

// Load procesa env y valida.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(envPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("config: process env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	if strings.TrimSpace(c.Port) == "" {
		return fmt.Errorf("config: PORT is required")
	}
	if _, err := time.LoadLocation(c.Timezone); err != nil {
		return fmt.Errorf("config: invalid TIMEZONE %q: %w", c.Timezone, err)
	}
	if c.ProviderMaxRetries < 0 {
		return fmt.Errorf("config: PROVIDER_MAX_RETRIES must be >= 0")
	}
	if c.MaxUploadBytes <= 0 {
		return fmt.Errorf("config: MAX_UPLOAD_BYTES must be > 0")
	}
	if c.ReportLogLimit <= 0 {
		return fmt.Errorf("config: REPORT_LOG_LIMIT must be > 0")
	}
	return nil
}

// Location devuelve la zona horaria ya validada (UTC si algo falla).
func (c *Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

func (c *Config) HTTPAddr() string {
	return ":" + strings.TrimPrefix(strings.TrimSpace(c.Port), ":")
}

// GeminiEnabled indica si hay proveedor LLM configurado.
func (c *Config) GeminiEnabled() bool {
	return strings.TrimSpace(c.GeminiAPIKey) != ""
}

func (c *Config) AssemblyAIEnabled() bool {
	return strings.TrimSpace(c.AssemblyAIAPIKey) != ""
}
