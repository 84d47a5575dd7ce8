package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const defaultTimeout = 120 * time.Second

// Config holds all application configuration.
type Config struct {
	Server     ServerConfig
	Summarizer SummarizerConfig
	LLM        LLMConfig
	CORS       CORSConfig
	DB         DBConfig
	Audit      AuditConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port         string        `mapstructure:"port"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	Environment  string        `mapstructure:"environment"`
}

// IsProduction reports whether the server runs in the production environment.
func (s *ServerConfig) IsProduction() bool {
	return s.Environment == "production"
}

// SummarizerConfig holds settings for the code-summarization service.
type SummarizerConfig struct {
	Endpoint    string `mapstructure:"endpoint"`
	TimeoutSecs int    `mapstructure:"timeout_secs"`
}

// Timeout returns the request timeout, defaulting to 120s.
func (s *SummarizerConfig) Timeout() time.Duration {
	return secondsOrDefault(s.TimeoutSecs)
}

// LLMConfig holds settings for the chat-completion language model.
type LLMConfig struct {
	APIKey      string `mapstructure:"api_key"`
	BaseURL     string `mapstructure:"base_url"`
	Model       string `mapstructure:"model"`
	TimeoutSecs int    `mapstructure:"timeout_secs"`
}

// Timeout returns the request timeout, defaulting to 120s.
func (l *LLMConfig) Timeout() time.Duration {
	return secondsOrDefault(l.TimeoutSecs)
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// DBConfig holds PostgreSQL connection settings for the audit trail.
type DBConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	Name     string `mapstructure:"name"`
	SSLMode  string `mapstructure:"sslmode"`
	MaxOpen  int    `mapstructure:"max_open"`
	MaxIdle  int    `mapstructure:"max_idle"`
}

// DSN returns the PostgreSQL connection string.
func (d *DBConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.Name, d.SSLMode,
	)
}

// AuditConfig toggles the generation audit trail.
type AuditConfig struct {
	Enabled bool `mapstructure:"enabled"`
}

func secondsOrDefault(secs int) time.Duration {
	if secs <= 0 {
		return defaultTimeout
	}
	return time.Duration(secs) * time.Second
}

// Load reads configuration from environment variables with the CODEDOC_ prefix.
func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("CODEDOC")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Server defaults. Write timeout covers three sequential upstream calls.
	v.SetDefault("server.port", ":3000")
	v.SetDefault("server.read_timeout", "15s")
	v.SetDefault("server.write_timeout", "5m")
	v.SetDefault("server.environment", "development")

	// Summarizer defaults
	v.SetDefault("summarizer.endpoint", "http://127.0.0.1:8001/generate")
	v.SetDefault("summarizer.timeout_secs", 120)

	// LLM defaults
	v.SetDefault("llm.api_key", "")
	v.SetDefault("llm.base_url", "")
	v.SetDefault("llm.model", "gpt-4o-mini")
	v.SetDefault("llm.timeout_secs", 120)

	v.SetDefault("cors.allowed_origins", "*")

	// DB defaults
	v.SetDefault("db.host", "localhost")
	v.SetDefault("db.port", 5432)
	v.SetDefault("db.user", "codedoc")
	v.SetDefault("db.password", "codedoc_secret")
	v.SetDefault("db.name", "codedoc_db")
	v.SetDefault("db.sslmode", "disable")
	v.SetDefault("db.max_open", 10)
	v.SetDefault("db.max_idle", 5)

	v.SetDefault("audit.enabled", false)

	// Bind environment variables explicitly for nested keys
	envBindings := map[string][]string{
		"server.port":             {"CODEDOC_SERVER_PORT"},
		"server.read_timeout":     {"CODEDOC_SERVER_READ_TIMEOUT"},
		"server.write_timeout":    {"CODEDOC_SERVER_WRITE_TIMEOUT"},
		"server.environment":      {"CODEDOC_SERVER_ENVIRONMENT"},
		"summarizer.endpoint":     {"CODEDOC_SUMMARIZER_ENDPOINT"},
		"summarizer.timeout_secs": {"CODEDOC_SUMMARIZER_TIMEOUT_SECS"},
		"llm.api_key":             {"CODEDOC_LLM_API_KEY", "OPENAI_API_KEY"},
		"llm.base_url":            {"CODEDOC_LLM_BASE_URL"},
		"llm.model":               {"CODEDOC_LLM_MODEL"},
		"llm.timeout_secs":        {"CODEDOC_LLM_TIMEOUT_SECS"},
		"cors.allowed_origins":    {"CODEDOC_CORS_ALLOWED_ORIGINS"},
		"db.host":                 {"CODEDOC_DB_HOST"},
		"db.port":                 {"CODEDOC_DB_PORT"},
		"db.user":                 {"CODEDOC_DB_USER"},
		"db.password":             {"CODEDOC_DB_PASSWORD"},
		"db.name":                 {"CODEDOC_DB_NAME"},
		"db.sslmode":              {"CODEDOC_DB_SSLMODE"},
		"db.max_open":             {"CODEDOC_DB_MAX_OPEN"},
		"db.max_idle":             {"CODEDOC_DB_MAX_IDLE"},
		"audit.enabled":           {"CODEDOC_AUDIT_ENABLED"},
	}
	for key, envs := range envBindings {
		_ = v.BindEnv(append([]string{key}, envs...)...)
	}

	cfg := &Config{}

	// Hosting platforms set a PORT env var. Use it if CODEDOC_SERVER_PORT is not explicitly set.
	serverPort := v.GetString("server.port")
	if port := os.Getenv("PORT"); port != "" && os.Getenv("CODEDOC_SERVER_PORT") == "" {
		serverPort = ":" + port
	}

	cfg.Server = ServerConfig{
		Port:         serverPort,
		ReadTimeout:  v.GetDuration("server.read_timeout"),
		WriteTimeout: v.GetDuration("server.write_timeout"),
		Environment:  v.GetString("server.environment"),
	}
	cfg.Summarizer = SummarizerConfig{
		Endpoint:    v.GetString("summarizer.endpoint"),
		TimeoutSecs: v.GetInt("summarizer.timeout_secs"),
	}
	cfg.LLM = LLMConfig{
		APIKey:      v.GetString("llm.api_key"),
		BaseURL:     v.GetString("llm.base_url"),
		Model:       v.GetString("llm.model"),
		TimeoutSecs: v.GetInt("llm.timeout_secs"),
	}

	// Parse CORS allowed origins from comma-separated string
	var corsOrigins []string
	for _, o := range strings.Split(v.GetString("cors.allowed_origins"), ",") {
		o = strings.TrimSpace(o)
		if o != "" {
			corsOrigins = append(corsOrigins, o)
		}
	}
	cfg.CORS = CORSConfig{AllowedOrigins: corsOrigins}

	cfg.DB = DBConfig{
		Host:     v.GetString("db.host"),
		Port:     v.GetInt("db.port"),
		User:     v.GetString("db.user"),
		Password: v.GetString("db.password"),
		Name:     v.GetString("db.name"),
		SSLMode:  v.GetString("db.sslmode"),
		MaxOpen:  v.GetInt("db.max_open"),
		MaxIdle:  v.GetInt("db.max_idle"),
	}
	cfg.Audit = AuditConfig{Enabled: v.GetBool("audit.enabled")}

	return cfg, nil
}
