package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
	"github.com/visahub/visahub/internal/types"
)

type Configuration struct {
	Deployment DeploymentConfig `validate:"required"`
	Server     ServerConfig     `validate:"required"`
	Logging    LoggingConfig    `validate:"required"`
	Postgres   PostgresConfig
	Auth       AuthConfig `validate:"required"`
	Email      EmailConfig
	S3         S3Config
	Cache      CacheConfig
}

type DeploymentConfig struct {
	Mode types.RunMode `validate:"required"`
}

type ServerConfig struct {
	Address string `validate:"required"`
}

type LoggingConfig struct {
	Level types.LogLevel `validate:"required"`
}

// PostgresConfig describes the live backend. Leaving Host empty selects
// stub mode: the API runs against in-memory stores instead.
type PostgresConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
	SSLMode  string
}

type AuthConfig struct {
	// Provider is "supabase" in production; "local" is only honoured in
	// local deployment mode.
	Provider string `validate:"required"`
	// Secret signs and verifies admin JWTs (HS256)
	Secret   string `validate:"required"`
	Supabase SupabaseConfig
	Local    LocalAuthConfig
}

type SupabaseConfig struct {
	BaseURL    string
	ServiceKey string
}

// LocalAuthConfig is a development fixture: a single admin identity with
// a bcrypt password hash, honoured only when deployment mode is local.
type LocalAuthConfig struct {
	AdminEmail        string
	AdminPasswordHash string
}

type EmailConfig struct {
	Enabled     bool
	APIKey      string
	FromAddress string
	ReplyTo     string
}

type S3Config struct {
	Enabled         bool
	Region          string
	DocumentsBucket string
	KeyPrefix       string
}

type CacheConfig struct {
	Enabled bool
}

func NewConfig() (*Configuration, error) {
	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./internal/config")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("/etc/visahub")

	v.SetEnvPrefix("VISAHUB")
	v.SetEnvKeyReplacer(strings.NewReplacer(
		".", "_",
		"-", "_",
	))
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		if !errors.As(err, &viper.ConfigFileNotFoundError{}) {
			return nil, err
		}
	}

	var config Configuration
	if err := v.Unmarshal(&config); err != nil {
		return nil, err
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("deployment.mode", string(types.ModeLocal))
	v.SetDefault("server.address", ":8080")
	v.SetDefault("logging.level", string(types.LogLevelInfo))
	v.SetDefault("auth.provider", "local")
	v.SetDefault("auth.secret", "")
	v.SetDefault("postgres.port", 5432)
	v.SetDefault("postgres.sslmode", "require")
	v.SetDefault("cache.enabled", true)
}

func (c Configuration) Validate() error {
	validate := validator.New()
	if err := validate.Struct(c); err != nil {
		return err
	}
	if c.Auth.Provider == "local" && c.Deployment.Mode != types.ModeLocal {
		return fmt.Errorf("local auth provider is only allowed in local deployment mode")
	}
	return nil
}

// IsPostgresConfigured reports whether a live backend was supplied. The
// decision is made once at startup; nothing re-checks it per request.
func (c Configuration) IsPostgresConfigured() bool {
	return c.Postgres.Host != ""
}

func (c PostgresConfig) GetDSN() string {
	return fmt.Sprintf(
		"user=%s password=%s dbname=%s host=%s port=%d sslmode=%s",
		c.User,
		c.Password,
		c.DBName,
		c.Host,
		c.Port,
		c.SSLMode,
	)
}

// GetDefaultConfig returns a configuration suitable for tests and local
// tooling: stub storage, local auth, email disabled.
func GetDefaultConfig() *Configuration {
	return &Configuration{
		Deployment: DeploymentConfig{Mode: types.ModeLocal},
		Server:     ServerConfig{Address: ":8080"},
		Logging:    LoggingConfig{Level: types.LogLevelDebug},
		Auth: AuthConfig{
			Provider: "local",
			Secret:   "local-dev-secret-do-not-use-in-production",
		},
		Cache: CacheConfig{Enabled: true},
	}
}
