package types

type RunMode string

const (
	// ModeLocal runs the API with in-memory stores and the local auth provider
	ModeLocal RunMode = "local"
	// ModeProduction runs the API against the configured Postgres backend
	ModeProduction RunMode = "production"
)

type LogLevel string

const (
	LogLevelDebug LogLevel = "debug"
	LogLevelInfo  LogLevel = "info"
)
