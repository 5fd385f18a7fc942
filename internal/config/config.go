// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// Deployment environments recognised by [App.Env].
const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
	EnvTest        = "test"
)

// Gate modes recognised by [Gate.Mode].
const (
	GateModeLocal  = "local"
	GateModeRedis  = "redis"
	GateModeRemote = "remote"
	GateModeOff    = "off"
)

// StructuredConfig is the top-level configuration container for the
// go-user-gate service. It aggregates all sub-configurations and is
// populated by merging values from environment variables, command-line flags,
// and an optional JSON file.
//
// Struct tags:
//   - envPrefix  — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env        — direct environment variable name for scalar fields.
//   - envDefault — value used when the variable is unset.
type StructuredConfig struct {
	// App holds deployment-level settings: environment, log level and version.
	App App `envPrefix:"APP_"`

	// Auth holds token signing and lifetime settings.
	Auth Auth `envPrefix:"JWT_"`

	// Storage holds the relational database settings.
	Storage Storage

	// Server holds the HTTP listener settings.
	Server Server `envPrefix:"SERVER_"`

	// Gate selects and configures the bot-detection / rate-limit gate.
	Gate Gate `envPrefix:"GATE_"`

	// RateLimit holds the per-role request budgets enforced by the gate.
	RateLimit RateLimit `envPrefix:"RATE_LIMIT_"`

	// Redis holds the connection settings used by the redis gate mode.
	Redis Redis `envPrefix:"REDIS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// Env is the deployment mode. "production" turns on Secure cookies and
	// hides internal error details from responses.
	// Env: APP_ENV
	Env string `env:"ENV" envDefault:"development"`

	// LogLevel is the minimum zerolog level (trace, debug, info, warn, error).
	// Env: APP_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	// Version is exposed via GET /api/version.
	// Env: APP_VERSION
	Version string `env:"VERSION" envDefault:"dev"`

	// Name is reported by the status endpoints.
	// Env: APP_NAME
	Name string `env:"NAME" envDefault:"go-user-gate"`
}

// IsProduction reports whether the service runs in production mode.
func (a App) IsProduction() bool {
	return a.Env == EnvProduction
}

// Auth holds token configuration.
type Auth struct {
	// Secret is the HMAC key used to sign and verify tokens. Rotating it
	// invalidates every outstanding token.
	// Env: JWT_SECRET
	Secret string `env:"SECRET"`

	// ExpiresIn is the token lifetime. Accepts Go durations and a "d" suffix
	// for days (e.g. "1d", "7d", "12h").
	// Env: JWT_EXPIRES_IN
	ExpiresIn Duration `env:"EXPIRES_IN" envDefault:"1d"`

	// Issuer is the "iss" claim embedded into and required from every token.
	// Env: JWT_ISSUER
	Issuer string `env:"ISSUER" envDefault:"go-user-gate"`
}

// Storage groups the configuration for all storage backends used by the
// application.
type Storage struct {
	// DB holds the relational database connection settings.
	DB DB
}

// DB holds connection settings for the relational database backend.
type DB struct {
	// DSN is the connection string. "postgres://" and "postgresql://" DSNs use
	// pgx; "sqlite://" or "file:" DSNs use sqlite3.
	// Env: DATABASE_URL
	DSN string `env:"DATABASE_URL"`

	// MaxOpenConns caps the connection pool.
	// Env: STORAGE_DB_MAX_OPEN_CONNS
	MaxOpenConns int `env:"STORAGE_DB_MAX_OPEN_CONNS" envDefault:"10"`

	// MaxIdleConns caps idle connections kept in the pool.
	// Env: STORAGE_DB_MAX_IDLE_CONNS
	MaxIdleConns int `env:"STORAGE_DB_MAX_IDLE_CONNS" envDefault:"4"`

	// ConnTimeout bounds the initial ping.
	// Env: STORAGE_DB_CONN_TIMEOUT
	ConnTimeout time.Duration `env:"STORAGE_DB_CONN_TIMEOUT" envDefault:"5s"`
}

// Server holds network and timeout settings for the inbound transport layer.
type Server struct {
	// HTTPAddress is the TCP address on which the HTTP server listens.
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS" envDefault:":3000"`

	// RequestTimeout is the maximum duration allowed for a single inbound
	// request before its context is cancelled.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT" envDefault:"30s"`

	// ShutdownTimeout bounds graceful shutdown.
	// Env: SERVER_SHUTDOWN_TIMEOUT
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`
}

// Gate configures the per-request bot / rate decision.
type Gate struct {
	// Mode is one of local, redis, remote, off.
	// Env: GATE_MODE
	Mode string `env:"MODE" envDefault:"local"`

	// URL is the decision endpoint used in remote mode.
	// Env: GATE_URL
	URL string `env:"URL"`

	// APIKey is sent as a bearer token to the remote decision service.
	// Env: GATE_API_KEY
	APIKey string `env:"API_KEY"`

	// Timeout bounds a single remote decision call.
	// Env: GATE_TIMEOUT
	Timeout time.Duration `env:"TIMEOUT" envDefault:"2s"`

	// BotDetection enables the User-Agent heuristic in local and redis modes.
	// Env: GATE_BOT_DETECTION
	BotDetection bool `env:"BOT_DETECTION"`

	// IdleTTL is how long an unused local limiter is kept before eviction.
	// Env: GATE_IDLE_TTL
	IdleTTL time.Duration `env:"IDLE_TTL" envDefault:"10m"`
}

// RateLimit holds request budgets per role within Window.
type RateLimit struct {
	// Env: RATE_LIMIT_ADMIN
	Admin int `env:"ADMIN" envDefault:"20"`
	// Env: RATE_LIMIT_USER
	User int `env:"USER" envDefault:"10"`
	// Env: RATE_LIMIT_GUEST
	Guest int `env:"GUEST" envDefault:"5"`
	// Env: RATE_LIMIT_WINDOW
	Window time.Duration `env:"WINDOW" envDefault:"1m"`
}

// Redis holds connection settings for the shared rate-limit store.
type Redis struct {
	// Env: REDIS_ADDR
	Addr string `env:"ADDR"`
	// Env: REDIS_PASSWORD
	Password string `env:"PASSWORD"`
	// Env: REDIS_DB
	DB int `env:"DB"`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (last source wins for non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
func GetStructuredConfig() (*StructuredConfig, error) {
	return GetStructuredConfigFromArgs(nil)
}

// GetStructuredConfigFromArgs is like [GetStructuredConfig] but parses the
// given command-line arguments instead of os.Args.
func GetStructuredConfigFromArgs(args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags(args).
		withJSON().
		build()
}
