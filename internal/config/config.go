package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container, populated
// by merging environment variables, command-line flags, and an optional
// JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds token parameters and the application version.
	App App `envPrefix:"APP_"`

	// Server holds the inbound HTTP transport settings.
	Server Server `envPrefix:"SERVER_"`

	// Storage holds the database and file store settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// Client holds settings used only by the terminal client.
	Client Client `envPrefix:"CLIENT_"`

	// Workers holds background worker settings.
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file,
	// merged on top of env and flag values when non-empty.
	// Populated via the CONFIG environment variable or the -c flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// TokenSignKey is the secret used to sign and verify JWT tokens.
	// Env: APP_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenIssuer is the "iss" claim embedded in every issued token.
	// Env: APP_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER"`

	// TokenDuration is how long an issued token stays valid.
	// Env: APP_TOKEN_DURATION
	TokenDuration time.Duration `env:"TOKEN_DURATION"`

	// Version is the semantic version of the running binary.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Server holds network and timeout settings for the inbound transport.
type Server struct {
	// HTTPAddress is the listen address in "host:port" form.
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds a single inbound request.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Storage groups the persistence backends of the server.
type Storage struct {
	DB    DB    `envPrefix:"DB_"`
	Files Files `envPrefix:"FILES_"`
}

// DB holds relational database settings. Driver selects between the
// "pgx" (PostgreSQL) and "sqlite3" backends; both run the same goose
// migrations and repositories.
type DB struct {
	// Driver is "pgx" or "sqlite3".
	// Env: STORAGE_DB_DRIVER
	Driver string `env:"DRIVER"`

	// DSN is the connection string: a PostgreSQL URI for pgx, or a file
	// path for sqlite3.
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Files holds file-system settings for the attachment store.
type Files struct {
	// Dir is the directory where uploaded files are kept.
	// Env: STORAGE_FILES_DIR
	Dir string `env:"DIR"`

	// BaseURL is the public URL prefix under which stored files are
	// served, e.g. "http://localhost:8080/files".
	// Env: STORAGE_FILES_BASE_URL
	BaseURL string `env:"BASE_URL"`
}

// Client holds settings used by the terminal client only.
type Client struct {
	// ServerURL is the base URL of the tracker API server.
	// Env: CLIENT_SERVER_URL
	ServerURL string `env:"SERVER_URL"`

	// EmailGatewayURL is the endpoint of the external email dispatch
	// service. Empty disables email dispatch entirely.
	// Env: CLIENT_EMAIL_GATEWAY_URL
	EmailGatewayURL string `env:"EMAIL_GATEWAY_URL"`

	// RequestTimeout bounds a single outbound request.
	// Env: CLIENT_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// RefreshInterval is how often the background refresh job re-fetches
	// the loaded collections. Zero disables the job.
	// Env: CLIENT_REFRESH_INTERVAL
	RefreshInterval time.Duration `env:"REFRESH_INTERVAL"`
}

// Workers holds background worker settings for the server.
type Workers struct {
	// ReminderInterval is how often the deadline reminder scan runs.
	// Env: WORKERS_REMINDER_INTERVAL
	ReminderInterval time.Duration `env:"REMINDER_INTERVAL"`

	// ReminderWindow is how far ahead the scan looks for due tasks.
	// Env: WORKERS_REMINDER_WINDOW
	ReminderWindow time.Duration `env:"REMINDER_WINDOW"`
}
