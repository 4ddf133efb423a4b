package config

import (
	"flag"
	"time"
)

// ParseFlags parses all configuration flags into a partial
// [StructuredConfig]. Unset flags produce zero values, which lose to
// env values during the mergo merge.
//
// Flags:
//
//	-a server listen address in [host]:[port] format
//	-d database DSN
//	-db-driver database driver ("pgx" or "sqlite3")
//	-files-dir attachment storage directory
//	-files-base-url public URL prefix for stored files
//	-s tracker server base URL (client)
//	-email-gateway-url email dispatch gateway URL (client)
//	-refresh-interval background collection refresh interval (client)
//	-request-timeout outbound/inbound request timeout
//	-token-sign-key token signing key
//	-token-issuer token issuer name
//	-token-duration token validity duration (e.g. "12h")
//	-c/-config json config file path
func ParseFlags() *StructuredConfig {
	cfg := &StructuredConfig{}

	flag.StringVar(&cfg.Server.HTTPAddress, "a", "", "Server listen address host:port")
	flag.StringVar(&cfg.Storage.DB.DSN, "d", "", "Database DSN")
	flag.StringVar(&cfg.Storage.DB.Driver, "db-driver", "", "Database driver (pgx or sqlite3)")
	flag.StringVar(&cfg.Storage.Files.Dir, "files-dir", "", "Attachment storage directory")
	flag.StringVar(&cfg.Storage.Files.BaseURL, "files-base-url", "", "Public URL prefix for stored files")
	flag.StringVar(&cfg.Client.ServerURL, "s", "", "Tracker server base URL")
	flag.StringVar(&cfg.Client.EmailGatewayURL, "email-gateway-url", "", "Email dispatch gateway URL")
	flag.DurationVar(&cfg.Client.RefreshInterval, "refresh-interval", 0, "Collection refresh interval (e.g. 1m)")
	flag.DurationVar(&cfg.Client.RequestTimeout, "request-timeout", 0, "Request timeout (e.g. 15s)")
	flag.StringVar(&cfg.App.TokenSignKey, "token-sign-key", "", "Token signing key")
	flag.StringVar(&cfg.App.TokenIssuer, "token-issuer", "", "Token issuer")
	flag.DurationVar(&cfg.App.TokenDuration, "token-duration", 0, "Token duration (e.g. 12h)")
	flag.StringVar(&cfg.JSONFilePath, "c", "", "JSON config file path")
	flag.StringVar(&cfg.JSONFilePath, "config", "", "JSON config file path (alias)")

	flag.Parse()

	cfg.Server.RequestTimeout = cfg.Client.RequestTimeout

	return cfg
}

// defaults applied after the merge so a fully empty environment still
// yields a runnable local setup.
func applyDefaults(cfg *StructuredConfig) {
	if cfg.Server.HTTPAddress == "" {
		cfg.Server.HTTPAddress = "localhost:8080"
	}
	if cfg.Server.RequestTimeout <= 0 {
		cfg.Server.RequestTimeout = 30 * time.Second
	}
	if cfg.Storage.DB.Driver == "" {
		cfg.Storage.DB.Driver = "sqlite3"
	}
	if cfg.Storage.DB.DSN == "" && cfg.Storage.DB.Driver == "sqlite3" {
		cfg.Storage.DB.DSN = "tracker.db"
	}
	if cfg.Storage.Files.Dir == "" {
		cfg.Storage.Files.Dir = "uploads"
	}
	if cfg.Storage.Files.BaseURL == "" {
		cfg.Storage.Files.BaseURL = "http://" + cfg.Server.HTTPAddress + "/files"
	}
	if cfg.App.TokenIssuer == "" {
		cfg.App.TokenIssuer = "go-issue-tracker"
	}
	if cfg.App.TokenDuration <= 0 {
		cfg.App.TokenDuration = 12 * time.Hour
	}
	if cfg.Client.ServerURL == "" {
		cfg.Client.ServerURL = "http://localhost:8080"
	}
	if cfg.Client.RequestTimeout <= 0 {
		cfg.Client.RequestTimeout = 15 * time.Second
	}
	if cfg.Client.RefreshInterval < 0 {
		cfg.Client.RefreshInterval = 0
	}
	if cfg.Workers.ReminderInterval <= 0 {
		cfg.Workers.ReminderInterval = time.Hour
	}
	if cfg.Workers.ReminderWindow <= 0 {
		cfg.Workers.ReminderWindow = 24 * time.Hour
	}
}
