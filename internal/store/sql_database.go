package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"

	sq "github.com/Masterminds/squirrel"
	_ "github.com/jackc/pgx/v5/stdlib"
	_ "github.com/mattn/go-sqlite3"

	"github.com/ovoronin/go-issue-tracker/internal/config"
	"github.com/ovoronin/go-issue-tracker/internal/logger"
	"github.com/ovoronin/go-issue-tracker/migrations"
)

// DB wraps the sql connection with the driver-specific pieces the
// repositories need: a statement builder with the right placeholder
// format and an error classifier for constraint violations.
type DB struct {
	*sql.DB

	driver     string
	builder    sq.StatementBuilderType
	classifier ErrorClassifier
	logger     *logger.Logger
}

// Connect opens the configured database, verifies it with a ping and
// returns the wrapped connection. Driver selects between "pgx" and
// "sqlite3"; both run the same migrations and repositories.
func Connect(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	switch cfg.Driver {
	case "pgx":
		return connectPostgres(ctx, cfg, log)
	case "sqlite3":
		return connectSQLite(ctx, cfg, log)
	default:
		return nil, fmt.Errorf("unknown database driver %q", cfg.Driver)
	}
}

// Migrate applies the embedded goose migrations.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.driver)
}

func connectPostgres(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	conn, err := sql.Open("pgx", cfg.DSN)
	if err != nil {
		log.Err(err).Str("func", "connectPostgres").Msg("error opening database connection")
		return nil, fmt.Errorf("error opening database connection: %w", err)
	}

	conn.SetMaxOpenConns(10)
	conn.SetMaxIdleConns(4)

	if err = conn.PingContext(ctx); err != nil {
		log.Err(err).Str("func", "connectPostgres").Msg("error connecting database (ping)")
		return nil, err
	}
	log.Info().Str("func", "connectPostgres").Msg("connected to database successfully")

	return &DB{
		DB:         conn,
		driver:     "pgx",
		builder:    sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
		classifier: PostgresErrorClassifier{},
		logger:     log,
	}, nil
}

func connectSQLite(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	if err := createLocalDBFileIfNotExists(cfg.DSN); err != nil {
		log.Err(err).Str("func", "connectSQLite").Msg("error creating database file")
		return nil, err
	}

	conn, err := sql.Open("sqlite3", cfg.DSN)
	if err != nil {
		log.Err(err).Str("func", "connectSQLite").Msg("error opening database connection")
		return nil, fmt.Errorf("error opening database connection: %w", err)
	}

	if err = conn.PingContext(ctx); err != nil {
		log.Err(err).Str("func", "connectSQLite").Msg("error connecting database (ping)")
		return nil, err
	}
	log.Debug().Str("func", "connectSQLite").Msg("connected to database successfully")

	return &DB{
		DB:         conn,
		driver:     "sqlite3",
		builder:    sq.StatementBuilder.PlaceholderFormat(sq.Question),
		classifier: SQLiteErrorClassifier{},
		logger:     log,
	}, nil
}

func createLocalDBFileIfNotExists(dbFile string) error {
	if _, err := os.Stat(dbFile); os.IsNotExist(err) {
		f, createErr := os.Create(dbFile)
		if createErr != nil {
			return fmt.Errorf("error creating DB file: %w", createErr)
		}
		return f.Close()
	}
	return nil
}
