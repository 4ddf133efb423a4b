package store

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ovoronin/go-issue-tracker/internal/logger"
	"github.com/ovoronin/go-issue-tracker/models"
)

func newTestUserRepo(t *testing.T) (*userRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	wrapped := &DB{
		DB:         db,
		driver:     "pgx",
		builder:    sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
		classifier: PostgresErrorClassifier{},
		logger:     logger.Nop(),
	}
	repo := &userRepository{db: wrapped, logger: logger.Nop()}
	return repo, mock, db
}

func pgError(code string) error {
	return &pgconn.PgError{Code: code}
}

func TestUserRepository_CreateUser(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	user := models.User{
		UserID:       "u1",
		Email:        "dev@example.com",
		DisplayName:  "Dev",
		PasswordHash: "$2a$10$hash",
		CreatedAt:    time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
	}

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO users (id,email,display_name,password_hash,created_at) VALUES ($1,$2,$3,$4,$5)")).
		WithArgs(user.UserID, user.Email, user.DisplayName, user.PasswordHash, user.CreatedAt).
		WillReturnResult(sqlmock.NewResult(0, 1))

	got, err := repo.CreateUser(context.Background(), user)
	require.NoError(t, err)
	assert.Equal(t, user, got)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_CreateUser_DuplicateEmail(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	mock.ExpectExec("INSERT INTO users").
		WillReturnError(pgError(pgerrcode.UniqueViolation))

	_, err := repo.CreateUser(context.Background(), models.User{UserID: "u1", Email: "dev@example.com"})
	require.ErrorIs(t, err, ErrEmailAlreadyExists)
}

func TestUserRepository_FindUserByEmail(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	createdAt := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	rows := sqlmock.NewRows([]string{"id", "email", "display_name", "password_hash", "created_at"}).
		AddRow("u1", "dev@example.com", "Dev", "$2a$10$hash", createdAt)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, email, display_name, password_hash, created_at FROM users WHERE email = $1")).
		WithArgs("dev@example.com").
		WillReturnRows(rows)

	user, err := repo.FindUserByEmail(context.Background(), "dev@example.com")
	require.NoError(t, err)
	assert.Equal(t, "u1", user.UserID)
	assert.Equal(t, "Dev", user.DisplayName)
}

func TestUserRepository_FindUserByEmail_NotFound(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT .+ FROM users").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.FindUserByEmail(context.Background(), "ghost@example.com")
	require.ErrorIs(t, err, ErrUserNotFound)
}

func TestUserRepository_FindUserByID_QueryFailure(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT .+ FROM users").
		WillReturnError(errors.New("connection reset"))

	_, err := repo.FindUserByID(context.Background(), "u1")
	require.ErrorIs(t, err, ErrExecutingQuery)
}
