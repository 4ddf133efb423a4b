package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	sq "github.com/Masterminds/squirrel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ovoronin/go-issue-tracker/internal/logger"
	"github.com/ovoronin/go-issue-tracker/models"
)

func newTestEntityRepo(t *testing.T) (*entityRepository, sqlmock.Sqlmock, *sql.DB) {
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
	repo := &entityRepository{db: wrapped, logger: logger.Nop()}
	return repo, mock, db
}

func TestEntityRepository_List_FilterAndDefaultOrder(t *testing.T) {
	repo, mock, db := newTestEntityRepo(t)
	defer db.Close()

	rows := sqlmock.NewRows([]string{"doc"}).
		AddRow([]byte(`{"id":"t2"}`)).
		AddRow([]byte(`{"id":"t1"}`))

	mock.ExpectQuery(regexp.QuoteMeta("SELECT doc FROM tasks WHERE project_id = $1 ORDER BY created_at DESC")).
		WithArgs("p1").
		WillReturnRows(rows)

	docs, err := repo.List(context.Background(), "tasks", models.ListQuery{
		Filter: map[string]string{"project_id": "p1"},
	})
	require.NoError(t, err)
	require.Len(t, docs, 2)
	assert.JSONEq(t, `{"id":"t2"}`, string(docs[0]))
}

func TestEntityRepository_List_UnsupportedFilter(t *testing.T) {
	repo, _, db := newTestEntityRepo(t)
	defer db.Close()

	_, err := repo.List(context.Background(), "tasks", models.ListQuery{
		Filter: map[string]string{"assigned_to": "u1"},
	})
	require.ErrorIs(t, err, ErrUnsupportedFilter)
}

func TestEntityRepository_List_UnknownCollection(t *testing.T) {
	repo, _, db := newTestEntityRepo(t)
	defer db.Close()

	_, err := repo.List(context.Background(), "users", models.ListQuery{})
	require.ErrorIs(t, err, ErrUnknownCollection)
}

func TestEntityRepository_Insert(t *testing.T) {
	repo, mock, db := newTestEntityRepo(t)
	defer db.Close()

	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	rec := EntityRecord{
		ID:        "t1",
		ProjectID: "p1",
		CreatedAt: now,
		UpdatedAt: now,
		Doc:       json.RawMessage(`{"id":"t1","title":"x"}`),
	}

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO tasks (id,project_id,recipient_id,created_at,updated_at,doc) VALUES ($1,$2,$3,$4,$5,$6)")).
		WithArgs(rec.ID, rec.ProjectID, rec.RecipientID, rec.CreatedAt, rec.UpdatedAt, []byte(rec.Doc)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.Insert(context.Background(), "tasks", rec))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestEntityRepository_ApplyPatch(t *testing.T) {
	repo, mock, db := newTestEntityRepo(t)
	defer db.Close()

	now := time.Date(2026, 1, 2, 0, 0, 0, 0, time.UTC)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("SELECT doc FROM tasks WHERE id = $1")).
		WithArgs("t1").
		WillReturnRows(sqlmock.NewRows([]string{"doc"}).AddRow([]byte(`{"id":"t1","title":"old"}`)))
	mock.ExpectExec(regexp.QuoteMeta("UPDATE tasks SET project_id = $1, recipient_id = $2, updated_at = $3, doc = $4 WHERE id = $5")).
		WithArgs("p1", "", now, []byte(`{"id":"t1","title":"new"}`), "t1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	merged, err := repo.ApplyPatch(context.Background(), "tasks", "t1", func(doc json.RawMessage) (EntityRecord, error) {
		assert.JSONEq(t, `{"id":"t1","title":"old"}`, string(doc))
		return EntityRecord{
			ID:        "t1",
			ProjectID: "p1",
			UpdatedAt: now,
			Doc:       json.RawMessage(`{"id":"t1","title":"new"}`),
		}, nil
	})
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":"t1","title":"new"}`, string(merged))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestEntityRepository_ApplyPatch_NotFound(t *testing.T) {
	repo, mock, db := newTestEntityRepo(t)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT doc FROM tasks").
		WillReturnError(sql.ErrNoRows)
	mock.ExpectRollback()

	_, err := repo.ApplyPatch(context.Background(), "tasks", "missing", func(doc json.RawMessage) (EntityRecord, error) {
		t.Fatal("merge must not run for a missing entity")
		return EntityRecord{}, nil
	})
	require.ErrorIs(t, err, ErrEntityNotFound)
}

func TestEntityRepository_Delete(t *testing.T) {
	repo, mock, db := newTestEntityRepo(t)
	defer db.Close()

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM bugs WHERE id = $1")).
		WithArgs("b1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.Delete(context.Background(), "bugs", "b1"))
}

func TestEntityRepository_Delete_NotFound(t *testing.T) {
	repo, mock, db := newTestEntityRepo(t)
	defer db.Close()

	mock.ExpectExec("DELETE FROM bugs").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Delete(context.Background(), "bugs", "missing")
	require.ErrorIs(t, err, ErrEntityNotFound)
}
