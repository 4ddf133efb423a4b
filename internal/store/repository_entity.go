package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/ovoronin/go-issue-tracker/internal/logger"
	"github.com/ovoronin/go-issue-tracker/models"
)

// knownCollections maps collection name to its table. The tables share
// one shape, so the repository is a single implementation parameterized
// by name.
var knownCollections = map[string]struct{}{
	"projects":      {},
	"tasks":         {},
	"bugs":          {},
	"notifications": {},
}

// filterColumns is the allowlist of remotely filterable fields. The
// document fields outside this set are filtered client-side over the
// fetched collection.
var filterColumns = map[string]string{
	"id":           "id",
	"project_id":   "project_id",
	"recipient_id": "recipient_id",
}

var sortColumns = map[string]string{
	"created_at": "created_at",
	"updated_at": "updated_at",
}

type entityRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewEntityRepository constructs an [EntityRepository] backed by the
// given database connection.
func NewEntityRepository(db *DB, log *logger.Logger) EntityRepository {
	log.Debug().Msg("creating entity repository")
	return &entityRepository{
		db:     db,
		logger: log,
	}
}

// List implements [EntityRepository].
func (r *entityRepository) List(ctx context.Context, collection string, query models.ListQuery) ([]json.RawMessage, error) {
	if err := checkCollection(collection); err != nil {
		return nil, err
	}

	builder := r.db.builder.Select("doc").From(collection)

	for field, value := range query.Filter {
		column, ok := filterColumns[field]
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrUnsupportedFilter, field)
		}
		builder = builder.Where(sq.Eq{column: value})
	}

	ordered := false
	for field, direction := range query.Sort {
		column, ok := sortColumns[field]
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrUnsupportedSort, field)
		}
		if direction == models.SortDesc {
			builder = builder.OrderBy(column + " DESC")
		} else {
			builder = builder.OrderBy(column + " ASC")
		}
		ordered = true
	}
	if !ordered {
		builder = builder.OrderBy("created_at DESC")
	}

	sqlText, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, sqlText, args...)
	if err != nil {
		r.logger.Err(err).Str("collection", collection).Msg("list query failed")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var docs []json.RawMessage
	for rows.Next() {
		var doc []byte
		if err = rows.Scan(&doc); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
		}
		docs = append(docs, json.RawMessage(doc))
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return docs, nil
}

// Get implements [EntityRepository].
func (r *entityRepository) Get(ctx context.Context, collection, id string) (json.RawMessage, error) {
	if err := checkCollection(collection); err != nil {
		return nil, err
	}

	sqlText, args, err := r.db.builder.Select("doc").From(collection).Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var doc []byte
	err = r.db.QueryRowContext(ctx, sqlText, args...).Scan(&doc)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s/%s", ErrEntityNotFound, collection, id)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return json.RawMessage(doc), nil
}

// Insert implements [EntityRepository].
func (r *entityRepository) Insert(ctx context.Context, collection string, rec EntityRecord) error {
	if err := checkCollection(collection); err != nil {
		return err
	}

	sqlText, args, err := r.db.builder.
		Insert(collection).
		Columns("id", "project_id", "recipient_id", "created_at", "updated_at", "doc").
		Values(rec.ID, rec.ProjectID, rec.RecipientID, rec.CreatedAt, rec.UpdatedAt, []byte(rec.Doc)).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.db.ExecContext(ctx, sqlText, args...); err != nil {
		r.logger.Err(err).Str("collection", collection).Str("id", rec.ID).Msg("insert failed")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return nil
}

// ApplyPatch implements [EntityRepository].
func (r *entityRepository) ApplyPatch(ctx context.Context, collection, id string, merge func(doc json.RawMessage) (EntityRecord, error)) (json.RawMessage, error) {
	if err := checkCollection(collection); err != nil {
		return nil, err
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback() //nolint:errcheck // no-op after commit

	selectSQL, selectArgs, err := r.db.builder.Select("doc").From(collection).Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var current []byte
	err = tx.QueryRowContext(ctx, selectSQL, selectArgs...).Scan(&current)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s/%s", ErrEntityNotFound, collection, id)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	merged, err := merge(json.RawMessage(current))
	if err != nil {
		return nil, err
	}

	updateSQL, updateArgs, err := r.db.builder.
		Update(collection).
		Set("project_id", merged.ProjectID).
		Set("recipient_id", merged.RecipientID).
		Set("updated_at", merged.UpdatedAt).
		Set("doc", []byte(merged.Doc)).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = tx.ExecContext(ctx, updateSQL, updateArgs...); err != nil {
		r.logger.Err(err).Str("collection", collection).Str("id", id).Msg("patch update failed")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	if err = tx.Commit(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCommittingTransaction, err)
	}

	return merged.Doc, nil
}

// Delete implements [EntityRepository].
func (r *entityRepository) Delete(ctx context.Context, collection, id string) error {
	if err := checkCollection(collection); err != nil {
		return err
	}

	sqlText, args, err := r.db.builder.Delete(collection).Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	res, err := r.db.ExecContext(ctx, sqlText, args...)
	if err != nil {
		r.logger.Err(err).Str("collection", collection).Str("id", id).Msg("delete failed")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	if affected == 0 {
		return fmt.Errorf("%w: %s/%s", ErrEntityNotFound, collection, id)
	}

	return nil
}

func checkCollection(collection string) error {
	if _, ok := knownCollections[collection]; !ok {
		return fmt.Errorf("%w: %s", ErrUnknownCollection, collection)
	}
	return nil
}
