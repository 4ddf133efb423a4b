package service

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ovoronin/go-issue-tracker/internal/logger"
	"github.com/ovoronin/go-issue-tracker/internal/store"
	"github.com/ovoronin/go-issue-tracker/models"
)

// memEntityRepo is an in-memory EntityRepository for service tests.
type memEntityRepo struct {
	records map[string]map[string]store.EntityRecord
}

func newMemEntityRepo() *memEntityRepo {
	return &memEntityRepo{records: map[string]map[string]store.EntityRecord{}}
}

func (m *memEntityRepo) table(collection string) map[string]store.EntityRecord {
	if m.records[collection] == nil {
		m.records[collection] = map[string]store.EntityRecord{}
	}
	return m.records[collection]
}

func (m *memEntityRepo) List(_ context.Context, collection string, _ models.ListQuery) ([]json.RawMessage, error) {
	var docs []json.RawMessage
	for _, rec := range m.table(collection) {
		docs = append(docs, rec.Doc)
	}
	return docs, nil
}

func (m *memEntityRepo) Get(_ context.Context, collection, id string) (json.RawMessage, error) {
	rec, ok := m.table(collection)[id]
	if !ok {
		return nil, store.ErrEntityNotFound
	}
	return rec.Doc, nil
}

func (m *memEntityRepo) Insert(_ context.Context, collection string, rec store.EntityRecord) error {
	m.table(collection)[rec.ID] = rec
	return nil
}

func (m *memEntityRepo) ApplyPatch(_ context.Context, collection, id string, merge func(json.RawMessage) (store.EntityRecord, error)) (json.RawMessage, error) {
	rec, ok := m.table(collection)[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s/%s", store.ErrEntityNotFound, collection, id)
	}
	merged, err := merge(rec.Doc)
	if err != nil {
		return nil, err
	}
	m.table(collection)[id] = merged
	return merged.Doc, nil
}

func (m *memEntityRepo) Delete(_ context.Context, collection, id string) error {
	if _, ok := m.table(collection)[id]; !ok {
		return store.ErrEntityNotFound
	}
	delete(m.table(collection), id)
	return nil
}

func newTestEntitySvc(t *testing.T) (*entityService, *memEntityRepo) {
	t.Helper()
	repo := newMemEntityRepo()
	svc := NewEntityService(repo, logger.Nop()).(*entityService)
	svc.now = func() time.Time { return time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC) }
	svc.newID = func() string { return "generated-id" }
	return svc, repo
}

func TestEntityService_Create_AssignsIDAndTimestamps(t *testing.T) {
	svc, repo := newTestEntitySvc(t)
	ctx := context.Background()

	doc, err := svc.Create(ctx, "projects", json.RawMessage(`{"name":"Tracker","status":"active"}`))
	require.NoError(t, err)

	var stored map[string]any
	require.NoError(t, json.Unmarshal(doc, &stored))
	assert.Equal(t, "generated-id", stored["id"])
	assert.NotEmpty(t, stored["created_at"])
	assert.NotEmpty(t, stored["updated_at"])

	rec := repo.table("projects")["generated-id"]
	assert.Equal(t, "generated-id", rec.ID)
	assert.False(t, rec.CreatedAt.IsZero())
}

func TestEntityService_Create_KeepsClientTimestamps(t *testing.T) {
	svc, repo := newTestEntitySvc(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, "tasks", json.RawMessage(
		`{"title":"x","project_id":"p1","created_at":"2026-01-01T00:00:00Z","updated_at":"2026-01-01T00:00:00Z"}`))
	require.NoError(t, err)

	rec := repo.table("tasks")["generated-id"]
	assert.Equal(t, time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC), rec.CreatedAt)
	assert.Equal(t, "p1", rec.ProjectID)
}

func TestEntityService_Create_MissingRequiredField(t *testing.T) {
	svc, _ := newTestEntitySvc(t)

	_, err := svc.Create(context.Background(), "tasks", json.RawMessage(`{"title":"no project"}`))
	require.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestEntityService_Create_UnknownEnumValue(t *testing.T) {
	svc, _ := newTestEntitySvc(t)

	_, err := svc.Create(context.Background(), "bugs", json.RawMessage(
		`{"title":"b","project_id":"p1","severity":"catastrophic"}`))
	require.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestEntityService_Update_IDAndCreatedAtImmutable(t *testing.T) {
	svc, _ := newTestEntitySvc(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, "tasks", json.RawMessage(
		`{"title":"x","project_id":"p1","created_at":"2026-01-01T00:00:00Z","updated_at":"2026-01-01T00:00:00Z"}`))
	require.NoError(t, err)

	doc, err := svc.Update(ctx, "tasks", "generated-id", models.Patch{
		"id":         "hijacked",
		"created_at": "2020-01-01T00:00:00Z",
		"title":      "renamed",
		"updated_at": "2026-02-01T00:00:00Z",
	})
	require.NoError(t, err)

	var updated map[string]any
	require.NoError(t, json.Unmarshal(doc, &updated))
	assert.Equal(t, "generated-id", updated["id"])
	assert.Equal(t, "2026-01-01T00:00:00Z", updated["created_at"])
	assert.Equal(t, "renamed", updated["title"])
	assert.Equal(t, "2026-02-01T00:00:00Z", updated["updated_at"])
}

func TestEntityService_Update_StampsUpdatedAtWhenMissing(t *testing.T) {
	svc, _ := newTestEntitySvc(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, "tasks", json.RawMessage(`{"title":"x","project_id":"p1"}`))
	require.NoError(t, err)

	doc, err := svc.Update(ctx, "tasks", "generated-id", models.Patch{"title": "renamed", "updated_at": ""})
	require.NoError(t, err)

	var updated map[string]any
	require.NoError(t, json.Unmarshal(doc, &updated))
	assert.Equal(t, "2026-03-14T12:00:00Z", updated["updated_at"])
}

func TestEntityService_Update_RejectsInvalidMergeResult(t *testing.T) {
	svc, _ := newTestEntitySvc(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, "tasks", json.RawMessage(`{"title":"x","project_id":"p1"}`))
	require.NoError(t, err)

	_, err = svc.Update(ctx, "tasks", "generated-id", models.Patch{"status": "paused"})
	require.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestEntityService_Update_NotFound(t *testing.T) {
	svc, _ := newTestEntitySvc(t)

	_, err := svc.Update(context.Background(), "tasks", "ghost", models.Patch{"title": "x"})
	require.ErrorIs(t, err, store.ErrEntityNotFound)
}

func TestEntityService_Delete(t *testing.T) {
	svc, repo := newTestEntitySvc(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, "projects", json.RawMessage(`{"name":"p"}`))
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, "projects", "generated-id"))
	assert.Empty(t, repo.table("projects"))
}
