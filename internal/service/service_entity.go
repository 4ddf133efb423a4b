package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/ovoronin/go-issue-tracker/internal/logger"
	"github.com/ovoronin/go-issue-tracker/internal/store"
	"github.com/ovoronin/go-issue-tracker/models"
)

// entityService implements [EntityService]. Documents are handled as
// generic JSON objects; per-collection validation keeps the enum and
// required-field rules in one place.
type entityService struct {
	entities store.EntityRepository
	logger   *logger.Logger

	now   func() time.Time
	newID func() string
}

// NewEntityService constructs the server-side entity service.
func NewEntityService(entities store.EntityRepository, log *logger.Logger) EntityService {
	return &entityService{
		entities: entities,
		logger:   log,
		now:      time.Now,
		newID:    uuid.NewString,
	}
}

// List implements [EntityService].
func (s *entityService) List(ctx context.Context, collection string, query models.ListQuery) ([]json.RawMessage, error) {
	return s.entities.List(ctx, collection, query)
}

// Create implements [EntityService].
func (s *entityService) Create(ctx context.Context, collection string, doc json.RawMessage) (json.RawMessage, error) {
	log := logger.FromContext(ctx)

	fields, err := decodeDoc(doc)
	if err != nil {
		return nil, err
	}

	now := s.now().UTC()
	fields["id"] = s.newID()
	if docTime(fields, "created_at").IsZero() {
		fields["created_at"] = now.Format(time.RFC3339Nano)
	}
	if docTime(fields, "updated_at").IsZero() {
		fields["updated_at"] = now.Format(time.RFC3339Nano)
	}

	if err = validateDoc(collection, fields); err != nil {
		log.Err(err).Str("collection", collection).Msg("create rejected by validation")
		return nil, err
	}

	rec, err := buildRecord(fields)
	if err != nil {
		return nil, err
	}

	if err = s.entities.Insert(ctx, collection, rec); err != nil {
		return nil, err
	}

	return rec.Doc, nil
}

// Update implements [EntityService].
func (s *entityService) Update(ctx context.Context, collection, id string, patch models.Patch) (json.RawMessage, error) {
	log := logger.FromContext(ctx)

	return s.entities.ApplyPatch(ctx, collection, id, func(current json.RawMessage) (store.EntityRecord, error) {
		fields, err := decodeDoc(current)
		if err != nil {
			return store.EntityRecord{}, err
		}

		for key, value := range patch {
			// id and created_at never change after creation.
			if key == "id" || key == "created_at" {
				continue
			}
			fields[key] = value
		}
		if docTime(fields, "updated_at").IsZero() {
			fields["updated_at"] = s.now().UTC().Format(time.RFC3339Nano)
		}

		if err = validateDoc(collection, fields); err != nil {
			log.Err(err).Str("collection", collection).Str("id", id).Msg("update rejected by validation")
			return store.EntityRecord{}, err
		}

		return buildRecord(fields)
	})
}

// Delete implements [EntityService].
func (s *entityService) Delete(ctx context.Context, collection, id string) error {
	return s.entities.Delete(ctx, collection, id)
}

func decodeDoc(doc json.RawMessage) (map[string]any, error) {
	var fields map[string]any
	if err := json.Unmarshal(doc, &fields); err != nil {
		return nil, fmt.Errorf("%w: malformed document: %w", ErrInvalidDataProvided, err)
	}
	return fields, nil
}

func buildRecord(fields map[string]any) (store.EntityRecord, error) {
	doc, err := json.Marshal(fields)
	if err != nil {
		return store.EntityRecord{}, fmt.Errorf("encode document: %w", err)
	}

	return store.EntityRecord{
		ID:          docString(fields, "id"),
		ProjectID:   docString(fields, "project_id"),
		RecipientID: docString(fields, "recipient_id"),
		CreatedAt:   docTime(fields, "created_at"),
		UpdatedAt:   docTime(fields, "updated_at"),
		Doc:         doc,
	}, nil
}

func docString(fields map[string]any, key string) string {
	value, _ := fields[key].(string)
	return value
}

// docTime reads a timestamp field that may be a JSON string or, when a
// patch came straight from Go code, a time.Time value.
func docTime(fields map[string]any, key string) time.Time {
	switch value := fields[key].(type) {
	case time.Time:
		return value
	case string:
		if ts, err := time.Parse(time.RFC3339Nano, value); err == nil {
			return ts
		}
	}
	return time.Time{}
}
