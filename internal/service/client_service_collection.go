package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/ovoronin/go-issue-tracker/internal/adapter"
	"github.com/ovoronin/go-issue-tracker/internal/logger"
	"github.com/ovoronin/go-issue-tracker/models"
)

// collectionStore is the write-through cache behind [CollectionStore].
//
// One instance exists per entity kind. All state transitions happen
// under mu, at the well-defined points after an awaited remote response;
// fetchGen implements the ordering contract: every FetchAll bumps the
// generation, and a fetch that resolves under a stale generation throws
// its result away instead of clobbering a newer one.
type collectionStore[E Entity[E]] struct {
	client adapter.CollectionClient
	logger *logger.Logger
	now    func() time.Time

	collection string

	mu       sync.RWMutex
	items    []E
	scope    map[string]string
	loading  bool
	fetchGen uint64
}

// NewCollectionStore builds the synchronization store for one entity
// kind. The collection name comes from the entity type itself; scope is
// the initial set of equality filters (nil tracks the whole collection).
// The store is empty until the first FetchAll.
func NewCollectionStore[E Entity[E]](client adapter.CollectionClient, scope map[string]string, log *logger.Logger) CollectionStore[E] {
	var zero E
	return &collectionStore[E]{
		client:     client,
		logger:     log,
		now:        time.Now,
		collection: zero.Collection(),
		scope:      cloneScope(scope),
	}
}

// Items implements [CollectionStore]. The returned slice is a copy; the
// backing collection is mutated only by the store itself.
func (s *collectionStore[E]) Items() []E {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]E, len(s.items))
	copy(out, s.items)
	return out
}

// Find implements [CollectionStore].
func (s *collectionStore[E]) Find(id string) (E, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, item := range s.items {
		if item.EntityID() == id {
			return item, true
		}
	}

	var zero E
	return zero, false
}

// Loading implements [CollectionStore].
func (s *collectionStore[E]) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}

// Scope implements [CollectionStore].
func (s *collectionStore[E]) Scope() map[string]string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneScope(s.scope)
}

// FetchAll implements [CollectionStore].
func (s *collectionStore[E]) FetchAll(ctx context.Context) error {
	s.mu.Lock()
	s.fetchGen++
	gen := s.fetchGen
	scope := cloneScope(s.scope)
	s.loading = true
	s.mu.Unlock()

	raws, err := s.client.List(ctx, s.collection, models.NewestFirst(scope))
	if err != nil {
		s.finishFetch(gen)
		s.logger.Warn().Err(err).Str("collection", s.collection).Msg("collection fetch failed, keeping previous state")
		return fmt.Errorf("%w: %w", ErrFetchFailed, err)
	}

	items := make([]E, 0, len(raws))
	for _, raw := range raws {
		var item E
		if err = json.Unmarshal(raw, &item); err != nil {
			s.finishFetch(gen)
			return fmt.Errorf("%w: decode %s item: %w", ErrFetchFailed, s.collection, err)
		}
		items = append(items, item)
	}

	// The server already orders by created_at descending; sorting again
	// keeps the invariant even against a misbehaving backend.
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].CreatedTime().After(items[j].CreatedTime())
	})

	s.mu.Lock()
	defer s.mu.Unlock()
	if gen != s.fetchGen {
		// A newer fetch has started since; its result wins.
		return nil
	}
	s.items = items
	s.loading = false

	return nil
}

// finishFetch clears the loading flag unless a newer fetch owns it.
func (s *collectionStore[E]) finishFetch(gen uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if gen == s.fetchGen {
		s.loading = false
	}
}

// SetScope implements [CollectionStore].
func (s *collectionStore[E]) SetScope(ctx context.Context, scope map[string]string) error {
	s.mu.Lock()
	s.scope = cloneScope(scope)
	s.mu.Unlock()

	return s.FetchAll(ctx)
}

// Create implements [CollectionStore].
func (s *collectionStore[E]) Create(ctx context.Context, draft E) (E, error) {
	var zero E

	now := s.now().UTC()
	draft = draft.Stamped(now, now)

	raw, err := s.client.Create(ctx, s.collection, draft)
	if err != nil {
		s.logger.Err(err).Str("collection", s.collection).Msg("create rejected by remote store")
		return zero, fmt.Errorf("%w: %w", ErrRemoteWrite, err)
	}

	var created E
	if err = json.Unmarshal(raw, &created); err != nil {
		return zero, fmt.Errorf("%w: decode create response: %w", ErrRemoteWrite, err)
	}

	s.mu.Lock()
	s.items = append([]E{created}, s.items...)
	s.mu.Unlock()

	return created, nil
}

// Update implements [CollectionStore].
func (s *collectionStore[E]) Update(ctx context.Context, id string, patch models.Patch) (E, error) {
	var zero E

	p := patch.Clone()
	p["updated_at"] = s.now().UTC()

	raw, err := s.client.Update(ctx, s.collection, id, p)
	if err != nil {
		if errors.Is(err, adapter.ErrNotFound) {
			return zero, fmt.Errorf("%w: %s/%s", ErrNotFound, s.collection, id)
		}
		s.logger.Err(err).Str("collection", s.collection).Str("id", id).Msg("update rejected by remote store")
		return zero, fmt.Errorf("%w: %w", ErrRemoteWrite, err)
	}

	var updated E
	if err = json.Unmarshal(raw, &updated); err != nil {
		return zero, fmt.Errorf("%w: decode update response: %w", ErrRemoteWrite, err)
	}

	s.mu.Lock()
	for i := range s.items {
		if s.items[i].EntityID() == id {
			s.items[i] = updated
			break
		}
	}
	s.mu.Unlock()

	return updated, nil
}

// Delete implements [CollectionStore].
func (s *collectionStore[E]) Delete(ctx context.Context, id string) error {
	if err := s.client.Delete(ctx, s.collection, id); err != nil {
		if errors.Is(err, adapter.ErrNotFound) {
			return fmt.Errorf("%w: %s/%s", ErrNotFound, s.collection, id)
		}
		s.logger.Err(err).Str("collection", s.collection).Str("id", id).Msg("delete rejected by remote store")
		return fmt.Errorf("%w: %w", ErrRemoteWrite, err)
	}

	s.mu.Lock()
	for i := range s.items {
		if s.items[i].EntityID() == id {
			s.items = append(s.items[:i], s.items[i+1:]...)
			break
		}
	}
	s.mu.Unlock()

	return nil
}

func cloneScope(scope map[string]string) map[string]string {
	if len(scope) == 0 {
		return nil
	}
	out := make(map[string]string, len(scope))
	for k, v := range scope {
		out[k] = v
	}
	return out
}
