package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/ovoronin/go-issue-tracker/internal/adapter"
	"github.com/ovoronin/go-issue-tracker/internal/logger"
	"github.com/ovoronin/go-issue-tracker/models"
)

// notificationService is the notification collection store plus the
// read-state and delivery extras. The embedded store does all the
// synchronization work; this layer only adds domain operations that
// are themselves expressed as regular store calls.
type notificationService struct {
	CollectionStore[models.Notification]

	email  adapter.EmailClient
	logger *logger.Logger
	now    func() time.Time

	// wg tracks in-flight email goroutines so tests and shutdown can
	// wait for them.
	wg sync.WaitGroup
}

// NewNotificationService builds the notification store for one
// recipient. The store is scoped to recipientID, so fetches only ever
// load that user's feed.
func NewNotificationService(client adapter.CollectionClient, email adapter.EmailClient, recipientID string, log *logger.Logger) NotificationService {
	scope := map[string]string{"recipient_id": recipientID}
	return &notificationService{
		CollectionStore: NewCollectionStore[models.Notification](client, scope, log),
		email:           email,
		logger:          log,
		now:             time.Now,
	}
}

// UnreadCount implements [NotificationService].
func (s *notificationService) UnreadCount() int {
	count := 0
	for _, n := range s.Items() {
		if !n.IsRead {
			count++
		}
	}
	return count
}

// MarkRead implements [NotificationService].
func (s *notificationService) MarkRead(ctx context.Context, id string) error {
	readAt := s.now().UTC()
	_, err := s.Update(ctx, id, models.Patch{
		"is_read": true,
		"read_at": readAt,
	})
	return err
}

// MarkAllRead implements [NotificationService].
func (s *notificationService) MarkAllRead(ctx context.Context) error {
	var firstErr error
	for _, n := range s.Items() {
		if n.IsRead {
			continue
		}
		if err := s.MarkRead(ctx, n.EntityID()); err != nil && firstErr == nil {
			firstErr = fmt.Errorf("mark notification %s read: %w", n.EntityID(), err)
		}
	}
	return firstErr
}

// Notify implements [NotificationService].
func (s *notificationService) Notify(ctx context.Context, draft models.Notification, recipientEmail string) (models.Notification, error) {
	created, err := s.Create(ctx, draft)
	if err != nil {
		return models.Notification{}, err
	}

	if recipientEmail == "" {
		return created, nil
	}

	// Email delivery is decoupled from the record's lifetime: it runs
	// after the write has committed and survives the caller's context.
	msg := models.EmailMessage{
		To:      recipientEmail,
		Subject: created.Title,
		HTML:    fmt.Sprintf("<p>%s</p>", created.Message),
	}
	sendCtx := context.WithoutCancel(ctx)
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		if sendErr := s.email.Send(sendCtx, msg); sendErr != nil {
			s.logger.Warn().Err(sendErr).Str("notification_id", created.EntityID()).Msg("email dispatch failed")
		}
	}()

	return created, nil
}

// Wait blocks until all dispatched email goroutines have finished.
func (s *notificationService) Wait() {
	s.wg.Wait()
}
