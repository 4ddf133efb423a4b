package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/ovoronin/go-issue-tracker/internal/logger"
	"github.com/ovoronin/go-issue-tracker/internal/mock"
	"github.com/ovoronin/go-issue-tracker/models"
)

func newTestNotificationSvc(t *testing.T, ctrl *gomock.Controller) (
	*notificationService,
	*mock.MockCollectionClient,
	*mock.MockEmailClient,
) {
	t.Helper()

	client := mock.NewMockCollectionClient(ctrl)
	email := mock.NewMockEmailClient(ctrl)

	svc := NewNotificationService(client, email, "u1", logger.Nop()).(*notificationService)
	svc.now = func() time.Time { return time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC) }

	return svc, client, email
}

func rawNotifications(t *testing.T, notifications ...models.Notification) []json.RawMessage {
	t.Helper()
	raws := make([]json.RawMessage, 0, len(notifications))
	for _, n := range notifications {
		raw, err := json.Marshal(n)
		require.NoError(t, err)
		raws = append(raws, raw)
	}
	return raws
}

func feedNotification(id string, read bool, createdAt time.Time) models.Notification {
	n := models.Notification{
		Title:       "title " + id,
		Message:     "message " + id,
		Type:        models.NotifyStatusChanged,
		RecipientID: "u1",
		IsRead:      read,
	}
	n.ID = id
	n.CreatedAt = createdAt
	n.UpdatedAt = createdAt
	return n
}

// The linked-entity reference fields must not shadow the Meta
// identifier accessor the stores key on.
func TestNotification_LinkedEntityDoesNotShadowID(t *testing.T) {
	var _ Entity[models.Notification] = models.Notification{}

	n := feedNotification("n1", false, time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC))
	n.LinkedType = "task"
	n.LinkedID = "t1"

	assert.Equal(t, "n1", n.EntityID())
}

func TestNotificationService_ScopedToRecipient(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, client, _ := newTestNotificationSvc(t, ctrl)
	ctx := context.Background()

	client.EXPECT().List(ctx, "notifications", models.NewestFirst(map[string]string{"recipient_id": "u1"})).
		Return(nil, nil)

	require.NoError(t, svc.FetchAll(ctx))
}

func TestNotificationService_MarkAllRead(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, client, _ := newTestNotificationSvc(t, ctrl)
	ctx := context.Background()

	t0 := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	feed := []models.Notification{
		feedNotification("n5", true, t0.Add(4*time.Hour)),
		feedNotification("n4", false, t0.Add(3*time.Hour)),
		feedNotification("n3", true, t0.Add(2*time.Hour)),
		feedNotification("n2", false, t0.Add(time.Hour)),
		feedNotification("n1", true, t0),
	}
	client.EXPECT().List(ctx, "notifications", gomock.Any()).Return(rawNotifications(t, feed...), nil)
	require.NoError(t, svc.FetchAll(ctx))
	require.Equal(t, 2, svc.UnreadCount())

	readAt := svc.now().UTC()
	for _, id := range []string{"n4", "n2"} {
		id := id
		client.EXPECT().Update(ctx, "notifications", id, gomock.Any()).DoAndReturn(
			func(_ context.Context, _, _ string, patch models.Patch) (json.RawMessage, error) {
				assert.Equal(t, true, patch["is_read"])
				assert.Equal(t, readAt, patch["read_at"])

				n, ok := svc.Find(id)
				require.True(t, ok)
				n.IsRead = true
				n.ReadAt = &readAt
				return json.Marshal(n)
			})
	}

	require.NoError(t, svc.MarkAllRead(ctx))

	assert.Equal(t, 0, svc.UnreadCount())
	for _, id := range []string{"n4", "n2"} {
		n, ok := svc.Find(id)
		require.True(t, ok)
		assert.True(t, n.IsRead)
		require.NotNil(t, n.ReadAt)
		assert.Equal(t, readAt, *n.ReadAt)
	}
}

func TestNotificationService_MarkAllRead_ReportsFirstFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, client, _ := newTestNotificationSvc(t, ctrl)
	ctx := context.Background()

	t0 := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	feed := []models.Notification{
		feedNotification("n2", false, t0.Add(time.Hour)),
		feedNotification("n1", false, t0),
	}
	client.EXPECT().List(ctx, "notifications", gomock.Any()).Return(rawNotifications(t, feed...), nil)
	require.NoError(t, svc.FetchAll(ctx))

	client.EXPECT().Update(ctx, "notifications", "n2", gomock.Any()).Return(nil, errors.New("503"))
	client.EXPECT().Update(ctx, "notifications", "n1", gomock.Any()).DoAndReturn(
		func(_ context.Context, _, _ string, _ models.Patch) (json.RawMessage, error) {
			n, _ := svc.Find("n1")
			n.IsRead = true
			return json.Marshal(n)
		})

	err := svc.MarkAllRead(ctx)
	require.ErrorIs(t, err, ErrRemoteWrite)

	// The failure did not stop the remaining updates.
	assert.Equal(t, 1, svc.UnreadCount())
}

func TestNotificationService_Notify_DispatchesEmail(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, client, email := newTestNotificationSvc(t, ctrl)
	ctx := context.Background()

	draft := models.Notification{
		Title:       "Task assigned",
		Message:     "You were assigned a task",
		Type:        models.NotifyTaskAssigned,
		RecipientID: "u2",
	}

	client.EXPECT().Create(ctx, "notifications", gomock.Any()).DoAndReturn(
		func(_ context.Context, _ string, entity any) (json.RawMessage, error) {
			n := entity.(models.Notification)
			n.ID = "n1"
			return json.Marshal(n)
		})
	email.EXPECT().Send(gomock.Any(), models.EmailMessage{
		To:      "teammate@example.com",
		Subject: "Task assigned",
		HTML:    fmt.Sprintf("<p>%s</p>", draft.Message),
	}).Return(nil)

	created, err := svc.Notify(ctx, draft, "teammate@example.com")
	require.NoError(t, err)
	assert.Equal(t, "n1", created.ID)

	svc.Wait()
}

func TestNotificationService_Notify_EmailFailureSwallowed(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, client, email := newTestNotificationSvc(t, ctrl)
	ctx := context.Background()

	client.EXPECT().Create(ctx, "notifications", gomock.Any()).DoAndReturn(
		func(_ context.Context, _ string, entity any) (json.RawMessage, error) {
			n := entity.(models.Notification)
			n.ID = "n1"
			return json.Marshal(n)
		})
	email.EXPECT().Send(gomock.Any(), gomock.Any()).Return(errors.New("gateway timeout"))

	_, err := svc.Notify(ctx, models.Notification{Title: "t", RecipientID: "u2"}, "teammate@example.com")
	require.NoError(t, err, "email failure must not fail notification creation")

	svc.Wait()
}

func TestNotificationService_Notify_NoEmailWithoutAddress(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, client, _ := newTestNotificationSvc(t, ctrl)
	ctx := context.Background()

	client.EXPECT().Create(ctx, "notifications", gomock.Any()).DoAndReturn(
		func(_ context.Context, _ string, entity any) (json.RawMessage, error) {
			n := entity.(models.Notification)
			n.ID = "n1"
			return json.Marshal(n)
		})

	_, err := svc.Notify(ctx, models.Notification{Title: "t", RecipientID: "u2"}, "")
	require.NoError(t, err)
	svc.Wait()
}

func TestNotificationService_Notify_CreateFailureNoEmail(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, client, _ := newTestNotificationSvc(t, ctrl)
	ctx := context.Background()

	client.EXPECT().Create(ctx, "notifications", gomock.Any()).Return(nil, errors.New("500"))

	_, err := svc.Notify(ctx, models.Notification{Title: "t", RecipientID: "u2"}, "teammate@example.com")
	require.ErrorIs(t, err, ErrRemoteWrite)
}
