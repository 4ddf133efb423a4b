package tui

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/ovoronin/go-issue-tracker/internal/logger"
	"github.com/ovoronin/go-issue-tracker/internal/mock"
	"github.com/ovoronin/go-issue-tracker/internal/service"
	"github.com/ovoronin/go-issue-tracker/models"
)

func newTestApp(t *testing.T, ctrl *gomock.Controller, user models.User) (appModel, *mock.MockTrackerAdapter) {
	t.Helper()

	tracker := mock.NewMockTrackerAdapter(ctrl)
	email := mock.NewMockEmailClient(ctrl)
	services := service.NewClientServices(tracker, email, logger.Nop())

	return newMainAppModel(context.Background(), services, user), tracker
}

func loadCollection[E service.Entity[E]](t *testing.T, ctx context.Context, store service.CollectionStore[E], tracker *mock.MockTrackerAdapter, collection string, items ...E) {
	t.Helper()

	raws := make([]json.RawMessage, 0, len(items))
	for _, item := range items {
		raw, err := json.Marshal(item)
		require.NoError(t, err)
		raws = append(raws, raw)
	}
	tracker.EXPECT().List(ctx, collection, gomock.Any()).Return(raws, nil)
	require.NoError(t, store.FetchAll(ctx))
}

func TestCmdCreateBug_NotifiesProjectManager(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m, tracker := newTestApp(t, ctrl, models.User{UserID: "dev", Email: "dev@example.com"})
	ctx := m.ctx

	project := models.Project{Name: "Tracker", ProjectManagerID: "mgr"}
	project.ID = "p1"
	loadCollection(t, ctx, m.services.Projects, tracker, "projects", project)

	tracker.EXPECT().Create(ctx, "bugs", gomock.Any()).DoAndReturn(
		func(_ context.Context, _ string, entity any) (json.RawMessage, error) {
			bug := entity.(models.Bug)
			bug.ID = "b1"
			return json.Marshal(bug)
		})
	tracker.EXPECT().Create(ctx, "notifications", gomock.Any()).DoAndReturn(
		func(_ context.Context, _ string, entity any) (json.RawMessage, error) {
			n := entity.(models.Notification)
			assert.Equal(t, models.NotifyBugReported, n.Type)
			assert.Equal(t, "mgr", n.RecipientID)
			assert.Equal(t, "dev", n.SenderID)
			assert.Equal(t, "bug", n.LinkedType)
			assert.Equal(t, "b1", n.LinkedID)
			n.ID = "n1"
			return json.Marshal(n)
		})

	msg := m.cmdCreateBug(models.Bug{
		Title:      "crash on save",
		Severity:   models.SeverityMajor,
		Status:     models.BugNew,
		ProjectID:  "p1",
		ReporterID: "dev",
	})()

	saved, ok := msg.(entitySavedMsg)
	require.True(t, ok)
	require.NoError(t, saved.err)
}

func TestCmdCreateBug_NoManagerSkipsNotification(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m, tracker := newTestApp(t, ctrl, models.User{UserID: "dev"})
	ctx := m.ctx

	project := models.Project{Name: "Tracker"}
	project.ID = "p1"
	loadCollection(t, ctx, m.services.Projects, tracker, "projects", project)

	tracker.EXPECT().Create(ctx, "bugs", gomock.Any()).DoAndReturn(
		func(_ context.Context, _ string, entity any) (json.RawMessage, error) {
			bug := entity.(models.Bug)
			bug.ID = "b1"
			return json.Marshal(bug)
		})

	msg := m.cmdCreateBug(models.Bug{Title: "t", ProjectID: "p1", ReporterID: "dev"})()

	saved, ok := msg.(entitySavedMsg)
	require.True(t, ok)
	require.NoError(t, saved.err)
}

func TestCmdUploadAttachment_AttachesFileToTask(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m, tracker := newTestApp(t, ctrl, models.User{UserID: "dev"})
	ctx := m.ctx

	task := models.Task{Title: "with files", ProjectID: "p1"}
	task.ID = "t1"
	loadCollection(t, ctx, m.services.Tasks, tracker, "tasks", task)

	path := filepath.Join(t.TempDir(), "notes.txt")
	require.NoError(t, os.WriteFile(path, []byte("hello"), 0o600))

	tracker.EXPECT().Upload(ctx, []models.FileUpload{{Name: "notes.txt", Content: []byte("hello")}}).
		Return([]models.UploadResult{{FileName: "notes.txt", FileURL: "files/notes.txt"}}, nil)
	tracker.EXPECT().Update(ctx, "tasks", "t1", gomock.Any()).DoAndReturn(
		func(_ context.Context, _, _ string, patch models.Patch) (json.RawMessage, error) {
			attached, ok := patch["attachments"].([]models.Attachment)
			require.True(t, ok)
			require.Len(t, attached, 1)
			assert.Equal(t, "notes.txt", attached[0].Filename)
			task.Attachments = attached
			return json.Marshal(task)
		})

	msg := m.cmdUploadAttachment("task", "t1", path)()

	changed, ok := msg.(attachmentsChangedMsg)
	require.True(t, ok)
	require.NoError(t, changed.err)
	assert.Zero(t, changed.failed)
}

func TestCmdUploadAttachment_UnreadableFile(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m, _ := newTestApp(t, ctrl, models.User{UserID: "dev"})

	msg := m.cmdUploadAttachment("task", "t1", filepath.Join(t.TempDir(), "ghost.txt"))()

	changed, ok := msg.(attachmentsChangedMsg)
	require.True(t, ok)
	require.Error(t, changed.err)
}

func TestCmdRemoveAttachment_RemovesFromBug(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m, tracker := newTestApp(t, ctrl, models.User{UserID: "dev"})
	ctx := m.ctx

	bug := models.Bug{Title: "b", ProjectID: "p1"}
	bug.ID = "b1"
	bug.Attachments = []models.Attachment{{AttachmentID: "att-1", Filename: "log.txt", URL: "files/log.txt"}}
	loadCollection(t, ctx, m.services.Bugs, tracker, "bugs", bug)

	tracker.EXPECT().DeleteFiles(ctx, []string{"files/log.txt"}).Return(nil)
	tracker.EXPECT().Update(ctx, "bugs", "b1", gomock.Any()).DoAndReturn(
		func(_ context.Context, _, _ string, patch models.Patch) (json.RawMessage, error) {
			remaining, ok := patch["attachments"].([]models.Attachment)
			require.True(t, ok)
			assert.Empty(t, remaining)
			bug.Attachments = remaining
			return json.Marshal(bug)
		})

	msg := m.cmdRemoveAttachment("bug", "b1", "att-1")()

	changed, ok := msg.(attachmentsChangedMsg)
	require.True(t, ok)
	require.NoError(t, changed.err)
}
