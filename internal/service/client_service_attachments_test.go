package service

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/ovoronin/go-issue-tracker/internal/logger"
	"github.com/ovoronin/go-issue-tracker/internal/mock"
	"github.com/ovoronin/go-issue-tracker/models"
)

type stubSession struct {
	user     models.User
	signedIn bool
}

func (s *stubSession) SignUp(context.Context, models.Credentials) (models.User, error) {
	return s.user, nil
}

func (s *stubSession) SignIn(context.Context, models.Credentials) (models.User, error) {
	return s.user, nil
}

func (s *stubSession) CurrentUser() (models.User, bool) { return s.user, s.signedIn }

func (s *stubSession) Refresh(context.Context) (models.User, error) { return s.user, nil }

func (s *stubSession) SignOut() {}

func newTestAttachmentSvc(t *testing.T, ctrl *gomock.Controller) (
	*attachmentService[models.Task],
	*collectionStore[models.Task],
	*mock.MockCollectionClient,
	*mock.MockFileClient,
) {
	t.Helper()

	client := mock.NewMockCollectionClient(ctrl)
	files := mock.NewMockFileClient(ctrl)
	session := &stubSession{user: models.User{UserID: "u1"}, signedIn: true}

	store := NewCollectionStore[models.Task](client, nil, logger.Nop()).(*collectionStore[models.Task])
	store.now = func() time.Time { return time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC) }

	svc := NewAttachmentService[models.Task](
		store, files, session,
		func(task models.Task) []models.Attachment { return task.Attachments },
		logger.Nop(),
	).(*attachmentService[models.Task])
	svc.now = store.now
	svc.newID = func() string { return "att-new" }

	return svc, store, client, files
}

func loadTask(t *testing.T, ctx context.Context, store *collectionStore[models.Task], client *mock.MockCollectionClient, task models.Task) {
	t.Helper()
	raw, err := json.Marshal(task)
	require.NoError(t, err)
	client.EXPECT().List(ctx, "tasks", gomock.Any()).Return([]json.RawMessage{raw}, nil)
	require.NoError(t, store.FetchAll(ctx))
}

func TestAttachmentService_Upload_PartialSuccess(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, store, client, files := newTestAttachmentSvc(t, ctrl)
	ctx := context.Background()

	task := models.Task{Title: "with files"}
	task.ID = "t1"
	task.Attachments = []models.Attachment{{AttachmentID: "att-0", Filename: "old.txt", URL: "files/old.txt"}}
	loadTask(t, ctx, store, client, task)

	uploads := []models.FileUpload{
		{Name: "ok.png", Content: []byte("png")},
		{Name: "bad.bin", Content: []byte("bin")},
	}
	files.EXPECT().Upload(ctx, uploads).Return([]models.UploadResult{
		{FileName: "ok.png", FileURL: "files/ok.png"},
		{FileName: "bad.bin", UploadError: "file too large"},
	}, nil)

	client.EXPECT().Update(ctx, "tasks", "t1", gomock.Any()).DoAndReturn(
		func(_ context.Context, _, _ string, patch models.Patch) (json.RawMessage, error) {
			merged, ok := patch["attachments"].([]models.Attachment)
			require.True(t, ok)
			require.Len(t, merged, 2, "existing attachment kept, successful upload appended")
			assert.Equal(t, "att-0", merged[0].AttachmentID)
			assert.Equal(t, "att-new", merged[1].AttachmentID)
			assert.Equal(t, "files/ok.png", merged[1].URL)
			assert.Equal(t, "u1", merged[1].UploadedBy)

			task.Attachments = merged
			return json.Marshal(task)
		})

	report, err := svc.Upload(ctx, "t1", uploads)
	require.NoError(t, err)
	assert.Len(t, report.Attached, 1)
	assert.Equal(t, 1, report.Failed)
}

func TestAttachmentService_Upload_AllRejectedSkipsUpdate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, store, client, files := newTestAttachmentSvc(t, ctrl)
	ctx := context.Background()

	task := models.Task{Title: "t"}
	task.ID = "t1"
	loadTask(t, ctx, store, client, task)

	files.EXPECT().Upload(ctx, gomock.Any()).Return([]models.UploadResult{
		{FileName: "a", UploadError: "quota"},
		{FileName: "b", UploadError: "quota"},
	}, nil)

	report, err := svc.Upload(ctx, "t1", []models.FileUpload{{Name: "a"}, {Name: "b"}})
	require.NoError(t, err)
	assert.Empty(t, report.Attached)
	assert.Equal(t, 2, report.Failed)
}

func TestAttachmentService_Upload_UnknownEntity(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, _, _ := newTestAttachmentSvc(t, ctrl)

	_, err := svc.Upload(context.Background(), "missing", []models.FileUpload{{Name: "a"}})
	require.ErrorIs(t, err, ErrStaleEntity)
}

func TestAttachmentService_Upload_StorageFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, store, client, files := newTestAttachmentSvc(t, ctrl)
	ctx := context.Background()

	task := models.Task{Title: "t"}
	task.ID = "t1"
	loadTask(t, ctx, store, client, task)

	files.EXPECT().Upload(ctx, gomock.Any()).Return(nil, errors.New("storage down"))

	_, err := svc.Upload(ctx, "t1", []models.FileUpload{{Name: "a"}})
	require.ErrorIs(t, err, ErrUpload)
}

func TestAttachmentService_Remove_ByAttachmentID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, store, client, files := newTestAttachmentSvc(t, ctrl)
	ctx := context.Background()

	task := models.Task{Title: "t"}
	task.ID = "t1"
	task.Attachments = []models.Attachment{
		{AttachmentID: "att-1", URL: "files/a.txt"},
		{AttachmentID: "att-2", URL: "files/b.txt"},
	}
	loadTask(t, ctx, store, client, task)

	files.EXPECT().DeleteFiles(ctx, []string{"files/a.txt"}).Return(nil)
	client.EXPECT().Update(ctx, "tasks", "t1", gomock.Any()).DoAndReturn(
		func(_ context.Context, _, _ string, patch models.Patch) (json.RawMessage, error) {
			remaining, ok := patch["attachments"].([]models.Attachment)
			require.True(t, ok)
			require.Len(t, remaining, 1)
			assert.Equal(t, "att-2", remaining[0].AttachmentID)

			task.Attachments = remaining
			return json.Marshal(task)
		})

	require.NoError(t, svc.Remove(ctx, "t1", "att-1"))
}

func TestAttachmentService_Remove_FileDeletionFailureStillRemoves(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, store, client, files := newTestAttachmentSvc(t, ctrl)
	ctx := context.Background()

	task := models.Task{Title: "t"}
	task.ID = "t1"
	task.Attachments = []models.Attachment{{AttachmentID: "att-1", URL: "files/a.txt"}}
	loadTask(t, ctx, store, client, task)

	files.EXPECT().DeleteFiles(ctx, []string{"files/a.txt"}).Return(errors.New("404"))
	client.EXPECT().Update(ctx, "tasks", "t1", gomock.Any()).DoAndReturn(
		func(_ context.Context, _, _ string, patch models.Patch) (json.RawMessage, error) {
			task.Attachments = nil
			return json.Marshal(task)
		})

	require.NoError(t, svc.Remove(ctx, "t1", "att-1"))
}

func TestAttachmentService_Remove_UnknownAttachment(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, store, client, _ := newTestAttachmentSvc(t, ctrl)
	ctx := context.Background()

	task := models.Task{Title: "t"}
	task.ID = "t1"
	loadTask(t, ctx, store, client, task)

	err := svc.Remove(ctx, "t1", "att-ghost")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestAttachmentService_Remove_UnknownEntity(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, _, _ := newTestAttachmentSvc(t, ctrl)

	err := svc.Remove(context.Background(), "missing", "att-1")
	require.ErrorIs(t, err, ErrStaleEntity)
}

func TestAttachmentService_Upload_LeavesCachedSliceIntact(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, store, client, files := newTestAttachmentSvc(t, ctrl)
	ctx := context.Background()

	task := models.Task{Title: "t"}
	task.ID = "t1"
	loadTask(t, ctx, store, client, task)

	// Cached slice with spare capacity; growing it in place would write
	// the new descriptor into backing[1].
	backing := make([]models.Attachment, 2)
	backing[0] = models.Attachment{AttachmentID: "att-0", URL: "files/old.txt"}
	backing[1] = models.Attachment{AttachmentID: "spare"}
	store.items[0].Attachments = backing[:1]

	files.EXPECT().Upload(ctx, gomock.Any()).Return([]models.UploadResult{
		{FileName: "new.png", FileURL: "files/new.png"},
	}, nil)
	client.EXPECT().Update(ctx, "tasks", "t1", gomock.Any()).DoAndReturn(
		func(_ context.Context, _, _ string, patch models.Patch) (json.RawMessage, error) {
			task.Attachments = patch["attachments"].([]models.Attachment)
			return json.Marshal(task)
		})

	_, err := svc.Upload(ctx, "t1", []models.FileUpload{{Name: "new.png"}})
	require.NoError(t, err)

	assert.Equal(t, "spare", backing[1].AttachmentID)
}
