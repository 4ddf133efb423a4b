package service

import (
	"github.com/ovoronin/go-issue-tracker/internal/adapter"
	"github.com/ovoronin/go-issue-tracker/internal/logger"
	"github.com/ovoronin/go-issue-tracker/models"
)

// ClientServices wires one synchronization store per entity kind plus
// the cross-cutting services a client process needs.
type ClientServices struct {
	Session SessionService

	Projects      CollectionStore[models.Project]
	Tasks         CollectionStore[models.Task]
	Bugs          CollectionStore[models.Bug]
	Notifications NotificationService

	TaskAttachments AttachmentService[models.Task]
	BugAttachments  AttachmentService[models.Bug]

	RefreshJob RefreshJob
}

// NewClientServices builds the full client service graph over one
// tracker adapter. The notification store starts unscoped; callers
// re-scope it to the signed-in user after authentication, via
// [CollectionStore.SetScope] with a recipient_id filter.
func NewClientServices(tracker adapter.TrackerAdapter, email adapter.EmailClient, log *logger.Logger) *ClientServices {
	session := NewSessionService(tracker, log)

	projects := NewCollectionStore[models.Project](tracker, nil, log)
	tasks := NewCollectionStore[models.Task](tracker, nil, log)
	bugs := NewCollectionStore[models.Bug](tracker, nil, log)
	notifications := NewNotificationService(tracker, email, "", log)

	return &ClientServices{
		Session:       session,
		Projects:      projects,
		Tasks:         tasks,
		Bugs:          bugs,
		Notifications: notifications,

		TaskAttachments: NewAttachmentService[models.Task](
			tasks, tracker, session,
			func(t models.Task) []models.Attachment { return t.Attachments },
			log,
		),
		BugAttachments: NewAttachmentService[models.Bug](
			bugs, tracker, session,
			func(b models.Bug) []models.Attachment { return b.Attachments },
			log,
		),

		RefreshJob: NewRefreshJob(log, projects, tasks, bugs, notifications),
	}
}
