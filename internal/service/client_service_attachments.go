package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/ovoronin/go-issue-tracker/internal/adapter"
	"github.com/ovoronin/go-issue-tracker/internal/logger"
	"github.com/ovoronin/go-issue-tracker/models"
)

// attachmentService implements [AttachmentService] on top of the
// entity's own collection store: the merged attachment list is
// persisted as a regular partial update, so the write-through
// guarantees of the store apply to attachment mutations too.
type attachmentService[E Entity[E]] struct {
	store   CollectionStore[E]
	files   adapter.FileClient
	session SessionService
	logger  *logger.Logger

	// list extracts the attachment slice from the concrete entity type.
	list func(E) []models.Attachment

	now   func() time.Time
	newID func() string
}

// NewAttachmentService builds the attachment manager for one entity
// kind. list must return the entity's attachment slice; it is how the
// generic service reads the field it cannot name.
func NewAttachmentService[E Entity[E]](
	store CollectionStore[E],
	files adapter.FileClient,
	session SessionService,
	list func(E) []models.Attachment,
	log *logger.Logger,
) AttachmentService[E] {
	return &attachmentService[E]{
		store:   store,
		files:   files,
		session: session,
		logger:  log,
		list:    list,
		now:     time.Now,
		newID:   uuid.NewString,
	}
}

// Upload implements [AttachmentService].
func (s *attachmentService[E]) Upload(ctx context.Context, entityID string, files []models.FileUpload) (UploadReport, error) {
	entity, ok := s.store.Find(entityID)
	if !ok {
		return UploadReport{}, fmt.Errorf("%w: %s", ErrStaleEntity, entityID)
	}

	results, err := s.files.Upload(ctx, files)
	if err != nil {
		return UploadReport{}, fmt.Errorf("%w: %w", ErrUpload, err)
	}

	var uploadedBy string
	if user, signedIn := s.session.CurrentUser(); signedIn {
		uploadedBy = user.UserID
	}

	report := UploadReport{}
	for _, res := range results {
		if res.Failed() {
			s.logger.Warn().Str("file", res.FileName).Str("reason", res.UploadError).Msg("file rejected by storage service")
			report.Failed++
			continue
		}
		report.Attached = append(report.Attached, models.Attachment{
			AttachmentID: s.newID(),
			Filename:     res.FileName,
			URL:          res.FileURL,
			UploadedBy:   uploadedBy,
			UploadedAt:   s.now().UTC(),
		})
	}

	if len(report.Attached) == 0 {
		return report, nil
	}

	// Copy before appending: the existing slice belongs to the cached
	// entity and must not be grown in place.
	existing := s.list(entity)
	merged := make([]models.Attachment, 0, len(existing)+len(report.Attached))
	merged = append(merged, existing...)
	merged = append(merged, report.Attached...)
	if _, err = s.store.Update(ctx, entityID, models.Patch{"attachments": merged}); err != nil {
		return UploadReport{}, err
	}

	return report, nil
}

// Remove implements [AttachmentService].
func (s *attachmentService[E]) Remove(ctx context.Context, entityID, attachmentID string) error {
	entity, ok := s.store.Find(entityID)
	if !ok {
		return fmt.Errorf("%w: %s", ErrStaleEntity, entityID)
	}

	attachments := s.list(entity)
	idx := -1
	for i, att := range attachments {
		if att.AttachmentID == attachmentID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return fmt.Errorf("%w: attachment %s", ErrNotFound, attachmentID)
	}

	// The stored file goes first. Failures are logged and swallowed:
	// an orphaned file is recoverable, a dangling descriptor is not.
	if url := attachments[idx].URL; url != "" {
		if err := s.files.DeleteFiles(ctx, []string{url}); err != nil {
			s.logger.Warn().Err(err).Str("url", url).Msg("failed to delete stored file, removing descriptor anyway")
		}
	}

	remaining := make([]models.Attachment, 0, len(attachments)-1)
	remaining = append(remaining, attachments[:idx]...)
	remaining = append(remaining, attachments[idx+1:]...)

	_, err := s.store.Update(ctx, entityID, models.Patch{"attachments": remaining})
	return err
}
