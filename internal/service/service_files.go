package service

import (
	"context"
	"errors"

	"github.com/ovoronin/go-issue-tracker/internal/logger"
	"github.com/ovoronin/go-issue-tracker/internal/store"
	"github.com/ovoronin/go-issue-tracker/models"
)

// fileService implements [FileService] over the on-disk file store.
type fileService struct {
	files  store.FileStore
	logger *logger.Logger
}

// NewFileService constructs the attachment file service.
func NewFileService(files store.FileStore, log *logger.Logger) FileService {
	return &fileService{
		files:  files,
		logger: log,
	}
}

// Upload implements [FileService]. Each file is stored independently;
// the result slice always has one entry per input file.
func (s *fileService) Upload(ctx context.Context, files []models.FileUpload) []models.UploadResult {
	log := logger.FromContext(ctx)

	results := make([]models.UploadResult, 0, len(files))
	for _, file := range files {
		url, err := s.files.Save(ctx, file.Name, file.Content)
		if err != nil {
			log.Err(err).Str("file", file.Name).Msg("file upload failed")
			results = append(results, models.UploadResult{
				FileName:    file.Name,
				UploadError: err.Error(),
			})
			continue
		}
		results = append(results, models.UploadResult{
			FileName: file.Name,
			FileURL:  url,
		})
	}
	return results
}

// Delete implements [FileService].
func (s *fileService) Delete(ctx context.Context, urls []string) error {
	log := logger.FromContext(ctx)

	var firstErr error
	for _, url := range urls {
		err := s.files.Delete(ctx, url)
		if err == nil {
			continue
		}
		// Already-gone files are fine; the descriptor removal is what
		// the caller cares about.
		if errors.Is(err, store.ErrFileNotFound) {
			log.Warn().Str("url", url).Msg("stored file already gone")
			continue
		}
		log.Err(err).Str("url", url).Msg("file deletion failed")
		if firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

// Open implements [FileService].
func (s *fileService) Open(ctx context.Context, url string) ([]byte, error) {
	return s.files.Open(ctx, url)
}
