package store

import (
	"context"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/ovoronin/go-issue-tracker/internal/config"
	"github.com/ovoronin/go-issue-tracker/internal/logger"
)

// diskFileStore keeps uploaded attachment files in one directory and
// addresses them as "<base URL>/<stored name>". Stored names carry a
// random prefix so uploads with the same filename never collide.
type diskFileStore struct {
	dir     string
	baseURL string
	logger  *logger.Logger
	newID   func() string
}

// NewDiskFileStore constructs a [FileStore] over the configured
// directory, creating it if needed.
func NewDiskFileStore(cfg config.Files, log *logger.Logger) (FileStore, error) {
	if err := os.MkdirAll(cfg.Dir, 0o755); err != nil {
		return nil, fmt.Errorf("error creating file store directory: %w", err)
	}

	return &diskFileStore{
		dir:     cfg.Dir,
		baseURL: strings.TrimSuffix(cfg.BaseURL, "/"),
		logger:  log,
		newID:   uuid.NewString,
	}, nil
}

// Save implements [FileStore].
func (s *diskFileStore) Save(_ context.Context, name string, content []byte) (string, error) {
	storedName := s.newID() + "_" + sanitizeFilename(name)

	if err := os.WriteFile(filepath.Join(s.dir, storedName), content, 0o644); err != nil {
		s.logger.Err(err).Str("file", name).Msg("error writing uploaded file")
		return "", fmt.Errorf("error writing uploaded file: %w", err)
	}

	return s.baseURL + "/" + storedName, nil
}

// Delete implements [FileStore].
func (s *diskFileStore) Delete(_ context.Context, url string) error {
	storedName, err := s.storedName(url)
	if err != nil {
		return err
	}

	if err = os.Remove(filepath.Join(s.dir, storedName)); err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%w: %s", ErrFileNotFound, url)
		}
		return fmt.Errorf("error removing stored file: %w", err)
	}

	return nil
}

// Open implements [FileStore].
func (s *diskFileStore) Open(_ context.Context, url string) ([]byte, error) {
	storedName, err := s.storedName(url)
	if err != nil {
		return nil, err
	}

	content, err := os.ReadFile(filepath.Join(s.dir, storedName))
	if os.IsNotExist(err) {
		return nil, fmt.Errorf("%w: %s", ErrFileNotFound, url)
	}
	if err != nil {
		return nil, fmt.Errorf("error reading stored file: %w", err)
	}

	return content, nil
}

// storedName maps a public URL, or a bare stored name, back to the
// on-disk file name. Only the final path element is used, so a crafted
// URL cannot escape the store directory. URLs pointing outside this
// store's base are rejected.
func (s *diskFileStore) storedName(url string) (string, error) {
	trimmed := strings.TrimPrefix(url, s.baseURL+"/")
	if strings.Contains(trimmed, "://") {
		return "", fmt.Errorf("%w: %s", ErrFileNotFound, url)
	}
	name := path.Base(trimmed)
	if name == "" || name == "." || name == "/" {
		return "", fmt.Errorf("%w: %s", ErrFileNotFound, url)
	}
	return name, nil
}

func sanitizeFilename(name string) string {
	name = path.Base(strings.ReplaceAll(name, "\\", "/"))
	if name == "" || name == "." || name == "/" {
		return "file"
	}
	return strings.ReplaceAll(name, " ", "_")
}
