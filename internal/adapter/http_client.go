package adapter

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/ovoronin/go-issue-tracker/internal/logger"
	"github.com/ovoronin/go-issue-tracker/models"
)

// HTTPClientConfig configures the tracker server adapter.
type HTTPClientConfig struct {
	BaseURL string
	Timeout time.Duration
}

// httpTrackerAdapter talks to the tracker REST API with a shared resty
// client. It implements [CollectionClient], [AuthClient] and
// [FileClient]. The bearer token obtained on login is kept on the
// struct under a mutex so concurrent fetches can read it safely.
type httpTrackerAdapter struct {
	client *resty.Client
	logger *logger.Logger

	mu    sync.RWMutex
	token string
}

// NewHTTPTrackerAdapter builds the adapter for the given server base
// URL. Defaults: http://localhost:8080 and a 15 second timeout.
func NewHTTPTrackerAdapter(cfg HTTPClientConfig, log *logger.Logger) TrackerAdapter {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "http://localhost:8080"
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 15 * time.Second
	}

	cli := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetTimeout(cfg.Timeout)

	return &httpTrackerAdapter{client: cli, logger: log}
}

func (h *httpTrackerAdapter) setToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

func (h *httpTrackerAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// List implements [CollectionClient].
func (h *httpTrackerAdapter) List(ctx context.Context, collection string, query models.ListQuery) ([]json.RawMessage, error) {
	req := h.authedRequest(ctx)
	for field, value := range query.Filter {
		req.SetQueryParam("filter["+field+"]", value)
	}
	if sort := encodeSort(query.Sort); sort != "" {
		req.SetQueryParam("sort", sort)
	}

	resp, err := req.Get("/api/" + collection)
	if err != nil {
		return nil, fmt.Errorf("list %s request: %w", collection, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var list models.ListResponse
	if err = json.Unmarshal(resp.Body(), &list); err != nil {
		return nil, fmt.Errorf("decode %s list response: %w", collection, err)
	}

	return list.Items, nil
}

// Create implements [CollectionClient].
func (h *httpTrackerAdapter) Create(ctx context.Context, collection string, entity any) (json.RawMessage, error) {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(entity).
		Post("/api/" + collection)
	if err != nil {
		return nil, fmt.Errorf("create %s request: %w", collection, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return json.RawMessage(bytes.Clone(resp.Body())), nil
}

// Update implements [CollectionClient].
func (h *httpTrackerAdapter) Update(ctx context.Context, collection, id string, patch models.Patch) (json.RawMessage, error) {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(patch).
		Patch("/api/" + collection + "/" + id)
	if err != nil {
		return nil, fmt.Errorf("update %s/%s request: %w", collection, id, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return json.RawMessage(bytes.Clone(resp.Body())), nil
}

// Delete implements [CollectionClient].
func (h *httpTrackerAdapter) Delete(ctx context.Context, collection, id string) error {
	resp, err := h.authedRequest(ctx).Delete("/api/" + collection + "/" + id)
	if err != nil {
		return fmt.Errorf("delete %s/%s request: %w", collection, id, err)
	}

	return mapHTTPError(resp)
}

// Register implements [AuthClient].
func (h *httpTrackerAdapter) Register(ctx context.Context, creds models.Credentials) (models.User, error) {
	return h.authRequest(ctx, "/api/auth/register", creds)
}

// Login implements [AuthClient].
func (h *httpTrackerAdapter) Login(ctx context.Context, creds models.Credentials) (models.User, error) {
	return h.authRequest(ctx, "/api/auth/login", creds)
}

func (h *httpTrackerAdapter) authRequest(ctx context.Context, path string, creds models.Credentials) (models.User, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(creds).
		Post(path)
	if err != nil {
		return models.User{}, fmt.Errorf("auth request %s: %w", path, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	token, err := parseBearerToken(resp.Header().Get("Authorization"))
	if err != nil {
		return models.User{}, fmt.Errorf("auth parse bearer token: %w", err)
	}

	var user models.User
	if err = json.Unmarshal(resp.Body(), &user); err != nil {
		return models.User{}, fmt.Errorf("decode auth response: %w", err)
	}

	h.setToken(token)
	return user, nil
}

// CurrentUser implements [AuthClient].
func (h *httpTrackerAdapter) CurrentUser(ctx context.Context) (models.User, error) {
	resp, err := h.authedRequest(ctx).Get("/api/auth/me")
	if err != nil {
		return models.User{}, fmt.Errorf("current user request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	var user models.User
	if err = json.Unmarshal(resp.Body(), &user); err != nil {
		return models.User{}, fmt.Errorf("decode current user response: %w", err)
	}

	return user, nil
}

// Logout implements [AuthClient].
func (h *httpTrackerAdapter) Logout() {
	h.setToken("")
}

// Upload implements [FileClient]. Files go up as one multipart request;
// the server answers with a per-file result list.
func (h *httpTrackerAdapter) Upload(ctx context.Context, files []models.FileUpload) ([]models.UploadResult, error) {
	req := h.authedRequest(ctx)
	for _, f := range files {
		req.SetFileReader("files", f.Name, bytes.NewReader(f.Content))
	}

	resp, err := req.Post("/api/files")
	if err != nil {
		return nil, fmt.Errorf("upload files request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var results []models.UploadResult
	if err = json.Unmarshal(resp.Body(), &results); err != nil {
		return nil, fmt.Errorf("decode upload response: %w", err)
	}

	return results, nil
}

// Delete implements [FileClient].
func (h *httpTrackerAdapter) DeleteFiles(ctx context.Context, urls []string) error {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(map[string][]string{"urls": urls}).
		Delete("/api/files")
	if err != nil {
		return fmt.Errorf("delete files request: %w", err)
	}

	return mapHTTPError(resp)
}

func (h *httpTrackerAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	return req
}

func encodeSort(sort map[string]int) string {
	parts := make([]string, 0, len(sort))
	for field, dir := range sort {
		if dir == models.SortDesc {
			field = "-" + field
		}
		parts = append(parts, field)
	}
	return strings.Join(parts, ",")
}

func parseBearerToken(value string) (string, error) {
	parts := strings.Split(strings.TrimSpace(value), " ")
	if len(parts) != 2 || parts[1] == "" {
		return "", fmt.Errorf("invalid authorization header")
	}
	return parts[1], nil
}
