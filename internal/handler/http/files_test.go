package http

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/ovoronin/go-issue-tracker/internal/store"
	"github.com/ovoronin/go-issue-tracker/models"
)

// multipartUpload builds a multipart request body with the given files
// under the "files" form field.
func multipartUpload(t *testing.T, files map[string][]byte) (*bytes.Buffer, string) {
	t.Helper()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	for name, content := range files {
		part, err := writer.CreateFormFile("files", name)
		require.NoError(t, err)
		_, err = part.Write(content)
		require.NoError(t, err)
	}
	require.NoError(t, writer.Close())

	return body, writer.FormDataContentType()
}

func TestHandler_UploadFiles(t *testing.T) {
	th := newTestHandler(t)
	th.expectAuthorized("u1")

	body, contentType := multipartUpload(t, map[string][]byte{
		"report.pdf": []byte("pdf bytes"),
	})

	th.files.EXPECT().
		Upload(gomock.Any(), []models.FileUpload{{Name: "report.pdf", Content: []byte("pdf bytes")}}).
		Return([]models.UploadResult{{FileName: "report.pdf", FileURL: "http://localhost:8080/files/x_report.pdf"}})

	req := httptest.NewRequest(http.MethodPost, "/api/files", body)
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Authorization", "Bearer good-token")
	rec := httptest.NewRecorder()
	th.router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var results []models.UploadResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &results))
	require.Len(t, results, 1)
	assert.Equal(t, "http://localhost:8080/files/x_report.pdf", results[0].FileURL)
}

func TestHandler_UploadFiles_NoFiles(t *testing.T) {
	th := newTestHandler(t)
	th.expectAuthorized("u1")

	body, contentType := multipartUpload(t, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/files", body)
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Authorization", "Bearer good-token")
	rec := httptest.NewRecorder()
	th.router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandler_DeleteFiles(t *testing.T) {
	th := newTestHandler(t)
	th.expectAuthorized("u1")

	urls := []string{"http://localhost:8080/files/a", "http://localhost:8080/files/b"}
	th.files.EXPECT().Delete(gomock.Any(), urls).Return(nil)

	rec := th.do(t, http.MethodDelete, "/api/files",
		`{"urls":["http://localhost:8080/files/a","http://localhost:8080/files/b"]}`, true)

	require.Equal(t, http.StatusNoContent, rec.Code)
}

func TestHandler_ServeFile(t *testing.T) {
	th := newTestHandler(t)
	th.expectAuthorized("u1")

	th.files.EXPECT().Open(gomock.Any(), "x_report.pdf").Return([]byte("pdf bytes"), nil)

	rec := th.do(t, http.MethodGet, "/files/x_report.pdf", "", true)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "pdf bytes", rec.Body.String())
}

func TestHandler_ServeFile_Missing(t *testing.T) {
	th := newTestHandler(t)
	th.expectAuthorized("u1")

	th.files.EXPECT().Open(gomock.Any(), "ghost").Return(nil, store.ErrFileNotFound)

	rec := th.do(t, http.MethodGet, "/files/ghost", "", true)
	require.Equal(t, http.StatusNotFound, rec.Code)
}
