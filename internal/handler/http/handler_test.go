package http

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/ovoronin/go-issue-tracker/internal/logger"
	"github.com/ovoronin/go-issue-tracker/internal/mock"
	"github.com/ovoronin/go-issue-tracker/internal/service"
	"github.com/ovoronin/go-issue-tracker/models"
)

// testHandler bundles a routed Handler with its service mocks.
type testHandler struct {
	handler  *Handler
	router   http.Handler
	entities *mock.MockEntityService
	auth     *mock.MockAuthService
	files    *mock.MockFileService
}

func newTestHandler(t *testing.T) *testHandler {
	t.Helper()
	ctrl := gomock.NewController(t)

	entities := mock.NewMockEntityService(ctrl)
	auth := mock.NewMockAuthService(ctrl)
	files := mock.NewMockFileService(ctrl)

	h := NewHandler(&service.Services{
		EntityService: entities,
		AuthService:   auth,
		FileService:   files,
	}, logger.Nop())

	return &testHandler{
		handler:  h,
		router:   h.Init(),
		entities: entities,
		auth:     auth,
		files:    files,
	}
}

// expectAuthorized makes the auth middleware accept "Bearer good-token"
// and attributes the request to the given user id.
func (th *testHandler) expectAuthorized(userID string) {
	th.auth.EXPECT().
		ParseToken(gomock.Any(), "good-token").
		Return(models.Token{UserID: userID}, nil)
}

func (th *testHandler) do(t *testing.T, method, target, body string, authorized bool) *httptest.ResponseRecorder {
	t.Helper()

	var reader *strings.Reader
	if body != "" {
		reader = strings.NewReader(body)
	} else {
		reader = strings.NewReader("")
	}

	req := httptest.NewRequest(method, target, reader)
	if authorized {
		req.Header.Set("Authorization", "Bearer good-token")
	}

	rec := httptest.NewRecorder()
	th.router.ServeHTTP(rec, req)
	return rec
}

func TestHandler_UnknownRoute(t *testing.T) {
	th := newTestHandler(t)

	rec := th.do(t, http.MethodGet, "/nope", "", false)
	require.Equal(t, http.StatusNotFound, rec.Code)
}
