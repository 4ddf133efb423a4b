package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/ovoronin/go-issue-tracker/internal/logger"
	"github.com/ovoronin/go-issue-tracker/internal/mock"
	"github.com/ovoronin/go-issue-tracker/models"
)

func newTestSessionSvc(t *testing.T, ctrl *gomock.Controller) (SessionService, *mock.MockAuthClient) {
	t.Helper()
	auth := mock.NewMockAuthClient(ctrl)
	return NewSessionService(auth, logger.Nop()), auth
}

func TestSessionService_SignIn(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, auth := newTestSessionSvc(t, ctrl)
	ctx := context.Background()

	creds := models.Credentials{Email: "dev@example.com", Password: "secret"}
	user := models.User{UserID: "u1", Email: creds.Email, DisplayName: "Dev"}
	auth.EXPECT().Login(ctx, creds).Return(user, nil)

	got, err := svc.SignIn(ctx, creds)
	require.NoError(t, err)
	assert.Equal(t, user, got)

	current, signedIn := svc.CurrentUser()
	require.True(t, signedIn)
	assert.Equal(t, user, current)
}

func TestSessionService_SignIn_Failure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, auth := newTestSessionSvc(t, ctrl)
	ctx := context.Background()

	auth.EXPECT().Login(ctx, gomock.Any()).Return(models.User{}, errors.New("bad credentials"))

	_, err := svc.SignIn(ctx, models.Credentials{Email: "dev@example.com", Password: "wrong"})
	require.Error(t, err)

	_, signedIn := svc.CurrentUser()
	assert.False(t, signedIn)
}

func TestSessionService_SignUp(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, auth := newTestSessionSvc(t, ctrl)
	ctx := context.Background()

	creds := models.Credentials{Email: "new@example.com", Password: "secret", DisplayName: "New Dev"}
	user := models.User{UserID: "u2", Email: creds.Email, DisplayName: creds.DisplayName}
	auth.EXPECT().Register(ctx, creds).Return(user, nil)

	got, err := svc.SignUp(ctx, creds)
	require.NoError(t, err)
	assert.Equal(t, user, got)

	_, signedIn := svc.CurrentUser()
	assert.True(t, signedIn)
}

func TestSessionService_Refresh(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, auth := newTestSessionSvc(t, ctrl)
	ctx := context.Background()

	user := models.User{UserID: "u1", Email: "dev@example.com"}
	auth.EXPECT().Login(ctx, gomock.Any()).Return(user, nil)
	_, err := svc.SignIn(ctx, models.Credentials{Email: user.Email, Password: "secret"})
	require.NoError(t, err)

	renamed := user
	renamed.DisplayName = "Renamed"
	auth.EXPECT().CurrentUser(ctx).Return(renamed, nil)

	got, err := svc.Refresh(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Renamed", got.DisplayName)

	current, _ := svc.CurrentUser()
	assert.Equal(t, "Renamed", current.DisplayName)
}

func TestSessionService_Refresh_NoSession(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _ := newTestSessionSvc(t, ctrl)

	_, err := svc.Refresh(context.Background())
	require.ErrorIs(t, err, ErrNoSession)
}

func TestSessionService_SignOut(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, auth := newTestSessionSvc(t, ctrl)
	ctx := context.Background()

	auth.EXPECT().Login(ctx, gomock.Any()).Return(models.User{UserID: "u1"}, nil)
	_, err := svc.SignIn(ctx, models.Credentials{Email: "dev@example.com", Password: "secret"})
	require.NoError(t, err)

	auth.EXPECT().Logout()
	svc.SignOut()

	_, signedIn := svc.CurrentUser()
	assert.False(t, signedIn)
}
