package service

import (
	"context"
	"fmt"
	"sync"

	"github.com/ovoronin/go-issue-tracker/internal/adapter"
	"github.com/ovoronin/go-issue-tracker/internal/logger"
	"github.com/ovoronin/go-issue-tracker/models"
)

// sessionService implements [SessionService] over the auth transport.
// The signed-in user is plain guarded state; the bearer token itself
// lives inside the adapter and never surfaces here.
type sessionService struct {
	auth   adapter.AuthClient
	logger *logger.Logger

	mu       sync.RWMutex
	user     models.User
	signedIn bool
}

// NewSessionService builds the session holder for one client process.
func NewSessionService(auth adapter.AuthClient, log *logger.Logger) SessionService {
	return &sessionService{
		auth:   auth,
		logger: log,
	}
}

// SignUp implements [SessionService].
func (s *sessionService) SignUp(ctx context.Context, creds models.Credentials) (models.User, error) {
	user, err := s.auth.Register(ctx, creds)
	if err != nil {
		return models.User{}, fmt.Errorf("sign up: %w", err)
	}
	s.setUser(user)
	return user, nil
}

// SignIn implements [SessionService].
func (s *sessionService) SignIn(ctx context.Context, creds models.Credentials) (models.User, error) {
	user, err := s.auth.Login(ctx, creds)
	if err != nil {
		return models.User{}, fmt.Errorf("sign in: %w", err)
	}
	s.setUser(user)
	return user, nil
}

// CurrentUser implements [SessionService].
func (s *sessionService) CurrentUser() (models.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user, s.signedIn
}

// Refresh implements [SessionService].
func (s *sessionService) Refresh(ctx context.Context) (models.User, error) {
	s.mu.RLock()
	signedIn := s.signedIn
	s.mu.RUnlock()
	if !signedIn {
		return models.User{}, ErrNoSession
	}

	user, err := s.auth.CurrentUser(ctx)
	if err != nil {
		return models.User{}, fmt.Errorf("refresh session: %w", err)
	}
	s.setUser(user)
	return user, nil
}

// SignOut implements [SessionService].
func (s *sessionService) SignOut() {
	s.auth.Logout()

	s.mu.Lock()
	s.user, s.signedIn = models.User{}, false
	s.mu.Unlock()

	s.logger.Info().Msg("session closed")
}

func (s *sessionService) setUser(user models.User) {
	s.mu.Lock()
	s.user, s.signedIn = user, true
	s.mu.Unlock()
}
