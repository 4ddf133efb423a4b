package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/ovoronin/go-issue-tracker/internal/config"
	"github.com/ovoronin/go-issue-tracker/internal/logger"
	"github.com/ovoronin/go-issue-tracker/internal/store"
	"github.com/ovoronin/go-issue-tracker/internal/utils"
	"github.com/ovoronin/go-issue-tracker/models"
)

// authService implements [AuthService] with bcrypt password hashes and
// HMAC-SHA256 session tokens. All state is read-only after
// construction.
type authService struct {
	users store.UserRepository

	tokenSignKey  string
	tokenIssuer   string
	tokenDuration time.Duration

	logger *logger.Logger
	now    func() time.Time
	newID  func() string
}

// NewAuthService constructs an [AuthService] wired to the given user
// repository and populated with token parameters from cfg.
func NewAuthService(users store.UserRepository, cfg config.App, log *logger.Logger) AuthService {
	return &authService{
		users:         users,
		tokenSignKey:  cfg.TokenSignKey,
		tokenIssuer:   cfg.TokenIssuer,
		tokenDuration: cfg.TokenDuration,
		logger:        log,
		now:           time.Now,
		newID:         uuid.NewString,
	}
}

// RegisterUser implements [AuthService].
func (a *authService) RegisterUser(ctx context.Context, creds models.Credentials) (models.User, error) {
	log := logger.FromContext(ctx)

	if creds.Email == "" || creds.Password == "" {
		log.Error().Str("email", creds.Email).Msg("invalid registration data provided")
		return models.User{}, ErrInvalidDataProvided
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(creds.Password), bcrypt.DefaultCost)
	if err != nil {
		return models.User{}, fmt.Errorf("password hashing failed: %w", err)
	}

	user := models.User{
		UserID:       a.newID(),
		Email:        creds.Email,
		DisplayName:  creds.DisplayName,
		PasswordHash: string(hash),
		CreatedAt:    a.now().UTC(),
	}
	if user.DisplayName == "" {
		user.DisplayName = creds.Email
	}

	registered, err := a.users.CreateUser(ctx, user)
	if err != nil {
		log.Err(err).Str("email", creds.Email).Msg("user creation failed")
		return models.User{}, fmt.Errorf("user creation failed: %w", err)
	}

	return registered, nil
}

// Login implements [AuthService].
func (a *authService) Login(ctx context.Context, creds models.Credentials) (models.User, error) {
	log := logger.FromContext(ctx)

	if creds.Email == "" || creds.Password == "" {
		log.Error().Str("email", creds.Email).Msg("invalid login data provided")
		return models.User{}, ErrInvalidDataProvided
	}

	user, err := a.users.FindUserByEmail(ctx, creds.Email)
	if err != nil {
		log.Err(err).Str("email", creds.Email).Msg("user lookup failed")
		return models.User{}, fmt.Errorf("user lookup failed: %w", err)
	}

	if err = bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(creds.Password)); err != nil {
		log.Warn().Str("email", creds.Email).Msg("wrong password")
		return models.User{}, ErrWrongPassword
	}

	return user, nil
}

// GetUser implements [AuthService].
func (a *authService) GetUser(ctx context.Context, id string) (models.User, error) {
	return a.users.FindUserByID(ctx, id)
}

// CreateToken implements [AuthService].
func (a *authService) CreateToken(_ context.Context, user models.User) (models.Token, error) {
	return utils.GenerateJWTToken(a.tokenIssuer, user.UserID, a.tokenDuration, a.tokenSignKey)
}

// ParseToken implements [AuthService].
func (a *authService) ParseToken(_ context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return models.Token{}, ErrTokenIsExpired
		}
		return models.Token{}, err
	}
	return token, nil
}
