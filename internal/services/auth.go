package services

import (
	"context"
	"errors"

	"github.com/sbilibin2017/gw-recipe-book/internal/logger"
	"github.com/sbilibin2017/gw-recipe-book/internal/models"
	"github.com/sbilibin2017/gw-recipe-book/internal/repositories"
)

// UserRepository defines storage operations for users.
type UserRepository interface {
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	Save(ctx context.Context, email, passwordHash string, isAdmin bool) (*models.User, error)
}

// PasswordHasher hashes and verifies passwords.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(password, hash string) bool
}

// TokenManager issues and validates access tokens whose subject is the user's email.
type TokenManager interface {
	Generate(ctx context.Context, subject string) (string, error)
	Validate(ctx context.Context, token string) (string, error)
}

// AuthService handles registration, login and request authentication.
type AuthService struct {
	users         UserRepository
	hasher        PasswordHasher
	tokens        TokenManager
	adminEmail    string
	adminPassword string
}

// NewAuthService creates a new AuthService instance. A user registering with
// exactly adminEmail and adminPassword becomes an administrator; an empty
// adminEmail disables the rule.
func NewAuthService(
	users UserRepository,
	hasher PasswordHasher,
	tokens TokenManager,
	adminEmail, adminPassword string,
) *AuthService {
	return &AuthService{
		users:         users,
		hasher:        hasher,
		tokens:        tokens,
		adminEmail:    adminEmail,
		adminPassword: adminPassword,
	}
}

// Register creates a new user.
func (svc *AuthService) Register(ctx context.Context, email, password string) (*models.User, error) {
	_, err := svc.users.GetByEmail(ctx, email)
	switch {
	case err == nil:
		logger.Log.Errorw("user already exists", "email", email)
		return nil, ErrUserAlreadyExists
	case !errors.Is(err, repositories.ErrNotFound):
		logger.Log.Errorw("failed to check user exists", "email", email, "error", err)
		return nil, err
	}

	hash, err := svc.hasher.Hash(password)
	if err != nil {
		logger.Log.Errorw("failed to hash password", "error", err)
		return nil, err
	}

	isAdmin := svc.adminEmail != "" && email == svc.adminEmail && password == svc.adminPassword

	user, err := svc.users.Save(ctx, email, hash, isAdmin)
	if err != nil {
		if errors.Is(err, repositories.ErrUniqueViolation) {
			logger.Log.Errorw("user already exists", "email", email)
			return nil, ErrUserAlreadyExists
		}
		logger.Log.Errorw("failed to save user", "email", email, "error", err)
		return nil, err
	}

	logger.Log.Infow("user registered", "user_id", user.ID, "is_admin", user.IsAdmin)
	return user, nil
}

// Login checks the credentials and returns an access token.
func (svc *AuthService) Login(ctx context.Context, email, password string) (string, error) {
	user, err := svc.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			logger.Log.Errorw("user does not exist", "email", email)
			return "", ErrInvalidCredentials
		}
		logger.Log.Errorw("failed to get user", "email", email, "error", err)
		return "", err
	}

	if !svc.hasher.Verify(password, user.PasswordHash) {
		logger.Log.Errorw("invalid credentials", "email", email)
		return "", ErrInvalidCredentials
	}

	token, err := svc.tokens.Generate(ctx, user.Email)
	if err != nil {
		logger.Log.Errorw("failed to generate JWT", "error", err)
		return "", err
	}

	return token, nil
}

// Authenticate resolves the user a token was issued to.
func (svc *AuthService) Authenticate(ctx context.Context, token string) (*models.User, error) {
	email, err := svc.tokens.Validate(ctx, token)
	if err != nil {
		logger.Log.Warnw("invalid token", "error", err)
		return nil, ErrUnauthenticated
	}

	user, err := svc.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			logger.Log.Warnw("token subject not resolved", "email", email)
			return nil, ErrUnauthenticated
		}
		logger.Log.Errorw("failed to load token subject", "email", email, "error", err)
		return nil, err
	}

	return user, nil
}

// RequireAdmin allows only administrators.
func RequireAdmin(principal *models.User) error {
	if principal == nil {
		return ErrUnauthenticated
	}
	if !principal.IsAdmin {
		return ErrForbidden
	}
	return nil
}
