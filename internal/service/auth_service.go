package service

import (
	"context"
	"errors"
	"strings"

	"gothampost/internal/auth"
	"gothampost/internal/cache"
	"gothampost/internal/models"
	"gothampost/internal/observability"
	"gothampost/internal/repository"

	"gorm.io/gorm"
)

// AuthService handles registration, login, and logout.
type AuthService struct {
	userRepo repository.UserRepository
	issuer   *auth.TokenIssuer
}

type RegisterInput struct {
	Username string
	Email    string
	Password string
}

type LoginInput struct {
	Email    string
	Password string
}

// LoginResult carries the issued token and the authenticated user.
type LoginResult struct {
	Token string
	User  *models.User
}

func NewAuthService(userRepo repository.UserRepository, issuer *auth.TokenIssuer) *AuthService {
	return &AuthService{
		userRepo: userRepo,
		issuer:   issuer,
	}
}

// Register creates a new account. The role is always Reader regardless of
// anything the client sent; promotions go through the admin role endpoint.
func (s *AuthService) Register(ctx context.Context, in RegisterInput) (*models.User, error) {
	if err := validateUsername(in.Username); err != nil {
		return nil, err
	}
	if err := validateEmail(in.Email); err != nil {
		return nil, err
	}
	if err := validatePassword(in.Password); err != nil {
		return nil, err
	}

	hashed, err := auth.HashPassword(in.Password)
	if err != nil {
		return nil, models.NewInternalError(err)
	}

	user := &models.User{
		Username: strings.TrimSpace(in.Username),
		Email:    in.Email,
		Password: hashed,
		Role:     models.RoleReader,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, models.NewConflictError("An account with this email or username already exists")
		}
		return nil, err
	}

	return user, nil
}

// Login verifies credentials and returns a signed token. Unknown email and
// wrong password produce the same error so the response doesn't reveal which
// accounts exist.
func (s *AuthService) Login(ctx context.Context, in LoginInput) (*LoginResult, error) {
	user, err := s.userRepo.GetByEmail(ctx, in.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		observability.AuthFailures.WithLabelValues("unknown_email").Inc()
		return nil, models.NewUnauthorizedError("Invalid email or password")
	}
	if !auth.VerifyPassword(in.Password, user.Password) {
		observability.AuthFailures.WithLabelValues("bad_password").Inc()
		return nil, models.NewUnauthorizedError("Invalid email or password")
	}

	token, err := s.issuer.IssueToken(user.ID, user.Role)
	if err != nil {
		return nil, models.NewInternalError(err)
	}

	return &LoginResult{Token: token, User: user}, nil
}

// Logout revokes the presented token by blacklisting its jti until the token
// would expire on its own.
func (s *AuthService) Logout(ctx context.Context, identity auth.Identity) error {
	return cache.BlacklistToken(ctx, identity.JTI, s.issuer.TTL())
}
