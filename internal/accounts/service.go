package accounts

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/kaushals1950/DhaaraAI/internal/apperr"
	"github.com/kaushals1950/DhaaraAI/internal/auth"
	"github.com/kaushals1950/DhaaraAI/internal/utils"
)

var (
	ErrEmailTaken         = apperr.Conflict("Email already registered")
	ErrInvalidCredentials = apperr.Unauthorized("Invalid email or password")
	ErrLoginUnavailable   = apperr.Unavailable("Login is not configured")
)

type Service struct {
	repo   Repository
	tokens *auth.Manager
	now    func() time.Time
}

// NewService accepts a nil token manager; login then reports unavailable.
func NewService(repo Repository, tokens *auth.Manager) *Service {
	return &Service{repo: repo, tokens: tokens, now: time.Now}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (s *Service) Register(ctx context.Context, req RegisterRequest) (User, error) {
	// bcrypt reads at most 72 bytes; the validator counts characters.
	if len(req.Password) > auth.MaxPasswordBytes {
		return User{}, apperr.Validation("validation error", map[string]string{"password": "max"})
	}
	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return User{}, apperr.Internal("password hashing failed", err)
	}

	role := req.Role
	if role == "" {
		role = RoleClient
	}

	user := User{
		ID:           utils.NewID("usr"),
		Username:     strings.TrimSpace(req.Username),
		Email:        normalizeEmail(req.Email),
		PasswordHash: hash,
		Role:         role,
		CreatedAt:    s.now().UTC(),
	}
	if err := s.repo.Create(ctx, user); err != nil {
		if errors.Is(err, ErrDuplicateEmail) {
			return User{}, ErrEmailTaken
		}
		return User{}, apperr.Internal("user insert failed", err)
	}
	return user, nil
}

func (s *Service) Login(ctx context.Context, req LoginRequest) (TokenResponse, error) {
	if s.tokens == nil {
		return TokenResponse{}, ErrLoginUnavailable
	}

	user, ok, err := s.repo.GetByEmail(ctx, normalizeEmail(req.Email))
	if err != nil {
		return TokenResponse{}, apperr.Internal("user lookup failed", err)
	}
	if !ok || auth.ComparePassword(user.PasswordHash, req.Password) != nil {
		return TokenResponse{}, ErrInvalidCredentials
	}

	token, err := s.tokens.NewAccessToken(user.ID, user.Email, user.Role)
	if err != nil {
		return TokenResponse{}, apperr.Internal("token signing failed", err)
	}
	return TokenResponse{AccessToken: token, TokenType: "Bearer"}, nil
}
