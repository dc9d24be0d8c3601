package service

import (
	"context"
	"errors"
	"net/http"
	"time"

	"anoa.com/civicwaste/internal/entity"
	"anoa.com/civicwaste/internal/modules/user/dto"
	"anoa.com/civicwaste/internal/modules/user/repository"
	"anoa.com/civicwaste/pkg/apperror"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var (
	ErrInvalidCredentials = apperror.New(http.StatusUnauthorized, "Invalid credentials", apperror.ErrUnauthorized)
	ErrPasswordRequired   = apperror.New(http.StatusUnauthorized, "Password required", apperror.ErrUnauthorized)
	ErrUserExists         = apperror.New(http.StatusBadRequest, "User already exists", apperror.ErrConflict)
)

// AuthService issues tokens without checking passwords beyond presence.
type AuthService interface {
	Login(ctx context.Context, input dto.LoginInput) (*dto.AuthResponse, error)
	Register(ctx context.Context, input dto.RegisterInput) (*dto.RegisterResponse, error)
}

type authService struct {
	repo     repository.UserRepository
	secret   string
	tokenTTL time.Duration
	now      func() time.Time
}

func NewAuthService(repo repository.UserRepository, secret string, tokenTTL time.Duration, now func() time.Time) AuthService {
	return &authService{
		repo:     repo,
		secret:   secret,
		tokenTTL: tokenTTL,
		now:      now,
	}
}

func (s *authService) Login(ctx context.Context, input dto.LoginInput) (*dto.AuthResponse, error) {
	user, err := s.repo.FindByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, apperror.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if input.Password == "" {
		return nil, ErrPasswordRequired
	}

	token, err := s.generateToken(user)
	if err != nil {
		return nil, err
	}

	return &dto.AuthResponse{
		Token: token,
		User:  user.Summary(),
	}, nil
}

func (s *authService) Register(ctx context.Context, input dto.RegisterInput) (*dto.RegisterResponse, error) {
	user := &entity.User{
		ID:        uuid.New(),
		Name:      input.Name,
		Email:     input.Email,
		CreatedAt: s.now().Truncate(time.Millisecond),
	}

	if err := s.repo.CreateUnique(ctx, user); err != nil {
		if errors.Is(err, apperror.ErrConflict) {
			return nil, ErrUserExists
		}
		return nil, err
	}

	return &dto.RegisterResponse{
		Success: true,
		User:    user.Summary(),
	}, nil
}

func (s *authService) generateToken(user *entity.User) (string, error) {
	now := s.now()

	claims := jwt.RegisteredClaims{
		Subject:   user.ID.String(),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenTTL)),
		IssuedAt:  jwt.NewNumericDate(now),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.secret))
}
