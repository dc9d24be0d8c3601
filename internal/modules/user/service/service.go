package service

import (
	"context"
	"time"

	"anoa.com/civicwaste/internal/entity"
	"anoa.com/civicwaste/internal/modules/user/dto"
	"anoa.com/civicwaste/internal/modules/user/repository"
	"github.com/charmbracelet/log"
	"github.com/google/uuid"
)

type UserService interface {
	CreateUser(ctx context.Context, input dto.CreateUserInput) (*entity.User, error)
	GetUser(ctx context.Context, id uuid.UUID) (*entity.User, error)
}

type userService struct {
	repo repository.UserRepository
	now  func() time.Time
}

func NewUserService(repo repository.UserRepository, now func() time.Time) UserService {
	return &userService{repo: repo, now: now}
}

// CreateUser stores a new user. The password is accepted for wire compatibility
// and discarded.
func (s *userService) CreateUser(ctx context.Context, input dto.CreateUserInput) (*entity.User, error) {
	user := &entity.User{
		ID:        uuid.New(),
		Name:      input.Name,
		Email:     input.Email,
		CreatedAt: s.now().Truncate(time.Millisecond),
	}

	if err := s.repo.Create(ctx, user); err != nil {
		return nil, err
	}

	log.Info("user created", "id", user.ID)
	return user, nil
}

func (s *userService) GetUser(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	return s.repo.FindByID(ctx, id)
}
