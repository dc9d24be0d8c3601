package repository

import (
	"context"

	"anoa.com/civicwaste/internal/entity"
	"anoa.com/civicwaste/internal/store"
	"anoa.com/civicwaste/pkg/apperror"
	"github.com/google/uuid"
)

type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	// CreateUnique fails with apperror.ErrConflict when the email is taken.
	CreateUnique(ctx context.Context, user *entity.User) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
	Count(ctx context.Context) (int64, error)
}

type userRepository struct {
	store *store.Store
}

func NewUserRepository(s *store.Store) UserRepository {
	return &userRepository{store: s}
}

func (r *userRepository) Create(ctx context.Context, user *entity.User) error {
	r.store.AddUser(*user)
	return nil
}

func (r *userRepository) CreateUnique(ctx context.Context, user *entity.User) error {
	if !r.store.AddUserIfEmailFree(*user) {
		return apperror.ErrConflict
	}
	return nil
}

func (r *userRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	user, ok := r.store.FindUser(id)
	if !ok {
		return nil, apperror.ErrUserNotFound
	}
	return &user, nil
}

func (r *userRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	user, ok := r.store.FindUserByEmail(email)
	if !ok {
		return nil, apperror.ErrUserNotFound
	}
	return &user, nil
}

func (r *userRepository) Count(ctx context.Context) (int64, error) {
	return int64(r.store.CountUsers()), nil
}
