package repository

import (
	"context"

	"anoa.com/civicwaste/internal/entity"
	"anoa.com/civicwaste/internal/store"
	"github.com/google/uuid"
)

type ActivityRepository interface {
	Create(ctx context.Context, activity *entity.Activity) error
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]entity.Activity, error)
}

type activityRepository struct {
	store *store.Store
}

func NewActivityRepository(s *store.Store) ActivityRepository {
	return &activityRepository{store: s}
}

func (r *activityRepository) Create(ctx context.Context, activity *entity.Activity) error {
	r.store.AppendActivity(*activity)
	return nil
}

func (r *activityRepository) FindByUserID(ctx context.Context, userID uuid.UUID) ([]entity.Activity, error) {
	return r.store.ActivitiesByUser(userID), nil
}
