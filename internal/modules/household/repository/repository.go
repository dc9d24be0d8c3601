package repository

import (
	"context"

	"anoa.com/civicwaste/internal/entity"
	"anoa.com/civicwaste/internal/store"
	"github.com/google/uuid"
)

type HouseholdRepository interface {
	// FindOrCreate returns the existing household for userID or stores the one
	// build produces. created reports which happened.
	FindOrCreate(ctx context.Context, userID uuid.UUID, build func() entity.Household) (household *entity.Household, created bool, err error)
}

type householdRepository struct {
	store *store.Store
}

func NewHouseholdRepository(s *store.Store) HouseholdRepository {
	return &householdRepository{store: s}
}

func (r *householdRepository) FindOrCreate(ctx context.Context, userID uuid.UUID, build func() entity.Household) (*entity.Household, bool, error) {
	h, created := r.store.FindOrCreateHousehold(userID, build)
	return &h, created, nil
}
