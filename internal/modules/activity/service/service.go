package activity

import (
	"context"
	"fmt"
	"time"

	"anoa.com/civicwaste/internal/entity"
	"anoa.com/civicwaste/internal/modules/activity/dto"
	activityRepo "anoa.com/civicwaste/internal/modules/activity/repository"
	notifService "anoa.com/civicwaste/internal/modules/notification/service"
	userRepo "anoa.com/civicwaste/internal/modules/user/repository"
	"github.com/charmbracelet/log"
	"github.com/google/uuid"
)

type ActivityService interface {
	// Record appends a new activity for userID. Points of 0 or none fall back to
	// entity.DefaultActivityPoints.
	Record(ctx context.Context, userID uuid.UUID, input dto.RecordActivityInput) (*entity.Activity, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]entity.Activity, error)
}

type activityService struct {
	repo      activityRepo.ActivityRepository
	userRepo  userRepo.UserRepository
	publisher notifService.ActivityPublisher
	now       func() time.Time
}

func NewActivityService(repo activityRepo.ActivityRepository, userRepo userRepo.UserRepository, publisher notifService.ActivityPublisher, now func() time.Time) ActivityService {
	return &activityService{
		repo:      repo,
		userRepo:  userRepo,
		publisher: publisher,
		now:       now,
	}
}

func (s *activityService) Record(ctx context.Context, userID uuid.UUID, input dto.RecordActivityInput) (*entity.Activity, error) {
	if _, err := s.userRepo.FindByID(ctx, userID); err != nil {
		return nil, err
	}

	points := entity.DefaultActivityPoints
	if input.Points != nil && *input.Points != 0 {
		points = *input.Points
	}

	activity := &entity.Activity{
		ID:           uuid.New(),
		UserID:       userID,
		ActivityType: input.ActivityType,
		WasteType:    input.WasteType,
		Amount:       input.Amount,
		Points:       points,
		Timestamp:    s.now().UTC().Truncate(time.Millisecond),
	}

	if err := s.repo.Create(ctx, activity); err != nil {
		return nil, fmt.Errorf("failed to store activity: %w", err)
	}

	log.Debug("activity recorded", "user", userID, "type", activity.ActivityType, "points", points)

	if s.publisher != nil {
		s.publisher.PublishActivity(ctx, activity)
	}

	return activity, nil
}

func (s *activityService) ListByUser(ctx context.Context, userID uuid.UUID) ([]entity.Activity, error) {
	if _, err := s.userRepo.FindByID(ctx, userID); err != nil {
		return nil, err
	}
	return s.repo.FindByUserID(ctx, userID)
}
