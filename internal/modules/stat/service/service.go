package stat

import (
	"context"
	"time"

	activityRepo "anoa.com/civicwaste/internal/modules/activity/repository"
	"anoa.com/civicwaste/internal/modules/stat/dto"
	userRepo "anoa.com/civicwaste/internal/modules/user/repository"
	"github.com/google/uuid"
)

type StatService interface {
	GetUserStats(ctx context.Context, userID uuid.UUID) (*dto.UserStatsResponse, error)
	GetStreakCalendar(ctx context.Context, userID uuid.UUID, days int) (*dto.StreakCalendarResponse, error)
	GetTotalUsers(ctx context.Context) (int64, error)
}

type statService struct {
	userRepo     userRepo.UserRepository
	activityRepo activityRepo.ActivityRepository
	now          func() time.Time
	loc          *time.Location
}

// NewStatService builds the read side over the activity log. loc decides which
// calendar day counts as today for TodayPoints.
func NewStatService(userRepo userRepo.UserRepository, activityRepo activityRepo.ActivityRepository, now func() time.Time, loc *time.Location) StatService {
	if loc == nil {
		loc = time.Local
	}
	return &statService{
		userRepo:     userRepo,
		activityRepo: activityRepo,
		now:          now,
		loc:          loc,
	}
}

func (s *statService) GetUserStats(ctx context.Context, userID uuid.UUID) (*dto.UserStatsResponse, error) {
	if _, err := s.userRepo.FindByID(ctx, userID); err != nil {
		return nil, err
	}

	activities, err := s.activityRepo.FindByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	now := s.now()
	total := TotalPoints(activities)
	weekly := PointsSince(activities, now.AddDate(0, 0, -7))

	return &dto.UserStatsResponse{
		TodayPoints:      TodayPoints(activities, now, s.loc),
		TotalPoints:      total,
		CurrentStreak:    CurrentStreak(activities),
		WasteSegregation: WasteSegregation(activities),
		Level:            GetLevelStatus(total, weekly),
	}, nil
}

func (s *statService) GetStreakCalendar(ctx context.Context, userID uuid.UUID, days int) (*dto.StreakCalendarResponse, error) {
	if _, err := s.userRepo.FindByID(ctx, userID); err != nil {
		return nil, err
	}

	activities, err := s.activityRepo.FindByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &dto.StreakCalendarResponse{
		StreakData:    Calendar(activities, s.now(), days),
		CurrentStreak: CurrentStreak(activities),
	}, nil
}

func (s *statService) GetTotalUsers(ctx context.Context) (int64, error) {
	return s.userRepo.Count(ctx)
}
