package household

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"time"

	"anoa.com/civicwaste/internal/entity"
	householdRepo "anoa.com/civicwaste/internal/modules/household/repository"
	userRepo "anoa.com/civicwaste/internal/modules/user/repository"
	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	qrcode "github.com/skip2/go-qrcode"
)

const qrSize = 256

type HouseholdService interface {
	GetOrCreate(ctx context.Context, userID uuid.UUID) (*entity.Household, error)
	// QRCode renders {"userId": userID} as a PNG data URL. userID is not checked
	// against the user list.
	QRCode(ctx context.Context, userID string) (string, error)
}

type householdService struct {
	repo     householdRepo.HouseholdRepository
	userRepo userRepo.UserRepository
	now      func() time.Time
}

func NewHouseholdService(repo householdRepo.HouseholdRepository, userRepo userRepo.UserRepository, now func() time.Time) HouseholdService {
	return &householdService{
		repo:     repo,
		userRepo: userRepo,
		now:      now,
	}
}

func (s *householdService) GetOrCreate(ctx context.Context, userID uuid.UUID) (*entity.Household, error) {
	if _, err := s.userRepo.FindByID(ctx, userID); err != nil {
		return nil, err
	}

	household, created, err := s.repo.FindOrCreate(ctx, userID, func() entity.Household {
		at := s.now().UTC().Truncate(time.Millisecond)
		return entity.Household{
			ID:        uuid.New(),
			UserID:    userID,
			QRCode:    entity.HouseholdToken(userID, at),
			CreatedAt: at,
		}
	})
	if err != nil {
		return nil, fmt.Errorf("failed to store household: %w", err)
	}

	if created {
		log.Info("household created", "user", userID, "household", household.ID)
	}

	return household, nil
}

func (s *householdService) QRCode(ctx context.Context, userID string) (string, error) {
	payload, err := json.Marshal(map[string]string{"userId": userID})
	if err != nil {
		return "", fmt.Errorf("failed to encode qr payload: %w", err)
	}

	png, err := qrcode.Encode(string(payload), qrcode.Medium, qrSize)
	if err != nil {
		return "", fmt.Errorf("failed to render qr code: %w", err)
	}

	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(png), nil
}
