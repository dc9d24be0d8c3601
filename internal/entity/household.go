package entity

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

type Household struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"userId"`
	QRCode    string    `json:"qrCode"`
	CreatedAt time.Time `json:"createdAt"`
}

// HouseholdToken builds the household QR token from the owner and creation instant.
func HouseholdToken(userID uuid.UUID, at time.Time) string {
	return fmt.Sprintf("HOUSEHOLD-%s-%d", userID, at.UnixMilli())
}
