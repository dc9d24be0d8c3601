package entity

import (
	"time"

	"github.com/google/uuid"
)

// DefaultActivityPoints is awarded when a caller records an activity without points.
const DefaultActivityPoints = 10

// Activity is one entry of the append-only disposal log. It is never mutated after
// the store accepts it.
type Activity struct {
	ID           uuid.UUID `json:"id"`
	UserID       uuid.UUID `json:"userId"`
	ActivityType string    `json:"activityType"`
	WasteType    string    `json:"wasteType"`
	Amount       *float64  `json:"amount"` // nil when absent or not a number
	Points       int       `json:"points"`
	Timestamp    time.Time `json:"timestamp"`
}

// DayIndex groups the ids of the activities a user recorded on one server-local
// calendar day. Date is the instant of the first activity of that day.
type DayIndex struct {
	UserID      uuid.UUID   `json:"userId"`
	Date        time.Time   `json:"date"`
	ActivityIDs []uuid.UUID `json:"activities"`
}
