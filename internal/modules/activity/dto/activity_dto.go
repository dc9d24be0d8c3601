package dto

import (
	"math"

	"anoa.com/civicwaste/internal/entity"
)

// RecordActivityRequest is the raw request body. Every field is decoded loosely so
// that odd client values degrade instead of failing the request.
type RecordActivityRequest struct {
	ActivityType any `json:"activityType"`
	WasteType    any `json:"wasteType"`
	Amount       any `json:"amount"`
	Points       any `json:"points"`
}

type RecordActivityInput struct {
	ActivityType string
	WasteType    string
	Amount       *float64
	Points       *int
}

// ToInput keeps string types, numeric amounts and points within int32 range, and
// drops anything else.
func (r RecordActivityRequest) ToInput() RecordActivityInput {
	var input RecordActivityInput
	input.ActivityType, _ = r.ActivityType.(string)
	input.WasteType, _ = r.WasteType.(string)

	if v, ok := r.Amount.(float64); ok && !math.IsNaN(v) && !math.IsInf(v, 0) {
		input.Amount = &v
	}
	if v, ok := r.Points.(float64); ok && v >= math.MinInt32 && v <= math.MaxInt32 {
		p := int(v)
		input.Points = &p
	}
	return input
}

type RecordActivityResponse struct {
	Success      bool             `json:"success"`
	PointsEarned int              `json:"pointsEarned"`
	Activity     *entity.Activity `json:"activity"`
}
