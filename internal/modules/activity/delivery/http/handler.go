package handler

import (
	"net/http"

	"anoa.com/civicwaste/internal/modules/activity/dto"
	activity "anoa.com/civicwaste/internal/modules/activity/service"
	"anoa.com/civicwaste/pkg/response"
	"github.com/charmbracelet/log"
	"github.com/gin-gonic/gin"
)

type ActivityHandler struct {
	service activity.ActivityService
}

func NewActivityHandler(service activity.ActivityService) *ActivityHandler {
	return &ActivityHandler{service: service}
}

// RecordActivity godoc
// @Summary Record a waste disposal activity
// @Tags activity
// @Accept json
// @Produce json
// @Param id path string true "User ID"
// @Param body body dto.RecordActivityRequest true "Activity"
// @Success 200 {object} dto.RecordActivityResponse
// @Failure 404 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /api/users/{id}/activity [post]
func (h *ActivityHandler) RecordActivity(c *gin.Context) {
	userID, err := response.ParseUserID(c)
	if err != nil {
		response.ResponseError(c, err, "Failed to update activity")
		return
	}

	// An empty or unreadable body records an activity with defaults.
	var req dto.RecordActivityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Debug("unreadable activity body", "user", userID, "err", err)
		req = dto.RecordActivityRequest{}
	}

	recorded, err := h.service.Record(c.Request.Context(), userID, req.ToInput())
	if err != nil {
		response.ResponseError(c, err, "Failed to update activity")
		return
	}

	c.JSON(http.StatusOK, dto.RecordActivityResponse{
		Success:      true,
		PointsEarned: recorded.Points,
		Activity:     recorded,
	})
}
