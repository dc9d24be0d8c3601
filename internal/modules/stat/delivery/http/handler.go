package handler

import (
	"net/http"
	"strconv"
	"strings"
	"unicode"

	"anoa.com/civicwaste/internal/modules/stat/dto"
	statService "anoa.com/civicwaste/internal/modules/stat/service"
	"anoa.com/civicwaste/pkg/response"
	"github.com/gin-gonic/gin"
)

type StatHandler struct {
	statService statService.StatService
}

func NewStatHandler(statService statService.StatService) *StatHandler {
	return &StatHandler{statService: statService}
}

// GetUserStats godoc
// @Summary Points, streak and segregation totals for a user
// @Tags stats
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {object} dto.UserStatsResponse
// @Failure 404 {object} map[string]string
// @Router /api/users/{id}/stats [get]
func (h *StatHandler) GetUserStats(c *gin.Context) {
	userID, err := response.ParseUserID(c)
	if err != nil {
		response.ResponseError(c, err, "Failed to fetch user statistics")
		return
	}

	stats, err := h.statService.GetUserStats(c.Request.Context(), userID)
	if err != nil {
		response.ResponseError(c, err, "Failed to fetch user statistics")
		return
	}

	c.JSON(http.StatusOK, stats)
}

// GetStreakCalendar godoc
// @Summary Daily activity calendar ending today
// @Tags stats
// @Produce json
// @Param id path string true "User ID"
// @Param days query int false "Number of days (default 30)"
// @Success 200 {object} dto.StreakCalendarResponse
// @Failure 404 {object} map[string]string
// @Router /api/users/{id}/streak-calendar [get]
func (h *StatHandler) GetStreakCalendar(c *gin.Context) {
	userID, err := response.ParseUserID(c)
	if err != nil {
		response.ResponseError(c, err, "Failed to fetch streak calendar data")
		return
	}

	calendar, err := h.statService.GetStreakCalendar(c.Request.Context(), userID, parseDays(c.Query("days")))
	if err != nil {
		response.ResponseError(c, err, "Failed to fetch streak calendar data")
		return
	}

	c.JSON(http.StatusOK, calendar)
}

func (h *StatHandler) GetTotalUsers(c *gin.Context) {
	count, err := h.statService.GetTotalUsers(c.Request.Context())
	if err != nil {
		response.ResponseError(c, err, "Failed to count users")
		return
	}

	c.JSON(http.StatusOK, dto.UserCountResponse{TotalUsers: count})
}

// parseDays reads the leading integer of raw after any whitespace. Missing,
// unparseable or zero values fall back to the default window.
func parseDays(raw string) int {
	raw = strings.TrimLeftFunc(raw, unicode.IsSpace)
	end := 0
	for end < len(raw) && (raw[end] >= '0' && raw[end] <= '9' || end == 0 && (raw[end] == '-' || raw[end] == '+')) {
		end++
	}
	days, err := strconv.Atoi(raw[:end])
	if err != nil || days == 0 {
		return statService.DefaultCalendarDays
	}
	return days
}
