package handler

import (
	"net/http"

	householdService "anoa.com/civicwaste/internal/modules/household/service"
	"anoa.com/civicwaste/pkg/response"
	"github.com/gin-gonic/gin"
)

type HouseholdHandler struct {
	service householdService.HouseholdService
}

func NewHouseholdHandler(service householdService.HouseholdService) *HouseholdHandler {
	return &HouseholdHandler{service: service}
}

// GetOrCreateHousehold godoc
// @Summary Get or create the user's household QR token
// @Tags household
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {object} entity.Household
// @Failure 404 {object} map[string]string
// @Router /api/users/{id}/household [post]
func (h *HouseholdHandler) GetOrCreateHousehold(c *gin.Context) {
	userID, err := response.ParseUserID(c)
	if err != nil {
		response.ResponseError(c, err, "Failed to generate household QR code")
		return
	}

	household, err := h.service.GetOrCreate(c.Request.Context(), userID)
	if err != nil {
		response.ResponseError(c, err, "Failed to generate household QR code")
		return
	}

	c.JSON(http.StatusOK, household)
}

// GetQRCode godoc
// @Summary QR image for a user id
// @Tags household
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {object} map[string]string
// @Router /api/users/{id}/qr [get]
func (h *HouseholdHandler) GetQRCode(c *gin.Context) {
	qr, err := h.service.QRCode(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.ResponseError(c, err, "Failed to generate QR code")
		return
	}

	c.JSON(http.StatusOK, gin.H{"qr": qr})
}
