package handler

import (
	"errors"
	"net/http"

	"anoa.com/civicwaste/internal/modules/report/dto"
	reportService "anoa.com/civicwaste/internal/modules/report/service"
	"github.com/charmbracelet/log"
	"github.com/gin-gonic/gin"
)

// maxPhotoMemory is how much of a multipart body is kept in memory before
// spilling to temp files.
const maxPhotoMemory = 32 << 20

type ReportHandler struct {
	reportService reportService.ReportService
}

func NewReportHandler(reportService reportService.ReportService) *ReportHandler {
	return &ReportHandler{reportService: reportService}
}

// SubmitReport godoc
// @Summary Report illegal dumping with a geotagged photo
// @Tags reports
// @Accept multipart/form-data
// @Produce json
// @Param photo formData file true "Photo"
// @Param lat formData number false "Latitude"
// @Param lng formData number false "Longitude"
// @Param accuracy formData number false "GPS accuracy in meters"
// @Param timestamp formData string false "Capture time"
// @Success 201 {object} dto.SubmitReportResponse
// @Failure 400 {object} dto.ReportErrorResponse
// @Failure 500 {object} dto.ReportErrorResponse
// @Router /api/report [post]
func (h *ReportHandler) SubmitReport(c *gin.Context) {
	if err := c.Request.ParseMultipartForm(maxPhotoMemory); err != nil {
		c.JSON(http.StatusBadRequest, dto.ReportErrorResponse{Success: false, Message: "Photo is required."})
		return
	}

	file, fileHeader, err := c.Request.FormFile("photo")
	if errors.Is(err, http.ErrMissingFile) {
		c.JSON(http.StatusBadRequest, dto.ReportErrorResponse{Success: false, Message: "Photo is required."})
		return
	}
	if err != nil {
		log.Error("failed to open uploaded photo", "err", err)
		c.JSON(http.StatusInternalServerError, dto.ReportErrorResponse{Success: false, Message: "Failed to submit report"})
		return
	}
	defer file.Close()

	report, err := h.reportService.Submit(c.Request.Context(), dto.SubmitReportInput{
		Photo:     file,
		FileName:  fileHeader.Filename,
		Lat:       c.PostForm("lat"),
		Lng:       c.PostForm("lng"),
		Accuracy:  c.PostForm("accuracy"),
		Timestamp: c.PostForm("timestamp"),
	})
	if err != nil {
		log.Error("failed to submit report", "err", err)
		c.JSON(http.StatusInternalServerError, dto.ReportErrorResponse{Success: false, Message: "Failed to submit report"})
		return
	}

	c.JSON(http.StatusCreated, dto.SubmitReportResponse{Success: true, Data: report})
}
