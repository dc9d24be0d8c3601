package report

import (
	"context"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"anoa.com/civicwaste/internal/entity"
	"anoa.com/civicwaste/internal/modules/report/dto"
	"anoa.com/civicwaste/pkg/storage"
	"github.com/charmbracelet/log"
)

type ReportService interface {
	Submit(ctx context.Context, input dto.SubmitReportInput) (*entity.Report, error)
}

type reportService struct {
	storage storage.ImageStorage
	now     func() time.Time
}

func NewReportService(storage storage.ImageStorage, now func() time.Time) ReportService {
	return &reportService{storage: storage, now: now}
}

// Submit stores the photo and returns the report. Reports are logged, not kept.
func (s *reportService) Submit(ctx context.Context, input dto.SubmitReportInput) (*entity.Report, error) {
	photoPath, err := s.storage.UploadImage(ctx, input.Photo, input.FileName)
	if err != nil {
		return nil, fmt.Errorf("failed to store report photo: %w", err)
	}

	report := &entity.Report{
		ID:        fmt.Sprintf("REP-%d", s.now().UnixMilli()),
		PhotoPath: photoPath,
		Lat:       parseCoordinate(input.Lat),
		Lng:       parseCoordinate(input.Lng),
		Accuracy:  parseCoordinate(input.Accuracy),
		Timestamp: input.Timestamp,
	}

	log.Info("new report received",
		"id", report.ID,
		"photo", report.PhotoPath,
		"lat", input.Lat,
		"lng", input.Lng,
		"timestamp", report.Timestamp,
	)

	return report, nil
}

// parseCoordinate returns nil for anything that is not a finite number.
func parseCoordinate(raw string) *float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return nil
	}
	return &v
}
