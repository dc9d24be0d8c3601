package dto

import (
	"io"

	"anoa.com/civicwaste/internal/entity"
)

// SubmitReportInput is the multipart form of a dumping report. Coordinates arrive
// as the raw form strings.
type SubmitReportInput struct {
	Photo     io.Reader
	FileName  string
	Lat       string
	Lng       string
	Accuracy  string
	Timestamp string
}

type SubmitReportResponse struct {
	Success bool           `json:"success"`
	Data    *entity.Report `json:"data"`
}

type ReportErrorResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}
