package report

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"anoa.com/civicwaste/internal/modules/report/dto"
)

type fakeStorage struct {
	got  string
	name string
	err  error
}

func (f *fakeStorage) UploadImage(ctx context.Context, r io.Reader, fileName string) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	data, _ := io.ReadAll(r)
	f.got = string(data)
	f.name = fileName
	return "/uploads/stored.jpg", nil
}

func TestSubmit(t *testing.T) {
	now := time.Date(2024, 5, 1, 8, 0, 0, 0, time.UTC)
	store := &fakeStorage{}
	svc := NewReportService(store, func() time.Time { return now })

	report, err := svc.Submit(context.Background(), dto.SubmitReportInput{
		Photo:     strings.NewReader("img"),
		FileName:  "pile.jpg",
		Lat:       "-6.2",
		Lng:       "106.8",
		Accuracy:  "not a number",
		Timestamp: "2024-05-01T08:00:00Z",
	})
	if err != nil {
		t.Fatalf("Submit failed: %v", err)
	}

	if report.ID != "REP-1714550400000" {
		t.Errorf("Expected REP-1714550400000, got %s", report.ID)
	}
	if report.PhotoPath != "/uploads/stored.jpg" {
		t.Errorf("Unexpected photo path %s", report.PhotoPath)
	}
	if report.Lat == nil || *report.Lat != -6.2 {
		t.Errorf("Expected lat -6.2, got %v", report.Lat)
	}
	if report.Lng == nil || *report.Lng != 106.8 {
		t.Errorf("Expected lng 106.8, got %v", report.Lng)
	}
	if report.Accuracy != nil {
		t.Errorf("Expected nil accuracy, got %v", *report.Accuracy)
	}
	if report.Timestamp != "2024-05-01T08:00:00Z" {
		t.Errorf("Timestamp should pass through, got %s", report.Timestamp)
	}
	if store.got != "img" || store.name != "pile.jpg" {
		t.Errorf("Photo not handed to storage: %q %q", store.got, store.name)
	}
}

func TestSubmitStorageFailure(t *testing.T) {
	boom := errors.New("disk full")
	svc := NewReportService(&fakeStorage{err: boom}, time.Now)

	_, err := svc.Submit(context.Background(), dto.SubmitReportInput{Photo: strings.NewReader(""), FileName: "a.jpg"})
	if !errors.Is(err, boom) {
		t.Errorf("Expected wrapped storage error, got %v", err)
	}
}

func TestParseCoordinate(t *testing.T) {
	if got := parseCoordinate(""); got != nil {
		t.Errorf("Expected nil for empty input")
	}
	if got := parseCoordinate("NaN"); got != nil {
		t.Errorf("Expected nil for NaN")
	}
	if got := parseCoordinate(" 12.5 "); got == nil || *got != 12.5 {
		t.Errorf("Expected 12.5, got %v", got)
	}
}
