package stat

import (
	"strings"
	"time"

	"anoa.com/civicwaste/internal/entity"
	"anoa.com/civicwaste/internal/modules/stat/dto"
)

const (
	dateLayout = "2006-01-02"

	DefaultCalendarDays = 30
	// MaxCalendarDays bounds the window so a huge query cannot exhaust memory.
	MaxCalendarDays = 3650
)

// knownWasteTypes lists the categories that are tallied. Anything else is dropped.
var knownWasteTypes = []string{"wet", "dry", "hazardous"}

func TotalPoints(activities []entity.Activity) int {
	total := 0
	for _, a := range activities {
		total += a.Points
	}
	return total
}

// TodayPoints sums points of activities whose date in loc matches today's date in loc.
func TodayPoints(activities []entity.Activity, now time.Time, loc *time.Location) int {
	today := now.In(loc).Format(dateLayout)
	total := 0
	for _, a := range activities {
		if a.Timestamp.In(loc).Format(dateLayout) == today {
			total += a.Points
		}
	}
	return total
}

// PointsSince sums points of activities recorded at or after since.
func PointsSince(activities []entity.Activity, since time.Time) int {
	total := 0
	for _, a := range activities {
		if !a.Timestamp.Before(since) {
			total += a.Points
		}
	}
	return total
}

// WasteSegregation adds each activity's amount to its waste category. Activities
// missing a type or a non-zero amount are ignored, as are unknown categories.
// Pending is part of the response shape but nothing feeds it.
func WasteSegregation(activities []entity.Activity) map[string]*dto.WasteTally {
	tallies := make(map[string]*dto.WasteTally, len(knownWasteTypes))
	for _, wt := range knownWasteTypes {
		tallies[wt] = &dto.WasteTally{}
	}

	for _, a := range activities {
		if a.WasteType == "" || a.Amount == nil || *a.Amount == 0 {
			continue
		}
		if tally, ok := tallies[strings.ToLower(a.WasteType)]; ok {
			tally.Segregated += *a.Amount
		}
	}

	return tallies
}

// Calendar reports, for each of the last days UTC dates ending today, whether the
// user recorded anything on that date and how many points it earned. Dates are
// matched on the UTC YYYY-MM-DD prefix of each timestamp.
func Calendar(activities []entity.Activity, now time.Time, days int) []dto.CalendarDay {
	if days <= 0 {
		return []dto.CalendarDay{}
	}
	if days > MaxCalendarDays {
		days = MaxCalendarDays
	}

	pointsByDate := make(map[string]int)
	seen := make(map[string]bool)
	for _, a := range activities {
		date := a.Timestamp.UTC().Format(dateLayout)
		seen[date] = true
		pointsByDate[date] += a.Points
	}

	utc := now.UTC()
	start := time.Date(utc.Year(), utc.Month(), utc.Day(), 0, 0, 0, 0, time.UTC).AddDate(0, 0, -(days - 1))

	out := make([]dto.CalendarDay, 0, days)
	for i := 0; i < days; i++ {
		date := start.AddDate(0, 0, i).Format(dateLayout)
		out = append(out, dto.CalendarDay{
			Date:        date,
			HasActivity: seen[date],
			Points:      pointsByDate[date],
		})
	}

	return out
}
