package stat

import (
	"testing"
	"time"

	"anoa.com/civicwaste/internal/entity"
	"github.com/google/uuid"
)

func floatPtr(v float64) *float64 {
	return &v
}

func wasteActivity(wasteType string, amount *float64) entity.Activity {
	return entity.Activity{ID: uuid.New(), WasteType: wasteType, Amount: amount, Points: 10, Timestamp: anchor}
}

func TestTotalPoints(t *testing.T) {
	activities := []entity.Activity{activityAt(anchor, 10), activityAt(anchor, 15), activityAt(anchor, -5)}

	if got := TotalPoints(activities); got != 20 {
		t.Errorf("Expected 20, got %d", got)
	}
	if got := TotalPoints(nil); got != 0 {
		t.Errorf("Expected 0 for no activities, got %d", got)
	}
}

func TestTodayPoints(t *testing.T) {
	now := time.Date(2024, 1, 10, 12, 0, 0, 0, time.UTC)
	activities := []entity.Activity{
		activityAt(time.Date(2024, 1, 10, 0, 30, 0, 0, time.UTC), 10),
		activityAt(time.Date(2024, 1, 10, 23, 0, 0, 0, time.UTC), 5),
		activityAt(time.Date(2024, 1, 9, 23, 59, 0, 0, time.UTC), 100),
	}

	if got := TodayPoints(activities, now, time.UTC); got != 15 {
		t.Errorf("Expected 15 points today, got %d", got)
	}
}

func TestTodayPointsFollowsLocation(t *testing.T) {
	// 23:00 UTC on the 9th is already the 10th in UTC+2.
	zone := time.FixedZone("UTC+2", 2*60*60)
	now := time.Date(2024, 1, 10, 12, 0, 0, 0, time.UTC)
	activities := []entity.Activity{activityAt(time.Date(2024, 1, 9, 23, 0, 0, 0, time.UTC), 7)}

	if got := TodayPoints(activities, now, zone); got != 7 {
		t.Errorf("Expected 7 in UTC+2, got %d", got)
	}
	if got := TodayPoints(activities, now, time.UTC); got != 0 {
		t.Errorf("Expected 0 in UTC, got %d", got)
	}
}

func TestPointsSince(t *testing.T) {
	activities := []entity.Activity{
		activityAt(anchor, 10),
		activityAt(anchor.AddDate(0, 0, -7), 20),
		activityAt(anchor.AddDate(0, 0, -8), 40),
	}

	if got := PointsSince(activities, anchor.AddDate(0, 0, -7)); got != 30 {
		t.Errorf("Expected 30, got %d", got)
	}
}

func TestWasteSegregation(t *testing.T) {
	activities := []entity.Activity{
		wasteActivity("wet", floatPtr(2)),
		wasteActivity("WET", floatPtr(1.5)),
		wasteActivity("Dry", floatPtr(1)),
		wasteActivity("hazardous", floatPtr(0.25)),
		wasteActivity("plastic", floatPtr(9)),
		wasteActivity("", floatPtr(3)),
		wasteActivity("dry", nil),
		wasteActivity("dry", floatPtr(0)),
	}

	got := WasteSegregation(activities)

	if got["wet"].Segregated != 3.5 {
		t.Errorf("Expected wet 3.5, got %v", got["wet"].Segregated)
	}
	if got["dry"].Segregated != 1 {
		t.Errorf("Expected dry 1, got %v", got["dry"].Segregated)
	}
	if got["hazardous"].Segregated != 0.25 {
		t.Errorf("Expected hazardous 0.25, got %v", got["hazardous"].Segregated)
	}
	if _, ok := got["plastic"]; ok {
		t.Errorf("Unknown category should not appear in the totals")
	}
	if len(got) != 3 {
		t.Errorf("Expected exactly 3 categories, got %d", len(got))
	}
}

func TestWasteSegregationPendingAlwaysZero(t *testing.T) {
	activities := []entity.Activity{
		wasteActivity("wet", floatPtr(2)),
		wasteActivity("dry", floatPtr(4)),
		wasteActivity("hazardous", floatPtr(1)),
	}

	for name, tally := range WasteSegregation(activities) {
		if tally.Pending != 0 {
			t.Errorf("Expected pending 0 for %s, got %v", name, tally.Pending)
		}
	}
	for name, tally := range WasteSegregation(nil) {
		if tally.Segregated != 0 || tally.Pending != 0 {
			t.Errorf("Expected zero tally for %s with no activities", name)
		}
	}
}

func TestCalendarWindow(t *testing.T) {
	now := time.Date(2024, 3, 2, 15, 0, 0, 0, time.UTC)

	days := Calendar(nil, now, 7)
	if len(days) != 7 {
		t.Fatalf("Expected 7 entries, got %d", len(days))
	}

	want := []string{"2024-02-25", "2024-02-26", "2024-02-27", "2024-02-28", "2024-02-29", "2024-03-01", "2024-03-02"}
	for i, d := range days {
		if d.Date != want[i] {
			t.Errorf("Entry %d: expected %s, got %s", i, want[i], d.Date)
		}
		if d.HasActivity || d.Points != 0 {
			t.Errorf("Entry %d: expected empty day, got %+v", i, d)
		}
	}
}

func TestCalendarMarksActivity(t *testing.T) {
	now := time.Date(2024, 3, 2, 15, 0, 0, 0, time.UTC)
	activities := []entity.Activity{
		activityAt(time.Date(2024, 3, 2, 1, 0, 0, 0, time.UTC), 10),
		activityAt(time.Date(2024, 3, 2, 9, 0, 0, 0, time.UTC), 15),
		activityAt(time.Date(2024, 2, 29, 23, 59, 0, 0, time.UTC), 5),
		activityAt(time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC), 99),
	}

	days := Calendar(activities, now, 3)
	if len(days) != 3 {
		t.Fatalf("Expected 3 entries, got %d", len(days))
	}

	if days[0].Date != "2024-02-29" || !days[0].HasActivity || days[0].Points != 5 {
		t.Errorf("Unexpected first day: %+v", days[0])
	}
	if days[1].HasActivity || days[1].Points != 0 {
		t.Errorf("Unexpected second day: %+v", days[1])
	}
	if !days[2].HasActivity || days[2].Points != 25 {
		t.Errorf("Unexpected today: %+v", days[2])
	}
}

func TestCalendarNonPositiveDays(t *testing.T) {
	if got := Calendar(nil, anchor, 0); len(got) != 0 {
		t.Errorf("Expected empty calendar for 0 days, got %d", len(got))
	}
	if got := Calendar(nil, anchor, -3); got == nil || len(got) != 0 {
		t.Errorf("Expected empty non-nil calendar for negative days")
	}
}

func TestCalendarClampsHugeWindow(t *testing.T) {
	if got := Calendar(nil, anchor, MaxCalendarDays+10); len(got) != MaxCalendarDays {
		t.Errorf("Expected %d entries, got %d", MaxCalendarDays, len(got))
	}
}
