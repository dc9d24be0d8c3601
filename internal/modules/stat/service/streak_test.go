package stat

import (
	"testing"
	"time"

	"anoa.com/civicwaste/internal/entity"
	"github.com/google/uuid"
)

var anchor = time.Date(2024, 1, 10, 10, 0, 0, 0, time.UTC)

func activityAt(ts time.Time, points int) entity.Activity {
	return entity.Activity{ID: uuid.New(), Timestamp: ts, Points: points}
}

func TestCurrentStreakEmpty(t *testing.T) {
	if got := CurrentStreak(nil); got != 0 {
		t.Errorf("Expected 0 for no activities, got %d", got)
	}
}

func TestCurrentStreakSingle(t *testing.T) {
	if got := CurrentStreak([]entity.Activity{activityAt(anchor, 10)}); got != 1 {
		t.Errorf("Expected 1 for a single activity, got %d", got)
	}
}

func TestCurrentStreakConsecutiveDays(t *testing.T) {
	// Recorded oldest first; the walk must sort them itself.
	activities := []entity.Activity{
		activityAt(anchor.Add(-48*time.Hour), 10),
		activityAt(anchor.Add(-24*time.Hour), 10),
		activityAt(anchor, 10),
	}

	if got := CurrentStreak(activities); got != 3 {
		t.Errorf("Expected streak of 3, got %d", got)
	}
}

func TestCurrentStreakGapBreaks(t *testing.T) {
	activities := []entity.Activity{
		activityAt(anchor, 10),
		activityAt(anchor.Add(-72*time.Hour), 10),
	}

	if got := CurrentStreak(activities); got != 1 {
		t.Errorf("Expected streak of 1 after a 3 day gap, got %d", got)
	}
}

func TestCurrentStreakGapStopsWalk(t *testing.T) {
	activities := []entity.Activity{
		activityAt(anchor, 10),
		activityAt(anchor.Add(-24*time.Hour), 10),
		activityAt(anchor.Add(-5*24*time.Hour), 10),
		activityAt(anchor.Add(-6*24*time.Hour), 10),
	}

	if got := CurrentStreak(activities); got != 2 {
		t.Errorf("Expected streak of 2, got %d", got)
	}
}

func TestCurrentStreakSameInstantSkipped(t *testing.T) {
	activities := []entity.Activity{
		activityAt(anchor, 10),
		activityAt(anchor, 10),
	}

	if got := CurrentStreak(activities); got != 1 {
		t.Errorf("Expected duplicate instant not to extend streak, got %d", got)
	}

	activities = append(activities, activityAt(anchor.Add(-24*time.Hour), 10))
	if got := CurrentStreak(activities); got != 2 {
		t.Errorf("Expected walk to continue past the duplicate, got %d", got)
	}
}

func TestCurrentStreakUsesElapsedTimeNotDates(t *testing.T) {
	// One hour apart on the same date still rounds up to a one-day gap.
	activities := []entity.Activity{
		activityAt(anchor, 10),
		activityAt(anchor.Add(-time.Hour), 10),
	}
	if got := CurrentStreak(activities); got != 2 {
		t.Errorf("Expected an hour gap to count as one day, got %d", got)
	}

	// 24h01m apart rounds up to two days and breaks the streak.
	activities = []entity.Activity{
		activityAt(anchor, 10),
		activityAt(anchor.Add(-24*time.Hour-time.Minute), 10),
	}
	if got := CurrentStreak(activities); got != 1 {
		t.Errorf("Expected a 24h01m gap to break the streak, got %d", got)
	}

	// 23h59m apart across midnight continues it.
	early := time.Date(2024, 1, 10, 0, 10, 0, 0, time.UTC)
	activities = []entity.Activity{
		activityAt(early, 10),
		activityAt(early.Add(-23*time.Hour-59*time.Minute), 10),
	}
	if got := CurrentStreak(activities); got != 2 {
		t.Errorf("Expected a 23h59m gap to continue the streak, got %d", got)
	}
}

func TestCurrentStreakDoesNotReorderInput(t *testing.T) {
	activities := []entity.Activity{
		activityAt(anchor.Add(-24*time.Hour), 1),
		activityAt(anchor, 2),
	}

	CurrentStreak(activities)

	if activities[0].Points != 1 || activities[1].Points != 2 {
		t.Errorf("Input slice was reordered")
	}
}

func TestDiffDays(t *testing.T) {
	tests := []struct {
		name string
		gap  time.Duration
		want int64
	}{
		{"same instant", 0, 0},
		{"one millisecond", time.Millisecond, 1},
		{"exactly one day", 24 * time.Hour, 1},
		{"one day and a millisecond", 24*time.Hour + time.Millisecond, 2},
		{"three days", 72 * time.Hour, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := diffDays(anchor, anchor.Add(-tt.gap)); got != tt.want {
				t.Errorf("Expected %d, got %d", tt.want, got)
			}
			if got := diffDays(anchor.Add(-tt.gap), anchor); got != tt.want {
				t.Errorf("Expected %d for reversed order, got %d", tt.want, got)
			}
		})
	}
}
