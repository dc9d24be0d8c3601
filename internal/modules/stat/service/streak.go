package stat

import (
	"slices"
	"time"

	"anoa.com/civicwaste/internal/entity"
)

const dayMillis = int64(24 * time.Hour / time.Millisecond)

// CurrentStreak walks the activities from newest to oldest and counts how many
// consecutive one-day gaps it can follow.
//
// A gap is the absolute elapsed time between the current anchor and the next older
// activity, in whole days rounded up. A gap of 1 extends the streak and moves the
// anchor, a gap above 1 ends the walk, a gap of 0 (identical instants) is skipped.
// Calendar dates play no part here, so two activities an hour apart count as a
// one-day gap.
func CurrentStreak(activities []entity.Activity) int {
	if len(activities) == 0 {
		return 0
	}

	sorted := slices.Clone(activities)
	slices.SortStableFunc(sorted, func(a, b entity.Activity) int {
		return b.Timestamp.Compare(a.Timestamp)
	})

	streak := 1
	last := sorted[0].Timestamp
	for _, a := range sorted[1:] {
		diff := diffDays(last, a.Timestamp)
		if diff == 1 {
			streak++
			last = a.Timestamp
		} else if diff > 1 {
			break
		}
	}

	return streak
}

// diffDays is ceil(|a-b| / 1 day) over millisecond timestamps.
func diffDays(a, b time.Time) int64 {
	ms := a.Sub(b).Milliseconds()
	if ms < 0 {
		ms = -ms
	}
	return (ms + dayMillis - 1) / dayMillis
}
