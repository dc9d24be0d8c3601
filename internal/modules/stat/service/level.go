package stat

import (
	"math"

	"anoa.com/civicwaste/internal/modules/stat/dto"
)

// Rank thresholds on all-time points. Ranks never demote.
const (
	PointsZeroWasteHero = 5000
	PointsEcoChampion   = 2000
	PointsRecycler      = 500
	PointsSorter        = 100
	PointsSeedling      = 0
)

// Weekly activity thresholds on points earned in the last 7 days.
const (
	WeeklyOnFire   = 100
	WeeklyTrending = 50
	WeeklyActive   = 20
)

type rankStep struct {
	name      string
	threshold int
}

// ladder is ordered from the highest rank down.
var ladder = []rankStep{
	{"Zero Waste Hero", PointsZeroWasteHero},
	{"Eco Champion", PointsEcoChampion},
	{"Recycler", PointsRecycler},
	{"Sorter", PointsSorter},
	{"Seedling", PointsSeedling},
}

// GetLevelStatus places allTimePoints on the ladder and labels weeklyPoints.
func GetLevelStatus(allTimePoints, weeklyPoints int) dto.LevelStatus {
	status := dto.LevelStatus{
		CurrentPoints: allTimePoints,
		WeeklyPoints:  weeklyPoints,
	}

	for i, step := range ladder {
		if allTimePoints < step.threshold && i < len(ladder)-1 {
			continue
		}
		status.RankName = step.name
		if i == 0 {
			status.NextRank = "Max Level"
			status.TargetPoints = step.threshold
			status.Progress = 100
			break
		}
		next := ladder[i-1]
		status.NextRank = next.name
		status.TargetPoints = next.threshold
		if allTimePoints > 0 {
			status.Progress = float64(allTimePoints) / float64(next.threshold) * 100
		}
		break
	}

	switch {
	case weeklyPoints >= WeeklyOnFire:
		status.WeeklyLabel = "🔥 On Fire!"
	case weeklyPoints >= WeeklyTrending:
		status.WeeklyLabel = "⚡ Trending"
	case weeklyPoints >= WeeklyActive:
		status.WeeklyLabel = "📈 Active"
	}

	status.Progress = math.Round(status.Progress*100) / 100

	return status
}
