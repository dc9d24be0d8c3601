package dto

type WasteTally struct {
	Segregated float64 `json:"segregated"`
	Pending    float64 `json:"pending"`
}

type CalendarDay struct {
	Date        string `json:"date"`
	HasActivity bool   `json:"hasActivity"`
	Points      int    `json:"points"`
}

// LevelStatus describes where a user's all-time points place them on the
// recycling ladder and how busy they were over the last week.
type LevelStatus struct {
	RankName      string  `json:"rankName"`
	NextRank      string  `json:"nextRank"`
	CurrentPoints int     `json:"currentPoints"`
	TargetPoints  int     `json:"targetPoints"`
	Progress      float64 `json:"progress"` // percentage, two decimals
	WeeklyPoints  int     `json:"weeklyPoints"`
	WeeklyLabel   string  `json:"weeklyLabel"`
}

type UserStatsResponse struct {
	TodayPoints      int                    `json:"todayPoints"`
	TotalPoints      int                    `json:"totalPoints"`
	CurrentStreak    int                    `json:"currentStreak"`
	WasteSegregation map[string]*WasteTally `json:"wasteSegregation"`
	Level            LevelStatus            `json:"level"`
}

type StreakCalendarResponse struct {
	StreakData    []CalendarDay `json:"streakData"`
	CurrentStreak int           `json:"currentStreak"`
}

type UserCountResponse struct {
	TotalUsers int64 `json:"total_users"`
}
