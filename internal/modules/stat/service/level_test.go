package stat

import "testing"

func TestGetLevelStatus(t *testing.T) {
	tests := []struct {
		name     string
		points   int
		rank     string
		next     string
		target   int
		progress float64
	}{
		{"no points", 0, "Seedling", "Sorter", PointsSorter, 0},
		{"negative points", -20, "Seedling", "Sorter", PointsSorter, 0},
		{"halfway to sorter", 50, "Seedling", "Sorter", PointsSorter, 50},
		{"exactly sorter", 100, "Sorter", "Recycler", PointsRecycler, 20},
		{"recycler", 1000, "Recycler", "Eco Champion", PointsEcoChampion, 50},
		{"champion", 3000, "Eco Champion", "Zero Waste Hero", PointsZeroWasteHero, 60},
		{"max", 9000, "Zero Waste Hero", "Max Level", PointsZeroWasteHero, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := GetLevelStatus(tt.points, 0)
			if got.RankName != tt.rank || got.NextRank != tt.next {
				t.Errorf("Expected %s -> %s, got %s -> %s", tt.rank, tt.next, got.RankName, got.NextRank)
			}
			if got.TargetPoints != tt.target {
				t.Errorf("Expected target %d, got %d", tt.target, got.TargetPoints)
			}
			if got.Progress != tt.progress {
				t.Errorf("Expected progress %v, got %v", tt.progress, got.Progress)
			}
		})
	}
}

func TestGetLevelStatusWeeklyLabel(t *testing.T) {
	tests := []struct {
		weekly int
		label  string
	}{
		{0, ""},
		{19, ""},
		{20, "📈 Active"},
		{50, "⚡ Trending"},
		{150, "🔥 On Fire!"},
	}

	for _, tt := range tests {
		if got := GetLevelStatus(0, tt.weekly).WeeklyLabel; got != tt.label {
			t.Errorf("Weekly %d: expected %q, got %q", tt.weekly, tt.label, got)
		}
	}
}

func TestGetLevelStatusRoundsProgress(t *testing.T) {
	// 333 of 500 is 66.6%.
	if got := GetLevelStatus(333, 0).Progress; got != 66.6 {
		t.Errorf("Expected 66.6, got %v", got)
	}
	if got := GetLevelStatus(1, 0).Progress; got != 1 {
		t.Errorf("Expected 1, got %v", got)
	}
}
