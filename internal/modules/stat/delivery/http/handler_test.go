package handler

import "testing"

func TestParseDays(t *testing.T) {
	tests := []struct {
		raw  string
		want int
	}{
		{"", 30},
		{"7", 7},
		{"0", 30},
		{"abc", 30},
		{"14days", 14},
		{"-3", -3},
		{"+5", 5},
		{"-", 30},
		{" 7", 7},
		{"\t\n 12 days", 12},
		{"   ", 30},
	}

	for _, tt := range tests {
		if got := parseDays(tt.raw); got != tt.want {
			t.Errorf("parseDays(%q) = %d, want %d", tt.raw, got, tt.want)
		}
	}
}
