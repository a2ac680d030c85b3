package challenge

import "testing"

func TestDailyCap(t *testing.T) {
	tests := []struct {
		level string
		want  int
	}{
		{LevelBeginner, 5},
		{LevelIntermediate, 7},
		{LevelAdvanced, 10},
		{"Expert", 5},
		{"", 5},
	}

	for _, tt := range tests {
		if got := DailyCap(tt.level); got != tt.want {
			t.Errorf("DailyCap(%q) = %d, want %d", tt.level, got, tt.want)
		}
	}
}
