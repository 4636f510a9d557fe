package journal

import (
	"testing"

	"github.com/lifeos/backend/internal/domain/entity"
)

func TestRecentMoodAverage(t *testing.T) {
	tests := []struct {
		name  string
		moods []int
		want  float64
	}{
		{"no entries returns zero", nil, 0},
		{"single entry", []int{7}, 7},
		{"averages across entries", []int{4, 6, 8}, 6},
		{"fractional average", []int{3, 4}, 3.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var entries []*entity.JournalEntry
			for _, m := range tt.moods {
				entries = append(entries, &entity.JournalEntry{Mood: m})
			}
			if got := RecentMoodAverage(entries); got != tt.want {
				t.Errorf("RecentMoodAverage() = %v, want %v", got, tt.want)
			}
		})
	}
}
