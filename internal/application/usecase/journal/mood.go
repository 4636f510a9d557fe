// Package journal contains journal entry use cases.
package journal

import "github.com/lifeos/backend/internal/domain/entity"

// RecentMoodAverage returns the mean mood over the given entries, or 0
// when the list is empty. Callers treat 0 as "no signal".
func RecentMoodAverage(entries []*entity.JournalEntry) float64 {
	if len(entries) == 0 {
		return 0
	}

	total := 0
	for _, e := range entries {
		total += e.Mood
	}

	return float64(total) / float64(len(entries))
}
