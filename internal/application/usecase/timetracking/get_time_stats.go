package timetracking

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/lifeos/backend/internal/application/adapter"
	"github.com/lifeos/backend/internal/domain/entity"
)

// GetTimeStatsInput represents the input for time stats retrieval.
type GetTimeStatsInput struct {
	UserID uuid.UUID
}

// GetTimeStatsOutput carries both the today and rolling-week stats.
type GetTimeStatsOutput struct {
	Today entity.TimeStats
	Week  entity.TimeStats
}

// GetTimeStatsUseCase aggregates focus figures for today and the week.
type GetTimeStatsUseCase struct {
	timeEntryRepo adapter.TimeEntryRepository
}

// NewGetTimeStatsUseCase creates a new GetTimeStatsUseCase instance.
func NewGetTimeStatsUseCase(timeEntryRepo adapter.TimeEntryRepository) *GetTimeStatsUseCase {
	return &GetTimeStatsUseCase{timeEntryRepo: timeEntryRepo}
}

// Execute computes today's and the rolling week's time stats from a
// single week-wide load.
func (uc *GetTimeStatsUseCase) Execute(ctx context.Context, input GetTimeStatsInput) (*GetTimeStatsOutput, error) {
	now := time.Now().UTC()
	weekStart, weekEnd := WeekBounds(now)
	dayStart, dayEnd := DayBounds(now)

	entries, err := uc.timeEntryRepo.FindByFilter(ctx, adapter.TimeEntryFilter{
		UserID:    input.UserID,
		StartDate: &weekStart,
		EndDate:   &weekEnd,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to load time entries: %w", err)
	}

	return &GetTimeStatsOutput{
		Today: ComputeStats(entries, dayStart, dayEnd, false),
		Week:  ComputeStats(entries, weekStart, weekEnd, true),
	}, nil
}
