package timetracking

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/lifeos/backend/internal/application/adapter"
	"github.com/lifeos/backend/internal/domain/entity"
	domainerror "github.com/lifeos/backend/internal/domain/error"
)

// MaxActivityLength is the maximum allowed length for activity labels.
const MaxActivityLength = 500

// CreateTimeEntryInput represents the input for time entry creation.
type CreateTimeEntryInput struct {
	UserID          uuid.UUID
	Activity        string
	Category        entity.TimeCategory
	DurationMinutes int
	StartTime       time.Time
	FocusQuality    entity.FocusQuality
	Interruptions   int
}

// CreateTimeEntryOutput represents the output of time entry creation.
type CreateTimeEntryOutput struct {
	Entry *entity.TimeEntry
}

// CreateTimeEntryUseCase handles time entry creation logic.
type CreateTimeEntryUseCase struct {
	timeEntryRepo adapter.TimeEntryRepository
}

// NewCreateTimeEntryUseCase creates a new CreateTimeEntryUseCase instance.
func NewCreateTimeEntryUseCase(timeEntryRepo adapter.TimeEntryRepository) *CreateTimeEntryUseCase {
	return &CreateTimeEntryUseCase{timeEntryRepo: timeEntryRepo}
}

// Execute performs the time entry creation. EndTime is always derived
// from the start time and duration, never taken from the caller.
func (uc *CreateTimeEntryUseCase) Execute(ctx context.Context, input CreateTimeEntryInput) (*CreateTimeEntryOutput, error) {
	if input.Activity == "" || len(input.Activity) > MaxActivityLength {
		return nil, domainerror.NewTimeError(
			domainerror.ErrCodeInvalidActivity,
			fmt.Sprintf("activity must be between 1 and %d characters", MaxActivityLength),
			domainerror.ErrInvalidActivity,
		)
	}

	if !entity.ValidTimeCategory(input.Category) {
		return nil, domainerror.NewTimeError(
			domainerror.ErrCodeInvalidTimeCategory,
			"unknown time category",
			domainerror.ErrInvalidTimeCategory,
		)
	}

	if input.DurationMinutes < 1 {
		return nil, domainerror.NewTimeError(
			domainerror.ErrCodeNonPositiveDuration,
			"duration must be at least one minute",
			domainerror.ErrNonPositiveDuration,
		)
	}

	if input.Interruptions < 0 {
		return nil, domainerror.NewTimeError(
			domainerror.ErrCodeNegativeInterruptions,
			"interruptions cannot be negative",
			domainerror.ErrNegativeInterruptions,
		)
	}

	if input.FocusQuality == "" {
		input.FocusQuality = entity.FocusQualityShallow
	}
	switch input.FocusQuality {
	case entity.FocusQualityDeep, entity.FocusQualityShallow, entity.FocusQualityDistracted:
	default:
		return nil, domainerror.NewTimeError(
			domainerror.ErrCodeInvalidFocusQuality,
			"focus quality must be 'deep', 'shallow' or 'distracted'",
			domainerror.ErrInvalidFocusQuality,
		)
	}

	if input.StartTime.IsZero() {
		input.StartTime = time.Now().UTC()
	}

	timeEntry := entity.NewTimeEntry(
		input.UserID,
		input.Activity,
		input.Category,
		input.DurationMinutes,
		input.StartTime,
		input.FocusQuality,
		input.Interruptions,
	)

	if err := uc.timeEntryRepo.Create(ctx, timeEntry); err != nil {
		return nil, fmt.Errorf("failed to create time entry: %w", err)
	}

	return &CreateTimeEntryOutput{Entry: timeEntry}, nil
}
