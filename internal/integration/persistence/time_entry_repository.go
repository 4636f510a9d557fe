package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/lifeos/backend/internal/application/adapter"
	"github.com/lifeos/backend/internal/domain/entity"
	domainerror "github.com/lifeos/backend/internal/domain/error"
	"github.com/lifeos/backend/internal/integration/persistence/model"
)

// timeEntryRepository implements the adapter.TimeEntryRepository interface.
type timeEntryRepository struct {
	db *gorm.DB
}

// NewTimeEntryRepository creates a new time entry repository instance.
func NewTimeEntryRepository(db *gorm.DB) adapter.TimeEntryRepository {
	return &timeEntryRepository{db: db}
}

// Create creates a new time entry.
func (r *timeEntryRepository) Create(ctx context.Context, entry *entity.TimeEntry) error {
	entryModel := model.TimeEntryFromEntity(entry)
	return r.db.WithContext(ctx).Create(entryModel).Error
}

// FindByID retrieves a time entry by its ID.
func (r *timeEntryRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.TimeEntry, error) {
	var entryModel model.TimeEntryModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&entryModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrTimeEntryNotFound
		}
		return nil, result.Error
	}
	return entryModel.ToEntity(), nil
}

// FindByFilter retrieves time entries matching the filter, newest first.
func (r *timeEntryRepository) FindByFilter(ctx context.Context, filter adapter.TimeEntryFilter) ([]*entity.TimeEntry, error) {
	query := r.db.WithContext(ctx).Where("user_id = ?", filter.UserID)

	if filter.Category != "" {
		query = query.Where("category = ?", filter.Category)
	}
	if filter.StartDate != nil {
		query = query.Where("start_time >= ?", filter.StartDate)
	}
	if filter.EndDate != nil {
		query = query.Where("start_time < ?", filter.EndDate)
	}

	var entryModels []model.TimeEntryModel
	if err := query.Order("start_time DESC").Find(&entryModels).Error; err != nil {
		return nil, err
	}

	entries := make([]*entity.TimeEntry, len(entryModels))
	for i, em := range entryModels {
		entries[i] = em.ToEntity()
	}
	return entries, nil
}

// Delete soft-deletes a time entry scoped to the given user.
func (r *timeEntryRepository) Delete(ctx context.Context, id uuid.UUID, userID uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&model.TimeEntryModel{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrTimeEntryNotFound
	}
	return nil
}
