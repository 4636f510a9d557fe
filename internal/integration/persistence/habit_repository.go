package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/lifeos/backend/internal/application/adapter"
	"github.com/lifeos/backend/internal/domain/entity"
	domainerror "github.com/lifeos/backend/internal/domain/error"
	"github.com/lifeos/backend/internal/integration/persistence/model"
)

// habitRepository implements the adapter.HabitRepository interface.
type habitRepository struct {
	db *gorm.DB
}

// NewHabitRepository creates a new habit repository instance.
func NewHabitRepository(db *gorm.DB) adapter.HabitRepository {
	return &habitRepository{db: db}
}

// Create creates a new habit.
func (r *habitRepository) Create(ctx context.Context, habit *entity.Habit) error {
	habitModel := model.HabitFromEntity(habit)
	return r.db.WithContext(ctx).Create(habitModel).Error
}

// FindByID retrieves a habit by its ID, including its completion log.
func (r *habitRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Habit, error) {
	var habitModel model.HabitModel
	result := r.db.WithContext(ctx).
		Preload("Completions").
		Where("id = ?", id).
		First(&habitModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrHabitNotFound
		}
		return nil, result.Error
	}
	return habitModel.ToEntity(), nil
}

// FindByUser retrieves all habits for a user, completion logs included.
func (r *habitRepository) FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Habit, error) {
	var habitModels []model.HabitModel
	result := r.db.WithContext(ctx).
		Preload("Completions").
		Where("user_id = ?", userID).
		Order("created_at ASC").
		Find(&habitModels)
	if result.Error != nil {
		return nil, result.Error
	}

	habits := make([]*entity.Habit, len(habitModels))
	for i, hm := range habitModels {
		habits[i] = hm.ToEntity()
	}
	return habits, nil
}

// UpsertCompletion records or flips the completion state for a single
// day, keeping at most one record per (habit, date).
func (r *habitRepository) UpsertCompletion(ctx context.Context, habitID uuid.UUID, date time.Time, completed bool) error {
	var existing model.HabitCompletionModel
	result := r.db.WithContext(ctx).
		Where("habit_id = ? AND date = ?", habitID, date).
		First(&existing)

	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return r.db.WithContext(ctx).Create(&model.HabitCompletionModel{
				ID:        uuid.New(),
				HabitID:   habitID,
				Date:      date,
				Completed: completed,
				CreatedAt: time.Now().UTC(),
			}).Error
		}
		return result.Error
	}

	return r.db.WithContext(ctx).Model(&existing).Update("completed", completed).Error
}

// Delete soft-deletes a habit and hard-deletes its completion log.
func (r *habitRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("habit_id = ?", id).Delete(&model.HabitCompletionModel{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", id).Delete(&model.HabitModel{}).Error
	})
}
