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

// taskRepository implements the adapter.TaskRepository interface.
type taskRepository struct {
	db *gorm.DB
}

// NewTaskRepository creates a new task repository instance.
func NewTaskRepository(db *gorm.DB) adapter.TaskRepository {
	return &taskRepository{db: db}
}

// Create creates a new task with its subtasks.
func (r *taskRepository) Create(ctx context.Context, task *entity.Task) error {
	taskModel := model.TaskFromEntity(task)
	return r.db.WithContext(ctx).Create(taskModel).Error
}

// FindByID retrieves a task by its ID, including subtasks.
func (r *taskRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Task, error) {
	var taskModel model.TaskModel
	result := r.db.WithContext(ctx).
		Preload("Subtasks").
		Where("id = ?", id).
		First(&taskModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrTaskNotFound
		}
		return nil, result.Error
	}
	return taskModel.ToEntity(), nil
}

// FindByFilter retrieves tasks matching the filter, newest first.
func (r *taskRepository) FindByFilter(ctx context.Context, filter adapter.TaskFilter) ([]*entity.Task, error) {
	query := r.db.WithContext(ctx).
		Preload("Subtasks").
		Where("user_id = ?", filter.UserID)

	if filter.Domain != "" {
		query = query.Where("domain = ?", filter.Domain)
	}
	if filter.Status != nil {
		query = query.Where("status = ?", string(*filter.Status))
	}

	var taskModels []model.TaskModel
	if err := query.Order("created_at DESC").Find(&taskModels).Error; err != nil {
		return nil, err
	}

	tasks := make([]*entity.Task, len(taskModels))
	for i, tm := range taskModels {
		tasks[i] = tm.ToEntity()
	}
	return tasks, nil
}

// FindByUser retrieves all tasks for a given user.
func (r *taskRepository) FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Task, error) {
	return r.FindByFilter(ctx, adapter.TaskFilter{UserID: userID})
}

// CountCompletedSince counts tasks completed at or after the given time.
func (r *taskRepository) CountCompletedSince(ctx context.Context, userID uuid.UUID, since time.Time) (int, error) {
	var count int64
	query := r.db.WithContext(ctx).Model(&model.TaskModel{}).
		Where("user_id = ? AND status = ?", userID, string(entity.TaskStatusCompleted))
	if !since.IsZero() {
		query = query.Where("completed_at >= ?", since)
	}
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return int(count), nil
}

// CountCompletedBetween counts tasks completed in [from, to).
func (r *taskRepository) CountCompletedBetween(ctx context.Context, userID uuid.UUID, from, to time.Time) (int, error) {
	var count int64
	result := r.db.WithContext(ctx).Model(&model.TaskModel{}).
		Where("user_id = ? AND status = ? AND completed_at >= ? AND completed_at < ?",
			userID, string(entity.TaskStatusCompleted), from, to).
		Count(&count)
	if result.Error != nil {
		return 0, result.Error
	}
	return int(count), nil
}

// Update updates an existing task and replaces its subtask rows.
func (r *taskRepository) Update(ctx context.Context, task *entity.Task) error {
	taskModel := model.TaskFromEntity(task)
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("task_id = ?", task.ID).Delete(&model.SubtaskModel{}).Error; err != nil {
			return err
		}
		return tx.Session(&gorm.Session{FullSaveAssociations: true}).Save(taskModel).Error
	})
}

// Delete soft-deletes a task and its subtasks.
func (r *taskRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("task_id = ?", id).Delete(&model.SubtaskModel{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", id).Delete(&model.TaskModel{}).Error
	})
}
