package persistence

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/lifeos/backend/internal/application/adapter"
	"github.com/lifeos/backend/internal/domain/entity"
	domainerror "github.com/lifeos/backend/internal/domain/error"
	"github.com/lifeos/backend/internal/integration/persistence/model"
)

// journalRepository implements the adapter.JournalRepository interface.
type journalRepository struct {
	db *gorm.DB
}

// NewJournalRepository creates a new journal repository instance.
func NewJournalRepository(db *gorm.DB) adapter.JournalRepository {
	return &journalRepository{db: db}
}

// Create creates a new journal entry.
func (r *journalRepository) Create(ctx context.Context, entry *entity.JournalEntry) error {
	entryModel := model.JournalEntryFromEntity(entry)
	return r.db.WithContext(ctx).Create(entryModel).Error
}

// FindByFilter retrieves journal entries matching the filter, newest first.
func (r *journalRepository) FindByFilter(ctx context.Context, filter adapter.JournalFilter) ([]*entity.JournalEntry, error) {
	query := r.db.WithContext(ctx).Where("user_id = ?", filter.UserID)

	if filter.StartDate != nil {
		query = query.Where("created_at >= ?", filter.StartDate)
	}
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}

	var entryModels []model.JournalEntryModel
	if err := query.Order("created_at DESC").Find(&entryModels).Error; err != nil {
		return nil, err
	}

	entries := make([]*entity.JournalEntry, len(entryModels))
	for i, em := range entryModels {
		entries[i] = em.ToEntity()
	}
	return entries, nil
}

// FindRecent retrieves the most recent entries for a user, newest first.
func (r *journalRepository) FindRecent(ctx context.Context, userID uuid.UUID, limit int) ([]*entity.JournalEntry, error) {
	return r.FindByFilter(ctx, adapter.JournalFilter{UserID: userID, Limit: limit})
}

// Delete soft-deletes a journal entry scoped to the given user.
func (r *journalRepository) Delete(ctx context.Context, id uuid.UUID, userID uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&model.JournalEntryModel{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrJournalEntryNotFound
	}
	return nil
}
