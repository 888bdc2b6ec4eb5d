package repository

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/Geraxi/Flight-Fuel-sub000/models"

	"gorm.io/gorm"
)

// NutritionLogRepository defines the interface for logged meal persistence.
// Entries are keyed by user and calendar date (YYYY-MM-DD).
type NutritionLogRepository interface {
	CreateLog(entry *models.NutritionLog) error
	GetLogsByUserAndDate(userID, date string) ([]*models.NutritionLog, error)
	DeleteLog(id uint) error
	PurgeDeletedBefore(cutoff time.Time) (int64, error)
}

type gormNutritionLogRepository struct {
	db *gorm.DB
}

// NewNutritionLogRepository creates a new GORM-backed NutritionLogRepository.
func NewNutritionLogRepository(db *gorm.DB) NutritionLogRepository {
	if db == nil {
		log.Fatal("FATAL: [NutritionLogRepository] gorm.DB instance is nil")
	}
	return &gormNutritionLogRepository{db: db}
}

// CreateLog persists one logged meal.
func (r *gormNutritionLogRepository) CreateLog(entry *models.NutritionLog) error {
	if entry == nil {
		return errors.New("log entry cannot be nil")
	}
	if entry.UserID == "" || entry.Date == "" {
		return errors.New("log entry requires userID and date")
	}
	if _, err := time.Parse("2006-01-02", entry.Date); err != nil {
		return fmt.Errorf("invalid log date %q: %w", entry.Date, err)
	}
	if err := r.db.Create(entry).Error; err != nil {
		log.Printf("ERROR: [NutritionLogRepository] Failed to create log for userID '%s' on %s: %v", entry.UserID, entry.Date, err)
		return fmt.Errorf("failed to create nutrition log: %w", err)
	}
	return nil
}

// GetLogsByUserAndDate returns all of a user's meals for one day, oldest
// first.
func (r *gormNutritionLogRepository) GetLogsByUserAndDate(userID, date string) ([]*models.NutritionLog, error) {
	if userID == "" {
		return nil, errors.New("userID cannot be empty")
	}
	var entries []*models.NutritionLog
	err := r.db.Where("user_id = ? AND date = ?", userID, date).Order("created_at asc").Find(&entries).Error
	if err != nil {
		log.Printf("ERROR: [NutritionLogRepository] Failed to get logs for userID '%s' on %s: %v", userID, date, err)
		return nil, fmt.Errorf("failed to get nutrition logs: %w", err)
	}
	return entries, nil
}

// DeleteLog soft-deletes one entry by ID.
func (r *gormNutritionLogRepository) DeleteLog(id uint) error {
	if id == 0 {
		return errors.New("log ID cannot be zero")
	}
	result := r.db.Delete(&models.NutritionLog{}, id)
	if result.Error != nil {
		log.Printf("ERROR: [NutritionLogRepository] Failed to delete log ID %d: %v", id, result.Error)
		return fmt.Errorf("failed to delete nutrition log %d: %w", id, result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("nutrition log %d not found", id)
	}
	return nil
}

// PurgeDeletedBefore hard-deletes soft-deleted rows older than cutoff.
// Called by the nightly maintenance job.
func (r *gormNutritionLogRepository) PurgeDeletedBefore(cutoff time.Time) (int64, error) {
	result := r.db.Unscoped().
		Where("deleted_at IS NOT NULL AND deleted_at < ?", cutoff).
		Delete(&models.NutritionLog{})
	if result.Error != nil {
		log.Printf("ERROR: [NutritionLogRepository] Failed to purge deleted logs: %v", result.Error)
		return 0, fmt.Errorf("failed to purge deleted nutrition logs: %w", result.Error)
	}
	return result.RowsAffected, nil
}
