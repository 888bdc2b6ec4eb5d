package repository

import (
	"errors"
	"fmt"
	"log"

	"github.com/Geraxi/Flight-Fuel-sub000/models"

	"gorm.io/gorm"
)

// ProfileRepository defines the interface for biometric profile persistence.
type ProfileRepository interface {
	CreateProfile(profile *models.BiometricProfile) error
	GetProfileByUserID(userID string) (*models.BiometricProfile, error)
	UpdateProfile(profile *models.BiometricProfile) error
	DeleteProfile(userID string) error
}

type gormProfileRepository struct {
	db *gorm.DB
}

// NewProfileRepository creates a new GORM-backed ProfileRepository.
func NewProfileRepository(db *gorm.DB) ProfileRepository {
	if db == nil {
		log.Fatal("FATAL: [ProfileRepository] gorm.DB instance is nil")
	}
	return &gormProfileRepository{db: db}
}

// CreateProfile persists a new biometric profile.
func (r *gormProfileRepository) CreateProfile(profile *models.BiometricProfile) error {
	if profile == nil {
		return errors.New("profile cannot be nil")
	}
	if profile.UserID == "" {
		return errors.New("profile userID cannot be empty")
	}
	if err := r.db.Create(profile).Error; err != nil {
		log.Printf("ERROR: [ProfileRepository] Failed to create profile for userID '%s': %v", profile.UserID, err)
		return fmt.Errorf("failed to create profile for userID %s: %w", profile.UserID, err)
	}
	return nil
}

// GetProfileByUserID fetches a user's profile. Returns (nil, nil) when the
// user has no profile yet, so callers can degrade to default targets.
func (r *gormProfileRepository) GetProfileByUserID(userID string) (*models.BiometricProfile, error) {
	if userID == "" {
		return nil, errors.New("userID cannot be empty")
	}
	var profile models.BiometricProfile
	err := r.db.Where("user_id = ?", userID).First(&profile).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		log.Printf("ERROR: [ProfileRepository] Failed to get profile for userID '%s': %v", userID, err)
		return nil, fmt.Errorf("failed to get profile for userID %s: %w", userID, err)
	}
	return &profile, nil
}

// UpdateProfile saves changes to an existing profile.
func (r *gormProfileRepository) UpdateProfile(profile *models.BiometricProfile) error {
	if profile == nil || profile.ID == 0 {
		return errors.New("profile must exist before update")
	}
	if err := r.db.Save(profile).Error; err != nil {
		log.Printf("ERROR: [ProfileRepository] Failed to update profile ID %d: %v", profile.ID, err)
		return fmt.Errorf("failed to update profile ID %d: %w", profile.ID, err)
	}
	return nil
}

// DeleteProfile soft-deletes a user's profile.
func (r *gormProfileRepository) DeleteProfile(userID string) error {
	if userID == "" {
		return errors.New("userID cannot be empty")
	}
	if err := r.db.Where("user_id = ?", userID).Delete(&models.BiometricProfile{}).Error; err != nil {
		log.Printf("ERROR: [ProfileRepository] Failed to delete profile for userID '%s': %v", userID, err)
		return fmt.Errorf("failed to delete profile for userID %s: %w", userID, err)
	}
	return nil
}
