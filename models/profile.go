package models

import (
	"time"

	"gorm.io/gorm"
)

// ActivityLevel describes how physically active a pilot is outside of duty.
type ActivityLevel string

const (
	ActivitySedentary  ActivityLevel = "sedentary"
	ActivityLight      ActivityLevel = "light"
	ActivityModerate   ActivityLevel = "moderate"
	ActivityActive     ActivityLevel = "active"
	ActivityVeryActive ActivityLevel = "very_active"
)

// activityMultipliers maps activity levels to their TDEE multiplier.
var activityMultipliers = map[ActivityLevel]float64{
	ActivitySedentary:  1.2,
	ActivityLight:      1.375,
	ActivityModerate:   1.55,
	ActivityActive:     1.725,
	ActivityVeryActive: 1.9,
}

// Multiplier returns the TDEE multiplier for the activity level.
// Unknown or empty levels fall back to the moderate multiplier.
func (a ActivityLevel) Multiplier() float64 {
	if m, ok := activityMultipliers[a]; ok {
		return m
	}
	return activityMultipliers[ActivityModerate]
}

// Goal describes what the pilot wants out of their nutrition and training.
type Goal string

const (
	GoalCut         Goal = "cut"
	GoalMaintain    Goal = "maintain"
	GoalPerformance Goal = "performance"
)

// NormalizeGoal maps raw goal strings, including the legacy labels still sent
// by older app builds, onto the closed Goal set. Anything unrecognized is
// treated as maintenance.
func NormalizeGoal(raw string) Goal {
	switch raw {
	case string(GoalCut), "Cut", "Lose Fat":
		return GoalCut
	case string(GoalPerformance), "Performance", "Build Muscle", "Bulk":
		return GoalPerformance
	case string(GoalMaintain), "Maintain", "Maintenance":
		return GoalMaintain
	default:
		return GoalMaintain
	}
}

// BiometricProfile holds the biometric and preference data used by the
// calorie and training calculators. One row per user.
type BiometricProfile struct {
	ID            uint           `gorm:"primarykey" json:"id"`
	UserID        string         `gorm:"uniqueIndex;not null" json:"user_id"`
	HeightCM      int            `json:"height_cm"`
	WeightKG      int            `json:"weight_kg"`
	Age           int            `json:"age"`
	ActivityLevel ActivityLevel  `gorm:"type:varchar(50)" json:"activity_level"`
	Goal          string         `gorm:"type:varchar(50)" json:"goal"` // raw label; normalized on read
	TrainingFreq  int            `json:"training_freq"`
	CreatedAt     time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`
}

// TableName specifies the table name for the BiometricProfile model.
func (BiometricProfile) TableName() string {
	return "biometric_profiles"
}

// NormalizedGoal returns the profile's goal mapped onto the closed Goal set.
func (p *BiometricProfile) NormalizedGoal() Goal {
	return NormalizeGoal(p.Goal)
}
