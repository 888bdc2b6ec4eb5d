package models

import (
	"time"

	"gorm.io/gorm"
)

// CalorieTargets is the daily energy and macro prescription computed from a
// biometric profile. Carbs are always the balancing term, so
// protein*4 + fat*9 + carbs*4 equals TargetCalories within rounding.
type CalorieTargets struct {
	TDEE           int `json:"tdee"`
	TargetCalories int `json:"target_calories"`
	ProteinG       int `json:"protein_g"`
	CarbsG         int `json:"carbs_g"`
	FatG           int `json:"fat_g"`
}

// ConsumedTotals aggregates everything a user logged for one calendar day.
type ConsumedTotals struct {
	Calories float64 `json:"calories"`
	ProteinG float64 `json:"protein_g"`
	CarbsG   float64 `json:"carbs_g"`
	FatG     float64 `json:"fat_g"`
}

// CalorieStatus classifies how far through the daily budget a user is.
type CalorieStatus string

const (
	CalorieStatusNormal  CalorieStatus = "normal"
	CalorieStatusAmber   CalorieStatus = "amber"
	CalorieStatusWarning CalorieStatus = "warning"
)

// DailyProgress compares consumed totals against the day's targets.
type DailyProgress struct {
	Targets           CalorieTargets `json:"targets"`
	Consumed          ConsumedTotals `json:"consumed"`
	CaloriesRemaining int            `json:"calories_remaining"`
	PercentComplete   int            `json:"percent_complete"`
	Status            CalorieStatus  `json:"status"`
}

// FoodItem is one entry of the static food table: macros per 100 g, keyed by
// a normalized lowercase name. The table is an ordered list because the
// free-text parser resolves names by first substring match.
type FoodItem struct {
	Name     string  `json:"name"`
	Calories float64 `json:"calories"`
	ProteinG float64 `json:"protein_g"`
	CarbsG   float64 `json:"carbs_g"`
	FatG     float64 `json:"fat_g"`
}

// ParsedNutrition is the aggregate estimate produced by the free-text meal
// parser. All-zero means nothing was recognized, which is a legitimate
// result, not an error.
type ParsedNutrition struct {
	Calories int     `json:"calories"`
	ProteinG float64 `json:"protein_g"`
	CarbsG   float64 `json:"carbs_g"`
	FatG     float64 `json:"fat_g"`
}

// IsZero reports whether the parser detected nothing at all.
func (p ParsedNutrition) IsZero() bool {
	return p.Calories == 0 && p.ProteinG == 0 && p.CarbsG == 0 && p.FatG == 0
}

// NutritionLog is one logged meal for a user on a given day.
type NutritionLog struct {
	ID          uint           `gorm:"primarykey" json:"id"`
	UserID      string         `gorm:"index:idx_nutrition_user_date;not null" json:"user_id"`
	Date        string         `gorm:"index:idx_nutrition_user_date;not null" json:"date"` // YYYY-MM-DD
	Description string         `gorm:"type:text" json:"description"`
	Calories    float64        `json:"calories"`
	ProteinG    float64        `json:"protein_g"`
	CarbsG      float64        `json:"carbs_g"`
	FatG        float64        `json:"fat_g"`
	CreatedAt   time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}

// TableName specifies the table name for the NutritionLog model.
func (NutritionLog) TableName() string {
	return "nutrition_logs"
}
