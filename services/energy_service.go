package services

import (
	"math"

	"github.com/Geraxi/Flight-Fuel-sub000/models"
)

const (
	// fallbackTDEE is returned when the profile is missing height, weight or age.
	fallbackTDEE = 2000
	// fallbackWeightKG is assumed for the protein calculation when weight is missing.
	fallbackWeightKG = 70
)

// EnergyService computes daily energy targets and progress from a biometric
// profile. All methods are pure; the service holds no state.
type EnergyService interface {
	CalculateTDEE(profile *models.BiometricProfile) int
	CalculateCalorieTargets(profile *models.BiometricProfile) models.CalorieTargets
	CalculateDailyProgress(targets models.CalorieTargets, consumed models.ConsumedTotals) models.DailyProgress
	GetCalorieStatus(percentComplete int) models.CalorieStatus
}

type energyService struct{}

// NewEnergyService creates a new instance of EnergyService.
func NewEnergyService() EnergyService {
	return &energyService{}
}

// CalculateTDEE estimates total daily energy expenditure via Mifflin-St Jeor.
// The profile has no sex field, so the male coefficient set is used for all
// users. A profile missing height, weight or age gets the fixed fallback
// instead of an error.
func (s *energyService) CalculateTDEE(profile *models.BiometricProfile) int {
	if profile == nil || profile.HeightCM <= 0 || profile.WeightKG <= 0 || profile.Age <= 0 {
		return fallbackTDEE
	}
	bmr := 10*float64(profile.WeightKG) + 6.25*float64(profile.HeightCM) - 5*float64(profile.Age) + 5
	return int(math.Round(bmr * profile.ActivityLevel.Multiplier()))
}

// CalculateCalorieTargets derives the daily calorie and macro prescription.
// Carbs are computed last as the balancing term, so the macro identity
// protein*4 + fat*9 + carbs*4 == targetCalories holds within rounding.
func (s *energyService) CalculateCalorieTargets(profile *models.BiometricProfile) models.CalorieTargets {
	tdee := s.CalculateTDEE(profile)

	goal := models.GoalMaintain
	if profile != nil {
		goal = profile.NormalizedGoal()
	}

	var target int
	switch goal {
	case models.GoalCut:
		target = int(math.Round(float64(tdee) * 0.8))
	case models.GoalPerformance:
		target = int(math.Round(float64(tdee) * 1.15))
	default:
		target = tdee
	}

	weight := fallbackWeightKG
	if profile != nil && profile.WeightKG > 0 {
		weight = profile.WeightKG
	}
	proteinPerKG := 1.8
	if goal == models.GoalPerformance {
		proteinPerKG = 2.2
	}
	protein := int(math.Round(float64(weight) * proteinPerKG))

	fat := int(math.Round(float64(target) * 0.25 / 9))
	carbs := int(math.Round(float64(target-protein*4-fat*9) / 4))

	return models.CalorieTargets{
		TDEE:           tdee,
		TargetCalories: target,
		ProteinG:       protein,
		CarbsG:         carbs,
		FatG:           fat,
	}
}

// CalculateDailyProgress compares one day's consumed totals against targets.
// Remaining calories never go negative and percent is clamped to [0, 100].
func (s *energyService) CalculateDailyProgress(targets models.CalorieTargets, consumed models.ConsumedTotals) models.DailyProgress {
	remaining := targets.TargetCalories - int(math.Round(consumed.Calories))
	if remaining < 0 {
		remaining = 0
	}

	percent := 0
	if targets.TargetCalories > 0 {
		percent = int(math.Round(consumed.Calories / float64(targets.TargetCalories) * 100))
	}
	if percent > 100 {
		percent = 100
	}
	if percent < 0 {
		percent = 0
	}

	return models.DailyProgress{
		Targets:           targets,
		Consumed:          consumed,
		CaloriesRemaining: remaining,
		PercentComplete:   percent,
		Status:            s.GetCalorieStatus(percent),
	}
}

// GetCalorieStatus classifies a percent-complete value for the UI.
func (s *energyService) GetCalorieStatus(percentComplete int) models.CalorieStatus {
	switch {
	case percentComplete >= 100:
		return models.CalorieStatusWarning
	case percentComplete >= 80:
		return models.CalorieStatusAmber
	default:
		return models.CalorieStatusNormal
	}
}
