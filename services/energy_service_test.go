package services

import (
	"testing"

	"github.com/Geraxi/Flight-Fuel-sub000/models"

	"github.com/stretchr/testify/assert"
)

func validProfile() *models.BiometricProfile {
	return &models.BiometricProfile{
		UserID:        "user-1",
		HeightCM:      180,
		WeightKG:      80,
		Age:           35,
		ActivityLevel: models.ActivityModerate,
		Goal:          "Maintain",
	}
}

func TestCalculateTDEE_MifflinStJeor(t *testing.T) {
	svc := NewEnergyService()

	// BMR = 10*80 + 6.25*180 - 5*35 + 5 = 1755; *1.55 = 2720.25
	assert.Equal(t, 2720, svc.CalculateTDEE(validProfile()))
}

func TestCalculateTDEE_ActivityMultipliers(t *testing.T) {
	svc := NewEnergyService()

	cases := []struct {
		level    models.ActivityLevel
		expected int
	}{
		{models.ActivitySedentary, 2106},  // 1755 * 1.2
		{models.ActivityLight, 2413},      // 1755 * 1.375 = 2413.125
		{models.ActivityModerate, 2720},   // 1755 * 1.55
		{models.ActivityActive, 3027},     // 1755 * 1.725 = 3027.375
		{models.ActivityVeryActive, 3335}, // 1755 * 1.9 = 3334.5
	}
	for _, tc := range cases {
		p := validProfile()
		p.ActivityLevel = tc.level
		assert.Equal(t, tc.expected, svc.CalculateTDEE(p), "level %s", tc.level)
	}

	// Unrecognized level falls back to the moderate multiplier.
	p := validProfile()
	p.ActivityLevel = "astronaut"
	assert.Equal(t, 2720, svc.CalculateTDEE(p))
}

func TestCalculateTDEE_FallbackForIncompleteProfile(t *testing.T) {
	svc := NewEnergyService()

	levels := []models.ActivityLevel{
		models.ActivitySedentary, models.ActivityLight, models.ActivityModerate,
		models.ActivityActive, models.ActivityVeryActive, "",
	}
	goals := []string{"Cut", "Maintain", "Performance", "Lose Fat", "Build Muscle", ""}

	for _, level := range levels {
		for _, goal := range goals {
			for _, zero := range []string{"height", "weight", "age"} {
				p := validProfile()
				p.ActivityLevel = level
				p.Goal = goal
				switch zero {
				case "height":
					p.HeightCM = 0
				case "weight":
					p.WeightKG = 0
				case "age":
					p.Age = 0
				}
				assert.Equal(t, 2000, svc.CalculateTDEE(p), "zero %s, level %s, goal %s", zero, level, goal)
			}
		}
	}

	assert.Equal(t, 2000, svc.CalculateTDEE(nil))
}

func TestCalculateCalorieTargets_PerGoal(t *testing.T) {
	svc := NewEnergyService()

	t.Run("maintain", func(t *testing.T) {
		targets := svc.CalculateCalorieTargets(validProfile())
		assert.Equal(t, 2720, targets.TDEE)
		assert.Equal(t, 2720, targets.TargetCalories)
		assert.Equal(t, 144, targets.ProteinG) // 80 * 1.8
		assert.Equal(t, 76, targets.FatG)      // 2720*0.25/9 = 75.56
		assert.Equal(t, 365, targets.CarbsG)
	})

	t.Run("cut", func(t *testing.T) {
		p := validProfile()
		p.Goal = "Cut"
		targets := svc.CalculateCalorieTargets(p)
		assert.Equal(t, 2176, targets.TargetCalories) // 2720 * 0.8
		assert.Equal(t, 144, targets.ProteinG)
		assert.Equal(t, 60, targets.FatG)
		assert.Equal(t, 265, targets.CarbsG)
	})

	t.Run("performance", func(t *testing.T) {
		p := validProfile()
		p.Goal = "Performance"
		targets := svc.CalculateCalorieTargets(p)
		assert.Equal(t, 3128, targets.TargetCalories) // 2720 * 1.15
		assert.Equal(t, 176, targets.ProteinG)        // 80 * 2.2
	})

	t.Run("legacy aliases", func(t *testing.T) {
		loseFat := validProfile()
		loseFat.Goal = "Lose Fat"
		cut := validProfile()
		cut.Goal = "Cut"
		assert.Equal(t, svc.CalculateCalorieTargets(cut), svc.CalculateCalorieTargets(loseFat))

		bulk := validProfile()
		bulk.Goal = "Bulk"
		buildMuscle := validProfile()
		buildMuscle.Goal = "Build Muscle"
		perf := validProfile()
		perf.Goal = "Performance"
		assert.Equal(t, svc.CalculateCalorieTargets(perf), svc.CalculateCalorieTargets(bulk))
		assert.Equal(t, svc.CalculateCalorieTargets(perf), svc.CalculateCalorieTargets(buildMuscle))
	})
}

func TestCalculateCalorieTargets_MacroIdentity(t *testing.T) {
	svc := NewEnergyService()

	profiles := []*models.BiometricProfile{
		validProfile(),
		{UserID: "u", HeightCM: 165, WeightKG: 58, Age: 24, ActivityLevel: models.ActivityLight, Goal: "Cut"},
		{UserID: "u", HeightCM: 193, WeightKG: 104, Age: 51, ActivityLevel: models.ActivityVeryActive, Goal: "Bulk"},
		{UserID: "u", HeightCM: 172, WeightKG: 70, Age: 42, ActivityLevel: models.ActivitySedentary, Goal: "Lose Fat"},
		{UserID: "u"}, // incomplete: fallback TDEE, still must balance
	}
	for _, p := range profiles {
		targets := svc.CalculateCalorieTargets(p)
		macroKcal := targets.ProteinG*4 + targets.FatG*9 + targets.CarbsG*4
		assert.InDelta(t, targets.TargetCalories, macroKcal, 2, "goal %s", p.Goal)
	}
}

func TestCalculateDailyProgress_Clamping(t *testing.T) {
	svc := NewEnergyService()
	targets := svc.CalculateCalorieTargets(validProfile()) // 2720 kcal

	t.Run("nothing consumed", func(t *testing.T) {
		progress := svc.CalculateDailyProgress(targets, models.ConsumedTotals{})
		assert.Equal(t, 2720, progress.CaloriesRemaining)
		assert.Equal(t, 0, progress.PercentComplete)
		assert.Equal(t, models.CalorieStatusNormal, progress.Status)
	})

	t.Run("over target", func(t *testing.T) {
		progress := svc.CalculateDailyProgress(targets, models.ConsumedTotals{Calories: 4000})
		assert.Equal(t, 0, progress.CaloriesRemaining)
		assert.Equal(t, 100, progress.PercentComplete)
		assert.Equal(t, models.CalorieStatusWarning, progress.Status)
	})

	t.Run("amber band", func(t *testing.T) {
		progress := svc.CalculateDailyProgress(targets, models.ConsumedTotals{Calories: 2300})
		assert.Equal(t, 420, progress.CaloriesRemaining)
		assert.Equal(t, 85, progress.PercentComplete) // 2300/2720 = 84.6%
		assert.Equal(t, models.CalorieStatusAmber, progress.Status)
	})

	t.Run("never out of range", func(t *testing.T) {
		for _, consumed := range []float64{0, 1, 500, 2719, 2720, 2721, 10000} {
			progress := svc.CalculateDailyProgress(targets, models.ConsumedTotals{Calories: consumed})
			assert.GreaterOrEqual(t, progress.CaloriesRemaining, 0)
			assert.GreaterOrEqual(t, progress.PercentComplete, 0)
			assert.LessOrEqual(t, progress.PercentComplete, 100)
		}
	})
}

func TestGetCalorieStatus_Boundaries(t *testing.T) {
	svc := NewEnergyService()

	assert.Equal(t, models.CalorieStatusNormal, svc.GetCalorieStatus(0))
	assert.Equal(t, models.CalorieStatusNormal, svc.GetCalorieStatus(79))
	assert.Equal(t, models.CalorieStatusAmber, svc.GetCalorieStatus(80))
	assert.Equal(t, models.CalorieStatusAmber, svc.GetCalorieStatus(99))
	assert.Equal(t, models.CalorieStatusWarning, svc.GetCalorieStatus(100))
}
