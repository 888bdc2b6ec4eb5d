package services

import (
	"github.com/Geraxi/Flight-Fuel-sub000/models"
)

// getDefaultExerciseCatalog defines the static exercise catalog used by the
// program generator. Names are unique keys; the substitution table and the
// per-session dedupe both rely on that.
func getDefaultExerciseCatalog() []models.ExerciseDef {
	return []models.ExerciseDef{
		// Warmups
		{Name: "Jumping Jacks", Category: models.CategoryWarmup, MuscleGroup: models.MuscleFullBody, Equipment: models.EquipmentBodyweight, Sets: "1", Reps: "60s", Rest: "0s", IsWarmup: true},
		{Name: "Arm Circles", Category: models.CategoryWarmup, MuscleGroup: models.MuscleShoulders, Equipment: models.EquipmentBodyweight, Sets: "1", Reps: "30s each way", Rest: "0s", IsWarmup: true},
		{Name: "Bodyweight Squats", Category: models.CategoryWarmup, MuscleGroup: models.MuscleQuads, Equipment: models.EquipmentBodyweight, Sets: "1", Reps: "15", Rest: "0s", IsWarmup: true},
		{Name: "Hip Openers", Category: models.CategoryWarmup, MuscleGroup: models.MuscleGlutes, Equipment: models.EquipmentBodyweight, Sets: "1", Reps: "10 each side", Rest: "0s", IsWarmup: true},
		{Name: "Band Pull-Aparts", Category: models.CategoryWarmup, MuscleGroup: models.MuscleBack, Equipment: models.EquipmentBodyweight, Sets: "1", Reps: "15", Rest: "0s", IsWarmup: true},
		{Name: "Light Rowing", Category: models.CategoryWarmup, MuscleGroup: models.MuscleFullBody, Equipment: models.EquipmentCardioMachine, Sets: "1", Reps: "3min", Rest: "0s", IsWarmup: true},
		{Name: "Incline Walk", Category: models.CategoryWarmup, MuscleGroup: models.MuscleFullBody, Equipment: models.EquipmentCardioMachine, Sets: "1", Reps: "5min", Rest: "0s", IsWarmup: true},
		{Name: "Dynamic Lunges", Category: models.CategoryWarmup, MuscleGroup: models.MuscleQuads, Equipment: models.EquipmentBodyweight, Sets: "1", Reps: "10 each leg", Rest: "0s", IsWarmup: true},
		{Name: "Cat-Cow Stretch", Category: models.CategoryWarmup, MuscleGroup: models.MuscleMobility, Equipment: models.EquipmentBodyweight, Sets: "1", Reps: "10", Rest: "0s", IsWarmup: true},

		// Push - chest
		{Name: "Barbell Bench Press", Category: models.CategoryPush, MuscleGroup: models.MuscleChest, Equipment: models.EquipmentBarbell, Sets: "3-4", Reps: "6-10", Rest: "120s"},
		{Name: "Incline Dumbbell Press", Category: models.CategoryPush, MuscleGroup: models.MuscleChest, Equipment: models.EquipmentDumbbell, Sets: "3", Reps: "8-12", Rest: "90s"},
		{Name: "Dumbbell Bench Press", Category: models.CategoryPush, MuscleGroup: models.MuscleChest, Equipment: models.EquipmentDumbbell, Sets: "3-4", Reps: "8-12", Rest: "90s"},
		{Name: "Push-Ups", Category: models.CategoryPush, MuscleGroup: models.MuscleChest, Equipment: models.EquipmentBodyweight, Sets: "3", Reps: "10-20", Rest: "60s"},
		{Name: "Cable Chest Fly", Category: models.CategoryPush, MuscleGroup: models.MuscleChest, Equipment: models.EquipmentCable, Sets: "3", Reps: "12-15", Rest: "60s"},
		{Name: "Machine Chest Press", Category: models.CategoryPush, MuscleGroup: models.MuscleChest, Equipment: models.EquipmentMachine, Sets: "3", Reps: "10-12", Rest: "90s"},
		{Name: "Decline Push-Ups", Category: models.CategoryPush, MuscleGroup: models.MuscleChest, Equipment: models.EquipmentBodyweight, Sets: "3", Reps: "8-15", Rest: "60s"},
		{Name: "Dumbbell Chest Fly", Category: models.CategoryPush, MuscleGroup: models.MuscleChest, Equipment: models.EquipmentDumbbell, Sets: "3", Reps: "12-15", Rest: "60s"},

		// Push - triceps
		{Name: "Triceps Rope Pushdown", Category: models.CategoryPush, MuscleGroup: models.MuscleTriceps, Equipment: models.EquipmentCable, Sets: "3", Reps: "10-15", Rest: "60s"},
		{Name: "Overhead Dumbbell Extension", Category: models.CategoryPush, MuscleGroup: models.MuscleTriceps, Equipment: models.EquipmentDumbbell, Sets: "3", Reps: "10-12", Rest: "60s"},
		{Name: "Close-Grip Bench Press", Category: models.CategoryPush, MuscleGroup: models.MuscleTriceps, Equipment: models.EquipmentBarbell, Sets: "3", Reps: "8-10", Rest: "90s"},
		{Name: "Bench Dips", Category: models.CategoryPush, MuscleGroup: models.MuscleTriceps, Equipment: models.EquipmentBodyweight, Sets: "3", Reps: "10-15", Rest: "60s"},
		{Name: "Diamond Push-Ups", Category: models.CategoryPush, MuscleGroup: models.MuscleTriceps, Equipment: models.EquipmentBodyweight, Sets: "3", Reps: "8-12", Rest: "60s"},
		{Name: "Skull Crushers", Category: models.CategoryPush, MuscleGroup: models.MuscleTriceps, Equipment: models.EquipmentBarbell, Sets: "3", Reps: "10-12", Rest: "60s"},

		// Push - shoulders
		{Name: "Overhead Barbell Press", Category: models.CategoryPush, MuscleGroup: models.MuscleShoulders, Equipment: models.EquipmentBarbell, Sets: "3-4", Reps: "6-10", Rest: "120s"},
		{Name: "Seated Dumbbell Press", Category: models.CategoryPush, MuscleGroup: models.MuscleShoulders, Equipment: models.EquipmentDumbbell, Sets: "3", Reps: "8-12", Rest: "90s"},
		{Name: "Lateral Raises", Category: models.CategoryPush, MuscleGroup: models.MuscleShoulders, Equipment: models.EquipmentDumbbell, Sets: "3", Reps: "12-15", Rest: "60s"},
		{Name: "Pike Push-Ups", Category: models.CategoryPush, MuscleGroup: models.MuscleShoulders, Equipment: models.EquipmentBodyweight, Sets: "3", Reps: "8-12", Rest: "60s"},
		{Name: "Cable Lateral Raises", Category: models.CategoryPush, MuscleGroup: models.MuscleShoulders, Equipment: models.EquipmentCable, Sets: "3", Reps: "12-15", Rest: "60s"},
		{Name: "Machine Shoulder Press", Category: models.CategoryPush, MuscleGroup: models.MuscleShoulders, Equipment: models.EquipmentMachine, Sets: "3", Reps: "10-12", Rest: "90s"},

		// Pull - back
		{Name: "Pull-Ups", Category: models.CategoryPull, MuscleGroup: models.MuscleBack, Equipment: models.EquipmentBodyweight, Sets: "3-4", Reps: "6-12", Rest: "120s"},
		{Name: "Barbell Row", Category: models.CategoryPull, MuscleGroup: models.MuscleBack, Equipment: models.EquipmentBarbell, Sets: "3-4", Reps: "6-10", Rest: "120s"},
		{Name: "Lat Pulldown", Category: models.CategoryPull, MuscleGroup: models.MuscleBack, Equipment: models.EquipmentCable, Sets: "3", Reps: "10-12", Rest: "90s"},
		{Name: "Single-Arm Dumbbell Row", Category: models.CategoryPull, MuscleGroup: models.MuscleBack, Equipment: models.EquipmentDumbbell, Sets: "3", Reps: "8-12", Rest: "90s"},
		{Name: "Seated Cable Row", Category: models.CategoryPull, MuscleGroup: models.MuscleBack, Equipment: models.EquipmentCable, Sets: "3", Reps: "10-12", Rest: "90s"},
		{Name: "Inverted Rows", Category: models.CategoryPull, MuscleGroup: models.MuscleBack, Equipment: models.EquipmentBodyweight, Sets: "3", Reps: "8-15", Rest: "60s"},
		{Name: "Machine Row", Category: models.CategoryPull, MuscleGroup: models.MuscleBack, Equipment: models.EquipmentMachine, Sets: "3", Reps: "10-12", Rest: "90s"},
		{Name: "Dumbbell Pullover", Category: models.CategoryPull, MuscleGroup: models.MuscleBack, Equipment: models.EquipmentDumbbell, Sets: "3", Reps: "10-12", Rest: "90s"},

		// Pull - biceps
		{Name: "Barbell Curl", Category: models.CategoryPull, MuscleGroup: models.MuscleBiceps, Equipment: models.EquipmentBarbell, Sets: "3", Reps: "8-12", Rest: "60s"},
		{Name: "Dumbbell Hammer Curl", Category: models.CategoryPull, MuscleGroup: models.MuscleBiceps, Equipment: models.EquipmentDumbbell, Sets: "3", Reps: "10-12", Rest: "60s"},
		{Name: "Incline Dumbbell Curl", Category: models.CategoryPull, MuscleGroup: models.MuscleBiceps, Equipment: models.EquipmentDumbbell, Sets: "3", Reps: "10-12", Rest: "60s"},
		{Name: "Cable Curl", Category: models.CategoryPull, MuscleGroup: models.MuscleBiceps, Equipment: models.EquipmentCable, Sets: "3", Reps: "10-15", Rest: "60s"},
		{Name: "Chin-Ups", Category: models.CategoryPull, MuscleGroup: models.MuscleBiceps, Equipment: models.EquipmentBodyweight, Sets: "3", Reps: "6-10", Rest: "90s"},
		{Name: "Concentration Curl", Category: models.CategoryPull, MuscleGroup: models.MuscleBiceps, Equipment: models.EquipmentDumbbell, Sets: "3", Reps: "10-12", Rest: "60s"},

		// Legs - quads
		{Name: "Barbell Back Squat", Category: models.CategoryLegs, MuscleGroup: models.MuscleQuads, Equipment: models.EquipmentBarbell, Sets: "3-4", Reps: "6-10", Rest: "150s"},
		{Name: "Goblet Squat", Category: models.CategoryLegs, MuscleGroup: models.MuscleQuads, Equipment: models.EquipmentKettlebell, Sets: "3", Reps: "10-12", Rest: "90s"},
		{Name: "Leg Press", Category: models.CategoryLegs, MuscleGroup: models.MuscleQuads, Equipment: models.EquipmentMachine, Sets: "3", Reps: "10-15", Rest: "120s"},
		{Name: "Walking Lunges", Category: models.CategoryLegs, MuscleGroup: models.MuscleQuads, Equipment: models.EquipmentDumbbell, Sets: "3", Reps: "10 each leg", Rest: "90s"},
		{Name: "Bulgarian Split Squat", Category: models.CategoryLegs, MuscleGroup: models.MuscleQuads, Equipment: models.EquipmentDumbbell, Sets: "3", Reps: "8-10 each leg", Rest: "90s"},
		{Name: "Leg Extension", Category: models.CategoryLegs, MuscleGroup: models.MuscleQuads, Equipment: models.EquipmentMachine, Sets: "3", Reps: "12-15", Rest: "60s"},
		{Name: "Jump Squats", Category: models.CategoryLegs, MuscleGroup: models.MuscleQuads, Equipment: models.EquipmentBodyweight, Sets: "3", Reps: "12-15", Rest: "60s"},

		// Legs - hamstrings
		{Name: "Romanian Deadlift", Category: models.CategoryLegs, MuscleGroup: models.MuscleHamstrings, Equipment: models.EquipmentBarbell, Sets: "3-4", Reps: "8-10", Rest: "120s"},
		{Name: "Dumbbell Romanian Deadlift", Category: models.CategoryLegs, MuscleGroup: models.MuscleHamstrings, Equipment: models.EquipmentDumbbell, Sets: "3", Reps: "10-12", Rest: "90s"},
		{Name: "Lying Leg Curl", Category: models.CategoryLegs, MuscleGroup: models.MuscleHamstrings, Equipment: models.EquipmentMachine, Sets: "3", Reps: "10-15", Rest: "60s"},
		{Name: "Nordic Curl", Category: models.CategoryLegs, MuscleGroup: models.MuscleHamstrings, Equipment: models.EquipmentBodyweight, Sets: "3", Reps: "5-8", Rest: "90s"},
		{Name: "Kettlebell Swing", Category: models.CategoryLegs, MuscleGroup: models.MuscleHamstrings, Equipment: models.EquipmentKettlebell, Sets: "3", Reps: "15-20", Rest: "60s"},
		{Name: "Single-Leg Glute Bridge", Category: models.CategoryLegs, MuscleGroup: models.MuscleHamstrings, Equipment: models.EquipmentBodyweight, Sets: "3", Reps: "10-12 each leg", Rest: "60s"},

		// Legs - glutes
		{Name: "Barbell Hip Thrust", Category: models.CategoryLegs, MuscleGroup: models.MuscleGlutes, Equipment: models.EquipmentBarbell, Sets: "3-4", Reps: "8-12", Rest: "90s"},
		{Name: "Cable Kickback", Category: models.CategoryLegs, MuscleGroup: models.MuscleGlutes, Equipment: models.EquipmentCable, Sets: "3", Reps: "12-15", Rest: "60s"},
		{Name: "Glute Bridge", Category: models.CategoryLegs, MuscleGroup: models.MuscleGlutes, Equipment: models.EquipmentBodyweight, Sets: "3", Reps: "15-20", Rest: "60s"},
		{Name: "Dumbbell Step-Ups", Category: models.CategoryLegs, MuscleGroup: models.MuscleGlutes, Equipment: models.EquipmentDumbbell, Sets: "3", Reps: "10 each leg", Rest: "90s"},
		{Name: "Hip Abduction Machine", Category: models.CategoryLegs, MuscleGroup: models.MuscleGlutes, Equipment: models.EquipmentMachine, Sets: "3", Reps: "12-15", Rest: "60s"},

		// Core
		{Name: "Plank", Category: models.CategoryCore, MuscleGroup: models.MuscleCore, Equipment: models.EquipmentBodyweight, Sets: "3", Reps: "45-60s", Rest: "45s"},
		{Name: "Side Plank", Category: models.CategoryCore, MuscleGroup: models.MuscleCore, Equipment: models.EquipmentBodyweight, Sets: "3", Reps: "30s each side", Rest: "45s"},
		{Name: "Hanging Leg Raises", Category: models.CategoryCore, MuscleGroup: models.MuscleCore, Equipment: models.EquipmentBodyweight, Sets: "3", Reps: "10-15", Rest: "60s"},
		{Name: "Cable Woodchop", Category: models.CategoryCore, MuscleGroup: models.MuscleCore, Equipment: models.EquipmentCable, Sets: "3", Reps: "10-12 each side", Rest: "60s"},
		{Name: "Russian Twists", Category: models.CategoryCore, MuscleGroup: models.MuscleCore, Equipment: models.EquipmentBodyweight, Sets: "3", Reps: "20", Rest: "45s"},
		{Name: "Dead Bug", Category: models.CategoryCore, MuscleGroup: models.MuscleCore, Equipment: models.EquipmentBodyweight, Sets: "3", Reps: "10 each side", Rest: "45s"},
		{Name: "Ab Wheel Rollout", Category: models.CategoryCore, MuscleGroup: models.MuscleCore, Equipment: models.EquipmentBodyweight, Sets: "3", Reps: "8-12", Rest: "60s"},
		{Name: "Weighted Crunch", Category: models.CategoryCore, MuscleGroup: models.MuscleCore, Equipment: models.EquipmentCable, Sets: "3", Reps: "12-15", Rest: "45s"},
		{Name: "Mountain Climbers", Category: models.CategoryCore, MuscleGroup: models.MuscleCore, Equipment: models.EquipmentBodyweight, Sets: "3", Reps: "30s", Rest: "45s"},
		{Name: "Bird Dog", Category: models.CategoryCore, MuscleGroup: models.MuscleCore, Equipment: models.EquipmentBodyweight, Sets: "3", Reps: "10 each side", Rest: "45s"},

		// Cardio
		{Name: "Treadmill Intervals", Category: models.CategoryCardio, MuscleGroup: models.MuscleFullBody, Equipment: models.EquipmentCardioMachine, Sets: "1", Reps: "10x 1min hard / 1min easy", Rest: "0s", IsCardio: true},
		{Name: "Rowing Machine", Category: models.CategoryCardio, MuscleGroup: models.MuscleFullBody, Equipment: models.EquipmentCardioMachine, Sets: "1", Reps: "15min steady", Rest: "0s", IsCardio: true},
		{Name: "Stationary Bike", Category: models.CategoryCardio, MuscleGroup: models.MuscleFullBody, Equipment: models.EquipmentCardioMachine, Sets: "1", Reps: "20min steady", Rest: "0s", IsCardio: true},
		{Name: "Stair Climber", Category: models.CategoryCardio, MuscleGroup: models.MuscleFullBody, Equipment: models.EquipmentCardioMachine, Sets: "1", Reps: "12min", Rest: "0s", IsCardio: true},
		{Name: "Burpees", Category: models.CategoryCardio, MuscleGroup: models.MuscleFullBody, Equipment: models.EquipmentBodyweight, Sets: "1", Reps: "5x 10", Rest: "60s", IsCardio: true},
		{Name: "Jump Rope", Category: models.CategoryCardio, MuscleGroup: models.MuscleFullBody, Equipment: models.EquipmentBodyweight, Sets: "1", Reps: "10x 1min", Rest: "30s", IsCardio: true},
		{Name: "Shadow Boxing", Category: models.CategoryCardio, MuscleGroup: models.MuscleFullBody, Equipment: models.EquipmentBodyweight, Sets: "1", Reps: "5x 2min rounds", Rest: "60s", IsCardio: true},
		{Name: "Hill Sprints", Category: models.CategoryCardio, MuscleGroup: models.MuscleFullBody, Equipment: models.EquipmentBodyweight, Sets: "1", Reps: "8x 20s", Rest: "90s", IsCardio: true},
		{Name: "Kettlebell Complex", Category: models.CategoryCardio, MuscleGroup: models.MuscleFullBody, Equipment: models.EquipmentKettlebell, Sets: "1", Reps: "4 rounds", Rest: "90s", IsCardio: true},
		{Name: "Elliptical", Category: models.CategoryCardio, MuscleGroup: models.MuscleFullBody, Equipment: models.EquipmentCardioMachine, Sets: "1", Reps: "20min steady", Rest: "0s", IsCardio: true},

		// Mobility
		{Name: "Couch Stretch", Category: models.CategoryMobility, MuscleGroup: models.MuscleMobility, Equipment: models.EquipmentBodyweight, Sets: "2", Reps: "60s each side", Rest: "0s"},
		{Name: "Pigeon Pose", Category: models.CategoryMobility, MuscleGroup: models.MuscleMobility, Equipment: models.EquipmentBodyweight, Sets: "2", Reps: "60s each side", Rest: "0s"},
		{Name: "Thoracic Rotations", Category: models.CategoryMobility, MuscleGroup: models.MuscleMobility, Equipment: models.EquipmentBodyweight, Sets: "2", Reps: "10 each side", Rest: "0s"},
		{Name: "Hamstring Stretch", Category: models.CategoryMobility, MuscleGroup: models.MuscleMobility, Equipment: models.EquipmentBodyweight, Sets: "2", Reps: "45s each leg", Rest: "0s"},
		{Name: "Hip Flexor Stretch", Category: models.CategoryMobility, MuscleGroup: models.MuscleMobility, Equipment: models.EquipmentBodyweight, Sets: "2", Reps: "45s each side", Rest: "0s"},
		{Name: "Shoulder Dislocates", Category: models.CategoryMobility, MuscleGroup: models.MuscleMobility, Equipment: models.EquipmentBodyweight, Sets: "2", Reps: "12", Rest: "0s"},
		{Name: "Childs Pose", Category: models.CategoryMobility, MuscleGroup: models.MuscleMobility, Equipment: models.EquipmentBodyweight, Sets: "2", Reps: "60s", Rest: "0s"},
		{Name: "Foam Rolling", Category: models.CategoryMobility, MuscleGroup: models.MuscleMobility, Equipment: models.EquipmentBodyweight, Sets: "1", Reps: "5min full body", Rest: "0s"},
		{Name: "Ankle Circles", Category: models.CategoryMobility, MuscleGroup: models.MuscleMobility, Equipment: models.EquipmentBodyweight, Sets: "2", Reps: "10 each way", Rest: "0s"},
		{Name: "Neck Rolls", Category: models.CategoryMobility, MuscleGroup: models.MuscleMobility, Equipment: models.EquipmentBodyweight, Sets: "2", Reps: "8 each way", Rest: "0s"},
	}
}

// getDefaultAlternatives defines the substitution table, keyed by the
// original catalog name. Swapping cycles through the list and wraps back to
// the original, a closed loop.
func getDefaultAlternatives() map[string][]string {
	return map[string][]string{
		"Barbell Bench Press":       {"Dumbbell Bench Press", "Machine Chest Press", "Push-Ups"},
		"Incline Dumbbell Press":    {"Machine Chest Press", "Decline Push-Ups"},
		"Push-Ups":                  {"Dumbbell Bench Press", "Machine Chest Press"},
		"Overhead Barbell Press":    {"Seated Dumbbell Press", "Machine Shoulder Press", "Pike Push-Ups"},
		"Lateral Raises":            {"Cable Lateral Raises"},
		"Triceps Rope Pushdown":     {"Overhead Dumbbell Extension", "Bench Dips"},
		"Close-Grip Bench Press":    {"Diamond Push-Ups", "Skull Crushers"},
		"Pull-Ups":                  {"Lat Pulldown", "Inverted Rows"},
		"Barbell Row":               {"Single-Arm Dumbbell Row", "Seated Cable Row", "Machine Row"},
		"Lat Pulldown":              {"Pull-Ups", "Machine Row"},
		"Barbell Curl":              {"Dumbbell Hammer Curl", "Cable Curl"},
		"Barbell Back Squat":        {"Goblet Squat", "Leg Press", "Bulgarian Split Squat"},
		"Romanian Deadlift":         {"Dumbbell Romanian Deadlift", "Lying Leg Curl"},
		"Barbell Hip Thrust":        {"Glute Bridge", "Cable Kickback"},
		"Walking Lunges":            {"Bulgarian Split Squat", "Dumbbell Step-Ups"},
		"Plank":                     {"Side Plank", "Dead Bug"},
		"Hanging Leg Raises":        {"Russian Twists", "Mountain Climbers"},
		"Treadmill Intervals":       {"Rowing Machine", "Stationary Bike", "Jump Rope"},
		"Rowing Machine":            {"Stationary Bike", "Elliptical"},
		"Burpees":                   {"Jump Rope", "Shadow Boxing"},
	}
}
