package services

import (
	"fmt"
	"regexp"
	"strconv"

	"github.com/Geraxi/Flight-Fuel-sub000/models"
)

// dayTypeTemplates maps a weekly frequency to its day-type sequence.
// Frequencies outside the map fall back to the 3-day template, cycled by
// day index.
var dayTypeTemplates = map[int][]models.DayType{
	3: {models.DayTypePush, models.DayTypePull, models.DayTypeLegs},
	4: {models.DayTypePush, models.DayTypePull, models.DayTypeLegs, models.DayTypeUpper},
	5: {models.DayTypePush, models.DayTypePull, models.DayTypeLegs, models.DayTypeUpper, models.DayTypeConditioning},
	6: {models.DayTypePush, models.DayTypePull, models.DayTypeLegs, models.DayTypePush, models.DayTypePull, models.DayTypeLegs},
}

var firstNumberRe = regexp.MustCompile(`\d+`)

// WorkoutService generates multi-day training programs from user
// preferences. Generation is a pure function of preferences plus an explicit
// seed; the same inputs always produce the same program.
type WorkoutService interface {
	GenerateProgram(prefs models.TrainingPreferences, seed int64) ([]models.WorkoutSession, error)
	SubstituteExercise(originalName, currentName string) string
	Catalog() []models.ExerciseDef
}

type workoutService struct {
	catalog      []models.ExerciseDef
	alternatives map[string][]string
}

// NewWorkoutService creates a new instance of WorkoutService backed by the
// static exercise catalog and substitution table.
func NewWorkoutService() WorkoutService {
	return &workoutService{
		catalog:      getDefaultExerciseCatalog(),
		alternatives: getDefaultAlternatives(),
	}
}

// Catalog returns the full exercise catalog.
func (s *workoutService) Catalog() []models.ExerciseDef {
	out := make([]models.ExerciseDef, len(s.catalog))
	copy(out, s.catalog)
	return out
}

// GenerateProgram builds one WorkoutSession per training day. Preferences
// outside the accepted ranges are rejected up front; everything past that
// degrades gracefully, an under-filled exercise pool just yields a shorter
// session.
func (s *workoutService) GenerateProgram(prefs models.TrainingPreferences, seed int64) ([]models.WorkoutSession, error) {
	if prefs.DaysPerWeek < 1 || prefs.DaysPerWeek > 6 {
		return nil, fmt.Errorf("days per week must be between 1 and 6, got %d", prefs.DaysPerWeek)
	}
	if prefs.SessionLengthMinutes < 15 || prefs.SessionLengthMinutes > 90 {
		return nil, fmt.Errorf("session length must be between 15 and 90 minutes, got %d", prefs.SessionLengthMinutes)
	}

	goal := models.NormalizeGoal(prefs.Goal)

	sessions := make([]models.WorkoutSession, 0, prefs.DaysPerWeek)
	for day := 0; day < prefs.DaysPerWeek; day++ {
		dayType := s.dayTypeFor(prefs.DaysPerWeek, day, goal)
		sessions = append(sessions, s.buildSession(day, dayType, prefs, goal, seed))
	}
	return sessions, nil
}

// dayTypeFor resolves the day type for one training day, applying the
// goal-based overrides on top of the frequency template.
func (s *workoutService) dayTypeFor(daysPerWeek, dayIndex int, goal models.Goal) models.DayType {
	template, ok := dayTypeTemplates[daysPerWeek]
	if !ok {
		template = dayTypeTemplates[3]
	}
	dayType := template[dayIndex%len(template)]

	// Fat-loss programs replace every other day with conditioning work;
	// maintenance programs always end the week on recovery.
	if goal == models.GoalCut && dayIndex%2 == 1 {
		dayType = models.DayTypeConditioning
	}
	if goal == models.GoalMaintain && dayIndex == daysPerWeek-1 {
		dayType = models.DayTypeRecovery
	}
	return dayType
}

// buildSession runs the staged exercise selection for one day.
func (s *workoutService) buildSession(dayIndex int, dayType models.DayType, prefs models.TrainingPreferences, goal models.Goal, seed int64) models.WorkoutSession {
	longSession := prefs.SessionLengthMinutes >= 60
	usedNames := make(map[string]bool)
	var entries []models.ExerciseLogEntry

	pick := func(count int, match func(models.ExerciseDef) bool) {
		if count <= 0 {
			return
		}
		var pool []models.ExerciseDef
		for _, e := range s.catalog {
			if usedNames[e.Name] || !prefs.EquipmentFilter.Allows(e.Equipment) || !match(e) {
				continue
			}
			pool = append(pool, e)
		}
		// Seed folds in the day index and the running used count so each
		// stage of each day draws a different, still reproducible, order.
		shuffled := ShuffleDeterministic(pool, seed+int64(dayIndex)+int64(len(usedNames)))
		if count > len(shuffled) {
			count = len(shuffled)
		}
		for _, e := range shuffled[:count] {
			usedNames[e.Name] = true
			entries = append(entries, newLogEntry(e))
		}
	}

	byMuscle := func(g models.MuscleGroup) func(models.ExerciseDef) bool {
		return func(e models.ExerciseDef) bool { return e.MuscleGroup == g && !e.IsWarmup }
	}
	byCategory := func(c models.ExerciseCategory) func(models.ExerciseDef) bool {
		return func(e models.ExerciseDef) bool { return e.Category == c }
	}

	// Warmup stage.
	if dayType != models.DayTypeRecovery {
		warmups := 2
		if prefs.SessionLengthMinutes >= 45 {
			warmups = 3
		}
		if dayType == models.DayTypeConditioning {
			warmups = 1
		}
		pick(warmups, byCategory(models.CategoryWarmup))
	}

	// Main stage, by day type.
	switch dayType {
	case models.DayTypePush:
		pick(twoOrThree(longSession), byMuscle(models.MuscleChest))
		pick(2, byMuscle(models.MuscleTriceps))
		if longSession {
			pick(1, byMuscle(models.MuscleShoulders))
		}
	case models.DayTypePull:
		pick(twoOrThree(longSession), byMuscle(models.MuscleBack))
		pick(2, byMuscle(models.MuscleBiceps))
	case models.DayTypeLegs:
		pick(twoOrThree(longSession), byMuscle(models.MuscleQuads))
		pick(2, byMuscle(models.MuscleHamstrings))
		if longSession {
			pick(1, byMuscle(models.MuscleGlutes))
		}
	case models.DayTypeUpper:
		pick(2, byMuscle(models.MuscleChest))
		pick(2, byMuscle(models.MuscleBack))
		pick(1, byMuscle(models.MuscleShoulders))
	case models.DayTypeConditioning:
		pick(3, byCategory(models.CategoryCardio))
		pick(2, byCategory(models.CategoryCore))
	case models.DayTypeRecovery:
		pick(4, byCategory(models.CategoryMobility))
	}

	// Core and cardio finishers on strength days.
	if dayType != models.DayTypeConditioning && dayType != models.DayTypeRecovery {
		coreCount := 1
		if longSession {
			coreCount = 2
		}
		pick(coreCount, byCategory(models.CategoryCore))

		if goal == models.GoalCut || longSession {
			pick(1, byCategory(models.CategoryCardio))
		}
	}

	return models.WorkoutSession{
		DayIndex:  dayIndex,
		DayType:   dayType,
		Title:     dayType.Label(),
		Exercises: entries,
		Completed: false,
	}
}

// SubstituteExercise returns the next name in the closed substitution loop
// for originalName, given the currently displayed name. Cycling past the
// last alternative wraps back to the original. Exercises with no alternatives
// keep their name.
func (s *workoutService) SubstituteExercise(originalName, currentName string) string {
	alts, ok := s.alternatives[originalName]
	if !ok || len(alts) == 0 {
		return originalName
	}
	cycle := append([]string{originalName}, alts...)
	for i, name := range cycle {
		if name == currentName {
			return cycle[(i+1)%len(cycle)]
		}
	}
	// Unknown current name: restart the loop at the first alternative.
	return alts[0]
}

// newLogEntry wraps a selected exercise with its empty set-logging slots.
// Cardio entries always get a single slot regardless of their sets spec.
func newLogEntry(e models.ExerciseDef) models.ExerciseLogEntry {
	setCount := 1
	if !e.IsCardio {
		if m := firstNumberRe.FindString(e.Sets); m != "" {
			if n, err := strconv.Atoi(m); err == nil && n > 0 {
				setCount = n
			}
		}
	}
	return models.ExerciseLogEntry{
		Name:     e.Name,
		Exercise: e,
		SetLogs:  make([]models.SetLog, setCount),
	}
}

func twoOrThree(longSession bool) int {
	if longSession {
		return 3
	}
	return 2
}
