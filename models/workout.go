package models

// ExerciseCategory groups catalog entries by movement pattern.
type ExerciseCategory string

const (
	CategoryPush     ExerciseCategory = "push"
	CategoryPull     ExerciseCategory = "pull"
	CategoryLegs     ExerciseCategory = "legs"
	CategoryCore     ExerciseCategory = "core"
	CategoryCardio   ExerciseCategory = "cardio"
	CategoryMobility ExerciseCategory = "mobility"
	CategoryWarmup   ExerciseCategory = "warmup"
)

// MuscleGroup is the primary muscle group an exercise targets.
type MuscleGroup string

const (
	MuscleChest      MuscleGroup = "chest"
	MuscleTriceps    MuscleGroup = "triceps"
	MuscleShoulders  MuscleGroup = "shoulders"
	MuscleBack       MuscleGroup = "back"
	MuscleBiceps     MuscleGroup = "biceps"
	MuscleQuads      MuscleGroup = "quads"
	MuscleHamstrings MuscleGroup = "hamstrings"
	MuscleGlutes     MuscleGroup = "glutes"
	MuscleCore       MuscleGroup = "core"
	MuscleFullBody   MuscleGroup = "full_body"
	MuscleMobility   MuscleGroup = "mobility"
)

// Equipment identifies what an exercise requires. An empty value means the
// exercise is untagged and passes every equipment filter.
type Equipment string

const (
	EquipmentBarbell       Equipment = "barbell"
	EquipmentDumbbell      Equipment = "dumbbell"
	EquipmentCable         Equipment = "cable"
	EquipmentMachine       Equipment = "machine"
	EquipmentBodyweight    Equipment = "bodyweight"
	EquipmentKettlebell    Equipment = "kettlebell"
	EquipmentCardioMachine Equipment = "cardio_machine"
)

// EquipmentFilter restricts exercise selection to what the user has access to.
type EquipmentFilter string

const (
	FilterFullGym       EquipmentFilter = "full_gym"
	FilterDumbbellsOnly EquipmentFilter = "dumbbells_only"
	FilterBodyweight    EquipmentFilter = "bodyweight"
)

// Allows reports whether equipment passes the filter. Untagged exercises
// always pass.
func (f EquipmentFilter) Allows(e Equipment) bool {
	if e == "" {
		return true
	}
	switch f {
	case FilterDumbbellsOnly:
		return e == EquipmentDumbbell || e == EquipmentBodyweight || e == EquipmentKettlebell
	case FilterBodyweight:
		return e == EquipmentBodyweight
	default: // full gym
		return true
	}
}

// ExperienceLevel is the user's self-declared training experience.
type ExperienceLevel string

const (
	ExperienceBeginner     ExperienceLevel = "beginner"
	ExperienceIntermediate ExperienceLevel = "intermediate"
	ExperienceAdvanced     ExperienceLevel = "advanced"
)

// DayType is the template label determining which stages a session runs.
type DayType string

const (
	DayTypePush         DayType = "push"
	DayTypePull         DayType = "pull"
	DayTypeLegs         DayType = "legs"
	DayTypeUpper        DayType = "upper"
	DayTypeConditioning DayType = "conditioning"
	DayTypeRecovery     DayType = "recovery"
)

// Label returns the session title shown to the user.
func (d DayType) Label() string {
	switch d {
	case DayTypePush:
		return "Push Day"
	case DayTypePull:
		return "Pull Day"
	case DayTypeLegs:
		return "Leg Day"
	case DayTypeUpper:
		return "Upper Body"
	case DayTypeConditioning:
		return "Cardio + Conditioning"
	case DayTypeRecovery:
		return "Recovery + Mobility"
	default:
		return string(d)
	}
}

// ExerciseDef is one immutable entry of the exercise catalog.
type ExerciseDef struct {
	Name        string           `json:"name"` // unique key
	Category    ExerciseCategory `json:"category"`
	MuscleGroup MuscleGroup      `json:"muscle_group"`
	Equipment   Equipment        `json:"equipment"`
	Sets        string           `json:"sets"` // e.g. "3-4"
	Reps        string           `json:"reps"` // e.g. "8-12"
	Rest        string           `json:"rest"` // e.g. "90s"
	IsCardio    bool             `json:"is_cardio"`
	IsWarmup    bool             `json:"is_warmup"`
}

// TrainingPreferences is what the user configures before generating a program.
type TrainingPreferences struct {
	Experience           ExperienceLevel `json:"experience"`
	Goal                 string          `json:"goal"` // raw label; normalized by the generator
	DaysPerWeek          int             `json:"days_per_week"`          // 1-6
	SessionLengthMinutes int             `json:"session_length_minutes"` // 15-90
	EquipmentFilter      EquipmentFilter `json:"equipment_filter"`
}

// SetLog is one empty logging slot for a planned set. The consumer fills it
// in as the set is performed.
type SetLog struct {
	Reps      int     `json:"reps"`
	WeightKG  float64 `json:"weight_kg"`
	Completed bool    `json:"completed"`
}

// ExerciseLogEntry wraps a selected exercise plus its set-logging slots.
// Name may diverge from Exercise.Name after a substitution; sets/reps specs
// are never re-derived from the substitute's catalog entry.
type ExerciseLogEntry struct {
	Name     string      `json:"name"`
	Exercise ExerciseDef `json:"exercise"`
	SetLogs  []SetLog    `json:"set_logs"`
}

// WorkoutSession is one generated training day.
type WorkoutSession struct {
	DayIndex  int                `json:"day_index"`
	DayType   DayType            `json:"day_type"`
	Title     string             `json:"title"`
	Exercises []ExerciseLogEntry `json:"exercises"`
	Completed bool               `json:"completed"`
}
