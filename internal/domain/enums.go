package domain

// TaskType classifies a wellness task.
type TaskType string

const (
	TaskMeditation          TaskType = "meditation"
	TaskExercise            TaskType = "exercise"
	TaskSleepSchedule       TaskType = "sleep_schedule"
	TaskSocialConnection    TaskType = "social_connection"
	TaskJournaling          TaskType = "journaling"
	TaskBreathingExercise   TaskType = "breathing_exercise"
	TaskNatureWalk          TaskType = "nature_walk"
	TaskHealthyMeal         TaskType = "healthy_meal"
	TaskScreenBreak         TaskType = "screen_break"
	TaskGratitudePractice   TaskType = "gratitude_practice"
	TaskProfessionalHelp    TaskType = "professional_help"
	TaskMindfulness         TaskType = "mindfulness"
	TaskStressManagement    TaskType = "stress_management"
	TaskRoutineBuilding     TaskType = "routine_building"
	TaskCreativeActivity    TaskType = "creative_activity"
	TaskRelaxationTechnique TaskType = "relaxation_technique"
)

// ValidTaskTypes is the canonical set of accepted task type strings.
var ValidTaskTypes = map[TaskType]bool{
	TaskMeditation: true, TaskExercise: true, TaskSleepSchedule: true,
	TaskSocialConnection: true, TaskJournaling: true, TaskBreathingExercise: true,
	TaskNatureWalk: true, TaskHealthyMeal: true, TaskScreenBreak: true,
	TaskGratitudePractice: true, TaskProfessionalHelp: true, TaskMindfulness: true,
	TaskStressManagement: true, TaskRoutineBuilding: true, TaskCreativeActivity: true,
	TaskRelaxationTechnique: true,
}

type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// ValidDifficulties is the canonical set of accepted difficulty strings.
var ValidDifficulties = map[Difficulty]bool{
	DifficultyEasy: true, DifficultyMedium: true, DifficultyHard: true,
}

type TaskStatus string

const (
	TaskStatusPending   TaskStatus = "pending"
	TaskStatusCompleted TaskStatus = "completed"
)

// RiskBand buckets a 1-10 risk level into the three coarse bands the
// presets, prompts and fallbacks key on.
type RiskBand string

const (
	RiskBandLow      RiskBand = "low"      // 1-3
	RiskBandModerate RiskBand = "moderate" // 4-6
	RiskBandHigh     RiskBand = "high"     // 7-10
)

// BandForLevel maps a risk level to its band.
func BandForLevel(level int) RiskBand {
	switch {
	case level >= 7:
		return RiskBandHigh
	case level >= 4:
		return RiskBandModerate
	default:
		return RiskBandLow
	}
}
