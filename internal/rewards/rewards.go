// Package rewards prices task completions in coins.
package rewards

import "github.com/jmoren/wellspring/internal/domain"

// defaultBaseReward applies to task types without an explicit entry,
// including the reflection-oriented types added after the base table was
// set.
const defaultBaseReward = 10

var baseRewards = map[domain.TaskType]int{
	domain.TaskMeditation:        15,
	domain.TaskExercise:          20,
	domain.TaskSleepSchedule:     10,
	domain.TaskSocialConnection:  12,
	domain.TaskJournaling:        8,
	domain.TaskBreathingExercise: 10,
	domain.TaskNatureWalk:        15,
	domain.TaskHealthyMeal:       12,
	domain.TaskScreenBreak:       5,
	domain.TaskGratitudePractice: 8,
	domain.TaskProfessionalHelp:  25,
}

var difficultyMultipliers = map[domain.Difficulty]float64{
	domain.DifficultyEasy:   1.0,
	domain.DifficultyMedium: 1.3,
	domain.DifficultyHard:   1.6,
}

const (
	qualityBonus        = 5
	qualityRatingFloor  = 4
	exceededExpectBonus = 3
)

// Coins prices one completed task: base reward scaled by difficulty,
// truncated to an int, plus quality bonuses from the completion report.
func Coins(taskType domain.TaskType, difficulty domain.Difficulty, report *domain.CompletionReport) int {
	base, ok := baseRewards[taskType]
	if !ok {
		base = defaultBaseReward
	}

	multiplier, ok := difficultyMultipliers[difficulty]
	if !ok {
		multiplier = 1.0
	}

	bonus := 0
	if report != nil {
		if report.QualityRating >= qualityRatingFloor {
			bonus += qualityBonus
		}
		if report.ExceededExpectations {
			bonus += exceededExpectBonus
		}
	}

	return int(float64(base)*multiplier) + bonus
}

// RewardType labels the ledger entry for a completed task.
func RewardType(taskType domain.TaskType) string {
	return "task_completion_" + string(taskType)
}
