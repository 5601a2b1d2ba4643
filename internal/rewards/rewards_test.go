package rewards

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jmoren/wellspring/internal/domain"
)

func TestCoins_BaseByType(t *testing.T) {
	assert.Equal(t, 15, Coins(domain.TaskMeditation, domain.DifficultyEasy, nil))
	assert.Equal(t, 20, Coins(domain.TaskExercise, domain.DifficultyEasy, nil))
	assert.Equal(t, 25, Coins(domain.TaskProfessionalHelp, domain.DifficultyEasy, nil))
	assert.Equal(t, 5, Coins(domain.TaskScreenBreak, domain.DifficultyEasy, nil))
}

func TestCoins_UnlistedTypeUsesDefault(t *testing.T) {
	assert.Equal(t, 10, Coins(domain.TaskMindfulness, domain.DifficultyEasy, nil))
	assert.Equal(t, 10, Coins(domain.TaskCreativeActivity, domain.DifficultyEasy, nil))
}

func TestCoins_DifficultyMultiplierTruncates(t *testing.T) {
	// 15 * 1.3 = 19.5, truncated to 19.
	assert.Equal(t, 19, Coins(domain.TaskMeditation, domain.DifficultyMedium, nil))
	// 15 * 1.6 = 24.0.
	assert.Equal(t, 24, Coins(domain.TaskMeditation, domain.DifficultyHard, nil))
	// 20 * 1.3 = 26.0.
	assert.Equal(t, 26, Coins(domain.TaskExercise, domain.DifficultyMedium, nil))
}

func TestCoins_UnknownDifficultyNoMultiplier(t *testing.T) {
	assert.Equal(t, 15, Coins(domain.TaskMeditation, domain.Difficulty("extreme"), nil))
}

func TestCoins_QualityBonuses(t *testing.T) {
	highQuality := &domain.CompletionReport{QualityRating: 4}
	assert.Equal(t, 20, Coins(domain.TaskMeditation, domain.DifficultyEasy, highQuality))

	exceeded := &domain.CompletionReport{ExceededExpectations: true}
	assert.Equal(t, 18, Coins(domain.TaskMeditation, domain.DifficultyEasy, exceeded))

	both := &domain.CompletionReport{QualityRating: 5, ExceededExpectations: true}
	assert.Equal(t, 23, Coins(domain.TaskMeditation, domain.DifficultyEasy, both))

	low := &domain.CompletionReport{QualityRating: 3}
	assert.Equal(t, 15, Coins(domain.TaskMeditation, domain.DifficultyEasy, low))
}

func TestRewardType(t *testing.T) {
	assert.Equal(t, "task_completion_meditation", RewardType(domain.TaskMeditation))
}
