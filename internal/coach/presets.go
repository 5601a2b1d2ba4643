package coach

import "github.com/jmoren/wellspring/internal/domain"

// PresetTasks returns curated fallback tasks for when every generation
// tier has failed. The set is keyed on risk band so a high-risk user
// always leaves with a professional-help directive, never an empty plan.
func PresetTasks(riskLevel int) []domain.Task {
	switch domain.BandForLevel(riskLevel) {
	case domain.RiskBandHigh:
		return []domain.Task{{
			Type:               domain.TaskProfessionalHelp,
			Title:              "Emergency Professional Help",
			Description:        "Seek immediate professional mental health support",
			DurationDays:       1,
			Difficulty:         domain.DifficultyMedium,
			Instructions:       "Contact emergency mental health services, your doctor, or call a crisis helpline immediately.",
			CompletionCriteria: "Make contact with professional help",
		}}
	case domain.RiskBandModerate:
		return []domain.Task{
			{
				Type:               domain.TaskBreathingExercise,
				Title:              "Daily Breathing Practice",
				Description:        "Use breathing exercises to manage stress and anxiety",
				DurationDays:       7,
				Difficulty:         domain.DifficultyEasy,
				Instructions:       "Practice 4-7-8 breathing: Inhale for 4 counts, hold for 7 counts, exhale for 8 counts. Repeat 4 times, twice daily.",
				CompletionCriteria: "Complete breathing exercise twice daily for one week",
			},
			{
				Type:               domain.TaskSleepSchedule,
				Title:              "Improve Sleep Routine",
				Description:        "Establish a consistent sleep schedule for better rest",
				DurationDays:       14,
				Difficulty:         domain.DifficultyMedium,
				Instructions:       "Go to bed and wake up at the same time daily. Create a 30-minute wind-down routine before bed.",
				CompletionCriteria: "Maintain consistent sleep schedule for 2 weeks",
			},
		}
	default:
		return []domain.Task{
			{
				Type:               domain.TaskGratitudePractice,
				Title:              "Daily Gratitude Journal",
				Description:        "Practice gratitude to boost mood and well-being",
				DurationDays:       14,
				Difficulty:         domain.DifficultyEasy,
				Instructions:       "Write down 3 things you're grateful for each morning. Be specific and reflect on why you appreciate them.",
				CompletionCriteria: "Complete gratitude entries for 14 consecutive days",
			},
			{
				Type:               domain.TaskNatureWalk,
				Title:              "Weekly Nature Walks",
				Description:        "Connect with nature to reduce stress and improve mood",
				DurationDays:       21,
				Difficulty:         domain.DifficultyEasy,
				Instructions:       "Take a 20-30 minute walk in a park, garden, or natural area twice per week. Focus on your surroundings.",
				CompletionCriteria: "Complete 6 nature walks over 3 weeks",
			},
		}
	}
}
