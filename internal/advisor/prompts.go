package advisor

import (
	"fmt"

	"github.com/jmoren/wellspring/internal/domain"
)

func analysisPrompt(p domain.Profile) string {
	return fmt.Sprintf(`Analyze this user profile and provide ONLY bullet-point assessment. Start immediately with bullet points.

USER PROFILE:
- Age: %d
- Occupation: %s
- Stress Level: %s
- Sleep: %.1f hours, quality: %s
- Work: %d hours/week
- Exercise: %.1f hours/week
- Mood: %s
- Anxiety: %s
- Energy: %s

Give exactly 4 bullet points:

• [Key strength/positive factor]
• [Main concern/area needing attention]
• [Specific recommendation]
• [Overall wellness status]`,
		p.Age, p.Occupation, p.StressLevel, p.SleepHours, p.SleepQuality,
		p.WorkHours, p.PhysicalActivityHours, p.Mood, p.AnxietyFrequency, p.EnergyLevel)
}

func tipsPrompt(p domain.Profile, question string) string {
	if question != "" {
		return fmt.Sprintf(`Answer this health question with SHORT, practical advice for this user:

QUESTION: %s

USER: %dyo, %s, %s stress, %.1fh sleep, %.1fh exercise/week

Give exactly 4 bullet points with direct actionable advice:

• [Direct tip 1]
• [Direct tip 2]
• [Direct tip 3]
• [Direct tip 4]`,
			question, p.Age, p.Occupation, p.StressLevel, p.SleepHours, p.PhysicalActivityHours)
	}

	return fmt.Sprintf(`Create 4 wellness tips for this user:

USER: %dyo, %s, stress: %s, sleep: %.1fh, exercise: %.1fh/week

Give exactly 4 bullet points:

• [tip 1]
• [tip 2]
• [tip 3]
• [tip 4]`,
		p.Age, p.Occupation, p.StressLevel, p.SleepHours, p.PhysicalActivityHours)
}
