package summary

import (
	"strings"

	"github.com/jmoren/wellspring/internal/domain"
)

// fallbackAssessment produces a deterministic assessment summary keyed
// on risk band, sleep, and stress when no model output is usable.
func fallbackAssessment(riskLevel int, profile domain.Profile) string {
	switch {
	case riskLevel <= 3:
		return Render([]string{
			"Your wellness indicators show positive patterns overall.",
			"Sleep and stress levels appear to be well managed.",
			"Continue maintaining your current healthy routines.",
			"Consider minor optimizations for enhanced wellbeing.",
		})
	case riskLevel <= 6:
		sleepLine := "Sleep patterns look reasonable."
		if profile.SleepHours < 7 {
			sleepLine = "Sleep duration could be improved."
		}
		stressLine := "Stress levels are within normal range."
		if profile.StressLevel == domain.StressHigh {
			stressLine = "Stress management techniques would be beneficial."
		}
		return Render([]string{
			"Some wellness areas need attention but manageable overall.",
			sleepLine,
			stressLine,
			"Focus on consistent daily wellness routines.",
		})
	default:
		sleepLine := "Sleep schedule needs optimization."
		if profile.SleepHours < 6 {
			sleepLine = "Poor sleep quality is impacting overall health."
		}
		stressLine := "Stress reduction should be a priority."
		if profile.StressLevel == domain.StressHigh {
			stressLine = "High stress levels need professional stress management."
		}
		return Render([]string{
			"Several wellness factors require immediate attention.",
			sleepLine,
			stressLine,
			"Consider consulting healthcare professionals for support.",
		})
	}
}

// fallbackTips picks one tip per profile dimension.
func fallbackTips(profile domain.Profile) string {
	tips := make([]string, 0, 4)

	if profile.SleepHours < 7 {
		tips = append(tips, "Establish a consistent bedtime routine for better sleep quality.")
	} else {
		tips = append(tips, "Maintain your current sleep schedule and optimize sleep environment.")
	}
	if profile.StressLevel == domain.StressHigh {
		tips = append(tips, "Practice daily stress reduction techniques like deep breathing.")
	} else {
		tips = append(tips, "Continue managing stress with regular relaxation activities.")
	}
	if profile.PhysicalActivityHours < 3 {
		tips = append(tips, "Gradually increase physical activity to 150 minutes weekly.")
	} else {
		tips = append(tips, "Maintain your exercise routine and try new activities.")
	}
	if profile.Age > 40 {
		tips = append(tips, "Focus on bone health with weight-bearing exercises.")
	} else {
		tips = append(tips, "Build healthy habits now for long-term wellness.")
	}

	return Render(tips)
}

// fallbackChat answers by topic keyword when the model cannot.
func fallbackChat(question string) string {
	lower := strings.ToLower(question)
	containsAny := func(words ...string) bool {
		for _, w := range words {
			if strings.Contains(lower, w) {
				return true
			}
		}
		return false
	}

	switch {
	case containsAny("sleep", "tired", "rest"):
		return Render([]string{
			"Maintain 7-9 hours of sleep nightly with consistent bedtime.",
			"Create a relaxing pre-sleep routine without screens.",
			"Consider consulting a doctor if sleep issues persist.",
		})
	case containsAny("stress", "anxiety", "worry"):
		return Render([]string{
			"Practice deep breathing exercises for 5 minutes daily.",
			"Try progressive muscle relaxation or meditation apps.",
			"Connect with friends or family for emotional support.",
		})
	case containsAny("exercise", "fitness", "workout"):
		return Render([]string{
			"Start with 30 minutes of moderate activity 3 times weekly.",
			"Choose activities you enjoy like walking, swimming, or dancing.",
			"Gradually increase intensity and duration as you build endurance.",
		})
	case containsAny("diet", "food", "nutrition"):
		return Render([]string{
			"Include colorful vegetables and fruits in every meal.",
			"Stay hydrated with 8 glasses of water daily.",
			"Limit processed foods and practice portion control.",
		})
	default:
		return Render([]string{
			"Focus on maintaining consistent daily wellness routines.",
			"Balance work, rest, exercise, and social connections.",
			"Listen to your body and adjust habits as needed.",
		})
	}
}

func fallbackProgress() string {
	return Render([]string{
		"You're making steady progress on your wellness journey.",
		"Consistency in completing tasks shows strong commitment.",
		"Keep building on these positive momentum patterns.",
	})
}
