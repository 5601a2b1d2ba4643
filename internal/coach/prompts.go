package coach

import (
	"fmt"
	"strings"

	"github.com/jmoren/wellspring/internal/domain"
)

const taskJSONSchema = `[
    {
        "task_type": "select from: meditation, exercise, sleep_schedule, social_connection, journaling, breathing_exercise, nature_walk, healthy_meal, screen_break, gratitude_practice, professional_help, mindfulness, stress_management, routine_building, creative_activity, relaxation_technique",
        "title": "Clear, engaging title",
        "description": "Brief description explaining the benefits",
        "duration_days": 7,
        "difficulty": "easy/medium/hard",
        "instructions": "Step-by-step instructions tailored to their profile",
        "completion_criteria": "Clear, measurable success criteria",
        "personalization_notes": "Why this task fits their specific situation"
    }
]`

// comprehensivePrompt is the richest prompt: full profile, assessment text,
// and risk-banded requirements.
func comprehensivePrompt(profile domain.Profile, assessment string, riskLevel int) string {
	var b strings.Builder
	b.WriteString("You are a professional wellness coach. Create personalized wellness tasks based on user data.\n\n")
	b.WriteString("GUIDELINES:\n")
	b.WriteString("- Use professional, clear language\n")
	b.WriteString("- Focus on evidence-based wellness practices\n")
	b.WriteString("- Ensure all recommendations are safe and appropriate\n")
	b.WriteString("- Use inclusive, respectful language\n\n")

	fmt.Fprintf(&b, "USER CONTEXT:\nRisk Level: %d/10 (10 = highest risk)\nAssessment: %s\n\n", riskLevel, assessment)

	b.WriteString("USER PROFILE:\n")
	fmt.Fprintf(&b, "- Stress Level: %s\n", orUnspecified(profile.StressLevel))
	fmt.Fprintf(&b, "- Sleep: %.1f hours/night, quality: %s\n", profile.SleepHours, orUnspecified(profile.SleepQuality))
	fmt.Fprintf(&b, "- Work: %d hours/week\n", profile.WorkHours)
	fmt.Fprintf(&b, "- Exercise: %.1f hours/week\n", profile.PhysicalActivityHours)
	fmt.Fprintf(&b, "- Occupation: %s\n", orUnspecified(profile.Occupation))
	fmt.Fprintf(&b, "- Age: %d\n", profile.Age)
	fmt.Fprintf(&b, "- Mood: %s\n", orUnspecified(profile.Mood))
	fmt.Fprintf(&b, "- Anxiety: %s\n", orUnspecified(profile.AnxietyFrequency))
	fmt.Fprintf(&b, "- Energy: %s\n\n", orUnspecified(profile.EnergyLevel))

	b.WriteString("TASK REQUIREMENTS:\n")
	b.WriteString(riskRequirements(riskLevel))
	b.WriteString("\n\nGenerate 4-6 personalized wellness tasks. Each task must be:\n")
	b.WriteString("1. Relevant to their specific situation\n")
	b.WriteString("2. Practical and achievable\n")
	b.WriteString("3. Evidence-based for mental health improvement\n")
	b.WriteString("4. Appropriate for their risk level\n")
	b.WriteString("5. Include clear, actionable instructions\n\n")
	b.WriteString("MANDATORY JSON FORMAT (return ONLY valid JSON):\n")
	b.WriteString(taskJSONSchema)
	return b.String()
}

// simplifiedPrompt keeps only the strongest profile signals.
func simplifiedPrompt(profile domain.Profile, riskLevel int) string {
	var factors []string
	if profile.StressLevel != "" {
		factors = append(factors, "Stress: "+profile.StressLevel)
	}
	if profile.SleepHours > 0 {
		factors = append(factors, fmt.Sprintf("Sleep: %.1fh", profile.SleepHours))
	}
	if profile.WorkHours > 0 {
		factors = append(factors, fmt.Sprintf("Work: %dh/week", profile.WorkHours))
	}
	summary := "Limited profile data"
	if len(factors) > 0 {
		summary = strings.Join(factors, ", ")
	}

	return fmt.Sprintf(`You are a wellness coach. Create practical wellness tasks.

USER: %s
Risk Level: %d/10

%s

Generate 3-4 practical wellness tasks as JSON array:
[
    {
        "task_type": "meditation|exercise|sleep_schedule|journaling|breathing_exercise|professional_help|stress_management",
        "title": "Clear task title",
        "description": "Brief helpful description",
        "duration_days": 7,
        "difficulty": "easy|medium|hard",
        "instructions": "Step-by-step instructions",
        "completion_criteria": "How to measure success"
    }
]`, summary, riskLevel, riskRequirements(riskLevel))
}

// basicPrompt carries the risk level only.
func basicPrompt(riskLevel int) string {
	return fmt.Sprintf(`You are a wellness coach. Generate wellness tasks for risk level %d/10.

%s

Return 2-3 tasks as JSON:
[
    {
        "task_type": "breathing_exercise|meditation|professional_help|journaling",
        "title": "Task title",
        "description": "What this helps with",
        "duration_days": 3,
        "difficulty": "easy|medium",
        "instructions": "Clear instructions",
        "completion_criteria": "Success measure"
    }
]`, riskLevel, riskRequirements(riskLevel))
}

// riskRequirements returns the requirement block injected into every
// planning prompt. Bands here are prompt-steering only and intentionally
// finer than the persistence-level risk bands.
func riskRequirements(riskLevel int) string {
	switch {
	case riskLevel >= 8:
		return `CRITICAL PRIORITY:
- MUST include immediate professional help seeking
- Focus on crisis intervention and safety
- Include emergency resources and contacts
- Tasks should provide immediate coping mechanisms
- Maximum task duration: 1-2 days`
	case riskLevel >= 6:
		return `HIGH PRIORITY:
- Strongly recommend professional consultation within 1 week
- Include daily anxiety/stress management techniques
- Focus on stabilization and routine building
- Provide structured, manageable activities
- Task duration: 2-7 days`
	case riskLevel >= 4:
		return `MODERATE PRIORITY:
- Include both self-care and gradual improvement activities
- Balance mental and physical wellness approaches
- Encourage social connection and support
- Build sustainable, healthy habits
- Task duration: 5-14 days`
	default:
		return `MAINTENANCE/PREVENTION:
- Focus on wellness enhancement and prevention
- Include enjoyable, engaging activities
- Support long-term habit building
- Promote overall life satisfaction
- Task duration: 7-21 days`
	}
}

func orUnspecified(s string) string {
	if strings.TrimSpace(s) == "" {
		return "Not specified"
	}
	return s
}
