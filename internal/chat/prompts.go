package chat

import (
	"fmt"
	"strings"

	"github.com/jmoren/wellspring/internal/domain"
)

// directPrompt is the richest chat prompt: profile, extra context, and
// recent conversation history.
func directPrompt(message string, profile *domain.Profile, extra string, history *History) string {
	var userContext string
	if profile != nil {
		userContext = fmt.Sprintf(`
USER CONTEXT:
- Stress Level: %s
- Sleep: %.1f hours/night
- Work: %d hours/week
- Mood: %s
- Age: %d
- Occupation: %s
`, orUnknown(profile.StressLevel), profile.SleepHours, profile.WorkHours,
			orUnknown(profile.Mood), profile.Age, orUnknown(profile.Occupation))
	}

	var additional string
	if extra != "" {
		additional = "\nADDITIONAL CONTEXT:\n" + extra + "\n"
	}

	return fmt.Sprintf(`You are a helpful, empathetic, and knowledgeable AI assistant specializing in wellness and mental health support. Respond directly in first person as if you are speaking to the user face-to-face.

IMPORTANT: Start your response immediately with your direct answer. Do not think aloud, analyze, or explain your reasoning process. Give a direct, conversational response from the first word.

Guidelines:
1. SPEAK DIRECTLY: Use "I", "you", "your" - respond as if in conversation
2. NO ANALYSIS: Don't show your thinking process or reasoning
3. BE IMMEDIATE: Start with your actual response, not explanations
4. STAY SUPPORTIVE: Be empathetic and helpful
5. BE CONCISE: Give practical, actionable advice

%s%s
CONVERSATION HISTORY:
%s

USER MESSAGE: %s

Your direct response (start immediately, no analysis):`,
		userContext, additional, history.PromptContext(), message)
}

// simplePrompt keeps only the strongest profile signals and the most
// recent turn.
func simplePrompt(message string, profile *domain.Profile, history *History) string {
	var userInfo string
	if profile != nil {
		var parts []string
		if profile.StressLevel != "" {
			parts = append(parts, "Stress: "+profile.StressLevel)
		}
		if profile.Mood != "" {
			parts = append(parts, "Mood: "+profile.Mood)
		}
		if len(parts) > 0 {
			userInfo = "User info: " + strings.Join(parts, ", ") + "\n"
		}
	}

	var recent string
	if last, ok := history.Last(); ok {
		recent = "Previous message: " + clip(last.Content, 100) + "...\n"
	}

	return fmt.Sprintf(`You are a helpful wellness AI assistant. Give a direct, first-person response. Start immediately with your answer - no thinking aloud or analysis.

%s%s
User: %s

Direct response:`, userInfo, recent, message)
}

func basicChatPrompt(message string) string {
	return fmt.Sprintf(`You are a helpful AI assistant. Respond directly in first person. Start immediately with your response - no analysis or thinking aloud.

User: %s

Direct response:`, message)
}

func orUnknown(s string) string {
	if strings.TrimSpace(s) == "" {
		return "Unknown"
	}
	return s
}
