package chat

import "strings"

// QuickReplies suggests follow-up prompts the UI can offer alongside a
// chat response, keyed on what the user's message mentions.
func QuickReplies(message string) []string {
	lower := strings.ToLower(message)

	containsAny := func(words ...string) bool {
		for _, w := range words {
			if strings.Contains(lower, w) {
				return true
			}
		}
		return false
	}

	switch {
	case containsAny("stressed", "anxiety", "worried"):
		return []string{
			"Tell me more about what's causing your stress",
			"Would you like some immediate stress relief techniques?",
			"How long have you been feeling this way?",
		}
	case containsAny("sleep", "tired", "insomnia"):
		return []string{
			"What's your current sleep schedule like?",
			"Would you like tips for better sleep hygiene?",
			"How many hours of sleep do you typically get?",
		}
	case containsAny("sad", "depressed", "down"):
		return []string{
			"I'm here to support you through this",
			"Would you like to talk about what's making you feel this way?",
			"Have you considered speaking with a counselor?",
		}
	default:
		return []string{
			"Can you tell me more about that?",
			"How can I best support you with this?",
			"What would be most helpful for you right now?",
		}
	}
}
