package summary

import (
	"fmt"
	"strings"

	"github.com/jmoren/wellspring/internal/domain"
)

const systemPrompt = "You are a wellness coach specializing in creating concise, actionable summaries. Follow instructions exactly and return only the requested format."

func assessmentPrompt(assessment string, riskLevel int, profile domain.Profile) string {
	return fmt.Sprintf(`You are a wellness coach. Summarize this health assessment into EXACTLY 3-4 bullet points for a user dashboard.

ORIGINAL ASSESSMENT:
%s

RISK LEVEL: %d/10
USER AGE: %d
STRESS: %s
SLEEP: %.1f hours

REQUIREMENTS:
- EXACTLY 3-4 bullet points starting with •
- Each bullet 10-15 words maximum
- Focus on most important findings
- Use clear, friendly language
- No medical jargon
- Be encouraging but honest

FORMAT:
• [Key strength or positive finding]
• [Main concern that needs attention]
• [Specific actionable recommendation]
• [Overall wellness status or next step]

Return ONLY the bullet points, nothing else.`,
		assessment, riskLevel, profile.Age, profile.StressLevel, profile.SleepHours)
}

func tipsPrompt(tips string, profile domain.Profile, context string) string {
	var contextInfo string
	if context != "" {
		contextInfo = "QUESTION CONTEXT: " + context + "\n"
	}
	return fmt.Sprintf(`You are a wellness coach. Convert these wellness tips into EXACTLY 4 actionable bullet points.

ORIGINAL TIPS:
%s

%sUSER PROFILE:
- Age: %d
- Occupation: %s
- Stress Level: %s
- Sleep: %.1f hours
- Exercise: %.1f hours/week

REQUIREMENTS:
- EXACTLY 4 bullet points starting with •
- Each bullet 12-18 words maximum
- Start each with an action verb (Try, Practice, Maintain, Reduce, etc.)
- Make them specific and achievable
- Tailor to their profile
- Be practical and encouraging

Return ONLY the bullet points, nothing else.`,
		tips, contextInfo, profile.Age, profile.Occupation, profile.StressLevel,
		profile.SleepHours, profile.PhysicalActivityHours)
}

func chatSummaryPrompt(response, question string, profile domain.Profile) string {
	return fmt.Sprintf(`You are a wellness coach. Summarize this response to the user's question into 2-3 concise bullet points.

USER QUESTION: %s

ORIGINAL RESPONSE:
%s

USER CONTEXT:
- %d years old, %s
- Stress: %s, Sleep: %.1fh

REQUIREMENTS:
- EXACTLY 2-3 bullet points starting with •
- Each bullet 15-20 words maximum
- Direct answers to their specific question
- Actionable and personalized
- Friendly and supportive tone
- No repetition between bullets

Return ONLY the bullet points, nothing else.`,
		question, response, profile.Age, profile.Occupation, profile.StressLevel, profile.SleepHours)
}

func progressPrompt(total, recent int, taskTypes []string, profile domain.Profile) string {
	return fmt.Sprintf(`Create a 3-bullet progress summary for a wellness dashboard.

COMPLETED TASKS: %d total
RECENT COMPLETIONS: %d in last 7 days
TASK TYPES: %s

USER: %dyo, %s, %s stress

REQUIREMENTS:
- EXACTLY 3 bullet points starting with •
- Each bullet 10-15 words maximum
- Highlight achievements and progress
- Be encouraging and motivational
- Focus on positive patterns

Return ONLY the bullet points, nothing else.`,
		total, recent, strings.Join(taskTypes, ", "), profile.Age, profile.Occupation, profile.StressLevel)
}

func insightsPrompt(text string, max int) string {
	return fmt.Sprintf(`Extract the %d most important insights from this text for a wellness dashboard.

TEXT:
%s

REQUIREMENTS:
- Extract %d key insights
- Each insight should be 8-12 words
- Focus on actionable or important information
- No bullets or formatting
- Return as simple list separated by |

Return ONLY the insights separated by |, nothing else.`, max, text, max)
}
