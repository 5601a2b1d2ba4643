package chat

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/jmoren/wellspring/internal/domain"
	"github.com/jmoren/wellspring/internal/llm"
	"github.com/jmoren/wellspring/internal/metrics"
)

// FallbackResponse is the terminal reply when every generation tier
// fails. The session never returns an empty answer.
const FallbackResponse = "I apologize, but I'm having trouble processing your request right now. Could you please rephrase your question or try again?"

const chatAttemptsPerTier = 3

// chatTier pairs a prompt shape with its sampling temperature and the
// minimum raw response length worth cleaning.
type chatTier struct {
	name        string
	temperature float64
	minRawLen   int
	prompt      func(s *Session, message string, profile *domain.Profile, extra string) string
}

var chatTiers = []chatTier{
	{
		name:        "direct",
		temperature: 0.7,
		minRawLen:   10,
		prompt: func(s *Session, message string, profile *domain.Profile, extra string) string {
			return directPrompt(message, profile, extra, s.history)
		},
	},
	{
		name:        "simple",
		temperature: 0.6,
		minRawLen:   5,
		prompt: func(s *Session, message string, profile *domain.Profile, _ string) string {
			return simplePrompt(message, profile, s.history)
		},
	},
	{
		name:        "basic",
		temperature: 0.5,
		minRawLen:   3,
		prompt: func(s *Session, message string, _ *domain.Profile, _ string) string {
			return basicChatPrompt(message)
		},
	},
}

// Session holds one user's conversational state and produces supportive
// chat responses through a degrading prompt cascade.
type Session struct {
	client  llm.Client
	cleaner *Cleaner
	history *History
	log     *zap.Logger
}

func NewSession(client llm.Client, cleaner *Cleaner, log *zap.Logger) *Session {
	return &Session{
		client:  client,
		cleaner: cleaner,
		history: NewHistory(),
		log:     log,
	}
}

// History exposes the session's conversation buffer.
func (s *Session) History() *History {
	return s.history
}

// Respond generates a reply to message, trying each prompt tier in turn
// and falling back to a fixed apology when all fail. Both the user
// message and the reply are recorded in the session history.
func (s *Session) Respond(ctx context.Context, message string, profile *domain.Profile, extra string) string {
	s.history.Append(RoleUser, message)

	response := s.generate(ctx, message, profile, extra)
	if response == "" {
		metrics.CascadeTier.WithLabelValues("chat", "fallback", "success").Inc()
		response = FallbackResponse
	}

	s.history.Append(RoleAssistant, response)
	return response
}

// Advice asks for wellness guidance on a topic, threading the profile
// into the request.
func (s *Session) Advice(ctx context.Context, topic string, profile *domain.Profile) string {
	prompt := "Please provide wellness advice about " + topic
	if profile != nil {
		prompt += " for someone with these characteristics: " + describeProfile(*profile)
	}
	return s.Respond(ctx, prompt, profile, "")
}

// Support frames a user concern as a request for emotional support.
func (s *Session) Support(ctx context.Context, concern string, profile *domain.Profile) string {
	message := fmt.Sprintf("I'm concerned about %s and could use some support and guidance.", concern)
	return s.Respond(ctx, message, profile, "")
}

func (s *Session) generate(ctx context.Context, message string, profile *domain.Profile, extra string) string {
	for _, tier := range chatTiers {
		if response := s.runTier(ctx, tier, message, profile, extra); response != "" {
			metrics.CascadeTier.WithLabelValues("chat", tier.name, "success").Inc()
			return response
		}
		metrics.CascadeTier.WithLabelValues("chat", tier.name, "exhausted").Inc()
	}
	return ""
}

func (s *Session) runTier(ctx context.Context, tier chatTier, message string, profile *domain.Profile, extra string) string {
	temp := tier.temperature
	prompt := tier.prompt(s, message, profile, extra)

	for attempt := 1; attempt <= chatAttemptsPerTier; attempt++ {
		resp, err := s.client.Generate(ctx, llm.GenerateRequest{
			Task:        llm.TaskChat,
			UserPrompt:  prompt,
			Temperature: &temp,
		})
		if err != nil {
			s.log.Debug("chat attempt failed",
				zap.String("tier", tier.name),
				zap.Int("attempt", attempt),
				zap.Error(err))
			continue
		}
		if len(resp.Text) <= tier.minRawLen {
			continue
		}
		if cleaned, ok := s.cleaner.Clean(resp.Text); ok {
			s.log.Info("chat response generated",
				zap.String("tier", tier.name),
				zap.Int("attempt", attempt),
				zap.Int("chars", len(cleaned)))
			return cleaned
		}
	}
	return ""
}

// describeProfile renders the non-empty profile attributes as a short
// comma-separated description.
func describeProfile(p domain.Profile) string {
	var parts []string
	add := func(label, value string) {
		if value != "" && value != "Unknown" {
			parts = append(parts, label+": "+value)
		}
	}
	add("Occupation", p.Occupation)
	add("Stress Level", p.StressLevel)
	add("Sleep Quality", p.SleepQuality)
	add("Mood", p.Mood)
	add("Anxiety Frequency", p.AnxietyFrequency)
	add("Energy Level", p.EnergyLevel)
	if p.Age > 0 {
		parts = append(parts, fmt.Sprintf("Age: %d", p.Age))
	}
	if p.SleepHours > 0 {
		parts = append(parts, fmt.Sprintf("Sleep Hours: %.1f", p.SleepHours))
	}
	if len(parts) == 0 {
		return "Limited profile information"
	}
	return strings.Join(parts, ", ")
}
